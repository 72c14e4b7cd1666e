// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// UIMode selects the terminal front end.
type UIMode string

const (
	// UIAuto picks the full screen UI on an interactive terminal, console otherwise.
	UIAuto UIMode = "auto"
	// UIConsole is the plain text, line-oriented front end.
	UIConsole UIMode = "console"
	// UITUI is the tcell full screen front end.
	UITUI UIMode = "tui"
)

// Config holds all configuration for the game process.
type Config struct {
	Seed              int64
	UI                UIMode
	PauseBetweenTurns bool
	LogLevel          slog.Level
	Telemetry         TelemetryConfig
}

// TelemetryConfig holds trace export settings.
type TelemetryConfig struct {
	Enabled bool
	APIKey  string
	Dataset string
}

// Load reads a .env file if present and then the environment.
// A missing .env file is not an error; variables may be set directly.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	seed, err := getEnvAsInt64OrDefault("MAGEVSORC_SEED", 0)
	if err != nil {
		return nil, err
	}
	pause, err := getEnvAsBoolOrDefault("MAGEVSORC_PAUSE", true)
	if err != nil {
		return nil, err
	}
	ui, err := ParseUIMode(getEnvOrDefault("MAGEVSORC_UI", string(UIAuto)))
	if err != nil {
		return nil, err
	}

	apiKey := os.Getenv("HONEYCOMB_MAGEVSORC_API_KEY")
	telemetryOn, err := getEnvAsBoolOrDefault("MAGEVSORC_TELEMETRY", apiKey != "")
	if err != nil {
		return nil, err
	}

	return &Config{
		Seed:              seed,
		UI:                ui,
		PauseBetweenTurns: pause,
		LogLevel:          ParseLogLevel(os.Getenv("MAGEVSORC_LOG_LEVEL")),
		Telemetry: TelemetryConfig{
			Enabled: telemetryOn,
			APIKey:  apiKey,
			Dataset: getEnvOrDefault("HONEYCOMB_MAGEVSORC_DATASET", "magevsorc"),
		},
	}, nil
}

// ParseUIMode validates a UI mode name.
func ParseUIMode(s string) (UIMode, error) {
	switch m := UIMode(strings.ToLower(strings.TrimSpace(s))); m {
	case UIAuto, UIConsole, UITUI:
		return m, nil
	default:
		return "", fmt.Errorf("unknown UI mode %q (want auto, console or tui)", s)
	}
}

// ParseLogLevel maps a level name to a slog.Level. Unknown names mean warn,
// which keeps log lines from interleaving with the game text.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
