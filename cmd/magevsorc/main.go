// Package main is the entry point for Mage vs. Orc King.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/samdwyer/magevsorc/internal/config"
	"github.com/samdwyer/magevsorc/internal/entity"
	"github.com/samdwyer/magevsorc/internal/game"
	"github.com/samdwyer/magevsorc/internal/gamedata"
	"github.com/samdwyer/magevsorc/internal/telemetry"
	"github.com/samdwyer/magevsorc/internal/ui"
)

// frontEnd is whatever both draws the battle and reads the player's choices.
type frontEnd interface {
	game.Renderer
	game.InputProvider
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	seed := flag.Int64("seed", cfg.Seed, "random seed for the Orc King's moves (0 = time based)")
	uiMode := flag.String("ui", string(cfg.UI), "front end: auto, console or tui")
	pause := flag.Bool("pause", cfg.PauseBetweenTurns, "wait for Enter between turns")
	flag.Parse()

	mode, err := config.ParseUIMode(*uiMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, telemetry.Settings{
			APIKey:  cfg.Telemetry.APIKey,
			Dataset: cfg.Telemetry.Dataset,
			UI:      string(mode),
			Seed:    *seed,
		})
		if err != nil {
			slog.Warn("telemetry setup failed, running without traces", "error", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					slog.Warn("telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	registry, err := gamedata.LoadRegistry()
	if err != nil {
		slog.Error("failed to load combatants", "error", err)
		return 1
	}

	fe, closeUI, err := newFrontEnd(mode)
	if err != nil {
		slog.Error("failed to start ui", "ui", mode, "error", err)
		return 1
	}
	defer closeUI()

	newMatchup := func() (*entity.Fighter, *entity.Fighter, error) {
		return entity.NewMatchup(registry)
	}
	session := game.NewSession(newMatchup, fe, fe, game.Config{Seed: *seed, PauseBetweenTurns: *pause})

	outcomes, err := session.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		closeUI()
		slog.Error("game error", "error", err)
		return 1
	}
	slog.Info("session finished", "battles", len(outcomes))
	return 0
}

// newFrontEnd picks the tcell UI on an interactive terminal, the console otherwise.
func newFrontEnd(mode config.UIMode) (frontEnd, func(), error) {
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))

	if mode == config.UITUI || (mode == config.UIAuto && interactive) {
		screen, err := ui.NewScreen()
		if err != nil {
			return nil, nil, err
		}
		return ui.NewTUI(screen), screen.Close, nil
	}
	return ui.NewConsole(os.Stdin, os.Stdout, ui.WithClearScreen(interactive)), func() {}, nil
}
