package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// healthColors maps HP fifths to colors, index 0 is critical and 4 is full health.
var healthColors = [5]tcell.Color{
	tcell.ColorRed,
	tcell.ColorOrangeRed,
	tcell.ColorYellow,
	tcell.ColorYellowGreen,
	tcell.ColorGreen,
}

// HealthColor picks an HP bar color for the given hp/maxHP ratio.
func HealthColor(hp, maxHP int) tcell.Color {
	if maxHP <= 0 || hp <= 0 {
		return healthColors[0]
	}
	idx := hp * len(healthColors) / maxHP
	if idx >= len(healthColors) {
		idx = len(healthColors) - 1
	}
	return healthColors[idx]
}
