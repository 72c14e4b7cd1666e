// Package ui provides the console and full screen front ends.
package ui

import (
	"fmt"
	"strings"

	"github.com/samdwyer/magevsorc/internal/combat"
)

const (
	hpBarWidth = 20
	barFull    = "█"
	barEmpty   = "░"
)

// HPBar draws hp/maxHP as width cells, filled cells first.
func HPBar(hp, maxHP, width int) string {
	filled := 0
	if maxHP > 0 {
		filled = hp * width / maxHP
	}
	filled = max(0, min(filled, width))
	return strings.Repeat(barFull, filled) + strings.Repeat(barEmpty, width-filled)
}

// StatusLine renders "Name: hp/max HP [bar]".
func StatusLine(c *combat.Combatant) string {
	return fmt.Sprintf("%s: %d/%d HP [%s]", c.Name, c.HP(), c.MaxHP, HPBar(c.HP(), c.MaxHP, hpBarWidth))
}
