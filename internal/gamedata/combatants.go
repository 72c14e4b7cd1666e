package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// MoveSource identifies who picks a combatant's moves.
type MoveSource string

const (
	// SourcePlayer means a human chooses each move.
	SourcePlayer MoveSource = "player"
	// SourceRandom means a move is picked uniformly at random every turn.
	SourceRandom MoveSource = "random"
)

// CombatantDef defines a combatant loaded from JSON.
type CombatantDef struct {
	ID     string     `json:"id"`     // Unique identifier (e.g., "mage")
	Name   string     `json:"name"`   // Display name (e.g., "Mage")
	Color  string     `json:"color"`  // Hex color code used by the full screen UI
	MaxHP  int        `json:"maxHp"`  // Starting and maximum hit points
	Source MoveSource `json:"source"` // Who chooses the moves
	Moves  []MoveDef  `json:"moves"`  // Ordered move list, shown to the player 1-based
}

// TCellColor returns the color as a tcell.Color.
func (c *CombatantDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(c.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// Validate checks the definition for values the combat model would reject.
func (c *CombatantDef) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("combatant %q has no id", c.Name)
	}
	if c.MaxHP <= 0 {
		return fmt.Errorf("combatant %s: maxHp must be positive, got %d", c.ID, c.MaxHP)
	}
	if c.Source != SourcePlayer && c.Source != SourceRandom {
		return fmt.Errorf("combatant %s: unknown move source %q", c.ID, c.Source)
	}
	if len(c.Moves) == 0 {
		return fmt.Errorf("combatant %s has no moves", c.ID)
	}
	for _, m := range c.Moves {
		if !m.EffectType.Valid() {
			return fmt.Errorf("combatant %s: move %s has unknown effect type %q", c.ID, m.ID, m.EffectType)
		}
		if m.Power < 0 {
			return fmt.Errorf("combatant %s: move %s has negative power %d", c.ID, m.ID, m.Power)
		}
	}
	return nil
}

// CombatantsFile represents the structure of combatants.json.
type CombatantsFile struct {
	Combatants []CombatantDef `json:"combatants"`
}

// LoadCombatants loads combatant definitions from the embedded combatants.json file.
func LoadCombatants() ([]CombatantDef, error) {
	file, err := Load[CombatantsFile]("combatants.json")
	if err != nil {
		return nil, err
	}
	for i := range file.Combatants {
		if err := file.Combatants[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid combatants.json: %w", err)
		}
	}
	return file.Combatants, nil
}
