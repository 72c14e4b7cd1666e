// Package entity builds the game's fighters from data definitions.
package entity

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/magevsorc/internal/combat"
	"github.com/samdwyer/magevsorc/internal/gamedata"
)

// Fighter is a combatant together with the definition it was built from.
type Fighter struct {
	*combat.Combatant
	Def *gamedata.CombatantDef
}

// NewFighter creates a fresh, full-HP fighter from a definition.
func NewFighter(def *gamedata.CombatantDef) (*Fighter, error) {
	if def == nil {
		return nil, fmt.Errorf("nil combatant definition")
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	moves := make([]combat.Move, len(def.Moves))
	for i, m := range def.Moves {
		moves[i] = combat.MoveFromDef(m)
	}

	c, err := combat.NewCombatant(def.Name, def.MaxHP, moves)
	if err != nil {
		return nil, err
	}
	return &Fighter{Combatant: c, Def: def}, nil
}

// ID returns the fighter's definition identifier.
func (f *Fighter) ID() string { return f.Def.ID }

// Source returns who picks this fighter's moves.
func (f *Fighter) Source() gamedata.MoveSource { return f.Def.Source }

// Color returns the fighter's display color.
func (f *Fighter) Color() tcell.Color { return f.Def.TCellColor() }

// NewMage creates the player-controlled Mage.
func NewMage(registry *gamedata.Registry) (*Fighter, error) {
	return newByID(registry, gamedata.MageID)
}

// NewOrcKing creates the AI-controlled Orc King.
func NewOrcKing(registry *gamedata.Registry) (*Fighter, error) {
	return newByID(registry, gamedata.OrcKingID)
}

// NewMatchup creates a brand new Mage and Orc King pair for one battle.
func NewMatchup(registry *gamedata.Registry) (player, opponent *Fighter, err error) {
	player, err = NewMage(registry)
	if err != nil {
		return nil, nil, err
	}
	opponent, err = NewOrcKing(registry)
	if err != nil {
		return nil, nil, err
	}
	return player, opponent, nil
}

func newByID(registry *gamedata.Registry, id string) (*Fighter, error) {
	def := registry.GetByID(id)
	if def == nil {
		return nil, fmt.Errorf("combatant %q not found in registry", id)
	}
	return NewFighter(def)
}
