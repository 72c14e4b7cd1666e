// Package combat provides the combatant model and move resolution.
package combat

import "fmt"

// Combatant is an entity with HP and a fixed move set participating in a battle.
// HP only changes through ApplyDamage and ApplyHeal, which keep it in [0, MaxHP].
type Combatant struct {
	Name  string
	MaxHP int

	hp    int
	moves []Move
}

// NewCombatant creates a combatant at full HP.
func NewCombatant(name string, maxHP int, moves []Move) (*Combatant, error) {
	if maxHP <= 0 {
		return nil, fmt.Errorf("combatant %s: max HP must be positive, got %d", name, maxHP)
	}
	if len(moves) == 0 {
		return nil, fmt.Errorf("combatant %s: needs at least one move", name)
	}
	for _, m := range moves {
		if m.Power < 0 {
			return nil, fmt.Errorf("combatant %s: move %s: %w", name, m.Name, ErrNegativeAmount)
		}
	}

	owned := make([]Move, len(moves))
	copy(owned, moves)

	return &Combatant{
		Name:  name,
		MaxHP: maxHP,
		hp:    maxHP,
		moves: owned,
	}, nil
}

// HP returns current hit points.
func (c *Combatant) HP() int { return c.hp }

// IsAlive returns true if the combatant has HP remaining.
func (c *Combatant) IsAlive() bool { return c.hp > 0 }

// Moves returns a copy of the move list.
func (c *Combatant) Moves() []Move {
	out := make([]Move, len(c.moves))
	copy(out, c.moves)
	return out
}

// MoveCount returns the number of move slots.
func (c *Combatant) MoveCount() int { return len(c.moves) }

// ChooseMove returns the move in the given slot.
func (c *Combatant) ChooseMove(index int) (Move, error) {
	if index < 0 || index >= len(c.moves) {
		return Move{}, &outOfRangeError{index: index, count: len(c.moves)}
	}
	return c.moves[index], nil
}

// ApplyDamage reduces HP, stopping at 0, and returns the HP actually lost.
// Negative amounts are rejected and leave HP unchanged.
func (c *Combatant) ApplyDamage(amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("damage %d to %s: %w", amount, c.Name, ErrNegativeAmount)
	}
	actual := min(amount, c.hp)
	c.hp -= actual
	return actual, nil
}

// ApplyHeal restores HP, stopping at MaxHP, and returns the HP actually restored.
// Negative amounts are rejected and leave HP unchanged.
func (c *Combatant) ApplyHeal(amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("heal %d on %s: %w", amount, c.Name, ErrNegativeAmount)
	}
	actual := min(amount, c.MaxHP-c.hp)
	c.hp += actual
	return actual, nil
}

// CheckInvariant returns an *InvariantViolation if HP is outside [0, MaxHP].
func (c *Combatant) CheckInvariant() error {
	if c.hp < 0 || c.hp > c.MaxHP {
		return &InvariantViolation{Name: c.Name, HP: c.hp, MaxHP: c.MaxHP}
	}
	return nil
}
