package combat

import (
	"fmt"

	"github.com/samdwyer/magevsorc/internal/gamedata"
)

// Move is a named action a combatant can take on its turn.
type Move struct {
	Name        string
	Description string
	Effect      gamedata.EffectType
	Power       int // Damage dealt for EffectDamage, HP restored to the caster for EffectHeal
	Status      gamedata.StatusEffectType
}

// MoveFromDef converts a loaded move definition.
func MoveFromDef(def gamedata.MoveDef) Move {
	return Move{
		Name:        def.Name,
		Description: def.Description,
		Effect:      def.EffectType,
		Power:       def.Power,
		Status:      def.Status,
	}
}

// IsHeal returns true if the move restores the caster instead of hitting the target.
func (m Move) IsHeal() bool {
	return m.Effect == gamedata.EffectHeal
}

// String renders the move the way the move menu lists it.
func (m Move) String() string {
	if m.IsHeal() {
		return fmt.Sprintf("%s (heals %d HP): %s", m.Name, m.Power, m.Description)
	}
	return fmt.Sprintf("%s (%d damage): %s", m.Name, m.Power, m.Description)
}
