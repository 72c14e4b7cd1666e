package combat

import (
	"fmt"

	"github.com/samdwyer/magevsorc/internal/gamedata"
)

// EffectResult contains the outcome of resolving a move.
type EffectResult struct {
	Actor   string
	Target  string // Who the effect landed on; the actor for heals
	Move    Move
	Amount  int    // Nominal damage or healing from the move
	Applied int    // HP actually changed after clamping
	Message string // Human-readable description
}

// Resolve applies move from user against target and returns what happened.
// Damage moves hurt the target. Heal moves restore the user and never touch the target.
func Resolve(move Move, user, target *Combatant) (EffectResult, error) {
	if user == nil || target == nil {
		return EffectResult{}, fmt.Errorf("resolve %s: missing combatant", move.Name)
	}

	result := EffectResult{
		Actor:  user.Name,
		Move:   move,
		Amount: move.Power,
	}
	message := user.Name + " uses " + move.Name + "!"

	switch move.Effect {
	case gamedata.EffectHeal:
		healed, err := user.ApplyHeal(move.Power)
		if err != nil {
			return EffectResult{}, err
		}
		result.Target = user.Name
		result.Applied = healed
		result.Message = fmt.Sprintf("%s %s recovers %d HP!", message, user.Name, move.Power)
	case gamedata.EffectDamage:
		dealt, err := target.ApplyDamage(move.Power)
		if err != nil {
			return EffectResult{}, err
		}
		result.Target = target.Name
		result.Applied = dealt
		if move.Status == gamedata.StatusIntimidate {
			result.Message = fmt.Sprintf("%s %s takes %d damage and is intimidated!", message, target.Name, move.Power)
		} else {
			result.Message = fmt.Sprintf("%s %s takes %d damage!", message, target.Name, move.Power)
		}
	default:
		return EffectResult{}, fmt.Errorf("resolve %s: unknown effect type %q", move.Name, move.Effect)
	}

	if err := user.CheckInvariant(); err != nil {
		return result, err
	}
	if err := target.CheckInvariant(); err != nil {
		return result, err
	}
	return result, nil
}
