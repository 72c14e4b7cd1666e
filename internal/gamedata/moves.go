package gamedata

// EffectType represents what a move does when it resolves.
type EffectType string

const (
	// EffectDamage reduces the target's HP by the move's power.
	EffectDamage EffectType = "damage"
	// EffectHeal restores the caster's HP by the move's power. The target is untouched.
	EffectHeal EffectType = "heal"
)

// Valid reports whether the effect type is one the resolver knows.
func (e EffectType) Valid() bool {
	return e == EffectDamage || e == EffectHeal
}

// StatusEffectType tags a move with a cosmetic status shown in the outcome message.
type StatusEffectType string

const (
	StatusNone       StatusEffectType = ""
	StatusIntimidate StatusEffectType = "intimidate"
)

// MoveDef defines a move loaded from JSON.
type MoveDef struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	EffectType  EffectType       `json:"effectType"`
	Power       int              `json:"power"`
	Status      StatusEffectType `json:"status,omitempty"`
}
