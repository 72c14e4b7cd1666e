package gamedata

import (
	"errors"
)

// Well-known combatant IDs from combatants.json.
const (
	MageID    = "mage"
	OrcKingID = "orc_king"
)

// Registry holds loaded combatant definitions and provides lookup utilities.
type Registry struct {
	combatants map[string]*CombatantDef
	all        []CombatantDef
}

// NewRegistry creates a registry from loaded combatant definitions.
func NewRegistry(combatants []CombatantDef) *Registry {
	registry := &Registry{
		combatants: make(map[string]*CombatantDef),
		all:        combatants,
	}
	for i := range combatants {
		registry.combatants[combatants[i].ID] = &combatants[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded combatants.json.
func LoadRegistry() (*Registry, error) {
	combatants, err := LoadCombatants()
	if err != nil {
		return nil, err
	}
	if len(combatants) == 0 {
		return nil, errors.New("no combatants loaded from combatants.json")
	}
	return NewRegistry(combatants), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the combatant definition with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *CombatantDef {
	return r.combatants[id]
}

// All returns all combatant definitions.
func (r *Registry) All() []CombatantDef {
	return r.all
}

// Count returns the number of combatants in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}
