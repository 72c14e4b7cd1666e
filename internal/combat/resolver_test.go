package combat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/magevsorc/internal/gamedata"
)

var (
	fireball     = Move{Name: "Fireball", Description: "Launches a blazing sphere of fire", Effect: gamedata.EffectDamage, Power: 25}
	healMove     = Move{Name: "Heal", Description: "Restores 20 HP", Effect: gamedata.EffectHeal, Power: 20}
	battleRoar   = Move{Name: "Battle Roar", Effect: gamedata.EffectDamage, Power: 15, Status: gamedata.StatusIntimidate}
	orcKingMoves = []Move{
		{Name: "Axe Swing", Effect: gamedata.EffectDamage, Power: 28},
		battleRoar,
		{Name: "Charge", Effect: gamedata.EffectDamage, Power: 22},
		{Name: "Slam", Effect: gamedata.EffectDamage, Power: 26},
	}
)

func newTestCombatant(t *testing.T, name string, maxHP int, moves ...Move) *Combatant {
	t.Helper()
	if len(moves) == 0 {
		moves = []Move{fireball}
	}
	c, err := NewCombatant(name, maxHP, moves)
	require.NoError(t, err)
	return c
}

func TestResolveDamage(t *testing.T) {
	mage := newTestCombatant(t, "Mage", 100, fireball, healMove)
	orc := newTestCombatant(t, "Orc King", 100, orcKingMoves...)

	result, err := Resolve(fireball, mage, orc)
	require.NoError(t, err)

	assert.Equal(t, 75, orc.HP())
	assert.Equal(t, 100, mage.HP())
	assert.Equal(t, 25, result.Applied)
	assert.Equal(t, "Orc King", result.Target)
	assert.Equal(t, "Mage uses Fireball! Orc King takes 25 damage!", result.Message)
}

func TestResolveOrcKingMovesAgainstMage(t *testing.T) {
	// Each fixed move lands on a fresh Mage at 100 HP.
	want := map[string]int{"Axe Swing": 72, "Battle Roar": 85, "Charge": 78, "Slam": 74}

	for _, move := range orcKingMoves {
		t.Run(move.Name, func(t *testing.T) {
			mage := newTestCombatant(t, "Mage", 100, fireball)
			orc := newTestCombatant(t, "Orc King", 100, orcKingMoves...)

			_, err := Resolve(fireball, mage, orc)
			require.NoError(t, err)
			assert.Equal(t, 75, orc.HP())

			_, err = Resolve(move, orc, mage)
			require.NoError(t, err)
			assert.Equal(t, want[move.Name], mage.HP())
		})
	}
}

func TestResolveIntimidate(t *testing.T) {
	mage := newTestCombatant(t, "Mage", 100)
	orc := newTestCombatant(t, "Orc King", 120, orcKingMoves...)

	result, err := Resolve(battleRoar, orc, mage)
	require.NoError(t, err)
	assert.Equal(t, "Orc King uses Battle Roar! Mage takes 15 damage and is intimidated!", result.Message)
	assert.Equal(t, 85, mage.HP())
}

func TestResolveHeal(t *testing.T) {
	mage := newTestCombatant(t, "Mage", 100, fireball, healMove)
	orc := newTestCombatant(t, "Orc King", 120, orcKingMoves...)
	_, err := mage.ApplyDamage(50)
	require.NoError(t, err)

	result, err := Resolve(healMove, mage, orc)
	require.NoError(t, err)

	assert.Equal(t, 70, mage.HP())
	assert.Equal(t, 120, orc.HP(), "heal must never damage the target")
	assert.Equal(t, "Mage", result.Target)
	assert.Equal(t, 20, result.Applied)
	assert.Equal(t, "Mage uses Heal! Mage recovers 20 HP!", result.Message)
}

func TestResolveHealCapped(t *testing.T) {
	mage := newTestCombatant(t, "Mage", 60, fireball, healMove)
	orc := newTestCombatant(t, "Orc King", 120, orcKingMoves...)
	_, err := mage.ApplyDamage(10)
	require.NoError(t, err)

	result, err := Resolve(healMove, mage, orc)
	require.NoError(t, err)

	assert.Equal(t, 60, mage.HP())
	assert.Equal(t, 10, result.Applied)
	assert.Equal(t, 20, result.Amount)
}

func TestResolveZeroDamageIsNotHeal(t *testing.T) {
	glare := Move{Name: "Glare", Effect: gamedata.EffectDamage, Power: 0}
	mage := newTestCombatant(t, "Mage", 100)
	orc := newTestCombatant(t, "Orc King", 120, glare)
	_, err := orc.ApplyDamage(30)
	require.NoError(t, err)

	_, err = Resolve(glare, orc, mage)
	require.NoError(t, err)
	assert.Equal(t, 90, orc.HP())
	assert.Equal(t, 100, mage.HP())
}

func TestResolveUnknownEffect(t *testing.T) {
	odd := Move{Name: "Shrug", Effect: "buff", Power: 3}
	a := newTestCombatant(t, "A", 10)
	b := newTestCombatant(t, "B", 10)

	_, err := Resolve(odd, a, b)
	assert.ErrorContains(t, err, "unknown effect type")
	assert.Equal(t, 10, b.HP())
}

func TestResolveMissingCombatant(t *testing.T) {
	a := newTestCombatant(t, "A", 10)
	_, err := Resolve(fireball, a, nil)
	assert.Error(t, err)
}

func TestResolveReportsInvariantViolation(t *testing.T) {
	jab := Move{Name: "Jab", Effect: gamedata.EffectDamage, Power: 1}
	a := newTestCombatant(t, "A", 10)
	b := newTestCombatant(t, "B", 10)
	b.hp = 15

	result, err := Resolve(jab, a, b)
	var violation *InvariantViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "B", violation.Name)
	assert.Equal(t, 14, violation.HP)
	assert.Equal(t, 10, violation.MaxHP)
	assert.Equal(t, 1, result.Applied)
}

func TestResolveReportsUserInvariantViolation(t *testing.T) {
	a := newTestCombatant(t, "A", 10)
	b := newTestCombatant(t, "B", 10)
	a.hp = -3

	_, err := Resolve(fireball, a, b)
	var violation *InvariantViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "A", violation.Name)
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "Fireball (25 damage): Launches a blazing sphere of fire", fireball.String())
	assert.Equal(t, "Heal (heals 20 HP): Restores 20 HP", healMove.String())
}

func TestMoveFromDef(t *testing.T) {
	def := gamedata.MoveDef{ID: "battle_roar", Name: "Battle Roar", Description: "Roar", EffectType: gamedata.EffectDamage, Power: 15, Status: gamedata.StatusIntimidate}
	m := MoveFromDef(def)
	assert.Equal(t, battleRoar.Name, m.Name)
	assert.Equal(t, 15, m.Power)
	assert.Equal(t, gamedata.StatusIntimidate, m.Status)
	assert.False(t, m.IsHeal())
}
