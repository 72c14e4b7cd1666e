package combat

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCombatant(t *testing.T) {
	c, err := NewCombatant("Test Character", 100, []Move{fireball})
	require.NoError(t, err)
	assert.Equal(t, "Test Character", c.Name)
	assert.Equal(t, 100, c.MaxHP)
	assert.Equal(t, 100, c.HP())
	assert.Equal(t, 1, c.MoveCount())
	assert.True(t, c.IsAlive())
}

func TestNewCombatantRejectsBadInput(t *testing.T) {
	_, err := NewCombatant("Ghost", 0, []Move{fireball})
	assert.Error(t, err)

	_, err = NewCombatant("Mute", 10, nil)
	assert.EqualError(t, err, "combatant Mute: needs at least one move")

	_, err = NewCombatant("Odd", 10, []Move{{Name: "Backfire", Power: -1}})
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestMovesAreCopied(t *testing.T) {
	moves := []Move{fireball, healMove}
	c := newTestCombatant(t, "Mage", 100, moves...)

	moves[0].Power = 999
	got := c.Moves()
	got[1].Power = 999

	m, err := c.ChooseMove(0)
	require.NoError(t, err)
	assert.Equal(t, 25, m.Power)
	m, err = c.ChooseMove(1)
	require.NoError(t, err)
	assert.Equal(t, 20, m.Power)
}

func TestApplyDamage(t *testing.T) {
	c := newTestCombatant(t, "Test", 100)

	dealt, err := c.ApplyDamage(25)
	require.NoError(t, err)
	assert.Equal(t, 25, dealt)
	assert.Equal(t, 75, c.HP())

	dealt, err = c.ApplyDamage(100)
	require.NoError(t, err)
	assert.Equal(t, 75, dealt)
	assert.Equal(t, 0, c.HP())
	assert.False(t, c.IsAlive())

	// Already at zero stays at zero.
	dealt, err = c.ApplyDamage(10)
	require.NoError(t, err)
	assert.Equal(t, 0, dealt)
	assert.Equal(t, 0, c.HP())
}

func TestApplyHeal(t *testing.T) {
	c := newTestCombatant(t, "Test", 100)
	_, err := c.ApplyDamage(50)
	require.NoError(t, err)

	healed, err := c.ApplyHeal(25)
	require.NoError(t, err)
	assert.Equal(t, 25, healed)
	assert.Equal(t, 75, c.HP())

	healed, err = c.ApplyHeal(50)
	require.NoError(t, err)
	assert.Equal(t, 25, healed)
	assert.Equal(t, 100, c.HP())

	// Already full stays full.
	healed, err = c.ApplyHeal(10)
	require.NoError(t, err)
	assert.Equal(t, 0, healed)
	assert.Equal(t, 100, c.HP())
}

func TestNegativeAmountsRejected(t *testing.T) {
	c := newTestCombatant(t, "Test", 100)
	_, err := c.ApplyDamage(40)
	require.NoError(t, err)

	_, err = c.ApplyDamage(-5)
	assert.ErrorIs(t, err, ErrNegativeAmount)
	assert.Equal(t, 60, c.HP())

	_, err = c.ApplyHeal(-5)
	assert.ErrorIs(t, err, ErrNegativeAmount)
	assert.Equal(t, 60, c.HP())
}

func TestDamageThenHealRoundTrip(t *testing.T) {
	for _, d := range []int{1, 10, 25, 39} {
		c := newTestCombatant(t, "Test", 100)
		_, err := c.ApplyDamage(40)
		require.NoError(t, err)

		_, err = c.ApplyDamage(d)
		require.NoError(t, err)
		_, err = c.ApplyHeal(d)
		require.NoError(t, err)
		assert.Equal(t, 60, c.HP(), "damage %d then heal %d", d, d)
	}
}

func TestHPStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := newTestCombatant(t, "Test", 80)

	for i := 0; i < 1000; i++ {
		amount := rng.Intn(60)
		var err error
		if rng.Intn(2) == 0 {
			_, err = c.ApplyDamage(amount)
		} else {
			_, err = c.ApplyHeal(amount)
		}
		require.NoError(t, err)
		require.NoError(t, c.CheckInvariant())
		require.GreaterOrEqual(t, c.HP(), 0)
		require.LessOrEqual(t, c.HP(), c.MaxHP)
	}
}

func TestChooseMove(t *testing.T) {
	c := newTestCombatant(t, "Orc King", 120, orcKingMoves...)

	m, err := c.ChooseMove(3)
	require.NoError(t, err)
	assert.Equal(t, "Slam", m.Name)

	for _, idx := range []int{-1, 4, 100} {
		_, err := c.ChooseMove(idx)
		assert.ErrorIs(t, err, ErrInvalidMoveSelection, "index %d", idx)
		assert.ErrorIs(t, err, ErrOutOfRange, "index %d", idx)
	}
}

func TestCheckInvariant(t *testing.T) {
	c := newTestCombatant(t, "Test", 10)
	assert.NoError(t, c.CheckInvariant())

	c.hp = -1
	var violation *InvariantViolation
	require.True(t, errors.As(c.CheckInvariant(), &violation))
	assert.Equal(t, -1, violation.HP)
	assert.Contains(t, violation.Error(), "Test has -1 HP")
}
