package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdwyer/magevsorc/internal/combat"
	"github.com/samdwyer/magevsorc/internal/entity"
	"github.com/samdwyer/magevsorc/internal/gamedata"
)

// selection is one scripted answer to SelectMove.
type selection struct {
	index int
	err   error
}

// scriptedInput replays selections in order and repeats the last one when exhausted.
type scriptedInput struct {
	selections []selection
	calls      int
	acks       []string
	ackErr     error
	confirms   []bool
	confirmed  int
}

func (s *scriptedInput) SelectMove(_ context.Context, _ *combat.Combatant) (int, error) {
	i := min(s.calls, len(s.selections)-1)
	s.calls++
	return s.selections[i].index, s.selections[i].err
}

func (s *scriptedInput) Acknowledge(_ context.Context, prompt string) error {
	s.acks = append(s.acks, prompt)
	return s.ackErr
}

func (s *scriptedInput) Confirm(_ context.Context, _ string) (bool, error) {
	s.confirmed++
	if len(s.confirms) == 0 {
		return false, nil
	}
	answer := s.confirms[0]
	s.confirms = s.confirms[1:]
	return answer, nil
}

func always(index int) *scriptedInput {
	return &scriptedInput{selections: []selection{{index: index}}}
}

// frame is what the renderer saw at one transition.
type frame struct {
	phase      Phase
	turn       int
	playerHP   int
	opponentHP int
	last       *combat.EffectResult
}

type recordingRenderer struct {
	frames  []frame
	rejects []error
	intros  int
}

func (r *recordingRenderer) Intro() { r.intros++ }

func (r *recordingRenderer) Render(v View) {
	r.frames = append(r.frames, frame{
		phase:      v.Phase,
		turn:       v.Turn,
		playerHP:   v.Player.HP(),
		opponentHP: v.Opponent.HP(),
		last:       v.Last,
	})
}

func (r *recordingRenderer) Reject(err error) { r.rejects = append(r.rejects, err) }

func (r *recordingRenderer) phases() []Phase {
	out := make([]Phase, len(r.frames))
	for i, f := range r.frames {
		out[i] = f.phase
	}
	return out
}

func newMatchup(t *testing.T) (*entity.Fighter, *entity.Fighter) {
	t.Helper()
	player, opponent, err := entity.NewMatchup(gamedata.MustLoadRegistry())
	require.NoError(t, err)
	return player, opponent
}

// fighterWithMaxHP builds a roster fighter with a different HP pool.
func fighterWithMaxHP(t *testing.T, id string, maxHP int) *entity.Fighter {
	t.Helper()
	def := *gamedata.MustLoadRegistry().GetByID(id)
	def.MaxHP = maxHP
	f, err := entity.NewFighter(&def)
	require.NoError(t, err)
	return f
}

// trainingDummy never deals damage.
func trainingDummy(t *testing.T) *entity.Fighter {
	t.Helper()
	f, err := entity.NewFighter(&gamedata.CombatantDef{
		ID:     "dummy",
		Name:   "Training Dummy",
		MaxHP:  50,
		Source: gamedata.SourceRandom,
		Moves: []gamedata.MoveDef{
			{ID: "stare", Name: "Stare", EffectType: gamedata.EffectDamage, Power: 0},
		},
	})
	require.NoError(t, err)
	return f
}

func newTestBattle(t *testing.T, player, opponent *entity.Fighter, input InputProvider, renderer Renderer, opts ...Option) *Battle {
	t.Helper()
	b, err := NewBattle(player, opponent, input, renderer, Config{Seed: 7}, opts...)
	require.NoError(t, err)
	return b
}
