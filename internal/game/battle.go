package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/magevsorc/internal/combat"
	"github.com/samdwyer/magevsorc/internal/entity"
	"github.com/samdwyer/magevsorc/internal/gamedata"
	"github.com/samdwyer/magevsorc/internal/telemetry"
)

// ErrBattleOver is returned by PlayTurn once the battle has ended.
var ErrBattleOver = errors.New("battle is over")

const continuePrompt = "Press Enter to continue..."

// Battle is one encounter between a player and an opponent.
// The player always acts first in a turn; the opponent acts only if it survived.
type Battle struct {
	id       string
	player   *entity.Fighter
	opponent *entity.Fighter
	input    InputProvider
	renderer Renderer
	cfg      Config

	rng    *rand.Rand
	tracer trace.Tracer
	logger *slog.Logger

	phase   Phase
	turn    int
	last    *combat.EffectResult
	outcome Outcome
	started bool
}

// Option customizes a Battle.
type Option func(*Battle)

// WithRand sets the random source used for AI move picks.
func WithRand(rng *rand.Rand) Option {
	return func(b *Battle) { b.rng = rng }
}

// WithTracer sets the tracer used for battle spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(b *Battle) { b.tracer = tracer }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Battle) { b.logger = logger }
}

// NewBattle creates a battle ready for its first turn.
func NewBattle(player, opponent *entity.Fighter, input InputProvider, renderer Renderer, cfg Config, opts ...Option) (*Battle, error) {
	if player == nil || opponent == nil {
		return nil, errors.New("battle needs a player and an opponent")
	}
	if input == nil || renderer == nil {
		return nil, errors.New("battle needs an input provider and a renderer")
	}

	b := &Battle{
		id:       uuid.NewString(),
		player:   player,
		opponent: opponent,
		input:    input,
		renderer: renderer,
		cfg:      cfg,
		phase:    PhaseAwaitingPlayerMove,
		turn:     1,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = newRand(cfg.Seed)
	}
	if b.tracer == nil {
		b.tracer = telemetry.Tracer("battle")
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	b.logger = b.logger.With("battle_id", b.id)
	return b, nil
}

// ID returns the battle's unique identifier.
func (b *Battle) ID() string { return b.id }

// Phase returns the current phase.
func (b *Battle) Phase() Phase { return b.phase }

// Turn returns the current turn number, starting at 1.
func (b *Battle) Turn() int { return b.turn }

// Outcome returns how the battle ended, or OutcomeNone while it runs.
func (b *Battle) Outcome() Outcome { return b.outcome }

// Winner returns the winning fighter, or nil if there is none yet.
func (b *Battle) Winner() *entity.Fighter {
	switch b.outcome {
	case OutcomePlayerWins:
		return b.player
	case OutcomeOpponentWins:
		return b.opponent
	default:
		return nil
	}
}

// View returns a snapshot of the battle.
func (b *Battle) View() View {
	return View{
		BattleID: b.id,
		Phase:    b.phase,
		Turn:     b.turn,
		Player:   b.player,
		Opponent: b.opponent,
		Last:     b.last,
		Outcome:  b.outcome,
	}
}

// Run plays turns until the battle ends. Quitting is not an error.
func (b *Battle) Run(ctx context.Context) (Outcome, error) {
	for {
		outcome, err := b.PlayTurn(ctx)
		if err != nil {
			return outcome, err
		}
		if outcome != OutcomeNone {
			return outcome, nil
		}
	}
}

// PlayTurn plays one full turn and returns the outcome if the battle ended.
func (b *Battle) PlayTurn(ctx context.Context) (Outcome, error) {
	if b.phase == PhaseGameOver {
		return b.outcome, ErrBattleOver
	}
	if !b.started {
		b.start(ctx)
	}

	b.transition(PhaseAwaitingPlayerMove)
	move, err := b.selectMove(ctx, b.player)
	if err != nil {
		return b.abort(ctx, err)
	}

	b.transition(PhaseResolvingPlayerMove)
	if err := b.execute(ctx, move, b.player, b.opponent); err != nil {
		return OutcomeNone, err
	}

	b.transition(PhaseCheckOpponentAlive)
	if !b.opponent.IsAlive() {
		b.finish(ctx, OutcomePlayerWins)
		return b.outcome, nil
	}

	b.transition(PhaseResolvingOpponentMove)
	move, err = b.selectMove(ctx, b.opponent)
	if err != nil {
		return b.abort(ctx, err)
	}
	if err := b.execute(ctx, move, b.opponent, b.player); err != nil {
		return OutcomeNone, err
	}

	b.transition(PhaseCheckPlayerAlive)
	if !b.player.IsAlive() {
		b.finish(ctx, OutcomeOpponentWins)
		return b.outcome, nil
	}

	b.turn++
	if b.cfg.PauseBetweenTurns {
		if err := b.input.Acknowledge(ctx, continuePrompt); err != nil {
			return b.abort(ctx, err)
		}
	}
	return OutcomeNone, nil
}

// selectMove asks the fighter's move source for a move.
func (b *Battle) selectMove(ctx context.Context, actor *entity.Fighter) (combat.Move, error) {
	switch actor.Source() {
	case gamedata.SourceRandom:
		// Uniform pick over the fixed move set, no memory between turns.
		return actor.ChooseMove(b.rng.Intn(actor.MoveCount()))
	case gamedata.SourcePlayer:
		for {
			if err := ctx.Err(); err != nil {
				return combat.Move{}, err
			}
			idx, err := b.input.SelectMove(ctx, actor.Combatant)
			if err == nil {
				var move combat.Move
				move, err = actor.ChooseMove(idx)
				if err == nil {
					return move, nil
				}
			}
			if !errors.Is(err, combat.ErrInvalidMoveSelection) {
				return combat.Move{}, err
			}
			b.logger.Debug("rejected move selection", "actor", actor.Name, "err", err)
			b.renderer.Reject(err)
		}
	default:
		return combat.Move{}, fmt.Errorf("%s has unknown move source %q", actor.Name, actor.Source())
	}
}

// execute resolves a move and records it.
func (b *Battle) execute(ctx context.Context, move combat.Move, user, target *entity.Fighter) error {
	_, span := b.tracer.Start(ctx, "battle.turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("battle.id", b.id),
		attribute.Int("turn", b.turn),
		attribute.String("actor", user.Name),
		attribute.String("move", move.Name),
		attribute.String("effect", string(move.Effect)),
	)

	result, err := combat.Resolve(move, user.Combatant, target.Combatant)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		b.logger.Error("move resolution failed", "actor", user.Name, "move", move.Name, "err", err)
		return fmt.Errorf("failed to resolve %s: %w", move.Name, err)
	}

	span.SetAttributes(
		attribute.String("target", result.Target),
		attribute.Int("amount", result.Amount),
		attribute.Int("applied", result.Applied),
	)
	b.logger.Debug("move resolved",
		"turn", b.turn,
		"actor", user.Name,
		"move", move.Name,
		"applied", result.Applied,
		"player_hp", b.player.HP(),
		"opponent_hp", b.opponent.HP(),
	)

	b.last = &result
	return nil
}

// transition moves to the next phase and shows it.
func (b *Battle) transition(p Phase) {
	b.phase = p
	b.renderer.Render(b.View())
}

// abort ends the battle on a quit request, or passes other errors up.
func (b *Battle) abort(ctx context.Context, err error) (Outcome, error) {
	if errors.Is(err, ErrQuit) {
		b.finish(ctx, OutcomeQuit)
		return b.outcome, nil
	}
	return OutcomeNone, err
}

// start records the beginning of the battle.
func (b *Battle) start(ctx context.Context) {
	b.started = true

	_, span := b.tracer.Start(ctx, "battle.start")
	span.SetAttributes(
		attribute.String("battle.id", b.id),
		attribute.String("player", b.player.Name),
		attribute.String("opponent", b.opponent.Name),
	)
	span.End()

	b.logger.Info("battle started", "player", b.player.Name, "opponent", b.opponent.Name)
}

// finish moves to GameOver and records the result.
func (b *Battle) finish(ctx context.Context, outcome Outcome) {
	b.outcome = outcome

	_, span := b.tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("battle.id", b.id),
		attribute.String("outcome", outcome.String()),
		attribute.Int("turns_taken", b.turn),
		attribute.Int("player_hp_remaining", b.player.HP()),
		attribute.Int("opponent_hp_remaining", b.opponent.HP()),
	)
	span.End()

	b.logger.Info("battle ended", "outcome", outcome.String(), "turns", b.turn)
	b.transition(PhaseGameOver)
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
