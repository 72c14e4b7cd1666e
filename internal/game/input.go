package game

//go:generate mockgen -destination=mock/mock_input.go -package=mockgame -source=input.go

import (
	"context"
	"errors"

	"github.com/samdwyer/magevsorc/internal/combat"
	"github.com/samdwyer/magevsorc/internal/entity"
)

// ErrQuit is returned by an InputProvider when the player wants to leave.
var ErrQuit = errors.New("player quit")

// InputProvider supplies the player's decisions.
type InputProvider interface {
	// SelectMove returns a move slot for actor. Errors wrapping
	// combat.ErrInvalidMoveSelection make the battle ask again.
	SelectMove(ctx context.Context, actor *combat.Combatant) (int, error)

	// Acknowledge blocks until the player is ready to go on.
	Acknowledge(ctx context.Context, prompt string) error

	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Renderer shows the battle to the player. It never affects the outcome.
type Renderer interface {
	// Intro shows the title screen before the first battle.
	Intro()

	// Render is called after every phase transition.
	Render(view View)

	// Reject tells the player a selection was not accepted.
	Reject(err error)
}

// View is a snapshot of a battle handed to the Renderer.
type View struct {
	BattleID string
	Phase    Phase
	Turn     int
	Player   *entity.Fighter
	Opponent *entity.Fighter
	Last     *combat.EffectResult // Most recent resolved move, nil before the first
	Outcome  Outcome
}
