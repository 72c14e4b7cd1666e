package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samdwyer/magevsorc/internal/entity"
)

const (
	beginPrompt     = "Press Enter to begin the battle..."
	playAgainPrompt = "Would you like to play again? (y/n)"
)

// MatchupFunc builds a fresh player and opponent for a new battle.
type MatchupFunc func() (player, opponent *entity.Fighter, err error)

// Session runs battles back to back for as long as the player wants a rematch.
// Every rematch is a new Battle with newly built fighters.
type Session struct {
	newMatchup MatchupFunc
	input      InputProvider
	renderer   Renderer
	cfg        Config
	opts       []Option
}

// NewSession creates a session. The options are applied to every battle.
func NewSession(newMatchup MatchupFunc, input InputProvider, renderer Renderer, cfg Config, opts ...Option) *Session {
	// One random source for the whole session so rematches do not replay the same picks.
	shared := []Option{WithRand(newRand(cfg.Seed))}
	return &Session{
		newMatchup: newMatchup,
		input:      input,
		renderer:   renderer,
		cfg:        cfg,
		opts:       append(shared, opts...),
	}
}

// Run plays battles until the player declines a rematch or quits.
// It returns the outcome of every battle played.
func (s *Session) Run(ctx context.Context) ([]Outcome, error) {
	s.renderer.Intro()
	if err := s.input.Acknowledge(ctx, beginPrompt); err != nil {
		if errors.Is(err, ErrQuit) {
			return nil, nil
		}
		return nil, err
	}

	var outcomes []Outcome
	for {
		player, opponent, err := s.newMatchup()
		if err != nil {
			return outcomes, fmt.Errorf("failed to create fighters: %w", err)
		}

		battle, err := NewBattle(player, opponent, s.input, s.renderer, s.cfg, s.opts...)
		if err != nil {
			return outcomes, err
		}

		outcome, err := battle.Run(ctx)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
		slog.Debug("session battle finished", "battle_id", battle.ID(), "outcome", outcome.String(), "played", len(outcomes))

		if outcome == OutcomeQuit {
			return outcomes, nil
		}

		again, err := s.input.Confirm(ctx, playAgainPrompt)
		if err != nil {
			if errors.Is(err, ErrQuit) {
				return outcomes, nil
			}
			return outcomes, err
		}
		if !again {
			return outcomes, nil
		}
	}
}
