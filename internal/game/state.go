// Package game provides the battle loop and session management.
package game

// Phase represents where a battle is within a turn.
type Phase int

const (
	// PhaseAwaitingPlayerMove waits for the player to pick a move.
	PhaseAwaitingPlayerMove Phase = iota
	// PhaseResolvingPlayerMove applies the player's move.
	PhaseResolvingPlayerMove
	// PhaseCheckOpponentAlive decides whether the opponent gets to act.
	PhaseCheckOpponentAlive
	// PhaseResolvingOpponentMove applies the opponent's move.
	PhaseResolvingOpponentMove
	// PhaseCheckPlayerAlive decides whether another turn starts.
	PhaseCheckPlayerAlive
	// PhaseGameOver is terminal; see Outcome for how it ended.
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingPlayerMove:
		return "awaiting_player_move"
	case PhaseResolvingPlayerMove:
		return "resolving_player_move"
	case PhaseCheckOpponentAlive:
		return "check_opponent_alive"
	case PhaseResolvingOpponentMove:
		return "resolving_opponent_move"
	case PhaseCheckPlayerAlive:
		return "check_player_alive"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome is how a battle ended.
type Outcome int

const (
	// OutcomeNone means the battle is still running.
	OutcomeNone Outcome = iota
	// OutcomePlayerWins means the opponent reached 0 HP.
	OutcomePlayerWins
	// OutcomeOpponentWins means the player reached 0 HP.
	OutcomeOpponentWins
	// OutcomeQuit means the player left before a winner was decided.
	OutcomeQuit
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomePlayerWins:
		return "victory"
	case OutcomeOpponentWins:
		return "defeat"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}
