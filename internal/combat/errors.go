package combat

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMoveSelection is returned for a move choice that cannot be used.
	// Callers recover by asking again.
	ErrInvalidMoveSelection = errors.New("invalid move selection")

	// ErrOutOfRange is wrapped by ErrInvalidMoveSelection when the index is not a move slot.
	ErrOutOfRange = errors.New("move index out of range")

	// ErrNegativeAmount is returned when damage or healing would be negative.
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// outOfRangeError matches both ErrInvalidMoveSelection and ErrOutOfRange.
type outOfRangeError struct {
	index int
	count int
}

func (e *outOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d not in [0, %d)", ErrInvalidMoveSelection, e.index, e.count)
}

func (e *outOfRangeError) Unwrap() []error {
	return []error{ErrInvalidMoveSelection, ErrOutOfRange}
}

// InvariantViolation reports a combatant whose HP left [0, MaxHP].
// It indicates a programming defect, not a user error.
type InvariantViolation struct {
	Name  string
	HP    int
	MaxHP int
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s has %d HP, want 0..%d", e.Name, e.HP, e.MaxHP)
}
