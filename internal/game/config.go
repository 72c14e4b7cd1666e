package game

// Config holds battle options.
type Config struct {
	// Seed for the AI's move picks. A seed of 0 means a time-based seed.
	Seed int64

	// PauseBetweenTurns asks the input provider to acknowledge before each new turn.
	PauseBetweenTurns bool
}
