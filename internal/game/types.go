// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Status / State: derived progress of a game (pending/won/lost).
//   - Game: target word, guess history and attempt limit for one round.

package game

// Status is the coarse progress of a game.
type Status string

const (
	StatusPending Status = "pending"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// State is derived from the guess history on every query; it is never stored.
// AttemptsRemaining is set only while pending, Attempts only once won.
type State struct {
	Status            Status `json:"status"`
	AttemptsRemaining int    `json:"attemptsRemaining,omitempty"`
	Attempts          int    `json:"attempts,omitempty"`
}

// Terminal reports whether the round is over (won or lost).
func (s State) Terminal() bool { return s.Status != StatusPending }

// Game holds the state of a single round.
// A Game is not safe for concurrent use; embedders serialize access per game.
type Game struct {
	target       string   // Word to guess (canonical uppercase, never empty).
	guesses      []string // Accepted guesses, oldest first (canonical uppercase).
	attemptLimit int      // Guesses allowed before the round is lost (>= 1).
}
