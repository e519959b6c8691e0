// internal/hint/types.go
//
// Type definitions for guess feedback.
// Defines:
//   - LetterHint: per-letter result of a guess (correct/placement_incorrect/incorrect).
//   - LetterAndHint: a guessed letter paired with its hint, for display.

package hint

// LetterHint represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct":             letter is in the target at this position.
//   - "placement_incorrect": letter is in the target, but not here (or not this many times).
//   - "incorrect":           letter has no remaining occurrence in the target.
type LetterHint string

const (
	Correct            LetterHint = "correct"
	PlacementIncorrect LetterHint = "placement_incorrect"
	Incorrect          LetterHint = "incorrect"
)

// LetterAndHint pairs one guessed letter with its hint.
type LetterAndHint struct {
	Letter rune
	Hint   LetterHint
}
