package game

import (
	"errors"
	"fmt"
)

// Construction errors.
var (
	ErrEmptyTarget         = errors.New("game: target word is empty")
	ErrInvalidAttemptLimit = errors.New("game: attempt limit must be at least 1")
)

// Guess errors.
var (
	ErrLengthMismatch = errors.New("game: guess length mismatch")
	ErrAlreadyGuessed = errors.New("game: word already guessed")
)

// LengthMismatchError reports both lengths of a rejected guess.
// It matches ErrLengthMismatch under errors.Is.
type LengthMismatchError struct {
	Given    int
	Expected int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("game: guess has %d letters, expected %d", e.Given, e.Expected)
}

func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }
