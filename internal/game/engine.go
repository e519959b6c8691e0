// internal/game/engine.go
//
// Core game engine for a single round.
// Responsibilities:
//   - Create games with a target word and an attempt limit (default 6).
//   - Validate and record guesses (length, duplicates).
//   - Derive the state on demand: won → lost → pending, in that priority.
//   - Hand out hint views over recorded guesses (see the hint package).
//
// Notes:
//   - Words are compared in canonical uppercase; lengths are counted in letters (runes).
//   - Word selection is not done here: callers pass the target they picked.
//   - Guesses are still accepted after the round is over; stopping is the caller's job.
package game

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordle/apps/go-engine/internal/hint"
)

// DefaultAttemptLimit is the number of guesses a game allows unless told otherwise.
const DefaultAttemptLimit = 6

// New constructs a game whose goal is to guess target, with DefaultAttemptLimit attempts.
func New(target string) (*Game, error) {
	target = canonical(target)
	if target == "" {
		return nil, ErrEmptyTarget
	}
	return &Game{
		target:       target,
		guesses:      []string{},
		attemptLimit: DefaultAttemptLimit,
	}, nil
}

// NewWithLimit constructs a game with a custom attempt limit.
func NewWithLimit(target string, attemptLimit int) (*Game, error) {
	if attemptLimit < 1 {
		return nil, ErrInvalidAttemptLimit
	}
	g, err := New(target)
	if err != nil {
		return nil, err
	}
	g.attemptLimit = attemptLimit
	return g, nil
}

// CheckGuess reports the error SubmitGuess would return for guess, without recording it.
func (g *Game) CheckGuess(guess string) error {
	_, err := g.check(guess)
	return err
}

// SubmitGuess validates guess and appends it to the history.
// On error the game is left untouched. On success it returns the new state.
func (g *Game) SubmitGuess(guess string) (State, error) {
	guess, err := g.check(guess)
	if err != nil {
		return State{}, err
	}
	g.guesses = append(g.guesses, guess)
	return g.State(), nil
}

// check normalizes guess and validates it against the target and history.
func (g *Game) check(guess string) (string, error) {
	guess = canonical(guess)
	given, expected := utf8.RuneCountInString(guess), g.WordLength()
	if given != expected {
		return "", &LengthMismatchError{Given: given, Expected: expected}
	}
	for _, prev := range g.guesses {
		if prev == guess {
			return "", ErrAlreadyGuessed
		}
	}
	return guess, nil
}

// State derives the current state from the history.
// A final guess that both hits the target and exhausts the limit is a win.
func (g *Game) State() State {
	n := len(g.guesses)
	switch {
	case n > 0 && g.guesses[n-1] == g.target:
		return State{Status: StatusWon, Attempts: n}
	case n >= g.attemptLimit:
		return State{Status: StatusLost}
	default:
		return State{Status: StatusPending, AttemptsRemaining: g.attemptLimit - n}
	}
}

// HintFor returns the hint for the i-th recorded guess (0 = oldest).
func (g *Game) HintFor(i int) (hint.GuessHint, bool) {
	if i < 0 || i >= len(g.guesses) {
		return hint.GuessHint{}, false
	}
	return hint.New(g.guesses[i], g.target), true
}

// Hints returns hints for every recorded guess, oldest first.
func (g *Game) Hints() []hint.GuessHint {
	out := make([]hint.GuessHint, len(g.guesses))
	for i, guess := range g.guesses {
		out[i] = hint.New(guess, g.target)
	}
	return out
}

// LatestHint returns the hint for the newest guess, if any.
func (g *Game) LatestHint() (hint.GuessHint, bool) {
	return g.HintFor(len(g.guesses) - 1)
}

// TargetWord returns the word to guess, in canonical case.
func (g *Game) TargetWord() string { return g.target }

// WordLength is the number of letters in the target word.
func (g *Game) WordLength() int { return utf8.RuneCountInString(g.target) }

// AttemptLimit is the number of guesses allowed before the round is lost.
func (g *Game) AttemptLimit() int { return g.attemptLimit }

// Guesses returns a copy of the recorded guesses, oldest first.
func (g *Game) Guesses() []string {
	return append([]string(nil), g.guesses...)
}

// canonical maps s to the case every comparison is made in.
// Invalid UTF-8 becomes U+FFFD first, so comparisons and hints see the same letters.
func canonical(s string) string {
	return cases.Upper(language.Und).String(strings.ToValidUTF8(s, "\uFFFD"))
}
