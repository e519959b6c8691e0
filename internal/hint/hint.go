// internal/hint/hint.go
//
// Hint computation for a single guess.
// Responsibilities:
//   - Pair a guessed word with the target word (GuessHint).
//   - Score the guess with the two-pass, duplicate-aware Wordle algorithm.
//
// Notes:
//   - Both words must already be in the same canonical case; the game package
//     is the only constructor in practice and normalizes before storing.
//   - Nothing is cached: hints are recomputed on every call.
package hint

// GuessHint is a read-only view over one guess and the target it was played against.
type GuessHint struct {
	guessed string
	target  string
}

// New pairs guessed with target.
// It panics if either word is empty or if their letter counts differ: those
// are caller defects, not user input.
func New(guessed, target string) GuessHint {
	switch g, t := []rune(guessed), []rune(target); {
	case len(g) == 0:
		panic("hint: guessed word must not be empty")
	case len(t) == 0:
		panic("hint: target word must not be empty")
	case len(g) != len(t):
		panic("hint: guessed and target words must have the same length")
	}
	return GuessHint{guessed: guessed, target: target}
}

// Guessed returns the guessed word.
func (h GuessHint) Guessed() string { return h.guessed }

// LetterHints returns one hint per guessed letter, in order.
func (h GuessHint) LetterHints() []LetterHint {
	return score([]rune(h.guessed), []rune(h.target))
}

// LettersAndHints associates each guessed letter with its hint.
func (h GuessHint) LettersAndHints() []LetterAndHint {
	letters := []rune(h.guessed)
	hints := score(letters, []rune(h.target))
	out := make([]LetterAndHint, len(letters))
	for i, r := range letters {
		out[i] = LetterAndHint{Letter: r, Hint: hints[i]}
	}
	return out
}

// Solved reports whether every letter is Correct.
func (h GuessHint) Solved() bool {
	return h.guessed == h.target
}

// score implements the two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count target letters at the positions that are not Correct.
//
// Pass 2, left to right over the non-Correct guess positions:
//   - A letter is PlacementIncorrect while the number of times this pass has
//     already credited it stays below its remaining count; otherwise Incorrect.
//
// Letters beyond the target's remaining count are therefore never credited,
// which is what makes repeated letters come out right.
func score(guessed, target []rune) []LetterHint {
	n := len(guessed)
	res := make([]LetterHint, n)

	remaining := make(map[rune]int, n)
	for i := 0; i < n; i++ {
		if guessed[i] == target[i] {
			res[i] = Correct
		} else {
			remaining[target[i]]++
		}
	}

	consumed := make(map[rune]int, n)
	for i := 0; i < n; i++ {
		if res[i] == Correct {
			continue
		}
		r := guessed[i]
		if remaining[r] > consumed[r] {
			res[i] = PlacementIncorrect
			consumed[r]++
		} else {
			res[i] = Incorrect
		}
	}
	return res
}
