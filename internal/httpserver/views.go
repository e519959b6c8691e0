package httpserver

import (
	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
	"github.com/robalobadob/wordle/apps/go-engine/internal/hint"
)

// letterView is one tile of a hint row.
type letterView struct {
	Letter string          `json:"letter"`
	Hint   hint.LetterHint `json:"hint"`
}

// hintView is one guess with its tiles.
type hintView struct {
	Guess   string       `json:"guess"`
	Letters []letterView `json:"letters"`
}

// gameView is what GET /games/{id} returns.
type gameView struct {
	WordLength   int        `json:"wordLength"`
	AttemptLimit int        `json:"attemptLimit"`
	State        game.State `json:"state"`
	Hints        []hintView `json:"hints"`
	Target       string     `json:"target,omitempty"` // set once the game is over
}

func hintViewOf(h hint.GuessHint) hintView {
	lh := h.LettersAndHints()
	v := hintView{Guess: h.Guessed(), Letters: make([]letterView, len(lh))}
	for i, x := range lh {
		v.Letters[i] = letterView{Letter: string(x.Letter), Hint: x.Hint}
	}
	return v
}

func hintViewsOf(g *game.Game) []hintView {
	hints := g.Hints()
	out := make([]hintView, len(hints))
	for i, h := range hints {
		out[i] = hintViewOf(h)
	}
	return out
}

func viewOf(g *game.Game) gameView {
	v := gameView{
		WordLength:   g.WordLength(),
		AttemptLimit: g.AttemptLimit(),
		State:        g.State(),
		Hints:        hintViewsOf(g),
	}
	if v.State.Terminal() {
		v.Target = g.TargetWord()
	}
	return v
}
