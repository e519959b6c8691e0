package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
	"github.com/robalobadob/wordle/apps/go-engine/internal/hint"
)

// Screen control sequences.
const (
	escClear        = "\x1b[2J\x1b[H"
	escAltScreenOn  = "\x1b[?1049h"
	escAltScreenOff = "\x1b[?1049l"
)

var (
	greenTile  = ansi.ColorFunc("black:green")
	yellowTile = ansi.ColorFunc("black:yellow")
)

// ColorEnabled reports whether f is a terminal and NO_COLOR is unset.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Renderer draws boards and messages.
// Without colour, tiles are marked [A] (correct), (A) (misplaced) and " A " (absent),
// and screen control sequences are not emitted.
type Renderer struct {
	w     io.Writer
	color bool
}

// NewRenderer writes to w; color enables ANSI escapes.
func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, color: color}
}

// Tile formats one letter with its hint.
func (r *Renderer) Tile(l hint.LetterAndHint) string {
	s := string(l.Letter)
	if r.color {
		switch l.Hint {
		case hint.Correct:
			return greenTile(s)
		case hint.PlacementIncorrect:
			return yellowTile(s)
		default:
			return s
		}
	}
	switch l.Hint {
	case hint.Correct:
		return "[" + s + "]"
	case hint.PlacementIncorrect:
		return "(" + s + ")"
	default:
		return " " + s + " "
	}
}

// Row formats a whole guess.
func (r *Renderer) Row(h hint.GuessHint) string {
	lh := h.LettersAndHints()
	tiles := make([]string, len(lh))
	for i, l := range lh {
		tiles[i] = r.Tile(l)
	}
	return strings.Join(tiles, " ")
}

// Board prints every guess so far, or a placeholder before the first one.
func (r *Renderer) Board(g *game.Game) {
	hints := g.Hints()
	if len(hints) == 0 {
		n := g.WordLength()
		r.Printf("%s (%d characters)\n", strings.Repeat("-", n), n)
		return
	}
	for _, h := range hints {
		r.Printf("%s\n\n", r.Row(h))
	}
}

// Printf writes formatted text.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

// Clear wipes the screen and homes the cursor.
func (r *Renderer) Clear() { r.esc(escClear) }

// EnterAltScreen switches to the alternate screen buffer.
func (r *Renderer) EnterAltScreen() { r.esc(escAltScreenOn + escClear) }

// LeaveAltScreen restores the main screen buffer.
func (r *Renderer) LeaveAltScreen() { r.esc(escAltScreenOff) }

func (r *Renderer) esc(seq string) {
	if r.color {
		_, _ = io.WriteString(r.w, seq)
	}
}

// attemptsText returns "attempt" with the correct plural form.
func attemptsText(n int) string {
	if n == 1 {
		return "attempt"
	}
	return "attempts"
}
