package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
)

func newGame(t *testing.T, target string) *game.Game {
	t.Helper()
	g, err := game.New(target)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

func TestCreateWithDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	id, err := st.Create(ctx, newGame(t, "crane"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(id) != 16 {
		t.Fatalf("expected 16-char id, got %q", id)
	}
	if st.Len() != 1 {
		t.Fatalf("expected 1 game, got %d", st.Len())
	}

	err = st.With(ctx, id, func(g *game.Game) error {
		_, err := g.SubmitGuess("slate")
		return err
	})
	if err != nil {
		t.Fatalf("with: %v", err)
	}
	_ = st.With(ctx, id, func(g *game.Game) error {
		if len(g.Guesses()) != 1 {
			t.Fatalf("expected the guess to be kept, got %v", g.Guesses())
		}
		return nil
	})

	if err := st.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := st.Delete(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if err := st.With(ctx, id, func(*game.Game) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestWithReturnsCallbackError(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	id, _ := st.Create(ctx, newGame(t, "crane"))
	err := st.With(ctx, id, func(g *game.Game) error {
		_, err := g.SubmitGuess("no")
		return err
	})
	if !errors.Is(err, game.ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestWithCancelledContext(t *testing.T) {
	st := NewMemoryStore()
	id, _ := st.Create(context.Background(), newGame(t, "crane"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := st.With(ctx, id, func(*game.Game) error { called = true; return nil })
	if !errors.Is(err, context.Canceled) || called {
		t.Fatalf("expected context.Canceled without calling fn, got %v (called=%v)", err, called)
	}
}

func TestWithSerializesAccess(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	g, err := game.NewWithLimit("aaaaaaaa", 100)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	id, _ := st.Create(ctx, g)

	guesses := []string{"bbbbbbbb", "cccccccc", "dddddddd", "eeeeeeee", "ffffffff", "gggggggg", "hhhhhhhh", "iiiiiiii"}
	var wg sync.WaitGroup
	for _, w := range guesses {
		wg.Add(1)
		go func(w string) {
			defer wg.Done()
			_ = st.With(ctx, id, func(g *game.Game) error {
				_, err := g.SubmitGuess(w)
				return err
			})
		}(w)
	}
	wg.Wait()

	_ = st.With(ctx, id, func(g *game.Game) error {
		if n := len(g.Guesses()); n != len(guesses) {
			t.Fatalf("expected %d guesses, got %d", len(guesses), n)
		}
		return nil
	})
}

func TestSweepDropsOldGames(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	id, _ := st.Create(ctx, newGame(t, "crane"))

	if n := st.Sweep(time.Now().Add(-time.Hour)); n != 0 {
		t.Fatalf("expected nothing swept before creation time, got %d", n)
	}
	if st.Len() != 1 {
		t.Fatalf("expected game to survive, got %d games", st.Len())
	}

	if n := st.Sweep(time.Now().Add(time.Second)); n != 1 {
		t.Fatalf("expected 1 game swept, got %d", n)
	}
	if err := st.With(ctx, id, func(*game.Game) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after sweep, got %v", err)
	}
}
