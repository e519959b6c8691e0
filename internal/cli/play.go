package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

// Screen pauses, as in the classic client.
const (
	WelcomePause = 700 * time.Millisecond
	GoodbyePause = 800 * time.Millisecond
)

// Session plays games until the player stops.
type Session struct {
	Picker       words.Picker
	Prompt       Prompter
	Render       *Renderer
	AttemptLimit int // 0 means game.DefaultAttemptLimit

	// Welcome and Goodbye hold the greeting screens for this long.
	Welcome, Goodbye time.Duration
	sleep            func(time.Duration)
}

// Run shows the welcome screen, plays games while the player wants to, then says goodbye.
// An interrupt ends the session normally.
func (s *Session) Run() error {
	r := s.Render
	r.EnterAltScreen()
	defer r.LeaveAltScreen()

	r.Printf("Welcome to WORDLE\n")
	s.pause(s.Welcome)

	for played := 1; ; played++ {
		st, err := s.PlayOne()
		if errors.Is(err, ErrInterrupted) {
			break
		}
		if err != nil {
			return err
		}
		log.Debug().Int("game", played).Str("status", string(st.Status)).Msg("game finished")

		again, err := s.Prompt.KeepPlaying()
		if err != nil && !errors.Is(err, ErrInterrupted) {
			return err
		}
		if !again || err != nil {
			break
		}
	}

	r.Clear()
	r.Printf("Thanks for playing WORDLE.\n\nSee you soon!\n")
	s.pause(s.Goodbye)
	return nil
}

// PlayOne plays a single game to its end and returns the final state.
func (s *Session) PlayOne() (game.State, error) {
	r := s.Render
	r.Clear()
	r.Printf("Playing one game of wordle\n")

	limit := s.AttemptLimit
	if limit == 0 {
		limit = game.DefaultAttemptLimit
	}
	g, err := game.NewWithLimit(s.Picker.Pick(), limit)
	if err != nil {
		return game.State{}, fmt.Errorf("new game: %w", err)
	}
	r.Board(g)

	for {
		guess, err := s.Prompt.Guess(func(v string) error { return guessProblem(g, v) })
		if err != nil {
			return g.State(), err
		}
		st, err := g.SubmitGuess(guess)
		if err != nil {
			// The prompt validated already; report and ask again.
			r.Printf("%s\n", guessProblem(g, guess))
			continue
		}

		r.Clear()
		r.Board(g)
		switch st.Status {
		case game.StatusLost:
			r.Printf("You lost :(\nThe word to guess was %s.\n", g.TargetWord())
			return st, nil
		case game.StatusWon:
			r.Printf("You win with %d %s :)\n", st.Attempts, attemptsText(st.Attempts))
			return st, nil
		default:
			r.Printf("%d %s remaining\n", st.AttemptsRemaining, attemptsText(st.AttemptsRemaining))
		}
	}
}

// guessProblem turns a rejected guess into the message shown to the player.
func guessProblem(g *game.Game, guess string) error {
	if guess == "" {
		return errors.New("Please provide a guess word.")
	}
	err := g.CheckGuess(guess)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, game.ErrLengthMismatch):
		return fmt.Errorf("Please type a %d-letter word.", g.WordLength())
	case errors.Is(err, game.ErrAlreadyGuessed):
		return errors.New("This word has already been played.")
	default:
		return err
	}
}

func (s *Session) pause(d time.Duration) {
	if d <= 0 {
		return
	}
	if s.sleep != nil {
		s.sleep(d)
		return
	}
	time.Sleep(d)
}
