package cli

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/robalobadob/wordle/apps/go-engine/internal/config"
	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

// scriptedPrompter answers prompts from fixed scripts, running the validator
// the way survey does: rejected answers are recorded and the next one is tried.
type scriptedPrompter struct {
	guesses  []string
	again    []bool
	rejected []string
}

func (p *scriptedPrompter) Guess(validate func(string) error) (string, error) {
	for len(p.guesses) > 0 {
		g := p.guesses[0]
		p.guesses = p.guesses[1:]
		if err := validate(g); err != nil {
			p.rejected = append(p.rejected, err.Error())
			continue
		}
		return g, nil
	}
	return "", ErrInterrupted
}

func (p *scriptedPrompter) KeepPlaying() (bool, error) {
	if len(p.again) == 0 {
		return false, ErrInterrupted
	}
	a := p.again[0]
	p.again = p.again[1:]
	return a, nil
}

func newSession(t *testing.T, p Prompter, out *strings.Builder, limit int, list ...string) *Session {
	t.Helper()
	picker, err := words.NewList(list)
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}
	return &Session{
		Picker:       picker,
		Prompt:       p,
		Render:       NewRenderer(out, false),
		AttemptLimit: limit,
	}
}

func TestPlayOneWin(t *testing.T) {
	p := &scriptedPrompter{guesses: []string{"", "abc", "slate", "slate", "crane"}}
	var out strings.Builder
	st, err := newSession(t, p, &out, 0, "crane").PlayOne()
	if err != nil {
		t.Fatalf("PlayOne: %v", err)
	}
	if diff := cmp.Diff(game.State{Status: game.StatusWon, Attempts: 2}, st); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
	wantRejected := []string{
		"Please provide a guess word.",
		"Please type a 5-letter word.",
		"This word has already been played.",
	}
	if diff := cmp.Diff(wantRejected, p.rejected); diff != "" {
		t.Fatalf("rejections mismatch (-want +got):\n%s", diff)
	}
	for _, want := range []string{
		"Playing one game of wordle\n",
		"----- (5 characters)\n",
		" S   L  [A]  T  [E]\n\n",
		"5 attempts remaining\n",
		"[C] [R] [A] [N] [E]\n\n",
		"You win with 2 attempts :)\n",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestPlayOneLose(t *testing.T) {
	p := &scriptedPrompter{guesses: []string{"slate", "nacre"}}
	var out strings.Builder
	st, err := newSession(t, p, &out, 2, "crane").PlayOne()
	if err != nil {
		t.Fatalf("PlayOne: %v", err)
	}
	if st.Status != game.StatusLost {
		t.Fatalf("expected lost, got %+v", st)
	}
	for _, want := range []string{
		"1 attempt remaining\n",
		"You lost :(\nThe word to guess was CRANE.\n",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestPlayOneInterrupted(t *testing.T) {
	p := &scriptedPrompter{guesses: []string{"slate"}}
	var out strings.Builder
	st, err := newSession(t, p, &out, 0, "crane").PlayOne()
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
	if st.Status != game.StatusPending || st.AttemptsRemaining != 5 {
		t.Fatalf("unexpected state %+v", st)
	}
}

func TestRunKeepsPlaying(t *testing.T) {
	p := &scriptedPrompter{
		guesses: []string{"crane", "slate"},
		again:   []bool{true, false},
	}
	var out strings.Builder
	s := newSession(t, p, &out, 0, "crane", "slate")
	var slept []string
	s.Welcome, s.Goodbye = WelcomePause, GoodbyePause
	s.sleep = func(d time.Duration) { slept = append(slept, d.String()) }

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	if n := strings.Count(got, "You win with 1 attempt :)"); n != 2 {
		t.Fatalf("expected two wins, got %d:\n%s", n, got)
	}
	if !strings.HasPrefix(got, "Welcome to WORDLE\n") {
		t.Fatalf("missing welcome:\n%s", got)
	}
	if !strings.HasSuffix(got, "Thanks for playing WORDLE.\n\nSee you soon!\n") {
		t.Fatalf("missing goodbye:\n%s", got)
	}
	if diff := cmp.Diff([]string{"700ms", "800ms"}, slept); diff != "" {
		t.Fatalf("pauses mismatch (-want +got):\n%s", diff)
	}
}

func TestRunInterruptedSaysGoodbye(t *testing.T) {
	var out strings.Builder
	s := newSession(t, &scriptedPrompter{}, &out, 0, "crane")
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "See you soon!") {
		t.Fatalf("missing goodbye:\n%s", out.String())
	}
}

func testEnv(stdin string, p Prompter) (Env, *strings.Builder, *strings.Builder) {
	var stdout, stderr strings.Builder
	return Env{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
		Prompt: p,
		Config: config.Config{Picker: config.PickerList, AttemptLimit: 6},
		Sleep:  func(time.Duration) {},
	}, &stdout, &stderr
}

func TestExecuteFromStdin(t *testing.T) {
	p := &scriptedPrompter{guesses: []string{"world"}, again: []bool{false}}
	env, stdout, stderr := testEnv("# words\n\nworld\n", p)
	if code := Execute([]string{"wordle"}, env); code != ExitSuccess {
		t.Fatalf("exit %d, stderr %q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "You win with 1 attempt :)") {
		t.Fatalf("unexpected output:\n%s", stdout.String())
	}
}

func TestExecuteErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		stdin  string
		stderr string
	}{
		{"empty list", []string{"wordle"}, "# nothing\n\n", "provided file did not contain any word\n"},
		{"unexpected args", []string{"wordle", "help", "x"}, "", "Did not expect arguments `x` for command `help`.\nRun `wordle help` for usage.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, _, stderr := testEnv(tt.stdin, &scriptedPrompter{})
			if code := Execute(tt.args, env); code != ExitFailure {
				t.Fatalf("expected failure, got %d", code)
			}
			if got := stderr.String(); got != tt.stderr {
				t.Fatalf("stderr = %q, want %q", got, tt.stderr)
			}
		})
	}
}

func TestExecuteMissingFile(t *testing.T) {
	env, _, stderr := testEnv("", &scriptedPrompter{})
	path := t.TempDir() + "/missing.txt"
	if code := Execute([]string{"wordle", path}, env); code != ExitFailure {
		t.Fatalf("expected failure, got %d", code)
	}
	if !strings.HasPrefix(stderr.String(), "io error: ") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestExecuteHelpAndVersion(t *testing.T) {
	env, stdout, _ := testEnv("", nil)
	if code := Execute([]string{"wordle", "-h"}, env); code != ExitSuccess {
		t.Fatalf("help exit %d", code)
	}
	for _, want := range []string{"wordle\n", "SYNOPSIS", "wordle --version", "STDIN"} {
		if !strings.Contains(stdout.String(), want) {
			t.Fatalf("help missing %q:\n%s", want, stdout.String())
		}
	}

	stdout.Reset()
	if code := Execute([]string{"wordle", "version"}, env); code != ExitSuccess {
		t.Fatalf("version exit %d", code)
	}
	if got, want := stdout.String(), "wordle "+Version+"\n"; got != want {
		t.Fatalf("version = %q, want %q", got, want)
	}
}
