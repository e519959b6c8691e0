package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-engine/internal/config"
	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

// Env is everything Execute needs from the process.
type Env struct {
	Stdin  io.Reader // word list when no file is given
	Stdout io.Writer
	Stderr io.Writer
	Color  bool
	Prompt Prompter
	Config config.Config
	// Sleep replaces time.Sleep for the greeting pauses when set.
	Sleep func(time.Duration)
}

// ErrEmptyWordList is reported when the input yields no word.
var ErrEmptyWordList = errors.New("provided file did not contain any word")

// Execute runs the command line and returns the process exit code.
func Execute(args []string, env Env) int {
	cmd, err := ParseArgs(args)
	if err != nil {
		reportUsage(env.Stderr, args, err)
		return ExitFailure
	}

	switch cmd.Kind {
	case CommandHelp:
		WriteHelp(env.Stdout, cmd.Exec, env.Color)
		return ExitSuccess
	case CommandVersion:
		WriteVersion(env.Stdout, cmd.Exec)
		return ExitSuccess
	}

	if err := run(cmd, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitFailure
	}
	return ExitSuccess
}

func run(cmd Command, env Env) error {
	list, err := readWordList(cmd.Input, env.Stdin)
	if err != nil {
		return err
	}
	log.Debug().Int("words", len(list)).Str("input", cmd.Input).Msg("word list loaded")

	picker, err := env.Config.NewPicker(list)
	if err != nil {
		return err
	}
	if env.Prompt == nil {
		return errors.New("no terminal available for input")
	}

	s := &Session{
		Picker:       picker,
		Prompt:       env.Prompt,
		Render:       NewRenderer(env.Stdout, env.Color),
		AttemptLimit: env.Config.AttemptLimit,
		Welcome:      WelcomePause,
		Goodbye:      GoodbyePause,
		sleep:        env.Sleep,
	}
	return s.Run()
}

func readWordList(path string, stdin io.Reader) ([]string, error) {
	var (
		list []string
		err  error
	)
	if path == "" {
		if stdin == nil {
			return nil, ErrEmptyWordList
		}
		list, err = words.ReadWords(stdin)
	} else {
		list, err = words.LoadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("io error: %w", err)
	}
	if len(list) == 0 {
		return nil, ErrEmptyWordList
	}
	return list, nil
}

func reportUsage(w io.Writer, args []string, err error) {
	fmt.Fprintln(w, err)
	var uerr *UnexpectedArgumentsError
	if errors.As(err, &uerr) {
		fmt.Fprintf(w, "Run `%s help` for usage.\n", args[0])
	}
}
