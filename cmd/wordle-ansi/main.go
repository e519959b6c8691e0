package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-engine/internal/cli"
	"github.com/robalobadob/wordle/apps/go-engine/internal/config"
)

// main plays wordle on the controlling terminal. Words come from the file
// argument or stdin, so prompts go through /dev/tty when it can be opened.
func main() {
	os.Exit(run())
}

func run() int {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitFailure
	}
	// LOG_LEVEL only applies when set explicitly; the game screen stays quiet otherwise.
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if lvl, err := zerolog.ParseLevel(v); err == nil {
			zerolog.SetGlobalLevel(lvl)
		}
	}

	env := cli.Env{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Color:  cli.ColorEnabled(os.Stdout),
		Config: cfg,
	}
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err == nil {
		defer tty.Close()
		env.Prompt = cli.NewSurveyPrompter(tty, tty, os.Stderr)
	} else {
		log.Debug().Err(err).Msg("no controlling terminal, prompting on stdio")
		env.Prompt = cli.NewSurveyPrompter(os.Stdin, os.Stdout, os.Stderr)
	}

	return cli.Execute(os.Args, env)
}
