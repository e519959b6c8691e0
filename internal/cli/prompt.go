package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted is returned by a Prompter when the player aborts (Ctrl-C / Ctrl-D).
var ErrInterrupted = errors.New("cli: interrupted")

// Prompter asks the player for input.
type Prompter interface {
	// Guess asks for a word until validate accepts it, then returns it trimmed.
	Guess(validate func(string) error) (string, error)
	// KeepPlaying asks whether to start another game.
	KeepPlaying() (bool, error)
}

// SurveyPrompter prompts on a terminal with survey.
type SurveyPrompter struct {
	stdio survey.AskOpt
}

// NewSurveyPrompter prompts on in/out (usually /dev/tty, since stdin may carry the word list).
func NewSurveyPrompter(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *SurveyPrompter {
	return &SurveyPrompter{stdio: survey.WithStdio(in, out, errOut)}
}

// Guess implements Prompter.
func (p *SurveyPrompter) Guess(validate func(string) error) (string, error) {
	var ans string
	err := survey.AskOne(&survey.Input{Message: "Your guess:"}, &ans,
		survey.WithValidator(func(v interface{}) error {
			s, _ := v.(string)
			return validate(strings.TrimSpace(s))
		}),
		p.stdio,
	)
	if err != nil {
		return "", mapSurveyErr(err)
	}
	return strings.TrimSpace(ans), nil
}

// KeepPlaying implements Prompter.
func (p *SurveyPrompter) KeepPlaying() (bool, error) {
	again := false
	err := survey.AskOne(&survey.Confirm{Message: "Do you want to keep playing?"}, &again, p.stdio)
	if err != nil {
		return false, mapSurveyErr(err)
	}
	return again, nil
}

func mapSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return ErrInterrupted
	}
	return err
}
