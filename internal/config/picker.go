package config

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/go-engine/internal/daily"
	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

// LoadWords reads WORDS_FILE, or the embedded list when it is unset.
func (c Config) LoadWords() ([]string, error) {
	if c.WordsFile == "" {
		return words.Default()
	}
	return words.LoadFile(c.WordsFile)
}

// NewPicker builds the picker selected by WORDLE_PICKER over list.
func (c Config) NewPicker(list []string) (words.Picker, error) {
	var (
		p   words.Picker
		err error
	)
	switch c.Picker {
	case PickerList:
		p, err = words.NewList(list)
	case PickerDaily:
		p, err = daily.NewPicker(list, c.DailySalt)
	case PickerRandom, "":
		p, err = words.NewRandom(list)
	default:
		return nil, fmt.Errorf("config: unknown picker %q", c.Picker)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
