package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/robalobadob/wordle/apps/go-engine/internal/daily"
	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

func TestNewPicker(t *testing.T) {
	list := []string{"crane", "slate"}
	tests := []struct {
		mode  string
		check func(words.Picker) bool
	}{
		{PickerRandom, func(p words.Picker) bool { _, ok := p.(*words.RandomPicker); return ok }},
		{PickerList, func(p words.Picker) bool { _, ok := p.(*words.ListPicker); return ok }},
		{PickerDaily, func(p words.Picker) bool { _, ok := p.(*daily.Picker); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			p, err := Config{Picker: tt.mode, DailySalt: "s"}.NewPicker(list)
			if err != nil {
				t.Fatalf("new picker: %v", err)
			}
			if !tt.check(p) {
				t.Fatalf("unexpected picker type %T", p)
			}
		})
	}

	if _, err := (Config{Picker: PickerList}).NewPicker(nil); !errors.Is(err, words.ErrNoWords) {
		t.Fatalf("expected ErrNoWords, got %v", err)
	}
	if _, err := (Config{Picker: "bogus"}).NewPicker(list); err == nil {
		t.Fatal("expected error for unknown picker")
	}
}

func TestLoadWords(t *testing.T) {
	embedded, err := Config{}.LoadWords()
	if err != nil || len(embedded) == 0 {
		t.Fatalf("expected embedded words, got %d (%v)", len(embedded), err)
	}

	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("alpha\nbravo\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Config{WordsFile: path}.LoadWords()
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	if len(got) != 2 || got[0] != "alpha" {
		t.Fatalf("unexpected words %v", got)
	}
}
