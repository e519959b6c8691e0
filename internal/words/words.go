// internal/words/words.go
//
// Word selection for new games.
//
// Responsibilities:
//   - Read word lists (one word per line) from files, readers or the embedded default.
//   - Supply target words through the Picker interface: ListPicker cycles through
//     the list, RandomPicker draws uniformly with crypto/rand.
//
// Word lists:
//   - Lines are trimmed; blank lines and lines starting with "#" are skipped.
//   - Words keep their case here; the game package normalizes them.
//   - Any word length is accepted: games adapt to the target's length.
//
// Pickers are safe for concurrent use.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/wordle/apps/go-engine/assets"
)

// ErrNoWords is returned when a word list contains no usable word.
var ErrNoWords = errors.New("words: list is empty")

// Picker produces the next target word.
type Picker interface {
	Pick() string
}

// ReadWords loads one word per line from r.
func ReadWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// LoadFile loads a word list from path.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	list, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return list, nil
}

// Default returns the embedded word list.
func Default() ([]string, error) {
	f, err := assets.OpenAnswers()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWords(f)
}

// ListPicker goes from the first word to the last, then wraps around.
type ListPicker struct {
	mu    sync.Mutex
	words []string
	next  int
}

// NewList constructs a ListPicker over a copy of list.
func NewList(list []string) (*ListPicker, error) {
	if len(list) == 0 {
		return nil, ErrNoWords
	}
	return &ListPicker{words: append([]string(nil), list...)}, nil
}

// Pick returns the current word and advances.
func (p *ListPicker) Pick() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	w := p.words[p.next]
	p.next = (p.next + 1) % len(p.words)
	return w
}

// RandomPicker picks a cryptographically random word from a list.
type RandomPicker struct {
	words []string
}

// NewRandom constructs a RandomPicker over a copy of list.
func NewRandom(list []string) (*RandomPicker, error) {
	if len(list) == 0 {
		return nil, ErrNoWords
	}
	return &RandomPicker{words: append([]string(nil), list...)}, nil
}

// Pick returns a uniformly chosen word.
func (p *RandomPicker) Pick() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(p.words))))
	if err != nil {
		return p.words[0]
	}
	return p.words[nBig.Int64()]
}

// size reports how many words the picker draws from.
func (p *RandomPicker) size() int { return len(p.words) }
