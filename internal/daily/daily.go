// internal/daily/daily.go
//
// Date-based word selection: everyone gets the same word on the same day.
// The word index is HMAC-SHA256(salt, "YYYY-MM-DD") modulo the list length,
// so the schedule cannot be guessed without the salt.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Picker implements words.Picker with the word of the current day.
type Picker struct {
	words []string
	salt  string
	now   func() time.Time
}

var _ words.Picker = (*Picker)(nil)

// NewPicker constructs a daily picker over a copy of list.
func NewPicker(list []string, salt string) (*Picker, error) {
	if len(list) == 0 {
		return nil, words.ErrNoWords
	}
	return &Picker{
		words: append([]string(nil), list...),
		salt:  salt,
		now:   time.Now,
	}, nil
}

// Pick returns today's word.
func (p *Picker) Pick() string {
	w, _ := p.For(p.now())
	return w
}

// For returns the word and its index for the day containing t.
func (p *Picker) For(t time.Time) (string, int) {
	idx := WordIndex(t, p.salt, len(p.words))
	return p.words[idx], idx
}

// Date returns today's date key.
func (p *Picker) Date() string { return DateKey(p.now()) }
