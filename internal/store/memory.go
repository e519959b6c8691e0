// internal/store/memory.go
//
// In-memory registry of live games, keyed by opaque handle id.
// Used by the handle API; state is lost when the process restarts.
//
// Characteristics:
//   - The map is guarded by an RWMutex (concurrent lookups, exclusive create/delete).
//   - Each entry carries its own mutex: With runs callbacks for one game serially,
//     since game.Game itself is not safe for concurrent use.
//   - A deleted game stays usable by a callback already holding it, and is then dropped.
//   - Sweep drops games older than a cutoff; callers run it on a timer so that
//     handles whose tokens expired do not pile up.

package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
)

// ErrNotFound is returned for unknown (or already deleted) handle ids.
var ErrNotFound = errors.New("store: game not found")

// Store defines the registry interface for live games.
type Store interface {
	// Create registers g and returns its new handle id.
	Create(ctx context.Context, g *game.Game) (string, error)

	// With calls fn with exclusive access to the game registered under id.
	// fn's error is returned as is.
	With(ctx context.Context, id string, fn func(g *game.Game) error) error

	// Delete forgets the game registered under id.
	Delete(ctx context.Context, id string) error

	// Len reports how many games are registered.
	Len() int

	// Sweep forgets every game created before cutoff and reports how many went.
	Sweep(cutoff time.Time) int
}

// entry pairs a game with the lock that serializes access to it.
type entry struct {
	mu        sync.Mutex
	game      *game.Game
	createdAt time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex      // guards games map
	games map[string]*entry // keyed by handle id
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*entry)}
}

// Create adds g under a fresh random id.
func (m *memory) Create(ctx context.Context, g *game.Game) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := randomID()
	for _, taken := m.games[id]; taken; _, taken = m.games[id] {
		id = randomID()
	}
	m.games[id] = &entry{game: g, createdAt: time.Now().UTC()}
	return id, nil
}

// With looks up id and runs fn while holding that game's lock.
func (m *memory) With(ctx context.Context, id string, fn func(g *game.Game) error) error {
	m.mu.RLock()
	e, ok := m.games[id]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(e.game)
}

// Delete removes id from the map.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrNotFound
	}
	delete(m.games, id)
	return nil
}

// Len reports the number of registered games.
func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// Sweep removes games created before cutoff.
func (m *memory) Sweep(cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.games {
		if e.createdAt.Before(cutoff) {
			delete(m.games, id)
			n++
		}
	}
	return n
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
