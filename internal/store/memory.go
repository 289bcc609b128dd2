// internal/store/memory.go
//
// In-memory registry of hosted game sessions.
// Used by the HTTP host: each browser game maps to one Entry.
//
// Characteristics:
//   - Entries keyed by Session.ID in a map.
//   - Map guarded by RWMutex (concurrent lookups allowed, inserts exclusive).
//   - Each Entry has its own mutex so a tick and an action on the same game
//     never interleave, while different games proceed in parallel.
//   - State is lost when the process restarts (statistics are not: they live
//     in the stats store).

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/solo/internal/game"
)

// ErrNotFound is returned by Get for unknown IDs.
var ErrNotFound = errors.New("store: game not found")

// Store defines the session registry used by hosts.
type Store interface {
	// Save registers a session and returns its entry.
	Save(ctx context.Context, s *game.Session, now time.Time) (*Entry, error)

	// Get retrieves an entry by session ID.
	Get(ctx context.Context, id string) (*Entry, error)

	// Len reports how many sessions are registered.
	Len() int
}

// Entry owns one session plus the wall-clock anchors used to tick it.
type Entry struct {
	mu       sync.Mutex
	session  *game.Session
	started  time.Time
	lastTick time.Time
}

// Do advances the session to now, then runs fn with exclusive access.
// fn may be nil when the caller only wants the tick.
func (e *Entry) Do(now time.Time, fn func(*game.Session)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delta := now.Sub(e.lastTick)
	if delta < 0 {
		delta = 0
	}
	e.session.Update(now.Sub(e.started), delta)
	e.lastTick = now
	if fn != nil {
		fn(e.session)
	}
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards entries map
	entries map[string]*Entry // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{entries: make(map[string]*Entry)}
}

// Save adds a session; an existing entry with the same ID is replaced.
func (m *memory) Save(ctx context.Context, s *game.Session, now time.Time) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e := &Entry{session: s, started: now, lastTick: now}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[s.ID] = e
	return e, nil
}

// Get looks up an entry by ID.
func (m *memory) Get(ctx context.Context, id string) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
