// internal/stats/tracker.go
//
// Tracker couples the in-memory Record with a Store.
//   - Loads the record once at construction; a load failure is returned so
//     the host can refuse to start.
//   - Every RecordWin/RecordLoss updates memory first, then rewrites the whole
//     record through the Store (no partial updates).
//   - Concurrency-safe via Mutex: several hosted sessions may share one
//     Tracker.

package stats

import (
	"errors"
	"sync"
)

// ErrCorrupt reports a persisted record that cannot be parsed.
var ErrCorrupt = errors.New("stats: corrupt record")

// Store persists the seven counters. Save always overwrites the whole record.
// Implementations: FileStore, SQLiteStore, MemoryStore.
type Store interface {
	Load() (Counts, error)
	Save(Counts) error
}

// Tracker is the statistics book used by game sessions.
type Tracker struct {
	mu    sync.Mutex
	rec   Record
	store Store
}

// NewTracker loads the current record from st.
func NewTracker(st Store) (*Tracker, error) {
	c, err := st.Load()
	if err != nil {
		return nil, err
	}
	for _, n := range c {
		if n < 0 {
			return nil, ErrCorrupt
		}
	}
	return &Tracker{rec: FromCounts(c), store: st}, nil
}

// RecordWin counts a win and persists. The in-memory record is updated even
// when saving fails.
func (t *Tracker) RecordWin(attempts int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rec.RecordWin(attempts)
	return t.store.Save(t.rec.Counts())
}

// RecordLoss counts a loss and persists.
func (t *Tracker) RecordLoss() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rec.RecordLoss()
	return t.store.Save(t.rec.Counts())
}

// Record returns a copy of the current counters.
func (t *Tracker) Record() Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rec
}

// MemoryStore keeps counters in memory only (tests, throwaway servers).
type MemoryStore struct {
	mu    sync.Mutex
	c     Counts
	Saves int
}

func (m *MemoryStore) Load() (Counts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.c, nil
}

func (m *MemoryStore) Save(c Counts) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.c = c
	m.Saves++
	return nil
}
