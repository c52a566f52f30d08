// Package session holds the in-memory, per-session generation state. Nothing
// here survives a restart.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"postforge-backend/internal/metrics"
	"postforge-backend/internal/models"
)

// Session carries one user's generation context: an append-only run history
// and a flag serializing pipeline runs. All access goes through the methods.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu         sync.Mutex
	history    []models.HistoryEntry
	generating bool
}

// BeginRun marks the session busy. It returns false when a run is already in
// flight; callers must surface that as a conflict instead of queuing.
func (s *Session) BeginRun() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generating {
		return false
	}
	s.generating = true
	return true
}

func (s *Session) EndRun() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false
}

// Record appends a completed run. Only fully successful pipeline runs are
// recorded; aborted runs leave no trace.
func (s *Session) Record(entry models.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, entry)
}

// Past returns every recorded run except the most recent, oldest first. The
// most recent run is shown inline by clients, so history views skip it.
func (s *Session) Past() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) < 2 {
		return []models.HistoryEntry{}
	}
	past := make([]models.HistoryEntry, len(s.history)-1)
	copy(past, s.history[:len(s.history)-1])
	return past
}

// Latest returns the most recent run, if any.
func (s *Session) Latest() (models.HistoryEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) == 0 {
		return models.HistoryEntry{}, false
	}
	return s.history[len(s.history)-1], true
}

// Entry looks a recorded run up by its ID.
func (s *Session) Entry(runID uuid.UUID) (models.HistoryEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.history {
		if e.ID == runID {
			return e, true
		}
	}
	return models.HistoryEntry{}, false
}

func (s *Session) RunCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// Store is the process-wide session registry.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	metrics  *metrics.Metrics
}

func NewStore(m *metrics.Metrics) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		metrics:  m,
	}
}

func (st *Store) Create() *Session {
	s := &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	// Set under the lock so concurrent creates cannot apply gauge updates
	// out of order.
	if st.metrics != nil {
		st.metrics.ActiveSessions.Set(float64(len(st.sessions)))
	}
	st.mu.Unlock()
	return s
}

func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}
