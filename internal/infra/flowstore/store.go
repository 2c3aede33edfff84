package flowstore

import (
	"sync"

	"gather-venues/internal/domain/booking"

	"github.com/google/uuid"
)

// Flow is one live booking flow instance: the draft plus its session ID.
type Flow struct {
	ID    uuid.UUID
	Draft *booking.Draft
}

// Store holds active booking flows in memory. Flows are per-session
// scratch state and do not survive a restart; only committed records
// are persisted.
type Store struct {
	mu    sync.RWMutex
	flows map[uuid.UUID]*Flow
}

func New() *Store {
	return &Store{flows: make(map[uuid.UUID]*Flow)}
}

func (s *Store) Create(draft *booking.Draft) *Flow {
	s.mu.Lock()
	defer s.mu.Unlock()

	flow := &Flow{ID: uuid.New(), Draft: draft}
	s.flows[flow.ID] = flow
	return flow
}

func (s *Store) Get(id uuid.UUID) (*Flow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flow, ok := s.flows[id]
	return flow, ok
}

func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.flows, id)
}
