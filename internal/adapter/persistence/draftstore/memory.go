package draftstore

import (
	"sync"
	"time"

	"github.com/copdilan8-rgb/lacopita/internal/domain/entities"
	"github.com/copdilan8-rgb/lacopita/internal/usecase/interfaces"
)

const defaultTTL = 12 * time.Hour

type entry struct {
	draft     entities.DraftOrder
	expiresAt time.Time
}

// MemoryStore keeps in-progress drafts per client device. Drafts are
// transient by nature (a register browser mid-order), so they live in
// process memory and expire lazily after the TTL.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

var _ interfaces.IDraftStore = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(clientID string) (entities.DraftOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[clientID]
	if !ok {
		return entities.DraftOrder{}, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, clientID)
		return entities.DraftOrder{}, false
	}
	return e.draft, true
}

func (s *MemoryStore) Put(clientID string, draft entities.DraftOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[clientID] = entry{draft: draft, expiresAt: s.now().Add(s.ttl)}
}

func (s *MemoryStore) Delete(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, clientID)
}
