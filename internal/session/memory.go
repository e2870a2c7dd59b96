package session

import (
	"context"
	"sync"
	"time"
)

var _ Store = (*MemoryStore)(nil)

type memoryEntry struct {
	messages []Message
	expires  time.Time
}

// MemoryStore keeps session history in process memory. An entry expires
// ttl after its last append; expired entries read as absent and are
// removed by Sweep.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]*memoryEntry
}

// NewMemoryStore returns an in-memory store. A ttl of zero disables
// expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]*memoryEntry),
	}
}

func (s *MemoryStore) Append(_ context.Context, id string, msgs ...Message) error {
	if len(msgs) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entries[id]
	if e == nil || s.expired(e) {
		e = &memoryEntry{}
		s.entries[id] = e
	}
	e.messages = append(e.messages, msgs...)
	if s.ttl > 0 {
		e.expires = time.Now().Add(s.ttl)
	}
	return nil
}

func (s *MemoryStore) History(_ context.Context, id string) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e := s.entries[id]
	if e == nil || s.expired(e) {
		return nil, nil
	}
	out := make([]Message, len(e.messages))
	copy(out, e.messages)
	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// Sweep drops expired sessions and reports how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) expired(e *memoryEntry) bool {
	return s.ttl > 0 && time.Now().After(e.expires)
}
