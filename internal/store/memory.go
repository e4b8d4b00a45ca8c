package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store, enough to run the demo skill
// without a database.
type MemoryStore struct {
	mu       sync.Mutex
	nextID   int64
	messages map[string][]Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{messages: make(map[string][]Message)}
}

func (s *MemoryStore) ListMessages(_ context.Context, userID string) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.messages[userID]
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (s *MemoryStore) SaveMessage(_ context.Context, userID string, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	msg.ID = s.nextID
	s.messages[userID] = append(s.messages[userID], msg)
	return nil
}
