package cache

import (
	"sync"
	"time"
)

type memoryEntry struct {
	data     []byte
	storedAt time.Time
}

// MemoryStore is an in-process Store for tests and embedded setups.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(time.Now)
}

// NewMemoryStoreWithClock stamps writes with the given clock instead of the
// wall clock.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: now}
}

func (s *MemoryStore) Read(key string) ([]byte, time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[key]
	if !ok {
		return nil, time.Time{}, ErrNotFound
	}
	return entry.data, entry.storedAt, nil
}

func (s *MemoryStore) Write(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{data: data, storedAt: s.now()}
	return nil
}
