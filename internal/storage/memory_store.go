package storage

import (
	"encoding/json"
	"log"
	"sync"
)

// MemoryStore is an in-memory implementation of RecordStore. It backs
// tests and ephemeral deployments where nothing should outlive the
// process.
type MemoryStore struct {
	records map[string]string
	mu      sync.RWMutex
}

// NewMemoryStore creates a new instance of MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]string),
	}
}

// Load unmarshals the collection stored under the namespaced key into
// out. Missing keys and corrupt payloads leave out untouched.
func (s *MemoryStore) Load(kind Kind, userID string, out interface{}) {
	s.mu.RLock()
	raw, ok := s.records[Key(kind, userID)]
	s.mu.RUnlock()

	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("storage: discarding corrupt record %s: %v", Key(kind, userID), err)
	}
}

// Save serializes the collection under the namespaced key, overwriting
// any prior value. Serialization failures are dropped.
func (s *MemoryStore) Save(kind Kind, userID string, collection interface{}) {
	raw, err := json.Marshal(collection)
	if err != nil {
		log.Printf("storage: failed to serialize %s: %v", Key(kind, userID), err)
		return
	}

	s.mu.Lock()
	s.records[Key(kind, userID)] = string(raw)
	s.mu.Unlock()
}

// Corrupt overwrites a stored record with a non-JSON payload. Test
// helper for exercising the degrade-to-empty read path.
func (s *MemoryStore) Corrupt(kind Kind, userID string) {
	s.mu.Lock()
	s.records[Key(kind, userID)] = "{not json"
	s.mu.Unlock()
}
