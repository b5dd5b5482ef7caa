package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

type MemoryStore struct {
	slots map[string][]byte
	mu    sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		slots: make(map[string][]byte),
	}
}

func (m *MemoryStore) Init() error {
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) Get(slot string, v interface{}) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, exists := m.slots[slot]
	if !exists {
		return ErrSlotNotFound
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return nil
}

func (m *MemoryStore) Set(slot string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[slot] = data
	return nil
}

func (m *MemoryStore) Clear(slot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots, slot)
	return nil
}
