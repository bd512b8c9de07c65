package store

import "sync"

// Memory is an in-memory Backend for tests and for practice runs where
// nothing should be persisted.
type Memory struct {
	mu      sync.RWMutex
	records []ScoreRecord
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Append(record ScoreRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

func (m *Memory) All() ([]ScoreRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	records := make([]ScoreRecord, len(m.records))
	copy(records, m.records)
	return records, nil
}
