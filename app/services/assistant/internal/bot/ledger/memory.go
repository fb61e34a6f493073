package ledger

import (
	"context"
	"sync"
)

// MemoryStore backs both store interfaces with process memory. Used in
// tests and when no database is configured.
type MemoryStore struct {
	mu      sync.Mutex
	rows    []CounterRow
	entries []Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Rows(_ context.Context) ([]CounterRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]CounterRow, len(m.rows))
	for i, r := range m.rows {
		counts := make(map[string]int, len(r.Counts))
		for k, v := range r.Counts {
			counts[k] = v
		}
		out[i] = CounterRow{Date: r.Date, Counts: counts}
	}
	return out, nil
}

func (m *MemoryStore) Update(_ context.Context, rows []CounterRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = rows
	return nil
}

func (m *MemoryStore) Append(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func (m *MemoryStore) ForDate(_ context.Context, dateToken string) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		// entry ids embed DDMMYY after the 3-letter code
		if len(e.ID) >= 9 && e.ID[3:9] == dateToken {
			out = append(out, e)
		}
	}
	return out, nil
}

// Entries returns a snapshot of the appended billing log.
func (m *MemoryStore) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.entries...)
}
