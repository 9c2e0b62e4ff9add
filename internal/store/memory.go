package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Memory is a map-backed KV and AwardRepo. It is used when the database
// cannot be opened and in tests. State is lost when the process exits.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
	awards []AwardRecord
	seq    int64
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// KV returns m as a KV.
func (m *Memory) KV() KV { return m }

// AwardRepo returns m as an AwardRepo.
func (m *Memory) AwardRepo() AwardRepo { return m }

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *Memory) AppendAward(_ context.Context, data AwardEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.awards = append(m.awards, AwardRecord{
		Sequence:  m.seq,
		Timestamp: time.Now().UTC(),
		SessionID: data.SessionID,
		Game:      data.Game,
		Points:    data.Points,
		Total:     data.Total,
	})
	return nil
}

func (m *Memory) RecentAwards(_ context.Context, limit int) ([]AwardRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]AwardRecord, len(m.awards))
	copy(out, m.awards)
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence > out[j].Sequence })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) TotalsByGame(_ context.Context) (map[string]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	totals := make(map[string]int)
	for _, a := range m.awards {
		totals[a.Game] += a.Points
	}
	return totals, nil
}

func (m *Memory) ClearAwards(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.awards = nil
	return nil
}
