package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hellodesc/hellodesc/internal/description"
)

// MemoryRepo is an in-memory repository used for tests and for the CLI when
// no external store is reachable.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []string
	store map[string]map[string]string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]map[string]string)}
}

func (m *MemoryRepo) Insert(_ context.Context, rec description.Record) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.NewString()
	m.store[id] = rec.Document()
	m.order = append(m.order, id)
	return id, nil
}

// Documents returns stored documents in insertion order.
func (m *MemoryRepo) Documents() []map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]map[string]string, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.store[id])
	}
	return out
}

func (m *MemoryRepo) Backend() string { return "memory" }
