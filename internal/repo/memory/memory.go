// Package memory is the in-process ResultStore, used when no durable
// backend is configured and as the store backing tests.
package memory

import (
	"context"
	"sync"

	"github.com/isawsback/isawsback/internal/domain"
)

type Store struct {
	mu   sync.RWMutex
	last *domain.Result
}

func New() *Store {
	return &Store{}
}

func (m *Store) Save(ctx context.Context, r *domain.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.last = &cp
	return nil
}

func (m *Store) Load(ctx context.Context) (*domain.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.last == nil {
		return nil, nil
	}
	cp := *m.last
	return &cp, nil
}
