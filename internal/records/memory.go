package records

import (
	"context"
	"sync"

	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
)

// Memory is an in-process Source holding records in insertion order. It backs
// the seeded demo catalog and the tests.
type Memory[T catalog.Entity] struct {
	sync.RWMutex
	items []T
}

func NewMemory[T catalog.Entity](seed []T) *Memory[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Memory[T]{items: items}
}

func (m *Memory[T]) List(_ context.Context) ([]T, error) {
	m.RLock()
	defer m.RUnlock()

	out := make([]T, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *Memory[T]) Get(_ context.Context, id string) (T, error) {
	m.RLock()
	defer m.RUnlock()

	if i := m.indexOf(id); i >= 0 {
		return m.items[i], nil
	}
	var zero T
	return zero, ErrNotFound
}

func (m *Memory[T]) Create(_ context.Context, rec T) error {
	m.Lock()
	defer m.Unlock()

	if m.indexOf(rec.EntityID()) >= 0 {
		return ErrConflict
	}
	m.items = append(m.items, rec)
	return nil
}

func (m *Memory[T]) Put(_ context.Context, rec T) error {
	m.Lock()
	defer m.Unlock()

	i := m.indexOf(rec.EntityID())
	if i < 0 {
		return ErrNotFound
	}
	m.items[i] = rec
	return nil
}

func (m *Memory[T]) Delete(_ context.Context, id string) error {
	m.Lock()
	defer m.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	return nil
}

// indexOf must be called with the lock held.
func (m *Memory[T]) indexOf(id string) int {
	for i, it := range m.items {
		if it.EntityID() == id {
			return i
		}
	}
	return -1
}
