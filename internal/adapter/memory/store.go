// Package memory implements every persistence port in process memory.
// It backs the "memory" storage driver and serves as a fake in tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/glucosegurus/glucosegurus-backend/internal/domain"
)

// Store is a concurrency-safe keyed collection that keeps insertion order.
type Store[T any, K comparable] struct {
	mu     sync.RWMutex
	entity string
	key    func(*T) K
	items  map[K]T
	order  []K
}

// NewStore creates an empty store. key extracts the identity of a record.
func NewStore[T any, K comparable](entity string, key func(*T) K) *Store[T, K] {
	return &Store[T, K]{
		entity: entity,
		key:    key,
		items:  make(map[K]T),
	}
}

// GetByID returns a copy of the record or domain.ErrNotFound.
func (s *Store[T, K]) GetByID(ctx context.Context, id K) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("%s %v: %w", s.entity, id, domain.ErrNotFound)
	}
	return &item, nil
}

// List returns every record in insertion order.
func (s *Store[T, K]) List(ctx context.Context) ([]T, error) {
	return s.Filter(ctx, func(T) bool { return true })
}

// Filter returns the records matching keep in insertion order.
func (s *Store[T, K]) Filter(ctx context.Context, keep func(T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, k := range s.order {
		if item := s.items[k]; keep(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Create stores a new record. An existing key yields domain.ErrAlreadyExists.
func (s *Store[T, K]) Create(ctx context.Context, e *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	k := s.key(e)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[k]; ok {
		return fmt.Errorf("%s %v: %w", s.entity, k, domain.ErrAlreadyExists)
	}
	s.items[k] = *e
	s.order = append(s.order, k)
	return nil
}

// Update replaces an existing record. Updating a missing record is a no-op.
func (s *Store[T, K]) Update(ctx context.Context, e *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	k := s.key(e)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[k]; ok {
		s.items[k] = *e
	}
	return nil
}

// Delete removes a record. Deleting a missing record is a no-op.
func (s *Store[T, K]) Delete(ctx context.Context, id K) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return nil
	}
	delete(s.items, id)
	for i, k := range s.order {
		if k == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
