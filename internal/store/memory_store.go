package store

import (
	"context"
	"sort"
	"sync"

	"github.com/franciscosanchezn/gin-vehicle-api/internal/models"
)

// MemoryStore keeps records in a map owned by the instance.
// Ids are assigned from a per-store counter and never reused.
type MemoryStore[T any, PT interface {
	*T
	models.Identifiable
}] struct {
	mu     sync.RWMutex
	rows   map[uint]T
	nextID uint
}

// NewMemoryStore creates an empty in-memory Store
func NewMemoryStore[T any, PT interface {
	*T
	models.Identifiable
}]() *MemoryStore[T, PT] {
	return &MemoryStore[T, PT]{rows: make(map[uint]T)}
}

func (s *MemoryStore[T, PT]) Create(_ context.Context, entity *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	PT(entity).SetID(s.nextID)
	s.rows[s.nextID] = *entity
	return nil
}

func (s *MemoryStore[T, PT]) FindByID(_ context.Context, id uint) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &entity, nil
}

func (s *MemoryStore[T, PT]) List(_ context.Context, page Page, filters ...Filter[T]) ([]T, error) {
	s.mu.RLock()
	ids := make([]uint, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	matched := []T{}
	for _, id := range ids {
		entity := s.rows[id]
		if matchesAll(entity, filters) {
			matched = append(matched, entity)
		}
	}
	s.mu.RUnlock()

	if page.Size == 0 {
		return matched, nil
	}
	start, ok := page.Offset()
	if !ok || start >= len(matched) {
		return []T{}, nil
	}
	end := start + page.Size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func matchesAll[T any](entity T, filters []Filter[T]) bool {
	for _, f := range filters {
		if !f.Match(entity) {
			return false
		}
	}
	return true
}

// Update stores every field of entity under its id, inserting it when absent
func (s *MemoryStore[T, PT]) Update(_ context.Context, entity *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := PT(entity).GetID()
	if id == 0 {
		s.nextID++
		id = s.nextID
		PT(entity).SetID(id)
	}
	if id > s.nextID {
		s.nextID = id
	}
	s.rows[id] = *entity
	return nil
}

func (s *MemoryStore[T, PT]) Delete(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *MemoryStore[T, PT]) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.rows)), nil
}
