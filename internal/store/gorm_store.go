package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// GormStore is the relational Store backed by gorm
type GormStore[T any] struct {
	db *gorm.DB
}

// NewGormStore creates a Store over db
func NewGormStore[T any](db *gorm.DB) *GormStore[T] {
	return &GormStore[T]{db: db}
}

func (s *GormStore[T]) Create(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

func (s *GormStore[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := s.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %d: %w", id, err)
	}
	return &entity, nil
}

func (s *GormStore[T]) List(ctx context.Context, page Page, filters ...Filter[T]) ([]T, error) {
	query := s.db.WithContext(ctx).Model(new(T))
	for _, f := range filters {
		query = query.Scopes(f.Apply)
	}
	if page.Size > 0 {
		offset, ok := page.Offset()
		if !ok {
			return []T{}, nil
		}
		query = query.Offset(offset).Limit(page.Size)
	}

	entities := []T{}
	if err := query.Order("id").Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return entities, nil
}

func (s *GormStore[T]) Update(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Save(entity).Error; err != nil {
		return fmt.Errorf("update: %w", err)
	}
	return nil
}

func (s *GormStore[T]) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return fmt.Errorf("delete %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(new(T)).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return count, nil
}
