// Package store is the data-access layer shared by every entity.
package store

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no record matches the requested id
var ErrNotFound = errors.New("record not found")

// Page selects a bounded window of a listing
type Page struct {
	// Number is 1-based
	Number int
	// Size of zero means no limit
	Size int
}

// NewPage builds a Page, clamping numbers below 1 to the first page
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 0 {
		size = 0
	}
	return Page{Number: number, Size: size}
}

// All is the unbounded page
var All = Page{Number: 1}

// Offset returns the number of records skipped before the page starts.
// ok is false when the page starts past any representable offset, so it is always empty.
func (p Page) Offset() (offset int, ok bool) {
	if p.Size == 0 || p.Number < 1 {
		return 0, true
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return 0, false
	}
	return (p.Number - 1) * p.Size, true
}

// Filter narrows a listing. Apply renders it as a gorm scope and Match evaluates it in memory.
type Filter[T any] struct {
	Apply func(db *gorm.DB) *gorm.DB
	Match func(entity T) bool
}

// Store provides CRUD access to one entity type
type Store[T any] interface {
	// Create persists entity and assigns its id
	Create(ctx context.Context, entity *T) error
	// FindByID returns ErrNotFound when the id is unknown
	FindByID(ctx context.Context, id uint) (*T, error)
	// List returns the records in the page ordered by id
	List(ctx context.Context, page Page, filters ...Filter[T]) ([]T, error)
	// Update saves every field of entity
	Update(ctx context.Context, entity *T) error
	// Delete returns ErrNotFound when nothing was removed
	Delete(ctx context.Context, id uint) error
	// Count returns the number of stored records
	Count(ctx context.Context) (int64, error)
}
