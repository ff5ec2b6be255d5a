package records

import (
	"context"
	"errors"

	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// Source supplies one kind's entity collection to the browse layer and takes
// the management screens' mutations. List returns records in a stable order.
type Source[T catalog.Entity] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, rec T) error
	// Put replaces the record with the same id, ErrNotFound if there is none.
	Put(ctx context.Context, rec T) error
	Delete(ctx context.Context, id string) error
}

// NewID returns an id for a record created without one.
func NewID() string {
	return uuid.NewString()
}
