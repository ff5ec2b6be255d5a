package browse

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
	"github.com/Abdulllah321/sports-landing-sub001/internal/params"
	"github.com/Abdulllah321/sports-landing-sub001/internal/records"
)

var ErrInvalidStatus = errors.New("invalid status")

// Record is an entity the management screens can create and re-status.
type Record[T any] interface {
	catalog.Entity
	WithID(id string) T
	WithStatus(status string) T
}

// Summarizer computes a kind's stat cards over the filtered items.
type Summarizer[T any] func(ctx context.Context, matched []T) (any, error)

// Pure adapts a plain summary function.
func Pure[T any, S any](f func([]T) S) Summarizer[T] {
	return func(_ context.Context, matched []T) (any, error) {
		return f(matched), nil
	}
}

// Page is one browse response: a page of the filtered items plus stats and
// summary over the whole filtered set.
type Page[T any] struct {
	Criteria   catalog.Criteria  `json:"criteria"`
	Items      []T               `json:"items"`
	Pagination params.Pagination `json:"pagination"`
	Options    catalog.Options   `json:"options"`
	Stats      catalog.Stats     `json:"stats"`
	Summary    any               `json:"summary"`
}

// Catalog is the kind-agnostic face of a Service, so handlers can serve
// every kind from one route table.
type Catalog interface {
	Kind() string
	Statuses() []string
	Browse(ctx context.Context, c catalog.Criteria, p params.Pagination) (any, int, error)
	TimeSlots(ctx context.Context, date string) ([]string, error)
	Get(ctx context.Context, id string) (any, error)
	// Create decodes a new record through decode, which also validates it.
	Create(ctx context.Context, decode func(dst any) error) (any, error)
	SetStatus(ctx context.Context, id, status string) (any, error)
	Delete(ctx context.Context, id string) error
}

type Service[T Record[T]] struct {
	kind          string
	source        records.Source[T]
	summarize     Summarizer[T]
	statuses      []string
	defaultStatus string
}

// New binds a source to the engine. The first status is the one new records
// get when they are created without one.
func New[T Record[T]](kind string, source records.Source[T], summarize Summarizer[T], statuses []string) *Service[T] {
	s := &Service[T]{
		kind:      kind,
		source:    source,
		summarize: summarize,
		statuses:  statuses,
	}
	if len(statuses) > 0 {
		s.defaultStatus = statuses[0]
	}
	return s
}

func (s *Service[T]) Kind() string { return s.kind }

func (s *Service[T]) Statuses() []string { return slices.Clone(s.statuses) }

// View runs the full pipeline and returns the page. The count is the number of
// matched items before pagination.
func (s *Service[T]) View(ctx context.Context, c catalog.Criteria, p params.Pagination) (*Page[T], error) {
	items, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.kind, err)
	}

	view := catalog.Browse(items, c)

	summary, err := s.summarize(ctx, view.Items)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", s.kind, err)
	}

	p.ComputeMeta(len(view.Items))

	return &Page[T]{
		Criteria:   view.Criteria,
		Items:      params.Slice(view.Items, p),
		Pagination: p,
		Options:    view.Options,
		Stats:      view.Stats,
		Summary:    summary,
	}, nil
}

func (s *Service[T]) Browse(ctx context.Context, c catalog.Criteria, p params.Pagination) (any, int, error) {
	page, err := s.View(ctx, c, p)
	if err != nil {
		return nil, 0, err
	}
	return page, page.Stats.Matched, nil
}

func (s *Service[T]) TimeSlots(ctx context.Context, date string) ([]string, error) {
	items, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.kind, err)
	}
	return catalog.DistinctTimeSlotsForDate(items, date), nil
}

func (s *Service[T]) Get(ctx context.Context, id string) (any, error) {
	rec, err := s.source.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service[T]) Create(ctx context.Context, decode func(dst any) error) (any, error) {
	var rec T
	if err := decode(&rec); err != nil {
		return nil, err
	}
	if rec.EntityID() == "" {
		rec = rec.WithID(records.NewID())
	}
	if rec.EntityStatus() == "" {
		rec = rec.WithStatus(s.defaultStatus)
	}
	if !slices.Contains(s.statuses, rec.EntityStatus()) {
		return nil, fmt.Errorf("%w %q for %s", ErrInvalidStatus, rec.EntityStatus(), s.kind)
	}

	if err := s.source.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service[T]) SetStatus(ctx context.Context, id, status string) (any, error) {
	if !slices.Contains(s.statuses, status) {
		return nil, fmt.Errorf("%w %q for %s", ErrInvalidStatus, status, s.kind)
	}

	rec, err := s.source.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := rec.WithStatus(status)
	if err := s.source.Put(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service[T]) Delete(ctx context.Context, id string) error {
	return s.source.Delete(ctx, id)
}
