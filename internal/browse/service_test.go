package browse_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Abdulllah321/sports-landing-sub001/internal/browse"
	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/facilities"
	"github.com/Abdulllah321/sports-landing-sub001/internal/params"
	"github.com/Abdulllah321/sports-landing-sub001/internal/records"
	"github.com/Abdulllah321/sports-landing-sub001/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFacilities() *browse.Service[facilities.Facility] {
	return browse.New(facilities.Kind, records.NewMemory(seed.Facilities()), browse.Pure(facilities.Summarize), facilities.Statuses)
}

func decodeJSON(body string) func(any) error {
	return func(dst any) error { return json.Unmarshal([]byte(body), dst) }
}

func TestServiceView(t *testing.T) {
	ctx := context.Background()
	svc := newFacilities()

	t.Run("default criteria returns everything", func(t *testing.T) {
		page, err := svc.View(ctx, catalog.NewCriteria(), params.Pagination{Limit: 15, Page: 1})
		require.NoError(t, err)

		assert.Len(t, page.Items, 6)
		assert.Equal(t, 6, page.Stats.Total)
		assert.Equal(t, 6, page.Stats.Matched)
		assert.Equal(t, 6, page.Pagination.Total)
		assert.Equal(t, []string{"Indoor", "Outdoor", "Aquatic"}, page.Options.Categories)
	})

	t.Run("summary covers the filtered set", func(t *testing.T) {
		c := catalog.NewCriteria()
		c.SetCategory("Indoor")

		page, err := svc.View(ctx, c, params.Pagination{Limit: 15, Page: 1})
		require.NoError(t, err)

		require.Len(t, page.Items, 2)
		summary, ok := page.Summary.(facilities.Summary)
		require.True(t, ok)
		assert.Equal(t, 2, summary.Count)
		assert.Equal(t, 30.0, summary.MinPrice)
		assert.Equal(t, 50.0, summary.MaxPrice)
	})

	t.Run("pagination slices after stats", func(t *testing.T) {
		page, err := svc.View(ctx, catalog.NewCriteria(), params.Pagination{Limit: 2, Page: 2, Offset: 2})
		require.NoError(t, err)

		assert.Equal(t, []string{"fac-3", "fac-4"}, []string{page.Items[0].ID, page.Items[1].ID})
		assert.Equal(t, 6, page.Stats.Matched)
		assert.Equal(t, 3, page.Pagination.TotalPages)
		assert.True(t, page.Pagination.HasNext)
		assert.True(t, page.Pagination.HasPrev)
	})

	t.Run("page past the end is empty, not nil", func(t *testing.T) {
		page, err := svc.View(ctx, catalog.NewCriteria(), params.Pagination{Limit: 5, Page: 4, Offset: 15})
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
	})
}

func TestServiceTimeSlots(t *testing.T) {
	slots, err := newFacilities().TimeSlots(context.Background(), "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"07:00", "10:00", "14:00", "16:00", "17:00", "18:00", "20:00"}, slots)

	slots, err = newFacilities().TimeSlots(context.Background(), "2030-01-01")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and default status", func(t *testing.T) {
		svc := newFacilities()
		created, err := svc.Create(ctx, decodeJSON(`{"name":"New Court","type":"Indoor","city":"Multan","price":"$20/hour"}`))
		require.NoError(t, err)

		f := created.(facilities.Facility)
		assert.NotEmpty(t, f.ID)
		assert.Equal(t, facilities.StatusActive, f.Status)

		got, err := svc.Get(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Court", got.(facilities.Facility).Name)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := newFacilities().Create(ctx, decodeJSON(`{"name":"X","status":"archived"}`))
		assert.ErrorIs(t, err, browse.ErrInvalidStatus)
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		_, err := newFacilities().Create(ctx, decodeJSON(`{"id":"fac-1","name":"Dup"}`))
		assert.ErrorIs(t, err, records.ErrConflict)
	})
}

func TestServiceSetStatus(t *testing.T) {
	ctx := context.Background()
	svc := newFacilities()

	updated, err := svc.SetStatus(ctx, "fac-5", facilities.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, facilities.StatusActive, updated.(facilities.Facility).Status)

	c := catalog.NewCriteria()
	c.SetStatus(facilities.StatusPending)
	page, err := svc.View(ctx, c, params.Pagination{Limit: 15, Page: 1})
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	_, err = svc.SetStatus(ctx, "fac-5", "archived")
	assert.ErrorIs(t, err, browse.ErrInvalidStatus)

	_, err = svc.SetStatus(ctx, "missing", facilities.StatusActive)
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc := newFacilities()

	require.NoError(t, svc.Delete(ctx, "fac-1"))
	_, err := svc.Get(ctx, "fac-1")
	assert.ErrorIs(t, err, records.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "fac-1"), records.ErrNotFound)
}
