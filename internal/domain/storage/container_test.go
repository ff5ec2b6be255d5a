package storage

import (
	"context"
	"testing"
	"time"

	"github.com/Abdulllah321/sports-landing-sub001/internal/browse"
	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/bookings"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/facilities"
	"github.com/Abdulllah321/sports-landing-sub001/internal/params"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func catalogByKind(t *testing.T, c *Container, kind string) browse.Catalog {
	t.Helper()
	for _, cat := range c.Catalogs() {
		if cat.Kind() == kind {
			return cat
		}
	}
	t.Fatalf("no catalog for %s", kind)
	return nil
}

func TestCatalogsOrder(t *testing.T) {
	var kinds []string
	for _, cat := range NewMemoryContainer().Catalogs() {
		kinds = append(kinds, cat.Kind())
	}
	assert.Equal(t, []string{"facilities", "academies", "bookings", "ads", "tournaments", "videos"}, kinds)
}

func TestBookingOccupancy(t *testing.T) {
	c := NewMemoryContainer()
	cat := catalogByKind(t, c, bookings.Kind)

	criteria := catalog.NewCriteria()
	criteria.SetDate("2024-03-01")

	out, matched, err := cat.Browse(context.Background(), criteria, params.Pagination{Limit: 15, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, matched)

	page := out.(*browse.Page[bookings.Booking])
	summary := page.Summary.(bookings.Summary)
	assert.Equal(t, 3, summary.BookedSlots)
	assert.Equal(t, 7, summary.OfferedSlots)
	assert.Equal(t, 42.86, summary.OccupancyRate)
}

func TestBookingOccupancyFollowsLocation(t *testing.T) {
	c := NewMemoryContainer()
	cat := catalogByKind(t, c, bookings.Kind)

	criteria := catalog.NewCriteria()
	criteria.SetDate("2024-03-01")
	criteria.SetLocation("Lahore")

	out, matched, err := cat.Browse(context.Background(), criteria, params.Pagination{Limit: 15, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, matched)

	summary := out.(*browse.Page[bookings.Booking]).Summary.(bookings.Summary)
	assert.Equal(t, 2, summary.BookedSlots)
	// only Elite Sports Arena's three slots on the day count
	assert.Equal(t, 3, summary.OfferedSlots)
	assert.Equal(t, 66.67, summary.OccupancyRate)
}

func TestMigrateMemoryIsNoop(t *testing.T) {
	n, err := NewMemoryContainer().Migrate(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWithCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	c := NewMemoryContainer().WithCache(rdb, time.Minute, zap.NewNop().Sugar())
	cat := catalogByKind(t, c, facilities.Kind)
	ctx := context.Background()

	_, matched, err := cat.Browse(ctx, catalog.NewCriteria(), params.Pagination{Limit: 15, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 6, matched)
	assert.True(t, mr.Exists("catalog:snapshot:facilities"))

	require.NoError(t, cat.Delete(ctx, "fac-1"))
	assert.False(t, mr.Exists("catalog:snapshot:facilities"))

	_, matched, err = cat.Browse(ctx, catalog.NewCriteria(), params.Pagination{Limit: 15, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 5, matched)
}
