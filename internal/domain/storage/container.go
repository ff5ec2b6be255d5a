package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Abdulllah321/sports-landing-sub001/internal/browse"
	"github.com/Abdulllah321/sports-landing-sub001/internal/cache"
	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/academies"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/ads"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/bookings"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/facilities"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/tournaments"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/videos"
	"github.com/Abdulllah321/sports-landing-sub001/internal/infra/dbx"
	"github.com/Abdulllah321/sports-landing-sub001/internal/records"
	"github.com/Abdulllah321/sports-landing-sub001/internal/seed"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Container holds one record source per catalog kind.
type Container struct {
	pool        *pgxpool.Pool // nil for the in-memory catalog
	backend     string
	Facilities  records.Source[facilities.Facility]
	Academies   records.Source[academies.Academy]
	Bookings    records.Source[bookings.Booking]
	Ads         records.Source[ads.Ad]
	Tournaments records.Source[tournaments.Tournament]
	Videos      records.Source[videos.Video]
}

// NewMemoryContainer serves the seeded demo catalog from process memory.
func NewMemoryContainer() *Container {
	return &Container{
		backend:     BackendMemory,
		Facilities:  records.NewMemory(seed.Facilities()),
		Academies:   records.NewMemory(seed.Academies()),
		Bookings:    records.NewMemory(seed.Bookings()),
		Ads:         records.NewMemory(seed.Ads()),
		Tournaments: records.NewMemory(seed.Tournaments()),
		Videos:      records.NewMemory(seed.Videos()),
	}
}

func NewPostgresContainer(db *pgxpool.Pool) *Container {
	return &Container{
		pool:        db,
		backend:     BackendPostgres,
		Facilities:  records.NewPostgres[facilities.Facility](db, facilities.Kind),
		Academies:   records.NewPostgres[academies.Academy](db, academies.Kind),
		Bookings:    records.NewPostgres[bookings.Booking](db, bookings.Kind),
		Ads:         records.NewPostgres[ads.Ad](db, ads.Kind),
		Tournaments: records.NewPostgres[tournaments.Tournament](db, tournaments.Kind),
		Videos:      records.NewPostgres[videos.Video](db, videos.Kind),
	}
}

func (c *Container) Backend() string { return c.backend }

// WithCache puts a Redis snapshot in front of every source.
func (c *Container) WithCache(rdb *redis.Client, ttl time.Duration, logger *zap.SugaredLogger) *Container {
	c.Facilities = cache.NewSnapshot(c.Facilities, rdb, facilities.Kind, ttl, logger)
	c.Academies = cache.NewSnapshot(c.Academies, rdb, academies.Kind, ttl, logger)
	c.Bookings = cache.NewSnapshot(c.Bookings, rdb, bookings.Kind, ttl, logger)
	c.Ads = cache.NewSnapshot(c.Ads, rdb, ads.Kind, ttl, logger)
	c.Tournaments = cache.NewSnapshot(c.Tournaments, rdb, tournaments.Kind, ttl, logger)
	c.Videos = cache.NewSnapshot(c.Videos, rdb, videos.Kind, ttl, logger)
	return c
}

// Catalogs binds every source to the browse engine, in menu order.
func (c *Container) Catalogs() []browse.Catalog {
	return []browse.Catalog{
		browse.New(facilities.Kind, c.Facilities, browse.Pure(facilities.Summarize), facilities.Statuses),
		browse.New(academies.Kind, c.Academies, browse.Pure(academies.Summarize), academies.Statuses),
		browse.New(bookings.Kind, c.Bookings, c.bookingSummary, bookings.Statuses),
		browse.New(ads.Kind, c.Ads, browse.Pure(ads.Summarize), ads.Statuses),
		browse.New(tournaments.Kind, c.Tournaments, browse.Pure(tournaments.Summarize), tournaments.Statuses),
		browse.New(videos.Kind, c.Videos, browse.Pure(videos.Summarize), videos.Statuses),
	}
}

// bookingSummary measures occupancy against the slots the booked facilities
// offer on the dates the matched bookings fall on.
func (c *Container) bookingSummary(ctx context.Context, matched []bookings.Booking) (any, error) {
	venues, err := c.Facilities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load facilities: %w", err)
	}
	offered := facilities.OfferedSlots(venues, bookings.DatesByFacility(matched))
	return bookings.Summarize(matched, offered), nil
}

// Migrate creates the records table and seeds every empty kind in one
// transaction. It is a no-op for the in-memory catalog.
func (c *Container) Migrate(ctx context.Context) (int, error) {
	if c.pool == nil {
		return 0, nil
	}
	if err := records.Migrate(ctx, c.pool); err != nil {
		return 0, err
	}

	seeded := 0
	err := c.withTx(ctx, func(tx dbx.Querier) error {
		steps := []func() (int, error){
			func() (int, error) { return seedKind(ctx, tx, facilities.Kind, seed.Facilities()) },
			func() (int, error) { return seedKind(ctx, tx, academies.Kind, seed.Academies()) },
			func() (int, error) { return seedKind(ctx, tx, bookings.Kind, seed.Bookings()) },
			func() (int, error) { return seedKind(ctx, tx, ads.Kind, seed.Ads()) },
			func() (int, error) { return seedKind(ctx, tx, tournaments.Kind, seed.Tournaments()) },
			func() (int, error) { return seedKind(ctx, tx, videos.Kind, seed.Videos()) },
		}
		for _, step := range steps {
			n, err := step()
			if err != nil {
				return err
			}
			seeded += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return seeded, nil
}

func seedKind[T catalog.Entity](ctx context.Context, q dbx.Querier, kind string, items []T) (int, error) {
	return records.NewPostgres[T](q, kind).SeedIfEmpty(ctx, items)
}

func (c *Container) withTx(ctx context.Context, fn func(tx dbx.Querier) error) error {
	tx, err := c.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback(ctx) // safe even if already committed
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
