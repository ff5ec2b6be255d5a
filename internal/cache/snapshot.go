package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
	"github.com/Abdulllah321/sports-landing-sub001/internal/records"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "catalog:snapshot:"

var errStaleSnapshot = errors.New("snapshot generation moved")

// Snapshot caches a Source's full List result in Redis. Mutations go straight
// to the wrapped source, bump the kind's generation and drop the cached copy.
// A List only stores what it read if the generation is unchanged, so a write
// racing a reload is never papered over. Redis being down never fails a
// request: reads fall through to the source and the error is logged.
type Snapshot[T catalog.Entity] struct {
	source records.Source[T]
	rdb    *redis.Client
	key    string
	genKey string
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewSnapshot[T catalog.Entity](source records.Source[T], rdb *redis.Client, kind string, ttl time.Duration, logger *zap.SugaredLogger) *Snapshot[T] {
	return &Snapshot[T]{
		source: source,
		rdb:    rdb,
		key:    keyPrefix + kind,
		genKey: keyPrefix + kind + ":gen",
		ttl:    ttl,
		logger: logger,
	}
}

func (s *Snapshot[T]) List(ctx context.Context) ([]T, error) {
	raw, err := s.rdb.Get(ctx, s.key).Bytes()
	switch {
	case err == nil:
		var items []T
		decodeErr := json.Unmarshal(raw, &items)
		if decodeErr == nil {
			return items, nil
		}
		s.logger.Warnw("discarding unreadable snapshot", "key", s.key, "error", decodeErr)
	case !errors.Is(err, redis.Nil):
		s.logger.Warnw("snapshot read failed", "key", s.key, "error", err)
	}

	gen, genErr := s.generation(ctx)
	if genErr != nil {
		s.logger.Warnw("snapshot generation read failed", "key", s.genKey, "error", genErr)
	}

	items, err := s.source.List(ctx)
	if err != nil {
		return nil, err
	}
	if genErr != nil {
		return items, nil
	}

	payload, err := json.Marshal(items)
	if err != nil {
		s.logger.Warnw("snapshot encode failed", "key", s.key, "error", err)
		return items, nil
	}
	s.store(ctx, gen, payload)
	return items, nil
}

func (s *Snapshot[T]) generation(ctx context.Context) (int64, error) {
	gen, err := s.rdb.Get(ctx, s.genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// store writes payload only while the generation still equals gen.
func (s *Snapshot[T]) store(ctx context.Context, gen int64, payload []byte) {
	err := s.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, s.genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return errStaleSnapshot
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key, payload, s.ttl)
			return nil
		})
		return err
	}, s.genKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleSnapshot), errors.Is(err, redis.TxFailedErr):
		s.logger.Debugw("snapshot not stored, catalog changed during reload", "key", s.key)
	default:
		s.logger.Warnw("snapshot write failed", "key", s.key, "error", err)
	}
}

func (s *Snapshot[T]) Get(ctx context.Context, id string) (T, error) {
	return s.source.Get(ctx, id)
}

func (s *Snapshot[T]) Create(ctx context.Context, rec T) error {
	if err := s.source.Create(ctx, rec); err != nil {
		return err
	}
	s.Invalidate(ctx)
	return nil
}

func (s *Snapshot[T]) Put(ctx context.Context, rec T) error {
	if err := s.source.Put(ctx, rec); err != nil {
		return err
	}
	s.Invalidate(ctx)
	return nil
}

func (s *Snapshot[T]) Delete(ctx context.Context, id string) error {
	if err := s.source.Delete(ctx, id); err != nil {
		return err
	}
	s.Invalidate(ctx)
	return nil
}

// Invalidate bumps the generation and drops the cached snapshot so the next
// List reloads it.
func (s *Snapshot[T]) Invalidate(ctx context.Context) {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, s.genKey)
		pipe.Del(ctx, s.key)
		return nil
	})
	if err != nil {
		s.logger.Warnw("snapshot invalidate failed", "key", s.key, "error", err)
	}
}
