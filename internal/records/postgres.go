package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
	"github.com/Abdulllah321/sports-landing-sub001/internal/infra/dbx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Schema creates the single table every kind is stored in. position keeps
// the insertion order that List returns.
const Schema = `
CREATE TABLE IF NOT EXISTS catalog_records (
	kind       TEXT        NOT NULL,
	id         TEXT        NOT NULL,
	position   BIGSERIAL,
	payload    JSONB       NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (kind, id)
);
CREATE INDEX IF NOT EXISTS catalog_records_kind_position_idx ON catalog_records (kind, position);
`

// Postgres is a Source storing one kind's records as JSONB rows.
type Postgres[T catalog.Entity] struct {
	db   dbx.Querier
	kind string
}

func NewPostgres[T catalog.Entity](q dbx.Querier, kind string) *Postgres[T] {
	return &Postgres[T]{db: q, kind: kind}
}

// Migrate applies Schema.
func Migrate(ctx context.Context, q dbx.Querier) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("migrate catalog_records: %w", err)
	}
	return nil
}

func (r *Postgres[T]) List(ctx context.Context) ([]T, error) {
	const query = `
		SELECT payload
		FROM catalog_records
		WHERE kind = $1
		ORDER BY position`

	rows, err := r.db.Query(ctx, query, r.kind)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.kind, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", r.kind, err)
		}
		var rec T
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("decode %s row: %w", r.kind, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.kind, err)
	}
	return out, nil
}

func (r *Postgres[T]) Get(ctx context.Context, id string) (T, error) {
	var (
		rec     T
		payload []byte
	)
	err := r.db.QueryRow(ctx,
		`SELECT payload FROM catalog_records WHERE kind = $1 AND id = $2`,
		r.kind, id,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rec, ErrNotFound
		}
		return rec, fmt.Errorf("get %s %s: %w", r.kind, id, err)
	}
	if err := json.Unmarshal(payload, &rec); err != nil {
		return rec, fmt.Errorf("decode %s %s: %w", r.kind, id, err)
	}
	return rec, nil
}

func (r *Postgres[T]) Create(ctx context.Context, rec T) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.kind, err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO catalog_records (kind, id, payload) VALUES ($1, $2, $3)`,
		r.kind, rec.EntityID(), payload,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrConflict
		}
		return fmt.Errorf("create %s: %w", r.kind, err)
	}
	return nil
}

func (r *Postgres[T]) Put(ctx context.Context, rec T) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.kind, err)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE catalog_records SET payload = $3, updated_at = now() WHERE kind = $1 AND id = $2`,
		r.kind, rec.EntityID(), payload,
	)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.kind, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Postgres[T]) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM catalog_records WHERE kind = $1 AND id = $2`,
		r.kind, id,
	)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.kind, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SeedIfEmpty inserts items when the kind has no rows yet.
func (r *Postgres[T]) SeedIfEmpty(ctx context.Context, items []T) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM catalog_records WHERE kind = $1`, r.kind,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", r.kind, err)
	}
	if n > 0 {
		return 0, nil
	}
	for _, it := range items {
		if err := r.Create(ctx, it); err != nil {
			return 0, err
		}
	}
	return len(items), nil
}
