package records

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r rec) EntityID() string         { return r.ID }
func (r rec) EntityCategory() string   { return "" }
func (r rec) EntityLocation() string   { return "" }
func (r rec) EntityStatus() string     { return "" }
func (r rec) SearchableText() []string { return []string{r.Name} }

func TestMemoryKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	seed := []rec{{ID: "a"}, {ID: "b"}}
	m := NewMemory(seed)

	require.NoError(t, m.Create(ctx, rec{ID: "c"}))
	seed[0].Name = "mutated"

	got, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []rec{{ID: "a"}, {ID: "b"}, {ID: "c"}}, got, "seed slice is copied")

	got[0].Name = "also mutated"
	again, _ := m.List(ctx)
	assert.Empty(t, again[0].Name, "List hands out a copy")
}

func TestMemoryMutations(t *testing.T) {
	ctx := context.Background()
	m := NewMemory([]rec{{ID: "a", Name: "one"}, {ID: "b"}})

	assert.ErrorIs(t, m.Create(ctx, rec{ID: "a"}), ErrConflict)

	require.NoError(t, m.Put(ctx, rec{ID: "a", Name: "uno"}))
	got, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "uno", got.Name)

	assert.ErrorIs(t, m.Put(ctx, rec{ID: "zz"}), ErrNotFound)

	require.NoError(t, m.Delete(ctx, "a"))
	_, err = m.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.Delete(ctx, "a"), ErrNotFound)

	list, _ := m.List(ctx)
	assert.Equal(t, []rec{{ID: "b"}}, list)
}

func TestNewIDIsUnique(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

// fakeQuerier answers Exec and QueryRow; Query is not exercised here.
type fakeQuerier struct {
	execTag pgconn.CommandTag
	execErr error
	rowErr  error
	payload []byte
	lastSQL string
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.lastSQL = sql
	return f.execTag, f.execErr
}

func (f *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	f.lastSQL = sql
	return fakeRow{f}
}

type fakeRow struct{ f *fakeQuerier }

func (r fakeRow) Scan(dest ...any) error {
	if r.f.rowErr != nil {
		return r.f.rowErr
	}
	*(dest[0].(*[]byte)) = r.f.payload
	return nil
}

func TestPostgresGet(t *testing.T) {
	ctx := context.Background()

	q := &fakeQuerier{payload: []byte(`{"id":"a","name":"Arena"}`)}
	got, err := NewPostgres[rec](q, "facilities").Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, rec{ID: "a", Name: "Arena"}, got)

	q = &fakeQuerier{rowErr: pgx.ErrNoRows}
	_, err = NewPostgres[rec](q, "facilities").Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresCreateConflict(t *testing.T) {
	q := &fakeQuerier{execErr: &pgconn.PgError{Code: "23505"}}
	err := NewPostgres[rec](q, "facilities").Create(context.Background(), rec{ID: "a"})
	assert.ErrorIs(t, err, ErrConflict)

	q = &fakeQuerier{execErr: errors.New("boom")}
	err = NewPostgres[rec](q, "facilities").Create(context.Background(), rec{ID: "a"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestPostgresPutAndDeleteMissingRow(t *testing.T) {
	ctx := context.Background()
	q := &fakeQuerier{execTag: pgconn.NewCommandTag("UPDATE 0")}
	assert.ErrorIs(t, NewPostgres[rec](q, "ads").Put(ctx, rec{ID: "x"}), ErrNotFound)

	q = &fakeQuerier{execTag: pgconn.NewCommandTag("DELETE 0")}
	assert.ErrorIs(t, NewPostgres[rec](q, "ads").Delete(ctx, "x"), ErrNotFound)

	q = &fakeQuerier{execTag: pgconn.NewCommandTag("DELETE 1")}
	assert.NoError(t, NewPostgres[rec](q, "ads").Delete(ctx, "x"))
}
