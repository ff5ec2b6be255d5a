package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByCategory(t *testing.T) {
	items := []testItem{
		{id: "a", category: "Indoor"},
		{id: "b", category: "Outdoor"},
	}
	c := NewCriteria()
	c.SetCategory("Indoor")

	got := Filter(items, c)

	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].id)
}

func TestFilterPreservesOrderAndSource(t *testing.T) {
	items := sampleItems()
	before := ids(items)

	c := NewCriteria()
	c.SetCategory("Indoor")
	got := Filter(items, c)

	assert.Equal(t, []string{"f1", "f3"}, ids(got))
	assert.Equal(t, before, ids(items), "source untouched")

	got[0].name = "changed"
	assert.Equal(t, "Arena Sports Complex", items[0].name, "result is a new slice")
}

func TestFilterIsIdempotent(t *testing.T) {
	items := sampleItems()
	criteria := []Criteria{NewCriteria(), {Location: "Karachi"}, {SearchText: "a", Status: "active"}, {Date: "2024-03-01"}}

	for _, c := range criteria {
		once := Filter(items, c)
		twice := Filter(once, c)
		assert.Equal(t, ids(once), ids(twice))
	}
}

func TestFilterEmptyInputs(t *testing.T) {
	got := Filter([]testItem(nil), NewCriteria())
	assert.NotNil(t, got)
	assert.Empty(t, got)

	c := NewCriteria()
	c.SetDate("1999-01-01")
	assert.Empty(t, Filter(sampleItems(), c), "unknown date is an empty result, not an error")
}

func TestFilterDateThenSlot(t *testing.T) {
	c := NewCriteria()
	c.SetDate("2024-03-01")
	assert.Equal(t, []string{"f1", "f2"}, ids(Filter(sampleItems(), c)))

	c.SetTimeSlot("16:00")
	assert.Equal(t, []string{"f2"}, ids(Filter(sampleItems(), c)))
}
