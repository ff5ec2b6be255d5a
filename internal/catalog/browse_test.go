package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrowseEmptyCollection(t *testing.T) {
	view := Browse([]testItem{}, NewCriteria())

	assert.Empty(t, view.Items)
	assert.Zero(t, view.Stats.Total)
	assert.Zero(t, view.Stats.Matched)
	assert.Empty(t, view.Stats.ByCategory)
	assert.Empty(t, view.Options.Categories)
	assert.Empty(t, view.Options.Dates)

	assert.Zero(t, Average(view.Items, rating))
	assert.Zero(t, MinOf(view.Items, PriceOf(price)))
	assert.Zero(t, MaxOf(view.Items, PriceOf(price)))
}

func TestBrowseStatsFollowFilteredItems(t *testing.T) {
	c := NewCriteria()
	c.SetLocation("Karachi")

	view := Browse(sampleItems(), c)

	assert.Equal(t, 3, view.Stats.Total)
	assert.Equal(t, 2, view.Stats.Matched)
	assert.Equal(t, Counts{{Key: "Outdoor", Count: 1}, {Key: "Indoor", Count: 1}}, view.Stats.ByCategory)
	assert.Equal(t, Counts{{Key: "active", Count: 1}, {Key: "pending", Count: 1}}, view.Stats.ByStatus)
	assert.Equal(t, "Karachi", view.Criteria.Location)
	assert.Equal(t, Any, view.Criteria.Date)
}
