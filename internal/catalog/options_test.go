package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistinctCategoriesAndLocations(t *testing.T) {
	items := append(sampleItems(), testItem{id: "f4", category: "Outdoor", city: ""})

	cats := DistinctCategories(items)
	assert.Equal(t, []string{"Indoor", "Outdoor"}, cats)
	assert.Equal(t, []string{"Lahore", "Karachi"}, DistinctLocations(items))
	assert.Equal(t, []string{"active", "pending"}, DistinctStatuses(items))

	// every returned category exists, every existing category returned once
	present := map[string]int{}
	for _, it := range items {
		present[it.category]++
	}
	for _, c := range cats {
		assert.Contains(t, present, c)
	}
	assert.Len(t, cats, len(present))
}

func TestDistinctCategoriesLeavesOutBlank(t *testing.T) {
	items := []testItem{{id: "a", category: ""}, {id: "b", category: "Indoor"}, {id: "c", category: ""}}

	assert.Equal(t, []string{"Indoor"}, DistinctCategories(items))
	assert.Equal(t, 2, GroupCount(items, func(it testItem) string { return it.category }).Get(""))
}

func TestDistinctDatesSortedUnion(t *testing.T) {
	items := []testItem{
		{id: "a", slots: []Availability{{Date: "2024-03-05"}, {Date: "2024-03-01"}}},
		{id: "b", slots: []Availability{{Date: "2024-03-01"}, {Date: "2024-02-28"}}},
	}
	assert.Equal(t, []string{"2024-02-28", "2024-03-01", "2024-03-05"}, DistinctDates(items))
	assert.Equal(t, []string{}, DistinctDates([]plainItem{{id: "p"}}))
}

func TestDistinctTimeSlotsForDate(t *testing.T) {
	items := []testItem{
		{id: "a", slots: []Availability{{Date: "2024-03-01", TimeSlots: []string{"14:00", "10:00"}}}},
		{id: "b", slots: []Availability{
			{Date: "2024-03-01", TimeSlots: []string{"10:00", "08:00"}},
			{Date: "2024-03-02", TimeSlots: []string{"20:00"}},
		}},
	}
	assert.Equal(t, []string{"08:00", "10:00", "14:00"}, DistinctTimeSlotsForDate(items, "2024-03-01"))
	assert.Equal(t, []string{}, DistinctTimeSlotsForDate(items, "2024-09-09"))
}

// Options come from the whole collection; a narrowing filter must not shrink
// them. Don't "fix" this to use the filtered items.
func TestBrowseOptionsIgnoreActiveFilters(t *testing.T) {
	items := sampleItems()
	c := NewCriteria()
	c.SetLocation("Lahore")

	view := Browse(items, c)

	assert.Equal(t, []string{"f1"}, ids(view.Items))
	assert.Equal(t, []string{"Lahore", "Karachi"}, view.Options.Locations)
	assert.Equal(t, []string{"2024-03-01", "2024-03-02"}, view.Options.Dates)
	assert.Empty(t, view.Options.TimeSlots)

	c.SetDate("2024-03-01")
	view = Browse(items, c)
	assert.Equal(t, []string{"10:00", "14:00", "16:00"}, view.Options.TimeSlots)
}
