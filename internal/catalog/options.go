package catalog

import "sort"

// Option sets are always derived from the full, unfiltered collection so that
// choosing a city never shrinks the date dropdown and vice versa.

// DistinctCategories returns each non-empty category once, in first-seen order.
// Entities without a category are left out of the set, so the dropdown never
// offers a blank choice; GroupCount still reports them under the empty key.
func DistinctCategories[T Entity](items []T) []string {
	return distinct(items, func(e T) string { return e.EntityCategory() })
}

// DistinctLocations returns each non-empty location once, in first-seen order.
// As with categories, entities without a location are left out.
func DistinctLocations[T Entity](items []T) []string {
	return distinct(items, func(e T) string { return e.EntityLocation() })
}

// DistinctStatuses returns each non-empty status once, in first-seen order.
func DistinctStatuses[T Entity](items []T) []string {
	return distinct(items, func(e T) string { return e.EntityStatus() })
}

// DistinctDates returns every availability date of every entity, sorted
// ascending. Dates are YYYY-MM-DD keys so lexical order is calendar order.
func DistinctDates[T Entity](items []T) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, it := range items {
		schedule, _ := scheduleOf(it)
		for _, a := range schedule {
			if a.Date == "" {
				continue
			}
			if _, ok := seen[a.Date]; ok {
				continue
			}
			seen[a.Date] = struct{}{}
			out = append(out, a.Date)
		}
	}
	sort.Strings(out)
	return out
}

// DistinctTimeSlotsForDate returns the union of the slots every entity offers
// on date, sorted ascending.
func DistinctTimeSlotsForDate[T Entity](items []T, date string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, it := range items {
		schedule, _ := scheduleOf(it)
		for _, a := range schedule {
			if a.Date != date {
				continue
			}
			for _, slot := range a.TimeSlots {
				if slot == "" {
					continue
				}
				if _, ok := seen[slot]; ok {
					continue
				}
				seen[slot] = struct{}{}
				out = append(out, slot)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Options bundles the selectable values of every dimension.
type Options struct {
	Categories []string `json:"categories"`
	Locations  []string `json:"locations"`
	Statuses   []string `json:"statuses"`
	Dates      []string `json:"dates"`
	// TimeSlots is only filled when a specific date is selected.
	TimeSlots []string `json:"time_slots"`
}

// ExtractOptions computes the option sets of items for the date chosen in c.
func ExtractOptions[T Entity](items []T, c Criteria) Options {
	opts := Options{
		Categories: DistinctCategories(items),
		Locations:  DistinctLocations(items),
		Statuses:   DistinctStatuses(items),
		Dates:      DistinctDates(items),
		TimeSlots:  []string{},
	}
	if c.HasDate() {
		opts.TimeSlots = DistinctTimeSlotsForDate(items, c.Date)
	}
	return opts
}

func distinct[T any](items []T, key func(T) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, it := range items {
		k := key(it)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
