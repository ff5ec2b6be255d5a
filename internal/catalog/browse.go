package catalog

// Stats is the kind-independent summary shown above every list.
type Stats struct {
	Total      int    `json:"total"`
	Matched    int    `json:"matched"`
	ByCategory Counts `json:"by_category"`
	ByLocation Counts `json:"by_location"`
	ByStatus   Counts `json:"by_status"`
}

// View is one recomputation pass: the filtered items, the option sets of the
// full collection and the stats of the filtered items.
type View[T Entity] struct {
	Criteria Criteria `json:"criteria"`
	Items    []T      `json:"items"`
	Options  Options  `json:"options"`
	Stats    Stats    `json:"stats"`
}

// Browse runs criteria → filter → aggregate over items. It is pure: the same
// inputs always give the same view, and items is left untouched.
func Browse[T Entity](items []T, c Criteria) View[T] {
	snap := c.Snapshot()
	matched := Filter(items, snap)

	return View[T]{
		Criteria: snap,
		Items:    matched,
		Options:  ExtractOptions(items, snap),
		Stats:    Summarize(items, matched),
	}
}

// Summarize computes Stats for the filtered subset of all.
func Summarize[T Entity](all, matched []T) Stats {
	return Stats{
		Total:      Count(all),
		Matched:    Count(matched),
		ByCategory: GroupCount(matched, func(e T) string { return e.EntityCategory() }),
		ByLocation: GroupCount(matched, func(e T) string { return e.EntityLocation() }),
		ByStatus:   GroupCount(matched, func(e T) string { return e.EntityStatus() }),
	}
}
