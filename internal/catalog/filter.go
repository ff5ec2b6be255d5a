package catalog

// Filter returns the entities of items that match c, in their original order.
// items is never modified; the result is a fresh slice, empty but non-nil when
// nothing matches. Each entity is evaluated once against the predicates
// compiled from c.
func Filter[T Entity](items []T, c Criteria) []T {
	preds := Compile(c)

	out := make([]T, 0, len(items))
	for _, it := range items {
		if matchAll(it, preds) {
			out = append(out, it)
		}
	}
	return out
}
