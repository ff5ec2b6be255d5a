package catalog

import (
	"slices"
	"strings"
)

// Predicate tests one entity against one filter dimension.
type Predicate func(Entity) bool

// Compile turns c into the list of predicates for its active dimensions.
// Sentinel dimensions contribute nothing, so an all-sentinel criteria
// compiles to an empty list and matches every entity.
func Compile(c Criteria) []Predicate {
	var preds []Predicate

	if c.SearchText != "" {
		preds = append(preds, textPredicate(strings.ToLower(c.SearchText)))
	}
	if !unset(c.Category, All) {
		preds = append(preds, exactPredicate(Entity.EntityCategory, c.Category))
	}
	if !unset(c.Location, All) {
		preds = append(preds, exactPredicate(Entity.EntityLocation, c.Location))
	}
	if !unset(c.Status, All) {
		preds = append(preds, exactPredicate(Entity.EntityStatus, c.Status))
	}
	// The slot constraint needs a date to look up, so it rides on the date predicate.
	if c.HasDate() {
		slot := c.TimeSlot
		if unset(slot, All) {
			slot = ""
		}
		preds = append(preds, schedulePredicate(c.Date, slot))
	}

	return preds
}

// Matches reports whether e satisfies every active dimension of c.
func Matches(e Entity, c Criteria) bool {
	return matchAll(e, Compile(c))
}

func matchAll(e Entity, preds []Predicate) bool {
	for _, p := range preds {
		if !p(e) {
			return false
		}
	}
	return true
}

func textPredicate(needle string) Predicate {
	return func(e Entity) bool {
		for _, field := range e.SearchableText() {
			if strings.Contains(strings.ToLower(field), needle) {
				return true
			}
		}
		return false
	}
}

func exactPredicate(field func(Entity) string, want string) Predicate {
	return func(e Entity) bool {
		return field(e) == want
	}
}

// schedulePredicate matches entities with an availability entry on date and,
// when slot is non-empty, that slot listed on that date.
func schedulePredicate(date, slot string) Predicate {
	return func(e Entity) bool {
		schedule, ok := scheduleOf(e)
		if !ok {
			return false
		}
		for _, a := range schedule {
			if a.Date != date {
				continue
			}
			if slot == "" || slices.Contains(a.TimeSlots, slot) {
				return true
			}
		}
		return false
	}
}
