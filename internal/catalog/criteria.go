package catalog

import "strings"

// Sentinel filter values. A dimension set to its sentinel imposes no
// constraint. Date uses Any; every other dimension uses All, so "any" is an
// ordinary category or status value.
const (
	All = "all"
	Any = "any"
)

// Criteria is the active filter state of one browse screen. The zero value
// matches everything; NewCriteria returns the same state with the sentinels
// spelled out.
type Criteria struct {
	SearchText string `json:"search"`
	Category   string `json:"category"`
	Location   string `json:"location"`
	Status     string `json:"status"`
	Date       string `json:"date"`
	TimeSlot   string `json:"time_slot"`
}

func NewCriteria() Criteria {
	return Criteria{
		Category: All,
		Location: All,
		Status:   All,
		Date:     Any,
		TimeSlot: All,
	}
}

// SetSearchText stores s verbatim; matching lower-cases both sides.
func (c *Criteria) SetSearchText(s string) { c.SearchText = s }

func (c *Criteria) SetCategory(v string) { c.Category = orSentinel(v, All) }

func (c *Criteria) SetLocation(v string) { c.Location = orSentinel(v, All) }

func (c *Criteria) SetStatus(v string) { c.Status = orSentinel(v, All) }

func (c *Criteria) SetDate(v string) { c.Date = orSentinel(v, Any) }

func (c *Criteria) SetTimeSlot(v string) { c.TimeSlot = orSentinel(v, All) }

// Reset restores every dimension to its sentinel.
func (c *Criteria) Reset() { *c = NewCriteria() }

// Snapshot returns a normalised copy that later setter calls cannot affect.
func (c Criteria) Snapshot() Criteria {
	return Criteria{
		SearchText: c.SearchText,
		Category:   orSentinel(c.Category, All),
		Location:   orSentinel(c.Location, All),
		Status:     orSentinel(c.Status, All),
		Date:       orSentinel(c.Date, Any),
		TimeSlot:   orSentinel(c.TimeSlot, All),
	}
}

// HasDate reports whether a specific date is selected.
func (c Criteria) HasDate() bool { return !unset(c.Date, Any) }

// ActiveFilters counts the dimensions that currently constrain the result.
// A time slot only counts once a date is chosen.
func (c Criteria) ActiveFilters() int {
	n := 0
	if c.SearchText != "" {
		n++
	}
	for _, v := range []string{c.Category, c.Location, c.Status} {
		if !unset(v, All) {
			n++
		}
	}
	if c.HasDate() {
		n++
	}
	if c.HasDate() && !unset(c.TimeSlot, All) {
		n++
	}
	return n
}

func orSentinel(v, sentinel string) string {
	if strings.TrimSpace(v) == "" {
		return sentinel
	}
	return v
}

func unset(v, sentinel string) bool {
	return v == "" || v == sentinel
}
