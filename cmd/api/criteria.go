package main

import (
	"net/url"
	"strings"
	"time"

	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
)

const (
	dateLayout = "2006-01-02"
	slotLayout = "15:04"
)

// parseCriteria reads the browse filters from the query string. Missing
// values fall back to the match-everything sentinels.
//
//	?search=arena&category=Indoor&location=Lahore&status=active&date=2024-03-01&time_slot=10:00
func parseCriteria(q url.Values) (catalog.Criteria, error) {
	c := catalog.NewCriteria()

	c.SetSearchText(strings.TrimSpace(q.Get("search")))
	c.SetCategory(strings.TrimSpace(q.Get("category")))
	c.SetLocation(strings.TrimSpace(q.Get("location")))
	c.SetStatus(strings.TrimSpace(q.Get("status")))

	date := strings.TrimSpace(q.Get("date"))
	if date != "" && date != catalog.Any {
		if err := validDate(date); err != nil {
			return c, err
		}
	}
	c.SetDate(date)

	slot := strings.TrimSpace(q.Get("time_slot"))
	if slot != "" && slot != catalog.All {
		if _, err := time.Parse(slotLayout, slot); err != nil || len(slot) != len(slotLayout) {
			return c, errInvalidRequest("time_slot must be HH:MM or all")
		}
	}
	c.SetTimeSlot(slot)

	return c, nil
}

func validDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return errInvalidRequest("date must be YYYY-MM-DD or any")
	}
	return nil
}
