package params

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 15
	MaxLimit     = 30

	// MaxPage keeps Page*Limit and the offset inside int.
	MaxPage = math.MaxInt / MaxLimit
)

// URL: /v1/facilities?page=2&limit=10
// → ParsePagination() → Pagination{Limit:10, Page:2, Offset:10}
// → filter the whole collection, compute stats over every match
// → ComputeMeta(matched) → fills Total, TotalPages, HasNext, etc.
// → Slice(matched, p) → the 10 items of page 2
// Pagination holds pagination info and computed metadata.
type Pagination struct {
	Limit      int  `json:"limit"`       // items per page
	Offset     int  `json:"offset"`      // index of the first item on the page
	Page       int  `json:"page"`        // Current Page number
	Total      int  `json:"total"`       // matched items before paging
	TotalPages int  `json:"total_pages"` // Total pages available
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// ParsePagination parses ?limit=...&page=... safely.  Careful key are case sensitive
func ParsePagination(q url.Values) Pagination {
	p := Pagination{
		Limit: DefaultLimit,
		Page:  1,
	}

	// --- Parse limit ---
	if limitStr := strings.TrimSpace(q.Get("limit")); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			switch {
			case limit <= 0:
				p.Limit = DefaultLimit
			case limit > MaxLimit:
				p.Limit = MaxLimit
			default:
				p.Limit = limit
			}
		}
	}

	// --- Parse page ---
	if pageStr := strings.TrimSpace(q.Get("page")); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			p.Page = min(page, MaxPage)
		}
	}

	// --- Calculate offset ---
	p.Offset = (p.Page - 1) * p.Limit
	return p
}

// ComputeMeta updates pagination after counting the matched items.
func (p *Pagination) ComputeMeta(total int) {
	p.Total = total
	if p.Limit > 0 {
		p.TotalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	p.HasPrev = p.Page > 1
	p.HasNext = p.Page < p.TotalPages
}

// Slice returns the items on page p. A zero Limit means no paging. The result
// is never nil, so an out-of-range page encodes as [].
func Slice[T any](items []T, p Pagination) []T {
	if p.Limit <= 0 {
		if items == nil {
			return []T{}
		}
		return items
	}
	if p.Offset >= len(items) || p.Offset < 0 {
		return []T{}
	}
	end := min(p.Offset+p.Limit, len(items))
	return items[p.Offset:end]
}
