package facilities

import (
	"slices"
	"sort"

	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
)

// Summary holds the stat cards of the facilities browser.
type Summary struct {
	Count         int            `json:"count"`
	MinPrice      float64        `json:"min_price"`
	MaxPrice      float64        `json:"max_price"`
	AveragePrice  float64        `json:"average_price"`
	AverageRating float64        `json:"average_rating"`
	TotalCapacity int            `json:"total_capacity"`
	ByType        catalog.Counts `json:"by_type"`
	ByCity        catalog.Counts `json:"by_city"`
	// ByFeature counts facilities offering each feature, keys sorted.
	ByFeature catalog.Counts `json:"by_feature"`
}

func price(f Facility) string { return f.Price }

func Summarize(items []Facility) Summary {
	return Summary{
		Count:         catalog.Count(items),
		MinPrice:      catalog.MinOf(items, catalog.PriceOf(price)),
		MaxPrice:      catalog.MaxOf(items, catalog.PriceOf(price)),
		AveragePrice:  catalog.Round(catalog.Average(items, func(f Facility) float64 { return catalog.PriceValue(f.Price) }), 2),
		AverageRating: catalog.Round(catalog.Average(items, func(f Facility) float64 { return f.Rating }), 2),
		TotalCapacity: int(catalog.Sum(items, func(f Facility) float64 { return float64(f.Capacity) })),
		ByType:        catalog.GroupCount(items, func(f Facility) string { return f.Type }),
		ByCity:        catalog.GroupCount(items, func(f Facility) string { return f.City }),
		ByFeature:     featureCounts(items),
	}
}

func featureCounts(items []Facility) catalog.Counts {
	var offered []string
	for _, f := range items {
		for name, on := range f.Features {
			if on {
				offered = append(offered, name)
			}
		}
	}
	// map iteration is random; sort so the counts come out stable
	sort.Strings(offered)
	return catalog.GroupCount(offered, func(s string) string { return s })
}

// OfferedSlots counts the slots each named facility puts up on its listed
// dates. datesByName is keyed by facility name; other facilities are ignored.
func OfferedSlots(items []Facility, datesByName map[string][]string) int {
	n := 0
	for _, f := range items {
		dates, ok := datesByName[f.Name]
		if !ok {
			continue
		}
		for _, a := range f.Availability {
			if slices.Contains(dates, a.Date) {
				n += len(a.TimeSlots)
			}
		}
	}
	return n
}
