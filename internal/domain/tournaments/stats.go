package tournaments

import "github.com/Abdulllah321/sports-landing-sub001/internal/catalog"

type Summary struct {
	Count           int            `json:"count"`
	Upcoming        int            `json:"upcoming"`
	TotalPrizePool  float64        `json:"total_prize_pool"`
	AverageEntryFee float64        `json:"average_entry_fee"`
	RegisteredTeams int            `json:"registered_teams"`
	TotalSpots      int            `json:"total_spots"`
	OpenSpots       int            `json:"open_spots"`
	FillRate        float64        `json:"fill_rate"`
	BySport         catalog.Counts `json:"by_sport"`
}

func Summarize(items []Tournament) Summary {
	registered := catalog.Sum(items, func(t Tournament) float64 { return float64(t.RegisteredTeams) })
	spots := catalog.Sum(items, func(t Tournament) float64 { return float64(t.MaxTeams) })

	return Summary{
		Count:           catalog.Count(items),
		Upcoming:        catalog.CountWhere(items, func(t Tournament) bool { return t.Status == StatusUpcoming }),
		TotalPrizePool:  catalog.Sum(items, func(t Tournament) float64 { return t.PrizePool }),
		AverageEntryFee: catalog.Round(catalog.Average(items, func(t Tournament) float64 { return catalog.PriceValue(t.EntryFee) }), 2),
		RegisteredTeams: int(registered),
		TotalSpots:      int(spots),
		OpenSpots:       int(catalog.Sum(items, func(t Tournament) float64 { return float64(t.OpenSpots()) })),
		FillRate:        catalog.Rate(registered, spots),
		BySport:         catalog.GroupCount(items, func(t Tournament) string { return t.Sport }),
	}
}
