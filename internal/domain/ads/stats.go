package ads

import "github.com/Abdulllah321/sports-landing-sub001/internal/catalog"

// Summary mirrors the analytics cards of the ads dashboard.
type Summary struct {
	Count            int            `json:"count"`
	Active           int            `json:"active"`
	TotalBudget      float64        `json:"total_budget"`
	TotalSpent       float64        `json:"total_spent"`
	BudgetUsed       float64        `json:"budget_used"`
	TotalImpressions int            `json:"total_impressions"`
	TotalClicks      int            `json:"total_clicks"`
	ClickThroughRate float64        `json:"click_through_rate"`
	ByPlacement      catalog.Counts `json:"by_placement"`
	ByStatus         catalog.Counts `json:"by_status"`
}

func Summarize(items []Ad) Summary {
	budget := catalog.Sum(items, func(a Ad) float64 { return a.Budget })
	spent := catalog.Sum(items, func(a Ad) float64 { return a.Spent })
	impressions := catalog.Sum(items, func(a Ad) float64 { return float64(a.Impressions) })
	clicks := catalog.Sum(items, func(a Ad) float64 { return float64(a.Clicks) })

	return Summary{
		Count:            catalog.Count(items),
		Active:           catalog.CountWhere(items, func(a Ad) bool { return a.Status == StatusActive }),
		TotalBudget:      budget,
		TotalSpent:       spent,
		BudgetUsed:       catalog.Rate(spent, budget),
		TotalImpressions: int(impressions),
		TotalClicks:      int(clicks),
		ClickThroughRate: catalog.Rate(clicks, impressions),
		ByPlacement:      catalog.GroupCount(items, func(a Ad) string { return a.Placement }),
		ByStatus:         catalog.GroupCount(items, func(a Ad) string { return a.Status }),
	}
}
