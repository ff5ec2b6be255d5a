package videos

import "github.com/Abdulllah321/sports-landing-sub001/internal/catalog"

type Summary struct {
	Count           int            `json:"count"`
	Published       int            `json:"published"`
	TotalViews      int            `json:"total_views"`
	AverageViews    float64        `json:"average_views"`
	TotalLikes      int            `json:"total_likes"`
	LikeRate        float64        `json:"like_rate"`
	AverageDuration float64        `json:"average_duration_seconds"`
	BySport         catalog.Counts `json:"by_sport"`
}

func views(v Video) float64 { return float64(v.Views) }

func Summarize(items []Video) Summary {
	totalViews := catalog.Sum(items, views)
	likes := catalog.Sum(items, func(v Video) float64 { return float64(v.Likes) })

	return Summary{
		Count:           catalog.Count(items),
		Published:       catalog.CountWhere(items, func(v Video) bool { return v.Status == StatusPublished }),
		TotalViews:      int(totalViews),
		AverageViews:    catalog.Round(catalog.Average(items, views), 2),
		TotalLikes:      int(likes),
		LikeRate:        catalog.Rate(likes, totalViews),
		AverageDuration: catalog.Round(catalog.Average(items, func(v Video) float64 { return float64(v.Duration) }), 2),
		BySport:         catalog.GroupCount(items, func(v Video) string { return v.Sport }),
	}
}
