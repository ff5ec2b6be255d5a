package academies

import "github.com/Abdulllah321/sports-landing-sub001/internal/catalog"

type Summary struct {
	Count            int            `json:"count"`
	MinFee           float64        `json:"min_fee"`
	MaxFee           float64        `json:"max_fee"`
	AverageFee       float64        `json:"average_fee"`
	AverageRating    float64        `json:"average_rating"`
	TotalStudents    int            `json:"total_students"`
	TotalCoaches     int            `json:"total_coaches"`
	StudentsPerCoach float64        `json:"students_per_coach"`
	BySport          catalog.Counts `json:"by_sport"`
}

func fee(a Academy) string { return a.Fee }

func Summarize(items []Academy) Summary {
	students := catalog.Sum(items, func(a Academy) float64 { return float64(a.Students) })
	coaches := catalog.Sum(items, func(a Academy) float64 { return float64(a.Coaches) })

	var ratio float64
	if coaches > 0 {
		ratio = catalog.Round(students/coaches, 2)
	}

	return Summary{
		Count:            catalog.Count(items),
		MinFee:           catalog.MinOf(items, catalog.PriceOf(fee)),
		MaxFee:           catalog.MaxOf(items, catalog.PriceOf(fee)),
		AverageFee:       catalog.Round(catalog.Average(items, func(a Academy) float64 { return catalog.PriceValue(a.Fee) }), 2),
		AverageRating:    catalog.Round(catalog.Average(items, func(a Academy) float64 { return a.Rating }), 2),
		TotalStudents:    int(students),
		TotalCoaches:     int(coaches),
		StudentsPerCoach: ratio,
		BySport:          catalog.GroupCount(items, func(a Academy) string { return a.Sport }),
	}
}
