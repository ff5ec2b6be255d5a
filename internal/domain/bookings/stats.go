package bookings

import "github.com/Abdulllah321/sports-landing-sub001/internal/catalog"

type Summary struct {
	Count          int            `json:"count"`
	Pending        int            `json:"pending"`
	Approved       int            `json:"approved"`
	Rejected       int            `json:"rejected"`
	Cancelled      int            `json:"cancelled"`
	Completed      int            `json:"completed"`
	Revenue        float64        `json:"revenue"`
	PendingRevenue float64        `json:"pending_revenue"`
	AverageAmount  float64        `json:"average_amount"`
	ApprovalRate   float64        `json:"approval_rate"`
	BookedSlots    int            `json:"booked_slots"`
	OfferedSlots   int            `json:"offered_slots"`
	OccupancyRate  float64        `json:"occupancy_rate"`
	ByStatus       catalog.Counts `json:"by_status"`
	ByFacility     catalog.Counts `json:"by_facility"`
}

func amount(b Booking) float64 { return b.Amount }

func hasStatus(status string) func(Booking) bool {
	return func(b Booking) bool { return b.Status == status }
}

// Summarize computes the booking stat cards. offeredSlots is the number of
// slots the booked facilities put up on their booked dates; occupancy is 0
// when it is 0.
func Summarize(items []Booking, offeredSlots int) Summary {
	s := Summary{
		Count:          catalog.Count(items),
		Pending:        catalog.CountWhere(items, hasStatus(StatusPending)),
		Approved:       catalog.CountWhere(items, hasStatus(StatusApproved)),
		Rejected:       catalog.CountWhere(items, hasStatus(StatusRejected)),
		Cancelled:      catalog.CountWhere(items, hasStatus(StatusCancelled)),
		Completed:      catalog.CountWhere(items, hasStatus(StatusCompleted)),
		Revenue:        catalog.SumWhere(items, Booking.Earning, amount),
		PendingRevenue: catalog.SumWhere(items, hasStatus(StatusPending), amount),
		AverageAmount:  catalog.Round(catalog.Average(items, amount), 2),
		BookedSlots:    catalog.CountWhere(items, Booking.HoldsSlot),
		OfferedSlots:   offeredSlots,
		ByStatus:       catalog.GroupCount(items, func(b Booking) string { return b.Status }),
		ByFacility:     catalog.GroupCount(items, func(b Booking) string { return b.Facility }),
	}

	decided := s.Approved + s.Completed + s.Rejected
	s.ApprovalRate = catalog.Rate(float64(s.Approved+s.Completed), float64(decided))
	s.OccupancyRate = catalog.Rate(float64(min(s.BookedSlots, offeredSlots)), float64(offeredSlots))
	return s
}

// DatesByFacility maps each booked facility name to its distinct booked
// dates, ascending.
func DatesByFacility(items []Booking) map[string][]string {
	byFacility := make(map[string][]Booking)
	for _, b := range items {
		byFacility[b.Facility] = append(byFacility[b.Facility], b)
	}
	out := make(map[string][]string, len(byFacility))
	for name, group := range byFacility {
		out[name] = catalog.DistinctDates(group)
	}
	return out
}
