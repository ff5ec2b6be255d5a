package bookings_test

import (
	"testing"

	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/bookings"
	"github.com/Abdulllah321/sports-landing-sub001/internal/seed"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeSeedBookings(t *testing.T) {
	s := bookings.Summarize(seed.Bookings(), 10)

	assert.Equal(t, 8, s.Count)
	assert.Equal(t, 2, s.Pending)
	assert.Equal(t, 3, s.Approved)
	assert.Equal(t, 1, s.Rejected)
	assert.Equal(t, 1, s.Cancelled)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 400.0, s.Revenue)
	assert.Equal(t, 150.0, s.PendingRevenue)
	assert.InDelta(t, 78.13, s.AverageAmount, 0.001)
	assert.Equal(t, 80.0, s.ApprovalRate)
	assert.Equal(t, 6, s.BookedSlots)
	assert.Equal(t, 60.0, s.OccupancyRate)
	assert.Equal(t, 3, s.ByStatus.Get(bookings.StatusApproved))
	assert.Equal(t, catalog.Counts{
		{Key: "Elite Sports Arena", Count: 3},
		{Key: "Green Valley Football Ground", Count: 2},
		{Key: "Smash Badminton Hall", Count: 2},
		{Key: "Capital Tennis Club", Count: 1},
	}, s.ByFacility)
}

func TestOccupancyIsCapped(t *testing.T) {
	s := bookings.Summarize(seed.Bookings(), 3)
	assert.Equal(t, 100.0, s.OccupancyRate)

	s = bookings.Summarize(seed.Bookings(), 0)
	assert.Zero(t, s.OccupancyRate)
}

func TestSummarizeNoBookings(t *testing.T) {
	s := bookings.Summarize([]bookings.Booking{}, 0)

	assert.Zero(t, s.Count)
	assert.Zero(t, s.Revenue)
	assert.Zero(t, s.ApprovalRate)
	assert.Zero(t, s.AverageAmount)
}

func TestBookingScheduleDrivesDateAndSlotFilters(t *testing.T) {
	c := catalog.NewCriteria()
	c.SetDate("2024-03-02")
	c.SetTimeSlot("19:00")

	got := catalog.Filter(seed.Bookings(), c)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "bk-5", got[0].ID)
	}

	assert.Empty(t, bookings.Booking{}.Schedule())
}

func TestDatesByFacility(t *testing.T) {
	assert.Equal(t, map[string][]string{
		"Elite Sports Arena":           {"2024-03-01", "2024-03-02"},
		"Green Valley Football Ground": {"2024-03-01", "2024-03-03"},
		"Smash Badminton Hall":         {"2024-03-02"},
		"Capital Tennis Club":          {"2024-03-01"},
	}, bookings.DatesByFacility(seed.Bookings()))
	assert.Empty(t, bookings.DatesByFacility(nil))
}

func TestPendingQueue(t *testing.T) {
	c := catalog.NewCriteria()
	c.SetStatus(bookings.StatusPending)
	c.SetSearchText("elite")

	got := catalog.Filter(seed.Bookings(), c)
	assert.Len(t, got, 2)
	for _, b := range got {
		assert.True(t, b.HoldsSlot())
		assert.False(t, b.Earning())
	}
}
