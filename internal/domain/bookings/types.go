package bookings

import (
	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
)

const Kind = "bookings"

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

var Statuses = []string{StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted}

// Booking is one slot reservation shown on the booking management screen.
type Booking struct {
	ID            string  `json:"id"`
	Facility      string  `json:"facility" validate:"required,max=120"`
	CustomerName  string  `json:"customer_name" validate:"required,max=100"`
	CustomerPhone string  `json:"customer_phone,omitempty" validate:"omitempty,max=20"`
	Sport         string  `json:"sport" validate:"required,max=50"`
	City          string  `json:"city" validate:"required,max=80"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot      string  `json:"time_slot" validate:"required,datetime=15:04"`
	Hours         int     `json:"hours" validate:"gte=0,lte=24"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	Status        string  `json:"status" validate:"omitempty,oneof=pending approved rejected cancelled completed"`
	Note          string  `json:"note,omitempty" validate:"max=500"`
}

func (b Booking) EntityID() string       { return b.ID }
func (b Booking) EntityCategory() string { return b.Sport }
func (b Booking) EntityLocation() string { return b.City }
func (b Booking) EntityStatus() string   { return b.Status }

func (b Booking) SearchableText() []string {
	return []string{b.Facility, b.CustomerName, b.City, b.Note}
}

// Schedule exposes the booked slot so the date and slot filters apply.
func (b Booking) Schedule() []catalog.Availability {
	if b.Date == "" {
		return nil
	}
	var slots []string
	if b.TimeSlot != "" {
		slots = []string{b.TimeSlot}
	}
	return []catalog.Availability{{Date: b.Date, TimeSlots: slots}}
}

func (b Booking) WithID(id string) Booking {
	b.ID = id
	return b
}

func (b Booking) WithStatus(status string) Booking {
	b.Status = status
	return b
}

// Earning reports whether the booking counts toward revenue.
func (b Booking) Earning() bool {
	return b.Status == StatusApproved || b.Status == StatusCompleted
}

// HoldsSlot reports whether the booking occupies its slot.
func (b Booking) HoldsSlot() bool {
	return b.Status == StatusPending || b.Earning()
}
