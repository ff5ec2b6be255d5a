package facilities

import (
	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
)

const Kind = "facilities"

const (
	StatusActive   = "active"
	StatusPending  = "pending"
	StatusInactive = "inactive"
)

// Statuses lists every status a facility may be moved to.
var Statuses = []string{StatusActive, StatusPending, StatusInactive}

// Facility is a bookable venue listed in the facilities browser.
type Facility struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name" validate:"required,max=120"`
	Description  string                 `json:"description" validate:"max=1000"`
	Type         string                 `json:"type" validate:"required,max=50"` // Indoor, Outdoor, ...
	Sports       []string               `json:"sports,omitempty" validate:"max=20"`
	City         string                 `json:"city" validate:"required,max=80"`
	Address      string                 `json:"address" validate:"max=255"`
	Price        string                 `json:"price" validate:"required,pricetext,max=40"` // "$50/hour"
	Rating       float64                `json:"rating" validate:"gte=0,lte=5"`
	Reviews      int                    `json:"reviews" validate:"gte=0"`
	Capacity     int                    `json:"capacity" validate:"gte=0"`
	Status       string                 `json:"status" validate:"omitempty,oneof=active pending inactive"`
	Features     map[string]bool        `json:"features,omitempty"`
	Availability []catalog.Availability `json:"availability,omitempty" validate:"dive"`
}

func (f Facility) EntityID() string       { return f.ID }
func (f Facility) EntityCategory() string { return f.Type }
func (f Facility) EntityLocation() string { return f.City }
func (f Facility) EntityStatus() string   { return f.Status }

func (f Facility) SearchableText() []string {
	return []string{f.Name, f.Description, f.City, f.Address}
}

func (f Facility) Schedule() []catalog.Availability { return f.Availability }

func (f Facility) WithID(id string) Facility {
	f.ID = id
	return f
}

func (f Facility) WithStatus(status string) Facility {
	f.Status = status
	return f
}
