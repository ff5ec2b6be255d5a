package academies

import (
	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
)

const Kind = "academies"

const (
	StatusOpen    = "open"
	StatusFull    = "full"
	StatusPending = "pending"
	StatusClosed  = "closed"
)

var Statuses = []string{StatusOpen, StatusFull, StatusPending, StatusClosed}

// Academy is a coaching programme. Its availability is the class timetable.
type Academy struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name" validate:"required,max=120"`
	Description string                 `json:"description" validate:"max=1000"`
	Sport       string                 `json:"sport" validate:"required,max=50"`
	City        string                 `json:"city" validate:"required,max=80"`
	AgeGroup    string                 `json:"age_group" validate:"max=30"`
	Level       string                 `json:"level" validate:"max=30"`
	Fee         string                 `json:"fee" validate:"required,pricetext,max=40"` // "$120/month"
	Rating      float64                `json:"rating" validate:"gte=0,lte=5"`
	Students    int                    `json:"students" validate:"gte=0"`
	Coaches     int                    `json:"coaches" validate:"gte=0"`
	Status      string                 `json:"status" validate:"omitempty,oneof=open full pending closed"`
	Classes     []catalog.Availability `json:"classes,omitempty" validate:"dive"`
}

func (a Academy) EntityID() string       { return a.ID }
func (a Academy) EntityCategory() string { return a.Sport }
func (a Academy) EntityLocation() string { return a.City }
func (a Academy) EntityStatus() string   { return a.Status }

func (a Academy) SearchableText() []string {
	return []string{a.Name, a.Description, a.City, a.Sport}
}

func (a Academy) Schedule() []catalog.Availability { return a.Classes }

func (a Academy) WithID(id string) Academy {
	a.ID = id
	return a
}

func (a Academy) WithStatus(status string) Academy {
	a.Status = status
	return a
}
