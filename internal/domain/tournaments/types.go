package tournaments

import (
	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
)

const Kind = "tournaments"

const (
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var Statuses = []string{StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled}

type Tournament struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name" validate:"required,max=120"`
	Description     string                 `json:"description" validate:"max=1000"`
	Sport           string                 `json:"sport" validate:"required,max=50"`
	City            string                 `json:"city" validate:"required,max=80"`
	Venue           string                 `json:"venue" validate:"max=120"`
	Format          string                 `json:"format" validate:"max=50"`
	EntryFee        string                 `json:"entry_fee" validate:"required,pricetext,max=40"`
	PrizePool       float64                `json:"prize_pool" validate:"gte=0"`
	MaxTeams        int                    `json:"max_teams" validate:"gte=0"`
	RegisteredTeams int                    `json:"registered_teams" validate:"gte=0,ltefield=MaxTeams"`
	Status          string                 `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
	Matches         []catalog.Availability `json:"matches,omitempty" validate:"dive"`
}

func (t Tournament) EntityID() string       { return t.ID }
func (t Tournament) EntityCategory() string { return t.Sport }
func (t Tournament) EntityLocation() string { return t.City }
func (t Tournament) EntityStatus() string   { return t.Status }

func (t Tournament) SearchableText() []string {
	return []string{t.Name, t.Description, t.City, t.Venue}
}

func (t Tournament) Schedule() []catalog.Availability { return t.Matches }

func (t Tournament) WithID(id string) Tournament {
	t.ID = id
	return t
}

func (t Tournament) WithStatus(status string) Tournament {
	t.Status = status
	return t
}

// OpenSpots is how many more teams can register.
func (t Tournament) OpenSpots() int {
	if t.RegisteredTeams >= t.MaxTeams {
		return 0
	}
	return t.MaxTeams - t.RegisteredTeams
}
