package ads

const Kind = "ads"

const (
	StatusActive  = "active"
	StatusPaused  = "paused"
	StatusPending = "pending"
	StatusExpired = "expired"
)

var Statuses = []string{StatusActive, StatusPaused, StatusPending, StatusExpired}

// Ad is a campaign on the advertisement management screen. Placement is the
// slot it runs in (home banner, sidebar, ...) and City is its target market.
type Ad struct {
	ID          string  `json:"id"`
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=1000"`
	Advertiser  string  `json:"advertiser" validate:"required,max=120"`
	Placement   string  `json:"placement" validate:"required,max=50"`
	City        string  `json:"city" validate:"max=80"`
	ImageURL    string  `json:"image_url,omitempty" validate:"omitempty,url"`
	Link        string  `json:"link,omitempty" validate:"omitempty,url"`
	Budget      float64 `json:"budget" validate:"gte=0"`
	Spent       float64 `json:"spent" validate:"gte=0"`
	Impressions int     `json:"impressions" validate:"gte=0"`
	Clicks      int     `json:"clicks" validate:"gte=0"`
	StartDate   string  `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string  `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status      string  `json:"status" validate:"omitempty,oneof=active paused pending expired"`
}

func (a Ad) EntityID() string       { return a.ID }
func (a Ad) EntityCategory() string { return a.Placement }
func (a Ad) EntityLocation() string { return a.City }
func (a Ad) EntityStatus() string   { return a.Status }

func (a Ad) SearchableText() []string {
	return []string{a.Title, a.Description, a.Advertiser, a.City}
}

func (a Ad) WithID(id string) Ad {
	a.ID = id
	return a
}

func (a Ad) WithStatus(status string) Ad {
	a.Status = status
	return a
}
