package catalog

// Entity is the minimal shape every browsable record exposes to the engine.
// Concrete kinds (facilities, academies, bookings, ...) keep their own fields
// and answer these accessors from them.
type Entity interface {
	EntityID() string
	EntityCategory() string
	EntityLocation() string
	EntityStatus() string
	// SearchableText returns the free-text fields matched by the search box,
	// typically name, description and location.
	SearchableText() []string
}

// Availability is one date-keyed entry of an entity's schedule.
type Availability struct {
	Date      string   `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlots []string `json:"time_slots" validate:"dive,datetime=15:04"`
}

// Scheduled is implemented by entities that carry date-keyed availability.
// Entities that don't implement it never match a specific date.
type Scheduled interface {
	Schedule() []Availability
}

func scheduleOf(e Entity) ([]Availability, bool) {
	s, ok := e.(Scheduled)
	if !ok {
		return nil, false
	}
	return s.Schedule(), true
}
