package catalog

type testItem struct {
	id, name, desc, category, city, status, price string
	rating                                        float64
	slots                                         []Availability
}

func (t testItem) EntityID() string       { return t.id }
func (t testItem) EntityCategory() string { return t.category }
func (t testItem) EntityLocation() string { return t.city }
func (t testItem) EntityStatus() string   { return t.status }
func (t testItem) SearchableText() []string {
	return []string{t.name, t.desc, t.city}
}
func (t testItem) Schedule() []Availability { return t.slots }

// plainItem has no schedule at all.
type plainItem struct{ id, name string }

func (p plainItem) EntityID() string         { return p.id }
func (p plainItem) EntityCategory() string   { return "" }
func (p plainItem) EntityLocation() string   { return "" }
func (p plainItem) EntityStatus() string     { return "" }
func (p plainItem) SearchableText() []string { return []string{p.name} }

func sampleItems() []testItem {
	return []testItem{
		{
			id: "f1", name: "Arena Sports Complex", desc: "Premium indoor courts", category: "Indoor",
			city: "Lahore", status: "active", price: "$50/hour", rating: 4.5,
			slots: []Availability{
				{Date: "2024-03-01", TimeSlots: []string{"10:00", "14:00"}},
				{Date: "2024-03-02", TimeSlots: []string{"09:00"}},
			},
		},
		{
			id: "f2", name: "Green Field", desc: "Open air football ground", category: "Outdoor",
			city: "Karachi", status: "active", price: "$80/hour", rating: 4.1,
			slots: []Availability{
				{Date: "2024-03-01", TimeSlots: []string{"16:00"}},
			},
		},
		{
			id: "f3", name: "Smash Hall", desc: "Badminton and squash", category: "Indoor",
			city: "Karachi", status: "pending", price: "$30/hour", rating: 3.9,
		},
	}
}

func ids[T Entity](items []T) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.EntityID())
	}
	return out
}
