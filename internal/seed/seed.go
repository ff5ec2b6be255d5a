// Package seed holds the demo catalog the browse screens start from. The
// same data seeds the in-memory sources and an empty Postgres table.
package seed

import (
	"github.com/Abdulllah321/sports-landing-sub001/internal/catalog"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/academies"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/ads"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/bookings"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/facilities"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/tournaments"
	"github.com/Abdulllah321/sports-landing-sub001/internal/domain/videos"
)

func day(date string, slots ...string) catalog.Availability {
	return catalog.Availability{Date: date, TimeSlots: slots}
}

func Facilities() []facilities.Facility {
	return []facilities.Facility{
		{
			ID: "fac-1", Name: "Elite Sports Arena", Type: "Indoor", City: "Lahore",
			Description: "Climate-controlled futsal and basketball courts with pro lighting",
			Address:     "12 Main Boulevard, Gulberg", Sports: []string{"Futsal", "Basketball"},
			Price: "$50/hour", Rating: 4.8, Reviews: 124, Capacity: 40, Status: facilities.StatusActive,
			Features: map[string]bool{"parking": true, "lockers": true, "cafe": true, "floodlights": false},
			Availability: []catalog.Availability{
				day("2024-03-01", "10:00", "14:00", "18:00"),
				day("2024-03-02", "09:00", "16:00"),
			},
		},
		{
			ID: "fac-2", Name: "Green Valley Football Ground", Type: "Outdoor", City: "Karachi",
			Description: "Full-size grass pitch for 11-a-side matches",
			Address:     "Plot 7, Clifton Block 5", Sports: []string{"Football"},
			Price: "$80/hour", Rating: 4.5, Reviews: 89, Capacity: 22, Status: facilities.StatusActive,
			Features: map[string]bool{"parking": true, "floodlights": true},
			Availability: []catalog.Availability{
				day("2024-03-01", "16:00", "20:00"),
				day("2024-03-03", "08:00"),
			},
		},
		{
			ID: "fac-3", Name: "Smash Badminton Hall", Type: "Indoor", City: "Karachi",
			Description: "Six wooden badminton courts and a squash court",
			Address:     "Shahrah-e-Faisal", Sports: []string{"Badminton", "Squash"},
			Price: "$30/hour", Rating: 4.2, Reviews: 56, Capacity: 24, Status: facilities.StatusActive,
			Features: map[string]bool{"lockers": true, "showers": true},
			Availability: []catalog.Availability{
				day("2024-03-02", "07:00", "09:00", "19:00"),
			},
		},
		{
			ID: "fac-4", Name: "Capital Tennis Club", Type: "Outdoor", City: "Islamabad",
			Description: "Clay and hard courts at the foot of the Margalla hills",
			Address:     "F-7 Markaz", Sports: []string{"Tennis"},
			Price: "$45/hour", Rating: 4.6, Reviews: 71, Capacity: 16, Status: facilities.StatusActive,
			Features: map[string]bool{"parking": true, "coaching": true, "floodlights": true},
			Availability: []catalog.Availability{
				day("2024-03-01", "07:00", "17:00"),
				day("2024-03-04", "07:00"),
			},
		},
		{
			ID: "fac-5", Name: "AquaFit Swimming Complex", Type: "Aquatic", City: "Lahore",
			Description: "Olympic-size heated pool with separate kids pool",
			Address:     "DHA Phase 5", Sports: []string{"Swimming"},
			Price: "$25/session", Rating: 4.4, Reviews: 102, Capacity: 60, Status: facilities.StatusPending,
			Features: map[string]bool{"lockers": true, "showers": true, "cafe": true},
		},
		{
			ID: "fac-6", Name: "Community Cricket Nets", Type: "Outdoor", City: "Islamabad",
			Description: "Practice nets with bowling machines",
			Address:     "Sector G-9", Sports: []string{"Cricket"},
			Price: "Contact for pricing", Rating: 3.9, Reviews: 18, Capacity: 12, Status: facilities.StatusInactive,
			Features: map[string]bool{"parking": false, "coaching": true},
			Availability: []catalog.Availability{
				day("2024-03-03", "15:00", "17:00"),
			},
		},
	}
}

func Academies() []academies.Academy {
	return []academies.Academy{
		{
			ID: "acd-1", Name: "Champions Football Academy", Sport: "Football", City: "Karachi",
			Description: "UEFA-licensed coaches and weekly match play",
			AgeGroup:    "8-16", Level: "Beginner", Fee: "$120/month", Rating: 4.7,
			Students: 150, Coaches: 8, Status: academies.StatusOpen,
			Classes: []catalog.Availability{
				day("2024-03-01", "16:00", "18:00"),
				day("2024-03-03", "09:00"),
			},
		},
		{
			ID: "acd-2", Name: "Cover Drive Cricket School", Sport: "Cricket", City: "Lahore",
			Description: "Batting, bowling and fielding programmes with video analysis",
			AgeGroup:    "10-19", Level: "Intermediate", Fee: "$150/month", Rating: 4.9,
			Students: 210, Coaches: 12, Status: academies.StatusFull,
			Classes: []catalog.Availability{
				day("2024-03-02", "07:00", "15:00"),
			},
		},
		{
			ID: "acd-3", Name: "Shuttle Stars", Sport: "Badminton", City: "Karachi",
			Description: "Footwork and technique for juniors",
			AgeGroup:    "7-14", Level: "Beginner", Fee: "$80/month", Rating: 4.3,
			Students: 64, Coaches: 4, Status: academies.StatusOpen,
			Classes: []catalog.Availability{
				day("2024-03-01", "17:00"),
				day("2024-03-02", "17:00"),
			},
		},
		{
			ID: "acd-4", Name: "Ace Tennis Academy", Sport: "Tennis", City: "Islamabad",
			Description: "High-performance track for ranked players",
			AgeGroup:    "12-21", Level: "Advanced", Fee: "$200/month", Rating: 4.6,
			Students: 45, Coaches: 5, Status: academies.StatusPending,
		},
		{
			ID: "acd-5", Name: "Hoops Basketball Camp", Sport: "Basketball", City: "Lahore",
			Description: "Weekend camp focused on fundamentals",
			AgeGroup:    "9-17", Level: "Beginner", Fee: "Free trial", Rating: 4.0,
			Students: 38, Coaches: 3, Status: academies.StatusOpen,
			Classes: []catalog.Availability{
				day("2024-03-02", "10:00"),
			},
		},
	}
}

func Bookings() []bookings.Booking {
	return []bookings.Booking{
		{ID: "bk-1", Facility: "Elite Sports Arena", CustomerName: "Ahmed Khan", CustomerPhone: "03001234567", Sport: "Futsal", City: "Lahore", Date: "2024-03-01", TimeSlot: "10:00", Hours: 1, Amount: 50, Status: bookings.StatusApproved},
		{ID: "bk-2", Facility: "Elite Sports Arena", CustomerName: "Sara Ali", Sport: "Basketball", City: "Lahore", Date: "2024-03-01", TimeSlot: "14:00", Hours: 2, Amount: 100, Status: bookings.StatusPending},
		{ID: "bk-3", Facility: "Green Valley Football Ground", CustomerName: "Usman Tariq", Sport: "Football", City: "Karachi", Date: "2024-03-01", TimeSlot: "16:00", Hours: 2, Amount: 160, Status: bookings.StatusCompleted},
		{ID: "bk-4", Facility: "Smash Badminton Hall", CustomerName: "Fatima Noor", Sport: "Badminton", City: "Karachi", Date: "2024-03-02", TimeSlot: "07:00", Hours: 1, Amount: 30, Status: bookings.StatusRejected, Note: "Court under maintenance"},
		{ID: "bk-5", Facility: "Smash Badminton Hall", CustomerName: "Bilal Sheikh", Sport: "Squash", City: "Karachi", Date: "2024-03-02", TimeSlot: "19:00", Hours: 1, Amount: 30, Status: bookings.StatusApproved},
		{ID: "bk-6", Facility: "Capital Tennis Club", CustomerName: "Hina Raza", Sport: "Tennis", City: "Islamabad", Date: "2024-03-01", TimeSlot: "07:00", Hours: 1, Amount: 45, Status: bookings.StatusCancelled},
		{ID: "bk-7", Facility: "Elite Sports Arena", CustomerName: "Omar Farooq", Sport: "Futsal", City: "Lahore", Date: "2024-03-02", TimeSlot: "16:00", Hours: 1, Amount: 50, Status: bookings.StatusPending},
		{ID: "bk-8", Facility: "Green Valley Football Ground", CustomerName: "Zainab Malik", Sport: "Football", City: "Karachi", Date: "2024-03-03", TimeSlot: "08:00", Hours: 2, Amount: 160, Status: bookings.StatusApproved},
	}
}

func Ads() []ads.Ad {
	return []ads.Ad{
		{ID: "ad-1", Title: "Summer Football Camp", Description: "Register now for the summer intake", Advertiser: "Champions Football Academy", Placement: "Homepage Banner", City: "Karachi", Budget: 1000, Spent: 450, Impressions: 25000, Clicks: 750, StartDate: "2024-03-01", EndDate: "2024-04-30", Status: ads.StatusActive},
		{ID: "ad-2", Title: "50% Off Court Rentals", Description: "Weekday mornings at half price", Advertiser: "Elite Sports Arena", Placement: "Sidebar", City: "Lahore", Budget: 500, Spent: 500, Impressions: 18000, Clicks: 320, StartDate: "2024-01-01", EndDate: "2024-02-28", Status: ads.StatusExpired},
		{ID: "ad-3", Title: "New Running Shoes", Description: "Lightweight trainers for every surface", Advertiser: "SportZone Store", Placement: "Homepage Banner", City: "Lahore", Budget: 2000, Spent: 300, Impressions: 9000, Clicks: 410, StartDate: "2024-03-05", EndDate: "2024-05-05", Status: ads.StatusActive},
		{ID: "ad-4", Title: "Tennis Coaching Clinic", Description: "Two-day clinic with national coaches", Advertiser: "Ace Tennis Academy", Placement: "Search Results", City: "Islamabad", Budget: 750, Spent: 0, StartDate: "2024-04-01", EndDate: "2024-04-15", Status: ads.StatusPending},
		{ID: "ad-5", Title: "Protein Bars", Description: "Fuel for match day", Advertiser: "FitFuel", Placement: "Sidebar", Budget: 300, Spent: 120, Impressions: 4000, Clicks: 60, StartDate: "2024-02-15", EndDate: "2024-03-15", Status: ads.StatusPaused},
	}
}

func Tournaments() []tournaments.Tournament {
	return []tournaments.Tournament{
		{
			ID: "trn-1", Name: "City Futsal Championship", Sport: "Futsal", City: "Lahore",
			Description: "Knockout futsal cup for club sides", Venue: "Elite Sports Arena",
			Format: "Knockout", EntryFee: "$100/team", PrizePool: 5000, MaxTeams: 16, RegisteredTeams: 12,
			Status: tournaments.StatusUpcoming,
			Matches: []catalog.Availability{
				day("2024-03-09", "10:00", "14:00"),
				day("2024-03-10", "16:00"),
			},
		},
		{
			ID: "trn-2", Name: "Karachi Premier League", Sport: "Football", City: "Karachi",
			Description: "Round-robin league across eight weekends", Venue: "Green Valley Football Ground",
			Format: "League", EntryFee: "$250/team", PrizePool: 12000, MaxTeams: 10, RegisteredTeams: 10,
			Status: tournaments.StatusOngoing,
			Matches: []catalog.Availability{
				day("2024-03-02", "16:00", "20:00"),
			},
		},
		{
			ID: "trn-3", Name: "Junior Badminton Open", Sport: "Badminton", City: "Karachi",
			Description: "Under-16 singles and doubles", Venue: "Smash Badminton Hall",
			Format: "Knockout", EntryFee: "$20/player", PrizePool: 800, MaxTeams: 32, RegisteredTeams: 18,
			Status: tournaments.StatusUpcoming,
			Matches: []catalog.Availability{
				day("2024-03-16", "09:00"),
			},
		},
		{
			ID: "trn-4", Name: "Winter Tennis Classic", Sport: "Tennis", City: "Islamabad",
			Description: "Open singles on clay", Venue: "Capital Tennis Club",
			Format: "Knockout", EntryFee: "$40/player", PrizePool: 2500, MaxTeams: 24, RegisteredTeams: 24,
			Status: tournaments.StatusCompleted,
		},
	}
}

func Videos() []videos.Video {
	return []videos.Video{
		{ID: "vid-1", Title: "Top 10 Futsal Goals", Description: "Best finishes from the city championship", Sport: "Futsal", Uploader: "Ahmed Khan", URL: "https://videos.example.com/vid-1.mp4", Duration: 312, Views: 15400, Likes: 1200, UploadedAt: "2024-02-20", Status: videos.StatusPublished},
		{ID: "vid-2", Title: "Cover Drive Masterclass", Description: "Batting drills with head coach", Sport: "Cricket", Uploader: "Cover Drive Cricket School", URL: "https://videos.example.com/vid-2.mp4", Duration: 845, Views: 9800, Likes: 640, UploadedAt: "2024-02-25", Status: videos.StatusPublished},
		{ID: "vid-3", Title: "Smash Technique Breakdown", Description: "Slow-motion badminton smash analysis", Sport: "Badminton", Uploader: "Fatima Noor", URL: "https://videos.example.com/vid-3.mp4", Duration: 198, Views: 0, Likes: 0, UploadedAt: "2024-03-01", Status: videos.StatusProcessing},
		{ID: "vid-4", Title: "Match Highlights: KPL Week 3", Description: "Goals and saves from week three", Sport: "Football", Uploader: "Usman Tariq", URL: "https://videos.example.com/vid-4.mp4", Duration: 420, Views: 22100, Likes: 1875, UploadedAt: "2024-03-02", Status: videos.StatusPublished},
		{ID: "vid-5", Title: "Unlicensed Broadcast", Description: "Removed after review", Sport: "Football", Uploader: "anon", URL: "https://videos.example.com/vid-5.mp4", Duration: 3600, Views: 50, Likes: 1, UploadedAt: "2024-03-02", Status: videos.StatusRejected},
	}
}
