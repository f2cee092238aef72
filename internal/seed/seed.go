// Package seed holds the reference data and the initial catalog used before
// any event has been created by staff.
package seed

import (
	"time"

	"campus-event-catalog/internal/models"
)

func Venues() []models.Venue {
	return []models.Venue{
		{Name: "KS Auditorium", Location: "C Block", Capacity: 500},
		{Name: "Seminar Hall", Location: "B Block", Capacity: 200},
		{Name: "APJ Auditorium", Location: "D Block", Capacity: 350},
		{Name: "PEB Seminar Hall", Location: "PEB Block", Capacity: 150},
	}
}

// VenueByName returns a copy of the canonical venue with that name.
func VenueByName(name string) (models.Venue, bool) {
	for _, v := range Venues() {
		if v.Name == name {
			return v, true
		}
	}
	return models.Venue{}, false
}

func Themes() []models.Theme {
	return []models.Theme{
		{
			ID:          models.ThemeInspirational,
			Name:        "Inspirational Talk",
			Description: "Inspiring talks from industry leaders and motivational speakers to guide students on their career path.",
			Color:       "text-pink-600",
			BgClass:     "theme-card-1",
			Icon:        "bookmark",
		},
		{
			ID:          models.ThemeSkills,
			Name:        "Skills and Euphoria",
			Description: "Workshops and sessions focused on developing technical and soft skills essential for career growth.",
			Color:       "text-blue-600",
			BgClass:     "theme-card-2",
			Icon:        "graduation-cap",
		},
		{
			ID:          models.ThemeTED,
			Name:        "TED Videos",
			Description: "Curated TED talks followed by discussions to broaden perspectives and inspire innovation.",
			Color:       "text-orange-600",
			BgClass:     "theme-card-3",
			Icon:        "play",
		},
		{
			ID:          models.ThemeEntrepreneur,
			Name:        "Entrepreneur in You",
			Description: "Programs designed to nurture entrepreneurial mindset and provide insights into starting ventures.",
			Color:       "text-purple-600",
			BgClass:     "theme-card-4",
			Icon:        "award",
		},
		{
			ID:          models.ThemeDifferentiators,
			Name:        "VNR Differentiators",
			Description: "Unique programs and initiatives that set VNR VJIET graduates apart in the professional world.",
			Color:       "text-green-600",
			BgClass:     "theme-card-5",
			Icon:        "star",
		},
	}
}

func ThemeByID(id models.ThemeID) (models.Theme, bool) {
	for _, t := range Themes() {
		if t.ID == id {
			return t, true
		}
	}
	return models.Theme{}, false
}

func Sections() []string {
	return []string{"CSE-A", "CSE-B", "CSE-C", "CSE-D", "CSBS"}
}

func IsSection(code string) bool {
	for _, s := range Sections() {
		if s == code {
			return true
		}
	}
	return false
}

var eventImages = []string{
	"https://images.unsplash.com/photo-1488590528505-98d2b5aba04b",
	"https://images.unsplash.com/photo-1461749280684-dccba630e2f6",
	"https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d",
	"https://images.unsplash.com/photo-1518770660439-4636190af475",
	"https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5",
	"https://images.unsplash.com/photo-1581091226825-a6a2a5aee158",
}

// Events builds the seed catalog relative to today. The same today always
// yields the same catalog.
func Events(today time.Time) []models.Event {
	venues := Venues()
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format(models.DateLayout)
	}
	status := func(offset int) models.Status {
		switch {
		case offset > 0:
			return models.StatusUpcoming
		case offset == 0:
			return models.StatusOngoing
		default:
			return models.StatusCompleted
		}
	}

	type row struct {
		id, title    string
		theme        models.ThemeID
		description  string
		venue        int
		offset       int
		start, end   string
		speaker      string
		sections     []string
		seats        int
		open         bool
		gadgets      string
		coordinators []string
	}

	rows := []row{
		{
			id: "1", title: "Leadership in Technology", theme: models.ThemeInspirational,
			description: "A talk by industry leaders on how to develop leadership skills in the technology sector.",
			venue: 0, offset: 15, start: "10:30", end: "12:30",
			speaker:  "Dr. Rajesh Kumar, CTO of Tech Innovations",
			sections: []string{"CSE-A", "CSE-B", "CSE-C", "CSE-D", "CSBS"},
			seats: 450, open: true, gadgets: "Laptop (optional)",
			coordinators: []string{"Prof. Anand Sharma", "Prof. Lakshmi Devi"},
		},
		{
			id: "2", title: "Web Development Bootcamp", theme: models.ThemeSkills,
			description: "Intensive hands-on workshop on modern web development technologies and frameworks.",
			venue: 1, offset: 7, start: "10:00", end: "13:00",
			speaker:  "Ms. Priya Patel, Senior Developer at WebTech Solutions",
			sections: []string{"CSE-A", "CSE-B"},
			seats: 150, open: true, gadgets: "Laptop with Node.js installed",
			coordinators: []string{"Prof. Vivek Reddy", "Prof. Suman Rao"},
		},
		{
			id: "3", title: "AI Revolution - TED Talk Screening", theme: models.ThemeTED,
			description: "Screening of selected TED talks on AI advancements followed by panel discussion.",
			venue: 2, offset: 3, start: "14:00", end: "16:30",
			speaker:  "Curated by Prof. Srinivas Rao",
			sections: []string{"CSE-C", "CSE-D", "CSBS"},
			seats: 300, open: true,
			coordinators: []string{"Prof. Kiran Kumar", "Prof. Divya Reddy"},
		},
		{
			id: "4", title: "Startup Success Stories", theme: models.ThemeEntrepreneur,
			description: "Successful entrepreneurs share their journey, challenges, and insights.",
			venue: 0, offset: 10, start: "11:00", end: "13:00",
			speaker:  "Mr. Vikram Joshi, Founder of EduTech Innovations",
			sections: []string{"CSE-A", "CSE-B", "CSE-C", "CSE-D", "CSBS"},
			seats: 450, open: true,
			coordinators: []string{"Prof. Mahesh Kumar", "Prof. Sreelatha"},
		},
		{
			id: "5", title: "Industry-Ready Projects Workshop", theme: models.ThemeDifferentiators,
			description: "Hands-on session on developing industry-standard projects to enhance your portfolio.",
			venue: 3, offset: 5, start: "10:00", end: "12:00",
			speaker:  "Dr. Anil Kumar, Industry Consultant",
			sections: []string{"CSE-D", "CSBS"},
			seats: 120, open: true, gadgets: "Laptop with required software installed",
			coordinators: []string{"Prof. Rajendra Prasad", "Prof. Kavitha"},
		},
		{
			id: "6", title: "Growth Mindset Development", theme: models.ThemeInspirational,
			description: "Interactive session on developing a growth mindset for personal and professional success.",
			venue: 1, offset: -2, start: "11:30", end: "13:30",
			speaker:  "Dr. Meena Sharma, Psychology Expert",
			sections: []string{"CSE-A", "CSE-B", "CSE-C"},
			seats: 180, open: false,
			coordinators: []string{"Prof. Suresh Babu", "Prof. Rama Devi"},
		},
	}

	events := make([]models.Event, 0, len(rows))
	for i, r := range rows {
		events = append(events, models.Event{
			ID:                 r.id,
			Title:              r.title,
			Theme:              r.theme,
			Description:        r.description,
			Venue:              venues[r.venue],
			Date:               day(r.offset),
			StartTime:          r.start,
			EndTime:            r.end,
			Speaker:            r.speaker,
			AllowedSections:    r.sections,
			MaxSeats:           r.seats,
			RegistrationOpen:   r.open,
			ImageURL:           eventImages[i%len(eventImages)],
			GadgetRequirements: r.gadgets,
			Coordinators:       r.coordinators,
			Status:             status(r.offset),
			DaysLeft:           r.offset,
		})
	}
	return events
}

func ThemeStatistics() []models.ThemeStatistic {
	return []models.ThemeStatistic{
		{Year: "2017-18", Theme1: 4, Theme2: 5, Theme3: 5, Theme4: 3, Theme5: 5, Total: 22},
		{Year: "2018-19", Theme1: 2, Theme2: 1, Theme3: 1, Theme4: 1, Theme5: 1, Total: 6},
		{Year: "2019-20", Theme1: 4, Theme2: 3, Theme3: 1, Theme4: 0, Theme5: 0, Total: 8},
		{Year: "2020-21", Theme1: 4, Theme2: 2, Theme3: 4, Theme4: 3, Theme5: 1, Total: 14},
		{Year: "2021-22", Theme1: 5, Theme2: 5, Theme3: 3, Theme4: 4, Theme5: 4, Total: 21},
		{Year: "2022-23", Theme1: 2, Theme2: 1, Theme3: 2, Theme4: 1, Theme5: 4, Total: 10},
	}
}

// Users returns the known accounts for the institution domain.
func Users(domain string) []models.User {
	return []models.User{
		{ID: "1", Name: "John Doe", Email: "john@" + domain, Role: models.RoleStudent, Section: "CSE-A", Department: "Computer Science"},
		{ID: "2", Name: "Jane Smith", Email: "jane@" + domain, Role: models.RoleFaculty, Department: "Computer Science"},
		{ID: "3", Name: "Admin User", Email: "admin@" + domain, Role: models.RoleAdmin, Department: "Administration"},
	}
}
