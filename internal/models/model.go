package models

type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"` // student|faculty|admin
	Section    string `json:"section,omitempty"`
	Department string `json:"department,omitempty"`
}

// IsStaff reports whether the user may mutate the catalog. It is derived
// from Role on every call and never stored.
func (u *User) IsStaff() bool {
	if u == nil {
		return false
	}
	return u.Role == RoleFaculty || u.Role == RoleAdmin
}

type ThemeID string

const (
	ThemeInspirational   ThemeID = "inspirational"
	ThemeSkills          ThemeID = "skills"
	ThemeTED             ThemeID = "ted"
	ThemeEntrepreneur    ThemeID = "entrepreneur"
	ThemeDifferentiators ThemeID = "differentiators"
)

// ThemeIDs is the closed set of theme identifiers, in display order.
var ThemeIDs = []ThemeID{
	ThemeInspirational,
	ThemeSkills,
	ThemeTED,
	ThemeEntrepreneur,
	ThemeDifferentiators,
}

func (t ThemeID) Valid() bool {
	for _, id := range ThemeIDs {
		if id == t {
			return true
		}
	}
	return false
}

type Theme struct {
	ID          ThemeID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	BgClass     string  `json:"bgClass"`
	Icon        string  `json:"icon"`
}

type Venue struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// DateLayout is the canonical form of Event.Date.
const DateLayout = "2006-01-02"

// TimeLayout is the form of Event.StartTime and Event.EndTime.
const TimeLayout = "15:04"

type Event struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Theme              ThemeID  `json:"theme"`
	Description        string   `json:"description"`
	Venue              Venue    `json:"venue"`
	Date               string   `json:"date"`
	StartTime          string   `json:"startTime"`
	EndTime            string   `json:"endTime"`
	Speaker            string   `json:"speaker"`
	AllowedSections    []string `json:"allowedSections"`
	MaxSeats           int      `json:"maxSeats"`
	RegistrationOpen   bool     `json:"registrationOpen"`
	ImageURL           string   `json:"imageUrl"`
	GadgetRequirements string   `json:"gadgetRequirements,omitempty"`
	Coordinators       []string `json:"coordinators"`
	RegisteredStudents []string `json:"registeredStudents,omitempty"`

	// Derived from Date on read.
	Status   Status `json:"status"`
	DaysLeft int    `json:"daysLeft"`
}

type ThemeStatistic struct {
	Year   string `json:"year"`
	Theme1 int    `json:"theme1"`
	Theme2 int    `json:"theme2"`
	Theme3 int    `json:"theme3"`
	Theme4 int    `json:"theme4"`
	Theme5 int    `json:"theme5"`
	Total  int    `json:"total"`
}

// ThemeCount annotates a theme with the number of catalog events under it.
type ThemeCount struct {
	Theme
	Count int `json:"count"`
}
