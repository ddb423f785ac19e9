package view

import "event-portal/internal/domain"

// View names one screen of the portal.
type View string

const (
	Home           View = "home"
	Events         View = "events"
	EventDetails   View = "eventDetails"
	Register       View = "register"
	Dashboard      View = "dashboard"
	AdminLogin     View = "adminLogin"
	AdminDashboard View = "adminDashboard"
)

var views = map[View]struct{}{
	Home: {}, Events: {}, EventDetails: {}, Register: {},
	Dashboard: {}, AdminLogin: {}, AdminDashboard: {},
}

// ParseView reports whether name is a known view.
func ParseView(name string) (View, bool) {
	v := View(name)
	_, ok := views[v]
	return v, ok
}

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// EventItem is one card of the events list.
type EventItem struct {
	ID    int
	Title string
	Meta  string
	Venue string
}

type Highlight struct {
	Title string
	Start string
}

// Option is one entry of the registration form's event select.
type Option struct {
	ID    int
	Title string
}

// Details is the event details view-model with display defaults applied.
type Details struct {
	ID           int
	Title        string
	Meta         string
	Description  string
	Rules        string
	Coordinators string
	Prizes       string
	Fee          string
}

// RegistrationForm holds the raw registration form fields.
type RegistrationForm struct {
	EventID     string
	StudentName string
	Roll        string
	YearBranch  string
	Tickets     string
	Email       string
	Phone       string
}

// Lookup is the student dashboard result. Searched is false until a lookup
// has completed.
type Lookup struct {
	Email    string
	Results  []domain.Registration
	Searched bool
}

// AdminPanel is the admin dashboard content.
type AdminPanel struct {
	Registrations []domain.Registration
	Loaded        bool
	Failed        bool
}

// State is everything a controller renders. Slices are replaced, never
// mutated in place, so a copy of State is safe to read without the lock.
type State struct {
	View       View
	Theme      Theme
	Events     []EventItem
	Highlights []Highlight
	Options    []Option
	Details    *Details
	Form       RegistrationForm
	Lookup     Lookup
	Admin      AdminPanel
	Toast      string
}

// Selected reports whether id is the form's chosen event.
func (s State) Selected(id int) bool {
	return s.Form.EventID != "" && s.Form.EventID == itoa(id)
}
