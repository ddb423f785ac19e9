package domain

// Event is a catalog entry students can register for. Optional display fields
// are omitted from JSON when empty.
type Event struct {
	ID            int    `json:"id"                      yaml:"id"`
	Title         string `json:"title"                   yaml:"title"`
	Type          string `json:"type"                    yaml:"type"`
	StartDatetime string `json:"startDatetime,omitempty" yaml:"start_datetime"`
	Venue         string `json:"venue,omitempty"         yaml:"venue"`
	Description   string `json:"description,omitempty"   yaml:"description"`
	Rules         string `json:"rules,omitempty"         yaml:"rules"`
	Coordinators  string `json:"coordinators,omitempty"  yaml:"coordinators"`
	Prizes        string `json:"prizes,omitempty"        yaml:"prizes"`
	Fee           int    `json:"fee,omitempty"           yaml:"fee"`
}

// EventDraft is what the admin panel collects for a new event.
type EventDraft struct {
	Title         string
	Type          string
	StartDatetime string
	Venue         string
	Description   string
}
