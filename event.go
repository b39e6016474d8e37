package usacr

import (
	"strings"
	"time"
)

// Event represents one cycling event from a state/year listing.
type Event struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Permit   string    `json:"permit"`
	Date     time.Time `json:"date,omitzero"`
	Location string    `json:"location,omitempty"`
	State    string    `json:"state"`
	Year     int       `json:"year"`
	URL      string    `json:"url,omitempty"`
}

// Validate returns an error if the event contains invalid fields.
func (e *Event) Validate() error {
	if e.ID == "" {
		return Errorf(EINVALID, "event ID required")
	}
	if e.Name == "" {
		return Errorf(EINVALID, "event name required")
	}
	return nil
}

// ValidateState checks that s is a two-letter US state code.
func ValidateState(s string) error {
	if len(s) != 2 {
		return Errorf(EINVALID, "state must be a two-letter code")
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return Errorf(EINVALID, "state must be a two-letter code")
		}
	}
	return nil
}

// Discipline represents one discipline tab on a permit page. InfoID and
// Label together address the AJAX fragment that lists the discipline's
// categories.
type Discipline struct {
	InfoID string `json:"infoId"`
	Name   string `json:"name"`
	Label  string `json:"label"`
}

// EventDetails represents the detailed information on a permit page.
type EventDetails struct {
	Permit      string       `json:"permit"`
	Name        string       `json:"name"`
	StartDate   time.Time    `json:"startDate,omitzero"`
	EndDate     time.Time    `json:"endDate,omitzero"`
	Location    string       `json:"location,omitempty"`
	Promoter    string       `json:"promoter,omitempty"`
	Website     string       `json:"website,omitempty"`
	Disciplines []Discipline `json:"disciplines,omitempty"`
}

// Validate returns an error if the event details contain invalid fields.
func (d *EventDetails) Validate() error {
	if d.Permit == "" {
		return Errorf(EINVALID, "event details permit required")
	}
	if d.Name == "" {
		return Errorf(EINVALID, "event details name required")
	}
	return nil
}

// PermitYear returns the year encoded in a permit number ("2020-26" -> 2020),
// or 0 if the permit does not carry one.
func PermitYear(permit string) int {
	i := strings.IndexByte(permit, '-')
	if i <= 0 {
		return 0
	}
	year := 0
	for _, r := range permit[:i] {
		if r < '0' || r > '9' {
			return 0
		}
		year = year*10 + int(r-'0')
	}
	if year < 1900 || year > 9999 {
		return 0
	}
	return year
}

// EventListParser parses a state/year listing page into events.
type EventListParser interface {
	// ParseEvents extracts the events listed on the page. Entries missing an
	// ID or a name are skipped; a page without the listing structure fails
	// with EUNRECOGNIZED.
	ParseEvents(html string, state string, year int) ([]Event, error)
}

// EventDetailsParser parses a permit page.
type EventDetailsParser interface {
	ParseDetails(html string, permit string) (*EventDetails, error)
	ParseDisciplines(html string) ([]Discipline, error)
}
