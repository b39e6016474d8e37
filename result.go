package usacr

import (
	"strconv"
	"strings"
	"time"
)

// NonFinish enumerates the outcomes a rider can have in place of a numeric
// rank.
type NonFinish string

// Non-finish states as they appear on legacy results pages.
const (
	DNF NonFinish = "DNF" // did not finish
	DNS NonFinish = "DNS" // did not start
	DQ  NonFinish = "DQ"  // disqualified
)

// Placing is a rider's finishing position: either a positive numeric rank or
// one of the enumerated non-finish states, never both.
type Placing struct {
	Rank  int       // positive when the rider finished
	State NonFinish // non-empty when the rider did not finish
}

// Finished reports whether the placing denotes a numeric finish.
func (p Placing) Finished() bool {
	return p.State == ""
}

// String returns the placing as it would appear on a results page.
func (p Placing) String() string {
	if p.State != "" {
		return string(p.State)
	}
	return strconv.Itoa(p.Rank)
}

// ParsePlacing converts a raw placing cell value into a Placing.
// Accepts positive integers and the non-finish states DNF, DNS, DQ
// (case-insensitive, "DSQ" treated as DQ).
func ParsePlacing(s string) (Placing, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Placing{}, Errorf(EINVALID, "empty placing")
	}

	switch strings.ToUpper(v) {
	case "DNF":
		return Placing{State: DNF}, nil
	case "DNS":
		return Placing{State: DNS}, nil
	case "DQ", "DSQ":
		return Placing{State: DQ}, nil
	}

	// Some pages suffix the rank with a period ("1.").
	v = strings.TrimSuffix(v, ".")

	rank, err := strconv.Atoi(v)
	if err != nil || rank <= 0 {
		return Placing{}, Errorf(EINVALID, "invalid placing %q", s)
	}
	return Placing{Rank: rank}, nil
}

// Rider represents one rider's finish in one race.
// Time and Bib use their zero values to mean "not reported"; a legitimate
// finish time of zero does not occur.
type Rider struct {
	RaceID   string        `json:"raceId"`
	Place    Placing       `json:"place"`
	Name     string        `json:"name"`
	Bib      int           `json:"bib,omitempty"`
	Team     string        `json:"team,omitempty"`
	Category string        `json:"category,omitempty"`
	Time     time.Duration `json:"time,omitempty"`
}

// Validate returns an error if the rider violates record invariants:
// an empty name, a missing placing, or a time on a non-finish placing.
func (r *Rider) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return Errorf(EINVALID, "rider name required")
	}
	if r.Place.Rank <= 0 && r.Place.State == "" {
		return Errorf(EINVALID, "rider placing required")
	}
	if !r.Place.Finished() && r.Time != 0 {
		return Errorf(EINVALID, "non-finisher cannot carry a time")
	}
	return nil
}

// FailureReason classifies why a row could not be converted into a Rider.
type FailureReason string

// Failure reasons, from extractor level up to record construction.
const (
	FieldMissing   FailureReason = "field_missing"
	FieldMalformed FailureReason = "field_malformed"
	InvalidRecord  FailureReason = "invalid_record"
)

// ParseFailure records one row that could not be converted. Every input row
// yields exactly one Rider or exactly one ParseFailure; failures are never
// silently dropped.
type ParseFailure struct {
	// Row is the zero-based position of the fragment on the page.
	Row int `json:"row"`

	// Field names the offending field, when isolable.
	Field string `json:"field,omitempty"`

	// Reason classifies the failure.
	Reason FailureReason `json:"reason"`

	// Fragment holds the raw HTML of the row for diagnostics.
	Fragment string `json:"fragment,omitempty"`
}

// Note records a non-fatal normalization applied while parsing a row, such
// as a reported time being discarded on a non-finish placing.
type Note struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PageResult is the outcome of parsing one results page. Riders and Failures
// preserve source order within each sequence, and
// len(Riders)+len(Failures) == RowsSeen.
type PageResult struct {
	Riders   []Rider        `json:"riders"`
	Failures []ParseFailure `json:"failures,omitempty"`
	Notes    []Note         `json:"notes,omitempty"`
	RowsSeen int            `json:"rowsSeen"`
}

// RaceCategory represents one category within a discipline of an event.
type RaceCategory struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	EventID      string `json:"eventId"`
	Discipline   string `json:"discipline,omitempty"`
	Gender       string `json:"gender,omitempty"`
	CategoryType string `json:"categoryType,omitempty"`
	AgeRange     string `json:"ageRange,omitempty"`
}

// Validate returns an error if the category contains invalid fields.
func (c *RaceCategory) Validate() error {
	if c.ID == "" {
		return Errorf(EINVALID, "category ID required")
	}
	if c.Name == "" {
		return Errorf(EINVALID, "category name required")
	}
	return nil
}

// Race identifies one race discovered while walking a permit's discipline
// tabs. It carries enough context to fetch and label the race's results.
type Race struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Permit         string `json:"permit"`
	DisciplineID   string `json:"disciplineId"`
	DisciplineName string `json:"disciplineName,omitempty"`
}

// RaceResult represents the parsed results of a single race.
type RaceResult struct {
	ID       string     `json:"id"`
	EventID  string     `json:"eventId"`
	Category string     `json:"category"`
	Date     time.Time  `json:"date"`
	Result   PageResult `json:"result"`
}

// Validate returns an error if the race result contains invalid fields.
func (r *RaceResult) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "race ID required")
	}
	if r.EventID == "" {
		return Errorf(EINVALID, "race event ID required")
	}
	return nil
}

// ResultsParser parses a results page into a PageResult.
// Implementations must be deterministic and free of I/O.
type ResultsParser interface {
	// ParseResults locates all row fragments on the page and converts each
	// into a Rider or a ParseFailure. A page with recognizable structure but
	// zero rows yields an empty PageResult; a page that is not a results
	// page at all fails with EUNRECOGNIZED.
	ParseResults(html string, raceID string) (*PageResult, error)
}

// CategoryParser parses a discipline info fragment into race categories.
type CategoryParser interface {
	ParseCategories(html string, eventID string) ([]RaceCategory, error)
}
