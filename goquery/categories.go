package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/usacr"
)

// Ensure CategoryParser implements usacr.CategoryParser at compile time.
var _ usacr.CategoryParser = (*CategoryParser)(nil)

// raceIDPattern matches race identifiers in element IDs and onclick hooks
// ("race_1337633", "loadRaceID(1337633)").
var raceIDPattern = regexp.MustCompile(`(?i)race_?(?:id\()?(\d+)`)

var (
	agePattern    = regexp.MustCompile(`\b(\d{1,2}\s*-\s*\d{1,2})\b`)
	catPattern    = regexp.MustCompile(`(?i)\bcat(?:egory)?\s*([1-5](?:/[1-5])*)\b`)
	genderPattern = regexp.MustCompile(`(?i)\b(men|women|male|female)\b`)
)

// CategoryParser parses discipline info fragments into race categories.
// The fragment is the HTML the loadInfoID endpoint returns: a list of race
// links, one per category.
type CategoryParser struct{}

// NewCategoryParser creates a new CategoryParser.
func NewCategoryParser() *CategoryParser {
	return &CategoryParser{}
}

// ParseCategories extracts the categories from a discipline fragment.
// Category names carry gender, category type, and age range by convention
// ("Men Cat 3 35-44"); those are classified here so callers don't re-derive
// them from display strings. A fragment with no race links yields an empty
// slice, since a discipline can legitimately have no posted categories yet.
func (p *CategoryParser) ParseCategories(html string, eventID string) ([]usacr.RaceCategory, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, usacr.Errorf(usacr.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var categories []usacr.RaceCategory

	doc.Find(`[id^="race_"], a[onclick*="loadRaceID"]`).Each(func(_ int, el *goquery.Selection) {
		id := raceID(el)
		if id == "" || seen[id] {
			return
		}
		seen[id] = true

		name := normalizeCell(el.Text())
		if name == "" {
			return
		}

		cat := usacr.RaceCategory{
			ID:      id,
			Name:    name,
			EventID: eventID,
		}
		classifyCategory(&cat)

		categories = append(categories, cat)
	})

	return categories, nil
}

// raceID pulls the numeric race ID from the element's id attribute or its
// onclick hook.
func raceID(el *goquery.Selection) string {
	if id, exists := el.Attr("id"); exists {
		if m := raceIDPattern.FindStringSubmatch(id); m != nil {
			return m[1]
		}
	}
	if onclick, exists := el.Attr("onclick"); exists {
		if m := raceIDPattern.FindStringSubmatch(onclick); m != nil {
			return m[1]
		}
	}
	return ""
}

// classifyCategory derives gender, category type, and age range from the
// category display name.
func classifyCategory(cat *usacr.RaceCategory) {
	if m := genderPattern.FindString(cat.Name); m != "" {
		switch strings.ToLower(m) {
		case "men", "male":
			cat.Gender = "Men"
		case "women", "female":
			cat.Gender = "Women"
		}
	}
	if m := catPattern.FindStringSubmatch(cat.Name); m != nil {
		cat.CategoryType = "Cat " + m[1]
	}
	if m := agePattern.FindString(cat.Name); m != "" {
		cat.AgeRange = strings.ReplaceAll(m, " ", "")
	}
}
