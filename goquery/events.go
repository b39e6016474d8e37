package goquery

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/usacr"
)

// Ensure EventListParser implements usacr.EventListParser at compile time.
var _ usacr.EventListParser = (*EventListParser)(nil)

// permitPattern matches the permit number in listing links
// ("/results/?permit=2020-26").
var permitPattern = regexp.MustCompile(`permit=(\d{4}-[A-Za-z0-9]+)`)

// datePattern matches the MM/DD/YYYY dates the listing prints.
var datePattern = regexp.MustCompile(`\b(\d{2})/(\d{2})/(\d{4})\b`)

// EventListParser parses state/year listing pages.
type EventListParser struct{}

// NewEventListParser creates a new EventListParser.
func NewEventListParser() *EventListParser {
	return &EventListParser{}
}

// ParseEvents extracts the events listed on a browse page. The listing is a
// table of rows each carrying a permit link; rows without a permit or a name
// are skipped, matching how the legacy site intermixes ad and spacer rows
// with event rows. A page without any permit links and without the listing
// table fails with EUNRECOGNIZED.
func (p *EventListParser) ParseEvents(html string, state string, year int) ([]usacr.Event, error) {
	if err := usacr.ValidateState(state); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, usacr.Errorf(usacr.EINVALID, "failed to parse HTML: %v", err)
	}

	listing := doc.Find("table").FilterFunction(func(_ int, table *goquery.Selection) bool {
		return table.Find(`a[href*="permit="]`).Length() > 0
	}).First()
	if listing.Length() == 0 {
		// An empty listing still renders the table shell; a page without it
		// is not a browse page.
		if doc.Find("table tr").Length() == 0 {
			return nil, usacr.Errorf(usacr.EUNRECOGNIZED, "page is not a recognizable event listing")
		}
		return []usacr.Event{}, nil
	}

	var events []usacr.Event
	listing.Find("tr").Each(func(_ int, row *goquery.Selection) {
		link := row.Find(`a[href*="permit="]`).First()
		if link.Length() == 0 {
			return
		}

		href, _ := link.Attr("href")
		m := permitPattern.FindStringSubmatch(href)
		name := normalizeCell(link.Text())
		if m == nil || name == "" {
			return
		}
		permit := m[1]

		event := usacr.Event{
			ID:     permit,
			Name:   name,
			Permit: permit,
			State:  strings.ToUpper(state),
			Year:   year,
			URL:    resolveListingURL(href),
		}

		rowText := normalizeCell(row.Text())
		if d, ok := parseListingDate(rowText); ok {
			event.Date = d
		}
		if loc := row.Find("td").Last().Text(); normalizeCell(loc) != name {
			event.Location = normalizeCell(loc)
		}

		events = append(events, event)
	})

	return events, nil
}

// parseListingDate finds the first MM/DD/YYYY date in the row text.
func parseListingDate(s string) (time.Time, bool) {
	m := datePattern.FindString(s)
	if m == "" {
		return time.Time{}, false
	}
	d, err := time.Parse("01/02/2006", m)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// resolveListingURL makes relative permit links absolute against the legacy
// site root. Already-absolute links pass through unchanged.
func resolveListingURL(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if u.IsAbs() {
		return href
	}
	base, err := url.Parse(usacr.BaseURL)
	if err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}
