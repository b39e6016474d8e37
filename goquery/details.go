package goquery

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/usacr"
)

// Ensure EventDetailsParser implements usacr.EventDetailsParser at compile time.
var _ usacr.EventDetailsParser = (*EventDetailsParser)(nil)

// loadInfoIDPattern matches the discipline AJAX hook the permit page wires
// onto its tab links: loadInfoID(123456, 'Criterium 06/15/2020').
var loadInfoIDPattern = regexp.MustCompile(`loadInfoID\((\d+)(?:,\s*['"]([^'"]+)['"])?`)

// trailingDatePattern matches a date suffix on a discipline name.
var trailingDatePattern = regexp.MustCompile(`\s+\d{2}/\d{2}/\d{4}$`)

// EventDetailsParser parses permit pages.
type EventDetailsParser struct{}

// NewEventDetailsParser creates a new EventDetailsParser.
func NewEventDetailsParser() *EventDetailsParser {
	return &EventDetailsParser{}
}

// ParseDetails extracts the event name, dates, location, promoter, and
// website from a permit page, along with its disciplines. A page without an
// event heading fails with EUNRECOGNIZED.
func (p *EventDetailsParser) ParseDetails(html string, permit string) (*usacr.EventDetails, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, usacr.Errorf(usacr.EINVALID, "failed to parse HTML: %v", err)
	}

	name := normalizeCell(doc.Find("h3").First().Text())
	if name == "" {
		name = normalizeCell(doc.Find("h1, h2").First().Text())
	}
	if name == "" {
		return nil, usacr.Errorf(usacr.EUNRECOGNIZED, "page is not a recognizable permit page")
	}

	details := &usacr.EventDetails{
		Permit: permit,
		Name:   name,
	}

	// Labeled detail lines ("Dates: 06/15/2020 - 06/16/2020") appear as list
	// items or table rows depending on the page vintage.
	doc.Find("li, tr").Each(func(_ int, line *goquery.Selection) {
		text := normalizeCell(line.Text())
		label, value, ok := splitLabeled(text)
		if !ok {
			return
		}
		switch strings.ToLower(label) {
		case "dates", "date":
			details.StartDate, details.EndDate = parseDateRange(value)
		case "location":
			details.Location = value
		case "promoter":
			details.Promoter = value
		case "website", "web site":
			if href, exists := line.Find("a[href]").First().Attr("href"); exists {
				details.Website = href
			} else {
				details.Website = value
			}
		}
	})

	disciplines, err := p.ParseDisciplines(html)
	if err != nil {
		return nil, err
	}
	details.Disciplines = disciplines

	return details, nil
}

// ParseDisciplines extracts the discipline tabs from a permit page. Each tab
// is an anchor with a loadInfoID onclick; the numeric argument addresses the
// category fragment and the quoted argument is the label the AJAX endpoint
// expects back.
func (p *EventDetailsParser) ParseDisciplines(html string) ([]usacr.Discipline, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, usacr.Errorf(usacr.EINVALID, "failed to parse HTML: %v", err)
	}

	var disciplines []usacr.Discipline
	doc.Find(`a[onclick^="loadInfoID"]`).Each(func(_ int, link *goquery.Selection) {
		onclick, _ := link.Attr("onclick")
		m := loadInfoIDPattern.FindStringSubmatch(onclick)
		if m == nil {
			return
		}

		name := normalizeCell(link.Text())
		name = trailingDatePattern.ReplaceAllString(name, "")

		disciplines = append(disciplines, usacr.Discipline{
			InfoID: m[1],
			Name:   name,
			Label:  m[2],
		})
	})

	return disciplines, nil
}

// splitLabeled splits "Label: value" detail lines. Lines without a short
// label prefix are not detail lines.
func splitLabeled(s string) (label, value string, ok bool) {
	i := strings.Index(s, ":")
	if i <= 0 || i > 20 {
		return "", "", false
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), true
}

// parseDateRange parses "06/15/2020 - 06/16/2020" or a single date.
func parseDateRange(s string) (start, end time.Time) {
	dates := datePattern.FindAllString(s, 2)
	if len(dates) == 0 {
		return time.Time{}, time.Time{}
	}
	start, _ = time.Parse("01/02/2006", dates[0])
	end = start
	if len(dates) > 1 {
		if e, err := time.Parse("01/02/2006", dates[1]); err == nil {
			end = e
		}
	}
	return start, end
}
