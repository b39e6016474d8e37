package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/usacr"
)

// Ensure ResultsParser implements usacr.ResultsParser at compile time.
var _ usacr.ResultsParser = (*ResultsParser)(nil)

// columnSchema maps the logical result fields onto column indexes for one
// results table. -1 means the table does not carry the column; which columns
// a category reports varies by discipline (time trials print times, many
// criterium pages do not).
type columnSchema struct {
	place    int
	bib      int
	name     int
	team     int
	time     int
	category int
}

// headerSynonyms maps normalized header cell text to canonical field names.
// The legacy site is inconsistent between disciplines, so every observed
// variant is listed here rather than guessed at extraction time.
var headerSynonyms = map[string]string{
	"place":     "place",
	"pl":        "place",
	"pos":       "place",
	"position":  "place",
	"bib":       "bib",
	"bib #":     "bib",
	"number":    "bib",
	"name":      "name",
	"rider":     "name",
	"team":      "team",
	"club":      "team",
	"club/team": "team",
	"time":      "time",
	"category":  "category",
	"cat":       "category",
}

// ResultsParser parses legacy results pages. The zero configuration is
// established at construction and never mutated, so a single parser is safe
// for concurrent use across pages.
type ResultsParser struct {
	synonyms map[string]string
}

// NewResultsParser creates a new ResultsParser.
func NewResultsParser() *ResultsParser {
	return &ResultsParser{synonyms: headerSynonyms}
}

// ParseResults locates all row fragments on the page and converts each into
// a Rider or a ParseFailure, in document order. A page whose structural
// markers are present but which lists no rows yields an empty PageResult;
// a page with no results table at all fails with EUNRECOGNIZED.
func (p *ResultsParser) ParseResults(html string, raceID string) (*usacr.PageResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, usacr.Errorf(usacr.EINVALID, "failed to parse HTML: %v", err)
	}

	table, schema := p.findResultsTable(doc)
	if table == nil {
		return nil, usacr.Errorf(usacr.EUNRECOGNIZED, "page is not a recognizable results page")
	}

	result := &usacr.PageResult{}

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}
		if row.Find("td").Length() == 0 {
			return
		}

		rowIdx := result.RowsSeen
		result.RowsSeen++

		rider, notes, failure := parseRow(row, rowIdx, schema, raceID)
		if failure != nil {
			result.Failures = append(result.Failures, *failure)
			return
		}
		result.Notes = append(result.Notes, notes...)
		result.Riders = append(result.Riders, *rider)
	})

	return result, nil
}

// findResultsTable returns the first table whose header row names both a
// place and a name column, together with its column schema.
func (p *ResultsParser) findResultsTable(doc *goquery.Document) (*goquery.Selection, columnSchema) {
	var found *goquery.Selection
	var schema columnSchema

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		header := table.Find("tr").First()
		s := columnSchema{place: -1, bib: -1, name: -1, team: -1, time: -1, category: -1}

		header.Find("td, th").Each(func(idx int, cell *goquery.Selection) {
			name := strings.ToLower(normalizeCell(cell.Text()))
			switch p.synonyms[name] {
			case "place":
				s.place = idx
			case "bib":
				s.bib = idx
			case "name":
				s.name = idx
			case "team":
				s.team = idx
			case "time":
				s.time = idx
			case "category":
				s.category = idx
			}
		})

		if s.place >= 0 && s.name >= 0 {
			found = table
			schema = s
			return false
		}
		return true
	})

	return found, schema
}

// parseRow converts one row fragment into a Rider, or a ParseFailure tagged
// with the first required field that failed. Extractors run in a fixed
// order: place, name, then the optional fields. A malformed optional field
// and a time reported against a non-finish placing are recorded as notes,
// not failures.
func parseRow(row *goquery.Selection, rowIdx int, schema columnSchema, raceID string) (*usacr.Rider, []usacr.Note, *usacr.ParseFailure) {
	c := rowCells(row)

	fail := func(ferr *fieldError) *usacr.ParseFailure {
		fragment, _ := goquery.OuterHtml(row)
		return &usacr.ParseFailure{
			Row:      rowIdx,
			Field:    ferr.field,
			Reason:   ferr.reason,
			Fragment: strings.TrimSpace(fragment),
		}
	}

	place, ferr := c.extractPlacing(schema.place, "place")
	if ferr != nil {
		return nil, nil, fail(ferr)
	}

	name, ferr := c.extractText(schema.name, "name", true)
	if ferr != nil {
		return nil, nil, fail(ferr)
	}

	var notes []usacr.Note

	bib, hasBib, ferr := c.extractInt(schema.bib, "bib")
	if ferr != nil {
		notes = append(notes, usacr.Note{Row: rowIdx, Field: ferr.field, Message: "malformed value dropped"})
	}

	team, _ := c.extractText(schema.team, "team", false)
	category, _ := c.extractText(schema.category, "category", false)

	finishTime, hasTime, ferr := c.extractDuration(schema.time, "time")
	if ferr != nil {
		notes = append(notes, usacr.Note{Row: rowIdx, Field: ferr.field, Message: "malformed value dropped"})
	}

	// A time printed against a non-finish placing is non-critical data:
	// discard it and record what happened rather than failing the row.
	if hasTime && !place.Finished() {
		finishTime = 0
		notes = append(notes, usacr.Note{Row: rowIdx, Field: "time", Message: "time discarded for non-finish placing " + place.String()})
	}

	rider := &usacr.Rider{
		RaceID:   raceID,
		Place:    place,
		Name:     name,
		Team:     team,
		Category: category,
		Time:     finishTime,
	}
	if hasBib {
		rider.Bib = bib
	}

	if err := rider.Validate(); err != nil {
		f := fail(&fieldError{field: "", reason: usacr.InvalidRecord})
		return nil, nil, f
	}

	return rider, notes, nil
}
