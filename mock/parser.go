package mock

import "github.com/fwojciec/usacr"

var (
	_ usacr.ResultsParser      = (*ResultsParser)(nil)
	_ usacr.CategoryParser     = (*CategoryParser)(nil)
	_ usacr.EventListParser    = (*EventListParser)(nil)
	_ usacr.EventDetailsParser = (*EventDetailsParser)(nil)
)

// ResultsParser is a mock implementation of usacr.ResultsParser.
type ResultsParser struct {
	ParseResultsFn func(html string, raceID string) (*usacr.PageResult, error)
}

func (p *ResultsParser) ParseResults(html string, raceID string) (*usacr.PageResult, error) {
	return p.ParseResultsFn(html, raceID)
}

// CategoryParser is a mock implementation of usacr.CategoryParser.
type CategoryParser struct {
	ParseCategoriesFn func(html string, eventID string) ([]usacr.RaceCategory, error)
}

func (p *CategoryParser) ParseCategories(html string, eventID string) ([]usacr.RaceCategory, error) {
	return p.ParseCategoriesFn(html, eventID)
}

// EventListParser is a mock implementation of usacr.EventListParser.
type EventListParser struct {
	ParseEventsFn func(html string, state string, year int) ([]usacr.Event, error)
}

func (p *EventListParser) ParseEvents(html string, state string, year int) ([]usacr.Event, error) {
	return p.ParseEventsFn(html, state, year)
}

// EventDetailsParser is a mock implementation of usacr.EventDetailsParser.
type EventDetailsParser struct {
	ParseDetailsFn     func(html string, permit string) (*usacr.EventDetails, error)
	ParseDisciplinesFn func(html string) ([]usacr.Discipline, error)
}

func (p *EventDetailsParser) ParseDetails(html string, permit string) (*usacr.EventDetails, error) {
	return p.ParseDetailsFn(html, permit)
}

func (p *EventDetailsParser) ParseDisciplines(html string) ([]usacr.Discipline, error) {
	return p.ParseDisciplinesFn(html)
}
