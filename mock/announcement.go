package mock

import "github.com/fwojciec/usacr"

var (
	_ usacr.AnnouncementExtractor = (*AnnouncementExtractor)(nil)
	_ usacr.Converter             = (*Converter)(nil)
)

// AnnouncementExtractor is a mock implementation of usacr.AnnouncementExtractor.
type AnnouncementExtractor struct {
	ExtractFn func(html string) (*usacr.Announcement, error)
}

func (e *AnnouncementExtractor) Extract(html string) (*usacr.Announcement, error) {
	return e.ExtractFn(html)
}

// Converter is a mock implementation of usacr.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
