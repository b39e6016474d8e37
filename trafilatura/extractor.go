// Package trafilatura extracts announcement content from permit pages,
// stripping the legacy site's navigation and boilerplate.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/usacr"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements usacr.AnnouncementExtractor at compile time.
var _ usacr.AnnouncementExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pull the announcement body out of a
// permit page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes a raw permit page and returns the announcement content.
func (e *Extractor) Extract(rawHTML string) (*usacr.Announcement, error) {
	if rawHTML == "" {
		return nil, usacr.Errorf(usacr.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &usacr.Announcement{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
