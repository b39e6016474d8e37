package client

import (
	"context"

	"github.com/fwojciec/usacr"
	"github.com/fwojciec/usacr/http"
)

// GetAnnouncement extracts the announcement from a permit page and renders
// it as markdown.
func (c *Client) GetAnnouncement(ctx context.Context, permit string) (title, markdown string, err error) {
	if permit == "" {
		return "", "", usacr.Errorf(usacr.EINVALID, "permit required")
	}
	if c.Extractor == nil || c.Converter == nil {
		return "", "", usacr.Errorf(usacr.ENOTIMPLEMENTED, "announcement extraction is not configured")
	}

	html, err := c.page(ctx, http.PermitURL(permit))
	if err != nil {
		return "", "", err
	}

	announcement, err := c.Extractor.Extract(html)
	if err != nil {
		return "", "", err
	}

	markdown, err = c.Converter.Convert(announcement.ContentHTML)
	if err != nil {
		return "", "", err
	}

	return announcement.Title, markdown, nil
}
