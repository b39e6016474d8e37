package client

import (
	"context"

	"github.com/fwojciec/usacr"
	"github.com/fwojciec/usacr/http"
)

// GetEvents returns the events listed for a state and year.
func (c *Client) GetEvents(ctx context.Context, state string, year int) ([]usacr.Event, error) {
	if err := usacr.ValidateState(state); err != nil {
		return nil, err
	}
	if year <= 0 {
		return nil, usacr.Errorf(usacr.EINVALID, "year must be positive")
	}

	html, err := c.page(ctx, http.BrowseURL(state, year))
	if err != nil {
		return nil, err
	}

	return c.Events.ParseEvents(html, state, year)
}

// GetEventDetails returns the details for a permitted event, including its
// discipline tabs.
func (c *Client) GetEventDetails(ctx context.Context, permit string) (*usacr.EventDetails, error) {
	if permit == "" {
		return nil, usacr.Errorf(usacr.EINVALID, "permit required")
	}

	html, err := c.page(ctx, http.PermitURL(permit))
	if err != nil {
		return nil, err
	}

	return c.Details.ParseDetails(html, permit)
}

// GetDisciplines returns the discipline tabs on a permit page.
func (c *Client) GetDisciplines(ctx context.Context, permit string) ([]usacr.Discipline, error) {
	if permit == "" {
		return nil, usacr.Errorf(usacr.EINVALID, "permit required")
	}

	html, err := c.page(ctx, http.PermitURL(permit))
	if err != nil {
		return nil, err
	}

	return c.Details.ParseDisciplines(html)
}
