// Package client composes fetching, caching, and parsing into the
// high-level operations against the legacy USA Cycling results site.
package client

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/usacr"
)

// Client orchestrates lookups against the legacy results site. Fetcher and
// the parsers are required; Cache and Logger are optional.
type Client struct {
	Fetcher    usacr.Fetcher
	Cache      usacr.PageCache
	Events     usacr.EventListParser
	Details    usacr.EventDetailsParser
	Categories usacr.CategoryParser
	Results    usacr.ResultsParser

	// Extractor and Converter are only needed for GetAnnouncement.
	Extractor usacr.AnnouncementExtractor
	Converter usacr.Converter

	// Concurrency bounds parallel race-result fetches during a complete
	// event crawl. Zero means a conservative default.
	Concurrency int

	Logger *slog.Logger
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// page returns the content at url, consulting the cache first when one is
// configured. Cache failures degrade to a plain fetch rather than failing
// the lookup.
func (c *Client) page(ctx context.Context, url string) (string, error) {
	if c.Cache != nil {
		cached, err := c.Cache.GetPage(ctx, url)
		if err == nil {
			return cached.Content, nil
		}
		if usacr.ErrorCode(err) != usacr.ENOTFOUND {
			c.logger().Warn("page cache read failed", "url", url, "err", err)
		}
	}

	content, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if c.Cache != nil {
		put := &usacr.CachedPage{
			URL:       url,
			Content:   content,
			FetchedAt: time.Now(),
		}
		if err := c.Cache.PutPage(ctx, put); err != nil {
			c.logger().Warn("page cache write failed", "url", url, "err", err)
		}
	}

	return content, nil
}

// unwrapFragment unpacks the JSON envelope the legacy AJAX endpoints wrap
// around their HTML fragments. Plain HTML responses pass through unchanged.
func unwrapFragment(body string) string {
	trimmed := strings.TrimSpace(body)
	if !strings.HasPrefix(trimmed, "{") {
		return body
	}
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil || envelope.Message == "" {
		return body
	}
	return envelope.Message
}
