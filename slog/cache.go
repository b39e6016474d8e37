package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/usacr"
)

// Ensure LoggingPageCache implements usacr.PageCache at compile time.
var _ usacr.PageCache = (*LoggingPageCache)(nil)

// LoggingPageCache wraps a PageCache with debug logging of hits and misses.
type LoggingPageCache struct {
	next   usacr.PageCache
	logger *slog.Logger
}

// NewLoggingPageCache creates a new LoggingPageCache.
func NewLoggingPageCache(next usacr.PageCache, logger *slog.Logger) *LoggingPageCache {
	return &LoggingPageCache{next: next, logger: logger}
}

// GetPage delegates to the wrapped cache and logs the outcome.
func (c *LoggingPageCache) GetPage(ctx context.Context, url string) (*usacr.CachedPage, error) {
	page, err := c.next.GetPage(ctx, url)
	if err != nil {
		c.logger.Debug("cache miss", "url", url)
		return nil, err
	}
	c.logger.Debug("cache hit", "url", url, "fetched_at", page.FetchedAt)
	return page, nil
}

// PutPage delegates to the wrapped cache.
func (c *LoggingPageCache) PutPage(ctx context.Context, page *usacr.CachedPage) error {
	if err := c.next.PutPage(ctx, page); err != nil {
		c.logger.Error("cache put", "url", page.URL, "err", err.Error())
		return err
	}
	c.logger.Debug("cache put", "url", page.URL, "bytes", len(page.Content))
	return nil
}
