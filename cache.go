package usacr

import (
	"context"
	"time"
)

// CachedPage is one fetched page held by a PageCache.
type CachedPage struct {
	URL         string    `json:"url"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// PageCache stores fetched pages so repeated lookups against the legacy site
// can be answered locally. Implementations decide expiry; an expired entry
// behaves like a miss.
type PageCache interface {
	// GetPage returns the cached page for url.
	// Returns ENOTFOUND if the page is not cached or has expired.
	GetPage(ctx context.Context, url string) (*CachedPage, error)

	// PutPage stores or replaces the cached page for page.URL.
	PutPage(ctx context.Context, page *CachedPage) error
}
