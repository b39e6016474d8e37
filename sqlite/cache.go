package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/usacr"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ usacr.PageCache = (*PageCache)(nil)

// DefaultTTL is how long a cached page stays fresh. Results rarely change
// once posted, but corrections do happen in the first day or two.
const DefaultTTL = 24 * time.Hour

// PageCache implements usacr.PageCache using SQLite.
type PageCache struct {
	db  *DB
	ttl time.Duration
	now func() time.Time
}

// NewPageCache creates a new PageCache with the default TTL.
func NewPageCache(db *DB) *PageCache {
	return &PageCache{db: db, ttl: DefaultTTL, now: time.Now}
}

// SetTTL overrides the cache TTL. A non-positive TTL keeps entries forever.
func (c *PageCache) SetTTL(ttl time.Duration) {
	c.ttl = ttl
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// GetPage returns the cached page for url.
// Returns ENOTFOUND if the page is not cached or has expired.
func (c *PageCache) GetPage(ctx context.Context, url string) (*usacr.CachedPage, error) {
	var page usacr.CachedPage
	var fetchedAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT url, content, content_hash, fetched_at
		FROM pages
		WHERE url = ?
	`, url).Scan(&page.URL, &page.Content, &page.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, usacr.Errorf(usacr.ENOTFOUND, "page not cached")
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	if c.ttl > 0 && c.now().Sub(page.FetchedAt) > c.ttl {
		return nil, usacr.Errorf(usacr.ENOTFOUND, "cached page expired")
	}

	return &page, nil
}

// PutPage stores or replaces the cached page for page.URL.
func (c *PageCache) PutPage(ctx context.Context, page *usacr.CachedPage) error {
	if page.URL == "" {
		return usacr.Errorf(usacr.EINVALID, "cached page URL required")
	}

	fetchedAt := page.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = c.now().UTC()
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			content = excluded.content,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, uuid.New().String(), page.URL, page.Content, hashContent(page.Content),
		fetchedAt.Format(time.RFC3339))

	return err
}
