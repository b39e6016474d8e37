// Package fs provides a file-based page cache, the directory-backed
// alternative to the sqlite cache for callers that want their cached pages
// inspectable on disk.
package fs

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/usacr"
)

// Ensure PageCache implements usacr.PageCache at compile time.
var _ usacr.PageCache = (*PageCache)(nil)

// DefaultTTL matches the sqlite cache.
const DefaultTTL = 24 * time.Hour

// PageCache implements usacr.PageCache using one JSON file per page under a
// base directory. File names are the xxHash of the URL, so arbitrary query
// strings never produce invalid paths.
type PageCache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// NewPageCache creates a new PageCache rooted at dir. The directory is
// created on first write.
func NewPageCache(dir string) *PageCache {
	return &PageCache{dir: dir, ttl: DefaultTTL, now: time.Now}
}

// SetTTL overrides the cache TTL. A non-positive TTL keeps entries forever.
func (c *PageCache) SetTTL(ttl time.Duration) {
	c.ttl = ttl
}

func (c *PageCache) pathFor(url string) string {
	h := xxhash.Sum64String(url)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return filepath.Join(c.dir, hex.EncodeToString(b)+".json")
}

// GetPage returns the cached page for url.
// Returns ENOTFOUND if the page is not cached or has expired.
func (c *PageCache) GetPage(_ context.Context, url string) (*usacr.CachedPage, error) {
	data, err := os.ReadFile(c.pathFor(url))
	if os.IsNotExist(err) {
		return nil, usacr.Errorf(usacr.ENOTFOUND, "page not cached")
	}
	if err != nil {
		return nil, err
	}

	var page usacr.CachedPage
	if err := json.Unmarshal(data, &page); err != nil {
		// A corrupt entry is treated as a miss so the caller refetches.
		return nil, usacr.Errorf(usacr.ENOTFOUND, "cached page unreadable")
	}

	// The file name is a hash; make sure it was the right page.
	if page.URL != url {
		return nil, usacr.Errorf(usacr.ENOTFOUND, "page not cached")
	}

	if c.ttl > 0 && c.now().Sub(page.FetchedAt) > c.ttl {
		return nil, usacr.Errorf(usacr.ENOTFOUND, "cached page expired")
	}

	return &page, nil
}

// PutPage stores or replaces the cached page for page.URL. The write goes to
// a temporary file first and is renamed into place, so readers never see a
// partially written entry.
func (c *PageCache) PutPage(_ context.Context, page *usacr.CachedPage) error {
	if page.URL == "" {
		return usacr.Errorf(usacr.EINVALID, "cached page URL required")
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}

	stored := *page
	if stored.FetchedAt.IsZero() {
		stored.FetchedAt = c.now().UTC()
	}

	data, err := json.Marshal(&stored)
	if err != nil {
		return err
	}

	path := c.pathFor(page.URL)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
