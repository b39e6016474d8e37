package mock

import (
	"context"

	"github.com/fwojciec/usacr"
)

var _ usacr.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of usacr.PageCache.
type PageCache struct {
	GetPageFn func(ctx context.Context, url string) (*usacr.CachedPage, error)
	PutPageFn func(ctx context.Context, page *usacr.CachedPage) error
}

func (c *PageCache) GetPage(ctx context.Context, url string) (*usacr.CachedPage, error) {
	return c.GetPageFn(ctx, url)
}

func (c *PageCache) PutPage(ctx context.Context, page *usacr.CachedPage) error {
	if c.PutPageFn == nil {
		return nil
	}
	return c.PutPageFn(ctx, page)
}
