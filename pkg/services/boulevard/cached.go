package boulevard

import (
	"context"

	"github.com/rella-labs/profitkit/pkg/models/domain"
	"github.com/rella-labs/profitkit/pkg/services/cache"
)

// Fetcher is the read surface higher layers consume. *Client and
// *CachedClient both satisfy it.
type Fetcher interface {
	FetchOrders(ctx context.Context, locationID string, r domain.DateRange) ([]domain.Order, error)
	FetchLocations(ctx context.Context) ([]domain.Location, error)
	FetchServices(ctx context.Context) ([]domain.CatalogService, error)
	FetchProducts(ctx context.Context) ([]domain.CatalogProduct, error)
}

// CachedClient memoizes successful fetches. Failed fetches are never
// cached, so a transient upstream error does not poison later calls.
type CachedClient struct {
	inner Fetcher
	cache *cache.Cache
}

func NewCachedClient(inner Fetcher, c *cache.Cache) *CachedClient {
	return &CachedClient{inner: inner, cache: c}
}

const dateKeyLayout = "2006-01-02"

func (c *CachedClient) FetchOrders(ctx context.Context, locationID string, r domain.DateRange) ([]domain.Order, error) {
	key := cache.Key("orders", locationID, r.Start.Format(dateKeyLayout), r.End.Format(dateKeyLayout))
	if hit, ok := c.cache.Get(key); ok {
		return hit.([]domain.Order), nil
	}

	orders, err := c.inner.FetchOrders(ctx, locationID, r)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, orders)
	return orders, nil
}

func (c *CachedClient) FetchLocations(ctx context.Context) ([]domain.Location, error) {
	key := cache.Key("locations")
	if hit, ok := c.cache.Get(key); ok {
		return hit.([]domain.Location), nil
	}

	locations, err := c.inner.FetchLocations(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, locations)
	return locations, nil
}

func (c *CachedClient) FetchServices(ctx context.Context) ([]domain.CatalogService, error) {
	key := cache.Key("services")
	if hit, ok := c.cache.Get(key); ok {
		return hit.([]domain.CatalogService), nil
	}

	services, err := c.inner.FetchServices(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, services)
	return services, nil
}

func (c *CachedClient) FetchProducts(ctx context.Context) ([]domain.CatalogProduct, error) {
	key := cache.Key("products")
	if hit, ok := c.cache.Get(key); ok {
		return hit.([]domain.CatalogProduct), nil
	}

	products, err := c.inner.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, products)
	return products, nil
}

// FlushOrders drops memoized order fetches, leaving catalog entries in
// place. Useful after a known upstream correction.
func (c *CachedClient) FlushOrders() {
	c.cache.Flush("orders")
}
