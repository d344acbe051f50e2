package boulevard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rella-labs/profitkit/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Options tune the client. Zero values fall back to the defaults below.
type Options struct {
	Timeout      time.Duration // per network call, not per pagination loop
	PageSize     int
	MaxPages     int // pagination safety ceiling
	MaxNodes     int // pagination safety ceiling
	MaxAttempts  int
	InitialDelay time.Duration
}

const (
	defaultTimeout      = 30 * time.Second
	defaultPageSize     = 100
	defaultMaxPages     = 50
	defaultMaxNodes     = 5000
	defaultMaxAttempts  = 5
	defaultInitialDelay = time.Second

	maxBackoffDelay   = 30 * time.Second
	minRateLimitSleep = 100 * time.Millisecond
)

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.PageSize <= 0 {
		o.PageSize = defaultPageSize
	}
	if o.MaxPages <= 0 {
		o.MaxPages = defaultMaxPages
	}
	if o.MaxNodes <= 0 {
		o.MaxNodes = defaultMaxNodes
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = defaultMaxAttempts
	}
	if o.InitialDelay <= 0 {
		o.InitialDelay = defaultInitialDelay
	}
	return o
}

// Client fetches orders and catalog data from the admin API. All calls
// are synchronous reads; pagination is strictly sequential because every
// page depends on the previous page's cursor.
type Client struct {
	transport *Transport
	opts      Options
	sleep     func(time.Duration)
}

func NewClient(creds domain.Credentials, opts Options) (*Client, error) {
	opts = opts.withDefaults()

	transport, err := NewTransport(creds, opts.Timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		transport: transport,
		opts:      opts,
		sleep:     time.Sleep,
	}, nil
}

// FetchOrders returns every order closed in the given range at one
// location, fully paginated (subject to the safety ceilings). Orders that
// fail to parse are skipped with a warning; the rest still aggregate.
func (c *Client) FetchOrders(ctx context.Context, locationID string, r domain.DateRange) ([]domain.Order, error) {
	logger := zerolog.Ctx(ctx)

	vars := map[string]any{
		"locationId": locationID,
		"query":      ordersRangeFilter(r),
	}

	nodes, err := c.fetchAllPages(ctx, orderDetailsQuery, vars, "orders")
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(nodes))
	for _, node := range nodes {
		var wo wireOrder
		if err := json.Unmarshal(node, &wo); err != nil {
			logger.Warn().Err(err).Msg("skipping undecodable order node")
			continue
		}
		order, err := wo.toDomain()
		if err != nil {
			logger.Warn().Err(err).Msg("skipping malformed order")
			continue
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// FetchLocations lists the business's locations.
func (c *Client) FetchLocations(ctx context.Context) ([]domain.Location, error) {
	logger := zerolog.Ctx(ctx)

	nodes, err := c.fetchAllPages(ctx, locationsQuery, nil, "locations")
	if err != nil {
		return nil, err
	}

	locations := make([]domain.Location, 0, len(nodes))
	for _, node := range nodes {
		var wl wireLocation
		if err := json.Unmarshal(node, &wl); err != nil {
			logger.Warn().Err(err).Msg("skipping undecodable location node")
			continue
		}
		locations = append(locations, domain.Location{ID: wl.ID, Name: wl.Name})
	}
	return locations, nil
}

// FetchServices lists the service catalog with default prices.
func (c *Client) FetchServices(ctx context.Context) ([]domain.CatalogService, error) {
	logger := zerolog.Ctx(ctx)

	nodes, err := c.fetchAllPages(ctx, servicesQuery, nil, "services")
	if err != nil {
		return nil, err
	}

	services := make([]domain.CatalogService, 0, len(nodes))
	for _, node := range nodes {
		var ws wireService
		if err := json.Unmarshal(node, &ws); err != nil {
			logger.Warn().Err(err).Msg("skipping undecodable service node")
			continue
		}
		price, err := numberToCents(ws.DefaultPrice)
		if err != nil {
			logger.Warn().Str("service", ws.Name).Msg("skipping service with non-numeric price")
			continue
		}
		services = append(services, domain.CatalogService{ID: ws.ID, Name: ws.Name, DefaultPrice: price})
	}
	return services, nil
}

// FetchProducts lists the product catalog with unit prices.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.CatalogProduct, error) {
	logger := zerolog.Ctx(ctx)

	nodes, err := c.fetchAllPages(ctx, productsQuery, nil, "products")
	if err != nil {
		return nil, err
	}

	products := make([]domain.CatalogProduct, 0, len(nodes))
	for _, node := range nodes {
		var wp wireProduct
		if err := json.Unmarshal(node, &wp); err != nil {
			logger.Warn().Err(err).Msg("skipping undecodable product node")
			continue
		}
		price, err := numberToCents(wp.UnitPrice)
		if err != nil {
			logger.Warn().Str("product", wp.Name).Msg("skipping product with non-numeric price")
			continue
		}
		products = append(products, domain.CatalogProduct{ID: wp.ID, Name: wp.Name, SKU: wp.SKU, UnitPrice: price})
	}
	return products, nil
}

// ordersRangeFilter renders the admin API's query-string filter for a
// closed-date range.
func ordersRangeFilter(r domain.DateRange) string {
	const layout = "2006-01-02"
	return fmt.Sprintf("closedAt >= '%s' AND closedAt <= '%s'",
		r.Start.Format(layout), r.End.Format(layout))
}
