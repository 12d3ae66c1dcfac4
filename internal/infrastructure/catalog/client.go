package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/basketful/backend/internal/domain"
)

// Client implements domain.CatalogRepository against the catalog service's
// HTTP API. Requests are rate limited client-side and retried on transient
// failures.
type Client struct {
	http        *resty.Client
	rateLimiter *rate.Limiter
	logger      *zap.Logger
}

// ClientConfig holds the remote catalog connection settings.
type ClientConfig struct {
	BaseURL        string
	RequestsPerSec float64
	Burst          int
	Timeout        time.Duration
}

// NewClient creates a rate-limited catalog API client.
func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	rps := cfg.RequestsPerSec
	if rps <= 0 {
		rps = 50
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 10
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("User-Agent", "basketful-backend/1.0")

	return &Client{
		http:        httpClient,
		rateLimiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:      logger,
	}
}

// GetProductByID fetches one product. A 404 maps to ErrProductNotFound.
func (c *Client) GetProductByID(ctx context.Context, id string) (*domain.CatalogProduct, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	var product domain.CatalogProduct
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&product).
		Get(fmt.Sprintf("/v1/products/%s", id))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, domain.ErrProductNotFound
	}
	if resp.IsError() {
		c.logger.Warn("catalog product lookup failed",
			zap.String("productId", id), zap.Int("status", resp.StatusCode()))
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode())
	}
	return &product, nil
}

// GetActiveOffers fetches a product's available, in-stock offers.
func (c *Client) GetActiveOffers(ctx context.Context, productID string) ([]domain.StockOffer, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	var offers []domain.StockOffer
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("available", "true").
		SetResult(&offers).
		Get(fmt.Sprintf("/v1/products/%s/offers", productID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode())
	}
	return offers, nil
}

// SearchActiveProducts runs a fuzzy catalog search joined with in-stock
// offers and sellers.
func (c *Client) SearchActiveProducts(ctx context.Context, term string) ([]domain.ProductListing, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	var listings []domain.ProductListing
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("term", term).
		SetResult(&listings).
		Get("/v1/products/search")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode())
	}
	return listings, nil
}
