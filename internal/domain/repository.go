package domain

import (
	"context"
	"time"
)

// RecipeRepository is the read-only recipe collaborator. Authoring and
// moderation of recipes are out of scope for the matching engine.
type RecipeRepository interface {
	GetByID(ctx context.Context, id string) (*Recipe, error)

	// NotifyShopAttempt bumps the recipe's engagement counter. It is
	// fire-and-forget from the engine's point of view: failures are
	// logged by the caller and never surfaced.
	NotifyShopAttempt(ctx context.Context, id string) error
}

// CatalogRepository is the read-only catalog collaborator. Any backing
// implementation (in-memory scan, SQL LIKE, inverted index, remote
// service) satisfies the contract as long as search results are active
// products joined to available, in-stock offers and their sellers.
type CatalogRepository interface {
	GetProductByID(ctx context.Context, id string) (*CatalogProduct, error)

	// GetActiveOffers returns all available, in-stock offers for a product.
	GetActiveOffers(ctx context.Context, productID string) ([]StockOffer, error)

	// SearchActiveProducts finds active products whose name or tags
	// contain the term (case-insensitive substring).
	SearchActiveProducts(ctx context.Context, term string) ([]ProductListing, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
