package domain

import "errors"

var (
	// ErrRecipeNotFound is returned when a recipe id does not resolve
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrInvalidServings is returned when scaling is requested with a
	// target serving count of zero or less
	ErrInvalidServings = errors.New("target servings must be greater than zero")

	// ErrProductNotFound is returned when a product id is unknown to the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCatalogUnavailable is returned when the catalog collaborator cannot be reached
	ErrCatalogUnavailable = errors.New("catalog service unavailable")
)
