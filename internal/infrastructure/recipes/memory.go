package recipes

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/basketful/backend/internal/domain"
)

// Repository is a thread-safe in-memory recipe store with engagement
// counters. Recipe authoring and persistence live in another service; the
// matching engine only needs read access plus the shop-attempt counter.
type Repository struct {
	mu           sync.RWMutex
	recipes      map[string]domain.Recipe
	shopAttempts map[string]int
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{
		recipes:      make(map[string]domain.Recipe),
		shopAttempts: make(map[string]int),
	}
}

// Add registers a recipe.
func (r *Repository) Add(recipe domain.Recipe) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recipes[recipe.ID] = recipe
}

// GetByID returns the recipe or ErrRecipeNotFound.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipe, ok := r.recipes[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	return &recipe, nil
}

// NotifyShopAttempt increments the recipe's "attempted to shop" counter.
func (r *Repository) NotifyShopAttempt(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recipes[id]; !ok {
		return domain.ErrRecipeNotFound
	}
	r.shopAttempts[id]++
	return nil
}

// ShopAttempts reports the engagement counter for a recipe.
func (r *Repository) ShopAttempts(id string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.shopAttempts[id]
}

// Seed fills the repository with sample recipes for development mode.
func Seed(repo *Repository) {
	repo.Add(domain.Recipe{
		ID:       "recipe-tomato-soup",
		Title:    "Tomato Soup",
		Servings: 4,
		Ingredients: []domain.Ingredient{
			{
				Name:      "Tomatoes",
				Quantity:  decimal.NewFromInt(2),
				Unit:      "kg",
				ProductID: "prod-tomato",
				Category:  "Vegetables",
			},
			{
				Name:        "Milk",
				Quantity:    decimal.NewFromInt(1),
				Unit:        "cup",
				Category:    "Dairy",
				SearchTerms: []string{"toned milk", "whole milk"},
			},
			{
				Name:     "Onion",
				Quantity: decimal.RequireFromString("0.5"),
				Unit:     "kg",
				Category: "Vegetables",
				Optional: true,
			},
		},
	})
}
