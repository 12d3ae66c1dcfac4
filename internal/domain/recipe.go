package domain

import "github.com/shopspring/decimal"

// Ingredient is one line item of a recipe. Values are immutable once read
// from the recipe repository; scaling produces a new Ingredient.
type Ingredient struct {
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	ProductID   string          `json:"productId,omitempty"`
	Category    string          `json:"category,omitempty"`
	SearchTerms []string        `json:"searchTerms,omitempty"`
	Optional    bool            `json:"optional,omitempty"`
}

// Recipe is the read-only view the matching engine needs: a serving count
// and the ingredient list. Authoring, reviews and moderation live elsewhere.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Servings    int          `json:"servings"`
	Ingredients []Ingredient `json:"ingredients"`
}
