package domain

import "github.com/shopspring/decimal"

// MatchReason explains how a candidate was selected for an ingredient.
type MatchReason string

const (
	// MatchPreMapped means the ingredient carried an explicit product id.
	// Pre-mapping is authoritative and bypasses name scoring.
	MatchPreMapped MatchReason = "PRE_MAPPED"

	// MatchExactName means the name similarity score was exactly 100.
	MatchExactName MatchReason = "EXACT_NAME"

	// MatchNameSimilarity means the candidate passed the fuzzy threshold.
	MatchNameSimilarity MatchReason = "NAME_SIMILARITY"
)

// ProductMatch is a scored, unit-converted catalog candidate for a single
// ingredient. It is built per request and never persisted.
type ProductMatch struct {
	Product            CatalogProduct  `json:"product"`
	Offer              StockOffer      `json:"offer"`
	MatchScore         int             `json:"matchScore"`
	MatchReason        MatchReason     `json:"matchReason"`
	SuggestedQuantity  decimal.Decimal `json:"suggestedQuantity"`
	UnitConversionNote string          `json:"unitConversionNote,omitempty"`
}

// IngredientMatchResult holds the ranked matches for one ingredient.
// Available is true iff at least one match has an available offer.
type IngredientMatchResult struct {
	Ingredient Ingredient     `json:"ingredient"`
	Matches    []ProductMatch `json:"matches"`
	Available  bool           `json:"available"`
	BestMatch  *ProductMatch  `json:"bestMatch,omitempty"`
}

// RecipeMatchResponse is the purchase-readiness report for a whole recipe.
type RecipeMatchResponse struct {
	Recipe                    Recipe                  `json:"recipe"`
	IngredientMatches         []IngredientMatchResult `json:"ingredientMatches"`
	TotalAvailableIngredients int                     `json:"totalAvailableIngredients"`
	TotalIngredients          int                     `json:"totalIngredients"`
	AvailabilityPercentage    int                     `json:"availabilityPercentage"`
	EstimatedTotalCost        decimal.Decimal         `json:"estimatedTotalCost"`
	ScaledServings            *int                    `json:"scaledServings,omitempty"`
}
