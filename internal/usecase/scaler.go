package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/basketful/backend/internal/domain"
)

// ScaleIngredients rescales an ingredient list proportionally to a target
// serving count. Quantities are rounded to 2 decimal places; every other
// field is copied unchanged. Scaling to zero or negative servings is
// meaningless and returns ErrInvalidServings rather than producing
// zero-quantity ingredients.
func ScaleIngredients(ingredients []domain.Ingredient, originalServings, targetServings int) ([]domain.Ingredient, error) {
	if targetServings <= 0 || originalServings <= 0 {
		return nil, domain.ErrInvalidServings
	}

	factor := decimal.NewFromInt(int64(targetServings)).Div(decimal.NewFromInt(int64(originalServings)))

	scaled := make([]domain.Ingredient, len(ingredients))
	for i, ing := range ingredients {
		ing.Quantity = ing.Quantity.Mul(factor).Round(2)
		scaled[i] = ing
	}
	return scaled, nil
}
