package usecase

import (
	"sort"

	"github.com/basketful/backend/internal/domain"
)

// RankCandidates turns raw candidates into ranked ProductMatch records:
// it converts the ingredient quantity into the product's unit, collapses
// duplicate (product, offer) pairs keeping the highest score, sorts
// descending by score (stable, so retrieval order breaks ties) and
// truncates to maxResults. Distinct offers of the same product are distinct
// matches; only a candidate seen again through another tier or search term
// is a duplicate.
func RankCandidates(candidates []domain.Candidate, ing domain.Ingredient, maxResults int) []domain.ProductMatch {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	type offerKey struct {
		productID string
		offerID   string
	}
	seen := make(map[offerKey]int, len(candidates))
	matches := make([]domain.ProductMatch, 0, len(candidates))

	for _, cand := range candidates {
		key := offerKey{cand.Product.ID, cand.Offer.ID}
		if idx, ok := seen[key]; ok {
			if cand.Score > matches[idx].MatchScore {
				matches[idx] = buildMatch(cand, ing)
			}
			continue
		}
		seen[key] = len(matches)
		matches = append(matches, buildMatch(cand, ing))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

func buildMatch(cand domain.Candidate, ing domain.Ingredient) domain.ProductMatch {
	quantity, note := ConvertUnits(ing.Quantity, ing.Unit, cand.Product.Unit)
	return domain.ProductMatch{
		Product:            cand.Product,
		Offer:              cand.Offer,
		MatchScore:         cand.Score,
		MatchReason:        cand.Reason,
		SuggestedQuantity:  quantity,
		UnitConversionNote: note,
	}
}
