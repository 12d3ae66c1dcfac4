package usecase

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/basketful/backend/internal/domain"
)

const (
	// DefaultMaxResults caps the ranked matches kept per ingredient.
	DefaultMaxResults = 5

	defaultMaxConcurrent    = 4
	defaultRetrievalTimeout = 3 * time.Second
)

// MatchConfig holds configuration for the match service.
type MatchConfig struct {
	MaxResults       int
	MaxConcurrent    int
	RetrievalTimeout time.Duration
}

// MatchService is the top-level entry point of the matching engine: it
// matches every ingredient of a (possibly scaled) recipe against the
// catalog and aggregates the results into a purchase-readiness report.
type MatchService struct {
	recipes   domain.RecipeRepository
	retriever *CandidateRetriever
	logger    *zap.Logger

	maxResults       int
	maxConcurrent    int
	retrievalTimeout time.Duration
}

// NewMatchService creates a match service. Zero config values fall back to
// package defaults.
func NewMatchService(
	recipes domain.RecipeRepository,
	retriever *CandidateRetriever,
	logger *zap.Logger,
	cfg MatchConfig,
) *MatchService {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}
	timeout := cfg.RetrievalTimeout
	if timeout <= 0 {
		timeout = defaultRetrievalTimeout
	}

	return &MatchService{
		recipes:          recipes,
		retriever:        retriever,
		logger:           logger,
		maxResults:       maxResults,
		maxConcurrent:    maxConcurrent,
		retrievalTimeout: timeout,
	}
}

// MatchRecipeIngredients matches the ingredients of recipe recipeID against
// the catalog, optionally after scaling to targetServings (nil means use
// the stored serving count unscaled). It returns ErrRecipeNotFound or
// ErrInvalidServings as caller-visible failures; every other fault degrades
// the affected ingredient to "no candidates" and the request completes.
func (s *MatchService) MatchRecipeIngredients(ctx context.Context, recipeID string, targetServings *int) (*domain.RecipeMatchResponse, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	ingredients := recipe.Ingredients
	var scaledServings *int
	if targetServings != nil {
		ingredients, err = ScaleIngredients(recipe.Ingredients, recipe.Servings, *targetServings)
		if err != nil {
			return nil, err
		}
		scaledServings = targetServings
	}

	// Ingredients share no mutable state, so retrieval fans out with
	// bounded concurrency. Each goroutine writes only its own slot,
	// keeping results in ingredient order.
	results := make([]domain.IngredientMatchResult, len(ingredients))

	g := new(errgroup.Group)
	g.SetLimit(s.maxConcurrent)
	for i, ing := range ingredients {
		i, ing := i, ing
		g.Go(func() error {
			results[i] = s.matchIngredient(ctx, ing)
			return nil
		})
	}
	// Closures never return errors; per-ingredient faults are absorbed.
	_ = g.Wait()

	response := &domain.RecipeMatchResponse{
		Recipe:            *recipe,
		IngredientMatches: results,
		TotalIngredients:  len(ingredients),
		ScaledServings:    scaledServings,
	}

	totalCost := decimal.Zero
	for _, res := range results {
		if res.Available {
			response.TotalAvailableIngredients++
		}
		if res.BestMatch != nil {
			totalCost = totalCost.Add(matchCost(*res.BestMatch))
		}
	}
	if len(ingredients) > 0 {
		pct := float64(response.TotalAvailableIngredients) / float64(len(ingredients)) * 100
		response.AvailabilityPercentage = int(math.Round(pct))
	}
	response.EstimatedTotalCost = totalCost.Round(2)

	// Engagement bump is best-effort; a failed counter never fails the match.
	if err := s.recipes.NotifyShopAttempt(ctx, recipeID); err != nil {
		s.logger.Warn("shop attempt notification failed",
			zap.String("recipeId", recipeID), zap.Error(err))
	}

	s.logger.Info("recipe matched",
		zap.String("recipeId", recipeID),
		zap.Int("ingredients", response.TotalIngredients),
		zap.Int("available", response.TotalAvailableIngredients))

	return response, nil
}

// matchIngredient retrieves and ranks candidates for one ingredient. A
// retrieval fault or timeout degrades this ingredient to an empty result
// instead of failing the recipe match.
func (s *MatchService) matchIngredient(ctx context.Context, ing domain.Ingredient) domain.IngredientMatchResult {
	rctx, cancel := context.WithTimeout(ctx, s.retrievalTimeout)
	defer cancel()

	result := domain.IngredientMatchResult{
		Ingredient: ing,
		Matches:    []domain.ProductMatch{},
	}

	candidates, err := s.retriever.FindCandidates(rctx, ing, s.maxResults)
	if err != nil {
		s.logger.Warn("candidate retrieval degraded",
			zap.String("ingredient", ing.Name), zap.Error(err))
		return result
	}

	matches := RankCandidates(candidates, ing, s.maxResults)
	result.Matches = matches
	if len(matches) > 0 {
		best := matches[0]
		result.BestMatch = &best
	}
	for _, m := range matches {
		if m.Offer.Availability {
			result.Available = true
			break
		}
	}
	return result
}

// matchCost estimates the spend for one best match: selling price times
// suggested quantity, reduced by the offer's active discount.
func matchCost(m domain.ProductMatch) decimal.Decimal {
	cost := m.Offer.SellingPrice.Mul(m.SuggestedQuantity)
	if m.Offer.DiscountPercent.IsPositive() {
		cost = cost.Mul(decimal.NewFromInt(100).Sub(m.Offer.DiscountPercent)).
			Div(decimal.NewFromInt(100))
	}
	return cost
}
