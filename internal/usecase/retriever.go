package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/basketful/backend/internal/domain"
)

// Retrieval policy defaults. These are tuned values, not derived from data;
// all of them are overridable through RetrieverConfig.
const (
	defaultMinScore         = 50
	defaultCategoryBoost    = 15
	defaultCategoryBoostMin = 70
	defaultSearchCacheTTL   = 5 * time.Minute
)

// RetrieverConfig holds configuration for the candidate retriever.
type RetrieverConfig struct {
	MinScore         int
	CategoryBoost    int
	CategoryBoostMin int
	SearchCacheTTL   time.Duration
}

// CandidateRetriever queries the catalog in two tiers. Tier one resolves a
// pre-mapped product id to all of its available offers with an unconditional
// score of 100. Tier two runs fuzzy name/synonym searches and keeps only
// candidates whose similarity score clears the threshold.
type CandidateRetriever struct {
	catalog domain.CatalogRepository
	cache   domain.CacheRepository // optional; nil disables search caching
	scorer  *Scorer
	logger  *zap.Logger

	minScore         int
	categoryBoost    int
	categoryBoostMin int
	cacheTTL         time.Duration
}

// NewCandidateRetriever creates a retriever with the given collaborators.
// Zero config values fall back to the package defaults.
func NewCandidateRetriever(
	catalog domain.CatalogRepository,
	cache domain.CacheRepository,
	scorer *Scorer,
	logger *zap.Logger,
	cfg RetrieverConfig,
) *CandidateRetriever {
	minScore := cfg.MinScore
	if minScore <= 0 || minScore > 100 {
		minScore = defaultMinScore
	}
	boost := cfg.CategoryBoost
	if boost <= 0 {
		boost = defaultCategoryBoost
	}
	boostMin := cfg.CategoryBoostMin
	if boostMin <= 0 || boostMin > 100 {
		boostMin = defaultCategoryBoostMin
	}
	ttl := cfg.SearchCacheTTL
	if ttl <= 0 {
		ttl = defaultSearchCacheTTL
	}

	return &CandidateRetriever{
		catalog:          catalog,
		cache:            cache,
		scorer:           scorer,
		logger:           logger,
		minScore:         minScore,
		categoryBoost:    boost,
		categoryBoostMin: boostMin,
		cacheTTL:         ttl,
	}
}

// FindCandidates returns raw scored (product, offer) candidates for one
// ingredient. Errors from the catalog collaborator propagate so the
// aggregator can degrade just this ingredient.
func (r *CandidateRetriever) FindCandidates(ctx context.Context, ing domain.Ingredient, maxResults int) ([]domain.Candidate, error) {
	var candidates []domain.Candidate

	if ing.ProductID != "" {
		preMapped, err := r.preMappedCandidates(ctx, ing.ProductID)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, preMapped...)
	}

	// The fuzzy tier only runs when the pre-mapped tier left room under
	// the cap. Within the tier every search term is queried; ranking and
	// truncation happen downstream so a later synonym can still win.
	if len(candidates) < maxResults {
		terms := append([]string{ing.Name}, ing.SearchTerms...)
		for _, term := range terms {
			term = strings.TrimSpace(term)
			if term == "" {
				continue
			}
			listings, err := r.searchWithCache(ctx, term)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, r.scoreListings(ing, listings)...)
		}
	}

	return candidates, nil
}

// preMappedCandidates resolves an explicit product mapping. A pre-mapped id
// that no longer exists or is inactive yields no candidates rather than an
// error, so the fuzzy tier can still try the ingredient name.
func (r *CandidateRetriever) preMappedCandidates(ctx context.Context, productID string) ([]domain.Candidate, error) {
	product, err := r.catalog.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			r.logger.Warn("pre-mapped product missing from catalog", zap.String("productId", productID))
			return nil, nil
		}
		return nil, err
	}
	if !product.Active {
		return nil, nil
	}

	offers, err := r.catalog.GetActiveOffers(ctx, productID)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.Candidate, 0, len(offers))
	for _, offer := range offers {
		candidates = append(candidates, domain.Candidate{
			Product: *product,
			Offer:   offer,
			Score:   100,
			Reason:  domain.MatchPreMapped,
		})
	}
	return candidates, nil
}

// scoreListings scores search results against the ingredient name, applies
// the category boost and drops everything below the usable-match threshold.
func (r *CandidateRetriever) scoreListings(ing domain.Ingredient, listings []domain.ProductListing) []domain.Candidate {
	var candidates []domain.Candidate
	for _, listing := range listings {
		score := r.scorer.Score(ing.Name, listing.Product.Name)

		// Score is symmetric, so one comparison covers "both score >= min
		// against each other".
		if ing.Category != "" && r.scorer.Score(ing.Category, listing.Product.Category.Name) >= r.categoryBoostMin {
			score += r.categoryBoost
			if score > 100 {
				score = 100
			}
		}

		if score < r.minScore {
			continue
		}

		reason := domain.MatchNameSimilarity
		if score == 100 {
			reason = domain.MatchExactName
		}

		for _, offer := range listing.Offers {
			candidates = append(candidates, domain.Candidate{
				Product: listing.Product,
				Offer:   offer,
				Score:   score,
				Reason:  reason,
			})
		}
	}
	return candidates
}

// searchWithCache serves catalog searches through the cache when one is
// configured. Cache faults fall back to a live query; a failed write is
// logged and ignored.
func (r *CandidateRetriever) searchWithCache(ctx context.Context, term string) ([]domain.ProductListing, error) {
	if r.cache == nil {
		return r.catalog.SearchActiveProducts(ctx, term)
	}

	key := searchCacheKey(term)
	if raw, err := r.cache.Get(ctx, key); err == nil {
		var listings []domain.ProductListing
		if err := json.Unmarshal(raw, &listings); err == nil {
			return listings, nil
		}
		r.logger.Warn("dropping undecodable search cache entry", zap.String("key", key))
		_ = r.cache.Delete(ctx, key)
	}

	listings, err := r.catalog.SearchActiveProducts(ctx, term)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(listings); err == nil {
		if err := r.cache.Set(ctx, key, raw, r.cacheTTL); err != nil {
			r.logger.Warn("failed to cache search results", zap.String("key", key), zap.Error(err))
		}
	}
	return listings, nil
}

func searchCacheKey(term string) string {
	return fmt.Sprintf("catalog:search:%s", strings.ToLower(strings.TrimSpace(term)))
}
