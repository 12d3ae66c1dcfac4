package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/basketful/backend/internal/domain"
)

// Store is a thread-safe in-memory catalog used in development and tests.
// Search is a linear case-insensitive substring scan over product names and
// tags; any smarter backend (SQL LIKE, inverted index, remote service)
// satisfies the same interface.
type Store struct {
	mu       sync.RWMutex
	products map[string]domain.CatalogProduct
	offers   map[string][]domain.StockOffer // keyed by product id
	sellers  map[string]domain.Seller
}

// NewStore creates an empty catalog store.
func NewStore() *Store {
	return &Store{
		products: make(map[string]domain.CatalogProduct),
		offers:   make(map[string][]domain.StockOffer),
		sellers:  make(map[string]domain.Seller),
	}
}

// AddSeller registers a seller.
func (s *Store) AddSeller(seller domain.Seller) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sellers[seller.ID] = seller
}

// AddProduct registers a product.
func (s *Store) AddProduct(product domain.CatalogProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ID] = product
}

// AddOffer attaches a seller's offer to a product.
func (s *Store) AddOffer(productID string, offer domain.StockOffer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers[productID] = append(s.offers[productID], offer)
}

// GetProductByID returns the product or ErrProductNotFound.
func (s *Store) GetProductByID(ctx context.Context, id string) (*domain.CatalogProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &product, nil
}

// GetActiveOffers returns the product's available, in-stock offers.
func (s *Store) GetActiveOffers(ctx context.Context, productID string) ([]domain.StockOffer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var active []domain.StockOffer
	for _, offer := range s.offers[productID] {
		if offer.Availability && offer.CurrentStock > 0 {
			active = append(active, offer)
		}
	}
	return active, nil
}

// SearchActiveProducts scans active products whose name or tags contain the
// term and joins each hit to its available, in-stock offers grouped per
// seller. Results are ordered by product id for determinism.
func (s *Store) SearchActiveProducts(ctx context.Context, term string) ([]domain.ProductListing, error) {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.products))
	for id := range s.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var listings []domain.ProductListing
	for _, id := range ids {
		product := s.products[id]
		if !product.Active || !matchesTerm(product, needle) {
			continue
		}

		bySeller := make(map[string][]domain.StockOffer)
		var sellerIDs []string
		for _, offer := range s.offers[id] {
			if !offer.Availability || offer.CurrentStock <= 0 {
				continue
			}
			if _, ok := bySeller[offer.SellerID]; !ok {
				sellerIDs = append(sellerIDs, offer.SellerID)
			}
			bySeller[offer.SellerID] = append(bySeller[offer.SellerID], offer)
		}

		for _, sellerID := range sellerIDs {
			listings = append(listings, domain.ProductListing{
				Product: product,
				Offers:  bySeller[sellerID],
				Seller:  s.sellers[sellerID],
			})
		}
	}
	return listings, nil
}

func matchesTerm(product domain.CatalogProduct, needle string) bool {
	if strings.Contains(strings.ToLower(product.Name), needle) {
		return true
	}
	for _, tag := range product.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
