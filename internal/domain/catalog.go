package domain

import "github.com/shopspring/decimal"

// Category classifies a catalog product, optionally under a parent.
type Category struct {
	Name   string `json:"name"`
	Parent string `json:"parentCategory,omitempty"`
}

// CatalogProduct is a sellable item owned by the catalog service.
// The matching engine reads it and never writes it back.
type CatalogProduct struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Unit     string   `json:"unit"`
	Tags     []string `json:"tags,omitempty"`
	Images   []string `json:"images,omitempty"`
	Active   bool     `json:"active"`
}

// StockOffer is one seller's ability to fulfill a product. Several sellers
// may offer the same product. DiscountPercent of zero means no active
// discount.
type StockOffer struct {
	ID              string          `json:"id"`
	SellerID        string          `json:"sellerId"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	CurrentStock    int             `json:"currentStock"`
	Availability    bool            `json:"availability"`
	DiscountPercent decimal.Decimal `json:"activeDiscountPercent"`
}

// Seller identifies the vendor owning an offer.
type Seller struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductListing is one row of a catalog search: an active product joined
// to one seller's available, in-stock offers.
type ProductListing struct {
	Product CatalogProduct `json:"product"`
	Offers  []StockOffer   `json:"offers"`
	Seller  Seller         `json:"seller"`
}

// Candidate is a raw (product, offer) pair retrieved as a possible
// fulfillment of an ingredient, already scored but not yet ranked.
type Candidate struct {
	Product CatalogProduct
	Offer   StockOffer
	Score   int
	Reason  MatchReason
}
