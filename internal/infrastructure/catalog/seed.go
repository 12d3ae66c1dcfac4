package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/basketful/backend/internal/domain"
)

// Seed fills the store with a small sample catalog for development mode.
func Seed(store *Store) {
	freshFarms := domain.Seller{ID: uuid.NewString(), Name: "Fresh Farms"}
	dailyMandi := domain.Seller{ID: uuid.NewString(), Name: "Daily Mandi"}
	store.AddSeller(freshFarms)
	store.AddSeller(dailyMandi)

	tomatoes := domain.CatalogProduct{
		ID:       "prod-tomato",
		Name:     "Tomatoes",
		Category: domain.Category{Name: "Vegetables", Parent: "Produce"},
		Unit:     "kg",
		Tags:     []string{"tomato", "fresh", "salad"},
		Active:   true,
	}
	milk := domain.CatalogProduct{
		ID:       "prod-milk",
		Name:     "Toned Milk",
		Category: domain.Category{Name: "Dairy"},
		Unit:     "ml",
		Tags:     []string{"milk", "dairy"},
		Active:   true,
	}
	onions := domain.CatalogProduct{
		ID:       "prod-onion",
		Name:     "Red Onions",
		Category: domain.Category{Name: "Vegetables", Parent: "Produce"},
		Unit:     "kg",
		Tags:     []string{"onion"},
		Active:   true,
	}
	store.AddProduct(tomatoes)
	store.AddProduct(milk)
	store.AddProduct(onions)

	store.AddOffer(tomatoes.ID, domain.StockOffer{
		ID:           uuid.NewString(),
		SellerID:     freshFarms.ID,
		SellingPrice: decimal.NewFromInt(30),
		CurrentStock: 120,
		Availability: true,
	})
	store.AddOffer(tomatoes.ID, domain.StockOffer{
		ID:              uuid.NewString(),
		SellerID:        dailyMandi.ID,
		SellingPrice:    decimal.NewFromInt(35),
		CurrentStock:    80,
		Availability:    true,
		DiscountPercent: decimal.NewFromInt(10),
	})
	store.AddOffer(milk.ID, domain.StockOffer{
		ID:           uuid.NewString(),
		SellerID:     dailyMandi.ID,
		SellingPrice: decimal.RequireFromString("0.06"),
		CurrentStock: 5000,
		Availability: true,
	})
	store.AddOffer(onions.ID, domain.StockOffer{
		ID:           uuid.NewString(),
		SellerID:     freshFarms.ID,
		SellingPrice: decimal.NewFromInt(25),
		CurrentStock: 200,
		Availability: true,
	})
}
