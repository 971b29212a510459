package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/fashionhive/storefront/internal/domain"
	"github.com/fashionhive/storefront/internal/pricing"
)

// feedRecord is one product as scraped from a brand storefront
type feedRecord struct {
	Name          string        `json:"name"`
	Price         pricing.Price `json:"price"`
	SalePrice     pricing.Price `json:"sale_price"`
	OriginalPrice pricing.Price `json:"original_price"`
	ImageURLs     []string      `json:"image_urls"`
	Images        []string      `json:"images"`
	Category      string        `json:"category"`
	ProductURL    string        `json:"product_url"`
	Details       string        `json:"details"`
}

// loadFeed reads a brand feed file and turns every record into a product of
// collection.
func loadFeed(path, collection string, now time.Time) ([]*domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	var records []feedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", path, err)
	}

	products := make([]*domain.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, &domain.Product{
			ID:           uuid.New().String(),
			Name:         rec.Name,
			Price:        firstPrice(rec.Price, rec.SalePrice, rec.OriginalPrice),
			ImageURLs:    rec.ImageURLs,
			LegacyImages: rec.Images,
			Category:     rec.Category,
			Brand:        collection,
			ProductURL:   rec.ProductURL,
			Details:      rec.Details,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return products, nil
}

// firstPrice returns the first price that carries a value. An empty string
// or a bare zero counts as missing.
func firstPrice(prices ...pricing.Price) pricing.Price {
	for _, p := range prices {
		if p.IsZero() || p.String() == "" {
			continue
		}
		if p.IsNumber() && p.Amount() == 0 {
			continue
		}
		return p
	}
	return pricing.Price{}
}
