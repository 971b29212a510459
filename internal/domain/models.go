package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/fashionhive/storefront/internal/pricing"
)

// Product represents a catalog record from one brand collection
type Product struct {
	ID              string        `json:"_id"`
	Name            string        `json:"name"`
	Price           pricing.Price `json:"price"`
	ImageURLs       []string      `json:"image_urls"`
	LegacyImages    []string      `json:"images,omitempty"`
	Category        string        `json:"category,omitempty"`
	Brand           string        `json:"brand,omitempty"`
	BrandCollection string        `json:"brandCollection,omitempty"`
	NumericPrice    float64       `json:"numericPrice"`
	ProductURL      string        `json:"product_url,omitempty"`
	Details         string        `json:"details,omitempty"`
	Sizes           []string      `json:"sizes,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// Images returns the product gallery, preferring image_urls over the older
// images field. Never nil.
func (p *Product) Images() []string {
	if len(p.ImageURLs) > 0 {
		return p.ImageURLs
	}
	if len(p.LegacyImages) > 0 {
		return p.LegacyImages
	}
	return []string{}
}

// BrandName returns the owning brand collection, falling back to the brand field.
func (p *Product) BrandName() string {
	if p.BrandCollection != "" {
		return p.BrandCollection
	}
	return p.Brand
}

// Annotate stamps the fields the API derives from the collection a product was
// read from.
func (p *Product) Annotate(collection string) {
	p.BrandCollection = collection
	p.NumericPrice = p.Price.Amount()
	p.Sizes = SizesForCategory(p.Category)
	if p.ImageURLs == nil {
		p.ImageURLs = []string{}
	}
}

// CoverImage returns the first gallery image, or "" for none.
func (p *Product) CoverImage() string {
	if images := p.Images(); len(images) > 0 {
		return images[0]
	}
	return ""
}

// Brand represents a brand collection and its catalog summary
type Brand struct {
	ID           string   `json:"_id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	ProductCount int      `json:"productCount"`
	Categories   []string `json:"categories"`
	CoverImage   *string  `json:"coverImage"`
	Description  string   `json:"description"`
}

// NewBrand builds the summary for a collection.
func NewBrand(collection string, productCount int, categories []string, coverImage string) *Brand {
	if categories == nil {
		categories = []string{}
	}
	b := &Brand{
		ID:           collection,
		Name:         collection,
		Slug:         strings.ToLower(collection),
		ProductCount: productCount,
		Categories:   categories,
		Description:  fmt.Sprintf("Explore %s's latest collection", collection),
	}
	if coverImage != "" {
		b.CoverImage = &coverImage
	}
	return b
}

var (
	kidsSizes       = []string{"2-3Y", "4-5Y", "6-7Y", "8-9Y", "10-11Y", "12-13Y"}
	unstitchedSizes = []string{"Standard"}
	standardSizes   = []string{"XS", "S", "M", "L", "XL", "XXL"}
)

// SizesForCategory returns the sizes a shopper can pick for a category.
func SizesForCategory(category string) []string {
	cat := strings.ToLower(category)
	var sizes []string
	switch {
	case strings.Contains(cat, "kid"):
		sizes = kidsSizes
	case strings.Contains(cat, "unstitched"):
		sizes = unstitchedSizes
	default:
		sizes = standardSizes
	}
	return append([]string(nil), sizes...)
}

// OffersSize reports whether size is one of the product's selectable sizes.
func (p *Product) OffersSize(size string) bool {
	sizes := p.Sizes
	if len(sizes) == 0 {
		sizes = SizesForCategory(p.Category)
	}
	for _, s := range sizes {
		if s == size {
			return true
		}
	}
	return false
}
