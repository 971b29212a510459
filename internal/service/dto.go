package service

import "github.com/fashionhive/storefront/internal/domain"

const (
	DefaultPage          = 1
	DefaultLimit         = 20
	MaxLimit             = 100
	DefaultFeaturedLimit = 8
)

// ProductQuery represents the listing filters accepted by the product endpoints
type ProductQuery struct {
	Category string           `form:"category"`
	Brand    string           `form:"brand"`
	Search   string           `form:"search"`
	MinPrice *float64         `form:"minPrice" binding:"omitempty,min=0"`
	MaxPrice *float64         `form:"maxPrice" binding:"omitempty,min=0"`
	Page     int              `form:"page" binding:"omitempty,min=1"`
	Limit    int              `form:"limit" binding:"omitempty,min=1"`
	Sort     domain.SortOrder `form:"sort"`
}

// normalize fills defaults and clamps the page size
func (q ProductQuery) normalize() ProductQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	q.Sort = q.Sort.Normalize()
	return q
}

// FeaturedQuery represents the featured products request
type FeaturedQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ProductPage is one page of a product listing
type ProductPage struct {
	Count   int               `json:"count"`
	Total   int               `json:"total"`
	Page    int               `json:"page"`
	Pages   int               `json:"pages"`
	HasMore bool              `json:"hasMore"`
	Data    []*domain.Product `json:"data"`
}

// BrandSummary describes the brand a listing was scoped to
type BrandSummary struct {
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	ProductCount int      `json:"productCount"`
	Categories   []string `json:"categories"`
}

// BrandProductPage is a product page scoped to one brand
type BrandProductPage struct {
	Brand BrandSummary `json:"brand"`
	ProductPage
}
