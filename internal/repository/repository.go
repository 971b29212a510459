package repository

import (
	"context"

	"github.com/fashionhive/storefront/internal/domain"
)

// ProductFilter narrows a product lookup inside one brand collection
type ProductFilter struct {
	// Category matches case-insensitively and exactly.
	Category string
	// Search matches a case-insensitive substring of the product name.
	Search string
	// SearchBrand extends Search to the brand field.
	SearchBrand bool
}

// CatalogRepository reads and seeds per-brand product collections. Products
// are returned as stored; callers annotate them with the collection name.
type CatalogRepository interface {
	ListCollections(ctx context.Context) ([]string, error)
	FindProducts(ctx context.Context, collection string, filter ProductFilter) ([]*domain.Product, error)
	FindProductByID(ctx context.Context, collection, id string) (*domain.Product, error)
	CountProducts(ctx context.Context, collection string) (int, error)
	DistinctCategories(ctx context.Context, collection string) ([]string, error)
	FirstProduct(ctx context.Context, collection string) (*domain.Product, error)
	SampleProducts(ctx context.Context, collection string, n int) ([]*domain.Product, error)
	ResetCollection(ctx context.Context, collection string) error
	InsertProducts(ctx context.Context, collection string, products []*domain.Product) error
}

// Repositories holds all repositories
type Repositories struct {
	Catalog CatalogRepository
}
