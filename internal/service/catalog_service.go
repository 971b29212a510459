package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fashionhive/storefront/internal/domain"
	"github.com/fashionhive/storefront/internal/repository"
	"github.com/fashionhive/storefront/pkg/errors"
)

// brandLookupConcurrency bounds the per-brand queries ListBrands runs at once.
const brandLookupConcurrency = 8

// shuffle is swapped in tests to make featured selections deterministic.
var shuffle = rand.Shuffle

type catalogService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repos *repository.Repositories, logger *zap.Logger) *catalogService {
	return &catalogService{
		repos:  repos,
		logger: logger,
	}
}

// ListProducts lists products across every brand collection, or across the
// single collection named by query.Brand.
func (s *catalogService) ListProducts(ctx context.Context, query ProductQuery) (*ProductPage, error) {
	query = query.normalize()

	collections, err := s.repos.Catalog.ListCollections(ctx)
	if err != nil {
		s.logger.Error("Failed to list brand collections", zap.Error(err))
		return nil, fmt.Errorf("failed to list brand collections: %w", err)
	}

	targets := collections
	if query.Brand != "" {
		match, ok := matchCollection(collections, query.Brand)
		if !ok {
			return paginate(nil, query), nil
		}
		targets = []string{match}
	}

	filter := repository.ProductFilter{
		Category:    query.Category,
		Search:      query.Search,
		SearchBrand: true,
	}

	var products []*domain.Product
	for _, collection := range targets {
		found, err := s.findAnnotated(ctx, collection, filter)
		if err != nil {
			return nil, err
		}
		products = append(products, found...)
	}

	products = filterByPrice(products, query.MinPrice, query.MaxPrice)
	sortProducts(products, query.Sort)
	return paginate(products, query), nil
}

// ListBrandProducts lists the products of one brand. The brand name matches
// exactly first, then case-insensitively.
func (s *catalogService) ListBrandProducts(ctx context.Context, brandName string, query ProductQuery) (*BrandProductPage, error) {
	query = query.normalize()

	collections, err := s.repos.Catalog.ListCollections(ctx)
	if err != nil {
		s.logger.Error("Failed to list brand collections", zap.Error(err))
		return nil, fmt.Errorf("failed to list brand collections: %w", err)
	}

	collection, ok := matchCollection(collections, brandName)
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "brand", ID: brandName, Available: collections}
	}

	products, err := s.findAnnotated(ctx, collection, repository.ProductFilter{
		Category: query.Category,
		Search:   query.Search,
	})
	if err != nil {
		return nil, err
	}
	products = filterByPrice(products, query.MinPrice, query.MaxPrice)
	sortProducts(products, query.Sort)

	count, err := s.repos.Catalog.CountProducts(ctx, collection)
	if err != nil {
		s.logger.Error("Failed to count brand products", zap.Error(err), zap.String("brand", collection))
		return nil, fmt.Errorf("failed to count products of %s: %w", collection, err)
	}
	categories, err := s.repos.Catalog.DistinctCategories(ctx, collection)
	if err != nil {
		s.logger.Error("Failed to list brand categories", zap.Error(err), zap.String("brand", collection))
		return nil, fmt.Errorf("failed to list categories of %s: %w", collection, err)
	}
	if categories == nil {
		categories = []string{}
	}

	return &BrandProductPage{
		Brand: BrandSummary{
			Name:         collection,
			Slug:         strings.ToLower(collection),
			ProductCount: count,
			Categories:   categories,
		},
		ProductPage: *paginate(products, query),
	}, nil
}

// GetProduct finds a product by ID in whichever collection holds it
func (s *catalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &errors.ErrValidation{Field: "id", Message: "Invalid product ID format"}
	}

	collections, err := s.repos.Catalog.ListCollections(ctx)
	if err != nil {
		s.logger.Error("Failed to list brand collections", zap.Error(err))
		return nil, fmt.Errorf("failed to list brand collections: %w", err)
	}

	for _, collection := range collections {
		product, err := s.repos.Catalog.FindProductByID(ctx, collection, id)
		if err != nil {
			var notFound *errors.ErrNotFound
			if stderrors.As(err, &notFound) {
				continue
			}
			s.logger.Error("Failed to get product", zap.Error(err), zap.String("product_id", id), zap.String("brand", collection))
			return nil, fmt.Errorf("failed to get product: %w", err)
		}
		product.Annotate(collection)
		return product, nil
	}

	return nil, &errors.ErrNotFound{Resource: "product", ID: id}
}

// ListBrands summarizes every brand collection. Collections are summarized
// concurrently; the result keeps collection order.
func (s *catalogService) ListBrands(ctx context.Context) ([]*domain.Brand, error) {
	collections, err := s.repos.Catalog.ListCollections(ctx)
	if err != nil {
		s.logger.Error("Failed to list brand collections", zap.Error(err))
		return nil, fmt.Errorf("failed to list brand collections: %w", err)
	}

	brands := make([]*domain.Brand, len(collections))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(brandLookupConcurrency)
	for i, collection := range collections {
		g.Go(func() error {
			brand, err := s.summarize(gctx, collection)
			if err != nil {
				return err
			}
			brands[i] = brand
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return brands, nil
}

// GetBrand summarizes one brand, matched case-insensitively
func (s *catalogService) GetBrand(ctx context.Context, name string) (*domain.Brand, error) {
	collections, err := s.repos.Catalog.ListCollections(ctx)
	if err != nil {
		s.logger.Error("Failed to list brand collections", zap.Error(err))
		return nil, fmt.Errorf("failed to list brand collections: %w", err)
	}

	for _, collection := range collections {
		if strings.EqualFold(collection, name) {
			return s.summarize(ctx, collection)
		}
	}
	return nil, &errors.ErrNotFound{Resource: "brand", ID: name, Available: collections}
}

// ListCategories returns the sorted union of categories across all brands
func (s *catalogService) ListCategories(ctx context.Context) ([]string, error) {
	collections, err := s.repos.Catalog.ListCollections(ctx)
	if err != nil {
		s.logger.Error("Failed to list brand collections", zap.Error(err))
		return nil, fmt.Errorf("failed to list brand collections: %w", err)
	}

	seen := make(map[string]bool)
	categories := []string{}
	for _, collection := range collections {
		found, err := s.repos.Catalog.DistinctCategories(ctx, collection)
		if err != nil {
			s.logger.Error("Failed to list brand categories", zap.Error(err), zap.String("brand", collection))
			return nil, fmt.Errorf("failed to list categories of %s: %w", collection, err)
		}
		for _, category := range found {
			if category == "" || seen[category] {
				continue
			}
			seen[category] = true
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// FeaturedProducts draws a random sample spread evenly over the brands,
// shuffles it and returns at most limit products.
func (s *catalogService) FeaturedProducts(ctx context.Context, limit int) ([]*domain.Product, error) {
	if limit < 1 {
		limit = DefaultFeaturedLimit
	}

	collections, err := s.repos.Catalog.ListCollections(ctx)
	if err != nil {
		s.logger.Error("Failed to list brand collections", zap.Error(err))
		return nil, fmt.Errorf("failed to list brand collections: %w", err)
	}
	featured := []*domain.Product{}
	if len(collections) == 0 {
		return featured, nil
	}

	perBrand := int(math.Ceil(float64(limit) / float64(len(collections))))
	for _, collection := range collections {
		sample, err := s.repos.Catalog.SampleProducts(ctx, collection, perBrand)
		if err != nil {
			s.logger.Error("Failed to sample brand products", zap.Error(err), zap.String("brand", collection))
			return nil, fmt.Errorf("failed to sample products of %s: %w", collection, err)
		}
		for _, p := range sample {
			p.Annotate(collection)
		}
		featured = append(featured, sample...)
	}

	shuffle(len(featured), func(i, j int) {
		featured[i], featured[j] = featured[j], featured[i]
	})
	if len(featured) > limit {
		featured = featured[:limit]
	}
	return featured, nil
}

func (s *catalogService) findAnnotated(ctx context.Context, collection string, filter repository.ProductFilter) ([]*domain.Product, error) {
	products, err := s.repos.Catalog.FindProducts(ctx, collection, filter)
	if err != nil {
		s.logger.Error("Failed to find products", zap.Error(err), zap.String("brand", collection))
		return nil, fmt.Errorf("failed to find products of %s: %w", collection, err)
	}
	for _, p := range products {
		p.Annotate(collection)
	}
	return products, nil
}

func (s *catalogService) summarize(ctx context.Context, collection string) (*domain.Brand, error) {
	count, err := s.repos.Catalog.CountProducts(ctx, collection)
	if err != nil {
		s.logger.Error("Failed to count brand products", zap.Error(err), zap.String("brand", collection))
		return nil, fmt.Errorf("failed to count products of %s: %w", collection, err)
	}
	categories, err := s.repos.Catalog.DistinctCategories(ctx, collection)
	if err != nil {
		s.logger.Error("Failed to list brand categories", zap.Error(err), zap.String("brand", collection))
		return nil, fmt.Errorf("failed to list categories of %s: %w", collection, err)
	}

	var cover string
	first, err := s.repos.Catalog.FirstProduct(ctx, collection)
	if err != nil {
		var notFound *errors.ErrNotFound
		if !stderrors.As(err, &notFound) {
			s.logger.Error("Failed to get brand cover product", zap.Error(err), zap.String("brand", collection))
			return nil, fmt.Errorf("failed to get cover product of %s: %w", collection, err)
		}
	} else {
		cover = first.CoverImage()
	}

	return domain.NewBrand(collection, count, categories, cover), nil
}

// matchCollection resolves a brand name to a collection, preferring an exact
// match over a case-insensitive one.
func matchCollection(collections []string, name string) (string, bool) {
	for _, c := range collections {
		if c == name {
			return c, true
		}
	}
	for _, c := range collections {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}

func filterByPrice(products []*domain.Product, min, max *float64) []*domain.Product {
	if min == nil && max == nil {
		return products
	}
	out := products[:0]
	for _, p := range products {
		if min != nil && p.NumericPrice < *min {
			continue
		}
		if max != nil && p.NumericPrice > *max {
			continue
		}
		out = append(out, p)
	}
	return out
}

func sortProducts(products []*domain.Product, order domain.SortOrder) {
	var less func(a, b *domain.Product) bool
	switch order {
	case domain.SortPriceAsc:
		less = func(a, b *domain.Product) bool { return a.NumericPrice < b.NumericPrice }
	case domain.SortPriceDesc:
		less = func(a, b *domain.Product) bool { return a.NumericPrice > b.NumericPrice }
	case domain.SortNameAsc:
		less = func(a, b *domain.Product) bool { return compareNames(a.Name, b.Name) < 0 }
	case domain.SortNameDesc:
		less = func(a, b *domain.Product) bool { return compareNames(a.Name, b.Name) > 0 }
	default:
		less = func(a, b *domain.Product) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID > b.ID
		}
	}
	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
}

func compareNames(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func paginate(products []*domain.Product, query ProductQuery) *ProductPage {
	total := len(products)
	pages := int(math.Ceil(float64(total) / float64(query.Limit)))

	// pages past the end are empty; compare before multiplying so a huge
	// page number cannot overflow
	start := total
	if query.Page-1 <= total/query.Limit {
		start = min((query.Page-1)*query.Limit, total)
	}
	end := start + query.Limit
	if end > total {
		end = total
	}

	data := make([]*domain.Product, end-start)
	copy(data, products[start:end])

	return &ProductPage{
		Count:   len(data),
		Total:   total,
		Page:    query.Page,
		Pages:   pages,
		HasMore: query.Page < pages,
		Data:    data,
	}
}
