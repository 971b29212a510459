package memory

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/fashionhive/storefront/internal/domain"
	"github.com/fashionhive/storefront/internal/repository"
	"github.com/fashionhive/storefront/pkg/errors"
)

// Catalog is an in-memory CatalogRepository
type Catalog struct {
	mu          sync.RWMutex
	collections map[string][]*domain.Product
	rng         *rand.Rand
}

// NewCatalog creates an empty in-memory catalog
func NewCatalog() *Catalog {
	return &Catalog{
		collections: make(map[string][]*domain.Product),
		rng:         rand.New(rand.NewSource(1)),
	}
}

func (c *Catalog) ListCollections(ctx context.Context) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.collections))
	for name := range c.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (c *Catalog) FindProducts(ctx context.Context, collection string, filter repository.ProductFilter) ([]*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	var out []*domain.Product
	for _, p := range c.collections[collection] {
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		if search != "" {
			match := strings.Contains(strings.ToLower(p.Name), search)
			if !match && filter.SearchBrand {
				match = strings.Contains(strings.ToLower(p.Brand), search)
			}
			if !match {
				continue
			}
		}
		out = append(out, clone(p))
	}
	return out, nil
}

func (c *Catalog) FindProductByID(ctx context.Context, collection, id string) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.collections[collection] {
		if p.ID == id {
			return clone(p), nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "product", ID: id}
}

func (c *Catalog) CountProducts(ctx context.Context, collection string) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.collections[collection]), nil
}

func (c *Catalog) DistinctCategories(ctx context.Context, collection string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, p := range c.collections[collection] {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out, nil
}

func (c *Catalog) FirstProduct(ctx context.Context, collection string) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	products := c.collections[collection]
	if len(products) == 0 {
		return nil, &errors.ErrNotFound{Resource: "product", ID: collection}
	}
	return clone(products[0]), nil
}

func (c *Catalog) SampleProducts(ctx context.Context, collection string, n int) ([]*domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	products := c.collections[collection]
	perm := c.rng.Perm(len(products))
	if n > len(perm) {
		n = len(perm)
	}
	out := make([]*domain.Product, 0, n)
	for _, i := range perm[:n] {
		out = append(out, clone(products[i]))
	}
	return out, nil
}

func (c *Catalog) ResetCollection(ctx context.Context, collection string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.collections[collection] = []*domain.Product{}
	return nil
}

func (c *Catalog) InsertProducts(ctx context.Context, collection string, products []*domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range products {
		c.collections[collection] = append(c.collections[collection], clone(p))
	}
	return nil
}

func clone(p *domain.Product) *domain.Product {
	cp := *p
	cp.ImageURLs = append([]string(nil), p.ImageURLs...)
	cp.LegacyImages = append([]string(nil), p.LegacyImages...)
	return &cp
}
