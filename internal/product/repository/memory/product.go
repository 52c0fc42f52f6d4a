package memory

import (
	"context"
	"fmt"
	"sync"

	"ai-shopping-assistant/internal/model"
	"ai-shopping-assistant/internal/product/repository"
)

// Repository is an in-memory product store. It backs tests and the JSON-file
// path of the offline indexer; the request path normally uses Mongo.
type Repository struct {
	mu       sync.RWMutex
	products []model.Product
}

var _ repository.ProductRepository = (*Repository)(nil)

// New creates an in-memory repository seeded with the given products.
func New(products []model.Product) *Repository {
	return &Repository{products: products}
}

// Add appends products to the store.
func (r *Repository) Add(products ...model.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, products...)
}

// FindProducts evaluates the filter in process.
func (r *Repository) FindProducts(ctx context.Context, opt repository.FindProductsOptions) ([]model.Product, error) {
	if err := opt.Filter.Validate(); err != nil {
		return nil, fmt.Errorf("memory repository: invalid filter: %w", err)
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = 5
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]model.Product, 0, limit)
	for _, p := range r.products {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if opt.Filter.Match(p) {
			results = append(results, p)
			if len(results) >= limit {
				break
			}
		}
	}
	return results, nil
}

// ListProducts returns a page of the catalog.
func (r *Repository) ListProducts(ctx context.Context, opt repository.ListProductsOptions) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if opt.Offset >= len(r.products) {
		return []model.Product{}, nil
	}

	end := len(r.products)
	if opt.Limit > 0 && opt.Offset+opt.Limit < end {
		end = opt.Offset + opt.Limit
	}

	page := make([]model.Product, end-opt.Offset)
	copy(page, r.products[opt.Offset:end])
	return page, nil
}
