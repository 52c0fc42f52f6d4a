package repository

import (
	"context"

	"ai-shopping-assistant/internal/model"
)

// ProductRepository is the structured catalog store.
type ProductRepository interface {
	// FindProducts executes a validated filter, capped at opt.Limit results.
	FindProducts(ctx context.Context, opt FindProductsOptions) ([]model.Product, error)

	// ListProducts streams the whole catalog in pages, for offline index builds.
	ListProducts(ctx context.Context, opt ListProductsOptions) ([]model.Product, error)
}

// VectorRepository is the similarity index over catalog items.
type VectorRepository interface {
	// EnsureCollection creates the backing collection when missing.
	EnsureCollection(ctx context.Context) error

	// IndexProducts embeds and upserts products into the index.
	IndexProducts(ctx context.Context, products []model.Product) error

	// SearchProducts runs nearest-neighbor retrieval for the query text.
	SearchProducts(ctx context.Context, opt SearchProductsOptions) ([]SearchResult, error)
}

// SearchResult is one similarity hit. Product carries the authoritative
// catalog fields from the index payload.
type SearchResult struct {
	Product model.Product
	Score   float64
}
