package qdrant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"ai-shopping-assistant/internal/model"
	"ai-shopping-assistant/internal/product/repository"
	pkgLog "ai-shopping-assistant/pkg/log"
	pkgQdrant "ai-shopping-assistant/pkg/qdrant"
	"ai-shopping-assistant/pkg/voyage"
)

const (
	// VectorSize matches the voyage-3 embedding dimension.
	VectorSize = 1024

	queryCacheSize = 512
	queryCacheTTL  = 10 * time.Minute
)

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       voyage.IVoyage
	collectionName string
	queryCache     *expirable.LRU[string, []float32]
	l              pkgLog.Logger
}

// New creates a Qdrant-backed product vector repository.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, collectionName string, l pkgLog.Logger) repository.VectorRepository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		queryCache:     expirable.NewLRU[string, []float32](queryCacheSize, nil, queryCacheTTL),
		l:              l,
	}
}

// EnsureCollection creates the product collection when missing.
func (r *implRepository) EnsureCollection(ctx context.Context) error {
	err := r.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: r.collectionName,
		Vectors: pkgQdrant.VectorConfig{
			Size:     VectorSize,
			Distance: "Cosine",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to ensure collection %q: %w", r.collectionName, err)
	}
	return nil
}

// IndexProducts embeds products in one batch and upserts them with the full
// catalog fields as payload, so search hits carry authoritative metadata.
func (r *implRepository) IndexProducts(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	texts := make([]string, len(products))
	for i, p := range products {
		texts[i] = buildEmbeddingText(p)
	}

	vectors, err := r.embedder.Embed(ctx, texts)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to generate embeddings: %v", err)
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}
	if len(vectors) != len(products) {
		return fmt.Errorf("embedding count mismatch: got %d for %d products", len(vectors), len(products))
	}

	points := make([]pkgQdrant.Point, len(products))
	for i, p := range products {
		points[i] = pkgQdrant.Point{
			ID:     productIDToUUID(p.ID),
			Vector: vectors[i],
			Payload: map[string]interface{}{
				"product_id":  p.ID,
				"title":       p.Title,
				"category":    p.Category,
				"subcategory": p.Subcategory,
				"brand":       p.Brand,
				"description": p.Description,
				"price":       p.Price,
				"images":      p.Images,
			},
		}
	}

	if err := r.client.UpsertPoints(ctx, r.collectionName, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to upsert points: %v", err)
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	r.l.Infof(ctx, "qdrant repository: indexed %d products", len(products))
	return nil
}

// SearchProducts embeds the query (cached) and runs nearest-neighbor search.
func (r *implRepository) SearchProducts(ctx context.Context, opt repository.SearchProductsOptions) ([]repository.SearchResult, error) {
	queryVector, err := r.embedQuery(ctx, opt.Query)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to generate query embedding: %v", err)
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = 5
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:      queryVector,
		Limit:       limit,
		WithPayload: true,
	})
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to search: %v", err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]repository.SearchResult, 0, len(resp.Result))
	var stale []string
	for _, scored := range resp.Result {
		product, ok := productFromPayload(scored.Payload)
		if !ok {
			r.l.Errorf(ctx, "qdrant repository: malformed payload for point %v: %+v", scored.ID, scored.Payload)
			stale = append(stale, scored.ID)
			continue
		}
		results = append(results, repository.SearchResult{
			Product: product,
			Score:   scored.Score,
		})
	}
	if len(stale) > 0 {
		// Points with unusable payload keep matching until someone removes
		// them; clean them up here so the next search is not polluted.
		if err := r.client.DeletePoints(ctx, r.collectionName, stale); err != nil {
			r.l.Warnf(ctx, "qdrant repository: failed to remove %d malformed points: %v", len(stale), err)
		} else {
			r.l.Infof(ctx, "qdrant repository: removed %d malformed points", len(stale))
		}
	}

	r.l.Infof(ctx, "qdrant repository: found %d results for query %q", len(results), opt.Query)
	return results, nil
}

func (r *implRepository) embedQuery(ctx context.Context, query string) ([]float32, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if vec, ok := r.queryCache.Get(key); ok {
		return vec, nil
	}

	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embedder returned no vectors")
	}

	r.queryCache.Add(key, vectors[0])
	return vectors[0], nil
}

// productIDToUUID maps a catalog ID to a deterministic UUID v5, since Qdrant
// only accepts UUID or uint64 point IDs.
func productIDToUUID(productID string) string {
	namespace := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8") // DNS namespace
	return uuid.NewSHA1(namespace, []byte(productID)).String()
}

// buildEmbeddingText joins the semantic text fields; image URLs are left out.
func buildEmbeddingText(p model.Product) string {
	parts := make([]string, 0, 5)
	for _, s := range []string{p.Title, p.Brand, p.Category, p.Subcategory, p.Description} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " | ")
}

// productFromPayload rebuilds the authoritative product from index metadata.
func productFromPayload(payload map[string]interface{}) (model.Product, bool) {
	id, ok := payload["product_id"].(string)
	if !ok || id == "" {
		return model.Product{}, false
	}

	p := model.Product{ID: id}
	p.Title, _ = payload["title"].(string)
	p.Category, _ = payload["category"].(string)
	p.Subcategory, _ = payload["subcategory"].(string)
	p.Brand, _ = payload["brand"].(string)
	p.Description, _ = payload["description"].(string)
	if price, ok := payload["price"].(float64); ok {
		p.Price = price
	}
	if raw, ok := payload["images"].([]interface{}); ok {
		for _, v := range raw {
			if s, ok := v.(string); ok {
				p.Images = append(p.Images, s)
			}
		}
	}
	return p, true
}
