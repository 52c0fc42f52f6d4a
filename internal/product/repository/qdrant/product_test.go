package qdrant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-shopping-assistant/internal/product/repository"
	"ai-shopping-assistant/pkg/log"
	pkgQdrant "ai-shopping-assistant/pkg/qdrant"
)

type fakeEmbedder struct{}

func (fakeEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i := range vectors {
		vectors[i] = make([]float32, VectorSize)
	}
	return vectors, nil
}

func TestSearchProductsPrunesMalformedPoints(t *testing.T) {
	var deleted []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/points/search"):
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"result": [
					{"id": "good", "score": 0.9, "payload": {
						"product_id": "p1", "title": "Denim Jacket", "category": "apparel",
						"subcategory": "jackets", "brand": "Levi", "description": "classic",
						"price": 40, "images": ["https://cdn/p1.jpg"]
					}},
					{"id": "zombie", "score": 0.8, "payload": {"title": "no product_id"}}
				],
				"status": "ok"
			}`))
		case strings.HasSuffix(r.URL.Path, "/points/delete"):
			var req pkgQdrant.DeletePointsRequest
			json.NewDecoder(r.Body).Decode(&req)
			deleted = append(deleted, req.Points...)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status": "ok"}`))
		default:
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	repo := New(pkgQdrant.NewClient(ts.URL), fakeEmbedder{}, "products", log.NewNop())

	results, err := repo.SearchProducts(context.Background(), repository.SearchProductsOptions{Query: "jacket", Limit: 5})
	if err != nil {
		t.Fatalf("SearchProducts: %v", err)
	}
	if len(results) != 1 || results[0].Product.ID != "p1" {
		t.Fatalf("expected only the well-formed hit, got %#v", results)
	}
	if len(deleted) != 1 || deleted[0] != "zombie" {
		t.Errorf("expected the malformed point to be deleted, got %v", deleted)
	}
}

func TestSearchProductsDeleteFailureDoesNotAbort(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/points/search"):
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"result": [{"id": "zombie", "score": 0.8, "payload": {}}],
				"status": "ok"
			}`))
		case strings.HasSuffix(r.URL.Path, "/points/delete"):
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	repo := New(pkgQdrant.NewClient(ts.URL), fakeEmbedder{}, "products", log.NewNop())

	results, err := repo.SearchProducts(context.Background(), repository.SearchProductsOptions{Query: "jacket"})
	if err != nil {
		t.Fatalf("SearchProducts: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no usable hits, got %#v", results)
	}
}
