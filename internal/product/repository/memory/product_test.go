package memory

import (
	"context"
	"testing"

	"ai-shopping-assistant/internal/model"
	"ai-shopping-assistant/internal/product/repository"
)

func seeded() *Repository {
	return New([]model.Product{
		{ID: "p1", Title: "Trail Running Shoes", Brand: "Nike", Price: 89.99},
		{ID: "p2", Title: "Road Running Shoes", Brand: "Adidas", Price: 120},
		{ID: "p3", Title: "Leather Boots", Brand: "Timberland", Price: 180},
	})
}

func TestFindProducts(t *testing.T) {
	ctx := context.Background()
	repo := seeded()

	got, err := repo.FindProducts(ctx, repository.FindProductsOptions{
		Filter: repository.Filter{Conditions: []repository.Condition{
			{Field: "title", Op: repository.OpContains, Value: "running"},
			{Field: "price", Op: repository.OpLTE, Number: 100},
		}},
	})
	if err != nil {
		t.Fatalf("FindProducts() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("FindProducts() = %v, want only p1", got)
	}
}

func TestFindProductsLimit(t *testing.T) {
	ctx := context.Background()
	repo := seeded()

	got, err := repo.FindProducts(ctx, repository.FindProductsOptions{Limit: 2})
	if err != nil {
		t.Fatalf("FindProducts() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("FindProducts() returned %d products, want 2", len(got))
	}
}

func TestFindProductsInvalidFilter(t *testing.T) {
	repo := seeded()

	_, err := repo.FindProducts(context.Background(), repository.FindProductsOptions{
		Filter: repository.Filter{Conditions: []repository.Condition{
			{Field: "price", Op: repository.OpContains, Value: "cheap"},
		}},
	})
	if err == nil {
		t.Fatal("FindProducts() expected validation error, got nil")
	}
}

func TestListProductsPaging(t *testing.T) {
	ctx := context.Background()
	repo := seeded()

	page, err := repo.ListProducts(ctx, repository.ListProductsOptions{Offset: 1, Limit: 1})
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if len(page) != 1 || page[0].ID != "p2" {
		t.Errorf("ListProducts(offset=1, limit=1) = %v, want only p2", page)
	}

	empty, err := repo.ListProducts(ctx, repository.ListProductsOptions{Offset: 10})
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("ListProducts(offset past end) = %v, want empty", empty)
	}
}
