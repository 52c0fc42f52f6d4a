package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ai-shopping-assistant/config"
	"ai-shopping-assistant/internal/model"
	"ai-shopping-assistant/internal/product/repository"
	mongoRepo "ai-shopping-assistant/internal/product/repository/mongo"
	qdrantRepo "ai-shopping-assistant/internal/product/repository/qdrant"
	"ai-shopping-assistant/pkg/log"
	pkgQdrant "ai-shopping-assistant/pkg/qdrant"
	"ai-shopping-assistant/pkg/voyage"
)

// batchSize keeps each Voyage embedding request small.
const batchSize = 64

// Index construction is an offline operation, separate from the request path.
// It loads products from MongoDB (or a JSON dataset file) and builds the
// Qdrant similarity index.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/index-products/main.go <mongo|path/to/products.json>")
		fmt.Println("Example: go run scripts/index-products/main.go mongo")
		os.Exit(1)
	}
	source := os.Args[1]

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}
	if cfg.Voyage.Model != "" {
		embedder = embedder.WithModel(cfg.Voyage.Model)
	}
	vectorRepo := qdrantRepo.New(pkgQdrant.NewClient(cfg.Qdrant.URL), embedder, cfg.Qdrant.CollectionName, logger)

	products, err := loadProducts(ctx, cfg, source, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load products: %v", err)
	}
	logger.Infof(ctx, "Found %d products to index into Qdrant", len(products))

	if err := vectorRepo.EnsureCollection(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to ensure collection %q: %v", cfg.Qdrant.CollectionName, err)
	}

	successCount := 0
	for start := 0; start < len(products); start += batchSize {
		end := start + batchSize
		if end > len(products) {
			end = len(products)
		}
		batch := products[start:end]
		if err := vectorRepo.IndexProducts(ctx, batch); err != nil {
			logger.Errorf(ctx, "Failed to index batch %d-%d: %v", start, end, err)
			continue
		}
		successCount += len(batch)
		logger.Infof(ctx, "Indexed %d/%d products", successCount, len(products))
	}

	logger.Infof(ctx, "Indexing complete! %d/%d products successfully indexed.", successCount, len(products))
}

// loadProducts reads the full catalog either from MongoDB or from a JSON
// array file.
func loadProducts(ctx context.Context, cfg *config.Config, source string, logger log.Logger) ([]model.Product, error) {
	if source != "mongo" {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, err
		}
		var products []model.Product
		if err := json.Unmarshal(data, &products); err != nil {
			return nil, fmt.Errorf("parse dataset %s: %w", source, err)
		}
		return products, nil
	}

	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("mongo source requires MONGO_URI")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, err
	}
	defer func() {
		if dErr := client.Disconnect(ctx); dErr != nil {
			logger.Warnf(ctx, "Mongo disconnect: %v", dErr)
		}
	}()

	repo := mongoRepo.New(client.Database(cfg.Mongo.Database), cfg.Mongo.Collection, logger)

	var all []model.Product
	const pageSize = 500
	for offset := 0; ; offset += pageSize {
		page, err := repo.ListProducts(ctx, repository.ListProductsOptions{Offset: offset, Limit: pageSize})
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
	}
}
