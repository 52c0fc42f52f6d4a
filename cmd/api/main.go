package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ai-shopping-assistant/config"
	_ "ai-shopping-assistant/docs" // Swagger docs
	"ai-shopping-assistant/internal/agents/catalog"
	"ai-shopping-assistant/internal/agents/history"
	"ai-shopping-assistant/internal/agents/imagesearch"
	"ai-shopping-assistant/internal/agents/websearch"
	assistantUC "ai-shopping-assistant/internal/assistant/usecase"
	"ai-shopping-assistant/internal/httpserver"
	"ai-shopping-assistant/internal/product/repository"
	memoryRepo "ai-shopping-assistant/internal/product/repository/memory"
	mongoRepo "ai-shopping-assistant/internal/product/repository/mongo"
	qdrantRepo "ai-shopping-assistant/internal/product/repository/qdrant"
	"ai-shopping-assistant/pkg/groq"
	"ai-shopping-assistant/pkg/llmgateway"
	"ai-shopping-assistant/pkg/log"
	pkgQdrant "ai-shopping-assistant/pkg/qdrant"
	"ai-shopping-assistant/pkg/tavily"
	"ai-shopping-assistant/pkg/voyage"
)

// @title       AI Shopping Assistant API
// @description Query routing for an e-commerce catalog: LLM answers, web search, structured product lookup, and image similarity search.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Shopping Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Completion gateway
	groqClient, err := groq.New(groq.Config{
		APIKey:  cfg.Groq.APIKey,
		Model:   cfg.Groq.Model,
		BaseURL: cfg.Groq.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Groq client: ", err)
		return
	}

	visionModel := cfg.Groq.VisionModel
	if visionModel == "" {
		visionModel = groq.DefaultVisionModel
	}
	gateway := llmgateway.New(groqClient, llmgateway.Config{
		CallBudget:     cfg.Gateway.CallBudget,
		CallsPerSecond: cfg.Gateway.CallsPerSecond,
		Burst:          cfg.Gateway.Burst,
		RetryAttempts:  cfg.Gateway.RetryAttempts,
		RetryDelay:     cfg.Gateway.RetryDelay,
		CallTimeout:    cfg.Gateway.CallTimeout,
		VisionModel:    visionModel,
	}, logger)

	// 4. Web search
	searcher, err := tavily.New(cfg.Tavily.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Tavily client: ", err)
		return
	}

	// 5. Product repository: Mongo when configured, in-memory otherwise
	var productRepo repository.ProductRepository
	if cfg.Mongo.URI != "" {
		mongoClient, mErr := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if mErr != nil {
			logger.Error(ctx, "Failed to connect to MongoDB: ", mErr)
			return
		}
		defer func() {
			if dErr := mongoClient.Disconnect(context.Background()); dErr != nil {
				logger.Warnf(ctx, "Mongo disconnect: %v", dErr)
			}
		}()
		productRepo = mongoRepo.New(mongoClient.Database(cfg.Mongo.Database), cfg.Mongo.Collection, logger)
		logger.Infof(ctx, "Product repository: mongodb (%s.%s)", cfg.Mongo.Database, cfg.Mongo.Collection)
	} else {
		productRepo = memoryRepo.New(nil)
		logger.Warn(ctx, "MONGO_URI not set, using empty in-memory product repository")
	}

	// 6. Vector repository for image similarity
	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Voyage client: ", err)
		return
	}
	if cfg.Voyage.Model != "" {
		embedder = embedder.WithModel(cfg.Voyage.Model)
	}
	vectorRepo := qdrantRepo.New(pkgQdrant.NewClient(cfg.Qdrant.URL), embedder, cfg.Qdrant.CollectionName, logger)

	// 7. Agents + assistant UseCase
	webAgent := websearch.New(gateway, searcher, logger)
	catalogAgent := catalog.New(gateway, productRepo, logger)
	imageAgent := imagesearch.New(gateway, vectorRepo, logger)

	uc := assistantUC.New(logger, gateway, webAgent, catalogAgent, imageAgent, history.New(), cfg.Assistant.AdapterTimeout)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AssistantUC: uc,
		BufferDir:   cfg.Assistant.BufferDir,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
