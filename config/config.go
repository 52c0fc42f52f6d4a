package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// External services
	Groq   GroqConfig
	Tavily TavilyConfig
	Mongo  MongoConfig
	Qdrant QdrantConfig
	Voyage VoyageConfig

	// Completion gateway limits
	Gateway GatewayConfig

	// Assistant domain
	Assistant AssistantConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GroqConfig struct {
	APIKey      string
	Model       string
	VisionModel string
	BaseURL     string
}

type TavilyConfig struct {
	APIKey string
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

type QdrantConfig struct {
	URL            string
	CollectionName string
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

// GatewayConfig bounds the shared completion gateway: a process-wide call
// budget, a request rate, and per-call retry behavior.
type GatewayConfig struct {
	CallBudget     int
	CallsPerSecond float64
	Burst          int
	RetryAttempts  int
	RetryDelay     time.Duration
	CallTimeout    time.Duration
}

type AssistantConfig struct {
	AdapterTimeout time.Duration
	BufferDir      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., and /etc/app/.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Groq
	cfg.Groq.APIKey = viper.GetString("groq.api_key")
	cfg.Groq.Model = viper.GetString("groq.model")
	cfg.Groq.VisionModel = viper.GetString("groq.vision_model")
	cfg.Groq.BaseURL = viper.GetString("groq.base_url")
	if key := viper.GetString("groq_api_key"); key != "" {
		cfg.Groq.APIKey = key
	}

	// Tavily
	cfg.Tavily.APIKey = viper.GetString("tavily.api_key")
	if key := viper.GetString("tavily_api_key"); key != "" {
		cfg.Tavily.APIKey = key
	}

	// Mongo
	cfg.Mongo.URI = viper.GetString("mongo.uri")
	cfg.Mongo.Database = viper.GetString("mongo.database")
	cfg.Mongo.Collection = viper.GetString("mongo.collection")
	if uri := viper.GetString("mongo_uri"); uri != "" {
		cfg.Mongo.URI = uri
	}

	// Qdrant
	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	if url := viper.GetString("qdrant_url"); url != "" {
		cfg.Qdrant.URL = url
	}

	// Voyage AI
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	cfg.Voyage.Model = viper.GetString("voyage.model")
	if key := viper.GetString("voyage_api_key"); key != "" {
		cfg.Voyage.APIKey = key
	}

	// Gateway limits
	cfg.Gateway.CallBudget = viper.GetInt("gateway.call_budget")
	cfg.Gateway.CallsPerSecond = viper.GetFloat64("gateway.calls_per_second")
	cfg.Gateway.Burst = viper.GetInt("gateway.burst")
	cfg.Gateway.RetryAttempts = viper.GetInt("gateway.retry_attempts")
	cfg.Gateway.RetryDelay = viper.GetDuration("gateway.retry_delay")
	cfg.Gateway.CallTimeout = viper.GetDuration("gateway.call_timeout")

	// Assistant
	cfg.Assistant.AdapterTimeout = viper.GetDuration("assistant.adapter_timeout")
	cfg.Assistant.BufferDir = viper.GetString("assistant.buffer_dir")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("mongo.database", "shop")
	viper.SetDefault("mongo.collection", "products")

	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.collection_name", "products")

	// Gateway defaults
	viper.SetDefault("gateway.call_budget", 100)
	viper.SetDefault("gateway.calls_per_second", 2.0)
	viper.SetDefault("gateway.burst", 4)
	viper.SetDefault("gateway.retry_attempts", 3)
	viper.SetDefault("gateway.retry_delay", "500ms")
	viper.SetDefault("gateway.call_timeout", "30s")

	// Assistant defaults
	viper.SetDefault("assistant.adapter_timeout", "20s")
	viper.SetDefault("assistant.buffer_dir", "./buffer")
}
