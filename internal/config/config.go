package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Fixed deployment settings; these are not read from the environment.
const (
	AzureOpenAIAPIVersion = "2024-08-01-preview"
	AzureOpenAIDeployment = "gpt-35-turbo"
	MongoDBDatabase       = "mitamura-paas-test-database"
	MongoDBCollection     = "collection1"
)

// Store backends accepted by STORE_BACKEND.
const (
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds application configuration
type Config struct {
	Server      ServerConfig
	Store       StoreConfig
	MongoDB     MongoDBConfig
	Redis       RedisConfig
	AzureOpenAI AzureOpenAIConfig
	LogLevel    string
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type StoreConfig struct {
	Backend string
}

type MongoDBConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns host:port for the redis client.
func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

type AzureOpenAIConfig struct {
	APIKey     string
	Endpoint   string
	APIVersion string
	Deployment string
}

// Configured reports whether both the key and the endpoint are present.
func (a AzureOpenAIConfig) Configured() bool {
	return a.APIKey != "" && a.Endpoint != ""
}

// LoadConfig loads configuration from environment variables and an optional .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("STORE_BACKEND", BackendMongo)
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Store: StoreConfig{
			Backend: strings.ToLower(strings.TrimSpace(viper.GetString("STORE_BACKEND"))),
		},
		MongoDB: MongoDBConfig{
			URI:        viper.GetString("MONGODB_CONNECTION_STRING"),
			Database:   MongoDBDatabase,
			Collection: MongoDBCollection,
			Timeout:    time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		AzureOpenAI: AzureOpenAIConfig{
			APIKey:     viper.GetString("AZURE_OPENAI_API_KEY"),
			Endpoint:   viper.GetString("AZURE_OPENAI_ENDPOINT"),
			APIVersion: AzureOpenAIAPIVersion,
			Deployment: AzureOpenAIDeployment,
		},
		LogLevel: viper.GetString("LOG_LEVEL"),
	}

	switch cfg.Store.Backend {
	case BackendMongo:
		if cfg.MongoDB.URI == "" {
			return nil, fmt.Errorf("environment variable MONGODB_CONNECTION_STRING is required for the %s store", BackendMongo)
		}
	case BackendRedis:
		if cfg.Redis.Host == "" {
			return nil, fmt.Errorf("environment variable REDIS_HOST is required for the %s store", BackendRedis)
		}
	case BackendMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.Store.Backend)
	}

	return cfg, nil
}
