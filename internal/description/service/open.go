package service

import (
	"context"
	"time"

	"github.com/hellodesc/hellodesc/internal/config"
	"github.com/hellodesc/hellodesc/internal/database"
	"github.com/hellodesc/hellodesc/pkg/logger"
)

const (
	connectAttempts = 5
	connectBackoff  = time.Second
)

// FromConfig connects the configured backend and returns the Service with a
// close function releasing the client.
func FromConfig(ctx context.Context, cfg *config.Config) (*Service, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		client, err := database.ConnectRedis(ctx, cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB, 5*time.Second)
		if err != nil {
			return nil, nil, err
		}
		logger.Infof("Using Redis for record storage: %s", cfg.Redis.Addr())
		return NewRedisService(client), func() { _ = client.Close() }, nil
	case config.BackendMemory:
		logger.Warnf("Using in-memory record storage; records are lost on exit")
		return NewMemoryService(), func() {}, nil
	default:
		client, err := database.ConnectMongoWithBackoff(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, connectAttempts, connectBackoff, func(attempt int, err error) {
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, connectAttempts, err)
		})
		if err != nil {
			return nil, nil, err
		}
		col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
		logger.Infof("Using MongoDB collection %s.%s for record storage", cfg.MongoDB.Database, cfg.MongoDB.Collection)
		return NewMongoService(col), func() { _ = client.Disconnect(context.Background()) }, nil
	}
}
