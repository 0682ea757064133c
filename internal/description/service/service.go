package service

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hellodesc/hellodesc/internal/description"
	"github.com/hellodesc/hellodesc/internal/description/repository"
	"github.com/hellodesc/hellodesc/pkg/metrics"
)

// Repository is the insert-only persistence contract implemented by the
// memory, Mongo and Redis repositories.
type Repository interface {
	Insert(ctx context.Context, rec description.Record) (string, error)
	Backend() string
}

// Service is the persistence sink used by the handler layer. Store returns the
// generated identifier, or a *description.Error of kind store.
type Service struct {
	repo Repository
}

func New(r Repository) *Service { return &Service{repo: r} }

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() *Service {
	return New(repository.NewMemoryRepo())
}

// NewMongoService returns a Service backed by a MongoDB collection.
// Caller is responsible for creating the collection (and client) and passing it in.
func NewMongoService(col *mongo.Collection) *Service {
	return New(repository.NewMongoRepo(col))
}

// NewRedisService returns a Service storing records in Redis.
func NewRedisService(client *redis.Client) *Service {
	return New(repository.NewRedisRepo(client, ""))
}

func (s *Service) Backend() string { return s.repo.Backend() }

func (s *Service) Store(ctx context.Context, rec description.Record) (string, error) {
	id, err := s.repo.Insert(ctx, rec)
	if err != nil {
		metrics.Records.WithLabelValues(s.repo.Backend(), "failed").Inc()
		return "", &description.Error{Kind: description.KindStore, Op: s.repo.Backend() + " insert", Err: err}
	}
	metrics.Records.WithLabelValues(s.repo.Backend(), "inserted").Inc()
	return id, nil
}
