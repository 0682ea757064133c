package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hellodesc/hellodesc/internal/description"
)

// RedisRepo stores each record as a JSON document under "<prefix><uuid>" and
// appends the key to the "<prefix>index" list. Keys never expire.
type RedisRepo struct {
	client *redis.Client
	prefix string
}

// NewRedisRepo creates a Redis-backed repository. Prefix may be empty.
func NewRedisRepo(client *redis.Client, prefix string) *RedisRepo {
	if prefix == "" {
		prefix = "record:"
	}
	return &RedisRepo{client: client, prefix: prefix}
}

func (r *RedisRepo) indexKey() string {
	return r.prefix + "index"
}

func (r *RedisRepo) Insert(ctx context.Context, rec description.Record) (string, error) {
	b, err := json.Marshal(rec.Document())
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	key := r.prefix + id
	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, key, b, 0)
		p.RPush(ctx, r.indexKey(), key)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Get returns the stored document for id, or nil when it does not exist.
func (r *RedisRepo) Get(ctx context.Context, id string) (map[string]string, error) {
	b, err := r.client.Get(ctx, r.prefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var doc map[string]string
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *RedisRepo) Backend() string { return "redis" }
