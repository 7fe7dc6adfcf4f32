package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "medcatalog:"

// RedisDocument stores the collection as one string value under medcatalog:<kind>.
type RedisDocument struct {
	client *redis.Client
	kind   string
}

func NewRedisDocument(client *redis.Client, kind string) *RedisDocument {
	return &RedisDocument{client: client, kind: kind}
}

func (d *RedisDocument) Kind() string { return d.kind }

func (d *RedisDocument) key() string { return redisKeyPrefix + d.kind }

func (d *RedisDocument) Load(ctx context.Context) ([]byte, error) {
	b, err := d.client.Get(ctx, d.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		if err := d.client.SetNX(ctx, d.key(), emptyCollection, 0).Err(); err != nil {
			return nil, fmt.Errorf("init %s: %w", d.key(), err)
		}
		return emptyCollection, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", d.key(), err)
	}
	return b, nil
}

func (d *RedisDocument) Save(ctx context.Context, data []byte) error {
	return d.client.Set(ctx, d.key(), data, 0).Err()
}
