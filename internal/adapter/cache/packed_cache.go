package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/marcos-nsantos/geobounds-service/internal/domain/fielddef"
	"github.com/marcos-nsantos/geobounds-service/internal/infrastructure/observability"
)

const (
	slotValue  = "value"
	slotValue2 = "value2"
)

// PackedCache stores the packed encoding of one bounds field per object in a
// redis hash.
type PackedCache struct {
	client    *redis.Client
	fieldName string
	ttl       time.Duration
}

func NewPackedCache(client *redis.Client, fieldName string, ttl time.Duration) *PackedCache {
	return &PackedCache{
		client:    client,
		fieldName: fieldName,
		ttl:       ttl,
	}
}

func (c *PackedCache) key(objectID uuid.UUID) string {
	return fmt.Sprintf("objects:%s:%s", objectID, c.fieldName)
}

func (c *PackedCache) Get(ctx context.Context, objectID uuid.UUID) (*fielddef.PackedPair, error) {
	values, err := c.client.HGetAll(ctx, c.key(objectID)).Result()
	if err != nil {
		return nil, fmt.Errorf("reading packed cache: %w", err)
	}

	// A missing key reads back as an empty hash.
	value, value2 := values[slotValue], values[slotValue2]
	if value == "" || value2 == "" {
		observability.CacheMisses.WithLabelValues("get").Inc()
		return nil, nil
	}

	observability.CacheHits.WithLabelValues("get").Inc()
	return &fielddef.PackedPair{Value: value, Value2: value2}, nil
}

// Set stores packed, or removes the entry when packed is nil.
func (c *PackedCache) Set(ctx context.Context, objectID uuid.UUID, packed *fielddef.PackedPair) error {
	if packed == nil {
		return c.Delete(ctx, objectID)
	}

	key := c.key(objectID)
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, slotValue, packed.Value, slotValue2, packed.Value2)
	if c.ttl > 0 {
		pipe.Expire(ctx, key, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("writing packed cache: %w", err)
	}
	return nil
}

func (c *PackedCache) Delete(ctx context.Context, objectID uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(objectID)).Err(); err != nil {
		return fmt.Errorf("deleting packed cache: %w", err)
	}
	return nil
}
