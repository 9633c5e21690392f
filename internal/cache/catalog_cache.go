package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"assessment-service/internal/models"
)

const catalogKey = "assessment:catalog:snapshot"

// Snapshot is the serialized form of the catalog held in redis so every
// instance serves the same question and profile set between reloads.
type Snapshot struct {
	Questions []models.Question `json:"questions"`
	Profiles  []models.Profile  `json:"profiles"`
}

type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

// Get returns the cached snapshot, or nil on miss. A nil receiver or any
// redis failure reads as a miss so the caller falls through to MongoDB.
func (c *CatalogCache) Get(ctx context.Context) *Snapshot {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		return nil
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil
	}
	return &snap
}

// Set stores the snapshot with the configured TTL. Failures are ignored;
// the cache is an optimization, not a source of truth.
func (c *CatalogCache) Set(ctx context.Context, snap *Snapshot) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}
	c.client.Set(ctx, catalogKey, raw, c.ttl)
}

// Invalidate drops the snapshot after a catalog change.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, catalogKey)
}
