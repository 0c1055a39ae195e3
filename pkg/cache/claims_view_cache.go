package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultClaimsViewTTL bounds staleness when no invalidation arrives.
	DefaultClaimsViewTTL = 10 * time.Minute

	// generationTTL outlives any build; an expired generation reads as 0
	// and only makes an in-flight Set fail.
	generationTTL = 24 * time.Hour

	claimsViewKeyPrefix = "claims_view"
	generationKeyPrefix = "claims_view_gen"
)

// ErrViewSuperseded is returned by Set when the view was invalidated after
// its generation was read.
var ErrViewSuperseded = errors.New("claims view superseded by a newer invalidation")

// setIfCurrent writes the view hash only while the generation key still
// holds the generation the view was built against.
//
// KEYS[1] view hash, KEYS[2] generation
// ARGV[1] generation, ARGV[2] payload, ARGV[3] built_at ms, ARGV[4] ttl ms
var setIfCurrent = redis.NewScript(`
local gen = redis.call('GET', KEYS[2]) or '0'
if gen ~= ARGV[1] then
	return 0
end
redis.call('HSET', KEYS[1], 'payload', ARGV[2], 'built_at', ARGV[3], 'generation', ARGV[1])
redis.call('PEXPIRE', KEYS[1], ARGV[4])
return 1
`)

// CachedClaimsView is a serialised all-claims projection of one inventory.
// Payload is opaque to the cache; the registry decides its shape.
// Generation is the inventory's invalidation count read before the view
// was built.
type CachedClaimsView struct {
	InventoryID uuid.UUID
	Payload     json.RawMessage
	BuiltAt     time.Time
	Generation  int64
}

// ClaimsViewCache stores all-claims projections as Redis hashes next to a
// per-inventory generation counter that every invalidation bumps.
//
//	{namespace}:claims_view:{inventoryID}      view hash
//	{namespace}:claims_view_gen:{inventoryID}  generation
//
// A reader calls Generation, builds the view, then Set. If an invalidation
// landed in between, Set refuses the write so the older view cannot
// outlive the change.
type ClaimsViewCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewClaimsViewCache creates a ClaimsViewCache. A non-positive ttl uses
// DefaultClaimsViewTTL.
func NewClaimsViewCache(r *RedisClient, ttl time.Duration) *ClaimsViewCache {
	if ttl <= 0 {
		ttl = DefaultClaimsViewTTL
	}
	return &ClaimsViewCache{client: r, ttl: ttl}
}

// Get returns the cached projection of inventoryID.
// Returns redis.Nil when the key does not exist or has expired.
func (c *ClaimsViewCache) Get(ctx context.Context, inventoryID uuid.UUID) (*CachedClaimsView, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(inventoryID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil
	}
	payload, ok := vals["payload"]
	if !ok {
		return nil, redis.Nil
	}
	builtAt, err := strconv.ParseInt(vals["built_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse built_at: %w", err)
	}
	gen, _ := strconv.ParseInt(vals["generation"], 10, 64)
	return &CachedClaimsView{
		InventoryID: inventoryID,
		Payload:     json.RawMessage(payload),
		BuiltAt:     time.UnixMilli(builtAt).UTC(),
		Generation:  gen,
	}, nil
}

// Generation returns the current invalidation count of inventoryID, 0 when
// it was never invalidated.
func (c *ClaimsViewCache) Generation(ctx context.Context, inventoryID uuid.UUID) (int64, error) {
	gen, err := c.client.Client().Get(ctx, c.generationKey(inventoryID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache generation: %w", err)
	}
	return gen, nil
}

// Set writes a projection and its TTL if view.Generation is still current.
// It returns ErrViewSuperseded otherwise.
func (c *ClaimsViewCache) Set(ctx context.Context, view *CachedClaimsView) error {
	keys := []string{c.key(view.InventoryID), c.generationKey(view.InventoryID)}
	stored, err := setIfCurrent.Run(ctx, c.client.Client(), keys,
		strconv.FormatInt(view.Generation, 10),
		string(view.Payload),
		strconv.FormatInt(view.BuiltAt.UnixMilli(), 10),
		c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	if stored == 0 {
		return ErrViewSuperseded
	}
	return nil
}

// Delete drops the projection of inventoryID and bumps its generation in
// one transaction.
func (c *ClaimsViewCache) Delete(ctx context.Context, inventoryID uuid.UUID) error {
	genKey := c.generationKey(inventoryID)
	_, err := c.client.Client().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, generationTTL)
		pipe.Del(ctx, c.key(inventoryID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// TTL reports the expiry applied by Set.
func (c *ClaimsViewCache) TTL() time.Duration {
	return c.ttl
}

func (c *ClaimsViewCache) key(inventoryID uuid.UUID) string {
	return c.namespaced(claimsViewKeyPrefix, inventoryID)
}

func (c *ClaimsViewCache) generationKey(inventoryID uuid.UUID) string {
	return c.namespaced(generationKeyPrefix, inventoryID)
}

func (c *ClaimsViewCache) namespaced(prefix string, inventoryID uuid.UUID) string {
	if c.client == nil {
		return prefix + ":" + inventoryID.String()
	}
	return c.client.Key(prefix, inventoryID.String())
}
