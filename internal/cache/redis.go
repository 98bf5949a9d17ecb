package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Cache is a best-effort Redis cache used to deduplicate webhook
// deliveries by message id. When no Redis URL is configured the cache
// is disabled and every delivery is treated as new; the reconcilers
// are idempotent so replays are safe either way.
type Cache struct {
	client  *redis.Client
	enabled bool
	log     zerolog.Logger
}

func New(redisURL string, log zerolog.Logger) *Cache {
	c := &Cache{log: log}

	if redisURL == "" {
		log.Info().Msg("redis url not provided, delivery dedup disabled")
		return c
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse redis url, delivery dedup disabled")
		return c
	}

	c.client = redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to connect to redis, delivery dedup disabled")
		return c
	}

	c.enabled = true
	log.Info().Msg("redis cache initialized")
	return c
}

func (c *Cache) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// Seen reports whether a delivery id was already processed. Errors
// degrade to "not seen" so a Redis outage never blocks webhook
// processing.
func (c *Cache) Seen(ctx context.Context, id string) bool {
	if !c.enabled {
		return false
	}

	n, err := c.client.Exists(ctx, "webhook:seen:"+id).Result()
	if err != nil {
		c.log.Warn().Err(err).Str("id", id).Msg("dedup check failed")
		return false
	}
	return n > 0
}

// MarkSeen records a processed delivery id. Only call after the event
// was dispatched successfully: a failed delivery must stay unmarked so
// the provider's redelivery of the same id is reprocessed.
func (c *Cache) MarkSeen(ctx context.Context, id string, ttl time.Duration) {
	if !c.enabled {
		return
	}

	if err := c.client.Set(ctx, "webhook:seen:"+id, 1, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("id", id).Msg("dedup record failed")
	}
}
