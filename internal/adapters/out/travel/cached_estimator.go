package travel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "travel"

var _ ports.TravelEstimator = (*CachedEstimator)(nil)

// CacheConfig leaves the estimator uncached when Enabled is false.
type CacheConfig struct {
	Enabled bool
	Addr    string
	TTL     time.Duration
}

// CachedEstimator remembers the estimates of an inner estimator in Redis, keyed by shop and
// the sorted set of buildings. Cache failures are logged and the inner estimator answers.
type CachedEstimator struct {
	inner   ports.TravelEstimator
	client  *redis.Client
	ttl     time.Duration
	enabled bool
	logger  *slog.Logger
}

// NewCachedEstimator pings Redis when the cache is enabled. A disabled cache passes every
// call straight through.
func NewCachedEstimator(
	ctx context.Context,
	cfg CacheConfig,
	inner ports.TravelEstimator,
	logger *slog.Logger,
) (*CachedEstimator, error) {
	logger = logger.With("component", "travel_cache")
	if !cfg.Enabled {
		return &CachedEstimator{inner: inner, logger: logger}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Addr})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Addr, err)
	}

	return &CachedEstimator{
		inner:   inner,
		client:  client,
		ttl:     cfg.TTL,
		enabled: true,
		logger:  logger,
	}, nil
}

func (c *CachedEstimator) Estimate(ctx context.Context, shopID kernel.UUID, destinations []string) (ports.TravelEstimate, error) {
	if !c.enabled {
		return c.inner.Estimate(ctx, shopID, destinations)
	}

	key := cacheKey(shopID, destinations)
	cached, err := c.get(ctx, key)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "travel cache read failed", "key", key, "error", err)
	}

	estimate, err := c.inner.Estimate(ctx, shopID, destinations)
	if err != nil {
		return ports.TravelEstimate{}, err
	}

	if err := c.set(ctx, key, estimate); err != nil {
		c.logger.WarnContext(ctx, "travel cache write failed", "key", key, "error", err)
	}
	return estimate, nil
}

func (c *CachedEstimator) Close() error {
	if !c.enabled || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *CachedEstimator) get(ctx context.Context, key string) (ports.TravelEstimate, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return ports.TravelEstimate{}, err
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return ports.TravelEstimate{}, fmt.Errorf("unmarshal cached estimate: %w", err)
	}
	return entry.toEstimate(), nil
}

func (c *CachedEstimator) set(ctx context.Context, key string, estimate ports.TravelEstimate) error {
	data, err := json.Marshal(fromEstimate(estimate))
	if err != nil {
		return fmt.Errorf("marshal estimate: %w", err)
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

type cacheEntry struct {
	MinutesToMove         int `json:"minutesToMove"`
	MinutesToWaitCustomer int `json:"minutesToWaitCustomer"`
}

func fromEstimate(e ports.TravelEstimate) cacheEntry {
	return cacheEntry{MinutesToMove: e.MinutesToMove, MinutesToWaitCustomer: e.MinutesToWaitCustomer}
}

func (e cacheEntry) toEstimate() ports.TravelEstimate {
	return ports.TravelEstimate{MinutesToMove: e.MinutesToMove, MinutesToWaitCustomer: e.MinutesToWaitCustomer}
}

func cacheKey(shopID kernel.UUID, destinations []string) string {
	stops := distinct(destinations)
	slices.Sort(stops)
	return fmt.Sprintf("%s:%s:%s", keyPrefix, shopID.String(), strings.Join(stops, ","))
}
