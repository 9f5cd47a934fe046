package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Estefano-cmd/impulsoApi/internal/models"

	"github.com/sirupsen/logrus"
)

// RouteDetailCache stores the route details computed for a user
type RouteDetailCache interface {
	Get(ctx context.Context, userID uint) ([]models.RouteDetail, bool)
	Set(ctx context.Context, userID uint, details []models.RouteDetail)
	Invalidate(ctx context.Context, userIDs ...uint)
}

type routeDetailCache struct {
	client RedisClient
	ttl    time.Duration
	log    *logrus.Logger
}

// NewRouteDetailCache creates a route detail cache backed by Redis.
// Cache failures are logged and treated as misses.
func NewRouteDetailCache(client RedisClient, ttl time.Duration, log *logrus.Logger) RouteDetailCache {
	return &routeDetailCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func routeDetailKey(userID uint) string {
	return fmt.Sprintf("impulso:route_detail:%d", userID)
}

func (c *routeDetailCache) Get(ctx context.Context, userID uint) ([]models.RouteDetail, bool) {
	raw, err := c.client.Get(ctx, routeDetailKey(userID))
	if err != nil {
		if err != ErrMiss {
			c.log.WithError(err).WithField("user_id", userID).Warn("Route detail cache read failed")
		}
		return nil, false
	}

	var details []models.RouteDetail
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		c.log.WithError(err).WithField("user_id", userID).Warn("Discarding malformed route detail cache entry")
		return nil, false
	}
	if len(details) == 0 {
		return nil, false
	}
	return details, true
}

func (c *routeDetailCache) Set(ctx context.Context, userID uint, details []models.RouteDetail) {
	if len(details) == 0 {
		return
	}
	data, err := json.Marshal(details)
	if err != nil {
		c.log.WithError(err).Warn("Failed to encode route details for cache")
		return
	}
	if err := c.client.Set(ctx, routeDetailKey(userID), string(data), c.ttl); err != nil {
		c.log.WithError(err).WithField("user_id", userID).Warn("Route detail cache write failed")
	}
}

func (c *routeDetailCache) Invalidate(ctx context.Context, userIDs ...uint) {
	if len(userIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, routeDetailKey(id))
	}
	if err := c.client.Delete(ctx, keys...); err != nil {
		c.log.WithError(err).WithField("user_ids", userIDs).Warn("Route detail cache invalidation failed")
	}
}

// noopRouteDetailCache is used when Redis is disabled
type noopRouteDetailCache struct{}

// NewNoopRouteDetailCache returns a cache that never stores anything
func NewNoopRouteDetailCache() RouteDetailCache {
	return noopRouteDetailCache{}
}

func (noopRouteDetailCache) Get(context.Context, uint) ([]models.RouteDetail, bool) {
	return nil, false
}
func (noopRouteDetailCache) Set(context.Context, uint, []models.RouteDetail) {}
func (noopRouteDetailCache) Invalidate(context.Context, ...uint)             {}
