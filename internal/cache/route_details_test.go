package cache

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/Estefano-cmd/impulsoApi/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRedis struct {
	values  map[string]string
	ttls    map[string]time.Duration
	failGet bool
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryRedis) Get(_ context.Context, key string) (string, error) {
	if m.failGet {
		return "", errors.New("connection refused")
	}
	v, ok := m.values[key]
	if !ok {
		return "", ErrMiss
	}
	return v, nil
}

func (m *memoryRedis) Set(_ context.Context, key, value string, expiration time.Duration) error {
	m.values[key] = value
	m.ttls[key] = expiration
	return nil
}

func (m *memoryRedis) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

func (m *memoryRedis) Close() error { return nil }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRouteDetailCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	redis := newMemoryRedis()
	c := NewRouteDetailCache(redis, 5*time.Minute, quietLogger())

	_, ok := c.Get(ctx, 5)
	assert.False(t, ok)

	details := []models.RouteDetail{{RouteID: 1, RouteName: "North", UVs: []int{10, 11}}}
	c.Set(ctx, 5, details)
	assert.Equal(t, 5*time.Minute, redis.ttls["impulso:route_detail:5"])

	got, ok := c.Get(ctx, 5)
	require.True(t, ok)
	assert.Equal(t, details, got)

	c.Invalidate(ctx, 5, 6)
	_, ok = c.Get(ctx, 5)
	assert.False(t, ok)
}

func TestRouteDetailCacheReadFailureIsMiss(t *testing.T) {
	redis := newMemoryRedis()
	redis.failGet = true
	c := NewRouteDetailCache(redis, time.Minute, quietLogger())

	_, ok := c.Get(context.Background(), 5)
	assert.False(t, ok)
}

func TestRouteDetailCacheMalformedEntry(t *testing.T) {
	redis := newMemoryRedis()
	redis.values["impulso:route_detail:5"] = "{not json"
	c := NewRouteDetailCache(redis, time.Minute, quietLogger())

	_, ok := c.Get(context.Background(), 5)
	assert.False(t, ok)
}

func TestRouteDetailCacheEmptyEntryIsMiss(t *testing.T) {
	for _, raw := range []string{"null", "[]"} {
		redis := newMemoryRedis()
		redis.values["impulso:route_detail:5"] = raw
		c := NewRouteDetailCache(redis, time.Minute, quietLogger())

		details, ok := c.Get(context.Background(), 5)
		assert.False(t, ok, raw)
		assert.Nil(t, details, raw)
	}
}

func TestRouteDetailCacheSkipsEmptyDetails(t *testing.T) {
	redis := newMemoryRedis()
	c := NewRouteDetailCache(redis, time.Minute, quietLogger())

	c.Set(context.Background(), 5, nil)
	assert.NotContains(t, redis.values, "impulso:route_detail:5")
}

func TestNoopRouteDetailCache(t *testing.T) {
	c := NewNoopRouteDetailCache()
	c.Set(context.Background(), 1, []models.RouteDetail{{RouteID: 1}})
	_, ok := c.Get(context.Background(), 1)
	assert.False(t, ok)
}
