package services

import (
	"context"
	"fmt"
	"time"

	"greenvest/src/models"
	redis_utils "greenvest/src/utils/redis"
)

// OfferingCache is a short-lived read cache for offering snapshots. Only the
// advisory preview path uses it; the confirmation path always reads the
// locked row.
type OfferingCache interface {
	Get(ctx context.Context, offeringID int64) (*models.Offering, bool)
	Set(ctx context.Context, offering *models.Offering)
}

type redisOfferingCache struct {
	redis *redis_utils.RedisHandler
	ttl   time.Duration
}

func NewRedisOfferingCache(redis *redis_utils.RedisHandler, ttl time.Duration) OfferingCache {
	return &redisOfferingCache{redis: redis, ttl: ttl}
}

func offeringCacheKey(offeringID int64) string {
	return fmt.Sprintf("offering:%d", offeringID)
}

func (c *redisOfferingCache) Get(_ context.Context, offeringID int64) (*models.Offering, bool) {
	var offering models.Offering
	if err := c.redis.Get(offeringCacheKey(offeringID), &offering); err != nil {
		return nil, false
	}
	if offering.Project == nil {
		return nil, false
	}
	return &offering, true
}

func (c *redisOfferingCache) Set(_ context.Context, offering *models.Offering) {
	// Best effort; a cache miss on the next preview is the only consequence.
	_ = c.redis.Set(offeringCacheKey(offering.ID), offering, c.ttl)
}
