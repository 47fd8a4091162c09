// api/util/cache_service.go

package util

import (
	"context"

	"github.com/trialdesk/participant-manager/api/db"
	"github.com/trialdesk/participant-manager/api/model"
)

// CacheService is a read-through cache for location details. All methods
// no-op when Redis has not been initialized, so callers degrade to the
// database (tests run without a cache).
type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetLocation(ctx context.Context, locationID string) (*model.LocationDetails, error) {
	if db.RedisClient == nil {
		return nil, nil
	}
	return db.GetCachedLocation(ctx, locationID)
}

func (c *CacheService) SetLocation(ctx context.Context, location model.LocationDetails) error {
	if db.RedisClient == nil {
		return nil
	}
	return db.CacheLocation(ctx, &location)
}

func (c *CacheService) DeleteLocation(ctx context.Context, locationID string) error {
	if db.RedisClient == nil {
		return nil
	}
	return db.DeleteCachedLocation(ctx, locationID)
}
