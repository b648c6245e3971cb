package availability

import (
	"context"
	"time"

	"bookingschedule/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CachedHolidayOracle is a read-through Redis cache over a HolidayOracle.
// Cache failures fall through to the underlying oracle.
type CachedHolidayOracle struct {
	Oracle HolidayOracle
	Cache  *redis.Client
	TTL    time.Duration
}

// NewCachedHolidayOracle wraps oracle. A nil cache or a non-positive ttl
// returns oracle unchanged.
func NewCachedHolidayOracle(oracle HolidayOracle, cache *redis.Client, ttl time.Duration) HolidayOracle {
	if cache == nil || ttl <= 0 {
		return oracle
	}
	return &CachedHolidayOracle{Oracle: oracle, Cache: cache, TTL: ttl}
}

func (o *CachedHolidayOracle) IsHoliday(ctx context.Context, merchantID, date string) (bool, error) {
	logger := utils.GetLogger()
	key := utils.HolidayCachePrefix + merchantID + ":" + date

	cached, err := o.Cache.Get(ctx, key).Result()
	switch {
	case err == nil:
		return cached == "1", nil
	case err != redis.Nil:
		logger.Warn("Error reading holiday cache", zap.String("key", key), zap.Error(err))
	}

	holiday, err := o.Oracle.IsHoliday(ctx, merchantID, date)
	if err != nil {
		return false, err
	}

	value := "0"
	if holiday {
		value = "1"
	}
	if err := o.Cache.Set(ctx, key, value, o.TTL).Err(); err != nil {
		logger.Warn("Failed to set holiday cache", zap.String("key", key), zap.Error(err))
	}
	return holiday, nil
}
