package availability

import (
	"context"
	"testing"
	"time"

	memoryRepo "bookingschedule/database/repository/memory"
	"bookingschedule/models"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCachedHolidayOracle_DisabledReturnsOracle(t *testing.T) {
	oracle := memoryRepo.NewStore().Holidays()

	assert.Same(t, oracle, NewCachedHolidayOracle(oracle, nil, time.Minute))

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()
	assert.Same(t, oracle, NewCachedHolidayOracle(oracle, client, 0))
}

func TestCachedHolidayOracle_FallsThroughWhenCacheDown(t *testing.T) {
	store := memoryRepo.NewStore()
	require.NoError(t, store.Holidays().Create(context.Background(), &models.PublicHoliday{Date: "2026-12-02"}))

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	oracle := NewCachedHolidayOracle(store.Holidays(), client, time.Minute)

	holiday, err := oracle.IsHoliday(context.Background(), "m-1", "2026-12-02")
	require.NoError(t, err)
	assert.True(t, holiday)

	holiday, err = oracle.IsHoliday(context.Background(), "m-1", "2026-12-03")
	require.NoError(t, err)
	assert.False(t, holiday)
}
