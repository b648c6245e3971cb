package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "mongo", cfg.StorageDriver)
	assert.Equal(t, "booking_schedule", cfg.DatabaseName)
	assert.Equal(t, 10*time.Minute, cfg.HolidayCacheTTL)
	assert.Equal(t, 365, cfg.JWTExpiryDays)
	assert.Equal(t, "x-access-token", cfg.TokenHeader)
	assert.Equal(t, "soft", cfg.BookingDeleteMode)
	assert.True(t, cfg.AvailabilityBatchCounts)
}

func TestSetDefaults_EnvOverrides(t *testing.T) {
	t.Setenv("BOOKING_DELETE_MODE", "hard")
	t.Setenv("HOLIDAY_CACHE_TTL", "30s")

	v := viper.New()
	v.AutomaticEnv()
	SetDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "hard", cfg.BookingDeleteMode)
	assert.Equal(t, 30*time.Second, cfg.HolidayCacheTTL)
}

func TestLocation(t *testing.T) {
	saved := AppConfig
	t.Cleanup(func() { AppConfig = saved })

	AppConfig.Timezone = "Asia/Dubai"
	assert.Equal(t, "Asia/Dubai", Location().String())

	AppConfig.Timezone = "Not/AZone"
	assert.Equal(t, time.UTC, Location())

	AppConfig.Timezone = ""
	assert.Equal(t, time.UTC, Location())
}
