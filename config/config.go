package config

import (
	"log"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Storage.
	StorageDriver string `mapstructure:"STORAGE_DRIVER"` // "mongo" or "memory"
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	DatabaseName  string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int           `mapstructure:"REDIS_CACHE_DB"`
	HolidayCacheTTL time.Duration `mapstructure:"HOLIDAY_CACHE_TTL"`

	// Credentials.
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	JWTExpiryDays int    `mapstructure:"JWT_EXPIRY_DAYS"`
	TokenHeader   string `mapstructure:"TOKEN_HEADER"`

	// Scheduling.
	Timezone                string `mapstructure:"TIMEZONE"`
	BookingDeleteMode       string `mapstructure:"BOOKING_DELETE_MODE"` // "soft" or "hard"
	AvailabilityBatchCounts bool   `mapstructure:"AVAILABILITY_BATCH_COUNTS"`
}

var AppConfig Config

// LoadConfig reads config.yaml (from path when given, otherwise from the
// current and "config" directory), overlays the environment and applies defaults.
func LoadConfig(path string) {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// SetDefaults registers the default value of every known key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("STORAGE_DRIVER", "mongo")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "booking_schedule")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("HOLIDAY_CACHE_TTL", 10*time.Minute)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DAYS", 365)
	v.SetDefault("TOKEN_HEADER", "x-access-token")
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("BOOKING_DELETE_MODE", "soft")
	v.SetDefault("AVAILABILITY_BATCH_COUNTS", true)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Location resolves the configured timezone, falling back to UTC.
func Location() *time.Location {
	loc, err := time.LoadLocation(AppConfig.Timezone)
	if err != nil || AppConfig.Timezone == "" {
		return time.UTC
	}
	return loc
}
