package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookingschedule/config"
	"bookingschedule/database"
	"bookingschedule/database/repository"
	memoryRepo "bookingschedule/database/repository/memory"
	"bookingschedule/database/seed"
	"bookingschedule/handlers"
	"bookingschedule/middleware"
	"bookingschedule/routes"
	"bookingschedule/services/auth"
	"bookingschedule/services/availability"
	"bookingschedule/services/booking"
	"bookingschedule/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/pflag"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	configPath := pflag.String("config", "", "path to a config file (default: ./config.yaml or ./config/config.yaml)")
	demoPassword := pflag.String("demo-password", "demo123", "password of the demo user loaded by the memory driver")
	pflag.Parse()

	config.LoadConfig(*configPath)
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()
	cfg := config.AppConfig

	if cfg.JWTSecret == "" && config.IsProduction() {
		logger.Fatal("main: JWT_SECRET must be set in production")
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Storage.
	var (
		repos       *repository.Repositories
		mongoClient *mongo.Client
	)
	switch cfg.StorageDriver {
	case "memory":
		repos = repository.NewMemoryRepositories(memoryRepo.NewStore())
		if err := seed.Demo(context.Background(), repos, *demoPassword, time.Now()); err != nil {
			logger.Fatal("main: failed to load demo data", zap.Error(err))
		}
		logger.Info("main: using in-memory storage with demo data",
			zap.String("merchantNsID", seed.DemoMerchantNsID), zap.String("username", seed.DemoUsername))
	default:
		client, err := database.InitDB(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
		}
		mongoClient = client
		repos = repository.NewMongoRepositories(client.Database(cfg.DatabaseName))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = repos.EnsureIndexes(ctx)
		cancel()
		if err != nil {
			logger.Fatal("main: failed to ensure indexes", zap.Error(err))
		}
	}

	// Cache. Holidays only; availability itself is never cached.
	var cacheClient *redis.Client
	if cfg.HolidayCacheTTL > 0 {
		cacheClient = utils.GetCacheClient()
	}
	holidays := availability.NewCachedHolidayOracle(repos.Holidays, cacheClient, cfg.HolidayCacheTTL)

	// Services.
	clock := utils.NewSystemClock()
	authService := &auth.DefaultAuthService{
		Users:  repos.Users,
		Issuer: utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiryDays),
		Clock:  clock,
	}
	availabilityEngine := &availability.DefaultAvailabilityEngine{
		Merchants:   repos.Merchants,
		Ledger:      repos.Bookings,
		Holidays:    holidays,
		Clock:       clock,
		Location:    config.Location(),
		BatchCounts: cfg.AvailabilityBatchCounts,
	}
	bookingService := &booking.DefaultBookingService{
		Merchants:  repos.Merchants,
		Bookings:   repos.Bookings,
		Clock:      clock,
		DeleteMode: booking.ParseDeleteMode(cfg.BookingDeleteMode),
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewAuthHandler(authService, cfg.TokenHeader),
		handlers.NewScheduleHandler(availabilityEngine),
		handlers.NewBookingHandler(bookingService),
		&handlers.HealthHandler{Mongo: mongoClient, Redis: cacheClient},
	)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if cacheClient != nil {
		_ = cacheClient.Close()
	}
	if err := database.Close(ctx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
