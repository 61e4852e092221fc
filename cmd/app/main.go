package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/tripverse/api"
	"github.com/Domenick1991/tripverse/config"
	"github.com/Domenick1991/tripverse/internal/auth"
	"github.com/Domenick1991/tripverse/internal/bootstrap"
	"github.com/Domenick1991/tripverse/internal/cache"
	"github.com/Domenick1991/tripverse/internal/kafka"
	"github.com/Domenick1991/tripverse/internal/logging"
	"github.com/Domenick1991/tripverse/internal/migrations"
	"github.com/Domenick1991/tripverse/internal/repository"
	"github.com/Domenick1991/tripverse/internal/service/booking"
	"github.com/Domenick1991/tripverse/internal/service/catalog"
	"github.com/Domenick1991/tripverse/internal/service/health"
	"github.com/Domenick1991/tripverse/internal/service/journal"
	"github.com/Domenick1991/tripverse/internal/service/navigation"
	"github.com/Domenick1991/tripverse/internal/service/profile"
	"github.com/Domenick1991/tripverse/internal/service/transport"
	"github.com/Domenick1991/tripverse/internal/service/trips"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logging.New("info", "json").WithError(err).Fatal("load config")
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Format)
	if cfg.Log.Format == "text" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.WithError(err).Fatal("connect postgres")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.WithError(err).Fatal("ping postgres")
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()
	if cfg.Database.Migrate {
		if err := migrations.Up(ctx, sqlDB); err != nil {
			log.WithError(err).Fatal("apply migrations")
		}
		log.Info("migrations applied")
	}

	redisCache := cache.NewRedisCache(cfg.Redis, cfg.Catalog.CacheTTL())
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		log.WithError(err).Warn("redis unavailable, catalogue reads go to postgres")
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
	defer producer.Close()
	if err := producer.CheckConnection(ctx); err != nil {
		log.WithError(err).Warn("kafka unavailable, booking events will be retried per publish")
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL())

	bookingService := booking.NewBookingService(
		repository.NewBookingRepository(pool),
		redisCache,
		producer,
		cfg.Kafka.BookingTopic,
		cfg.Booking.HoldTTL(),
		cfg.Booking.ConfirmationWindow(),
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithLogger(log),
		booking.WithPublishRetries(cfg.Kafka.PublishRetries),
	)

	router := api.NewRouter(cfg, api.Services{
		Health:     health.NewHealthService(repository.NewHealthRepository(sqlx.NewDb(sqlDB, "pgx"))),
		Navigation: navigation.NewNavigationService(),
		Transports: transport.NewTransportService(repository.NewTransportRepository(pool), redisCache),
		Bookings:   bookingService,
		Catalog:    catalog.NewCatalogService(repository.NewCatalogRepository(pool), redisCache, cfg.Catalog.DefaultCity),
		Trips:      trips.NewTripService(repository.NewTripRepository(pool)),
		Journal:    journal.NewJournalService(repository.NewJournalRepository(pool)),
		Profile:    profile.NewProfileService(repository.NewTravelerRepository(pool), tokens),
		Tokens:     tokens,
	}, log)

	if err := bootstrap.Run(ctx, cfg, router, log); err != nil {
		log.WithError(err).Fatal("server error")
	}
}
