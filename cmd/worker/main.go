package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/tripverse/config"
	"github.com/Domenick1991/tripverse/internal/cache"
	"github.com/Domenick1991/tripverse/internal/email"
	"github.com/Domenick1991/tripverse/internal/kafka"
	"github.com/Domenick1991/tripverse/internal/logging"
	"github.com/Domenick1991/tripverse/internal/repository"
	"github.com/Domenick1991/tripverse/internal/service/booking"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.WithError(err).Fatal("connect postgres")
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
	defer producer.Close()
	if err := producer.CheckConnection(ctx); err != nil {
		log.WithError(err).Warn("kafka unavailable, booking events will be retried per publish")
	}
	redisCache := cache.NewRedisCache(cfg.Redis, cfg.Catalog.CacheTTL())
	defer redisCache.Close()

	bookingService := booking.NewBookingService(
		repository.NewBookingRepository(pool),
		redisCache,
		producer,
		cfg.Kafka.BookingEventsTopic,
		cfg.Booking.HoldTTL(),
		cfg.Booking.ConfirmationWindow(),
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithLogger(log),
		booking.WithPublishRetries(cfg.Kafka.PublishRetries),
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender(log)

	go func() {
		if err := consumer.Consume(ctx, kafka.BookingEventHandler(log, emailSender.Send)); err != nil {
			log.WithError(err).Error("consumer stopped")
		}
	}()

	scheduler := cron.New()
	spec := fmt.Sprintf("@every %dm", cfg.Worker.ExpirationSweepMinutes)
	if _, err := scheduler.AddFunc(spec, func() { expireBookings(ctx, bookingService, log) }); err != nil {
		log.WithError(err).Fatal("schedule expiration sweep")
	}
	scheduler.Start()
	log.WithField("schedule", spec).Info("worker started")

	<-ctx.Done()
	log.Info("shutting down worker")
	<-scheduler.Stop().Done()
}

func expireBookings(ctx context.Context, bookings booking.BookingUseCase, log *logrus.Logger) {
	expired, err := bookings.ExpirePendingBookings(ctx)
	if err != nil {
		log.WithError(err).Error("expire bookings")
		return
	}
	if len(expired) > 0 {
		log.WithField("count", len(expired)).Info("expired bookings")
	}
}
