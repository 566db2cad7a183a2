package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripdesk/config"
	"tripdesk/internal/bootstrap"
	"tripdesk/internal/cache"
	"tripdesk/internal/kafka"
	"tripdesk/internal/logger"
	"tripdesk/internal/repository"
	"tripdesk/internal/service/board"
	"tripdesk/internal/service/commission"
	"tripdesk/internal/service/engagement"
	"tripdesk/internal/service/itinerary"
	"tripdesk/internal/service/payment"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	logger.Init()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Board.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	enquiryRepo := repository.NewEnquiryRepository(pool)
	itineraryRepo := repository.NewItineraryRepository(pool)
	feedbackRepo := repository.NewFeedbackRepository(pool)
	sentRepo := repository.NewSentItineraryRepository(pool)
	commissionRepo := repository.NewCommissionRepository(pool)
	paymentRepo := repository.NewPaymentMethodRepository(pool)

	boardService := board.NewBoardService(
		enquiryRepo,
		redisCache,
		producer,
		cfg.Kafka.EnquiryTopic,
		board.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	itineraryService := itinerary.NewItineraryService(itineraryRepo, enquiryRepo)
	engagementService := engagement.NewEngagementService(feedbackRepo, sentRepo, enquiryRepo, producer, cfg.Kafka.NotificationsTopic)
	commissionService := commission.NewCommissionService(commissionRepo, enquiryRepo)
	paymentService := payment.NewPaymentService(paymentRepo, enquiryRepo)

	logger.Log.Info().Str("address", cfg.HTTP.Address).Msg("starting server")
	if err := bootstrap.Run(ctx, cfg, boardService, itineraryService, engagementService, commissionService, paymentService); err != nil {
		logger.Log.Fatal().Err(err).Msg("server error")
	}
}
