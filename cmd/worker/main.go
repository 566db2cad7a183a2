package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripdesk/config"
	"tripdesk/internal/email"
	"tripdesk/internal/kafka"
	"tripdesk/internal/logger"
	"tripdesk/internal/repository"
	"tripdesk/internal/service/board"

	"github.com/jackc/pgx/v5/pgxpool"
	kafkaGo "github.com/segmentio/kafka-go"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	enquiryRepo := repository.NewEnquiryRepository(pool)
	boardService := board.NewBoardService(
		enquiryRepo,
		nil,
		producer,
		cfg.Kafka.EnquiryTopic,
		board.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event kafka.EnquiryEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				logger.Log.Error().Err(err).Msg("decode event")
				return nil
			}
			return emailSender.Send(ctx, event)
		}); err != nil {
			logger.Log.Error().Err(err).Msg("consumer stopped")
		}
	}()

	sweepTicker := time.NewTicker(time.Duration(cfg.Worker.SweepMinutes) * time.Minute)
	defer sweepTicker.Stop()

	staleAfter := time.Duration(cfg.Worker.StaleAfterDays) * 24 * time.Hour

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sweepTicker.C:
			idle, err := boardService.NotifyIdleEnquiries(ctx, staleAfter)
			if err != nil {
				logger.Log.Error().Err(err).Msg("idle enquiry sweep")
				continue
			}
			if len(idle) > 0 {
				logger.Log.Info().Int("count", len(idle)).Msg("follow-up reminders queued")
			}
		case s := <-sig:
			logger.Log.Info().Str("signal", s.String()).Msg("shutting down")
			return
		}
	}
}
