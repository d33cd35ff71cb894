package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/reviews-service/pkg/kafka"
	"github.com/Astemirdum/reviews-service/pkg/logger"
	"github.com/Astemirdum/reviews-service/reviews/config"
	"github.com/Astemirdum/reviews-service/reviews/internal/handler"
	"github.com/Astemirdum/reviews-service/reviews/internal/server"
	"github.com/Astemirdum/reviews-service/reviews/internal/service/ratings"
	"github.com/Astemirdum/reviews-service/reviews/internal/service/reviews"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 5 * time.Second

func Run(cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "reviews")
	defer log.Sync() //nolint:errcheck

	log.Info("config",
		zap.Bool("ratingsEnabled", bool(cfg.Ratings.Enabled)),
		zap.String("starColor", cfg.Ratings.StarColor),
		zap.String("ratingsURL", cfg.Ratings.ServiceURL()),
		zap.Duration("ratingsTimeout", cfg.Ratings.Timeout()),
		zap.Bool("breaker", cfg.Ratings.Breaker.Enabled),
		zap.Strings("kafka", cfg.Kafka.Addrs),
	)

	producer := newStatsProducer(cfg.Kafka, log)

	ratingsSvc := ratings.NewService(log, cfg)
	reviewsSvc := reviews.NewService(log, cfg, ratingsSvc)
	stats := handler.NewStatsLog(producer, cfg.Kafka.StatsTopic)
	h := handler.New(reviewsSvc, stats, log, handler.WithRateLimit(rate.Limit(cfg.Server.RateLimitRPS)))
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	gg, ctx := errgroup.WithContext(ctx)

	gg.Go(func() error {
		log.Info("http server start ON: ", zap.String("addr", srv.Addr()))
		return srv.Run()
	})
	if producer != nil {
		gg.Go(func() error {
			for perr := range producer.Errors() {
				log.Warn("stats producer", zap.Error(perr))
			}
			return nil
		})
	}
	gg.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Stop(closeCtx)
		// requests still in flight after a failed Stop get errs.ErrStatsClosed
		if cerr := stats.Close(); cerr != nil {
			log.Warn("stats.Close", zap.Error(cerr))
		}
		return err
	})

	if err := gg.Wait(); err != nil {
		log.Error("reviews stopped", zap.Error(err))
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}

// newStatsProducer returns nil when stats are off or the brokers cannot be reached.
func newStatsProducer(cfg kafka.Config, log *zap.Logger) sarama.AsyncProducer {
	if !cfg.Enabled() {
		return nil
	}
	producer, err := kafka.NewAsyncProducer(cfg)
	if err != nil {
		log.Warn("kafka.NewAsyncProducer, stats disabled", zap.Error(err))
		return nil
	}
	return producer
}
