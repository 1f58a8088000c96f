package cron

import (
	"context"
	"fmt"
	"time"

	"localpro/services/rating"
	"localpro/services/tasks"
	"localpro/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// StartRatingWorker starts the background worker that processes rating
// reconcile tasks. The caller owns the returned server and shuts it down.
func StartRatingWorker(redisOpts asynq.RedisClientOpt, ratingSvc rating.RatingService, logger *zap.Logger) (*asynq.Server, error) {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeRatingReconcile, handleRatingReconcile(ratingSvc, logger))

	const maxAttempts = 5
	for attempts := 1; ; attempts++ {
		err := srv.Start(mux)
		if err == nil {
			logger.Info("rating worker started")
			return srv, nil
		}
		logger.Warn("failed to start rating worker",
			zap.Int("attempt", attempts),
			zap.Int("maxAttempts", maxAttempts),
			zap.Error(err),
		)
		if attempts == maxAttempts {
			return nil, fmt.Errorf("rating worker did not start: %w", err)
		}
		time.Sleep(time.Duration(attempts*2) * time.Second)
	}
}

func handleRatingReconcile(ratingSvc rating.RatingService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseRatingReconcile(task)
		if err != nil {
			logger.Error("dropping rating reconcile task", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		summary, err := ratingSvc.Recompute(ctx, p.ProviderID)
		if err != nil {
			if utils.KindOf(err) == utils.KindNotFound {
				logger.Warn("rating reconcile for missing provider", zap.String("providerId", p.ProviderID))
				return nil
			}
			logger.Error("rating reconcile failed", zap.String("providerId", p.ProviderID), zap.Error(err))
			return err
		}

		logger.Info("rating reconciled",
			zap.String("providerId", p.ProviderID),
			zap.Float64("ratingAverage", summary.RatingAverage),
			zap.Int("totalReviews", summary.TotalReviews),
		)
		return nil
	}
}
