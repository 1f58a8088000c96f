package cron

import (
	"context"
	"errors"
	"testing"

	"localpro/models"
	"localpro/services/rating/mocks"
	"localpro/services/tasks"
	"localpro/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func reconcileTask(t *testing.T, providerID string) *asynq.Task {
	t.Helper()
	task, _, err := tasks.NewRatingReconcileTask(providerID)
	if err != nil {
		t.Fatal(err)
	}
	return task
}

func TestHandleRatingReconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes the provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockRatingService(ctrl)
		svc.EXPECT().Recompute(gomock.Any(), "p1").
			Return(&models.RatingSummary{ProviderID: "p1", RatingAverage: 4.5, TotalReviews: 2}, nil)

		if err := handleRatingReconcile(svc, zap.NewNop())(ctx, reconcileTask(t, "p1")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("failure is retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockRatingService(ctrl)
		cause := utils.NewInternalError("failed to aggregate reviews", errors.New("timeout"))
		svc.EXPECT().Recompute(gomock.Any(), "p1").Return(nil, cause)

		err := handleRatingReconcile(svc, zap.NewNop())(ctx, reconcileTask(t, "p1"))
		if !errors.Is(err, cause) {
			t.Fatalf("err = %v, want the recompute error", err)
		}
		if errors.Is(err, asynq.SkipRetry) {
			t.Error("transient failure must stay retryable")
		}
	})

	t.Run("missing provider is dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockRatingService(ctrl)
		svc.EXPECT().Recompute(gomock.Any(), "gone").Return(nil, utils.NewNotFoundError("provider not found"))

		if err := handleRatingReconcile(svc, zap.NewNop())(ctx, reconcileTask(t, "gone")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("bad payload skips retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockRatingService(ctrl)

		err := handleRatingReconcile(svc, zap.NewNop())(ctx, asynq.NewTask(tasks.TypeRatingReconcile, []byte("{")))
		if !errors.Is(err, asynq.SkipRetry) {
			t.Fatalf("err = %v, want SkipRetry", err)
		}
	})
}
