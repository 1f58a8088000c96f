package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const TypeRatingReconcile = "rating:reconcile"

// RatingReconcileMaxRetry bounds how often a failed recompute is retried.
const RatingReconcileMaxRetry = 5

type RatingReconcilePayload struct {
	ProviderID string `json:"providerId"`
}

// NewRatingReconcileTask builds a task that recomputes one provider's
// rating. Tasks for the same provider are deduplicated for a minute.
func NewRatingReconcileTask(providerID string) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(RatingReconcilePayload{ProviderID: providerID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeRatingReconcile, b)
	opts := []asynq.Option{
		asynq.MaxRetry(RatingReconcileMaxRetry),
		asynq.Timeout(30 * time.Second),
		asynq.Unique(time.Minute),
	}
	return task, opts, nil
}

// ParseRatingReconcile decodes and checks a task payload.
func ParseRatingReconcile(task *asynq.Task) (RatingReconcilePayload, error) {
	var p RatingReconcilePayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid rating reconcile payload: %w", err)
	}
	if p.ProviderID == "" {
		return p, errors.New("rating reconcile payload has no providerId")
	}
	return p, nil
}

type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// RatingReconciler schedules rating recomputes on the task queue.
type RatingReconciler struct {
	Client taskEnqueuer
}

func NewRatingReconciler(client *asynq.Client) *RatingReconciler {
	return &RatingReconciler{Client: client}
}

func (r *RatingReconciler) EnqueueRatingReconcile(ctx context.Context, providerID string) error {
	task, opts, err := NewRatingReconcileTask(providerID)
	if err != nil {
		return err
	}
	if _, err := r.Client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrDuplicateTask) {
			return nil
		}
		return fmt.Errorf("failed to enqueue rating reconcile for %s: %w", providerID, err)
	}
	return nil
}
