package repositories

import (
	"context"
	stderrors "errors"
	"time"

	"travel-booking-service/internal/pkg/errors"

	"github.com/hibiken/asynq"
)

const defaultQueue = "default"

// SetTaskScheduler implements Repositories. Re-enqueueing the same taskID is a no-op.
func (r *repositories) SetTaskScheduler(ctx context.Context, delay time.Duration, task *asynq.Task, taskID string) (string, error) {
	if r.asynqClient == nil {
		return "", errors.InternalServerError("task scheduler is not configured")
	}

	opts := []asynq.Option{asynq.ProcessIn(delay), asynq.Queue(defaultQueue), asynq.MaxRetry(5)}
	if taskID != "" {
		opts = append(opts, asynq.TaskID(taskID))
	}

	info, err := r.asynqClient.EnqueueContext(ctx, task, opts...)
	if stderrors.Is(err, asynq.ErrTaskIDConflict) {
		return taskID, nil
	}
	if err != nil {
		r.log.Error(ctx, "error enqueue task", err)
		return "", errors.InternalServerError("error schedule task")
	}
	return info.ID, nil
}

// DeleteTaskScheduler implements Repositories.
func (r *repositories) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	if r.inspector == nil || taskID == "" {
		return nil
	}
	err := r.inspector.DeleteTask(defaultQueue, taskID)
	if err != nil && !stderrors.Is(err, asynq.ErrTaskNotFound) {
		r.log.Error(ctx, "error delete task", err)
		return errors.InternalServerError("error delete scheduled task")
	}
	return nil
}
