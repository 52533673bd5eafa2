package repositories

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"travel-booking-service/internal/pkg/errors"

	"github.com/go-redsync/redsync/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const availabilityHintTTL = time.Minute

func scheduleAvailabilityKey(scheduleID uuid.UUID) string {
	return fmt.Sprintf("availability:schedule:%s", scheduleID)
}

// GetScheduleAvailability implements Repositories. The value is a hint; ok is false on a miss.
func (r *repositories) GetScheduleAvailability(ctx context.Context, scheduleID uuid.UUID) (int, bool, error) {
	if r.redisClient == nil {
		return 0, false, nil
	}
	data, err := r.redisClient.Get(ctx, scheduleAvailabilityKey(scheduleID)).Result()
	if stderrors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.InternalServerError("error get schedule availability")
	}
	remaining, err := strconv.Atoi(data)
	if err != nil {
		return 0, false, errors.InternalServerError("error parse schedule availability")
	}
	return remaining, true, nil
}

// SetScheduleAvailability implements Repositories.
func (r *repositories) SetScheduleAvailability(ctx context.Context, scheduleID uuid.UUID, remaining int) error {
	if r.redisClient == nil {
		return nil
	}
	if err := r.redisClient.Set(ctx, scheduleAvailabilityKey(scheduleID), remaining, availabilityHintTTL).Err(); err != nil {
		return errors.InternalServerError("error set schedule availability")
	}
	return nil
}

// DeleteScheduleAvailability implements Repositories. Writers drop the hint after commit.
func (r *repositories) DeleteScheduleAvailability(ctx context.Context, scheduleID uuid.UUID) error {
	if r.redisClient == nil {
		return nil
	}
	if err := r.redisClient.Del(ctx, scheduleAvailabilityKey(scheduleID)).Err(); err != nil {
		return errors.InternalServerError("error delete schedule availability")
	}
	return nil
}

// LockBooking implements Repositories. It fails fast when another instance holds the booking.
func (r *repositories) LockBooking(ctx context.Context, bookingID uuid.UUID) (func(), error) {
	if r.redsync == nil {
		return func() {}, nil
	}

	mutex := r.redsync.NewMutex(
		fmt.Sprintf("lock:booking:%s", bookingID),
		redsync.WithExpiry(r.cfgBooking.MutationLockTTL),
		redsync.WithTries(1),
	)
	if err := mutex.LockContext(ctx); err != nil {
		r.log.Warn(ctx, "booking lock not acquired", "booking_id", bookingID.String(), "error", err.Error())
		return nil, errors.RetryableConflict("booking is being modified by another request, please retry")
	}

	return func() {
		if _, err := mutex.UnlockContext(context.Background()); err != nil {
			r.log.Warn(ctx, "error release booking lock", "booking_id", bookingID.String(), "error", err.Error())
		}
	}, nil
}
