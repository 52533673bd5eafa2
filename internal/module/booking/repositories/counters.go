package repositories

import (
	"context"
	"fmt"
	"time"

	"travel-booking-service/internal/module/booking/models/entity"
	"travel-booking-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

func committedStatuses() pq.StringArray {
	out := make(pq.StringArray, 0, len(entity.CommittedStatuses))
	for _, s := range entity.CommittedStatuses {
		out = append(out, string(s))
	}
	return out
}

// AdjustScheduleBookings implements Repositories.
func (r *repositories) AdjustScheduleBookings(ctx context.Context, scheduleID uuid.UUID, delta int) error {
	if delta == 0 {
		return nil
	}
	query := `UPDATE tour_schedules
		SET current_bookings = GREATEST(current_bookings + $2, 0), updated_at = now()
		WHERE id = $1`
	res, err := r.exec.ExecContext(ctx, query, scheduleID, delta)
	if err != nil {
		return fmt.Errorf("adjust schedule bookings: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound(fmt.Sprintf("schedule %s not found", scheduleID))
	}
	return nil
}

// AdjustCouponUsage implements Repositories.
func (r *repositories) AdjustCouponUsage(ctx context.Context, code string, delta int) error {
	if code == "" || delta == 0 {
		return nil
	}
	query := `UPDATE coupons SET usage_count = GREATEST(usage_count + $2, 0) WHERE code = $1`
	if _, err := r.exec.ExecContext(ctx, query, code, delta); err != nil {
		return fmt.Errorf("adjust coupon usage: %w", err)
	}
	return nil
}

// SumScheduleParticipants implements Repositories. Seats stay sold once a tour completes.
func (r *repositories) SumScheduleParticipants(ctx context.Context, scheduleID uuid.UUID) (int, error) {
	var total int
	query := `SELECT COALESCE(SUM(number_of_participants), 0)
		FROM tour_bookings
		WHERE schedule_id = $1 AND status <> $2`
	if err := sqlx.GetContext(ctx, r.exec, &total, query, scheduleID, entity.StatusCancelled); err != nil {
		return 0, fmt.Errorf("sum schedule participants: %w", err)
	}
	return total, nil
}

// SetScheduleBookings implements Repositories.
func (r *repositories) SetScheduleBookings(ctx context.Context, scheduleID uuid.UUID, count int) error {
	query := `UPDATE tour_schedules SET current_bookings = $2, updated_at = now() WHERE id = $1`
	if _, err := r.exec.ExecContext(ctx, query, scheduleID, count); err != nil {
		return fmt.Errorf("set schedule bookings: %w", err)
	}
	return nil
}

// ListScheduleCommitments implements Repositories.
func (r *repositories) ListScheduleCommitments(ctx context.Context) ([]entity.ScheduleSum, error) {
	sums := []entity.ScheduleSum{}
	query := `SELECT s.id AS schedule_id, s.current_bookings,
			COALESCE(SUM(b.number_of_participants) FILTER (WHERE b.status <> $1), 0) AS committed
		FROM tour_schedules s
		LEFT JOIN tour_bookings b ON b.schedule_id = s.id
		GROUP BY s.id, s.current_bookings`
	if err := sqlx.SelectContext(ctx, r.exec, &sums, query, entity.StatusCancelled); err != nil {
		return nil, fmt.Errorf("list schedule commitments: %w", err)
	}
	return sums, nil
}

// SumOverlappingVehicleUnits implements Repositories.
// Overlap is existing.start <= end AND existing.end >= start.
func (r *repositories) SumOverlappingVehicleUnits(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, excludeBookingID uuid.UUID) (int, error) {
	var total int
	query := `SELECT COALESCE(SUM(number_of_vehicles), 0)
		FROM vehicle_bookings
		WHERE vehicle_id = $1
			AND status = ANY($2)
			AND start_date <= $3
			AND end_date >= $4
			AND id <> $5`
	err := sqlx.GetContext(ctx, r.exec, &total, query, vehicleID, committedStatuses(), end, start, excludeBookingID)
	if err != nil {
		return 0, fmt.Errorf("sum overlapping vehicle units: %w", err)
	}
	return total, nil
}
