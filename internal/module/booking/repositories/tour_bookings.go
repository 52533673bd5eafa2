package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"travel-booking-service/internal/module/booking/models/entity"
	"travel-booking-service/internal/pkg/database"
	"travel-booking-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const tourBookingColumns = `id, booking_code, user_id, tour_id, schedule_id, destination_id, number_of_participants,
	base_price, seasonal_multiplier, base_amount,
	addon_needed, addon_quantity, addon_pricing_type, addon_rate, addon_min_charge, addon_amount,
	coupon_code, discounts, discount_total, gross_amount, total_price, price_per_participant,
	status, refund_amount, cancellation_reason, cancelled_by,
	created_at, updated_at, confirmed_at, cancelled_at, completed_at`

// InsertTourBooking implements Repositories.
func (r *repositories) InsertTourBooking(ctx context.Context, booking *entity.TourBooking) error {
	query := `INSERT INTO tour_bookings (` + tourBookingColumns + `) VALUES (
		:id, :booking_code, :user_id, :tour_id, :schedule_id, :destination_id, :number_of_participants,
		:base_price, :seasonal_multiplier, :base_amount,
		:addon_needed, :addon_quantity, :addon_pricing_type, :addon_rate, :addon_min_charge, :addon_amount,
		:coupon_code, :discounts, :discount_total, :gross_amount, :total_price, :price_per_participant,
		:status, :refund_amount, :cancellation_reason, :cancelled_by,
		:created_at, :updated_at, :confirmed_at, :cancelled_at, :completed_at)`
	if _, err := sqlx.NamedExecContext(ctx, r.exec, query, booking); err != nil {
		if database.IsUniqueViolation(err) {
			return errors.RetryableConflict("booking code collision, please retry")
		}
		return fmt.Errorf("insert tour booking: %w", err)
	}
	return nil
}

// UpdateTourBooking implements Repositories. The price snapshot is written as a whole.
func (r *repositories) UpdateTourBooking(ctx context.Context, booking *entity.TourBooking) error {
	query := `UPDATE tour_bookings SET
		schedule_id = :schedule_id,
		number_of_participants = :number_of_participants,
		base_price = :base_price,
		seasonal_multiplier = :seasonal_multiplier,
		base_amount = :base_amount,
		addon_needed = :addon_needed,
		addon_quantity = :addon_quantity,
		addon_pricing_type = :addon_pricing_type,
		addon_rate = :addon_rate,
		addon_min_charge = :addon_min_charge,
		addon_amount = :addon_amount,
		coupon_code = :coupon_code,
		discounts = :discounts,
		discount_total = :discount_total,
		gross_amount = :gross_amount,
		total_price = :total_price,
		price_per_participant = :price_per_participant,
		status = :status,
		refund_amount = :refund_amount,
		cancellation_reason = :cancellation_reason,
		cancelled_by = :cancelled_by,
		updated_at = :updated_at,
		confirmed_at = :confirmed_at,
		cancelled_at = :cancelled_at,
		completed_at = :completed_at
		WHERE id = :id`
	res, err := sqlx.NamedExecContext(ctx, r.exec, query, booking)
	if err != nil {
		return fmt.Errorf("update tour booking: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound(fmt.Sprintf("booking %s not found", booking.ID))
	}
	return nil
}

// FindTourBookingByID implements Repositories.
func (r *repositories) FindTourBookingByID(ctx context.Context, id uuid.UUID, forUpdate bool) (entity.TourBooking, error) {
	var booking entity.TourBooking
	query := `SELECT ` + tourBookingColumns + ` FROM tour_bookings WHERE id = $1` + lockClause(forUpdate)
	err := sqlx.GetContext(ctx, r.exec, &booking, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.TourBooking{}, errors.NotFound(fmt.Sprintf("booking %s not found", id))
	}
	if err != nil {
		return entity.TourBooking{}, fmt.Errorf("find tour booking: %w", err)
	}
	return booking, nil
}

// FindTourBookingsByUserID implements Repositories.
func (r *repositories) FindTourBookingsByUserID(ctx context.Context, userID int64) ([]entity.TourBooking, error) {
	bookings := []entity.TourBooking{}
	query := `SELECT ` + tourBookingColumns + ` FROM tour_bookings WHERE user_id = $1 ORDER BY created_at DESC`
	if err := sqlx.SelectContext(ctx, r.exec, &bookings, query, userID); err != nil {
		return nil, fmt.Errorf("find tour bookings by user: %w", err)
	}
	return bookings, nil
}
