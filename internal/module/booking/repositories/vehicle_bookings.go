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

const vehicleBookingColumns = `id, booking_code, user_id, vehicle_id, destination_id, start_date, end_date, duration_days, number_of_vehicles,
	base_price, seasonal_multiplier, base_amount,
	addon_needed, addon_quantity, addon_pricing_type, addon_rate, addon_min_charge, addon_amount,
	coupon_code, discounts, discount_total, gross_amount, total_price, advance_amount, remaining_amount,
	status, refund_amount, cancellation_reason, cancelled_by,
	created_at, updated_at, confirmed_at, cancelled_at, completed_at`

// InsertVehicleBooking implements Repositories.
func (r *repositories) InsertVehicleBooking(ctx context.Context, booking *entity.VehicleBooking) error {
	query := `INSERT INTO vehicle_bookings (` + vehicleBookingColumns + `) VALUES (
		:id, :booking_code, :user_id, :vehicle_id, :destination_id, :start_date, :end_date, :duration_days, :number_of_vehicles,
		:base_price, :seasonal_multiplier, :base_amount,
		:addon_needed, :addon_quantity, :addon_pricing_type, :addon_rate, :addon_min_charge, :addon_amount,
		:coupon_code, :discounts, :discount_total, :gross_amount, :total_price, :advance_amount, :remaining_amount,
		:status, :refund_amount, :cancellation_reason, :cancelled_by,
		:created_at, :updated_at, :confirmed_at, :cancelled_at, :completed_at)`
	if _, err := sqlx.NamedExecContext(ctx, r.exec, query, booking); err != nil {
		if database.IsUniqueViolation(err) {
			return errors.RetryableConflict("booking code collision, please retry")
		}
		return fmt.Errorf("insert vehicle booking: %w", err)
	}
	return nil
}

// UpdateVehicleBooking implements Repositories.
func (r *repositories) UpdateVehicleBooking(ctx context.Context, booking *entity.VehicleBooking) error {
	query := `UPDATE vehicle_bookings SET
		start_date = :start_date,
		end_date = :end_date,
		duration_days = :duration_days,
		number_of_vehicles = :number_of_vehicles,
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
		advance_amount = :advance_amount,
		remaining_amount = :remaining_amount,
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
		return fmt.Errorf("update vehicle booking: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound(fmt.Sprintf("booking %s not found", booking.ID))
	}
	return nil
}

// FindVehicleBookingByID implements Repositories.
func (r *repositories) FindVehicleBookingByID(ctx context.Context, id uuid.UUID, forUpdate bool) (entity.VehicleBooking, error) {
	var booking entity.VehicleBooking
	query := `SELECT ` + vehicleBookingColumns + ` FROM vehicle_bookings WHERE id = $1` + lockClause(forUpdate)
	err := sqlx.GetContext(ctx, r.exec, &booking, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.VehicleBooking{}, errors.NotFound(fmt.Sprintf("booking %s not found", id))
	}
	if err != nil {
		return entity.VehicleBooking{}, fmt.Errorf("find vehicle booking: %w", err)
	}
	return booking, nil
}

// FindVehicleBookingsByUserID implements Repositories.
func (r *repositories) FindVehicleBookingsByUserID(ctx context.Context, userID int64) ([]entity.VehicleBooking, error) {
	bookings := []entity.VehicleBooking{}
	query := `SELECT ` + vehicleBookingColumns + ` FROM vehicle_bookings WHERE user_id = $1 ORDER BY created_at DESC`
	if err := sqlx.SelectContext(ctx, r.exec, &bookings, query, userID); err != nil {
		return nil, fmt.Errorf("find vehicle bookings by user: %w", err)
	}
	return bookings, nil
}
