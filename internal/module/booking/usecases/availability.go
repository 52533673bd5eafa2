package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"travel-booking-service/internal/module/booking/models/entity"
	"travel-booking-service/internal/module/booking/models/request"
	"travel-booking-service/internal/module/booking/models/response"
	"travel-booking-service/internal/module/booking/repositories"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/helpers"

	"github.com/google/uuid"
	"go.elastic.co/apm"
)

const (
	unitSeats    = "seats"
	unitVehicles = "vehicles"
)

// checkBounds enforces optional min/max limits on the new total quantity.
func checkBounds(lower, upper sql.NullInt64, quantity int, unit string) error {
	if lower.Valid && int64(quantity) < lower.Int64 {
		return errors.ValidationError(fmt.Sprintf("at least %d %s required, %d requested", lower.Int64, unit, quantity))
	}
	if upper.Valid && int64(quantity) > upper.Int64 {
		return errors.ValidationError(fmt.Sprintf("at most %d %s allowed, %d requested", upper.Int64, unit, quantity))
	}
	return nil
}

func checkTourActive(tour entity.Tour, schedule entity.TourSchedule) error {
	if !tour.IsActive {
		return errors.ResourceUnavailable(fmt.Sprintf("tour %s is not active", tour.ID))
	}
	if !schedule.IsActive {
		return errors.ResourceUnavailable(fmt.Sprintf("schedule %s is not active", schedule.ID))
	}
	return nil
}

func checkVehicleActive(vehicle entity.Vehicle) error {
	if !vehicle.IsActive {
		return errors.ResourceUnavailable(fmt.Sprintf("vehicle %s is not active", vehicle.ID))
	}
	return nil
}

// checkSeats compares a requested seat increase against the schedule counter.
func checkSeats(schedule entity.TourSchedule, requested int) error {
	if remaining := schedule.RemainingSeats(); remaining < requested {
		return errors.NewCapacityExceeded(remaining, requested, unitSeats)
	}
	return nil
}

// availableVehicleUnits counts free units over [start, end], ignoring excludeID.
func availableVehicleUnits(ctx context.Context, repo repositories.Repositories, vehicle entity.Vehicle, start, end time.Time, excludeID uuid.UUID) (int, error) {
	used, err := repo.SumOverlappingVehicleUnits(ctx, vehicle.ID, start, end, excludeID)
	if err != nil {
		return 0, err
	}
	available := vehicle.TotalQuantity - used
	if available < 0 {
		available = 0
	}
	return available, nil
}

func checkVehicleUnits(ctx context.Context, repo repositories.Repositories, vehicle entity.Vehicle, start, end time.Time, requested int, excludeID uuid.UUID) error {
	available, err := availableVehicleUnits(ctx, repo, vehicle, start, end, excludeID)
	if err != nil {
		return err
	}
	if available < requested {
		return errors.NewCapacityExceeded(available, requested, unitVehicles)
	}
	return nil
}

// parseInterval reads a rental interval; end must fall after start.
func parseDate(raw string) (time.Time, error) {
	t, err := helpers.ParseDate(raw)
	if err != nil {
		return time.Time{}, errors.ValidationError(err.Error())
	}
	return t.UTC(), nil
}

func parseInterval(rawStart, rawEnd string) (time.Time, time.Time, error) {
	start, err := parseDate(rawStart)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate(rawEnd)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, errors.ValidationError("end date must be after start date")
	}
	return start, end, nil
}

func (u *usecase) checkNotPast(start time.Time) error {
	today := u.now().Truncate(24 * time.Hour)
	if start.Before(today) {
		return errors.ValidationError("start date must not be in the past")
	}
	return nil
}

// CheckTourAvailability reads the schedule counter and refreshes the cached hint.
func (u *usecase) CheckTourAvailability(ctx context.Context, scheduleID string, quantity int) (response.Availability, error) {
	span, ctx := apm.StartSpan(ctx, "CheckTourAvailability", "usecase")
	defer span.End()

	id, err := parseID(scheduleID, "schedule")
	if err != nil {
		return response.Availability{}, err
	}

	schedule, err := u.repo.FindScheduleByID(ctx, id, false)
	if err != nil {
		return response.Availability{}, err
	}
	tour, err := u.repo.FindTourByID(ctx, schedule.TourID)
	if err != nil {
		return response.Availability{}, err
	}
	if err := checkTourActive(tour, schedule); err != nil {
		return response.Availability{}, err
	}

	remaining := schedule.RemainingSeats()
	if remaining < 0 {
		remaining = 0
	}
	if err := u.repo.SetScheduleAvailability(ctx, id, remaining); err != nil {
		u.log.Warn(ctx, "error set availability hint", "schedule_id", id.String(), "error", err.Error())
	}

	resp := response.Availability{ResourceID: id.String(), Available: remaining, Requested: quantity}
	if remaining < quantity {
		return resp, errors.NewCapacityExceeded(remaining, quantity, unitSeats)
	}
	return resp, nil
}

// CheckVehicleAvailability always counts live overlapping bookings.
func (u *usecase) CheckVehicleAvailability(ctx context.Context, vehicleID string, payload *request.VehicleAvailability) (response.Availability, error) {
	span, ctx := apm.StartSpan(ctx, "CheckVehicleAvailability", "usecase")
	defer span.End()

	id, err := parseID(vehicleID, "vehicle")
	if err != nil {
		return response.Availability{}, err
	}
	start, end, err := parseInterval(payload.StartDate, payload.EndDate)
	if err != nil {
		return response.Availability{}, err
	}

	vehicle, err := u.repo.FindVehicleByID(ctx, id, false)
	if err != nil {
		return response.Availability{}, err
	}
	if err := checkVehicleActive(vehicle); err != nil {
		return response.Availability{}, err
	}

	available, err := availableVehicleUnits(ctx, u.repo, vehicle, start, end, uuid.Nil)
	if err != nil {
		return response.Availability{}, err
	}

	resp := response.Availability{ResourceID: id.String(), Available: available, Requested: payload.Quantity}
	if available < payload.Quantity {
		return resp, errors.NewCapacityExceeded(available, payload.Quantity, unitVehicles)
	}
	return resp, nil
}

// scheduleHint is a pre-check only. The schedule counter read under lock stays authoritative.
func (u *usecase) scheduleHint(ctx context.Context, scheduleID uuid.UUID) (int, bool) {
	remaining, ok, err := u.repo.GetScheduleAvailability(ctx, scheduleID)
	if err != nil {
		u.log.Warn(ctx, "error read availability hint", "schedule_id", scheduleID.String(), "error", err.Error())
		return 0, false
	}
	return remaining, ok
}

func (u *usecase) invalidateScheduleHint(ctx context.Context, scheduleID uuid.UUID) {
	if err := u.repo.DeleteScheduleAvailability(ctx, scheduleID); err != nil {
		u.log.Warn(ctx, "error delete availability hint", "schedule_id", scheduleID.String(), "error", err.Error())
	}
}
