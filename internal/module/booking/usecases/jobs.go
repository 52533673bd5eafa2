package usecases

import (
	"context"
	"fmt"

	"travel-booking-service/internal/module/booking/models/entity"
	"travel-booking-service/internal/module/booking/models/request"
	"travel-booking-service/internal/module/booking/models/response"
	"travel-booking-service/internal/module/booking/repositories"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/messagestream"
	"travel-booking-service/internal/pkg/scheduler"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"go.elastic.co/apm"
)

// scheduleExpiry enqueues the pending-booking timeout. Failures are logged; the booking stays valid.
func (u *usecase) scheduleExpiry(ctx context.Context, bookingID uuid.UUID, bookingType string) {
	payload, err := json.Marshal(request.ExpireBooking{BookingID: bookingID.String(), BookingType: bookingType})
	if err != nil {
		u.log.Error(ctx, "error marshal expire booking payload", err)
		return
	}
	task := asynq.NewTask(scheduler.TypeExpireBooking, payload)
	if _, err := u.repo.SetTaskScheduler(ctx, u.cfg.PendingTTL, task, expiryTaskID(bookingID)); err != nil {
		u.log.Error(ctx, "error schedule booking expiry", "booking_id", bookingID.String(), "error", err.Error())
	}
}

// ConfirmPayment moves a pending booking to CONFIRMED. Redelivered events for a confirmed booking are ignored.
func (u *usecase) ConfirmPayment(ctx context.Context, payload *request.PaymentConfirmed) error {
	span, ctx := apm.StartSpan(ctx, "ConfirmPayment", "usecase")
	defer span.End()

	id, err := parseID(payload.BookingID, "booking")
	if err != nil {
		return err
	}

	unlock, err := u.repo.LockBooking(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	now := u.now()
	var (
		event   request.BookingEvent
		changed bool
	)
	err = u.repo.WithTransaction(ctx, func(repo repositories.Repositories) error {
		switch payload.BookingType {
		case BookingTypeTour:
			booking, err := repo.FindTourBookingByID(ctx, id, true)
			if err != nil {
				return err
			}
			previous := booking.Status
			if changed, err = confirmable(previous); err != nil || !changed {
				return err
			}
			booking.Stamp(entity.StatusConfirmed, now)
			if err := repo.UpdateTourBooking(ctx, &booking); err != nil {
				return err
			}
			event = tourEvent(booking, previous)
		case BookingTypeVehicle:
			booking, err := repo.FindVehicleBookingByID(ctx, id, true)
			if err != nil {
				return err
			}
			previous := booking.Status
			if changed, err = confirmable(previous); err != nil || !changed {
				return err
			}
			booking.Stamp(entity.StatusConfirmed, now)
			if err := repo.UpdateVehicleBooking(ctx, &booking); err != nil {
				return err
			}
			event = vehicleEvent(booking, previous)
		default:
			return errors.ValidationError(fmt.Sprintf("unknown booking type %q", payload.BookingType))
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !changed {
		u.log.Info(ctx, "payment already applied", "booking_id", id.String(), "payment_id", payload.PaymentID)
		return nil
	}

	u.cancelExpiry(ctx, id)
	u.publishEvent(ctx, messagestream.TopicBookingStatusChanged, event)
	return nil
}

func confirmable(status entity.Status) (bool, error) {
	switch status {
	case entity.StatusPending:
		return true, nil
	case entity.StatusConfirmed:
		return false, nil
	}
	return false, errors.InvalidState(fmt.Sprintf("booking is %s, payment can only confirm PENDING bookings", status))
}

// ExpirePendingBooking cancels a booking that stayed PENDING past the configured TTL.
func (u *usecase) ExpirePendingBooking(ctx context.Context, payload *request.ExpireBooking) error {
	span, ctx := apm.StartSpan(ctx, "ExpirePendingBooking", "usecase")
	defer span.End()

	id, err := parseID(payload.BookingID, "booking")
	if err != nil {
		return err
	}

	unlock, err := u.repo.LockBooking(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	now := u.now()
	var (
		event      request.BookingEvent
		expired    bool
		scheduleID uuid.UUID
	)
	err = u.repo.WithTransaction(ctx, func(repo repositories.Repositories) error {
		switch payload.BookingType {
		case BookingTypeTour:
			booking, err := repo.FindTourBookingByID(ctx, id, true)
			if err != nil {
				return err
			}
			if !u.isExpired(booking.Lifecycle) {
				return nil
			}
			schedule, err := repo.FindScheduleByID(ctx, booking.ScheduleID, true)
			if err != nil {
				return err
			}
			cancelLifecycle(&booking.Lifecycle, now, decimal.Zero, "pending booking expired", actorSystem)
			if err := repo.UpdateTourBooking(ctx, &booking); err != nil {
				return err
			}
			if err := repo.AdjustScheduleBookings(ctx, schedule.ID, -booking.NumberOfParticipants); err != nil {
				return err
			}
			scheduleID = schedule.ID
			event = tourEvent(booking, entity.StatusPending)
		case BookingTypeVehicle:
			booking, err := repo.FindVehicleBookingByID(ctx, id, true)
			if err != nil {
				return err
			}
			if !u.isExpired(booking.Lifecycle) {
				return nil
			}
			cancelLifecycle(&booking.Lifecycle, now, decimal.Zero, "pending booking expired", actorSystem)
			if err := repo.UpdateVehicleBooking(ctx, &booking); err != nil {
				return err
			}
			event = vehicleEvent(booking, entity.StatusPending)
		default:
			return errors.ValidationError(fmt.Sprintf("unknown booking type %q", payload.BookingType))
		}
		expired = true
		return nil
	})
	if errors.IsKind(err, errors.KindNotFound) {
		u.log.Warn(ctx, "expiring booking not found", "booking_id", id.String())
		return nil
	}
	if err != nil {
		return err
	}
	if !expired {
		return nil
	}

	if scheduleID != uuid.Nil {
		u.invalidateScheduleHint(ctx, scheduleID)
	}
	u.log.Info(ctx, "pending booking expired", "booking_id", id.String(), "booking_type", payload.BookingType)
	u.publishEvent(ctx, messagestream.TopicBookingCancelled, event)
	return nil
}

func (u *usecase) isExpired(l entity.Lifecycle) bool {
	return l.Status == entity.StatusPending && !u.now().Before(l.CreatedAt.Add(u.cfg.PendingTTL))
}

// ReconcileScheduleCounters rewrites every schedule counter that drifted from its bookings.
func (u *usecase) ReconcileScheduleCounters(ctx context.Context) (response.ReconcileResult, error) {
	span, ctx := apm.StartSpan(ctx, "ReconcileScheduleCounters", "usecase")
	defer span.End()

	sums, err := u.repo.ListScheduleCommitments(ctx)
	if err != nil {
		return response.ReconcileResult{}, err
	}

	result := response.ReconcileResult{Checked: len(sums), Corrected: []response.ScheduleCorrection{}}
	for _, sum := range sums {
		if sum.CurrentBookings == sum.Committed {
			continue
		}

		var (
			correction response.ScheduleCorrection
			corrected  bool
		)
		err := u.repo.WithTransaction(ctx, func(repo repositories.Repositories) error {
			schedules, err := repo.LockSchedules(ctx, sum.ScheduleID)
			if err != nil {
				return err
			}
			schedule := schedules[sum.ScheduleID]

			// recount under the lock, the listing may be stale
			actual, err := repo.SumScheduleParticipants(ctx, sum.ScheduleID)
			if err != nil {
				return err
			}
			if actual == schedule.CurrentBookings {
				return nil
			}
			if err := repo.SetScheduleBookings(ctx, sum.ScheduleID, actual); err != nil {
				return err
			}

			correction = response.ScheduleCorrection{
				ScheduleID: sum.ScheduleID.String(),
				Previous:   schedule.CurrentBookings,
				Actual:     actual,
			}
			corrected = true
			return nil
		})
		if err != nil {
			u.log.Error(ctx, "error reconcile schedule", "schedule_id", sum.ScheduleID.String(), "error", err.Error())
			continue
		}
		if !corrected {
			continue
		}

		u.log.Warn(ctx, "schedule counter corrected",
			"schedule_id", correction.ScheduleID, "previous", correction.Previous, "actual", correction.Actual)
		result.Corrected = append(result.Corrected, correction)
		u.invalidateScheduleHint(ctx, sum.ScheduleID)
	}

	return result, nil
}
