package usecases

import (
	"context"
	"fmt"

	"travel-booking-service/internal/module/booking/models/entity"
	"travel-booking-service/internal/module/booking/models/request"
	"travel-booking-service/internal/module/booking/models/response"
	"travel-booking-service/internal/module/booking/pricing"
	"travel-booking-service/internal/module/booking/repositories"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/messagestream"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.elastic.co/apm"
)

const tourCodePrefix = "TB-"

func applyTourQuote(b *entity.TourBooking, q pricing.Quote, addon pricing.Addon) {
	b.AddonSelection = q.Selection(addon)
	b.PriceSnapshot = q.Snapshot()
	b.PricePerParticipant = q.PricePerParticipant
}

func tourEvent(b entity.TourBooking, previous entity.Status) request.BookingEvent {
	event := request.BookingEvent{
		BookingID:      b.ID.String(),
		BookingCode:    b.BookingCode,
		BookingType:    BookingTypeTour,
		UserID:         b.UserID,
		Status:         string(b.Status),
		PreviousStatus: string(previous),
		TotalPrice:     b.TotalPrice,
	}
	if b.RefundAmount.Valid {
		refund := b.RefundAmount.Decimal
		event.RefundAmount = &refund
	}
	return event
}

func (u *usecase) CreateTourBooking(ctx context.Context, payload *request.CreateTourBooking, userID int64) (response.TourBooking, error) {
	span, ctx := apm.StartSpan(ctx, "CreateTourBooking", "usecase")
	defer span.End()

	scheduleID, err := parseID(payload.ScheduleID, "schedule")
	if err != nil {
		return response.TourBooking{}, err
	}
	if remaining, ok := u.scheduleHint(ctx, scheduleID); ok && remaining < payload.NumberOfParticipants {
		return response.TourBooking{}, errors.NewCapacityExceeded(remaining, payload.NumberOfParticipants, unitSeats)
	}
	couponCode := normalizeCode(payload.CouponCode)
	now := u.now()

	var booking entity.TourBooking
	err = u.repo.WithTransaction(ctx, func(repo repositories.Repositories) error {
		schedule, err := repo.FindScheduleByID(ctx, scheduleID, true)
		if err != nil {
			return err
		}
		tour, err := repo.FindTourByID(ctx, schedule.TourID)
		if err != nil {
			return err
		}
		if err := checkTourActive(tour, schedule); err != nil {
			return err
		}
		if !schedule.StartDate.After(now) {
			return errors.ValidationError("schedule has already started")
		}
		if err := checkBounds(tour.MinParticipants, tour.MaxParticipants, payload.NumberOfParticipants, "participants"); err != nil {
			return err
		}
		if err := checkSeats(schedule, payload.NumberOfParticipants); err != nil {
			return err
		}

		addon, err := resolveAddon(ctx, repo, entity.AddonGuide, tour.ID, payload.Guide)
		if err != nil {
			return err
		}
		coupon, err := resolveCoupon(ctx, repo, couponCode, false, true)
		if err != nil {
			return err
		}
		quote, err := u.priceTour(ctx, repo, tourPricing{
			tour:         tour,
			schedule:     schedule,
			participants: payload.NumberOfParticipants,
			addon:        addon,
			coupon:       coupon,
		})
		if err != nil {
			return err
		}

		booking = entity.TourBooking{
			ID:                   uuid.New(),
			BookingCode:          newBookingCode(tourCodePrefix),
			UserID:               userID,
			TourID:               tour.ID,
			ScheduleID:           schedule.ID,
			DestinationID:        tour.DestinationID,
			NumberOfParticipants: payload.NumberOfParticipants,
			CouponCode:           nullString(couponCode),
			Lifecycle: entity.Lifecycle{
				Status:    entity.StatusPending,
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		applyTourQuote(&booking, quote, addon)

		if err := repo.InsertTourBooking(ctx, &booking); err != nil {
			return err
		}
		if err := repo.AdjustScheduleBookings(ctx, schedule.ID, booking.NumberOfParticipants); err != nil {
			return err
		}
		if err := repo.AdjustCouponUsage(ctx, couponCode, 1); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return response.TourBooking{}, err
	}

	u.invalidateScheduleHint(ctx, scheduleID)
	u.scheduleExpiry(ctx, booking.ID, BookingTypeTour)
	u.publishEvent(ctx, messagestream.TopicBookingCreated, tourEvent(booking, ""))

	return response.NewTourBooking(booking, u.cfg.Currency), nil
}

// QuoteTourBooking prices a tour booking without reserving anything.
func (u *usecase) QuoteTourBooking(ctx context.Context, payload *request.CreateTourBooking) (response.TourQuote, error) {
	span, ctx := apm.StartSpan(ctx, "QuoteTourBooking", "usecase")
	defer span.End()

	scheduleID, err := parseID(payload.ScheduleID, "schedule")
	if err != nil {
		return response.TourQuote{}, err
	}

	schedule, err := u.repo.FindScheduleByID(ctx, scheduleID, false)
	if err != nil {
		return response.TourQuote{}, err
	}
	tour, err := u.repo.FindTourByID(ctx, schedule.TourID)
	if err != nil {
		return response.TourQuote{}, err
	}
	if err := checkTourActive(tour, schedule); err != nil {
		return response.TourQuote{}, err
	}
	if err := checkBounds(tour.MinParticipants, tour.MaxParticipants, payload.NumberOfParticipants, "participants"); err != nil {
		return response.TourQuote{}, err
	}

	addon, err := resolveAddon(ctx, u.repo, entity.AddonGuide, tour.ID, payload.Guide)
	if err != nil {
		return response.TourQuote{}, err
	}
	coupon, err := resolveCoupon(ctx, u.repo, normalizeCode(payload.CouponCode), false, false)
	if err != nil {
		return response.TourQuote{}, err
	}
	quote, err := u.priceTour(ctx, u.repo, tourPricing{
		tour:         tour,
		schedule:     schedule,
		participants: payload.NumberOfParticipants,
		addon:        addon,
		coupon:       coupon,
	})
	if err != nil {
		return response.TourQuote{}, err
	}

	return response.TourQuote{
		ScheduleID:           schedule.ID.String(),
		NumberOfParticipants: payload.NumberOfParticipants,
		DurationDays:         tourDays(schedule),
		Guide:                response.NewAddon(quote.Selection(addon), quote.AddonAmount),
		Price:                response.NewPriceBreakdown(quote.Snapshot(), u.cfg.Currency),
		PricePerParticipant:  quote.PricePerParticipant,
		Available:            schedule.RemainingSeats(),
	}, nil
}

func (u *usecase) UpdateTourBooking(ctx context.Context, bookingID string, payload *request.UpdateTourBooking, userID int64) (response.TourBooking, error) {
	span, ctx := apm.StartSpan(ctx, "UpdateTourBooking", "usecase")
	defer span.End()

	id, err := parseID(bookingID, "booking")
	if err != nil {
		return response.TourBooking{}, err
	}

	unlock, err := u.repo.LockBooking(ctx, id)
	if err != nil {
		return response.TourBooking{}, err
	}
	defer unlock()

	now := u.now()
	var booking entity.TourBooking
	err = u.repo.WithTransaction(ctx, func(repo repositories.Repositories) error {
		var err error
		booking, err = repo.FindTourBookingByID(ctx, id, true)
		if err != nil {
			return err
		}
		if err := checkOwner(booking.UserID, userID, false); err != nil {
			return err
		}
		if booking.Status != entity.StatusPending {
			return errors.InvalidState(fmt.Sprintf("booking is %s, only PENDING bookings can be updated", booking.Status))
		}

		schedule, err := repo.FindScheduleByID(ctx, booking.ScheduleID, true)
		if err != nil {
			return err
		}
		tour, err := repo.FindTourByID(ctx, booking.TourID)
		if err != nil {
			return err
		}

		participants := booking.NumberOfParticipants
		if payload.NumberOfParticipants != nil {
			participants = *payload.NumberOfParticipants
		}
		if err := checkBounds(tour.MinParticipants, tour.MaxParticipants, participants, "participants"); err != nil {
			return err
		}
		delta := participants - booking.NumberOfParticipants
		if delta > 0 {
			if err := checkTourActive(tour, schedule); err != nil {
				return err
			}
			if err := checkSeats(schedule, delta); err != nil {
				return err
			}
		}

		addon := pricing.AddonFromSelection(entity.AddonGuide, booking.AddonSelection)
		if payload.Guide != nil {
			addon, err = resolveAddon(ctx, repo, entity.AddonGuide, tour.ID, payload.Guide)
			if err != nil {
				return err
			}
		}

		oldCode := booking.CouponCode.String
		newCode := oldCode
		if payload.CouponCode != nil {
			newCode = normalizeCode(*payload.CouponCode)
		}
		coupon, err := resolveCoupon(ctx, repo, newCode, newCode == oldCode, newCode != oldCode)
		if err != nil {
			return err
		}

		quote, err := u.priceTour(ctx, repo, tourPricing{
			tour:         tour,
			schedule:     schedule,
			participants: participants,
			addon:        addon,
			coupon:       coupon,
		})
		if err != nil {
			return err
		}

		booking.NumberOfParticipants = participants
		booking.CouponCode = nullString(newCode)
		booking.UpdatedAt = now
		applyTourQuote(&booking, quote, addon)

		if err := repo.UpdateTourBooking(ctx, &booking); err != nil {
			return err
		}
		if err := repo.AdjustScheduleBookings(ctx, schedule.ID, delta); err != nil {
			return err
		}
		if newCode != oldCode {
			if err := repo.AdjustCouponUsage(ctx, oldCode, -1); err != nil {
				return err
			}
			if err := repo.AdjustCouponUsage(ctx, newCode, 1); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return response.TourBooking{}, err
	}

	u.invalidateScheduleHint(ctx, booking.ScheduleID)
	u.publishEvent(ctx, messagestream.TopicBookingUpdated, tourEvent(booking, ""))

	return response.NewTourBooking(booking, u.cfg.Currency), nil
}

// RescheduleTourBooking moves a booking to another departure of the same tour.
// The add-on selection and coupon are carried over; only the schedule and price change.
func (u *usecase) RescheduleTourBooking(ctx context.Context, bookingID string, payload *request.RescheduleTourBooking, userID int64) (response.RescheduledTourBooking, error) {
	span, ctx := apm.StartSpan(ctx, "RescheduleTourBooking", "usecase")
	defer span.End()

	id, err := parseID(bookingID, "booking")
	if err != nil {
		return response.RescheduledTourBooking{}, err
	}
	newScheduleID, err := parseID(payload.ScheduleID, "schedule")
	if err != nil {
		return response.RescheduledTourBooking{}, err
	}

	unlock, err := u.repo.LockBooking(ctx, id)
	if err != nil {
		return response.RescheduledTourBooking{}, err
	}
	defer unlock()

	now := u.now()
	var (
		booking       entity.TourBooking
		previousTotal decimal.Decimal
		oldScheduleID uuid.UUID
	)
	err = u.repo.WithTransaction(ctx, func(repo repositories.Repositories) error {
		var err error
		booking, err = repo.FindTourBookingByID(ctx, id, true)
		if err != nil {
			return err
		}
		if err := checkOwner(booking.UserID, userID, false); err != nil {
			return err
		}
		if booking.Status != entity.StatusPending && booking.Status != entity.StatusConfirmed {
			return errors.InvalidState(fmt.Sprintf("booking is %s, only PENDING or CONFIRMED bookings can be rescheduled", booking.Status))
		}
		if booking.ScheduleID == newScheduleID {
			return errors.Conflict("booking is already on the requested schedule")
		}

		schedules, err := repo.LockSchedules(ctx, booking.ScheduleID, newScheduleID)
		if err != nil {
			return err
		}
		newSchedule := schedules[newScheduleID]

		if newSchedule.TourID != booking.TourID {
			return errors.ValidationError("new schedule belongs to a different tour")
		}
		tour, err := repo.FindTourByID(ctx, booking.TourID)
		if err != nil {
			return err
		}
		if err := checkTourActive(tour, newSchedule); err != nil {
			return err
		}
		if !newSchedule.StartDate.After(now) {
			return errors.ValidationError("new schedule must start in the future")
		}
		if err := checkSeats(newSchedule, booking.NumberOfParticipants); err != nil {
			return err
		}

		addon := pricing.AddonFromSelection(entity.AddonGuide, booking.AddonSelection)
		coupon, err := resolveCoupon(ctx, repo, booking.CouponCode.String, true, false)
		if err != nil {
			return err
		}
		quote, err := u.priceTour(ctx, repo, tourPricing{
			tour:         tour,
			schedule:     newSchedule,
			participants: booking.NumberOfParticipants,
			addon:        addon,
			coupon:       coupon,
		})
		if err != nil {
			return err
		}

		previousTotal = booking.TotalPrice
		oldScheduleID = booking.ScheduleID
		booking.ScheduleID = newScheduleID
		booking.UpdatedAt = now
		applyTourQuote(&booking, quote, addon)

		if err := repo.UpdateTourBooking(ctx, &booking); err != nil {
			return err
		}
		if err := repo.AdjustScheduleBookings(ctx, oldScheduleID, -booking.NumberOfParticipants); err != nil {
			return err
		}
		if err := repo.AdjustScheduleBookings(ctx, newScheduleID, booking.NumberOfParticipants); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return response.RescheduledTourBooking{}, err
	}

	difference := booking.TotalPrice.Sub(previousTotal)

	u.invalidateScheduleHint(ctx, oldScheduleID)
	u.invalidateScheduleHint(ctx, newScheduleID)
	event := tourEvent(booking, "")
	event.PriceDifference = &difference
	u.publishEvent(ctx, messagestream.TopicBookingRescheduled, event)

	return response.RescheduledTourBooking{
		Booking:         response.NewTourBooking(booking, u.cfg.Currency),
		PreviousTotal:   previousTotal,
		NewTotal:        booking.TotalPrice,
		PriceDifference: difference,
	}, nil
}

func (u *usecase) CancelTourBooking(ctx context.Context, bookingID string, payload *request.CancelBooking, userID int64) (response.TourBooking, error) {
	span, ctx := apm.StartSpan(ctx, "CancelTourBooking", "usecase")
	defer span.End()

	id, err := parseID(bookingID, "booking")
	if err != nil {
		return response.TourBooking{}, err
	}

	unlock, err := u.repo.LockBooking(ctx, id)
	if err != nil {
		return response.TourBooking{}, err
	}
	defer unlock()

	now := u.now()
	var (
		booking  entity.TourBooking
		previous entity.Status
	)
	err = u.repo.WithTransaction(ctx, func(repo repositories.Repositories) error {
		var err error
		booking, err = repo.FindTourBookingByID(ctx, id, true)
		if err != nil {
			return err
		}
		if err := checkOwner(booking.UserID, userID, false); err != nil {
			return err
		}
		if err := checkSelfCancel(booking.Status); err != nil {
			return err
		}

		schedule, err := repo.FindScheduleByID(ctx, booking.ScheduleID, true)
		if err != nil {
			return err
		}

		previous = booking.Status
		refund := pricing.RefundAmount(booking.TotalPrice, schedule.StartDate, now, pricing.DefaultRefundPolicy)
		cancelLifecycle(&booking.Lifecycle, now, refund, payload.Reason, userActor(userID))

		if err := repo.UpdateTourBooking(ctx, &booking); err != nil {
			return err
		}
		if err := repo.AdjustScheduleBookings(ctx, schedule.ID, -booking.NumberOfParticipants); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return response.TourBooking{}, err
	}

	u.cancelExpiry(ctx, booking.ID)
	u.invalidateScheduleHint(ctx, booking.ScheduleID)
	u.publishEvent(ctx, messagestream.TopicBookingCancelled, tourEvent(booking, previous))

	return response.NewTourBooking(booking, u.cfg.Currency), nil
}

// SetTourBookingStatus applies an admin transition. Seats are released only when
// the booking leaves a committed status for CANCELLED.
func (u *usecase) SetTourBookingStatus(ctx context.Context, bookingID string, payload *request.SetBookingStatus, adminID int64) (response.TourBooking, error) {
	span, ctx := apm.StartSpan(ctx, "SetTourBookingStatus", "usecase")
	defer span.End()

	id, err := parseID(bookingID, "booking")
	if err != nil {
		return response.TourBooking{}, err
	}
	target := entity.Status(payload.Status)

	unlock, err := u.repo.LockBooking(ctx, id)
	if err != nil {
		return response.TourBooking{}, err
	}
	defer unlock()

	now := u.now()
	var (
		booking  entity.TourBooking
		previous entity.Status
		released bool
	)
	err = u.repo.WithTransaction(ctx, func(repo repositories.Repositories) error {
		var err error
		booking, err = repo.FindTourBookingByID(ctx, id, true)
		if err != nil {
			return err
		}
		previous = booking.Status
		if err := checkTransition(previous, target); err != nil {
			return err
		}

		if target != entity.StatusCancelled {
			booking.Stamp(target, now)
			return repo.UpdateTourBooking(ctx, &booking)
		}

		schedule, err := repo.FindScheduleByID(ctx, booking.ScheduleID, true)
		if err != nil {
			return err
		}
		refund := pricing.RefundAmount(booking.TotalPrice, schedule.StartDate, now, pricing.DefaultRefundPolicy)
		cancelLifecycle(&booking.Lifecycle, now, refund, payload.Reason, adminActor(adminID))

		if err := repo.UpdateTourBooking(ctx, &booking); err != nil {
			return err
		}
		if previous != entity.StatusCancelled {
			if err := repo.AdjustScheduleBookings(ctx, schedule.ID, -booking.NumberOfParticipants); err != nil {
				return err
			}
			released = true
		}
		return nil
	})
	if err != nil {
		return response.TourBooking{}, err
	}

	if previous == entity.StatusPending {
		u.cancelExpiry(ctx, booking.ID)
	}
	if released {
		u.invalidateScheduleHint(ctx, booking.ScheduleID)
	}
	u.publishEvent(ctx, messagestream.TopicBookingStatusChanged, tourEvent(booking, previous))

	return response.NewTourBooking(booking, u.cfg.Currency), nil
}
