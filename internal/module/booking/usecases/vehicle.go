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
	"travel-booking-service/internal/pkg/helpers"
	"travel-booking-service/internal/pkg/messagestream"

	"github.com/google/uuid"
	"go.elastic.co/apm"
)

const vehicleCodePrefix = "VB-"

func applyVehicleQuote(b *entity.VehicleBooking, q pricing.Quote, addon pricing.Addon) {
	b.AddonSelection = q.Selection(addon)
	b.PriceSnapshot = q.Snapshot()
	b.AdvanceAmount = q.AdvanceAmount
	b.RemainingAmount = q.RemainingAmount
}

func vehicleEvent(b entity.VehicleBooking, previous entity.Status) request.BookingEvent {
	event := request.BookingEvent{
		BookingID:      b.ID.String(),
		BookingCode:    b.BookingCode,
		BookingType:    BookingTypeVehicle,
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

func (u *usecase) CreateVehicleBooking(ctx context.Context, payload *request.CreateVehicleBooking, userID int64) (response.VehicleBooking, error) {
	span, ctx := apm.StartSpan(ctx, "CreateVehicleBooking", "usecase")
	defer span.End()

	vehicleID, err := parseID(payload.VehicleID, "vehicle")
	if err != nil {
		return response.VehicleBooking{}, err
	}
	start, end, err := parseInterval(payload.StartDate, payload.EndDate)
	if err != nil {
		return response.VehicleBooking{}, err
	}
	if err := u.checkNotPast(start); err != nil {
		return response.VehicleBooking{}, err
	}
	couponCode := normalizeCode(payload.CouponCode)
	now := u.now()

	var booking entity.VehicleBooking
	err = u.repo.WithTransaction(ctx, func(repo repositories.Repositories) error {
		vehicle, err := repo.FindVehicleByID(ctx, vehicleID, true)
		if err != nil {
			return err
		}
		if err := checkVehicleActive(vehicle); err != nil {
			return err
		}
		if err := checkBounds(vehicle.MinUnits, vehicle.MaxUnits, payload.NumberOfVehicles, unitVehicles); err != nil {
			return err
		}
		if err := checkVehicleUnits(ctx, repo, vehicle, start, end, payload.NumberOfVehicles, uuid.Nil); err != nil {
			return err
		}

		addon, err := resolveAddon(ctx, repo, entity.AddonDriver, vehicle.ID, payload.Driver)
		if err != nil {
			return err
		}
		coupon, err := resolveCoupon(ctx, repo, couponCode, false, true)
		if err != nil {
			return err
		}
		quote, err := u.priceVehicle(ctx, repo, vehiclePricing{
			vehicle: vehicle,
			start:   start,
			end:     end,
			units:   payload.NumberOfVehicles,
			addon:   addon,
			coupon:  coupon,
			advance: payload.AdvanceAmount,
		})
		if err != nil {
			return err
		}

		booking = entity.VehicleBooking{
			ID:               uuid.New(),
			BookingCode:      newBookingCode(vehicleCodePrefix),
			UserID:           userID,
			VehicleID:        vehicle.ID,
			DestinationID:    vehicle.DestinationID,
			StartDate:        start,
			EndDate:          end,
			DurationDays:     helpers.CeilDays(start, end),
			NumberOfVehicles: payload.NumberOfVehicles,
			CouponCode:       nullString(couponCode),
			Lifecycle: entity.Lifecycle{
				Status:    entity.StatusPending,
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		applyVehicleQuote(&booking, quote, addon)

		if err := repo.InsertVehicleBooking(ctx, &booking); err != nil {
			return err
		}
		return repo.AdjustCouponUsage(ctx, couponCode, 1)
	})
	if err != nil {
		return response.VehicleBooking{}, err
	}

	u.scheduleExpiry(ctx, booking.ID, BookingTypeVehicle)
	u.publishEvent(ctx, messagestream.TopicBookingCreated, vehicleEvent(booking, ""))

	return response.NewVehicleBooking(booking, u.cfg.Currency), nil
}

// QuoteVehicleBooking prices a rental without reserving anything.
func (u *usecase) QuoteVehicleBooking(ctx context.Context, payload *request.CreateVehicleBooking) (response.VehicleQuote, error) {
	span, ctx := apm.StartSpan(ctx, "QuoteVehicleBooking", "usecase")
	defer span.End()

	vehicleID, err := parseID(payload.VehicleID, "vehicle")
	if err != nil {
		return response.VehicleQuote{}, err
	}
	start, end, err := parseInterval(payload.StartDate, payload.EndDate)
	if err != nil {
		return response.VehicleQuote{}, err
	}

	vehicle, err := u.repo.FindVehicleByID(ctx, vehicleID, false)
	if err != nil {
		return response.VehicleQuote{}, err
	}
	if err := checkVehicleActive(vehicle); err != nil {
		return response.VehicleQuote{}, err
	}
	if err := checkBounds(vehicle.MinUnits, vehicle.MaxUnits, payload.NumberOfVehicles, unitVehicles); err != nil {
		return response.VehicleQuote{}, err
	}

	addon, err := resolveAddon(ctx, u.repo, entity.AddonDriver, vehicle.ID, payload.Driver)
	if err != nil {
		return response.VehicleQuote{}, err
	}
	coupon, err := resolveCoupon(ctx, u.repo, normalizeCode(payload.CouponCode), false, false)
	if err != nil {
		return response.VehicleQuote{}, err
	}
	quote, err := u.priceVehicle(ctx, u.repo, vehiclePricing{
		vehicle: vehicle,
		start:   start,
		end:     end,
		units:   payload.NumberOfVehicles,
		addon:   addon,
		coupon:  coupon,
		advance: payload.AdvanceAmount,
	})
	if err != nil {
		return response.VehicleQuote{}, err
	}

	available, err := availableVehicleUnits(ctx, u.repo, vehicle, start, end, uuid.Nil)
	if err != nil {
		return response.VehicleQuote{}, err
	}

	return response.VehicleQuote{
		VehicleID:        vehicle.ID.String(),
		NumberOfVehicles: payload.NumberOfVehicles,
		DurationDays:     helpers.CeilDays(start, end),
		Driver:           response.NewAddon(quote.Selection(addon), quote.AddonAmount),
		Price:            response.NewPriceBreakdown(quote.Snapshot(), u.cfg.Currency),
		AdvanceAmount:    quote.AdvanceAmount,
		RemainingAmount:  quote.RemainingAmount,
		Available:        available,
	}, nil
}

// UpdateVehicleBooking patches a pending rental. Quantity or date changes recount
// overlapping bookings with this booking excluded.
func (u *usecase) UpdateVehicleBooking(ctx context.Context, bookingID string, payload *request.UpdateVehicleBooking, userID int64) (response.VehicleBooking, error) {
	span, ctx := apm.StartSpan(ctx, "UpdateVehicleBooking", "usecase")
	defer span.End()

	id, err := parseID(bookingID, "booking")
	if err != nil {
		return response.VehicleBooking{}, err
	}

	unlock, err := u.repo.LockBooking(ctx, id)
	if err != nil {
		return response.VehicleBooking{}, err
	}
	defer unlock()

	now := u.now()
	var booking entity.VehicleBooking
	err = u.repo.WithTransaction(ctx, func(repo repositories.Repositories) error {
		var err error
		booking, err = repo.FindVehicleBookingByID(ctx, id, true)
		if err != nil {
			return err
		}
		if err := checkOwner(booking.UserID, userID, false); err != nil {
			return err
		}
		if booking.Status != entity.StatusPending {
			return errors.InvalidState(fmt.Sprintf("booking is %s, only PENDING bookings can be updated", booking.Status))
		}

		vehicle, err := repo.FindVehicleByID(ctx, booking.VehicleID, true)
		if err != nil {
			return err
		}

		start, end := booking.StartDate, booking.EndDate
		if payload.StartDate != nil {
			if start, err = parseDate(*payload.StartDate); err != nil {
				return err
			}
			if err := u.checkNotPast(start); err != nil {
				return err
			}
		}
		if payload.EndDate != nil {
			if end, err = parseDate(*payload.EndDate); err != nil {
				return err
			}
		}
		if !end.After(start) {
			return errors.ValidationError("end date must be after start date")
		}
		datesChanged := !start.Equal(booking.StartDate) || !end.Equal(booking.EndDate)

		units := booking.NumberOfVehicles
		if payload.NumberOfVehicles != nil {
			units = *payload.NumberOfVehicles
		}
		if err := checkBounds(vehicle.MinUnits, vehicle.MaxUnits, units, unitVehicles); err != nil {
			return err
		}
		if units > booking.NumberOfVehicles || datesChanged {
			if err := checkVehicleActive(vehicle); err != nil {
				return err
			}
			if err := checkVehicleUnits(ctx, repo, vehicle, start, end, units, booking.ID); err != nil {
				return err
			}
		}

		addon := pricing.AddonFromSelection(entity.AddonDriver, booking.AddonSelection)
		if payload.Driver != nil {
			addon, err = resolveAddon(ctx, repo, entity.AddonDriver, vehicle.ID, payload.Driver)
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

		advance := booking.AdvanceAmount
		if payload.AdvanceAmount != nil {
			advance = *payload.AdvanceAmount
		}

		quote, err := u.priceVehicle(ctx, repo, vehiclePricing{
			vehicle: vehicle,
			start:   start,
			end:     end,
			units:   units,
			addon:   addon,
			coupon:  coupon,
			advance: advance,
		})
		if err != nil {
			return err
		}

		booking.StartDate = start
		booking.EndDate = end
		booking.DurationDays = helpers.CeilDays(start, end)
		booking.NumberOfVehicles = units
		booking.CouponCode = nullString(newCode)
		booking.UpdatedAt = now
		applyVehicleQuote(&booking, quote, addon)

		if err := repo.UpdateVehicleBooking(ctx, &booking); err != nil {
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
		return response.VehicleBooking{}, err
	}

	u.publishEvent(ctx, messagestream.TopicBookingUpdated, vehicleEvent(booking, ""))

	return response.NewVehicleBooking(booking, u.cfg.Currency), nil
}

// CancelVehicleBooking releases the units by leaving the committed statuses.
func (u *usecase) CancelVehicleBooking(ctx context.Context, bookingID string, payload *request.CancelBooking, userID int64) (response.VehicleBooking, error) {
	span, ctx := apm.StartSpan(ctx, "CancelVehicleBooking", "usecase")
	defer span.End()

	id, err := parseID(bookingID, "booking")
	if err != nil {
		return response.VehicleBooking{}, err
	}

	unlock, err := u.repo.LockBooking(ctx, id)
	if err != nil {
		return response.VehicleBooking{}, err
	}
	defer unlock()

	now := u.now()
	var (
		booking  entity.VehicleBooking
		previous entity.Status
	)
	err = u.repo.WithTransaction(ctx, func(repo repositories.Repositories) error {
		var err error
		booking, err = repo.FindVehicleBookingByID(ctx, id, true)
		if err != nil {
			return err
		}
		if err := checkOwner(booking.UserID, userID, false); err != nil {
			return err
		}
		if err := checkSelfCancel(booking.Status); err != nil {
			return err
		}

		previous = booking.Status
		refund := pricing.RefundAmount(booking.TotalPrice, booking.StartDate, now, pricing.DefaultRefundPolicy)
		cancelLifecycle(&booking.Lifecycle, now, refund, payload.Reason, userActor(userID))

		return repo.UpdateVehicleBooking(ctx, &booking)
	})
	if err != nil {
		return response.VehicleBooking{}, err
	}

	u.cancelExpiry(ctx, booking.ID)
	u.publishEvent(ctx, messagestream.TopicBookingCancelled, vehicleEvent(booking, previous))

	return response.NewVehicleBooking(booking, u.cfg.Currency), nil
}

func (u *usecase) SetVehicleBookingStatus(ctx context.Context, bookingID string, payload *request.SetBookingStatus, adminID int64) (response.VehicleBooking, error) {
	span, ctx := apm.StartSpan(ctx, "SetVehicleBookingStatus", "usecase")
	defer span.End()

	id, err := parseID(bookingID, "booking")
	if err != nil {
		return response.VehicleBooking{}, err
	}
	target := entity.Status(payload.Status)

	unlock, err := u.repo.LockBooking(ctx, id)
	if err != nil {
		return response.VehicleBooking{}, err
	}
	defer unlock()

	now := u.now()
	var (
		booking  entity.VehicleBooking
		previous entity.Status
	)
	err = u.repo.WithTransaction(ctx, func(repo repositories.Repositories) error {
		var err error
		booking, err = repo.FindVehicleBookingByID(ctx, id, true)
		if err != nil {
			return err
		}
		previous = booking.Status
		if err := checkTransition(previous, target); err != nil {
			return err
		}

		if target == entity.StatusCancelled {
			refund := pricing.RefundAmount(booking.TotalPrice, booking.StartDate, now, pricing.DefaultRefundPolicy)
			cancelLifecycle(&booking.Lifecycle, now, refund, payload.Reason, adminActor(adminID))
		} else {
			booking.Stamp(target, now)
		}
		return repo.UpdateVehicleBooking(ctx, &booking)
	})
	if err != nil {
		return response.VehicleBooking{}, err
	}

	if previous == entity.StatusPending {
		u.cancelExpiry(ctx, booking.ID)
	}
	u.publishEvent(ctx, messagestream.TopicBookingStatusChanged, vehicleEvent(booking, previous))

	return response.NewVehicleBooking(booking, u.cfg.Currency), nil
}
