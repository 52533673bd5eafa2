package usecases

import (
	"context"
	"fmt"
	"strconv"

	"travel-booking-service/internal/module/booking/models/entity"
	"travel-booking-service/internal/module/booking/models/response"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/helpers"
	"travel-booking-service/internal/pkg/voucher"

	"github.com/shopspring/decimal"
	"go.elastic.co/apm"
)

func (u *usecase) GetTourBooking(ctx context.Context, bookingID string, userID int64, isAdmin bool) (response.TourBooking, error) {
	span, ctx := apm.StartSpan(ctx, "GetTourBooking", "usecase")
	defer span.End()

	booking, err := u.findTourBooking(ctx, bookingID, userID, isAdmin)
	if err != nil {
		return response.TourBooking{}, err
	}
	return response.NewTourBooking(booking, u.cfg.Currency), nil
}

func (u *usecase) GetVehicleBooking(ctx context.Context, bookingID string, userID int64, isAdmin bool) (response.VehicleBooking, error) {
	span, ctx := apm.StartSpan(ctx, "GetVehicleBooking", "usecase")
	defer span.End()

	booking, err := u.findVehicleBooking(ctx, bookingID, userID, isAdmin)
	if err != nil {
		return response.VehicleBooking{}, err
	}
	return response.NewVehicleBooking(booking, u.cfg.Currency), nil
}

// ListUserBookings returns every booking of the user, newest first per resource type.
func (u *usecase) ListUserBookings(ctx context.Context, userID int64) (response.UserBookings, error) {
	span, ctx := apm.StartSpan(ctx, "ListUserBookings", "usecase")
	defer span.End()

	tours, err := u.repo.FindTourBookingsByUserID(ctx, userID)
	if err != nil {
		return response.UserBookings{}, err
	}
	vehicles, err := u.repo.FindVehicleBookingsByUserID(ctx, userID)
	if err != nil {
		return response.UserBookings{}, err
	}

	resp := response.UserBookings{
		Tours:    make([]response.TourBooking, 0, len(tours)),
		Vehicles: make([]response.VehicleBooking, 0, len(vehicles)),
	}
	for _, b := range tours {
		resp.Tours = append(resp.Tours, response.NewTourBooking(b, u.cfg.Currency))
	}
	for _, b := range vehicles {
		resp.Vehicles = append(resp.Vehicles, response.NewVehicleBooking(b, u.cfg.Currency))
	}
	return resp, nil
}

func (u *usecase) RenderTourVoucher(ctx context.Context, bookingID string, userID int64, isAdmin bool) ([]byte, error) {
	span, ctx := apm.StartSpan(ctx, "RenderTourVoucher", "usecase")
	defer span.End()

	booking, err := u.findTourBooking(ctx, bookingID, userID, isAdmin)
	if err != nil {
		return nil, err
	}
	if booking.Status == entity.StatusCancelled {
		return nil, errors.InvalidState("cancelled bookings have no voucher")
	}

	tour, err := u.repo.FindTourByID(ctx, booking.TourID)
	if err != nil {
		return nil, err
	}
	schedule, err := u.repo.FindScheduleByID(ctx, booking.ScheduleID, false)
	if err != nil {
		return nil, err
	}

	details := []voucher.Line{
		{Label: "Tour", Value: tour.Name},
		{Label: "Start", Value: helpers.FormatDate(schedule.StartDate)},
		{Label: "End", Value: helpers.FormatDate(schedule.EndDate)},
		{Label: "Participants", Value: strconv.Itoa(booking.NumberOfParticipants)},
	}
	if booking.AddonNeeded {
		details = append(details, voucher.Line{Label: "Guide", Value: addonLabel(booking.AddonSelection)})
	}

	out, err := voucher.Render(voucher.Document{
		Title:       "TOUR VOUCHER",
		BookingCode: booking.BookingCode,
		Status:      string(booking.Status),
		IssuedAt:    u.now(),
		Details:     details,
		Price:       u.priceLines(booking.PriceSnapshot),
		Total:       u.money(booking.TotalPrice),
		Notes:       []string{"Present this voucher to the tour operator at check-in."},
	})
	if err != nil {
		u.log.Error(ctx, "error render tour voucher", err)
		return nil, errors.InternalServerError("error render voucher")
	}
	return out, nil
}

func (u *usecase) RenderVehicleVoucher(ctx context.Context, bookingID string, userID int64, isAdmin bool) ([]byte, error) {
	span, ctx := apm.StartSpan(ctx, "RenderVehicleVoucher", "usecase")
	defer span.End()

	booking, err := u.findVehicleBooking(ctx, bookingID, userID, isAdmin)
	if err != nil {
		return nil, err
	}
	if booking.Status == entity.StatusCancelled {
		return nil, errors.InvalidState("cancelled bookings have no voucher")
	}

	vehicle, err := u.repo.FindVehicleByID(ctx, booking.VehicleID, false)
	if err != nil {
		return nil, err
	}

	details := []voucher.Line{
		{Label: "Vehicle", Value: vehicle.Name},
		{Label: "Pick-up", Value: helpers.FormatDate(booking.StartDate)},
		{Label: "Return", Value: helpers.FormatDate(booking.EndDate)},
		{Label: "Days", Value: strconv.Itoa(booking.DurationDays)},
		{Label: "Vehicles", Value: strconv.Itoa(booking.NumberOfVehicles)},
	}
	if booking.AddonNeeded {
		details = append(details, voucher.Line{Label: "Driver", Value: addonLabel(booking.AddonSelection)})
	}

	price := u.priceLines(booking.PriceSnapshot)
	price = append(price,
		voucher.Line{Label: "Advance paid", Value: u.money(booking.AdvanceAmount)},
		voucher.Line{Label: "Remaining", Value: u.money(booking.RemainingAmount)},
	)

	out, err := voucher.Render(voucher.Document{
		Title:       "VEHICLE RENTAL VOUCHER",
		BookingCode: booking.BookingCode,
		Status:      string(booking.Status),
		IssuedAt:    u.now(),
		Details:     details,
		Price:       price,
		Total:       u.money(booking.TotalPrice),
		Notes:       []string{"Bring a valid driving licence unless a driver is included."},
	})
	if err != nil {
		u.log.Error(ctx, "error render vehicle voucher", err)
		return nil, errors.InternalServerError("error render voucher")
	}
	return out, nil
}

func (u *usecase) findTourBooking(ctx context.Context, bookingID string, userID int64, isAdmin bool) (entity.TourBooking, error) {
	id, err := parseID(bookingID, "booking")
	if err != nil {
		return entity.TourBooking{}, err
	}
	booking, err := u.repo.FindTourBookingByID(ctx, id, false)
	if err != nil {
		return entity.TourBooking{}, err
	}
	if err := checkOwner(booking.UserID, userID, isAdmin); err != nil {
		return entity.TourBooking{}, err
	}
	return booking, nil
}

func (u *usecase) findVehicleBooking(ctx context.Context, bookingID string, userID int64, isAdmin bool) (entity.VehicleBooking, error) {
	id, err := parseID(bookingID, "booking")
	if err != nil {
		return entity.VehicleBooking{}, err
	}
	booking, err := u.repo.FindVehicleBookingByID(ctx, id, false)
	if err != nil {
		return entity.VehicleBooking{}, err
	}
	if err := checkOwner(booking.UserID, userID, isAdmin); err != nil {
		return entity.VehicleBooking{}, err
	}
	return booking, nil
}

func (u *usecase) money(d decimal.Decimal) string {
	return d.StringFixed(2) + " " + u.cfg.Currency
}

func (u *usecase) priceLines(s entity.PriceSnapshot) []voucher.Line {
	lines := []voucher.Line{
		{Label: "Base amount", Value: u.money(s.BaseAmount)},
	}
	if !s.SeasonalMultiplier.IsZero() && !s.SeasonalMultiplier.Equal(decimal.NewFromInt(1)) {
		lines = append(lines, voucher.Line{Label: "Seasonal multiplier", Value: "x" + s.SeasonalMultiplier.String()})
	}
	if s.AddonAmount.IsPositive() {
		lines = append(lines, voucher.Line{Label: "Add-on", Value: u.money(s.AddonAmount)})
	}
	for _, d := range s.Discounts {
		lines = append(lines, voucher.Line{Label: d.Description, Value: "-" + u.money(d.Amount)})
	}
	return lines
}

func addonLabel(sel entity.AddonSelection) string {
	return fmt.Sprintf("%d x %s", sel.AddonQuantity, sel.AddonPricingType)
}
