package response

import (
	"time"

	"travel-booking-service/internal/module/booking/models/entity"

	"github.com/shopspring/decimal"
)

type UserServiceValidate struct {
	IsValid   bool   `json:"is_valid"`
	UserID    int64  `json:"user_id"`
	EmailUser string `json:"email_user"`
	Role      string `json:"role"`
}

type Discount struct {
	Kind        string          `json:"kind"`
	Code        string          `json:"code,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type PriceBreakdown struct {
	Currency           string          `json:"currency"`
	BasePrice          decimal.Decimal `json:"base_price"`
	SeasonalMultiplier decimal.Decimal `json:"seasonal_multiplier"`
	BaseAmount         decimal.Decimal `json:"base_amount"`
	AddonAmount        decimal.Decimal `json:"addon_amount"`
	GrossAmount        decimal.Decimal `json:"gross_amount"`
	Discounts          []Discount      `json:"discounts"`
	DiscountTotal      decimal.Decimal `json:"discount_total"`
	TotalPrice         decimal.Decimal `json:"total_price"`
}

type Addon struct {
	Needed      bool            `json:"needed"`
	Quantity    int             `json:"quantity"`
	PricingType string          `json:"pricing_type,omitempty"`
	Rate        decimal.Decimal `json:"rate"`
	MinCharge   decimal.Decimal `json:"min_charge"`
	Amount      decimal.Decimal `json:"amount"`
}

type Lifecycle struct {
	Status             string           `json:"status"`
	RefundAmount       *decimal.Decimal `json:"refund_amount,omitempty"`
	CancellationReason string           `json:"cancellation_reason,omitempty"`
	CancelledBy        string           `json:"cancelled_by,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	ConfirmedAt        *time.Time       `json:"confirmed_at,omitempty"`
	CancelledAt        *time.Time       `json:"cancelled_at,omitempty"`
	CompletedAt        *time.Time       `json:"completed_at,omitempty"`
}

type TourBooking struct {
	ID                   string          `json:"id"`
	BookingCode          string          `json:"booking_code"`
	UserID               int64           `json:"user_id"`
	TourID               string          `json:"tour_id"`
	ScheduleID           string          `json:"schedule_id"`
	DestinationID        string          `json:"destination_id"`
	NumberOfParticipants int             `json:"number_of_participants"`
	Guide                Addon           `json:"guide"`
	CouponCode           string          `json:"coupon_code,omitempty"`
	Price                PriceBreakdown  `json:"price"`
	PricePerParticipant  decimal.Decimal `json:"price_per_participant"`
	Lifecycle
}

type VehicleBooking struct {
	ID               string          `json:"id"`
	BookingCode      string          `json:"booking_code"`
	UserID           int64           `json:"user_id"`
	VehicleID        string          `json:"vehicle_id"`
	DestinationID    string          `json:"destination_id"`
	StartDate        time.Time       `json:"start_date"`
	EndDate          time.Time       `json:"end_date"`
	DurationDays     int             `json:"duration_days"`
	NumberOfVehicles int             `json:"number_of_vehicles"`
	Driver           Addon           `json:"driver"`
	CouponCode       string          `json:"coupon_code,omitempty"`
	Price            PriceBreakdown  `json:"price"`
	AdvanceAmount    decimal.Decimal `json:"advance_amount"`
	RemainingAmount  decimal.Decimal `json:"remaining_amount"`
	Lifecycle
}

type RescheduledTourBooking struct {
	Booking         TourBooking     `json:"booking"`
	PreviousTotal   decimal.Decimal `json:"previous_total"`
	NewTotal        decimal.Decimal `json:"new_total"`
	PriceDifference decimal.Decimal `json:"price_difference"`
}

type Availability struct {
	ResourceID string `json:"resource_id"`
	Available  int    `json:"available"`
	Requested  int    `json:"requested"`
}

type TourQuote struct {
	ScheduleID           string          `json:"schedule_id"`
	NumberOfParticipants int             `json:"number_of_participants"`
	DurationDays         int             `json:"duration_days"`
	Guide                Addon           `json:"guide"`
	Price                PriceBreakdown  `json:"price"`
	PricePerParticipant  decimal.Decimal `json:"price_per_participant"`
	Available            int             `json:"available"`
}

type VehicleQuote struct {
	VehicleID        string          `json:"vehicle_id"`
	NumberOfVehicles int             `json:"number_of_vehicles"`
	DurationDays     int             `json:"duration_days"`
	Driver           Addon           `json:"driver"`
	Price            PriceBreakdown  `json:"price"`
	AdvanceAmount    decimal.Decimal `json:"advance_amount"`
	RemainingAmount  decimal.Decimal `json:"remaining_amount"`
	Available        int             `json:"available"`
}

type UserBookings struct {
	Tours    []TourBooking    `json:"tours"`
	Vehicles []VehicleBooking `json:"vehicles"`
}

type ScheduleCorrection struct {
	ScheduleID string `json:"schedule_id"`
	Previous   int    `json:"previous"`
	Actual     int    `json:"actual"`
}

type ReconcileResult struct {
	Checked   int                  `json:"checked"`
	Corrected []ScheduleCorrection `json:"corrected"`
}

func NewPriceBreakdown(s entity.PriceSnapshot, currency string) PriceBreakdown {
	discounts := make([]Discount, 0, len(s.Discounts))
	for _, d := range s.Discounts {
		discounts = append(discounts, Discount{
			Kind:        string(d.Kind),
			Code:        d.Code,
			Description: d.Description,
			Amount:      d.Amount,
		})
	}
	return PriceBreakdown{
		Currency:           currency,
		BasePrice:          s.BasePrice,
		SeasonalMultiplier: s.SeasonalMultiplier,
		BaseAmount:         s.BaseAmount,
		AddonAmount:        s.AddonAmount,
		GrossAmount:        s.GrossAmount,
		Discounts:          discounts,
		DiscountTotal:      s.DiscountTotal,
		TotalPrice:         s.TotalPrice,
	}
}

func NewAddon(sel entity.AddonSelection, amount decimal.Decimal) Addon {
	return Addon{
		Needed:      sel.AddonNeeded,
		Quantity:    sel.AddonQuantity,
		PricingType: string(sel.AddonPricingType),
		Rate:        sel.AddonRate,
		MinCharge:   sel.AddonMinCharge,
		Amount:      amount,
	}
}

func NewLifecycle(l entity.Lifecycle) Lifecycle {
	out := Lifecycle{
		Status:             string(l.Status),
		CancellationReason: l.CancellationReason.String,
		CancelledBy:        l.CancelledBy.String,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
	if l.RefundAmount.Valid {
		refund := l.RefundAmount.Decimal
		out.RefundAmount = &refund
	}
	if l.ConfirmedAt.Valid {
		out.ConfirmedAt = &l.ConfirmedAt.Time
	}
	if l.CancelledAt.Valid {
		out.CancelledAt = &l.CancelledAt.Time
	}
	if l.CompletedAt.Valid {
		out.CompletedAt = &l.CompletedAt.Time
	}
	return out
}

func NewTourBooking(b entity.TourBooking, currency string) TourBooking {
	return TourBooking{
		ID:                   b.ID.String(),
		BookingCode:          b.BookingCode,
		UserID:               b.UserID,
		TourID:               b.TourID.String(),
		ScheduleID:           b.ScheduleID.String(),
		DestinationID:        b.DestinationID.String(),
		NumberOfParticipants: b.NumberOfParticipants,
		Guide:                NewAddon(b.AddonSelection, b.AddonAmount),
		CouponCode:           b.CouponCode.String,
		Price:                NewPriceBreakdown(b.PriceSnapshot, currency),
		PricePerParticipant:  b.PricePerParticipant,
		Lifecycle:            NewLifecycle(b.Lifecycle),
	}
}

func NewVehicleBooking(b entity.VehicleBooking, currency string) VehicleBooking {
	return VehicleBooking{
		ID:               b.ID.String(),
		BookingCode:      b.BookingCode,
		UserID:           b.UserID,
		VehicleID:        b.VehicleID.String(),
		DestinationID:    b.DestinationID.String(),
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
		DurationDays:     b.DurationDays,
		NumberOfVehicles: b.NumberOfVehicles,
		Driver:           NewAddon(b.AddonSelection, b.AddonAmount),
		CouponCode:       b.CouponCode.String,
		Price:            NewPriceBreakdown(b.PriceSnapshot, currency),
		AdvanceAmount:    b.AdvanceAmount,
		RemainingAmount:  b.RemainingAmount,
		Lifecycle:        NewLifecycle(b.Lifecycle),
	}
}
