package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddonRequest asks for a guide (tours) or driver (vehicles).
type AddonRequest struct {
	Needed      bool   `json:"needed"`
	PricingType string `json:"pricing_type"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
}

type CreateTourBooking struct {
	ScheduleID           string        `json:"schedule_id" validate:"required,uuid"`
	NumberOfParticipants int           `json:"number_of_participants" validate:"required,gt=0"`
	Guide                *AddonRequest `json:"guide"`
	CouponCode           string        `json:"coupon_code" validate:"omitempty,max=64"`
}

// UpdateTourBooking patches a pending booking; nil fields are left unchanged.
// An empty CouponCode removes the coupon.
type UpdateTourBooking struct {
	NumberOfParticipants *int          `json:"number_of_participants" validate:"omitempty,gt=0"`
	Guide                *AddonRequest `json:"guide"`
	CouponCode           *string       `json:"coupon_code" validate:"omitempty,max=64"`
}

type RescheduleTourBooking struct {
	ScheduleID string `json:"schedule_id" validate:"required,uuid"`
}

type CreateVehicleBooking struct {
	VehicleID        string          `json:"vehicle_id" validate:"required,uuid"`
	StartDate        string          `json:"start_date" validate:"required"`
	EndDate          string          `json:"end_date" validate:"required"`
	NumberOfVehicles int             `json:"number_of_vehicles" validate:"required,gt=0"`
	Driver           *AddonRequest   `json:"driver"`
	CouponCode       string          `json:"coupon_code" validate:"omitempty,max=64"`
	AdvanceAmount    decimal.Decimal `json:"advance_amount"`
}

type UpdateVehicleBooking struct {
	StartDate        *string          `json:"start_date"`
	EndDate          *string          `json:"end_date"`
	NumberOfVehicles *int             `json:"number_of_vehicles" validate:"omitempty,gt=0"`
	Driver           *AddonRequest    `json:"driver"`
	CouponCode       *string          `json:"coupon_code" validate:"omitempty,max=64"`
	AdvanceAmount    *decimal.Decimal `json:"advance_amount"`
}

type CancelBooking struct {
	Reason string `json:"reason" validate:"max=500"`
}

type SetBookingStatus struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED ACTIVE COMPLETED CANCELLED"`
	Reason string `json:"reason" validate:"max=500"`
}

type TourAvailability struct {
	Quantity int `query:"quantity" validate:"required,gt=0"`
}

type VehicleAvailability struct {
	StartDate string `query:"start_date" validate:"required"`
	EndDate   string `query:"end_date" validate:"required"`
	Quantity  int    `query:"quantity" validate:"required,gt=0"`
}

type PaymentConfirmed struct {
	BookingID   string          `json:"booking_id" validate:"required,uuid"`
	BookingType string          `json:"booking_type" validate:"required,oneof=TOUR VEHICLE"`
	PaymentID   string          `json:"payment_id"`
	Amount      decimal.Decimal `json:"amount"`
}

type ExpireBooking struct {
	BookingID   string `json:"booking_id" validate:"required,uuid"`
	BookingType string `json:"booking_type" validate:"required,oneof=TOUR VEHICLE"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}

// BookingEvent is published after a booking change commits.
type BookingEvent struct {
	EventType       string           `json:"event_type"`
	BookingID       string           `json:"booking_id"`
	BookingCode     string           `json:"booking_code"`
	BookingType     string           `json:"booking_type"`
	UserID          int64            `json:"user_id"`
	Status          string           `json:"status"`
	PreviousStatus  string           `json:"previous_status,omitempty"`
	TotalPrice      decimal.Decimal  `json:"total_price"`
	RefundAmount    *decimal.Decimal `json:"refund_amount,omitempty"`
	PriceDifference *decimal.Decimal `json:"price_difference,omitempty"`
	OccurredAt      time.Time        `json:"occurred_at"`
}
