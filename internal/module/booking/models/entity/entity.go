package entity

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// CommittedStatuses hold capacity on a resource.
var CommittedStatuses = []Status{StatusPending, StatusConfirmed, StatusActive}

var statusRank = map[Status]int{
	StatusPending:   0,
	StatusConfirmed: 1,
	StatusActive:    2,
	StatusCompleted: 3,
}

func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok || s == StatusCancelled
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) Commits() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusActive
}

// CanTransition allows forward moves along the lifecycle, or cancellation of a non-terminal booking.
func (s Status) CanTransition(to Status) bool {
	if s.IsTerminal() || !to.Valid() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	return statusRank[to] > statusRank[s]
}

type DiscountKind string

const (
	DiscountKindCoupon   DiscountKind = "COUPON"
	DiscountKindLongTerm DiscountKind = "LONG_TERM"
)

type Discount struct {
	Kind        DiscountKind    `json:"kind"`
	Code        string          `json:"code,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Discounts is stored as a JSONB array.
type Discounts []Discount

func (d Discounts) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *Discounts) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*d = Discounts{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported discounts source %T", src)
	}
	return json.Unmarshal(raw, d)
}

func (d Discounts) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range d {
		total = total.Add(item.Amount)
	}
	return total
}

// AddonSelection is the guide or driver request captured with its rate at booking time.
type AddonSelection struct {
	AddonNeeded      bool            `db:"addon_needed"`
	AddonQuantity    int             `db:"addon_quantity"`
	AddonPricingType PricingType     `db:"addon_pricing_type"`
	AddonRate        decimal.Decimal `db:"addon_rate"`
	AddonMinCharge   decimal.Decimal `db:"addon_min_charge"`
}

// PriceSnapshot is replaced as a whole on every recalculation.
type PriceSnapshot struct {
	BasePrice          decimal.Decimal `db:"base_price"`
	SeasonalMultiplier decimal.Decimal `db:"seasonal_multiplier"`
	BaseAmount         decimal.Decimal `db:"base_amount"`
	AddonAmount        decimal.Decimal `db:"addon_amount"`
	Discounts          Discounts       `db:"discounts"`
	DiscountTotal      decimal.Decimal `db:"discount_total"`
	GrossAmount        decimal.Decimal `db:"gross_amount"`
	TotalPrice         decimal.Decimal `db:"total_price"`
}

type Lifecycle struct {
	Status             Status              `db:"status"`
	RefundAmount       decimal.NullDecimal `db:"refund_amount"`
	CancellationReason sql.NullString      `db:"cancellation_reason"`
	CancelledBy        sql.NullString      `db:"cancelled_by"`
	CreatedAt          time.Time           `db:"created_at"`
	UpdatedAt          time.Time           `db:"updated_at"`
	ConfirmedAt        sql.NullTime        `db:"confirmed_at"`
	CancelledAt        sql.NullTime        `db:"cancelled_at"`
	CompletedAt        sql.NullTime        `db:"completed_at"`
}

// Stamp records the transition time for the target status.
func (l *Lifecycle) Stamp(to Status, now time.Time) {
	l.Status = to
	l.UpdatedAt = now
	switch to {
	case StatusConfirmed:
		l.ConfirmedAt = sql.NullTime{Time: now, Valid: true}
	case StatusCompleted:
		l.CompletedAt = sql.NullTime{Time: now, Valid: true}
	case StatusCancelled:
		l.CancelledAt = sql.NullTime{Time: now, Valid: true}
	}
}

type TourBooking struct {
	ID                   uuid.UUID       `db:"id"`
	BookingCode          string          `db:"booking_code"`
	UserID               int64           `db:"user_id"`
	TourID               uuid.UUID       `db:"tour_id"`
	ScheduleID           uuid.UUID       `db:"schedule_id"`
	DestinationID        uuid.UUID       `db:"destination_id"`
	NumberOfParticipants int             `db:"number_of_participants"`
	CouponCode           sql.NullString  `db:"coupon_code"`
	PricePerParticipant  decimal.Decimal `db:"price_per_participant"`
	AddonSelection
	PriceSnapshot
	Lifecycle
}

type VehicleBooking struct {
	ID               uuid.UUID       `db:"id"`
	BookingCode      string          `db:"booking_code"`
	UserID           int64           `db:"user_id"`
	VehicleID        uuid.UUID       `db:"vehicle_id"`
	DestinationID    uuid.UUID       `db:"destination_id"`
	StartDate        time.Time       `db:"start_date"`
	EndDate          time.Time       `db:"end_date"`
	DurationDays     int             `db:"duration_days"`
	NumberOfVehicles int             `db:"number_of_vehicles"`
	CouponCode       sql.NullString  `db:"coupon_code"`
	AdvanceAmount    decimal.Decimal `db:"advance_amount"`
	RemainingAmount  decimal.Decimal `db:"remaining_amount"`
	AddonSelection
	PriceSnapshot
	Lifecycle
}

// ScheduleSum is the live committed participant count for one schedule.
type ScheduleSum struct {
	ScheduleID      uuid.UUID `db:"schedule_id"`
	CurrentBookings int       `db:"current_bookings"`
	Committed       int       `db:"committed"`
}
