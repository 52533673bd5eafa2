package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ResourceType string

const (
	ResourceTour    ResourceType = "TOUR"
	ResourceVehicle ResourceType = "VEHICLE"
	ResourceAll     ResourceType = "ALL"
)

type PricingType string

const (
	PricingPerDay    PricingType = "PER_DAY"
	PricingPerPerson PricingType = "PER_PERSON"
	PricingPerGroup  PricingType = "PER_GROUP"
)

func (p PricingType) Valid() bool {
	switch p {
	case PricingPerDay, PricingPerPerson, PricingPerGroup:
		return true
	}
	return false
}

type AddonKind string

const (
	AddonGuide  AddonKind = "GUIDE"
	AddonDriver AddonKind = "DRIVER"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

type Tour struct {
	ID              uuid.UUID       `db:"id"`
	Name            string          `db:"name"`
	DestinationID   uuid.UUID       `db:"destination_id"`
	Category        string          `db:"category"`
	Region          string          `db:"region"`
	BasePrice       decimal.Decimal `db:"base_price"`
	MinParticipants sql.NullInt64   `db:"min_participants"`
	MaxParticipants sql.NullInt64   `db:"max_participants"`
	IsActive        bool            `db:"is_active"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

type TourSchedule struct {
	ID              uuid.UUID           `db:"id"`
	TourID          uuid.UUID           `db:"tour_id"`
	StartDate       time.Time           `db:"start_date"`
	EndDate         time.Time           `db:"end_date"`
	AvailableSeats  int                 `db:"available_seats"`
	CurrentBookings int                 `db:"current_bookings"`
	Price           decimal.NullDecimal `db:"price"`
	IsActive        bool                `db:"is_active"`
	CreatedAt       time.Time           `db:"created_at"`
	UpdatedAt       time.Time           `db:"updated_at"`
}

// RemainingSeats never goes below zero even if the counter drifted past capacity.
func (s TourSchedule) RemainingSeats() int {
	if r := s.AvailableSeats - s.CurrentBookings; r > 0 {
		return r
	}
	return 0
}

// UnitPrice is the schedule override when set, else the tour base price.
func (s TourSchedule) UnitPrice(tour Tour) decimal.Decimal {
	if s.Price.Valid {
		return s.Price.Decimal
	}
	return tour.BasePrice
}

type Vehicle struct {
	ID            uuid.UUID       `db:"id"`
	Name          string          `db:"name"`
	DestinationID uuid.UUID       `db:"destination_id"`
	Category      string          `db:"category"`
	Region        string          `db:"region"`
	PricePerDay   decimal.Decimal `db:"price_per_day"`
	TotalQuantity int             `db:"total_quantity"`
	MinUnits      sql.NullInt64   `db:"min_units"`
	MaxUnits      sql.NullInt64   `db:"max_units"`
	IsActive      bool            `db:"is_active"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

type AddonRate struct {
	ID          uuid.UUID       `db:"id"`
	AddonKind   AddonKind       `db:"addon_kind"`
	PricingType PricingType     `db:"pricing_type"`
	Rate        decimal.Decimal `db:"rate"`
	MinCharge   decimal.Decimal `db:"min_charge"`
	ResourceID  uuid.NullUUID   `db:"resource_id"`
	IsActive    bool            `db:"is_active"`
}

type Coupon struct {
	Code              string              `db:"code"`
	DiscountType      DiscountType        `db:"discount_type"`
	Value             decimal.Decimal     `db:"value"`
	MaxDiscountAmount decimal.NullDecimal `db:"max_discount_amount"`
	MinAmount         decimal.Decimal     `db:"min_amount"`
	MinDays           int                 `db:"min_days"`
	UsageLimit        sql.NullInt64       `db:"usage_limit"`
	UsageCount        int                 `db:"usage_count"`
	ResourceType      ResourceType        `db:"resource_type"`
	ValidFrom         sql.NullTime        `db:"valid_from"`
	ValidUntil        sql.NullTime        `db:"valid_until"`
	IsActive          bool                `db:"is_active"`
}

type LongTermDiscountRule struct {
	ID           uuid.UUID       `db:"id"`
	ResourceType ResourceType    `db:"resource_type"`
	MinDays      int             `db:"min_days"`
	DiscountType DiscountType    `db:"discount_type"`
	Value        decimal.Decimal `db:"value"`
	IsActive     bool            `db:"is_active"`
}

type SeasonalRule struct {
	ID           uuid.UUID       `db:"id"`
	ResourceType ResourceType    `db:"resource_type"`
	Category     sql.NullString  `db:"category"`
	Region       sql.NullString  `db:"region"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	Multiplier   decimal.Decimal `db:"multiplier"`
	IsActive     bool            `db:"is_active"`
}
