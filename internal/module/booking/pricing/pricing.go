package pricing

import (
	"fmt"
	"time"

	"travel-booking-service/internal/module/booking/models/entity"
	"travel-booking-service/internal/pkg/errors"

	"github.com/shopspring/decimal"
)

// LongTermMinDays is the shortest duration that qualifies for a long-term discount.
const LongTermMinDays = 7

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

type Addon struct {
	Needed      bool
	Kind        entity.AddonKind
	PricingType entity.PricingType
	// Quantity is the number of guides or drivers; zero means not supplied.
	Quantity  int
	Rate      decimal.Decimal
	MinCharge decimal.Decimal
}

type Coupon struct {
	entity.Coupon
	// AlreadyRedeemed is set when the booking already holds this coupon.
	AlreadyRedeemed bool
}

type Input struct {
	ResourceType       entity.ResourceType
	UnitPrice          decimal.Decimal
	Quantity           int
	DurationDays       int
	ChargePerDay       bool
	SeasonalMultiplier decimal.Decimal
	Addon              Addon
	Coupon             *Coupon
	LongTermRules      []entity.LongTermDiscountRule
	AdvanceAmount      decimal.Decimal
	Now                time.Time
}

type Quote struct {
	BasePrice           decimal.Decimal
	SeasonalMultiplier  decimal.Decimal
	BaseAmount          decimal.Decimal
	AddonAmount         decimal.Decimal
	AddonQuantity       int
	GrossAmount         decimal.Decimal
	Discounts           entity.Discounts
	DiscountTotal       decimal.Decimal
	TotalPrice          decimal.Decimal
	PricePerParticipant decimal.Decimal
	AdvanceAmount       decimal.Decimal
	RemainingAmount     decimal.Decimal
}

func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// Calculate produces a complete price snapshot. It has no side effects.
func Calculate(in Input) (Quote, error) {
	if in.Quantity <= 0 {
		return Quote{}, errors.ValidationError("quantity must be greater than zero")
	}
	days := in.DurationDays
	if days < 1 {
		days = 1
	}

	multiplier := in.SeasonalMultiplier
	if multiplier.IsZero() {
		multiplier = decimal.NewFromInt(1)
	}
	if multiplier.IsNegative() {
		return Quote{}, errors.ValidationError("seasonal multiplier must be positive")
	}

	q := Quote{SeasonalMultiplier: multiplier}
	q.BasePrice = Round(in.UnitPrice.Mul(multiplier))
	q.BaseAmount = q.BasePrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
	if in.ChargePerDay {
		q.BaseAmount = q.BaseAmount.Mul(decimal.NewFromInt(int64(days)))
	}
	q.BaseAmount = Round(q.BaseAmount)

	addonAmount, addonQty, err := AddonAmount(in.Addon, in.Quantity, days)
	if err != nil {
		return Quote{}, err
	}
	q.AddonAmount = addonAmount
	q.AddonQuantity = addonQty
	q.GrossAmount = q.BaseAmount.Add(q.AddonAmount)

	q.Discounts = entity.Discounts{}
	if in.Coupon != nil {
		amount, err := CouponDiscount(*in.Coupon, q.GrossAmount, days, in.ResourceType, in.Now)
		if err != nil {
			return Quote{}, err
		}
		if amount.IsPositive() {
			q.Discounts = append(q.Discounts, entity.Discount{
				Kind:        entity.DiscountKindCoupon,
				Code:        in.Coupon.Code,
				Description: fmt.Sprintf("coupon %s", in.Coupon.Code),
				Amount:      amount,
			})
		}
	}

	if rule, ok := SelectLongTermRule(in.LongTermRules, days, in.ResourceType); ok {
		amount := ruleDiscount(rule.DiscountType, rule.Value, q.GrossAmount)
		if amount.IsPositive() {
			q.Discounts = append(q.Discounts, entity.Discount{
				Kind:        entity.DiscountKindLongTerm,
				Description: fmt.Sprintf("long-term discount for %d+ days", rule.MinDays),
				Amount:      amount,
			})
		}
	}

	// itemized amounts are kept as computed; only the applied total is capped at gross
	q.DiscountTotal = decimal.Min(q.Discounts.Total(), q.GrossAmount)
	q.TotalPrice = q.GrossAmount.Sub(q.DiscountTotal)
	q.PricePerParticipant = Round(q.TotalPrice.Div(decimal.NewFromInt(int64(in.Quantity))))

	advance := Round(in.AdvanceAmount)
	if advance.IsNegative() || advance.GreaterThan(q.TotalPrice) {
		return Quote{}, errors.ValidationError(fmt.Sprintf("advance amount must be between 0 and %s", q.TotalPrice.StringFixed(moneyPlaces)))
	}
	q.AdvanceAmount = advance
	q.RemainingAmount = q.TotalPrice.Sub(advance)

	return q, nil
}

// AddonAmount prices a guide or driver request and returns the resolved head count.
// The minimum charge is applied to the raw total.
func AddonAmount(a Addon, quantity, days int) (decimal.Decimal, int, error) {
	if !a.Needed {
		return decimal.Zero, 0, nil
	}
	if !a.PricingType.Valid() {
		return decimal.Zero, 0, errors.InvalidPricingType(string(a.PricingType))
	}

	count := a.Quantity
	var raw decimal.Decimal
	switch a.PricingType {
	case entity.PricingPerDay:
		if count <= 0 {
			if a.Kind != entity.AddonDriver {
				return decimal.Zero, 0, errors.ValidationError("guide count is required for PER_DAY guide pricing")
			}
			count = quantity
		}
		raw = a.Rate.Mul(decimal.NewFromInt(int64(count))).Mul(decimal.NewFromInt(int64(days)))
	case entity.PricingPerPerson:
		if count <= 0 {
			count = quantity
		}
		raw = a.Rate.Mul(decimal.NewFromInt(int64(quantity)))
	case entity.PricingPerGroup:
		if count <= 0 {
			count = 1
		}
		raw = a.Rate
	}

	if raw.LessThan(a.MinCharge) {
		raw = a.MinCharge
	}
	return Round(raw), count, nil
}

// CouponDiscount checks eligibility and returns the discount against gross.
func CouponDiscount(c Coupon, gross decimal.Decimal, days int, rt entity.ResourceType, now time.Time) (decimal.Decimal, error) {
	if !c.AlreadyRedeemed {
		if !c.IsActive {
			return decimal.Zero, errors.CouponIneligible(fmt.Sprintf("coupon %s is not active", c.Code))
		}
		if c.ValidFrom.Valid && now.Before(c.ValidFrom.Time) {
			return decimal.Zero, errors.CouponIneligible(fmt.Sprintf("coupon %s is not valid yet", c.Code))
		}
		if c.ValidUntil.Valid && now.After(c.ValidUntil.Time) {
			return decimal.Zero, errors.CouponIneligible(fmt.Sprintf("coupon %s has expired", c.Code))
		}
		if c.UsageLimit.Valid && int64(c.UsageCount) >= c.UsageLimit.Int64 {
			return decimal.Zero, errors.CouponIneligible(fmt.Sprintf("coupon %s has reached its usage limit", c.Code))
		}
	}
	if c.ResourceType != "" && c.ResourceType != entity.ResourceAll && c.ResourceType != rt {
		return decimal.Zero, errors.CouponIneligible(fmt.Sprintf("coupon %s does not apply to %s bookings", c.Code, rt))
	}
	if gross.LessThan(c.MinAmount) {
		return decimal.Zero, errors.CouponIneligible(fmt.Sprintf("coupon %s requires a minimum amount of %s", c.Code, c.MinAmount.StringFixed(moneyPlaces)))
	}
	if days < c.MinDays {
		return decimal.Zero, errors.CouponIneligible(fmt.Sprintf("coupon %s requires at least %d days", c.Code, c.MinDays))
	}

	switch c.DiscountType {
	case entity.DiscountPercentage:
		amount := ruleDiscount(c.DiscountType, c.Value, gross)
		if c.MaxDiscountAmount.Valid && amount.GreaterThan(c.MaxDiscountAmount.Decimal) {
			amount = Round(c.MaxDiscountAmount.Decimal)
		}
		return amount, nil
	case entity.DiscountFixed:
		return Round(c.Value), nil
	}
	return decimal.Zero, errors.CouponIneligible(fmt.Sprintf("coupon %s has unsupported discount type %q", c.Code, c.DiscountType))
}

// SelectLongTermRule picks the active rule with the highest MinDays not above days.
func SelectLongTermRule(rules []entity.LongTermDiscountRule, days int, rt entity.ResourceType) (entity.LongTermDiscountRule, bool) {
	var best entity.LongTermDiscountRule
	if days < LongTermMinDays {
		return best, false
	}
	found := false
	for _, r := range rules {
		if !r.IsActive || r.MinDays > days {
			continue
		}
		if r.ResourceType != "" && r.ResourceType != entity.ResourceAll && r.ResourceType != rt {
			continue
		}
		if !found || r.MinDays > best.MinDays {
			best = r
			found = true
		}
	}
	return best, found
}

func ruleDiscount(dt entity.DiscountType, value, gross decimal.Decimal) decimal.Decimal {
	if dt == entity.DiscountPercentage {
		return Round(gross.Mul(value).Div(hundred))
	}
	return Round(value)
}
