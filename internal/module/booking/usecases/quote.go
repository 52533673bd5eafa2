package usecases

import (
	"context"
	"time"

	"travel-booking-service/internal/module/booking/models/entity"
	"travel-booking-service/internal/module/booking/models/request"
	"travel-booking-service/internal/module/booking/pricing"
	"travel-booking-service/internal/module/booking/repositories"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/helpers"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// resolveAddon looks up the current rate for a requested guide or driver.
func resolveAddon(ctx context.Context, repo repositories.Repositories, kind entity.AddonKind, resourceID uuid.UUID, req *request.AddonRequest) (pricing.Addon, error) {
	if req == nil || !req.Needed {
		return pricing.Addon{Kind: kind}, nil
	}
	pricingType := entity.PricingType(req.PricingType)
	if !pricingType.Valid() {
		return pricing.Addon{}, errors.InvalidPricingType(req.PricingType)
	}

	rate, err := repo.FindAddonRate(ctx, kind, pricingType, resourceID)
	if err != nil {
		return pricing.Addon{}, err
	}

	return pricing.Addon{
		Needed:      true,
		Kind:        kind,
		PricingType: pricingType,
		Quantity:    req.Quantity,
		Rate:        rate.Rate,
		MinCharge:   rate.MinCharge,
	}, nil
}

// resolveCoupon loads the coupon for pricing. Locked rows are used when usage will change.
func resolveCoupon(ctx context.Context, repo repositories.Repositories, code string, redeemed, forUpdate bool) (*pricing.Coupon, error) {
	if code == "" {
		return nil, nil
	}
	coupon, err := repo.FindCouponByCode(ctx, code, forUpdate)
	if err != nil {
		return nil, err
	}
	return &pricing.Coupon{Coupon: coupon, AlreadyRedeemed: redeemed}, nil
}

type pricingContext struct {
	resourceType entity.ResourceType
	category     string
	region       string
	startsAt     time.Time
}

// loadRules fetches the seasonal multiplier and long-term rules for a resource.
func loadRules(ctx context.Context, repo repositories.Repositories, pc pricingContext) (decimal.Decimal, []entity.LongTermDiscountRule, error) {
	multiplier, err := repo.FindSeasonalMultiplier(ctx, pc.resourceType, pc.category, pc.region, pc.startsAt)
	if err != nil {
		return decimal.Decimal{}, nil, err
	}
	rules, err := repo.FindLongTermRules(ctx, pc.resourceType)
	if err != nil {
		return decimal.Decimal{}, nil, err
	}
	return multiplier, rules, nil
}

type tourPricing struct {
	tour         entity.Tour
	schedule     entity.TourSchedule
	participants int
	addon        pricing.Addon
	coupon       *pricing.Coupon
}

func tourDays(schedule entity.TourSchedule) int {
	days := helpers.CeilDays(schedule.StartDate, schedule.EndDate)
	if days < 1 {
		return 1
	}
	return days
}

func (u *usecase) priceTour(ctx context.Context, repo repositories.Repositories, tp tourPricing) (pricing.Quote, error) {
	multiplier, rules, err := loadRules(ctx, repo, pricingContext{
		resourceType: entity.ResourceTour,
		category:     tp.tour.Category,
		region:       tp.tour.Region,
		startsAt:     tp.schedule.StartDate,
	})
	if err != nil {
		return pricing.Quote{}, err
	}

	return pricing.Calculate(pricing.Input{
		ResourceType:       entity.ResourceTour,
		UnitPrice:          tp.schedule.UnitPrice(tp.tour),
		Quantity:           tp.participants,
		DurationDays:       tourDays(tp.schedule),
		SeasonalMultiplier: multiplier,
		Addon:              tp.addon,
		Coupon:             tp.coupon,
		LongTermRules:      rules,
		Now:                u.now(),
	})
}

type vehiclePricing struct {
	vehicle entity.Vehicle
	start   time.Time
	end     time.Time
	units   int
	addon   pricing.Addon
	coupon  *pricing.Coupon
	advance decimal.Decimal
}

func (u *usecase) priceVehicle(ctx context.Context, repo repositories.Repositories, vp vehiclePricing) (pricing.Quote, error) {
	multiplier, rules, err := loadRules(ctx, repo, pricingContext{
		resourceType: entity.ResourceVehicle,
		category:     vp.vehicle.Category,
		region:       vp.vehicle.Region,
		startsAt:     vp.start,
	})
	if err != nil {
		return pricing.Quote{}, err
	}

	return pricing.Calculate(pricing.Input{
		ResourceType:       entity.ResourceVehicle,
		UnitPrice:          vp.vehicle.PricePerDay,
		Quantity:           vp.units,
		DurationDays:       helpers.CeilDays(vp.start, vp.end),
		ChargePerDay:       true,
		SeasonalMultiplier: multiplier,
		Addon:              vp.addon,
		Coupon:             vp.coupon,
		LongTermRules:      rules,
		AdvanceAmount:      vp.advance,
		Now:                u.now(),
	})
}
