package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"sort"
	"time"

	"travel-booking-service/internal/module/booking/models/entity"
	"travel-booking-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const (
	tourColumns     = `id, name, destination_id, category, region, base_price, min_participants, max_participants, is_active, created_at, updated_at`
	scheduleColumns = `id, tour_id, start_date, end_date, available_seats, current_bookings, price, is_active, created_at, updated_at`
	vehicleColumns  = `id, name, destination_id, category, region, price_per_day, total_quantity, min_units, max_units, is_active, created_at, updated_at`
	couponColumns   = `code, discount_type, value, max_discount_amount, min_amount, min_days, usage_limit, usage_count, resource_type, valid_from, valid_until, is_active`
)

func lockClause(forUpdate bool) string {
	if forUpdate {
		return " FOR UPDATE"
	}
	return ""
}

// FindTourByID implements Repositories.
func (r *repositories) FindTourByID(ctx context.Context, id uuid.UUID) (entity.Tour, error) {
	var tour entity.Tour
	err := sqlx.GetContext(ctx, r.exec, &tour, `SELECT `+tourColumns+` FROM tours WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Tour{}, errors.NotFound(fmt.Sprintf("tour %s not found", id))
	}
	if err != nil {
		return entity.Tour{}, fmt.Errorf("find tour: %w", err)
	}
	return tour, nil
}

// FindScheduleByID implements Repositories.
func (r *repositories) FindScheduleByID(ctx context.Context, id uuid.UUID, forUpdate bool) (entity.TourSchedule, error) {
	var schedule entity.TourSchedule
	query := `SELECT ` + scheduleColumns + ` FROM tour_schedules WHERE id = $1` + lockClause(forUpdate)
	err := sqlx.GetContext(ctx, r.exec, &schedule, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.TourSchedule{}, errors.NotFound(fmt.Sprintf("schedule %s not found", id))
	}
	if err != nil {
		return entity.TourSchedule{}, fmt.Errorf("find schedule: %w", err)
	}
	return schedule, nil
}

// LockSchedules implements Repositories. Rows are locked in id order.
func (r *repositories) LockSchedules(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]entity.TourSchedule, error) {
	ordered := make([]uuid.UUID, len(ids))
	copy(ordered, ids)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].String() < ordered[j].String() })

	out := make(map[uuid.UUID]entity.TourSchedule, len(ordered))
	for _, id := range ordered {
		if _, ok := out[id]; ok {
			continue
		}
		schedule, err := r.FindScheduleByID(ctx, id, true)
		if err != nil {
			return nil, err
		}
		out[id] = schedule
	}
	return out, nil
}

// FindVehicleByID implements Repositories.
func (r *repositories) FindVehicleByID(ctx context.Context, id uuid.UUID, forUpdate bool) (entity.Vehicle, error) {
	var vehicle entity.Vehicle
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1` + lockClause(forUpdate)
	err := sqlx.GetContext(ctx, r.exec, &vehicle, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Vehicle{}, errors.NotFound(fmt.Sprintf("vehicle %s not found", id))
	}
	if err != nil {
		return entity.Vehicle{}, fmt.Errorf("find vehicle: %w", err)
	}
	return vehicle, nil
}

// FindAddonRate implements Repositories. A rate bound to the resource wins over the default row.
func (r *repositories) FindAddonRate(ctx context.Context, kind entity.AddonKind, pricingType entity.PricingType, resourceID uuid.UUID) (entity.AddonRate, error) {
	var rate entity.AddonRate
	query := `SELECT id, addon_kind, pricing_type, rate, min_charge, resource_id, is_active
		FROM addon_rates
		WHERE is_active AND addon_kind = $1 AND pricing_type = $2 AND (resource_id = $3 OR resource_id IS NULL)
		ORDER BY resource_id IS NULL
		LIMIT 1`
	err := sqlx.GetContext(ctx, r.exec, &rate, query, kind, pricingType, resourceID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.AddonRate{}, errors.NotFound(fmt.Sprintf("no %s rate configured for %s", kind, pricingType))
	}
	if err != nil {
		return entity.AddonRate{}, fmt.Errorf("find addon rate: %w", err)
	}
	return rate, nil
}

// FindCouponByCode implements Repositories.
func (r *repositories) FindCouponByCode(ctx context.Context, code string, forUpdate bool) (entity.Coupon, error) {
	var coupon entity.Coupon
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1` + lockClause(forUpdate)
	err := sqlx.GetContext(ctx, r.exec, &coupon, query, code)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Coupon{}, errors.CouponIneligible(fmt.Sprintf("coupon %s does not exist", code))
	}
	if err != nil {
		return entity.Coupon{}, fmt.Errorf("find coupon: %w", err)
	}
	return coupon, nil
}

// FindLongTermRules implements Repositories.
func (r *repositories) FindLongTermRules(ctx context.Context, resourceType entity.ResourceType) ([]entity.LongTermDiscountRule, error) {
	rules := []entity.LongTermDiscountRule{}
	query := `SELECT id, resource_type, min_days, discount_type, value, is_active
		FROM long_term_discount_rules
		WHERE is_active AND resource_type IN ($1, 'ALL')
		ORDER BY min_days DESC`
	if err := sqlx.SelectContext(ctx, r.exec, &rules, query, resourceType); err != nil {
		return nil, fmt.Errorf("find long term rules: %w", err)
	}
	return rules, nil
}

// FindSeasonalMultiplier implements Repositories. The most specific matching rule wins; no match is 1.0.
func (r *repositories) FindSeasonalMultiplier(ctx context.Context, resourceType entity.ResourceType, category, region string, at time.Time) (decimal.Decimal, error) {
	var multiplier decimal.Decimal
	query := `SELECT multiplier
		FROM seasonal_rules
		WHERE is_active
			AND resource_type IN ($1, 'ALL')
			AND (category IS NULL OR category = $2)
			AND (region IS NULL OR region = $3)
			AND start_date <= $4 AND end_date >= $4
		ORDER BY (category IS NOT NULL)::int + (region IS NOT NULL)::int DESC, multiplier DESC
		LIMIT 1`
	err := sqlx.GetContext(ctx, r.exec, &multiplier, query, resourceType, category, region, at)
	if stderrors.Is(err, sql.ErrNoRows) {
		return decimal.NewFromInt(1), nil
	}
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("find seasonal multiplier: %w", err)
	}
	return multiplier, nil
}
