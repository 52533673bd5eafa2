package usecases_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"travel-booking-service/internal/module/booking/models/entity"
	"travel-booking-service/internal/module/booking/models/response"
	"travel-booking-service/internal/module/booking/repositories"
	"travel-booking-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
)

type storeData struct {
	tours           map[uuid.UUID]entity.Tour
	schedules       map[uuid.UUID]entity.TourSchedule
	vehicles        map[uuid.UUID]entity.Vehicle
	coupons         map[string]entity.Coupon
	addonRates      []entity.AddonRate
	longTerm        []entity.LongTermDiscountRule
	multiplier      decimal.Decimal
	tourBookings    map[uuid.UUID]entity.TourBooking
	vehicleBookings map[uuid.UUID]entity.VehicleBooking
}

func (d *storeData) clone() *storeData {
	out := &storeData{
		tours:           make(map[uuid.UUID]entity.Tour, len(d.tours)),
		schedules:       make(map[uuid.UUID]entity.TourSchedule, len(d.schedules)),
		vehicles:        make(map[uuid.UUID]entity.Vehicle, len(d.vehicles)),
		coupons:         make(map[string]entity.Coupon, len(d.coupons)),
		addonRates:      append([]entity.AddonRate(nil), d.addonRates...),
		longTerm:        append([]entity.LongTermDiscountRule(nil), d.longTerm...),
		multiplier:      d.multiplier,
		tourBookings:    make(map[uuid.UUID]entity.TourBooking, len(d.tourBookings)),
		vehicleBookings: make(map[uuid.UUID]entity.VehicleBooking, len(d.vehicleBookings)),
	}
	for k, v := range d.tours {
		out.tours[k] = v
	}
	for k, v := range d.schedules {
		out.schedules[k] = v
	}
	for k, v := range d.vehicles {
		out.vehicles[k] = v
	}
	for k, v := range d.coupons {
		out.coupons[k] = v
	}
	for k, v := range d.tourBookings {
		out.tourBookings[k] = v
	}
	for k, v := range d.vehicleBookings {
		out.vehicleBookings[k] = v
	}
	return out
}

// memState is an in-memory stand-in for postgres and redis. Transactions are
// serialized and rolled back by restoring a snapshot.
type memState struct {
	txMu  sync.Mutex
	mu    sync.Mutex
	data  *storeData
	hints map[uuid.UUID]int
	tasks map[string]*asynq.Task
}

type memRepo struct {
	st   *memState
	inTx bool
}

func newMemRepo() *memRepo {
	return &memRepo{st: &memState{
		data: &storeData{
			tours:           map[uuid.UUID]entity.Tour{},
			schedules:       map[uuid.UUID]entity.TourSchedule{},
			vehicles:        map[uuid.UUID]entity.Vehicle{},
			coupons:         map[string]entity.Coupon{},
			multiplier:      decimal.NewFromInt(1),
			tourBookings:    map[uuid.UUID]entity.TourBooking{},
			vehicleBookings: map[uuid.UUID]entity.VehicleBooking{},
		},
		hints: map[uuid.UUID]int{},
		tasks: map[string]*asynq.Task{},
	}}
}

var _ repositories.Repositories = (*memRepo)(nil)

func (r *memRepo) with(fn func(d *storeData)) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	fn(r.st.data)
}

func (r *memRepo) WithTransaction(ctx context.Context, fn func(repo repositories.Repositories) error) error {
	if r.inTx {
		return fn(r)
	}
	r.st.txMu.Lock()
	defer r.st.txMu.Unlock()

	var snapshot *storeData
	r.with(func(d *storeData) { snapshot = d.clone() })

	if err := fn(&memRepo{st: r.st, inTx: true}); err != nil {
		r.st.mu.Lock()
		r.st.data = snapshot
		r.st.mu.Unlock()
		return err
	}
	return nil
}

func (r *memRepo) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	return response.UserServiceValidate{IsValid: true, UserID: 1}, nil
}

func (r *memRepo) GetScheduleAvailability(ctx context.Context, scheduleID uuid.UUID) (int, bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	v, ok := r.st.hints[scheduleID]
	return v, ok, nil
}

func (r *memRepo) SetScheduleAvailability(ctx context.Context, scheduleID uuid.UUID, remaining int) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.hints[scheduleID] = remaining
	return nil
}

func (r *memRepo) DeleteScheduleAvailability(ctx context.Context, scheduleID uuid.UUID) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	delete(r.st.hints, scheduleID)
	return nil
}

func (r *memRepo) LockBooking(ctx context.Context, bookingID uuid.UUID) (func(), error) {
	return func() {}, nil
}

func (r *memRepo) SetTaskScheduler(ctx context.Context, delay time.Duration, task *asynq.Task, taskID string) (string, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.tasks[taskID] = task
	return taskID, nil
}

func (r *memRepo) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	delete(r.st.tasks, taskID)
	return nil
}

func (r *memRepo) FindTourByID(ctx context.Context, id uuid.UUID) (tour entity.Tour, err error) {
	r.with(func(d *storeData) {
		var ok bool
		if tour, ok = d.tours[id]; !ok {
			err = errors.NotFound(fmt.Sprintf("tour %s not found", id))
		}
	})
	return
}

func (r *memRepo) FindScheduleByID(ctx context.Context, id uuid.UUID, forUpdate bool) (s entity.TourSchedule, err error) {
	r.with(func(d *storeData) {
		var ok bool
		if s, ok = d.schedules[id]; !ok {
			err = errors.NotFound(fmt.Sprintf("schedule %s not found", id))
		}
	})
	return
}

func (r *memRepo) LockSchedules(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]entity.TourSchedule, error) {
	out := map[uuid.UUID]entity.TourSchedule{}
	for _, id := range ids {
		s, err := r.FindScheduleByID(ctx, id, true)
		if err != nil {
			return nil, err
		}
		out[id] = s
	}
	return out, nil
}

func (r *memRepo) FindVehicleByID(ctx context.Context, id uuid.UUID, forUpdate bool) (v entity.Vehicle, err error) {
	r.with(func(d *storeData) {
		var ok bool
		if v, ok = d.vehicles[id]; !ok {
			err = errors.NotFound(fmt.Sprintf("vehicle %s not found", id))
		}
	})
	return
}

func (r *memRepo) FindAddonRate(ctx context.Context, kind entity.AddonKind, pricingType entity.PricingType, resourceID uuid.UUID) (rate entity.AddonRate, err error) {
	r.with(func(d *storeData) {
		found := false
		for _, a := range d.addonRates {
			if !a.IsActive || a.AddonKind != kind || a.PricingType != pricingType {
				continue
			}
			if a.ResourceID.Valid && a.ResourceID.UUID == resourceID {
				rate, found = a, true
				return
			}
			if !a.ResourceID.Valid && !found {
				rate, found = a, true
			}
		}
		if !found {
			err = errors.NotFound(fmt.Sprintf("no %s rate configured for %s", kind, pricingType))
		}
	})
	return
}

func (r *memRepo) FindCouponByCode(ctx context.Context, code string, forUpdate bool) (c entity.Coupon, err error) {
	r.with(func(d *storeData) {
		var ok bool
		if c, ok = d.coupons[code]; !ok {
			err = errors.CouponIneligible(fmt.Sprintf("coupon %s does not exist", code))
		}
	})
	return
}

func (r *memRepo) FindLongTermRules(ctx context.Context, resourceType entity.ResourceType) (rules []entity.LongTermDiscountRule, err error) {
	r.with(func(d *storeData) {
		for _, rule := range d.longTerm {
			if rule.IsActive && (rule.ResourceType == resourceType || rule.ResourceType == entity.ResourceAll) {
				rules = append(rules, rule)
			}
		}
	})
	sort.Slice(rules, func(i, j int) bool { return rules[i].MinDays > rules[j].MinDays })
	return rules, nil
}

func (r *memRepo) FindSeasonalMultiplier(ctx context.Context, resourceType entity.ResourceType, category, region string, at time.Time) (m decimal.Decimal, err error) {
	r.with(func(d *storeData) { m = d.multiplier })
	return
}

func (r *memRepo) AdjustScheduleBookings(ctx context.Context, scheduleID uuid.UUID, delta int) (err error) {
	if delta == 0 {
		return nil
	}
	r.with(func(d *storeData) {
		s, ok := d.schedules[scheduleID]
		if !ok {
			err = errors.NotFound(fmt.Sprintf("schedule %s not found", scheduleID))
			return
		}
		s.CurrentBookings += delta
		if s.CurrentBookings < 0 {
			s.CurrentBookings = 0
		}
		d.schedules[scheduleID] = s
	})
	return
}

func (r *memRepo) AdjustCouponUsage(ctx context.Context, code string, delta int) error {
	if code == "" || delta == 0 {
		return nil
	}
	r.with(func(d *storeData) {
		c, ok := d.coupons[code]
		if !ok {
			return
		}
		c.UsageCount += delta
		if c.UsageCount < 0 {
			c.UsageCount = 0
		}
		d.coupons[code] = c
	})
	return nil
}

func (r *memRepo) SumScheduleParticipants(ctx context.Context, scheduleID uuid.UUID) (total int, err error) {
	r.with(func(d *storeData) {
		for _, b := range d.tourBookings {
			if b.ScheduleID == scheduleID && b.Status != entity.StatusCancelled {
				total += b.NumberOfParticipants
			}
		}
	})
	return
}

func (r *memRepo) SetScheduleBookings(ctx context.Context, scheduleID uuid.UUID, count int) error {
	r.with(func(d *storeData) {
		s := d.schedules[scheduleID]
		s.CurrentBookings = count
		d.schedules[scheduleID] = s
	})
	return nil
}

func (r *memRepo) ListScheduleCommitments(ctx context.Context) ([]entity.ScheduleSum, error) {
	var ids []uuid.UUID
	r.with(func(d *storeData) {
		for id := range d.schedules {
			ids = append(ids, id)
		}
	})
	sums := make([]entity.ScheduleSum, 0, len(ids))
	for _, id := range ids {
		committed, _ := r.SumScheduleParticipants(ctx, id)
		s, _ := r.FindScheduleByID(ctx, id, false)
		sums = append(sums, entity.ScheduleSum{ScheduleID: id, CurrentBookings: s.CurrentBookings, Committed: committed})
	}
	return sums, nil
}

func (r *memRepo) SumOverlappingVehicleUnits(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, excludeBookingID uuid.UUID) (total int, err error) {
	r.with(func(d *storeData) {
		for _, b := range d.vehicleBookings {
			if b.VehicleID != vehicleID || b.ID == excludeBookingID || !b.Status.Commits() {
				continue
			}
			if !b.StartDate.After(end) && !b.EndDate.Before(start) {
				total += b.NumberOfVehicles
			}
		}
	})
	return
}

func (r *memRepo) InsertTourBooking(ctx context.Context, booking *entity.TourBooking) error {
	r.with(func(d *storeData) { d.tourBookings[booking.ID] = *booking })
	return nil
}

func (r *memRepo) UpdateTourBooking(ctx context.Context, booking *entity.TourBooking) (err error) {
	r.with(func(d *storeData) {
		if _, ok := d.tourBookings[booking.ID]; !ok {
			err = errors.NotFound(fmt.Sprintf("booking %s not found", booking.ID))
			return
		}
		d.tourBookings[booking.ID] = *booking
	})
	return
}

func (r *memRepo) FindTourBookingByID(ctx context.Context, id uuid.UUID, forUpdate bool) (b entity.TourBooking, err error) {
	r.with(func(d *storeData) {
		var ok bool
		if b, ok = d.tourBookings[id]; !ok {
			err = errors.NotFound(fmt.Sprintf("booking %s not found", id))
		}
	})
	return
}

func (r *memRepo) FindTourBookingsByUserID(ctx context.Context, userID int64) (out []entity.TourBooking, err error) {
	r.with(func(d *storeData) {
		for _, b := range d.tourBookings {
			if b.UserID == userID {
				out = append(out, b)
			}
		}
	})
	return
}

func (r *memRepo) InsertVehicleBooking(ctx context.Context, booking *entity.VehicleBooking) error {
	r.with(func(d *storeData) { d.vehicleBookings[booking.ID] = *booking })
	return nil
}

func (r *memRepo) UpdateVehicleBooking(ctx context.Context, booking *entity.VehicleBooking) (err error) {
	r.with(func(d *storeData) {
		if _, ok := d.vehicleBookings[booking.ID]; !ok {
			err = errors.NotFound(fmt.Sprintf("booking %s not found", booking.ID))
			return
		}
		d.vehicleBookings[booking.ID] = *booking
	})
	return
}

func (r *memRepo) FindVehicleBookingByID(ctx context.Context, id uuid.UUID, forUpdate bool) (b entity.VehicleBooking, err error) {
	r.with(func(d *storeData) {
		var ok bool
		if b, ok = d.vehicleBookings[id]; !ok {
			err = errors.NotFound(fmt.Sprintf("booking %s not found", id))
		}
	})
	return
}

func (r *memRepo) FindVehicleBookingsByUserID(ctx context.Context, userID int64) (out []entity.VehicleBooking, err error) {
	r.with(func(d *storeData) {
		for _, b := range d.vehicleBookings {
			if b.UserID == userID {
				out = append(out, b)
			}
		}
	})
	return
}

// test helpers

func (r *memRepo) schedule(id uuid.UUID) (s entity.TourSchedule) {
	r.with(func(d *storeData) { s = d.schedules[id] })
	return
}

func (r *memRepo) setSchedule(s entity.TourSchedule) {
	r.with(func(d *storeData) { d.schedules[s.ID] = s })
}

func (r *memRepo) hint(scheduleID uuid.UUID) (int, bool) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	v, ok := r.st.hints[scheduleID]
	return v, ok
}

func (r *memRepo) vehicleUnits(vehicleID uuid.UUID) (n int) {
	r.with(func(d *storeData) {
		for _, b := range d.vehicleBookings {
			if b.VehicleID == vehicleID && b.Status.Commits() {
				n += b.NumberOfVehicles
			}
		}
	})
	return
}

func (r *memRepo) coupon(code string) (c entity.Coupon) {
	r.with(func(d *storeData) { c = d.coupons[code] })
	return
}

func (r *memRepo) tourBooking(id uuid.UUID) (b entity.TourBooking) {
	r.with(func(d *storeData) { b = d.tourBookings[id] })
	return
}

func (r *memRepo) vehicleBooking(id uuid.UUID) (b entity.VehicleBooking) {
	r.with(func(d *storeData) { b = d.vehicleBookings[id] })
	return
}

func (r *memRepo) setTourBooking(b entity.TourBooking) {
	r.with(func(d *storeData) { d.tourBookings[b.ID] = b })
}

func (r *memRepo) hasTask(taskID string) bool {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	_, ok := r.st.tasks[taskID]
	return ok
}
