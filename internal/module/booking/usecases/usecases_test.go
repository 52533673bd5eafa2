package usecases_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"travel-booking-service/config"
	"travel-booking-service/internal/module/booking/mocks"
	"travel-booking-service/internal/module/booking/models/entity"
	"travel-booking-service/internal/module/booking/models/request"
	"travel-booking-service/internal/module/booking/repositories"
	"travel-booking-service/internal/module/booking/usecases"
	"travel-booking-service/internal/pkg/errors"
	log_internal "travel-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	now         = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	bookingConf = &config.BookingConfig{PendingTTL: 24 * time.Hour, MutationLockTTL: 10 * time.Second, Currency: "USD"}
)

type mockPublisher struct {
	mu     sync.Mutex
	topics []string
}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.topics = append(m.topics, topic)
	return nil
}

func (m *mockPublisher) published() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.topics...)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	repo      *memRepo
	uc        usecases.Usecase
	pub       *mockPublisher
	clock     *time.Time
	tourID    uuid.UUID
	scheduleA uuid.UUID
	scheduleB uuid.UUID
	vehicleID uuid.UUID
}

func setup(t *testing.T) *fixture {
	t.Helper()

	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)

	f := &fixture{
		repo:      newMemRepo(),
		pub:       &mockPublisher{},
		tourID:    uuid.New(),
		scheduleA: uuid.New(),
		scheduleB: uuid.New(),
		vehicleID: uuid.New(),
	}
	clock := now
	f.clock = &clock

	f.repo.with(func(d *storeData) {
		d.tours[f.tourID] = entity.Tour{
			ID:              f.tourID,
			Name:            "Volcano sunrise",
			DestinationID:   uuid.New(),
			Category:        "adventure",
			Region:          "east",
			BasePrice:       dec("100"),
			MinParticipants: sql.NullInt64{Int64: 1, Valid: true},
			MaxParticipants: sql.NullInt64{Int64: 10, Valid: true},
			IsActive:        true,
		}
		d.schedules[f.scheduleA] = entity.TourSchedule{
			ID:             f.scheduleA,
			TourID:         f.tourID,
			StartDate:      time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2026, 3, 22, 8, 0, 0, 0, time.UTC),
			AvailableSeats: 5,
			IsActive:       true,
		}
		d.schedules[f.scheduleB] = entity.TourSchedule{
			ID:             f.scheduleB,
			TourID:         f.tourID,
			StartDate:      time.Date(2026, 4, 10, 8, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2026, 4, 12, 8, 0, 0, 0, time.UTC),
			AvailableSeats: 5,
			Price:          decimal.NewNullDecimal(dec("120")),
			IsActive:       true,
		}
		d.vehicles[f.vehicleID] = entity.Vehicle{
			ID:            f.vehicleID,
			Name:          "Minivan",
			DestinationID: uuid.New(),
			Category:      "van",
			Region:        "east",
			PricePerDay:   dec("50"),
			TotalQuantity: 3,
			IsActive:      true,
		}
		d.addonRates = []entity.AddonRate{
			{ID: uuid.New(), AddonKind: entity.AddonGuide, PricingType: entity.PricingPerDay, Rate: dec("40"), IsActive: true},
			{ID: uuid.New(), AddonKind: entity.AddonGuide, PricingType: entity.PricingPerGroup, Rate: dec("150"), IsActive: true},
			{ID: uuid.New(), AddonKind: entity.AddonDriver, PricingType: entity.PricingPerDay, Rate: dec("25"), IsActive: true},
		}
		d.coupons["SAVE10"] = entity.Coupon{Code: "SAVE10", DiscountType: entity.DiscountPercentage, Value: dec("10"), ResourceType: entity.ResourceAll, IsActive: true}
		d.coupons["FLAT20"] = entity.Coupon{Code: "FLAT20", DiscountType: entity.DiscountFixed, Value: dec("20"), ResourceType: entity.ResourceAll, IsActive: true}
	})

	f.uc = usecases.New(f.repo, log_internal.GetLogger(), f.pub, bookingConf, usecases.WithClock(func() time.Time { return *f.clock }))
	return f
}

func (f *fixture) bookTour(t *testing.T, userID int64, participants int) uuid.UUID {
	t.Helper()
	resp, err := f.uc.CreateTourBooking(context.Background(), &request.CreateTourBooking{
		ScheduleID:           f.scheduleA.String(),
		NumberOfParticipants: participants,
	}, userID)
	require.NoError(t, err)
	return uuid.MustParse(resp.ID)
}

func TestCreateTourBooking(t *testing.T) {
	t.Run("prices guide and coupon and reserves seats", func(t *testing.T) {
		f := setup(t)

		resp, err := f.uc.CreateTourBooking(context.Background(), &request.CreateTourBooking{
			ScheduleID:           f.scheduleA.String(),
			NumberOfParticipants: 2,
			Guide:                &request.AddonRequest{Needed: true, PricingType: "PER_DAY", Quantity: 1},
			CouponCode:           " save10 ",
		}, 7)

		require.NoError(t, err)
		assert.Equal(t, "PENDING", resp.Status)
		assert.Regexp(t, `^TB-.{12}$`, resp.BookingCode)
		assert.True(t, dec("200").Equal(resp.Price.BaseAmount))
		assert.True(t, dec("80").Equal(resp.Price.AddonAmount))
		assert.True(t, dec("28").Equal(resp.Price.DiscountTotal))
		assert.True(t, dec("252").Equal(resp.Price.TotalPrice))
		assert.True(t, dec("126").Equal(resp.PricePerParticipant))
		assert.Equal(t, "SAVE10", resp.CouponCode)

		assert.Equal(t, 2, f.repo.schedule(f.scheduleA).CurrentBookings)
		assert.Equal(t, 1, f.repo.coupon("SAVE10").UsageCount)
		assert.True(t, f.repo.hasTask("expire:"+resp.ID))
		assert.Contains(t, f.pub.published(), "booking_created")
	})

	t.Run("rejects overbooking without side effects", func(t *testing.T) {
		f := setup(t)
		f.bookTour(t, 1, 4)

		_, err := f.uc.CreateTourBooking(context.Background(), &request.CreateTourBooking{
			ScheduleID:           f.scheduleA.String(),
			NumberOfParticipants: 2,
			CouponCode:           "SAVE10",
		}, 2)

		ce, ok := errors.AsCapacityExceeded(err)
		require.True(t, ok)
		assert.Equal(t, 1, ce.Available)
		assert.Equal(t, 2, ce.Requested)
		assert.Equal(t, 4, f.repo.schedule(f.scheduleA).CurrentBookings)
		assert.Equal(t, 0, f.repo.coupon("SAVE10").UsageCount)
	})

	t.Run("rejects participants above tour maximum", func(t *testing.T) {
		f := setup(t)

		_, err := f.uc.CreateTourBooking(context.Background(), &request.CreateTourBooking{
			ScheduleID:           f.scheduleA.String(),
			NumberOfParticipants: 11,
		}, 1)

		assert.True(t, errors.IsKind(err, errors.KindValidation))
	})

	t.Run("rejects unknown pricing type", func(t *testing.T) {
		f := setup(t)

		_, err := f.uc.CreateTourBooking(context.Background(), &request.CreateTourBooking{
			ScheduleID:           f.scheduleA.String(),
			NumberOfParticipants: 1,
			Guide:                &request.AddonRequest{Needed: true, PricingType: "PER_HOUR"},
		}, 1)

		assert.True(t, errors.IsKind(err, errors.KindInvalidPricingType))
	})

	t.Run("rejects inactive schedule", func(t *testing.T) {
		f := setup(t)
		f.repo.with(func(d *storeData) {
			s := d.schedules[f.scheduleA]
			s.IsActive = false
			d.schedules[f.scheduleA] = s
		})

		_, err := f.uc.CreateTourBooking(context.Background(), &request.CreateTourBooking{
			ScheduleID:           f.scheduleA.String(),
			NumberOfParticipants: 1,
		}, 1)

		assert.True(t, errors.IsKind(err, errors.KindResourceUnavailable))
	})

	t.Run("unknown coupon", func(t *testing.T) {
		f := setup(t)

		_, err := f.uc.CreateTourBooking(context.Background(), &request.CreateTourBooking{
			ScheduleID:           f.scheduleA.String(),
			NumberOfParticipants: 1,
			CouponCode:           "NOPE",
		}, 1)

		assert.True(t, errors.IsKind(err, errors.KindCouponIneligible))
		assert.Equal(t, 0, f.repo.schedule(f.scheduleA).CurrentBookings)
	})
}

func TestCreateTourBooking_Concurrent(t *testing.T) {
	f := setup(t)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, full int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_, err := f.uc.CreateTourBooking(context.Background(), &request.CreateTourBooking{
				ScheduleID:           f.scheduleA.String(),
				NumberOfParticipants: 1,
			}, userID)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if errors.IsKind(err, errors.KindCapacityExceeded) {
				full++
			}
		}(int64(i + 1))
	}
	wg.Wait()

	assert.Equal(t, 5, ok)
	assert.Equal(t, 5, full)
	assert.Equal(t, 5, f.repo.schedule(f.scheduleA).CurrentBookings)
}

func TestCreateVehicleBooking_Concurrent(t *testing.T) {
	f := setup(t)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, full int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			// every interval shares 2026-03-12 with the others
			_, err := f.uc.CreateVehicleBooking(context.Background(), &request.CreateVehicleBooking{
				VehicleID:        f.vehicleID.String(),
				StartDate:        fmt.Sprintf("2026-03-%02d", 10+userID%3),
				EndDate:          "2026-03-14",
				NumberOfVehicles: 1,
			}, userID)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if errors.IsKind(err, errors.KindCapacityExceeded) {
				full++
			}
		}(int64(i + 1))
	}
	wg.Wait()

	assert.Equal(t, 3, ok)
	assert.Equal(t, 5, full)
	assert.LessOrEqual(t, f.repo.vehicleUnits(f.vehicleID), 3)
}

func TestQuoteTourBooking(t *testing.T) {
	f := setup(t)

	resp, err := f.uc.QuoteTourBooking(context.Background(), &request.CreateTourBooking{
		ScheduleID:           f.scheduleA.String(),
		NumberOfParticipants: 3,
		Guide:                &request.AddonRequest{Needed: true, PricingType: "PER_GROUP"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.DurationDays)
	assert.True(t, dec("450").Equal(resp.Price.TotalPrice))
	assert.Equal(t, 5, resp.Available)
	assert.Equal(t, 0, f.repo.schedule(f.scheduleA).CurrentBookings)
}

func TestUpdateTourBooking(t *testing.T) {
	t.Run("participant delta moves the counter", func(t *testing.T) {
		f := setup(t)
		id := f.bookTour(t, 1, 2)

		four := 4
		resp, err := f.uc.UpdateTourBooking(context.Background(), id.String(), &request.UpdateTourBooking{NumberOfParticipants: &four}, 1)
		require.NoError(t, err)
		assert.True(t, dec("400").Equal(resp.Price.TotalPrice))
		assert.Equal(t, 4, f.repo.schedule(f.scheduleA).CurrentBookings)

		six := 6
		_, err = f.uc.UpdateTourBooking(context.Background(), id.String(), &request.UpdateTourBooking{NumberOfParticipants: &six}, 1)
		ce, ok := errors.AsCapacityExceeded(err)
		require.True(t, ok)
		assert.Equal(t, 1, ce.Available)
		assert.Equal(t, 2, ce.Requested)

		one := 1
		_, err = f.uc.UpdateTourBooking(context.Background(), id.String(), &request.UpdateTourBooking{NumberOfParticipants: &one}, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, f.repo.schedule(f.scheduleA).CurrentBookings)
	})

	t.Run("coupon swap moves usage", func(t *testing.T) {
		f := setup(t)
		resp, err := f.uc.CreateTourBooking(context.Background(), &request.CreateTourBooking{
			ScheduleID:           f.scheduleA.String(),
			NumberOfParticipants: 2,
			CouponCode:           "SAVE10",
		}, 1)
		require.NoError(t, err)

		code := "FLAT20"
		updated, err := f.uc.UpdateTourBooking(context.Background(), resp.ID, &request.UpdateTourBooking{CouponCode: &code}, 1)

		require.NoError(t, err)
		assert.True(t, dec("180").Equal(updated.Price.TotalPrice))
		assert.Equal(t, 0, f.repo.coupon("SAVE10").UsageCount)
		assert.Equal(t, 1, f.repo.coupon("FLAT20").UsageCount)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		f := setup(t)
		id := f.bookTour(t, 1, 2)

		three := 3
		_, err := f.uc.UpdateTourBooking(context.Background(), id.String(), &request.UpdateTourBooking{NumberOfParticipants: &three}, 2)

		assert.True(t, errors.IsKind(err, errors.KindForbidden))
	})

	t.Run("only pending bookings", func(t *testing.T) {
		f := setup(t)
		id := f.bookTour(t, 1, 2)
		require.NoError(t, f.uc.ConfirmPayment(context.Background(), &request.PaymentConfirmed{BookingID: id.String(), BookingType: "TOUR"}))

		three := 3
		_, err := f.uc.UpdateTourBooking(context.Background(), id.String(), &request.UpdateTourBooking{NumberOfParticipants: &three}, 1)

		assert.True(t, errors.IsKind(err, errors.KindInvalidState))
	})
}

func TestRescheduleTourBooking(t *testing.T) {
	t.Run("moves seats and reprices", func(t *testing.T) {
		f := setup(t)
		id := f.bookTour(t, 1, 2)

		resp, err := f.uc.RescheduleTourBooking(context.Background(), id.String(), &request.RescheduleTourBooking{ScheduleID: f.scheduleB.String()}, 1)

		require.NoError(t, err)
		assert.True(t, dec("200").Equal(resp.PreviousTotal))
		assert.True(t, dec("240").Equal(resp.NewTotal))
		assert.True(t, dec("40").Equal(resp.PriceDifference))
		assert.Equal(t, 0, f.repo.schedule(f.scheduleA).CurrentBookings)
		assert.Equal(t, 2, f.repo.schedule(f.scheduleB).CurrentBookings)
		assert.Equal(t, f.scheduleB, f.repo.tourBooking(id).ScheduleID)
	})

	t.Run("same schedule is a conflict", func(t *testing.T) {
		f := setup(t)
		id := f.bookTour(t, 1, 2)

		_, err := f.uc.RescheduleTourBooking(context.Background(), id.String(), &request.RescheduleTourBooking{ScheduleID: f.scheduleA.String()}, 1)

		assert.True(t, errors.IsKind(err, errors.KindConflict))
		assert.Equal(t, 2, f.repo.schedule(f.scheduleA).CurrentBookings)
	})

	t.Run("full target leaves both counters untouched", func(t *testing.T) {
		f := setup(t)
		id := f.bookTour(t, 1, 2)
		f.repo.with(func(d *storeData) {
			s := d.schedules[f.scheduleB]
			s.CurrentBookings = 4
			d.schedules[f.scheduleB] = s
		})

		_, err := f.uc.RescheduleTourBooking(context.Background(), id.String(), &request.RescheduleTourBooking{ScheduleID: f.scheduleB.String()}, 1)

		assert.True(t, errors.IsKind(err, errors.KindCapacityExceeded))
		assert.Equal(t, 2, f.repo.schedule(f.scheduleA).CurrentBookings)
		assert.Equal(t, 4, f.repo.schedule(f.scheduleB).CurrentBookings)
	})
}

func TestCancelTourBooking(t *testing.T) {
	f := setup(t)
	id := f.bookTour(t, 1, 2)

	resp, err := f.uc.CancelTourBooking(context.Background(), id.String(), &request.CancelBooking{Reason: "change of plans"}, 1)

	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", resp.Status)
	require.NotNil(t, resp.RefundAmount)
	assert.True(t, dec("180").Equal(*resp.RefundAmount))
	assert.Equal(t, "user:1", resp.CancelledBy)
	assert.Equal(t, 0, f.repo.schedule(f.scheduleA).CurrentBookings)
	assert.False(t, f.repo.hasTask("expire:"+id.String()))

	_, err = f.uc.CancelTourBooking(context.Background(), id.String(), &request.CancelBooking{}, 1)

	assert.True(t, errors.IsKind(err, errors.KindInvalidState))
	assert.Equal(t, 0, f.repo.schedule(f.scheduleA).CurrentBookings)
}

func TestCancelTourBooking_Active(t *testing.T) {
	f := setup(t)
	id := f.bookTour(t, 1, 3)
	b := f.repo.tourBooking(id)
	b.Status = entity.StatusActive
	f.repo.setTourBooking(b)

	*f.clock = time.Date(2026, 3, 19, 12, 0, 0, 0, time.UTC)
	resp, err := f.uc.CancelTourBooking(context.Background(), id.String(), &request.CancelBooking{}, 1)

	require.NoError(t, err)
	require.NotNil(t, resp.RefundAmount)
	assert.True(t, resp.RefundAmount.IsZero())
	assert.Equal(t, 0, f.repo.schedule(f.scheduleA).CurrentBookings)
}

func TestSetTourBookingStatus(t *testing.T) {
	f := setup(t)
	id := f.bookTour(t, 1, 2)
	ctx := context.Background()

	resp, err := f.uc.SetTourBookingStatus(ctx, id.String(), &request.SetBookingStatus{Status: "CONFIRMED"}, 99)
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", resp.Status)
	assert.NotNil(t, resp.ConfirmedAt)

	_, err = f.uc.SetTourBookingStatus(ctx, id.String(), &request.SetBookingStatus{Status: "PENDING"}, 99)
	assert.True(t, errors.IsKind(err, errors.KindInvalidState))

	resp, err = f.uc.SetTourBookingStatus(ctx, id.String(), &request.SetBookingStatus{Status: "CANCELLED", Reason: "weather"}, 99)
	require.NoError(t, err)
	assert.Equal(t, "admin:99", resp.CancelledBy)
	assert.Equal(t, 0, f.repo.schedule(f.scheduleA).CurrentBookings)

	_, err = f.uc.SetTourBookingStatus(ctx, id.String(), &request.SetBookingStatus{Status: "CANCELLED"}, 99)
	assert.True(t, errors.IsKind(err, errors.KindInvalidState))
	assert.Equal(t, 0, f.repo.schedule(f.scheduleA).CurrentBookings)
}

func TestCheckTourAvailability(t *testing.T) {
	f := setup(t)
	f.bookTour(t, 1, 3)

	resp, err := f.uc.CheckTourAvailability(context.Background(), f.scheduleA.String(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Available)

	_, err = f.uc.CheckTourAvailability(context.Background(), f.scheduleA.String(), 3)
	ce, ok := errors.AsCapacityExceeded(err)
	require.True(t, ok)
	assert.Equal(t, 2, ce.Available)
}

func TestVehicleBookingLifecycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	resp, err := f.uc.CreateVehicleBooking(ctx, &request.CreateVehicleBooking{
		VehicleID:        f.vehicleID.String(),
		StartDate:        "2026-03-10",
		EndDate:          "2026-03-13",
		NumberOfVehicles: 2,
		Driver:           &request.AddonRequest{Needed: true, PricingType: "PER_DAY"},
		AdvanceAmount:    dec("100"),
	}, 5)

	require.NoError(t, err)
	assert.Regexp(t, `^VB-.{12}$`, resp.BookingCode)
	assert.Equal(t, 3, resp.DurationDays)
	assert.Equal(t, 2, resp.Driver.Quantity)
	assert.True(t, dec("300").Equal(resp.Price.BaseAmount))
	assert.True(t, dec("150").Equal(resp.Price.AddonAmount))
	assert.True(t, dec("450").Equal(resp.Price.TotalPrice))
	assert.True(t, dec("350").Equal(resp.RemainingAmount))

	// overlapping on the last day
	_, err = f.uc.CreateVehicleBooking(ctx, &request.CreateVehicleBooking{
		VehicleID:        f.vehicleID.String(),
		StartDate:        "2026-03-13",
		EndDate:          "2026-03-15",
		NumberOfVehicles: 2,
	}, 6)
	ce, ok := errors.AsCapacityExceeded(err)
	require.True(t, ok)
	assert.Equal(t, 1, ce.Available)

	_, err = f.uc.CreateVehicleBooking(ctx, &request.CreateVehicleBooking{
		VehicleID:        f.vehicleID.String(),
		StartDate:        "2026-03-14",
		EndDate:          "2026-03-16",
		NumberOfVehicles: 3,
	}, 6)
	require.NoError(t, err)

	avail, err := f.uc.CheckVehicleAvailability(ctx, f.vehicleID.String(), &request.VehicleAvailability{StartDate: "2026-03-11", EndDate: "2026-03-12", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, avail.Available)

	// growing the own booking excludes itself from the overlap count
	three := 3
	updated, err := f.uc.UpdateVehicleBooking(ctx, resp.ID, &request.UpdateVehicleBooking{NumberOfVehicles: &three}, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.NumberOfVehicles)

	cancelled, err := f.uc.CancelVehicleBooking(ctx, resp.ID, &request.CancelBooking{}, 5)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", cancelled.Status)
	assert.Equal(t, entity.StatusCancelled, f.repo.vehicleBooking(uuid.MustParse(resp.ID)).Status)

	avail, err = f.uc.CheckVehicleAvailability(ctx, f.vehicleID.String(), &request.VehicleAvailability{StartDate: "2026-03-11", EndDate: "2026-03-12", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, avail.Available)
}

func TestUpdateVehicleBooking_EndDateOnly(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created, err := f.uc.CreateVehicleBooking(ctx, &request.CreateVehicleBooking{
		VehicleID:        f.vehicleID.String(),
		StartDate:        "2026-03-10T15:00:00Z",
		EndDate:          "2026-03-13T15:00:00Z",
		NumberOfVehicles: 1,
	}, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, created.DurationDays)
	assert.True(t, dec("150").Equal(created.Price.TotalPrice))

	end := "2026-03-14T15:00:00Z"
	updated, err := f.uc.UpdateVehicleBooking(ctx, created.ID, &request.UpdateVehicleBooking{EndDate: &end}, 5)

	require.NoError(t, err)
	assert.True(t, time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC).Equal(updated.StartDate))
	assert.True(t, time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC).Equal(updated.EndDate))
	assert.Equal(t, 4, updated.DurationDays)
	assert.True(t, dec("200").Equal(updated.Price.TotalPrice))

	stored := f.repo.vehicleBooking(uuid.MustParse(created.ID))
	assert.True(t, time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC).Equal(stored.StartDate))

	t.Run("end before unchanged start", func(t *testing.T) {
		early := "2026-03-09"
		_, err := f.uc.UpdateVehicleBooking(ctx, created.ID, &request.UpdateVehicleBooking{EndDate: &early}, 5)
		assert.True(t, errors.IsKind(err, errors.KindValidation), "got %v", err)
	})
}

func TestCreateVehicleBooking_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		payload request.CreateVehicleBooking
		kind    errors.Kind
	}{
		{"end before start", request.CreateVehicleBooking{VehicleID: f.vehicleID.String(), StartDate: "2026-03-10", EndDate: "2026-03-09", NumberOfVehicles: 1}, errors.KindValidation},
		{"start in the past", request.CreateVehicleBooking{VehicleID: f.vehicleID.String(), StartDate: "2026-02-01", EndDate: "2026-02-03", NumberOfVehicles: 1}, errors.KindValidation},
		{"advance above total", request.CreateVehicleBooking{VehicleID: f.vehicleID.String(), StartDate: "2026-03-10", EndDate: "2026-03-11", NumberOfVehicles: 1, AdvanceAmount: dec("1000")}, errors.KindValidation},
		{"unknown vehicle", request.CreateVehicleBooking{VehicleID: uuid.NewString(), StartDate: "2026-03-10", EndDate: "2026-03-11", NumberOfVehicles: 1}, errors.KindNotFound},
		{"more than fleet", request.CreateVehicleBooking{VehicleID: f.vehicleID.String(), StartDate: "2026-03-10", EndDate: "2026-03-11", NumberOfVehicles: 4}, errors.KindCapacityExceeded},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := tc.payload
			_, err := f.uc.CreateVehicleBooking(ctx, &payload, 1)
			assert.True(t, errors.IsKind(err, tc.kind), "got %v", err)
		})
	}
}

func TestConfirmPayment(t *testing.T) {
	f := setup(t)
	id := f.bookTour(t, 1, 2)
	payload := &request.PaymentConfirmed{BookingID: id.String(), BookingType: "TOUR", PaymentID: "pay-1"}

	require.NoError(t, f.uc.ConfirmPayment(context.Background(), payload))
	assert.Equal(t, entity.StatusConfirmed, f.repo.tourBooking(id).Status)
	assert.False(t, f.repo.hasTask("expire:"+id.String()))

	// redelivery
	require.NoError(t, f.uc.ConfirmPayment(context.Background(), payload))

	_, err := f.uc.CancelTourBooking(context.Background(), id.String(), &request.CancelBooking{}, 1)
	require.NoError(t, err)
	err = f.uc.ConfirmPayment(context.Background(), payload)
	assert.True(t, errors.IsKind(err, errors.KindInvalidState))
}

func TestExpirePendingBooking(t *testing.T) {
	f := setup(t)
	id := f.bookTour(t, 1, 2)
	payload := &request.ExpireBooking{BookingID: id.String(), BookingType: "TOUR"}

	// before the TTL nothing happens
	require.NoError(t, f.uc.ExpirePendingBooking(context.Background(), payload))
	assert.Equal(t, entity.StatusPending, f.repo.tourBooking(id).Status)

	*f.clock = now.Add(25 * time.Hour)
	require.NoError(t, f.uc.ExpirePendingBooking(context.Background(), payload))

	b := f.repo.tourBooking(id)
	assert.Equal(t, entity.StatusCancelled, b.Status)
	assert.Equal(t, "system", b.CancelledBy.String)
	assert.True(t, b.RefundAmount.Decimal.IsZero())
	assert.Equal(t, 0, f.repo.schedule(f.scheduleA).CurrentBookings)

	// a second run is a no-op
	require.NoError(t, f.uc.ExpirePendingBooking(context.Background(), payload))
	assert.Equal(t, 0, f.repo.schedule(f.scheduleA).CurrentBookings)
}

func TestReconcileScheduleCounters(t *testing.T) {
	f := setup(t)
	f.bookTour(t, 1, 2)
	f.repo.with(func(d *storeData) {
		s := d.schedules[f.scheduleA]
		s.CurrentBookings = 5
		d.schedules[f.scheduleA] = s
	})

	resp, err := f.uc.ReconcileScheduleCounters(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Checked)
	require.Len(t, resp.Corrected, 1)
	assert.Equal(t, 5, resp.Corrected[0].Previous)
	assert.Equal(t, 2, resp.Corrected[0].Actual)
	assert.Equal(t, 2, f.repo.schedule(f.scheduleA).CurrentBookings)
}

func TestListUserBookingsAndVoucher(t *testing.T) {
	f := setup(t)
	id := f.bookTour(t, 1, 2)
	f.bookTour(t, 2, 1)

	list, err := f.uc.ListUserBookings(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list.Tours, 1)
	assert.Empty(t, list.Vehicles)

	_, err = f.uc.GetTourBooking(context.Background(), id.String(), 2, false)
	assert.True(t, errors.IsKind(err, errors.KindForbidden))

	_, err = f.uc.GetTourBooking(context.Background(), id.String(), 2, true)
	assert.NoError(t, err)

	out, err := f.uc.RenderTourVoucher(context.Background(), id.String(), 1, false)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(out[:5]))
}

func TestCheckTourAvailability_CatalogChange(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.bookTour(t, 1, 3)

	resp, err := f.uc.CheckTourAvailability(ctx, f.scheduleA.String(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Available)
	hint, ok := f.repo.hint(f.scheduleA)
	require.True(t, ok)
	assert.Equal(t, 2, hint)

	schedule := f.repo.schedule(f.scheduleA)
	schedule.IsActive = false
	schedule.AvailableSeats = 3
	f.repo.setSchedule(schedule)

	_, err = f.uc.CheckTourAvailability(ctx, f.scheduleA.String(), 1)
	assert.True(t, errors.IsKind(err, errors.KindResourceUnavailable), "got %v", err)
}

func TestCreateTourBooking_DropsHint(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.uc.CheckTourAvailability(ctx, f.scheduleA.String(), 1)
	require.NoError(t, err)
	_, ok := f.repo.hint(f.scheduleA)
	require.True(t, ok)

	f.bookTour(t, 1, 2)

	_, ok = f.repo.hint(f.scheduleA)
	assert.False(t, ok)

	resp, err := f.uc.CheckTourAvailability(ctx, f.scheduleA.String(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Available)
}

func TestCreateTourBooking_HintPreCheck(t *testing.T) {
	repoMock := new(mocks.Repositories)
	uc := usecases.New(repoMock, log_internal.GetLogger(), &mockPublisher{}, bookingConf)
	scheduleID := uuid.New()

	repoMock.On("GetScheduleAvailability", mock.Anything, scheduleID).Return(1, true, nil)

	_, err := uc.CreateTourBooking(context.Background(), &request.CreateTourBooking{
		ScheduleID:           scheduleID.String(),
		NumberOfParticipants: 3,
	}, 1)

	ce, ok := errors.AsCapacityExceeded(err)
	require.True(t, ok)
	assert.Equal(t, 1, ce.Available)
	repoMock.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
}

func TestConfirmPayment_RetryableConflict(t *testing.T) {
	repoMock := new(mocks.Repositories)
	uc := usecases.New(repoMock, log_internal.GetLogger(), &mockPublisher{}, bookingConf)
	bookingID := uuid.New()

	repoMock.On("LockBooking", mock.Anything, bookingID).Return(nil, errors.RetryableConflict("locked"))

	err := uc.ConfirmPayment(context.Background(), &request.PaymentConfirmed{BookingID: bookingID.String(), BookingType: "TOUR"})

	ce, ok := errors.AsCustomError(err)
	require.True(t, ok)
	assert.True(t, ce.Retryable)
}

func TestCancelVehicleBooking_RollsBackOnUpdateError(t *testing.T) {
	repoMock := new(mocks.Repositories)
	uc := usecases.New(repoMock, log_internal.GetLogger(), &mockPublisher{}, bookingConf)
	bookingID := uuid.New()

	repoMock.On("LockBooking", mock.Anything, bookingID).Return(func() {}, nil)
	repoMock.On("WithTransaction", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, fn func(repositories.Repositories) error) error {
			return fn(repoMock)
		})
	repoMock.On("FindVehicleBookingByID", mock.Anything, bookingID, true).Return(entity.VehicleBooking{
		ID:        bookingID,
		UserID:    1,
		StartDate: time.Now().Add(72 * time.Hour),
		PriceSnapshot: entity.PriceSnapshot{
			TotalPrice: dec("100"),
		},
		Lifecycle: entity.Lifecycle{Status: entity.StatusPending},
	}, nil)
	repoMock.On("UpdateVehicleBooking", mock.Anything, mock.Anything).Return(errors.InternalServerError("db down"))

	_, err := uc.CancelVehicleBooking(context.Background(), bookingID.String(), &request.CancelBooking{}, 1)

	assert.True(t, errors.IsKind(err, errors.KindInternal))
	repoMock.AssertNotCalled(t, "DeleteTaskScheduler", mock.Anything, mock.Anything)
}
