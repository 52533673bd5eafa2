package repositories_test

import (
	"context"
	stderrors "errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-booking-service/internal/module/booking/models/entity"
	"travel-booking-service/internal/module/booking/repositories"
	"travel-booking-service/internal/pkg/errors"
	log_internal "travel-booking-service/internal/pkg/log"
)

var (
	mock sqlmock.Sqlmock
	dbx  *sqlx.DB
	repo repositories.Repositories
)

func setup(t *testing.T) {
	db, m, err := sqlmock.New()
	require.NoError(t, err)
	mock = m
	dbx = sqlx.NewDb(db, "postgres")
	repo = repositories.New(dbx, log_internal.GetLogger(), nil, nil, nil, nil, nil, nil, nil)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		dbx.Close()
	})
}

func TestFindTourByID(t *testing.T) {
	id := uuid.New()
	columns := []string{"id", "name", "destination_id", "category", "region", "base_price", "min_participants", "max_participants", "is_active", "created_at", "updated_at"}

	testCases := []struct {
		name        string
		rows        *sqlmock.Rows
		expectedErr errors.Kind
	}{
		{
			name: "tour found",
			rows: sqlmock.NewRows(columns).
				AddRow(id.String(), "Volcano sunrise", uuid.NewString(), "adventure", "east", "100.00", 1, 10, true, time.Now(), time.Now()),
		},
		{
			name:        "tour not found",
			rows:        sqlmock.NewRows(columns),
			expectedErr: errors.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup(t)
			mock.ExpectQuery(regexp.QuoteMeta("FROM tours WHERE id = $1")).
				WithArgs(id.String()).
				WillReturnRows(tc.rows)

			tour, err := repo.FindTourByID(context.Background(), id)

			if tc.expectedErr != "" {
				assert.True(t, errors.IsKind(err, tc.expectedErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, tour.ID)
			assert.True(t, decimal.NewFromInt(100).Equal(tour.BasePrice))
			assert.Equal(t, int64(10), tour.MaxParticipants.Int64)
		})
	}
}

func TestFindScheduleByID_ForUpdate(t *testing.T) {
	setup(t)
	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "tour_id", "start_date", "end_date", "available_seats", "current_bookings", "price", "is_active", "created_at", "updated_at"}).
		AddRow(id.String(), uuid.NewString(), time.Now(), time.Now().Add(48*time.Hour), 20, 12, nil, true, time.Now(), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("FROM tour_schedules WHERE id = $1 FOR UPDATE")).
		WithArgs(id.String()).
		WillReturnRows(rows)

	schedule, err := repo.FindScheduleByID(context.Background(), id, true)

	require.NoError(t, err)
	assert.Equal(t, 8, schedule.RemainingSeats())
	assert.False(t, schedule.Price.Valid)
}

func TestFindCouponByCode_Missing(t *testing.T) {
	setup(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM coupons WHERE code = $1")).
		WithArgs("NOPE").
		WillReturnRows(sqlmock.NewRows([]string{"code"}))

	_, err := repo.FindCouponByCode(context.Background(), "NOPE", false)

	assert.True(t, errors.IsKind(err, errors.KindCouponIneligible))
}

func TestFindSeasonalMultiplier_DefaultsToOne(t *testing.T) {
	setup(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM seasonal_rules")).
		WillReturnRows(sqlmock.NewRows([]string{"multiplier"}))

	m, err := repo.FindSeasonalMultiplier(context.Background(), entity.ResourceTour, "adventure", "east", time.Now())

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(m))
}

func TestAdjustScheduleBookings(t *testing.T) {
	id := uuid.New()

	t.Run("zero delta skips the query", func(t *testing.T) {
		setup(t)
		assert.NoError(t, repo.AdjustScheduleBookings(context.Background(), id, 0))
	})

	t.Run("applies delta", func(t *testing.T) {
		setup(t)
		mock.ExpectExec(regexp.QuoteMeta("SET current_bookings = GREATEST(current_bookings + $2, 0)")).
			WithArgs(id.String(), -2).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.AdjustScheduleBookings(context.Background(), id, -2))
	})

	t.Run("missing schedule", func(t *testing.T) {
		setup(t)
		mock.ExpectExec("UPDATE tour_schedules").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.AdjustScheduleBookings(context.Background(), id, 1)
		assert.True(t, errors.IsKind(err, errors.KindNotFound))
	})
}

func TestSumOverlappingVehicleUnits(t *testing.T) {
	setup(t)
	vehicleID := uuid.New()
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM vehicle_bookings")).
		WithArgs(vehicleID.String(), sqlmock.AnyArg(), end, start, uuid.Nil.String()).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(2))

	total, err := repo.SumOverlappingVehicleUnits(context.Background(), vehicleID, start, end, uuid.Nil)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestLockSchedules_OrderedAndDeduplicated(t *testing.T) {
	setup(t)
	a, b := uuid.New(), uuid.New()
	first, second := a, b
	if b.String() < a.String() {
		first, second = b, a
	}
	columns := []string{"id", "tour_id", "start_date", "end_date", "available_seats", "current_bookings", "price", "is_active", "created_at", "updated_at"}

	for _, id := range []uuid.UUID{first, second} {
		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WithArgs(id.String()).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(id.String(), uuid.NewString(), time.Now(), time.Now(), 10, 0, "120.00", true, time.Now(), time.Now()))
	}

	locked, err := repo.LockSchedules(context.Background(), second, first, second)

	require.NoError(t, err)
	assert.Len(t, locked, 2)
	assert.True(t, locked[a].Price.Valid)
}

func TestWithTransaction(t *testing.T) {
	ctx := context.Background()
	scheduleID := uuid.New()

	t.Run("commits", func(t *testing.T) {
		setup(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("SET LOCAL lock_timeout")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("UPDATE tour_schedules").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.WithTransaction(ctx, func(tx repositories.Repositories) error {
			return tx.AdjustScheduleBookings(ctx, scheduleID, 2)
		})
		assert.NoError(t, err)
	})

	t.Run("domain errors roll back and pass through", func(t *testing.T) {
		setup(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("SET LOCAL lock_timeout")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.WithTransaction(ctx, func(tx repositories.Repositories) error {
			return errors.NewCapacityExceeded(1, 3, "seats")
		})
		ce, ok := errors.AsCapacityExceeded(err)
		require.True(t, ok)
		assert.Equal(t, 1, ce.Available)
	})

	t.Run("lock timeout is retryable", func(t *testing.T) {
		setup(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("SET LOCAL lock_timeout")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("UPDATE tour_schedules").WillReturnError(&pq.Error{Code: "55P03"})
		mock.ExpectRollback()

		err := repo.WithTransaction(ctx, func(tx repositories.Repositories) error {
			return tx.AdjustScheduleBookings(ctx, scheduleID, 1)
		})
		ce, ok := errors.AsCustomError(err)
		require.True(t, ok)
		assert.True(t, ce.Retryable)
	})

	t.Run("unknown errors become internal", func(t *testing.T) {
		setup(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("SET LOCAL lock_timeout")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.WithTransaction(ctx, func(tx repositories.Repositories) error {
			return stderrors.New("boom")
		})
		assert.True(t, errors.IsKind(err, errors.KindInternal))
	})
}

func TestInsertTourBooking_CodeCollision(t *testing.T) {
	setup(t)
	mock.ExpectExec("INSERT INTO tour_bookings").WillReturnError(&pq.Error{Code: "23505"})

	err := repo.InsertTourBooking(context.Background(), &entity.TourBooking{
		ID:          uuid.New(),
		BookingCode: "TB-abcdefghijkl",
		Lifecycle:   entity.Lifecycle{Status: entity.StatusPending},
	})

	ce, ok := errors.AsCustomError(err)
	require.True(t, ok)
	assert.True(t, ce.Retryable)
}

func TestUpdateVehicleBooking_Missing(t *testing.T) {
	setup(t)
	mock.ExpectExec("UPDATE vehicle_bookings").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateVehicleBooking(context.Background(), &entity.VehicleBooking{ID: uuid.New()})

	assert.True(t, errors.IsKind(err, errors.KindNotFound))
}
