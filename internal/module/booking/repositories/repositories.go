package repositories

import (
	"context"
	"time"

	"travel-booking-service/config"
	"travel-booking-service/internal/module/booking/models/entity"
	"travel-booking-service/internal/module/booking/models/response"
	"travel-booking-service/internal/pkg/database"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/log"

	"github.com/go-redsync/redsync/v4"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/shopspring/decimal"
)

type repositories struct {
	db             *sqlx.DB
	exec           sqlx.ExtContext
	inTx           bool
	log            log.Logger
	httpClient     *circuit.HTTPClient
	cfgUserService *config.UserServiceConfig
	redisClient    *redis.Client
	redsync        *redsync.Redsync
	asynqClient    *asynq.Client
	inspector      *asynq.Inspector
	cfgBooking     *config.BookingConfig
}

type Repositories interface {
	// unit of work
	WithTransaction(ctx context.Context, fn func(repo Repositories) error) error
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	// redis
	GetScheduleAvailability(ctx context.Context, scheduleID uuid.UUID) (int, bool, error)
	SetScheduleAvailability(ctx context.Context, scheduleID uuid.UUID, remaining int) error
	DeleteScheduleAvailability(ctx context.Context, scheduleID uuid.UUID) error
	LockBooking(ctx context.Context, bookingID uuid.UUID) (func(), error)
	// scheduler
	SetTaskScheduler(ctx context.Context, delay time.Duration, task *asynq.Task, taskID string) (string, error)
	DeleteTaskScheduler(ctx context.Context, taskID string) error
	// catalog
	FindTourByID(ctx context.Context, id uuid.UUID) (entity.Tour, error)
	FindScheduleByID(ctx context.Context, id uuid.UUID, forUpdate bool) (entity.TourSchedule, error)
	LockSchedules(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]entity.TourSchedule, error)
	FindVehicleByID(ctx context.Context, id uuid.UUID, forUpdate bool) (entity.Vehicle, error)
	FindAddonRate(ctx context.Context, kind entity.AddonKind, pricingType entity.PricingType, resourceID uuid.UUID) (entity.AddonRate, error)
	FindCouponByCode(ctx context.Context, code string, forUpdate bool) (entity.Coupon, error)
	FindLongTermRules(ctx context.Context, resourceType entity.ResourceType) ([]entity.LongTermDiscountRule, error)
	FindSeasonalMultiplier(ctx context.Context, resourceType entity.ResourceType, category, region string, at time.Time) (decimal.Decimal, error)
	// counters
	AdjustScheduleBookings(ctx context.Context, scheduleID uuid.UUID, delta int) error
	AdjustCouponUsage(ctx context.Context, code string, delta int) error
	SumScheduleParticipants(ctx context.Context, scheduleID uuid.UUID) (int, error)
	SetScheduleBookings(ctx context.Context, scheduleID uuid.UUID, count int) error
	ListScheduleCommitments(ctx context.Context) ([]entity.ScheduleSum, error)
	SumOverlappingVehicleUnits(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, excludeBookingID uuid.UUID) (int, error)
	// tour bookings
	InsertTourBooking(ctx context.Context, booking *entity.TourBooking) error
	UpdateTourBooking(ctx context.Context, booking *entity.TourBooking) error
	FindTourBookingByID(ctx context.Context, id uuid.UUID, forUpdate bool) (entity.TourBooking, error)
	FindTourBookingsByUserID(ctx context.Context, userID int64) ([]entity.TourBooking, error)
	// vehicle bookings
	InsertVehicleBooking(ctx context.Context, booking *entity.VehicleBooking) error
	UpdateVehicleBooking(ctx context.Context, booking *entity.VehicleBooking) error
	FindVehicleBookingByID(ctx context.Context, id uuid.UUID, forUpdate bool) (entity.VehicleBooking, error)
	FindVehicleBookingsByUserID(ctx context.Context, userID int64) ([]entity.VehicleBooking, error)
}

func New(
	db *sqlx.DB,
	log log.Logger,
	httpClient *circuit.HTTPClient,
	cfgUserService *config.UserServiceConfig,
	redisClient *redis.Client,
	rs *redsync.Redsync,
	asynqClient *asynq.Client,
	inspector *asynq.Inspector,
	cfgBooking *config.BookingConfig,
) Repositories {
	if cfgBooking == nil {
		cfgBooking = &config.BookingConfig{MutationLockTTL: 10 * time.Second}
	}
	return &repositories{
		db:             db,
		exec:           db,
		log:            log,
		httpClient:     httpClient,
		cfgUserService: cfgUserService,
		redisClient:    redisClient,
		redsync:        rs,
		asynqClient:    asynqClient,
		inspector:      inspector,
		cfgBooking:     cfgBooking,
	}
}

// WithTransaction runs fn against a copy of the repository bound to one transaction.
// Nested calls join the outer transaction.
func (r *repositories) WithTransaction(ctx context.Context, fn func(repo Repositories) error) error {
	if r.inTx {
		return fn(r)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error starting transaction", err)
		return errors.InternalServerError("error starting transaction")
	}

	// lock waits are bounded so a stuck holder surfaces as a retryable conflict
	if _, err := tx.ExecContext(ctx, `SET LOCAL lock_timeout = '5s'`); err != nil {
		tx.Rollback()
		return r.mapTxError(ctx, err)
	}

	txRepo := *r
	txRepo.exec = tx
	txRepo.inTx = true

	if err := fn(&txRepo); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error(ctx, "error rollback transaction", rbErr)
		}
		return r.mapTxError(ctx, err)
	}

	if err := tx.Commit(); err != nil {
		return r.mapTxError(ctx, err)
	}
	return nil
}

func (r *repositories) mapTxError(ctx context.Context, err error) error {
	if database.IsRetryable(err) {
		r.log.Warn(ctx, "transaction aborted by concurrent update", err)
		return errors.RetryableConflict("booking was modified concurrently, please retry")
	}
	if _, ok := errors.AsCustomError(err); ok {
		return err
	}
	if _, ok := errors.AsCapacityExceeded(err); ok {
		return err
	}
	r.log.Error(ctx, "transaction failed", err)
	return errors.InternalServerError("error processing booking")
}
