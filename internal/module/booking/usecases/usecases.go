package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"travel-booking-service/config"
	"travel-booking-service/internal/module/booking/models/entity"
	"travel-booking-service/internal/module/booking/models/request"
	"travel-booking-service/internal/module/booking/models/response"
	"travel-booking-service/internal/module/booking/repositories"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v3"
	"github.com/shopspring/decimal"
)

const (
	BookingTypeTour    = "TOUR"
	BookingTypeVehicle = "VEHICLE"

	actorSystem = "system"
)

type usecase struct {
	repo      repositories.Repositories
	log       log.Logger
	publisher message.Publisher
	cfg       *config.BookingConfig
	now       func() time.Time
}

type Usecase interface {
	// tours
	CreateTourBooking(ctx context.Context, payload *request.CreateTourBooking, userID int64) (response.TourBooking, error)
	QuoteTourBooking(ctx context.Context, payload *request.CreateTourBooking) (response.TourQuote, error)
	UpdateTourBooking(ctx context.Context, bookingID string, payload *request.UpdateTourBooking, userID int64) (response.TourBooking, error)
	RescheduleTourBooking(ctx context.Context, bookingID string, payload *request.RescheduleTourBooking, userID int64) (response.RescheduledTourBooking, error)
	CancelTourBooking(ctx context.Context, bookingID string, payload *request.CancelBooking, userID int64) (response.TourBooking, error)
	SetTourBookingStatus(ctx context.Context, bookingID string, payload *request.SetBookingStatus, adminID int64) (response.TourBooking, error)
	GetTourBooking(ctx context.Context, bookingID string, userID int64, isAdmin bool) (response.TourBooking, error)
	CheckTourAvailability(ctx context.Context, scheduleID string, quantity int) (response.Availability, error)
	RenderTourVoucher(ctx context.Context, bookingID string, userID int64, isAdmin bool) ([]byte, error)
	// vehicles
	CreateVehicleBooking(ctx context.Context, payload *request.CreateVehicleBooking, userID int64) (response.VehicleBooking, error)
	QuoteVehicleBooking(ctx context.Context, payload *request.CreateVehicleBooking) (response.VehicleQuote, error)
	UpdateVehicleBooking(ctx context.Context, bookingID string, payload *request.UpdateVehicleBooking, userID int64) (response.VehicleBooking, error)
	CancelVehicleBooking(ctx context.Context, bookingID string, payload *request.CancelBooking, userID int64) (response.VehicleBooking, error)
	SetVehicleBookingStatus(ctx context.Context, bookingID string, payload *request.SetBookingStatus, adminID int64) (response.VehicleBooking, error)
	GetVehicleBooking(ctx context.Context, bookingID string, userID int64, isAdmin bool) (response.VehicleBooking, error)
	CheckVehicleAvailability(ctx context.Context, vehicleID string, payload *request.VehicleAvailability) (response.Availability, error)
	RenderVehicleVoucher(ctx context.Context, bookingID string, userID int64, isAdmin bool) ([]byte, error)
	// shared
	ListUserBookings(ctx context.Context, userID int64) (response.UserBookings, error)
	// events and tasks
	ConfirmPayment(ctx context.Context, payload *request.PaymentConfirmed) error
	ExpirePendingBooking(ctx context.Context, payload *request.ExpireBooking) error
	ReconcileScheduleCounters(ctx context.Context) (response.ReconcileResult, error)
}

type Option func(*usecase)

// WithClock replaces time.Now, used by tests that depend on refund windows.
func WithClock(now func() time.Time) Option {
	return func(u *usecase) {
		u.now = now
	}
}

func New(repo repositories.Repositories, log log.Logger, publisher message.Publisher, cfg *config.BookingConfig, opts ...Option) Usecase {
	if cfg == nil {
		cfg = &config.BookingConfig{PendingTTL: 24 * time.Hour, MutationLockTTL: 10 * time.Second, Currency: "USD"}
	}
	u := &usecase{
		repo:      repo,
		log:       log,
		publisher: publisher,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.ValidationError(fmt.Sprintf("invalid %s id %q", what, raw))
	}
	return id, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func newBookingCode(prefix string) string {
	return prefix + shortuuid.New()[:12]
}

func userActor(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

func adminActor(adminID int64) string {
	return fmt.Sprintf("admin:%d", adminID)
}

func checkOwner(ownerID, userID int64, isAdmin bool) error {
	if isAdmin || ownerID == userID {
		return nil
	}
	return errors.Forbidden("booking does not belong to the current user")
}

func expiryTaskID(bookingID uuid.UUID) string {
	return "expire:" + bookingID.String()
}

// publishEvent is best effort; the booking is already committed.
func (u *usecase) publishEvent(ctx context.Context, topic string, event request.BookingEvent) {
	if u.publisher == nil {
		return
	}
	event.EventType = topic
	event.OccurredAt = u.now()

	payload, err := json.Marshal(event)
	if err != nil {
		u.log.Error(ctx, "error marshal booking event", err)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := u.publisher.Publish(topic, msg); err != nil {
		u.log.Error(ctx, "error publish booking event", "topic", topic, "booking_id", event.BookingID, "error", err.Error())
	}
}

func (u *usecase) cancelExpiry(ctx context.Context, bookingID uuid.UUID) {
	if err := u.repo.DeleteTaskScheduler(ctx, expiryTaskID(bookingID)); err != nil {
		u.log.Warn(ctx, "error delete expiry task", "booking_id", bookingID.String(), "error", err.Error())
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// checkTransition validates an admin-driven status move.
func checkTransition(from, to entity.Status) error {
	if from == to {
		return errors.InvalidState(fmt.Sprintf("booking is already %s", to))
	}
	if from.IsTerminal() {
		return errors.InvalidState(fmt.Sprintf("booking is %s and can no longer change", from))
	}
	if !from.CanTransition(to) {
		return errors.InvalidState(fmt.Sprintf("cannot move booking from %s to %s", from, to))
	}
	return nil
}

// checkSelfCancel rejects cancellation of terminal bookings, so a second cancel never releases capacity twice.
func checkSelfCancel(status entity.Status) error {
	switch status {
	case entity.StatusCancelled:
		return errors.InvalidState("booking is already cancelled")
	case entity.StatusCompleted:
		return errors.InvalidState("completed bookings cannot be cancelled")
	}
	return nil
}

func cancelLifecycle(l *entity.Lifecycle, now time.Time, refund decimal.Decimal, reason, actor string) {
	l.Stamp(entity.StatusCancelled, now)
	l.RefundAmount = decimal.NewNullDecimal(refund)
	l.CancellationReason = nullString(reason)
	l.CancelledBy = nullString(actor)
}
