package handler

import (
	"context"
	"fmt"
	"strconv"

	"travel-booking-service/internal/module/booking/models/request"
	"travel-booking-service/internal/module/booking/usecases"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/helpers"
	"travel-booking-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const roleAdmin = "admin"

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func (h *BookingHandler) parseBody(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return errors.BadRequest("error parse request")
	}
	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return errors.ValidationError(err.Error())
	}
	return nil
}

func (h *BookingHandler) parseQuery(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.QueryParser(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse query: %v", err))
		return errors.BadRequest("error parse query")
	}
	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate query: %v", err))
		return errors.ValidationError(err.Error())
	}
	return nil
}

// caller reads the identity stored by the token middleware.
func caller(ctx *fiber.Ctx) (int64, bool) {
	userID, _ := ctx.Locals("user_id").(int64)
	role, _ := ctx.Locals("role").(string)
	return userID, role == roleAdmin
}

// tours

func (h *BookingHandler) CreateTourBooking(ctx *fiber.Ctx) error {
	var req request.CreateTourBooking
	if err := h.parseBody(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	userID, _ := caller(ctx)
	resp, err := h.Usecase.CreateTourBooking(ctx.UserContext(), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create tour booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create tour booking")
}

func (h *BookingHandler) QuoteTourBooking(ctx *fiber.Ctx) error {
	var req request.CreateTourBooking
	if err := h.parseBody(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.QuoteTourBooking(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error quote tour booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success quote tour booking")
}

func (h *BookingHandler) GetTourBooking(ctx *fiber.Ctx) error {
	userID, isAdmin := caller(ctx)
	resp, err := h.Usecase.GetTourBooking(ctx.UserContext(), ctx.Params("id"), userID, isAdmin)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get tour booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get tour booking")
}

func (h *BookingHandler) UpdateTourBooking(ctx *fiber.Ctx) error {
	var req request.UpdateTourBooking
	if err := h.parseBody(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	userID, _ := caller(ctx)
	resp, err := h.Usecase.UpdateTourBooking(ctx.UserContext(), ctx.Params("id"), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update tour booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update tour booking")
}

func (h *BookingHandler) RescheduleTourBooking(ctx *fiber.Ctx) error {
	var req request.RescheduleTourBooking
	if err := h.parseBody(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	userID, _ := caller(ctx)
	resp, err := h.Usecase.RescheduleTourBooking(ctx.UserContext(), ctx.Params("id"), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error reschedule tour booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success reschedule tour booking")
}

func (h *BookingHandler) CancelTourBooking(ctx *fiber.Ctx) error {
	var req request.CancelBooking
	if len(ctx.Body()) > 0 {
		if err := h.parseBody(ctx, &req); err != nil {
			return helpers.RespError(ctx, h.Log, err)
		}
	}

	userID, _ := caller(ctx)
	resp, err := h.Usecase.CancelTourBooking(ctx.UserContext(), ctx.Params("id"), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel tour booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success cancel tour booking")
}

func (h *BookingHandler) DownloadTourVoucher(ctx *fiber.Ctx) error {
	userID, isAdmin := caller(ctx)
	out, err := h.Usecase.RenderTourVoucher(ctx.UserContext(), ctx.Params("id"), userID, isAdmin)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error render tour voucher: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return sendPDF(ctx, out, "tour-voucher-"+ctx.Params("id")+".pdf")
}

func (h *BookingHandler) CheckTourAvailability(ctx *fiber.Ctx) error {
	var req request.TourAvailability
	if err := h.parseQuery(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CheckTourAvailability(ctx.UserContext(), ctx.Params("id"), req.Quantity)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error check tour availability: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success check tour availability")
}

// vehicles

func (h *BookingHandler) CreateVehicleBooking(ctx *fiber.Ctx) error {
	var req request.CreateVehicleBooking
	if err := h.parseBody(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	userID, _ := caller(ctx)
	resp, err := h.Usecase.CreateVehicleBooking(ctx.UserContext(), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create vehicle booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create vehicle booking")
}

func (h *BookingHandler) QuoteVehicleBooking(ctx *fiber.Ctx) error {
	var req request.CreateVehicleBooking
	if err := h.parseBody(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.QuoteVehicleBooking(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error quote vehicle booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success quote vehicle booking")
}

func (h *BookingHandler) GetVehicleBooking(ctx *fiber.Ctx) error {
	userID, isAdmin := caller(ctx)
	resp, err := h.Usecase.GetVehicleBooking(ctx.UserContext(), ctx.Params("id"), userID, isAdmin)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get vehicle booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get vehicle booking")
}

func (h *BookingHandler) UpdateVehicleBooking(ctx *fiber.Ctx) error {
	var req request.UpdateVehicleBooking
	if err := h.parseBody(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	userID, _ := caller(ctx)
	resp, err := h.Usecase.UpdateVehicleBooking(ctx.UserContext(), ctx.Params("id"), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update vehicle booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update vehicle booking")
}

func (h *BookingHandler) CancelVehicleBooking(ctx *fiber.Ctx) error {
	var req request.CancelBooking
	if len(ctx.Body()) > 0 {
		if err := h.parseBody(ctx, &req); err != nil {
			return helpers.RespError(ctx, h.Log, err)
		}
	}

	userID, _ := caller(ctx)
	resp, err := h.Usecase.CancelVehicleBooking(ctx.UserContext(), ctx.Params("id"), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel vehicle booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success cancel vehicle booking")
}

func (h *BookingHandler) DownloadVehicleVoucher(ctx *fiber.Ctx) error {
	userID, isAdmin := caller(ctx)
	out, err := h.Usecase.RenderVehicleVoucher(ctx.UserContext(), ctx.Params("id"), userID, isAdmin)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error render vehicle voucher: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return sendPDF(ctx, out, "vehicle-voucher-"+ctx.Params("id")+".pdf")
}

func (h *BookingHandler) CheckVehicleAvailability(ctx *fiber.Ctx) error {
	var req request.VehicleAvailability
	if err := h.parseQuery(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CheckVehicleAvailability(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error check vehicle availability: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success check vehicle availability")
}

func (h *BookingHandler) ShowBookings(ctx *fiber.Ctx) error {
	userID, _ := caller(ctx)

	resp, err := h.Usecase.ListUserBookings(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings")
}

// admin

func (h *BookingHandler) SetTourBookingStatus(ctx *fiber.Ctx) error {
	var req request.SetBookingStatus
	if err := h.parseBody(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	adminID, _ := caller(ctx)
	resp, err := h.Usecase.SetTourBookingStatus(ctx.UserContext(), ctx.Params("id"), &req, adminID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error set tour booking status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success set tour booking status")
}

func (h *BookingHandler) SetVehicleBookingStatus(ctx *fiber.Ctx) error {
	var req request.SetBookingStatus
	if err := h.parseBody(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	adminID, _ := caller(ctx)
	resp, err := h.Usecase.SetVehicleBookingStatus(ctx.UserContext(), ctx.Params("id"), &req, adminID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error set vehicle booking status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success set vehicle booking status")
}

func (h *BookingHandler) ReconcileSchedules(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ReconcileScheduleCounters(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error reconcile schedules: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success reconcile schedules")
}

// message stream

func (h *BookingHandler) ConsumePaymentConfirmed(msg *message.Message) error {
	var req request.PaymentConfirmed
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.publishPoisoned(msg, err)
		// malformed payloads never succeed on retry
		return nil
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		h.publishPoisoned(msg, err)
		return nil
	}

	err := h.Usecase.ConfirmPayment(msg.Context(), &req)
	if err == nil {
		return nil
	}

	h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error confirm payment: %v", err))
	if ce, ok := errors.AsCustomError(err); ok && ce.Retryable {
		// redelivered by the router retry middleware
		return err
	}
	h.publishPoisoned(msg, err)
	return nil
}

func (h *BookingHandler) publishPoisoned(msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: messagestream.TopicPaymentConfirmed,
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)
	if err := h.Publish.Publish(messagestream.TopicPoisoned, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}

// scheduled tasks

func (h *BookingHandler) ExpireBooking(ctx context.Context, t *asynq.Task) error {
	var req request.ExpireBooking
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return fmt.Errorf("unmarshal expire payload: %v: %w", err, asynq.SkipRetry)
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return fmt.Errorf("validate expire payload: %v: %w", err, asynq.SkipRetry)
	}

	if err := h.Usecase.ExpirePendingBooking(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error expire pending booking: %v", err))
		return err
	}

	return nil
}

func (h *BookingHandler) ReconcileSchedulesTask(ctx context.Context, _ *asynq.Task) error {
	resp, err := h.Usecase.ReconcileScheduleCounters(ctx)
	if err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error reconcile schedules: %v", err))
		return err
	}

	h.Log.Ctx(ctx).Info(fmt.Sprintf("schedules reconciled: checked %d, corrected %d", resp.Checked, len(resp.Corrected)))
	return nil
}

func sendPDF(ctx *fiber.Ctx, out []byte, filename string) error {
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename="+strconv.Quote(filename))
	return ctx.Status(fiber.StatusOK).Send(out)
}
