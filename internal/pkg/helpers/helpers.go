package helpers

import (
	"fmt"
	"time"

	"travel-booking-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Message string      `json:"message"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Message: message,
		Data:    data,
	})
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusCreated).JSON(Response{
		Message: message,
		Data:    data,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	status := errors.HTTPStatus(err)
	resp := ErrorResponse{
		Message: err.Error(),
		Code:    string(errors.KindOf(err)),
	}

	if ce, ok := errors.AsCapacityExceeded(err); ok {
		resp.Details = fiber.Map{
			"available": ce.Available,
			"requested": ce.Requested,
			"shortfall": ce.Requested - ce.Available,
		}
	} else if ce, ok := errors.AsCustomError(err); ok && ce.Retryable {
		resp.Details = fiber.Map{"retryable": true}
	}

	if status >= fiber.StatusInternalServerError {
		if log != nil {
			log.Ctx(ctx.UserContext()).Error("internal error", zap.Error(err))
		}
		resp.Message = "internal server error"
	}

	return ctx.Status(status).JSON(resp)
}

// CeilDays counts whole days between start and end, rounding any remainder up.
func CeilDays(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q", s)
		}
	}
	return t, nil
}
