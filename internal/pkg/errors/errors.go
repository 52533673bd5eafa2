package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindBadRequest          Kind = "BAD_REQUEST"
	KindUnauthorized        Kind = "UNAUTHORIZED"
	KindForbidden           Kind = "FORBIDDEN"
	KindInternal            Kind = "INTERNAL_ERROR"
	KindNotFound            Kind = "NOT_FOUND"
	KindResourceUnavailable Kind = "RESOURCE_UNAVAILABLE"
	KindCapacityExceeded    Kind = "CAPACITY_EXCEEDED"
	KindValidation          Kind = "VALIDATION_ERROR"
	KindInvalidPricingType  Kind = "INVALID_PRICING_TYPE"
	KindInvalidState        Kind = "INVALID_STATE"
	KindConflict            Kind = "CONFLICT"
	KindCouponIneligible    Kind = "COUPON_INELIGIBLE"
)

// CustomError is the error shape every usecase returns to the transport layer.
type CustomError struct {
	Code      int
	Kind      Kind
	Message   string
	Retryable bool
}

func (e *CustomError) Error() string {
	return e.Message
}

func newError(code int, kind Kind, msg string) *CustomError {
	return &CustomError{Code: code, Kind: kind, Message: msg}
}

func BadRequest(msg string) error {
	return newError(http.StatusBadRequest, KindBadRequest, msg)
}

func UnauthorizedError(msg string) error {
	return newError(http.StatusUnauthorized, KindUnauthorized, msg)
}

func Forbidden(msg string) error {
	return newError(http.StatusForbidden, KindForbidden, msg)
}

func InternalServerError(msg string) error {
	return newError(http.StatusInternalServerError, KindInternal, msg)
}

func NotFound(msg string) error {
	return newError(http.StatusNotFound, KindNotFound, msg)
}

func ResourceUnavailable(msg string) error {
	return newError(http.StatusUnprocessableEntity, KindResourceUnavailable, msg)
}

func ValidationError(msg string) error {
	return newError(http.StatusBadRequest, KindValidation, msg)
}

func InvalidPricingType(pricingType string) error {
	return newError(http.StatusBadRequest, KindInvalidPricingType, fmt.Sprintf("invalid pricing type %q", pricingType))
}

func InvalidState(msg string) error {
	return newError(http.StatusConflict, KindInvalidState, msg)
}

func Conflict(msg string) error {
	return newError(http.StatusConflict, KindConflict, msg)
}

// RetryableConflict marks a conflict the caller may resolve by repeating the request.
func RetryableConflict(msg string) error {
	e := newError(http.StatusConflict, KindConflict, msg)
	e.Retryable = true
	return e
}

func CouponIneligible(msg string) error {
	return newError(http.StatusUnprocessableEntity, KindCouponIneligible, msg)
}

// CapacityExceeded reports how much of a resource is left when a request asks for more.
type CapacityExceeded struct {
	Available int
	Requested int
	Unit      string
}

func (e *CapacityExceeded) Error() string {
	unit := e.Unit
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("only %d %s available, %d requested", e.Available, unit, e.Requested)
}

func NewCapacityExceeded(available, requested int, unit string) error {
	if available < 0 {
		available = 0
	}
	return &CapacityExceeded{Available: available, Requested: requested, Unit: unit}
}

func AsCustomError(err error) (*CustomError, bool) {
	var ce *CustomError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

func AsCapacityExceeded(err error) (*CapacityExceeded, bool) {
	var ce *CapacityExceeded
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	if kind == KindCapacityExceeded {
		_, ok := AsCapacityExceeded(err)
		return ok
	}
	ce, ok := AsCustomError(err)
	return ok && ce.Kind == kind
}

// HTTPStatus resolves the response status for any error produced by this service.
func HTTPStatus(err error) int {
	if _, ok := AsCapacityExceeded(err); ok {
		return http.StatusConflict
	}
	if ce, ok := AsCustomError(err); ok {
		return ce.Code
	}
	return http.StatusInternalServerError
}

func KindOf(err error) Kind {
	if _, ok := AsCapacityExceeded(err); ok {
		return KindCapacityExceeded
	}
	if ce, ok := AsCustomError(err); ok {
		return ce.Kind
	}
	return KindInternal
}
