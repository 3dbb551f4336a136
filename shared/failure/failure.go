package failure

import (
	"errors"
	"net/http"
)

// Failure carries a message together with the HTTP status it should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	AccessDenied      = &Failure{Code: http.StatusForbidden, Message: "Access denied"}
	PassRequired      = &Failure{Code: http.StatusBadRequest, Message: "Password is required"}
	BookingIDRequired = &Failure{Code: http.StatusBadRequest, Message: "Booking ID is required"}
	BookingNotFound   = &Failure{Code: http.StatusNotFound, Message: "Booking not found"}
)

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest wraps a validation error into a 400 failure. A nil error stays nil.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// GetCode returns the HTTP status of err, 500 for anything that is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsExpected reports whether err is a client-facing failure (any 4xx).
func IsExpected(err error) bool {
	code := GetCode(err)

	return code >= http.StatusBadRequest && code < http.StatusInternalServerError
}
