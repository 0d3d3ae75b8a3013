package failure

import (
	"errors"
	"net/http"
)

// ErrSessionExpired marks failures that require the caller to log in again.
var ErrSessionExpired = errors.New("session expired")

type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	cause error
}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// SessionExpired returns an unauthorized Failure that unwraps to ErrSessionExpired.
func SessionExpired() error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: ErrSessionExpired.Error(),
		cause:   ErrSessionExpired,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// Gone returns a new Failure for resources whose time window has passed.
func Gone(msg string) error {
	return &Failure{
		Code:    http.StatusGone,
		Message: msg,
	}
}

// Upstream maps a non-2xx answer of the turfics API. 5xx answers become 502.
func Upstream(status int, msg string) error {
	code := status
	if status >= http.StatusInternalServerError || status < http.StatusBadRequest {
		code = http.StatusBadGateway
	}

	if msg == "" {
		msg = http.StatusText(status)
	}

	return &Failure{
		Code:    code,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var f *Failure
	if errors.As(err, &f) {
		return f.Code
	}

	return http.StatusInternalServerError
}
