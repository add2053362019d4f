package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Categories raised by a handler of the admin API.
const (
	categoryInvalidArgument = "invalid_argument"
	categoryInternal        = "internal"
	categoryUnavailable     = "unavailable"
	categoryInjectedFault   = "injected_fault"
)

// Categories observed by a caller of the admin API.
const (
	categoryUnreachable       = "unreachable"
	categoryHttpStatus        = "http_status"
	categoryMalformedResponse = "malformed_response"
	categoryApplication       = "application"
	categoryUnexpected        = "unexpected"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInvalidArgument,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: http.StatusBadRequest,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInternal,
		Code:           code,
		Message:        "internal server error",
		Cause:          cause,
		HttpStatusCode: http.StatusInternalServerError,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

// NewUnavailableError creates a new ServiceError for a dependency that is not available.
func NewUnavailableError(code, message string) *ServiceError {
	return &ServiceError{
		Category:       categoryUnavailable,
		Code:           code,
		Message:        message,
		HttpStatusCode: http.StatusServiceUnavailable,
	}
}

// NewInjectedFaultError creates a new ServiceError answering with a status forced by a test fault.
func NewInjectedFaultError(code string, status int) *ServiceError {
	return &ServiceError{
		Category:       categoryInjectedFault,
		Code:           code,
		Message:        http.StatusText(status),
		HttpStatusCode: status,
	}
}

// NewUnreachableError creates a new ServiceError for a connection-level failure.
func NewUnreachableError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryUnreachable,
		Code:     code,
		Message:  "server not reachable",
		Cause:    cause,
	}
}

// NewHttpStatusError creates a new ServiceError for a response with an unexpected status code.
func NewHttpStatusError(code string, status int) *ServiceError {
	return &ServiceError{
		Category:       categoryHttpStatus,
		Code:           code,
		Message:        fmt.Sprintf("unexpected status %d", status),
		HttpStatusCode: status,
	}
}

// NewMalformedResponseError creates a new ServiceError for a body that cannot be decoded.
func NewMalformedResponseError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryMalformedResponse,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: http.StatusOK,
	}
}

// NewApplicationError creates a new ServiceError for a well-formed response reporting success=false.
// message is the server-provided error text.
func NewApplicationError(code, message string) *ServiceError {
	return &ServiceError{
		Category:       categoryApplication,
		Code:           code,
		Message:        message,
		HttpStatusCode: http.StatusOK,
	}
}

// NewUnexpectedError creates a new ServiceError for failures outside the other categories.
func NewUnexpectedError(code string, cause error) *ServiceError {
	msg := "unexpected error"
	if cause != nil {
		msg = cause.Error()
	}
	return &ServiceError{
		Category: categoryUnexpected,
		Code:     code,
		Message:  msg,
		Cause:    cause,
	}
}

func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category       string // one of the category constants above
	Code           string // stable code (e.g. PRB_1000)
	Message        string // human-readable
	Cause          error  // wrapped underlying error
	HttpStatusCode int    // status to write, or the status observed by a caller
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

func (e *ServiceError) IsUnreachable() bool {
	return e.Category == categoryUnreachable
}

func (e *ServiceError) IsHttpStatus() bool {
	return e.Category == categoryHttpStatus
}

func (e *ServiceError) IsMalformedResponse() bool {
	return e.Category == categoryMalformedResponse
}

func (e *ServiceError) IsApplicationError() bool {
	return e.Category == categoryApplication
}
