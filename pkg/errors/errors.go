package errors

import (
	"errors"
	"fmt"
)

// ErrorType categorizes application errors so callers can translate them
// into user-facing messages without inspecting error strings.
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota

	// Resolution errors
	ErrorTypeLocationNotFound

	// Upstream / data-source errors
	ErrorTypeDataUnavailable
	ErrorTypeUpstreamFetch
	ErrorTypeUpstreamShape

	// System errors
	ErrorTypeConfiguration
)

// String returns the string representation of the error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeLocationNotFound:
		return "LOCATION_NOT_FOUND"
	case ErrorTypeDataUnavailable:
		return "DATA_UNAVAILABLE"
	case ErrorTypeUpstreamFetch:
		return "UPSTREAM_FETCH_FAILED"
	case ErrorTypeUpstreamShape:
		return "UPSTREAM_SHAPE_INCOMPLETE"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

func NewLocationNotFoundError(message string) *AppError {
	return New(ErrorTypeLocationNotFound, message)
}

func NewDataUnavailableError(message string, cause error) *AppError {
	return Wrap(ErrorTypeDataUnavailable, message, cause)
}

func NewUpstreamFetchError(message string, cause error) *AppError {
	return Wrap(ErrorTypeUpstreamFetch, message, cause)
}

func NewUpstreamShapeError(message string, cause error) *AppError {
	return Wrap(ErrorTypeUpstreamShape, message, cause)
}

func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ErrorTypeConfiguration, message, cause)
}

// TypeOf extracts the ErrorType from err, unwrapping as needed. Non-AppError
// values map to ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}
