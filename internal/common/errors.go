package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")

	// Preprocessing (adapter) failures. Terminal for the document.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrSourceUnreadable  = errors.New("source file unreadable")
	ErrAdapterFailure    = errors.New("page extraction adapter failed")

	// Extraction-stage failures.
	ErrNoActiveTemplate = errors.New("no active prompt template")
	// ErrFieldExtraction is per-field and recoverable: the stage logs it and
	// continues with the next field.
	ErrFieldExtraction = errors.New("field extraction failed")

	// Orchestration conflicts. Always surfaced synchronously.
	ErrStageAlreadyRunning  = errors.New("a stage run is already active for this document")
	ErrStaleStateTransition = errors.New("document status changed underneath the transition")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func ConflictError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}

// ToStatusError maps domain errors onto gRPC codes at the server boundary.
func ToStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return NotFoundError(err.Error())
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnsupportedFormat):
		return InvalidArgumentError(err.Error())
	case errors.Is(err, ErrStageAlreadyRunning),
		errors.Is(err, ErrStaleStateTransition),
		errors.Is(err, ErrNoActiveTemplate):
		return ConflictError(err.Error())
	default:
		return InternalError(err.Error())
	}
}
