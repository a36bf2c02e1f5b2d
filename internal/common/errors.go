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

	// ErrInvalidDocument is an intake validation failure. Surfaced
	// synchronously to the caller; no state is created.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrStaleJob is returned when a worker acts on a job it no longer
	// owns (reclaimed, retried, or finished by someone else). The result
	// is discarded and no state is mutated.
	ErrStaleJob = errors.New("stale job")

	// ErrDuplicateJob is returned when a second in-flight job is created
	// for the same (document, step).
	ErrDuplicateJob = errors.New("duplicate in-flight job for step")

	// ErrDocumentTerminal is returned when an operation targets a document
	// already in a terminal status.
	ErrDocumentTerminal = errors.New("document is in a terminal status")
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

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}

// ToGRPC maps pipeline taxonomy errors to gRPC status codes for the
// server layer. Unknown errors map to Internal.
func ToGRPC(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidDocument), errors.Is(err, ErrInvalidInput):
		return InvalidArgumentError(err.Error())
	case errors.Is(err, ErrNotFound):
		return NotFoundError(err.Error())
	case errors.Is(err, ErrStaleJob), errors.Is(err, ErrDuplicateJob), errors.Is(err, ErrDocumentTerminal):
		return FailedPreconditionError(err.Error())
	default:
		return InternalError(err.Error())
	}
}
