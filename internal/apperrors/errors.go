package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrOutOfDomain indicates that a requested date lies outside the available series range.
var ErrOutOfDomain = errors.New("date outside series domain")

// ErrEmptySeries indicates that a correction window contained no data points.
var ErrEmptySeries = errors.New("empty series window")

// ErrUpstream indicates that an external data provider failed.
var ErrUpstream = errors.New("upstream provider error")

// AppError carries an HTTP status code alongside a message and an optional cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewValidationError creates an AppError wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// InvalidDateError is returned when a date input is missing or cannot be parsed.
type InvalidDateError struct {
	Field string
	Input string
}

func (e *InvalidDateError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("invalid date for %s: value is missing", e.Field)
	}
	return fmt.Sprintf("invalid date for %s: %q (use YYYY-MM or MM-YYYY)", e.Field, e.Input)
}

func (e *InvalidDateError) Unwrap() error {
	return ErrValidation
}

// OutOfDomainError is returned when a requested month is not a key of the index series.
// Min and Max carry the valid range so the caller can report it.
type OutOfDomainError struct {
	IndexID   string
	Requested time.Time
	Min       time.Time
	Max       time.Time
}

func (e *OutOfDomainError) Error() string {
	if e.Min.IsZero() && e.Max.IsZero() {
		return fmt.Sprintf("date %s is not available: series %s has no data", e.Requested.Format("2006-01"), e.IndexID)
	}
	return fmt.Sprintf("date %s is not available for %s: use dates between %s and %s",
		e.Requested.Format("2006-01"), e.IndexID, e.Min.Format("2006-01"), e.Max.Format("2006-01"))
}

func (e *OutOfDomainError) Unwrap() error {
	return ErrOutOfDomain
}

// EmptySeriesError signals that the engine was given a window with zero rows.
// It indicates that domain validation was skipped and is treated as a programming error.
type EmptySeriesError struct {
	IndexID string
	Earlier time.Time
	Later   time.Time
}

func (e *EmptySeriesError) Error() string {
	return fmt.Sprintf("no data points for %s between %s and %s",
		e.IndexID, e.Earlier.Format("2006-01"), e.Later.Format("2006-01"))
}

func (e *EmptySeriesError) Unwrap() error {
	return ErrEmptySeries
}
