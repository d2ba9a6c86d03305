// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeUnknownPlatform indicates the platform is not in the fee schedule
	TypeUnknownPlatform Type = "UNKNOWN_PLATFORM"

	// TypeNotCategorized indicates a category operation on a platform without categories
	TypeNotCategorized Type = "NOT_CATEGORIZED"

	// TypeUnknownCategory indicates a missing or unrecognised category
	TypeUnknownCategory Type = "UNKNOWN_CATEGORY"

	// TypeNegativeResult indicates the solved listing price is not a usable price
	TypeNegativeResult Type = "NEGATIVE_RESULT"

	// TypeInvalidSchedule indicates a fee schedule that breaks model invariants
	TypeInvalidSchedule Type = "INVALID_SCHEDULE"

	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsType checks if an error, or anything it wraps, is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := As(err); ok {
		return e.Type == t
	}
	return false
}

// UnknownPlatform creates an unknown platform error
func UnknownPlatform(platform string) *Error {
	return Newf(TypeUnknownPlatform, "unknown platform: %q", platform).
		WithContext("platform", platform)
}

// NotCategorized creates an error for category queries on a flat platform
func NotCategorized(platform string) *Error {
	return Newf(TypeNotCategorized, "platform %q has no categories", platform).
		WithContext("platform", platform)
}

// UnknownCategory creates an unknown category error. An empty category
// reports that one is required.
func UnknownCategory(platform, category string) *Error {
	if category == "" {
		return Newf(TypeUnknownCategory, "category is required for platform %q", platform).
			WithContext("platform", platform)
	}
	return Newf(TypeUnknownCategory, "unknown category %q for platform %q", category, platform).
		WithContext("platform", platform).
		WithContext("category", category)
}

// NegativeResult creates an error for a solved price that cannot be listed
func NegativeResult(price float64) *Error {
	return Newf(TypeNegativeResult, "solved listing price %v is not a valid price", price).
		WithContext("listing_price", price)
}

// InvalidSchedule creates a fee schedule validation error
func InvalidSchedule(message string) *Error {
	return New(TypeInvalidSchedule, message)
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
