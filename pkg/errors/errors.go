package errors

import (
	"errors"
	"fmt"
)

// Error is the domain error kind. Every rule violation in the academic model
// (duplicate roster membership, missing students, enrollment while inactive)
// surfaces as an *Error; anything else is either a wrapped internal failure or
// a defect.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors sharing the same code so clones still compare equal to
// their sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Domain rule violations.
var (
	ErrAlreadyInGroup    = New("ALREADY_IN_GROUP", "Student is already in the group")
	ErrStudentNotInGroup = New("STUDENT_NOT_IN_GROUP", "Student not found in group")
	ErrNotActive         = New("STUDENT_NOT_ACTIVE", "Cannot enroll: Student is not in active status")
)

// Boundary errors raised by the service layer.
var (
	ErrValidation = New("VALIDATION_ERROR", "validation failed")
	ErrNotFound   = New("NOT_FOUND", "resource not found")
	ErrInternal   = New("INTERNAL_ERROR", "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// IsDomain reports whether err carries a recoverable domain error kind.
// Internal failures normalised by FromError are excluded.
func IsDomain(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code != ErrInternal.Code
}

// Unhandled panics with a defect for a closed-set value that reached a switch
// without a matching case. Callers passed a value outside the vocabulary; this
// is a programming error, not a recoverable condition.
func Unhandled(kind string, value any) {
	panic(fmt.Sprintf("unhandled %s: %v", kind, value))
}
