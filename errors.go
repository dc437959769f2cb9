package devdocs

import (
	"errors"
	"fmt"
)

// Application error codes. These map domain failures to a small set of
// machine-readable categories that callers (CLI, HTTP) translate into
// user-facing behavior.
const (
	ECONFLICT    = "conflict"    // action conflicts with current state (duplicate name, sync in flight)
	EINTERNAL    = "internal"    // unexpected failure (unreadable archive, filesystem error)
	EINVALID     = "invalid"     // validation failed (malformed source URL, missing fields)
	ENOTFOUND    = "not_found"   // entity does not exist
	EUNAVAILABLE = "unavailable" // remote source could not be reached on any branch
)

// Error represents an application error. Application errors carry a machine
// readable code and a human readable message.
type Error struct {
	// Code is one of the application error code constants.
	Code string

	// Message is a human-readable description safe to show to the user.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("devdocs error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL. A nil error returns an
// empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error". A nil error returns
// an empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}
