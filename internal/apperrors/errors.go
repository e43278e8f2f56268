// Package apperrors defines the error taxonomy shared by services and bot
// handlers. Every error carries a stable code consumed by the router's
// summary logging.
package apperrors

import (
	"errors"
	"fmt"
)

const (
	// CodeValidation marks malformed user input; fully recoverable, the flow
	// replies correctively and keeps its step.
	CodeValidation = "VALIDATION"
	// CodeNotFound marks a referenced record that does not exist.
	CodeNotFound = "NOT_FOUND"
	// CodeExternal marks a failed data-store or gateway call.
	CodeExternal = "EXTERNAL"
	// CodePermission marks a privileged action attempted by an unprivileged role.
	CodePermission = "PERMISSION"
)

// Error is a coded application error.
type Error struct {
	code string
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Code returns the stable error code.
func (e *Error) Code() string { return e.code }

func (e *Error) Unwrap() error { return e.err }

// Validation builds a malformed-input error.
func Validation(msg string) *Error {
	return &Error{code: CodeValidation, msg: msg}
}

// NotFound builds a missing-record error.
func NotFound(msg string) *Error {
	return &Error{code: CodeNotFound, msg: msg}
}

// External wraps a failed store or gateway call.
func External(msg string, err error) *Error {
	return &Error{code: CodeExternal, msg: msg, err: err}
}

// Permission builds a privileged-action error.
func Permission(msg string) *Error {
	return &Error{code: CodePermission, msg: msg}
}

func hasCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.code == code
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return hasCode(err, CodeValidation) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsExternal reports whether err is an external-call error.
func IsExternal(err error) bool { return hasCode(err, CodeExternal) }

// IsPermission reports whether err is a permission error.
func IsPermission(err error) bool { return hasCode(err, CodePermission) }
