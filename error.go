package tme

import (
	"errors"
	"fmt"
)

// Application error codes. The string values double as the "type" tag in
// the JSON error shape rendered by transports, so they are part of the
// public output contract.
const (
	EINTERNAL = "error"         // transport or parse failure
	EINVALID  = "invalid"       // caller supplied bad input
	ENOTFOUND = "not_found"     // post does not exist
	EPRIVATE  = "private_group" // private-group invites cannot be previewed
	EUNKNOWN  = "unknown_type"  // profile page matches no known resource kind
)

// Error represents an application error with a machine-readable code and
// a human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("tme error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of the error, if available. Errors without a
// code report EINTERNAL, so every failure maps onto the output taxonomy.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, if available. For
// non-application errors the raw error text is passed through verbatim.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ErrorResult is the uniform JSON failure shape returned in place of any
// record: {"error": message, "type": code}.
type ErrorResult struct {
	Error string `json:"error"`
	Type  string `json:"type,omitempty"`
}

// AsErrorResult converts any error into the uniform failure shape.
func AsErrorResult(err error) ErrorResult {
	return ErrorResult{
		Error: ErrorMessage(err),
		Type:  ErrorCode(err),
	}
}
