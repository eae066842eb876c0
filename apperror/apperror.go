// Package apperror defines the error kinds shared by the resume pipeline,
// the stores and the HTTP layer.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for propagation and HTTP mapping.
type Kind string

const (
	UnsupportedFormat Kind = "unsupported_format"
	ParseError        Kind = "parse_error"
	Configuration     Kind = "configuration_error"
	ExtractionFailure Kind = "extraction_failure"
	NotFound          Kind = "not_found"
	Validation        Kind = "validation_error"
	Duplicate         Kind = "duplicate"
	Unauthorized      Kind = "unauthorized"
	Forbidden         Kind = "forbidden"
	Internal          Kind = "internal"
)

// Error is a classified error. Code is a machine-readable identifier that
// defaults to the kind, e.g. "already_applied" for a Duplicate.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorKind reports the kind of the error.
func (e *Error) ErrorKind() Kind {
	return e.Kind
}

// New creates a classified error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Code: string(kind), Message: message}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap classifies err, keeping it in the chain.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Code: string(kind), Message: message, Err: err}
}

// WithCode returns a copy of e carrying a specific machine-readable code.
func (e *Error) WithCode(code string) *Error {
	cp := *e
	cp.Code = code
	return &cp
}

// kinded is implemented by errors from other packages that carry a kind,
// such as config.ConfigError.
type kinded interface {
	ErrorKind() Kind
}

// KindOf walks the error chain and returns the first kind found, or Internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var k kinded
	if errors.As(err, &k) {
		return k.ErrorKind()
	}
	return Internal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// CodeOf returns the machine-readable code for err.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Code != "" {
		return e.Code
	}
	return string(KindOf(err))
}

// MessageOf returns the human message without wrapped causes.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// HTTPStatus maps a kind to a response status.
func HTTPStatus(kind Kind) int {
	switch kind {
	case UnsupportedFormat, ParseError, Validation, Duplicate:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case Configuration:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
