// Package apperr defines the error kinds reported to the user.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for reporting and exit codes.
type Kind int

const (
	KindUnknown Kind = iota
	// KindConfig means the config file is missing or corrupt.
	KindConfig
	// KindValidation means user input was rejected before anything ran.
	KindValidation
	// KindOperation means the external engine failed.
	KindOperation
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindValidation:
		return "validation"
	case KindOperation:
		return "operation"
	default:
		return "unknown"
	}
}

// Error carries a kind, a short message and, for engine failures, the
// engine's diagnostic output.
type Error struct {
	Kind   Kind
	Msg    string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	if e.Detail != "" {
		return msg + "\n" + e.Detail
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Configf returns a KindConfig error.
func Configf(err error, format string, args ...any) error {
	return &Error{Kind: KindConfig, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Validationf returns a KindValidation error.
func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// Operation returns a KindOperation error with the engine output attached.
func Operation(msg, detail string, err error) error {
	return &Error{Kind: KindOperation, Msg: msg, Detail: detail, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindValidation:
		return 2
	case KindConfig:
		return 3
	case KindOperation:
		return 4
	default:
		return 1
	}
}
