package vaultfmt

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the failure modes surfaced by the format engine.
type Kind int

const (
	// KindUnknown is never returned by this package; it is the zero value
	// for a Kind that hasn't been set.
	KindUnknown Kind = iota
	KindReadOnly
	KindInvalidCommand
	KindUnknownCommand
	KindCommandExecutionError
	KindInvalidSignature
	KindDecryptionFailed
	KindDecompressionFailed
)

func (k Kind) String() string {
	switch k {
	case KindReadOnly:
		return "ReadOnly"
	case KindInvalidCommand:
		return "InvalidCommand"
	case KindUnknownCommand:
		return "UnknownCommand"
	case KindCommandExecutionError:
		return "CommandExecutionError"
	case KindInvalidSignature:
		return "InvalidSignature"
	case KindDecryptionFailed:
		return "DecryptionFailed"
	case KindDecompressionFailed:
		return "DecompressionFailed"
	default:
		return "Unknown"
	}
}

// Error is the structured error value surfaced by every exported
// operation in this package. It carries a Kind, an optional command
// short key (set when the failure originates from a command executor),
// and a wrapped cause.
type Error struct {
	kind     Kind
	shortKey string
	cause    error
}

func newError(kind Kind, cause error) *Error {
	return &Error{kind: kind, cause: cause}
}

func newCommandError(shortKey string, cause error) *Error {
	return &Error{kind: KindCommandExecutionError, shortKey: shortKey, cause: cause}
}

// Kind reports the failure classification.
func (e *Error) Kind() Kind { return e.kind }

// ShortKey reports the command short key that produced this error, or
// the empty string if the error did not originate from an executor.
func (e *Error) ShortKey() string { return e.shortKey }

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Error() string {
	if e.shortKey != "" {
		return fmt.Sprintf("vaultfmt: %s: command %q: %s", e.kind, e.shortKey, e.cause)
	}
	if e.cause != nil {
		return fmt.Sprintf("vaultfmt: %s: %s", e.kind, e.cause)
	}
	return fmt.Sprintf("vaultfmt: %s", e.kind)
}

// Is lets errors.Is match on a Kind wrapped in a bare *Error (used by the
// package's own sentinels below).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == other.kind
}

// Sentinels for errors.Is comparisons against a bare kind.
var (
	ErrReadOnly            = &Error{kind: KindReadOnly}
	ErrInvalidCommand      = &Error{kind: KindInvalidCommand}
	ErrUnknownCommand      = &Error{kind: KindUnknownCommand}
	ErrCommandExecution    = &Error{kind: KindCommandExecutionError}
	ErrInvalidSignature    = &Error{kind: KindInvalidSignature}
	ErrDecryptionFailed    = &Error{kind: KindDecryptionFailed}
	ErrDecompressionFailed = &Error{kind: KindDecompressionFailed}
)

func wrapf(kind Kind, format string, args ...interface{}) *Error {
	return newError(kind, errors.Errorf(format, args...))
}

func wrap(kind Kind, cause error, message string) *Error {
	return newError(kind, errors.Wrap(cause, message))
}
