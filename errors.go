package framehost

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies failures surfaced by the host.
type ErrorKind uint8

const (
	// RuntimeError is anything surfaced from an external collaborator.
	RuntimeError ErrorKind = iota
	// PlatformError is a windowing system or graphics context failure.
	PlatformError
	// ConfigError is missing or invalid required configuration.
	ConfigError
)

func (k ErrorKind) String() string {
	switch k {
	case PlatformError:
		return "platform error"
	case ConfigError:
		return "config error"
	default:
		return "runtime error"
	}
}

// Error is the error type returned by the host. Op names the step that failed.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so errors.Is(err, &Error{Kind: ConfigError})
// works without knowing the operation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}

func platformError(op string, err error) error {
	return &Error{Kind: PlatformError, Op: op, Err: err}
}

func configError(op string, err error) error {
	return &Error{Kind: ConfigError, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain,
// or RuntimeError if there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return RuntimeError
}

// FormatError renders err and each of its causes on its own line,
// innermost cause last.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(err.Error())
	depth := 0
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		depth++
		fmt.Fprintf(&b, "\n%scaused by: %v", strings.Repeat("  ", depth), cause)
	}
	return b.String()
}
