package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which direction of the boundary crossing failed
type Phase string

const (
	PhaseLower    Phase = "lower"    // caller value to native
	PhaseLift     Phase = "lift"     // native to caller value
	PhaseValidate Phase = "validate" // text well-formedness checks
	PhaseBind     Phase = "bind"     // signature resolution
)

// Kind categorizes the error
type Kind string

const (
	// KindTypeMismatch means the source value's kind is not accepted for
	// the requested target at all.
	KindTypeMismatch Kind = "type_mismatch"

	// KindValueOutOfRange means the source kind is accepted but the value
	// falls outside the target's closed [min, max] interval.
	KindValueOutOfRange Kind = "value_out_of_range"

	// KindMalformedText means the source is text but not well-formed
	// text: invalid UTF-8 or an unpaired surrogate code point.
	KindMalformedText Kind = "malformed_text"

	KindUnsupported Kind = "unsupported"
	KindInvalidData Kind = "invalid_data"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	Target string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.Target != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.Target != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", target ")
			b.WriteString(e.Target)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("target ")
			b.WriteString(e.Target)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.Target != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Phase != "" && e.Phase != t.Phase {
			return false
		}
		return e.Kind == t.Kind
	}
	return false
}

// IsTypeMismatch reports whether err is a type mismatch failure.
func IsTypeMismatch(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindTypeMismatch
}

// IsDomainViolation reports whether err is a value/range failure: the
// source kind was accepted but the specific value violates the target's
// domain (numeric overflow or malformed text).
func IsDomainViolation(err error) bool {
	e, ok := err.(*Error)
	return ok && (e.Kind == KindValueOutOfRange || e.Kind == KindMalformedText)
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the argument path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the source Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Target sets the target descriptor name
func (b *Builder) Target(t string) *Builder {
	b.err.Target = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, target string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		GoType: goType,
		Target: target,
	}
}

// OutOfRange creates a range violation error carrying the offending
// value and the target descriptor
func OutOfRange(phase Phase, path []string, value any, target string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindValueOutOfRange,
		Path:   path,
		Target: target,
		Detail: fmt.Sprintf("value %v does not fit", value),
		Value:  value,
	}
}

// MalformedText creates a malformed text error
func MalformedText(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMalformedText,
		Path:   path,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
