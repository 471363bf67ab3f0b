package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse   Phase = "parse"   // type signature / ABI parsing
	PhaseSchema  Phase = "schema"  // registry construction and lookup
	PhaseEncode  Phase = "encode"  // structured value to felt words
	PhaseDecode  Phase = "decode"  // felt words to structured value
	PhaseExecute Phase = "execute" // execution state interaction
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch     Kind = "type_mismatch"
	KindInsufficientData Kind = "insufficient_data"
	KindTrailingData     Kind = "trailing_data"
	KindUnknownStruct    Kind = "unknown_struct"
	KindUnknownEvent     Kind = "unknown_event"
	KindUnknownArgument  Kind = "unknown_argument"
	KindMissingArgument  Kind = "missing_argument"
	KindUnsupportedType  Kind = "unsupported_type"
	KindNestedArray      Kind = "nested_array"
	KindInvalidData      Kind = "invalid_data"
	KindNotFound         Kind = "not_found"
	KindOutOfRange       Kind = "out_of_range"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	GoType    string
	CairoType string
	Detail    string
	Path      []string
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

	if e.GoType != "" || e.CairoType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.CairoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", Cairo type ")
			b.WriteString(e.CairoType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("Cairo type ")
			b.WriteString(e.CairoType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.CairoType != "" {
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
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err is an *Error of the given kind, regardless of phase.
func IsKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
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

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// CairoType sets the Cairo type signature
func (b *Builder) CairoType(t string) *Builder {
	b.err.CairoType = t
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
func TypeMismatch(phase Phase, path []string, goType, cairoType string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindTypeMismatch,
		Path:      path,
		GoType:    goType,
		CairoType: cairoType,
	}
}

// InsufficientData creates an under-consumption decode error
func InsufficientData(path []string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInsufficientData,
		Path:   path,
		Detail: "too few argument values",
	}
}

// TrailingData creates an over-consumption decode error
func TrailingData(remaining int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTrailingData,
		Detail: fmt.Sprintf("too many argument values: %d words left unconsumed", remaining),
	}
}

// UnknownStruct creates a struct registry miss error
func UnknownStruct(name string) *Error {
	return &Error{
		Phase:  PhaseSchema,
		Kind:   KindUnknownStruct,
		Detail: fmt.Sprintf("struct %q not defined in the ABI", name),
	}
}

// UnknownEvent creates an event registry miss error
func UnknownEvent(what string) *Error {
	return &Error{
		Phase:  PhaseSchema,
		Kind:   KindUnknownEvent,
		Detail: fmt.Sprintf("event %s not defined in the ABI", what),
	}
}

// UnknownArgument creates an error for a supplied argument not in the schema
func UnknownArgument(function, name string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnknownArgument,
		Path:   []string{function, name},
		Detail: fmt.Sprintf("function %q has no parameter %q", function, name),
	}
}

// MissingArgument creates an error for a declared argument the caller omitted
func MissingArgument(function, name string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindMissingArgument,
		Path:   []string{function, name},
		Detail: fmt.Sprintf("function %q requires parameter %q", function, name),
	}
}

// UnsupportedType creates an error for a type descriptor the codec does not recognize
func UnsupportedType(phase Phase, path []string, cairoType string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindUnsupportedType,
		Path:      path,
		CairoType: cairoType,
		Detail:    "type descriptor not recognized by the codec",
	}
}

// NestedArray creates an error for an array nested inside another type
func NestedArray(path []string, cairoType string) *Error {
	return &Error{
		Phase:     PhaseSchema,
		Kind:      KindNestedArray,
		Path:      path,
		CairoType: cairoType,
		Detail:    "arrays are not supported as members of another type",
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
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

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
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
