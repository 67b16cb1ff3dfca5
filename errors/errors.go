package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCompile Phase = "compile" // schema derivation
	PhaseRead    Phase = "read"    // text to records
	PhaseWrite   Phase = "write"   // records to text
	PhaseConfig  Phase = "config"  // engine configuration
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownType       Kind = "unknown_type"
	KindDuplicateName     Kind = "duplicate_name"
	KindScalarParse       Kind = "scalar_parse"
	KindNoMatchingVariant Kind = "no_matching_variant"
	KindMalformedEscape   Kind = "malformed_escape"
	KindArityMismatch     Kind = "arity_mismatch"
	KindHeaderMismatch    Kind = "header_mismatch"
	KindTypeMismatch      Kind = "type_mismatch"
	KindInvalidConfig     Kind = "invalid_config"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Field    string // external field name, when known
	TypeName string // declared type expression, when known
	Detail   string
	Line     int // 1-based input line, 0 when not positional
	Column   int // 1-based field position, 0 when not positional
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
		if e.Column > 0 {
			fmt.Fprintf(&b, " field %d", e.Column)
		}
	}

	if e.Field != "" {
		fmt.Fprintf(&b, " at %q", e.Field)
	}

	if e.TypeName != "" {
		b.WriteString(" (")
		b.WriteString(e.TypeName)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
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

// Field sets the external field name
func (b *Builder) Field(name string) *Builder {
	b.err.Field = name
	return b
}

// TypeName sets the declared type expression
func (b *Builder) TypeName(t string) *Builder {
	b.err.TypeName = t
	return b
}

// At sets the input line and field position
func (b *Builder) At(line, column int) *Builder {
	b.err.Line = line
	b.err.Column = column
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

// UnknownType creates an error for a field type with no resolvable codec
func UnknownType(field, typeName string) *Error {
	return &Error{
		Phase:    PhaseCompile,
		Kind:     KindUnknownType,
		Field:    field,
		TypeName: typeName,
		Detail:   "no codec registered for type",
	}
}

// DuplicateName creates an error naming two fields that share an external name
func DuplicateName(external, first, second string) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindDuplicateName,
		Field:  external,
		Detail: fmt.Sprintf("fields %q and %q both map to external name %q", first, second, external),
	}
}

// ScalarParse creates a parse failure for a scalar field
func ScalarParse(field, typeName, text string, cause error) *Error {
	return &Error{
		Phase:    PhaseRead,
		Kind:     KindScalarParse,
		Field:    field,
		TypeName: typeName,
		Value:    text,
		Detail:   fmt.Sprintf("cannot parse %q", text),
		Cause:    cause,
	}
}

// NoMatchingVariant creates an error naming the text and the attempted
// variant types in order
func NoMatchingVariant(field, text string, attempted []string) *Error {
	return &Error{
		Phase:  PhaseRead,
		Kind:   KindNoMatchingVariant,
		Field:  field,
		Value:  text,
		Detail: fmt.Sprintf("%q matched none of [%s]", text, strings.Join(attempted, ", ")),
	}
}

// MalformedEscape creates an error for a dangling escape or unterminated quote
func MalformedEscape(line int, detail string) *Error {
	return &Error{
		Phase:  PhaseRead,
		Kind:   KindMalformedEscape,
		Line:   line,
		Detail: detail,
	}
}

// ArityMismatch creates an error for a record whose field count differs
// from the schema length
func ArityMismatch(phase Phase, got, want int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindArityMismatch,
		Detail: fmt.Sprintf("record has %d fields, schema expects %d", got, want),
	}
}

// HeaderMismatch creates an error naming the expected and actual header
// name at a 1-based position
func HeaderMismatch(position int, expected, actual string) *Error {
	return &Error{
		Phase:  PhaseRead,
		Kind:   KindHeaderMismatch,
		Line:   1,
		Column: position,
		Detail: fmt.Sprintf("header position %d: expected %q, found %q", position, expected, actual),
	}
}

// TypeMismatch creates an error for a runtime value no sum variant can format
func TypeMismatch(field, typeName string, value any) *Error {
	return &Error{
		Phase:    PhaseWrite,
		Kind:     KindTypeMismatch,
		Field:    field,
		TypeName: typeName,
		Value:    value,
		Detail:   fmt.Sprintf("value %v (%T) matches no declared variant", value, value),
	}
}

// InvalidConfig creates a configuration validation error
func InvalidConfig(detail string) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidConfig,
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

// WithPosition returns a copy of err carrying the given line and field
// position. Non-Error values are wrapped.
func WithPosition(err error, line, column int) *Error {
	if e, ok := err.(*Error); ok {
		clone := *e
		clone.Line = line
		clone.Column = column
		return &clone
	}
	return &Error{
		Phase:  PhaseRead,
		Kind:   KindScalarParse,
		Line:   line,
		Column: column,
		Cause:  err,
	}
}
