package codec

// Record is one positional tuple of field values. Runtime representations:
// bool, int64, float64, complex128, string, []byte, and nil for absent.
type Record = []any

// Field declares one record field: internal name, type, and an optional
// external name override used in header rows.
type Field struct {
	Name   string
	Type   TypeExpr
	Rename string
}

// External returns the field's header name: Rename when set, else Name.
func (f Field) External() string {
	if f.Rename != "" {
		return f.Rename
	}
	return f.Name
}

// Shape is the ordered field description of one record type. Immutable once
// constructed; field order defines both column order and parse order.
type Shape struct {
	fields []Field
}

// NewShape builds a shape from fields in declaration order.
func NewShape(fields ...Field) *Shape {
	s := &Shape{fields: make([]Field, len(fields))}
	copy(s.fields, fields)
	return s
}

// Fields returns the declarations in order. Callers must not mutate the
// returned slice.
func (s *Shape) Fields() []Field { return s.fields }

// Len returns the number of fields.
func (s *Shape) Len() int { return len(s.fields) }

// FormatFunc renders a field value as text.
type FormatFunc func(v any) (string, error)

// ParseFunc interprets field text as a value.
type ParseFunc func(text string) (any, error)

// MatchFunc reports whether a runtime value belongs to this codec's type.
// Sum formatting dispatches on it.
type MatchFunc func(v any) bool

// FieldCodec pairs the parse and format functions for one field.
type FieldCodec struct {
	Format  FormatFunc
	Parse   ParseFunc
	Matches MatchFunc
	// MayFail reports whether Parse can reject input. A sum variant with
	// MayFail false ends disambiguation: variants after it are unreachable.
	MayFail bool
}

// Column is one derived schema entry: the external name and its codec.
type Column struct {
	Name  string
	Codec FieldCodec
}

// Schema is the compiled form of a shape: per-field codecs in declaration
// order. Read-only after derivation and safe to share across goroutines.
type Schema struct {
	columns []Column
}

// Len returns the number of columns.
func (s *Schema) Len() int { return len(s.columns) }

// Columns returns the derived columns in order. Callers must not mutate the
// returned slice.
func (s *Schema) Columns() []Column { return s.columns }

// Column returns the i-th column.
func (s *Schema) Column(i int) Column { return s.columns[i] }

// Names returns the external names in column order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.columns))
	for i, c := range s.columns {
		names[i] = c.Name
	}
	return names
}
