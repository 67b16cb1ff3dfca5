package codec

import (
	"sync"

	"go.uber.org/zap"

	"github.com/typerow/typerow/codec/internal/types"
	"github.com/typerow/typerow/errors"
)

// Compiler derives schemas from shapes. Derivation is pure: the same shape,
// registry, and built-in table always produce the same schema, so results
// are cached by shape identity.
type Compiler struct {
	registry *Registry
	cache    sync.Map // *Shape -> *Schema
}

// CompilerOption configures a Compiler.
type CompilerOption func(*Compiler)

// WithRegistry supplies an extension registry consulted before the built-in
// scalar table.
func WithRegistry(r *Registry) CompilerOption {
	return func(c *Compiler) { c.registry = r }
}

// NewCompiler creates a schema compiler.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile derives the schema for a shape: one (external name, codec) column
// per field, in declaration order. It fails fast on the first unresolvable
// type or duplicate external name; no partial schema is returned.
func (c *Compiler) Compile(shape *Shape) (*Schema, error) {
	if shape == nil {
		return nil, errors.New(errors.PhaseCompile, errors.KindInvalidConfig).
			Detail("shape cannot be nil").
			Build()
	}

	if cached, ok := c.cache.Load(shape); ok {
		return cached.(*Schema), nil
	}

	seen := make(map[string]string, shape.Len()) // external -> internal
	columns := make([]Column, 0, shape.Len())

	for _, f := range shape.Fields() {
		external := f.External()
		if first, dup := seen[external]; dup {
			return nil, errors.DuplicateName(external, first, f.Name)
		}
		seen[external] = f.Name

		fc, err := c.resolve(f.Type, external)
		if err != nil {
			return nil, err
		}
		columns = append(columns, Column{Name: external, Codec: fc})
	}

	schema := &Schema{columns: columns}
	c.cache.Store(shape, schema)
	return schema, nil
}

// resolve produces the codec for one declared type. field is the external
// name, used in error context only.
func (c *Compiler) resolve(t TypeExpr, field string) (FieldCodec, error) {
	if t == nil {
		return FieldCodec{}, errors.UnknownType(field, "<nil>")
	}

	switch t := t.(type) {
	case types.ScalarExpr:
		if ext, ok := c.registry.Lookup(t.Kind.String()); ok {
			return ext, nil
		}
		entry, ok := builtinScalar(t.Kind)
		if !ok {
			return FieldCodec{}, errors.UnknownType(field, t.String())
		}
		return c.entryCodec(entry, field, t.String()), nil

	case types.NamedExpr:
		ext, ok := c.registry.Lookup(t.Tag)
		if !ok {
			return FieldCodec{}, errors.UnknownType(field, t.Tag)
		}
		return ext, nil

	case types.AbsentExpr:
		return c.entryCodec(absentEntry, field, t.String()), nil

	case types.OptionExpr:
		// option<T> is sugar for absent|T (absent first). A sum element is
		// flattened so its variants keep their declared order.
		variants := []TypeExpr{Absent}
		if inner, ok := t.Elem.(types.SumExpr); ok {
			variants = append(variants, inner.Variants...)
		} else {
			variants = append(variants, t.Elem)
		}
		return c.resolveSum(variants, field, t.String())

	case types.SumExpr:
		return c.resolveSum(t.Variants, field, t.String())

	default:
		return FieldCodec{}, errors.UnknownType(field, t.String())
	}
}

// entryCodec wraps a raw scalar entry so parse failures carry the field's
// external name and declared type.
func (c *Compiler) entryCodec(entry scalarEntry, field, typeName string) FieldCodec {
	return FieldCodec{
		Format:  entry.format,
		Matches: entry.matches,
		MayFail: entry.mayFail,
		Parse: func(text string) (any, error) {
			v, err := entry.parse(text)
			if err != nil {
				return nil, errors.ScalarParse(field, typeName, text, err)
			}
			return v, nil
		},
	}
}

type variantCodec struct {
	name  string
	codec FieldCodec
}

// resolveSum builds the ordered-attempt codec for a sum. Format dispatches
// on the runtime value in declaration order; parse tries variants in
// declaration order except that absent always goes first.
func (c *Compiler) resolveSum(variants []TypeExpr, field, typeName string) (FieldCodec, error) {
	if len(variants) == 0 {
		return FieldCodec{}, errors.New(errors.PhaseCompile, errors.KindUnknownType).
			Field(field).
			Detail("sum type has no variants").
			Build()
	}

	declared := make([]variantCodec, 0, len(variants))
	for _, v := range variants {
		vc, err := c.resolve(v, field)
		if err != nil {
			return FieldCodec{}, err
		}
		declared = append(declared, variantCodec{name: v.String(), codec: vc})
	}

	// Parse order: absent first, everything else in declared order. Scalar
	// parsers are not required to reject the empty string, so "is this field
	// absent?" must be decided before any lossy scalar parse runs.
	parseOrder := make([]variantCodec, 0, len(declared))
	for i, v := range variants {
		if _, ok := v.(types.AbsentExpr); ok {
			parseOrder = append(parseOrder, declared[i])
		}
	}
	for i, v := range variants {
		if _, ok := v.(types.AbsentExpr); !ok {
			parseOrder = append(parseOrder, declared[i])
		}
	}

	c.warnUnreachable(field, parseOrder)

	attempted := make([]string, len(parseOrder))
	for i, vc := range parseOrder {
		attempted[i] = vc.name
	}

	mayFail := true
	for _, vc := range declared {
		if !vc.codec.MayFail {
			mayFail = false
			break
		}
	}

	return FieldCodec{
		Format: func(v any) (string, error) {
			for _, vc := range declared {
				if vc.codec.Matches(v) {
					return vc.codec.Format(v)
				}
			}
			return "", errors.TypeMismatch(field, typeName, v)
		},
		Parse: func(text string) (any, error) {
			for _, vc := range parseOrder {
				v, err := vc.codec.Parse(text)
				if err == nil {
					return v, nil
				}
			}
			return nil, errors.NoMatchingVariant(field, text, attempted)
		},
		Matches: func(v any) bool {
			for _, vc := range declared {
				if vc.codec.Matches(v) {
					return true
				}
			}
			return false
		},
		MayFail: mayFail,
	}, nil
}

// warnUnreachable flags variants that can never win parsing because an
// earlier variant accepts every input.
func (c *Compiler) warnUnreachable(field string, parseOrder []variantCodec) {
	for i, vc := range parseOrder {
		if vc.codec.MayFail || i == len(parseOrder)-1 {
			continue
		}
		var shadowed []string
		for _, later := range parseOrder[i+1:] {
			shadowed = append(shadowed, later.name)
		}
		Logger().Debug("sum variants unreachable during parse",
			zap.String("field", field),
			zap.String("infallible", vc.name),
			zap.Strings("shadowed", shadowed))
		return
	}
}
