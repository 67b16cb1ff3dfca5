package types

import "strings"

// Expr is a field's declared type. Implementations form a closed set:
// ScalarExpr, OptionExpr, SumExpr, NamedExpr, and AbsentExpr.
type Expr interface {
	String() string
	expr()
}

// ScalarExpr declares a built-in scalar kind.
type ScalarExpr struct {
	Kind Kind
}

// OptionExpr declares Elem-or-absent. It is sugar for a sum that includes
// the absent marker as its first variant.
type OptionExpr struct {
	Elem Expr
}

// SumExpr declares an ordered list of alternatives. Order is significant:
// it is preserved from the declaration and drives parse disambiguation.
type SumExpr struct {
	Variants []Expr
}

// NamedExpr declares an extension type resolved through a caller registry.
type NamedExpr struct {
	Tag string
}

// AbsentExpr is the marker type for a missing value; it serializes to the
// empty field.
type AbsentExpr struct{}

func (ScalarExpr) expr() {}
func (OptionExpr) expr() {}
func (SumExpr) expr()    {}
func (NamedExpr) expr()  {}
func (AbsentExpr) expr() {}

func (e ScalarExpr) String() string { return e.Kind.String() }

func (e OptionExpr) String() string {
	if _, ok := e.Elem.(SumExpr); ok {
		return "(" + e.Elem.String() + ")?"
	}
	return e.Elem.String() + "?"
}

func (e SumExpr) String() string {
	parts := make([]string, len(e.Variants))
	for i, v := range e.Variants {
		parts[i] = v.String()
	}
	return strings.Join(parts, "|")
}

func (e NamedExpr) String() string { return e.Tag }

func (AbsentExpr) String() string { return "absent" }
