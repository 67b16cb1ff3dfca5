package codec

import (
	"github.com/typerow/typerow/codec/internal/types"
)

type Kind = types.Kind

const (
	KindBool    = types.KindBool
	KindInt     = types.KindInt
	KindFloat   = types.KindFloat
	KindComplex = types.KindComplex
	KindString  = types.KindString
	KindBytes   = types.KindBytes
)

// TypeExpr is a field's declared type.
type TypeExpr = types.Expr

// Scalar declares a built-in scalar type.
func Scalar(k Kind) TypeExpr { return types.ScalarExpr{Kind: k} }

// Optional declares elem-or-absent. An empty field parses to nil; a nil
// value formats to the empty field.
func Optional(elem TypeExpr) TypeExpr { return types.OptionExpr{Elem: elem} }

// Sum declares an ordered list of alternatives. Parse disambiguation follows
// declaration order, except that the absent marker is always tried first.
func Sum(variants ...TypeExpr) TypeExpr { return types.SumExpr{Variants: variants} }

// Named declares an extension type resolved through the compiler's Registry.
func Named(tag string) TypeExpr { return types.NamedExpr{Tag: tag} }

// Absent is the marker type for a missing value.
var Absent TypeExpr = types.AbsentExpr{}
