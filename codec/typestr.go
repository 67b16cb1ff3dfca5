package codec

import (
	"strings"

	"github.com/typerow/typerow/codec/internal/types"
	"github.com/typerow/typerow/errors"
)

// ParseTypeExpr parses the compact text form of a type expression, as used
// in schema files:
//
//	int            built-in scalar (bool, int, float, complex, string, bytes)
//	decimal        extension type resolved through the registry
//	float?         optional
//	int|string     sum, declaration order preserved
//	absent         explicit absent variant inside a sum
//	int|string?    optional sum: '?' applies to the whole expression
//
// Unknown words parse as Named extension tags; whether a codec exists for
// them is decided at compile time.
func ParseTypeExpr(s string) (TypeExpr, error) {
	expr := strings.TrimSpace(s)
	optional := false
	if strings.HasSuffix(expr, "?") {
		optional = true
		expr = strings.TrimSpace(strings.TrimSuffix(expr, "?"))
	}
	if expr == "" {
		return nil, errors.New(errors.PhaseCompile, errors.KindInvalidConfig).
			Detail("empty type expression %q", s).
			Build()
	}

	var terms []TypeExpr
	for _, part := range strings.Split(expr, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, errors.New(errors.PhaseCompile, errors.KindInvalidConfig).
				Detail("empty variant in type expression %q", s).
				Build()
		}
		terms = append(terms, parseTerm(part))
	}

	var out TypeExpr
	if len(terms) == 1 {
		out = terms[0]
	} else {
		out = Sum(terms...)
	}
	if optional {
		out = Optional(out)
	}
	return out, nil
}

func parseTerm(word string) TypeExpr {
	if word == "absent" {
		return Absent
	}
	if k, ok := types.KindByName(word); ok {
		return Scalar(k)
	}
	return Named(word)
}
