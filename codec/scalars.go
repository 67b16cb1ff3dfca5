package codec

import (
	"fmt"
	"strconv"
)

// Boolean literal spellings. Parsing is case-sensitive and accepts exactly
// these two values.
const (
	TrueLiteral  = "true"
	FalseLiteral = "false"
)

// scalarEntry holds the raw codec for one built-in kind. Parse errors carry
// no field context; the compiler wraps them with the field's name and
// declared type.
type scalarEntry struct {
	format  FormatFunc
	parse   ParseFunc
	matches MatchFunc
	mayFail bool
}

var scalarTable = map[Kind]scalarEntry{
	KindBool: {
		format: func(v any) (string, error) {
			b, ok := v.(bool)
			if !ok {
				return "", fmt.Errorf("expected bool, got %T", v)
			}
			if b {
				return TrueLiteral, nil
			}
			return FalseLiteral, nil
		},
		parse: func(text string) (any, error) {
			switch text {
			case TrueLiteral:
				return true, nil
			case FalseLiteral:
				return false, nil
			}
			return nil, fmt.Errorf("unrecognized boolean value %q", text)
		},
		matches: func(v any) bool { _, ok := v.(bool); return ok },
		mayFail: true,
	},
	KindInt: {
		format: func(v any) (string, error) {
			n, ok := v.(int64)
			if !ok {
				return "", fmt.Errorf("expected int64, got %T", v)
			}
			return strconv.FormatInt(n, 10), nil
		},
		parse: func(text string) (any, error) {
			n, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		matches: func(v any) bool { _, ok := v.(int64); return ok },
		mayFail: true,
	},
	KindFloat: {
		format: func(v any) (string, error) {
			f, ok := v.(float64)
			if !ok {
				return "", fmt.Errorf("expected float64, got %T", v)
			}
			return strconv.FormatFloat(f, 'g', -1, 64), nil
		},
		parse: func(text string) (any, error) {
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
		matches: func(v any) bool { _, ok := v.(float64); return ok },
		mayFail: true,
	},
	KindComplex: {
		format: func(v any) (string, error) {
			c, ok := v.(complex128)
			if !ok {
				return "", fmt.Errorf("expected complex128, got %T", v)
			}
			return strconv.FormatComplex(c, 'g', -1, 128), nil
		},
		parse: func(text string) (any, error) {
			c, err := strconv.ParseComplex(text, 128)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		matches: func(v any) bool { _, ok := v.(complex128); return ok },
		mayFail: true,
	},
	KindString: {
		format: func(v any) (string, error) {
			s, ok := v.(string)
			if !ok {
				return "", fmt.Errorf("expected string, got %T", v)
			}
			return s, nil
		},
		// Identity: accepts every input, including empty text. This is why
		// absent is always tried before other sum variants.
		parse:   func(text string) (any, error) { return text, nil },
		matches: func(v any) bool { _, ok := v.(string); return ok },
		mayFail: false,
	},
	KindBytes: {
		format: func(v any) (string, error) {
			b, ok := v.([]byte)
			if !ok {
				return "", fmt.Errorf("expected []byte, got %T", v)
			}
			return string(b), nil
		},
		parse:   func(text string) (any, error) { return []byte(text), nil },
		matches: func(v any) bool { _, ok := v.([]byte); return ok },
		mayFail: false,
	},
}

func builtinScalar(k Kind) (scalarEntry, bool) {
	e, ok := scalarTable[k]
	return e, ok
}

// absentEntry is the codec for the absent marker: empty text on the wire,
// nil in memory.
var absentEntry = scalarEntry{
	format: func(v any) (string, error) {
		if v != nil {
			return "", fmt.Errorf("expected nil, got %T", v)
		}
		return "", nil
	},
	parse: func(text string) (any, error) {
		if text != "" {
			return nil, fmt.Errorf("found %q, expected empty field", text)
		}
		return nil, nil
	},
	matches: func(v any) bool { return v == nil },
	mayFail: true,
}
