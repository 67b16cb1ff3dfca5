package types

type Kind uint8

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindComplex
	KindString
	KindBytes
)

var kindNames = [...]string{
	KindBool:    "bool",
	KindInt:     "int",
	KindFloat:   "float",
	KindComplex: "complex",
	KindString:  "string",
	KindBytes:   "bytes",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindByName maps a scalar name back to its Kind.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// IsInfallible reports whether the kind's parser accepts every input.
// Text-like kinds parse by identity and never reject.
func (k Kind) IsInfallible() bool {
	return k == KindString || k == KindBytes
}
