package types

import "testing"

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindBool, "bool"},
		{KindInt, "int"},
		{KindFloat, "float"},
		{KindComplex, "complex"},
		{KindString, "string"},
		{KindBytes, "bytes"},
		{Kind(200), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindByName(t *testing.T) {
	for k := KindBool; k <= KindBytes; k++ {
		got, ok := KindByName(k.String())
		if !ok || got != k {
			t.Errorf("KindByName(%q) = %v, %v", k.String(), got, ok)
		}
	}

	if _, ok := KindByName("decimal"); ok {
		t.Error("KindByName should reject unknown names")
	}
}

func TestKind_IsInfallible(t *testing.T) {
	if !KindString.IsInfallible() || !KindBytes.IsInfallible() {
		t.Error("text kinds parse by identity and never fail")
	}
	for _, k := range []Kind{KindBool, KindInt, KindFloat, KindComplex} {
		if k.IsInfallible() {
			t.Errorf("%s parser should be fallible", k)
		}
	}
}
