package codec

import "testing"

func TestParseTypeExpr(t *testing.T) {
	tests := []struct {
		in   string
		want string // round-tripped through TypeExpr.String()
	}{
		{"int", "int"},
		{"  float  ", "float"},
		{"string?", "string?"},
		{"int|string", "int|string"},
		{"int|string?", "(int|string)?"},
		{"int | bool", "int|bool"},
		{"absent|int", "absent|int"},
		{"decimal", "decimal"},
		{"decimal?", "decimal?"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			expr, err := ParseTypeExpr(tt.in)
			if err != nil {
				t.Fatalf("ParseTypeExpr(%q) failed: %v", tt.in, err)
			}
			if got := expr.String(); got != tt.want {
				t.Errorf("ParseTypeExpr(%q).String() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTypeExpr_Invalid(t *testing.T) {
	for _, in := range []string{"", "?", "int||string", "|int", "int|"} {
		if _, err := ParseTypeExpr(in); err == nil {
			t.Errorf("ParseTypeExpr(%q) should fail", in)
		}
	}
}
