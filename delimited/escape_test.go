package delimited

import (
	"errors"
	"testing"

	typerr "github.com/typerow/typerow/errors"
)

var escapeCfg = Config{Sep: ',', Escape: '\\'}
var quoteCfg = Config{Sep: ',', Quote: '"'}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"  leading and trailing  ",
		"a,b",
		"a,b,c,",
		`say "hi"`,
		`back\slash`,
		"line\nbreak",
		"crlf\r\n",
		",",
		`"`,
		`\`,
		"mixed,\"all\"\\of\nit",
		"héllo, wörld",
	}

	for _, cfg := range []Config{escapeCfg, quoteCfg} {
		for _, s := range inputs {
			enc := EncodeField(s, cfg)
			dec, err := DecodeField(enc, cfg)
			if err != nil {
				t.Errorf("cfg=%+v DecodeField(%q) failed: %v", cfg, enc, err)
				continue
			}
			if dec != s {
				t.Errorf("cfg=%+v round-trip %q -> %q -> %q", cfg, s, enc, dec)
			}
		}
	}
}

func TestEncode_Escaped(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a,b", `a\,b`},
		{`a\b`, `a\\b`},
		{"a\nb", `a\nb`},
		{"a\rb", `a\rb`},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EncodeField(tt.in, escapeCfg); got != tt.want {
			t.Errorf("EncodeField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncode_Quoted(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a,b", `"a,b"`},
		{`a"b`, `"a""b"`},
		{"a\nb", "\"a\nb\""},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EncodeField(tt.in, quoteCfg); got != tt.want {
			t.Errorf("EncodeField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecode_MalformedEscape(t *testing.T) {
	_, err := DecodeField(`dangling\`, escapeCfg)
	if !errors.Is(err, &typerr.Error{Phase: typerr.PhaseRead, Kind: typerr.KindMalformedEscape}) {
		t.Errorf("error = %v, want malformed_escape", err)
	}

	_, err = DecodeField(`"open`, quoteCfg)
	if !errors.Is(err, &typerr.Error{Phase: typerr.PhaseRead, Kind: typerr.KindMalformedEscape}) {
		t.Errorf("error = %v, want malformed_escape for unterminated quote", err)
	}
}

func TestSplitFields_Escaped(t *testing.T) {
	fields, needMore, err := splitFields(`a\,b,c,`, escapeCfg)
	if err != nil || needMore {
		t.Fatalf("split failed: %v needMore=%v", err, needMore)
	}
	want := []string{"a,b", "c", ""}
	if len(fields) != len(want) {
		t.Fatalf("fields = %v, want %v", fields, want)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, fields[i], want[i])
		}
	}

	if _, _, err := splitFields(`trailing\`, escapeCfg); err == nil {
		t.Error("dangling escape at end of line should fail")
	}
}

func TestSplitFields_Quoted(t *testing.T) {
	fields, needMore, err := splitFields(`"a,b","say ""hi""",plain`, quoteCfg)
	if err != nil || needMore {
		t.Fatalf("split failed: %v needMore=%v", err, needMore)
	}
	want := []string{"a,b", `say "hi"`, "plain"}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, fields[i], want[i])
		}
	}
}

func TestSplitFields_OpenQuoteNeedsMore(t *testing.T) {
	_, needMore, err := splitFields(`a,"open`, quoteCfg)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if !needMore {
		t.Error("open quote at end of line should request a continuation line")
	}
}

func TestSplitFields_EmptyLine(t *testing.T) {
	for _, cfg := range []Config{escapeCfg, quoteCfg} {
		fields, _, err := splitFields("", cfg)
		if err != nil || len(fields) != 1 || fields[0] != "" {
			t.Errorf("cfg=%+v split(\"\") = %v, %v, want one empty field", cfg, fields, err)
		}
	}
}

func TestJoinFields(t *testing.T) {
	line := joinFields([]string{"a,b", "c", ""}, escapeCfg)
	if line != `a\,b,c,` {
		t.Errorf("joinFields = %q", line)
	}

	line = joinFields([]string{"a,b", "c"}, quoteCfg)
	if line != `"a,b",c` {
		t.Errorf("joinFields = %q", line)
	}
}

func TestConfig_Validate(t *testing.T) {
	bad := []Config{
		{Sep: '\n'},
		{Sep: ',', Escape: ','},
		{Sep: ',', Escape: 'n'},
		{Sep: ',', Escape: '\r'},
		{Sep: 'n', Escape: '\\'},
		{Sep: 'r', Escape: '\\'},
		{Sep: ',', Quote: ','},
	}
	for _, cfg := range bad {
		if err := cfg.withDefaults().validate(); err == nil {
			t.Errorf("config %+v should be rejected", cfg)
		}
	}

	good := []Config{
		DefaultConfig(),
		{Sep: '\t'},
		{Sep: ',', Escape: '\\'},
		{Sep: ';', Quote: '\''},
		// 'n' is only reserved while the escape mapping is in play
		{Sep: 'n'},
	}
	for _, cfg := range good {
		if err := cfg.withDefaults().validate(); err != nil {
			t.Errorf("config %+v rejected: %v", cfg, err)
		}
	}
}
