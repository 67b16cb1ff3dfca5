package delimited

import (
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/typerow/typerow/codec"
)

// Writing a record through a schema and reading the lines back must
// reproduce the record exactly, whichever discipline is in effect.
func TestRoundTrip_OptionalAndRenames(t *testing.T) {
	shape := codec.NewShape(
		codec.Field{Name: "w", Type: codec.Optional(codec.Scalar(codec.KindFloat)), Rename: "BigW"},
		codec.Field{Name: "x", Type: codec.Scalar(codec.KindInt), Rename: "Fancy X"},
		codec.Field{Name: "y", Type: codec.Scalar(codec.KindBool)},
		codec.Field{Name: "z", Type: codec.Scalar(codec.KindString)},
	)
	schema, err := codec.NewCompiler().Compile(shape)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	cfg := Config{Sep: ',', Escape: '\\', Header: true}
	rec := codec.Record{nil, int64(2), true, "a,b"}

	var buf strings.Builder
	w, err := NewWriter(&buf, schema, cfg)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if err := w.Write(rec); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	want := "BigW,Fancy X,y,z\n" + `,2,true,a\,b` + "\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}

	r, err := NewReader(strings.NewReader(buf.String()), schema, cfg)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	got, err := r.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !reflect.DeepEqual(got, rec) {
		t.Errorf("round trip changed the record: %v != %v", got, rec)
	}
}

func TestRoundTrip_BothDisciplines(t *testing.T) {
	shape := codec.NewShape(
		codec.Field{Name: "id", Type: codec.Scalar(codec.KindInt)},
		codec.Field{Name: "note", Type: codec.Optional(codec.Scalar(codec.KindString))},
		codec.Field{Name: "score", Type: codec.Sum(codec.Scalar(codec.KindInt), codec.Scalar(codec.KindFloat))},
	)
	schema, err := codec.NewCompiler().Compile(shape)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	recs := []codec.Record{
		{int64(1), "plain", int64(10)},
		{int64(2), nil, 2.5},
		{int64(3), "sep, inside", int64(-4)},
		{int64(4), "quote \" and\nbreak", 0.125},
		{int64(5), `back\slash`, int64(0)},
		{int64(6), "crlf\r\ninside", int64(9)},
	}

	configs := map[string]Config{
		"quote":  {Sep: ',', Quote: '"', Header: true},
		"escape": {Sep: ',', Escape: '\\', Header: true},
		"tsv":    {Sep: '\t', Quote: '"', Header: false},
	}
	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			var buf strings.Builder
			if err := Write(schema, slices.Values(recs), &buf, cfg); err != nil {
				t.Fatalf("Write failed: %v", err)
			}

			seq, err := Read(schema, strings.NewReader(buf.String()), cfg)
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			var got []codec.Record
			for rec, err := range seq {
				if err != nil {
					t.Fatalf("record error: %v", err)
				}
				got = append(got, rec)
			}
			if !reflect.DeepEqual(got, recs) {
				t.Errorf("round trip changed the records:\n got %v\nwant %v", got, recs)
			}
		})
	}
}
