package delimited

import (
	"errors"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/typerow/typerow/codec"
	typerr "github.com/typerow/typerow/errors"
)

func testSchema(t *testing.T) *codec.Schema {
	t.Helper()
	shape := codec.NewShape(
		codec.Field{Name: "id", Type: codec.Scalar(codec.KindInt)},
		codec.Field{Name: "name", Type: codec.Scalar(codec.KindString)},
		codec.Field{Name: "active", Type: codec.Scalar(codec.KindBool)},
	)
	schema, err := codec.NewCompiler().Compile(shape)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	return schema
}

func seqOf(recs ...codec.Record) iter.Seq[codec.Record] {
	return slices.Values(recs)
}

func TestWriter_HeaderAndRecords(t *testing.T) {
	var buf strings.Builder
	w, err := NewWriter(&buf, testSchema(t), DefaultConfig())
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	if err := w.Write(codec.Record{int64(1), "ada", true}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Write(codec.Record{int64(2), "grace, esq.", false}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	want := "id,name,active\n1,ada,true\n2,\"grace, esq.\",false\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriter_NoHeader(t *testing.T) {
	var buf strings.Builder
	cfg := DefaultConfig()
	cfg.Header = false
	w, _ := NewWriter(&buf, testSchema(t), cfg)

	w.Write(codec.Record{int64(1), "ada", true})
	w.Flush()

	if strings.Contains(buf.String(), "id,name") {
		t.Errorf("output %q should not contain a header", buf.String())
	}
}

func TestWriter_ArityMismatch(t *testing.T) {
	var buf strings.Builder
	w, _ := NewWriter(&buf, testSchema(t), DefaultConfig())

	err := w.Write(codec.Record{int64(1), "ada"})
	if !errors.Is(err, &typerr.Error{Phase: typerr.PhaseWrite, Kind: typerr.KindArityMismatch}) {
		t.Fatalf("error = %v, want arity_mismatch", err)
	}

	// the writer aborts: later writes surface the same error
	err2 := w.Write(codec.Record{int64(2), "grace", false})
	if !errors.Is(err2, err) {
		t.Errorf("subsequent Write = %v, want the sticky abort error", err2)
	}
}

func TestWriter_WriteAll(t *testing.T) {
	var buf strings.Builder
	cfg := DefaultConfig()
	cfg.Header = false
	w, _ := NewWriter(&buf, testSchema(t), cfg)

	err := w.WriteAll(seqOf(
		codec.Record{int64(1), "a", true},
		codec.Record{int64(2), "b", false},
	))
	if err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	if buf.String() != "1,a,true\n2,b,false\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestWriter_InvalidConfig(t *testing.T) {
	_, err := NewWriter(&strings.Builder{}, testSchema(t), Config{Sep: ',', Escape: ','})
	if !errors.Is(err, &typerr.Error{Phase: typerr.PhaseConfig, Kind: typerr.KindInvalidConfig}) {
		t.Errorf("error = %v, want invalid_config", err)
	}
}

func TestWrite_PackageLevel(t *testing.T) {
	var buf strings.Builder
	err := Write(testSchema(t), seqOf(codec.Record{int64(9), "x", true}), &buf, DefaultConfig())
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if buf.String() != "id,name,active\n9,x,true\n" {
		t.Errorf("output = %q", buf.String())
	}
}
