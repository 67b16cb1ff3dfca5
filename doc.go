// Package typerow provides a type-directed codec between fixed-shape records
// and delimited text (CSV/TSV-like formats).
//
// A caller declares a record shape once (field names in order, each with a
// semantic type and an optional external name) and compiles it into a Schema
// of per-field codecs. The compiled Schema then drives streaming readers and
// writers over delimited text.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	typerow/             Root package with LineSource and LineSink interfaces
//	├── codec/           Type expressions, scalar and extension registries,
//	│                    and the shape-to-schema Compiler
//	├── delimited/       Escaping transform plus the streaming Reader/Writer
//	├── schemafile/      YAML record-shape descriptions
//	├── errors/          Structured error types for debugging
//	└── cmd/delim/       CLI for inspecting and converting delimited files
//
// # Quick Start
//
// Declare a shape, compile it, and round-trip records:
//
//	shape := codec.NewShape(
//	    codec.Field{Name: "id", Type: codec.Scalar(codec.KindInt)},
//	    codec.Field{Name: "note", Type: codec.Optional(codec.Scalar(codec.KindString))},
//	)
//
//	schema, err := codec.NewCompiler().Compile(shape)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	w, err := delimited.NewWriter(&buf, schema, delimited.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w.Write(codec.Record{int64(1), "hello"})
//	w.Write(codec.Record{int64(2), nil})
//	w.Flush()
//
// # Type System
//
// Field types are built from a small expression language:
//
//   - Scalars: bool, int, float, complex, string, bytes
//   - Optional<T>: T or absent (empty field)
//   - Sum types: ordered alternatives, disambiguated at parse time by
//     declaration order, with absent always tried first
//   - Named extension types resolved through a caller-supplied Registry
//
// # Thread Safety
//
// Compiler and Schema are safe for concurrent use. Reader and Writer maintain
// internal state (current line, buffered output) and are NOT thread-safe;
// use separate instances per goroutine.
package typerow
