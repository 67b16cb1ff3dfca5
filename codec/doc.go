// Package codec derives per-field serializers from record shape declarations.
//
// A Shape lists a record's fields in order, each with a declared type and an
// optional external name. The Compiler resolves every declaration into a
// FieldCodec (a paired parse/format function), producing an immutable Schema
// the delimited package's readers and writers run against.
//
// # Compilation Flow
//
//  1. Declare a Shape (or load one with the schemafile package)
//  2. Compiler.Compile(shape) → Schema
//  3. Hand the Schema to delimited.NewReader / delimited.NewWriter
//
// Compilation happens once per shape; the Compiler caches results by shape
// identity, and a Schema is safe to share across any number of concurrent
// readers and writers.
//
// # Type Resolution
//
// Each declared type resolves in this order:
//
//   - the extension Registry, when the caller registered the type's tag
//   - the built-in scalar table (bool, int, float, complex, string, bytes)
//
// Optional<T> is sugar for the sum absent|T. Sums format by the runtime
// value's actual type (the producer always knows the variant, so format
// never guesses) and parse by ordered attempt: declaration order, except
// that absent is always tried first. Text-like scalars parse by identity
// and accept the empty string, which is exactly why absent must win before
// they run.
//
// # Error Handling
//
// Derivation errors (unknown_type, duplicate_name) are fail-fast: no partial
// schema is ever returned. Codec-level parse errors are structured
// errors.Error values carrying the field's external name and declared type;
// the delimited reader adds line and field position.
package codec
