// Package errors provides structured error types for the typerow library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: external field name, the
// declared type expression, input line and field position, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRead, errors.KindScalarParse).
//		Field("age").
//		TypeName("int").
//		At(12, 3).
//		Detail("cannot parse %q", text).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.HeaderMismatch(2, "Fancy X", "x")
//	err := errors.ArityMismatch(errors.PhaseRead, 3, 4)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so callers can test for a category:
//
//	errors.Is(err, &errors.Error{Phase: errors.PhaseRead, Kind: errors.KindArityMismatch})
package errors
