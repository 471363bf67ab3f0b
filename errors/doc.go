// Package errors provides structured error types for the cairo-lang library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go/Cairo type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
//		Path("transfer", "amount").
//		GoType("string").
//		CairoType("felt").
//		Detail("cannot convert string to a field element").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseEncode, path, "string", "felt")
//	err := errors.InsufficientData(path)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
