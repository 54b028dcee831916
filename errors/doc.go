// Package errors provides structured error types for the imgui bridge.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: field path, Go/native type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseImport, errors.KindOutOfBounds).
//		Path("clipper", "DisplayEnd").
//		GoType("int").
//		NativeType("s32").
//		Detail("value does not fit").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.AllocationFailed(errors.PhaseRuntime, 64, 4)
//	err := errors.Assertion("PopStyleVar", "style var stack underflow")
//
// The boundary itself never returns these: engine failures are raised as panics
// carrying an *Error, and the host wrapper converts sentinels where its API
// returns errors. All errors implement the standard error interface and
// support errors.Is/As.
package errors
