// Package errs provides standardized error types for the bakery application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the codebase.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Domain validation failures, missing aggregates, and version conflicts all
// surface as one of these types, so callers can branch on the sentinel
// rather than on message text.
package errs
