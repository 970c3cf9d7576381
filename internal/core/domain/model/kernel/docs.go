// Package kernel provides the shared value objects of the bakery domain.
//
// The package includes:
//   - UUID: validated entity identifier wrapping github.com/google/uuid
//   - Date: an immutable calendar day with bakery-calendar weekday
//     conventions (Monday=0 .. Sunday=6) and day-level arithmetic
//
// Both types are immutable, safe for concurrent use, and invalid as zero
// values: construct them through their factory functions and check
// Validate when rebuilding from persistence.
package kernel
