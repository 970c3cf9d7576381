// Package services provides domain services that derive facts across the
// bakery domain's aggregates.
//
// The package includes:
//   - QueueProjector: the single source of truth for an order's derived
//     operational status, priority tier, and queue-row presentation
//
// Presentation and read-model code call the projector rather than
// re-deriving these rules, so the status/priority logic exists exactly
// once.
package services
