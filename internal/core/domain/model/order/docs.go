// Package order provides the domain entities and business logic for bakery
// order management. It implements the Order aggregate root and the
// production-stage state machine.
//
// The package includes:
//   - Order: the aggregate root managing identity, due date, and lifecycle
//   - Stage: the production step an order occupies
//     (Filling -> Covering -> Decorating -> Packing -> Complete)
//   - Transition: the closed set of commands that move orders between stages
//   - Store and DeliveryMethod: normalization of loosely validated fields
//
// Key business rules:
//   - Stage transitions follow an explicit transition table; the only
//     backward edge is the quality-control return from Packing to Decorating
//   - Cancellation is a timestamp marker orthogonal to the stage, reachable
//     from any stage before Complete, and terminal once set
//   - Cancelled and completed orders reject further workflow mutations
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
