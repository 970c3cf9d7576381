package order

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIsCancelled is returned when a workflow mutation is attempted
	// on a cancelled order. Cancellation is terminal.
	ErrOrderIsCancelled = errors.New("order is cancelled")

	// ErrOrderIsCompleted is returned when cancelling or rescheduling an
	// order that has already completed the pipeline.
	ErrOrderIsCompleted = errors.New("order is already complete")
)

// Order represents a bakery order moving through the production pipeline.
// It is the aggregate root managing identity, scheduling, and lifecycle.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a known store
//   - Stage transitions follow the transition table in this package
//   - Cancellation is monotonic and terminal: the timestamp is never
//     cleared and dominates the stage for status purposes
//   - Once cancelled or completed, the order is immutable for workflow
//     purposes
//
// The delivery method is kept as the raw free text it arrived with;
// normalization is a projection concern, not stored state.
type Order struct {
	id                kernel.UUID
	store             Store
	stage             Stage
	dueDate           *kernel.Date
	cancelledAt       *time.Time
	assigneeID        *kernel.UUID
	deliveryMethod    string
	number            string
	marketplaceNumber string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order entering the pipeline at Filling, with no due
// date yet (it surfaces as needing attention until one is scheduled).
//
// Parameters:
//   - id: unique order identifier
//   - store: the bakery location, already normalized to the known set
//   - deliveryMethod: raw delivery text as received from ingestion
//   - number: human-readable order number (may be empty; projections fall
//     back to the marketplace number or the id)
func NewOrder(id kernel.UUID, store Store, deliveryMethod string, number string) (*Order, error) {
	order := &Order{
		stage:          Filling,
		deliveryMethod: deliveryMethod,
		number:         number,
		isConstructed:  true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStore(store),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order from persistence without replaying its
// history. The stage must be a valid pipeline stage; optional fields are
// nil when the row has no value.
func RestoreOrder(
	id kernel.UUID,
	store Store,
	stage Stage,
	dueDate *kernel.Date,
	cancelledAt *time.Time,
	assigneeID *kernel.UUID,
	deliveryMethod string,
	number string,
	marketplaceNumber string,
) (*Order, error) {
	order := &Order{
		dueDate:           dueDate,
		cancelledAt:       cancelledAt,
		assigneeID:        assigneeID,
		deliveryMethod:    deliveryMethod,
		number:            number,
		marketplaceNumber: marketplaceNumber,
		isConstructed:     true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStore(store),
		order.setStage(stage),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order was constructed through NewOrder or
// RestoreOrder, guarding against direct struct instantiation.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Store returns the bakery location the order belongs to.
func (o *Order) Store() Store {
	return o.store
}

// Stage returns the current production stage. For a cancelled order this is
// the stage it was cancelled from.
func (o *Order) Stage() Stage {
	return o.stage
}

// DueDate returns the scheduled due date, or nil when none is set.
func (o *Order) DueDate() *kernel.Date {
	return o.dueDate
}

// CancelledAt returns the cancellation timestamp, or nil for a live order.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// Assignee returns the assigned staff member's ID, or nil if unassigned.
func (o *Order) Assignee() *kernel.UUID {
	return o.assigneeID
}

// DeliveryMethod returns the raw delivery text as received.
func (o *Order) DeliveryMethod() string {
	return o.deliveryMethod
}

// Number returns the human-readable order number, possibly empty.
func (o *Order) Number() string {
	return o.number
}

// MarketplaceNumber returns the external marketplace order number,
// possibly empty.
func (o *Order) MarketplaceNumber() string {
	return o.marketplaceNumber
}

// IsCancelled reports whether the cancellation marker is set.
func (o *Order) IsCancelled() bool {
	return o.cancelledAt != nil
}

// IsCompleted reports whether the order finished the pipeline. Independent
// of cancellation: disordered external writes can produce both, and the
// status projection resolves the precedence.
func (o *Order) IsCompleted() bool {
	return o.stage == Complete
}

// Apply executes a stage-transition command against the order.
//
// The transition fails without side effects when:
//   - the order is cancelled (ErrOrderIsCancelled)
//   - the transition is illegal from the current stage
//
// Completed orders reject every transition through the table itself, since
// Complete is no transition's source stage.
func (o *Order) Apply(tr Transition) error {
	if o.cancelledAt != nil {
		return ErrOrderIsCancelled
	}

	next, err := o.stage.Apply(tr)
	if err != nil {
		return err
	}

	o.stage = next
	return nil
}

// Cancel marks the order cancelled at the given time. The stage field is
// left untouched so "cancelled from Packing" stays reportable. Fails on
// completed and already-cancelled orders; cancellation is never cleared.
func (o *Order) Cancel(at time.Time) error {
	if o.cancelledAt != nil {
		return ErrOrderIsCancelled
	}
	if o.stage == Complete {
		return ErrOrderIsCompleted
	}

	o.cancelledAt = &at
	return nil
}

// SetDueDate schedules or reschedules the order. Rejected once the order is
// cancelled or complete.
func (o *Order) SetDueDate(due kernel.Date) error {
	if err := due.Validate(); err != nil {
		return err
	}
	if o.cancelledAt != nil {
		return ErrOrderIsCancelled
	}
	if o.stage == Complete {
		return ErrOrderIsCompleted
	}

	o.dueDate = &due
	return nil
}

// Assign sets the staff member responsible for the order. Reassignment is
// allowed while the order is live.
func (o *Order) Assign(assigneeID kernel.UUID) error {
	if err := assigneeID.Validate(); err != nil {
		return err
	}
	if o.cancelledAt != nil {
		return ErrOrderIsCancelled
	}
	if o.stage == Complete {
		return ErrOrderIsCompleted
	}

	o.assigneeID = &assigneeID
	return nil
}

// SetMarketplaceNumber records the external marketplace order number once
// ingestion learns it.
func (o *Order) SetMarketplaceNumber(number string) {
	o.marketplaceNumber = number
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStore(store Store) error {
	if err := store.Validate(); err != nil {
		return err
	}
	o.store = store
	return nil
}

func (o *Order) setStage(stage Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	o.stage = stage
	return nil
}
