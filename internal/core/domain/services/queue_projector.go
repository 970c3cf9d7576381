package services

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// Status is an order's user-facing operational status, derived from the
// stage and the cancellation marker, never stored.
type Status string

const (
	// StatusCancelled means the cancellation timestamp is set. It wins over
	// everything else, including a Complete stage.
	StatusCancelled Status = "cancelled"

	// StatusInProduction covers every live order before Complete.
	StatusInProduction Status = "in_production"

	// StatusCompleted means the order finished the pipeline uncancelled.
	StatusCompleted Status = "completed"
)

// Priority is the urgency tier derived from an order's due date.
type Priority string

const (
	// PriorityHigh covers overdue orders and anything due within a day.
	PriorityHigh Priority = "High"

	// PriorityMedium covers orders due in two or three days.
	PriorityMedium Priority = "Medium"

	// PriorityLow covers everything further out.
	PriorityLow Priority = "Low"
)

// Priority thresholds in calendar days. Fixed business constants, not
// per-store configuration.
const (
	highPriorityMaxDays   = 1
	mediumPriorityMaxDays = 3
)

// OrderSnapshot is a raw persisted order row as the backing store returns
// it: strings unvalidated, optional fields nil. The projector owns every
// normalization and fallback rule, so loosely validated upstream data never
// leaks into what supervisors see.
type OrderSnapshot struct {
	ID                kernel.UUID
	Store             string
	Stage             string
	DueDate           *kernel.Date
	CancelledAt       *time.Time
	AssigneeID        *kernel.UUID
	DeliveryMethod    string
	Number            string
	MarketplaceNumber string
}

// QueueItem is the UI-ready projection of one order. It is never persisted;
// it is recomputed from the current snapshot on every read.
type QueueItem struct {
	OrderID        kernel.UUID
	Number         string
	Store          order.Store
	Stage          order.Stage
	DeliveryMethod order.DeliveryMethod
	AssigneeID     *kernel.UUID
	DueDate        *kernel.Date
	Status         Status
	Priority       Priority // empty when no due date exists
	NeedsAttention bool
}

// QueueProjector derives the operational status, priority tier, and queue
// presentation of orders. It is stateless, pure, and safe for concurrent
// use; identical inputs always produce identical outputs, so callers
// recompute after every refetch without cache-invalidation hazards.
type QueueProjector struct{}

// NewQueueProjector creates a QueueProjector.
func NewQueueProjector() QueueProjector {
	return QueueProjector{}
}

// DeriveStatus projects a stage and cancellation marker onto a Status.
//
// Precedence: cancellation first, even when the stage is Complete, because
// disordered external writes can mark an order complete and cancelled; then
// Complete, then in production.
func (QueueProjector) DeriveStatus(stage order.Stage, cancelledAt *time.Time) Status {
	switch {
	case cancelledAt != nil:
		return StatusCancelled
	case stage == order.Complete:
		return StatusCompleted
	default:
		return StatusInProduction
	}
}

// DerivePriority projects a due date onto a Priority tier.
//
// Returns ok=false when no due date exists: the tier is undefined and the
// caller surfaces needs-attention instead of guessing. The tiers are
// monotonic in the day delta: priority never rises as the due date moves
// further out.
//
//	delta <= 1 -> High (overdue, today, tomorrow)
//	delta <= 3 -> Medium
//	otherwise  -> Low
func (QueueProjector) DerivePriority(dueDate *kernel.Date, today kernel.Date) (Priority, bool) {
	if dueDate == nil {
		return "", false
	}

	deltaDays := today.DaysUntil(*dueDate)
	switch {
	case deltaDays <= highPriorityMaxDays:
		return PriorityHigh, true
	case deltaDays <= mediumPriorityMaxDays:
		return PriorityMedium, true
	default:
		return PriorityLow, true
	}
}

// Project assembles the queue row for one raw order row.
//
// Normalization rules:
//   - order number: first non-empty of number, marketplace number, row id
//   - stage: unrecognized text displays as Filling, isolating the UI from
//     upstream data-quality issues
//   - store: unrecognized values become the default store
//   - delivery method: exact trimmed match or "unknown"
//   - needsAttention: set exactly when the due date is absent, regardless
//     of stage; even a Complete order with no date is an anomaly worth
//     surfacing
func (p QueueProjector) Project(snap OrderSnapshot, today kernel.Date) QueueItem {
	stage, err := order.StageFromString(snap.Stage)
	if err != nil {
		stage = order.Filling
	}

	number := snap.Number
	if number == "" {
		number = snap.MarketplaceNumber
	}
	if number == "" {
		number = snap.ID.String()
	}

	priority, _ := p.DerivePriority(snap.DueDate, today)

	return QueueItem{
		OrderID:        snap.ID,
		Number:         number,
		Store:          order.NormalizeStore(snap.Store),
		Stage:          stage,
		DeliveryMethod: order.NormalizeDeliveryMethod(snap.DeliveryMethod),
		AssigneeID:     snap.AssigneeID,
		DueDate:        snap.DueDate,
		Status:         p.DeriveStatus(stage, snap.CancelledAt),
		Priority:       priority,
		NeedsAttention: snap.DueDate == nil,
	}
}

// ProjectOrder projects a fully constructed domain order. Used where the
// aggregate is already in hand; Project remains the entry point for raw
// rows.
func (p QueueProjector) ProjectOrder(o *order.Order, today kernel.Date) QueueItem {
	return p.Project(OrderSnapshot{
		ID:                o.ID(),
		Store:             o.Store().String(),
		Stage:             o.Stage().String(),
		DueDate:           o.DueDate(),
		CancelledAt:       o.CancelledAt(),
		AssigneeID:        o.Assignee(),
		DeliveryMethod:    o.DeliveryMethod(),
		Number:            o.Number(),
		MarketplaceNumber: o.MarketplaceNumber(),
	}, today)
}
