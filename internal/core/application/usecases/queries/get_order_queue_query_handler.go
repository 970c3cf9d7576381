package queries

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueueQueryHandler reads order rows straight from the database and
// runs them through the queue projector. Every read recomputes the
// projection; nothing derived is persisted.
type GetOrderQueueQueryHandler struct {
	db        *gorm.DB
	projector services.QueueProjector

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewGetOrderQueueQueryHandler creates a handler for queue queries.
func NewGetOrderQueueQueryHandler(db *gorm.DB) GetOrderQueueQueryHandler {
	return GetOrderQueueQueryHandler{
		db:        db,
		projector: services.NewQueueProjector(),
		now:       time.Now,
	}
}

// Handle executes the queue query. Rows come back ordered by due date with
// unscheduled orders first, so needs-attention work leads the queue, then
// by number for a stable display order.
//
// The row scan is deliberately lenient: the projector owns every fallback
// for dirty stage, store, and delivery text, and a malformed due-date
// string degrades to "no due date" instead of failing the whole queue.
func (h GetOrderQueueQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQueueQuery,
) ([]services.QueueItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			store,
			stage,
			due_date,
			cancelled_at,
			assignee_id,
			delivery_method,
			number,
			marketplace_number
		FROM orders
	`
	args := make([]any, 0, 1)
	if query.HasStoreFilter() {
		sql += ` WHERE store = ?`
		args = append(args, query.Store().String())
	}
	sql += ` ORDER BY due_date ASC NULLS FIRST, number ASC, id ASC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	today := kernel.DateFromTime(h.now())
	items := make([]services.QueueItem, 0)

	for rows.Next() {
		var (
			id            uuid.UUID
			store         string
			stage         string
			dueDateRaw    *string
			cancelledAt   *time.Time
			assigneeIDRaw *uuid.UUID
			delivery      string
			number        string
			marketplace   string
		)

		err = rows.Scan(
			&id,
			&store,
			&stage,
			&dueDateRaw,
			&cancelledAt,
			&assigneeIDRaw,
			&delivery,
			&number,
			&marketplace,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		var dueDate *kernel.Date
		if dueDateRaw != nil {
			if d, dateErr := kernel.DateFromString(*dueDateRaw); dateErr == nil {
				dueDate = &d
			}
		}

		var assigneeID *kernel.UUID
		if assigneeIDRaw != nil {
			if aID, aErr := kernel.UUIDFromBytes((*assigneeIDRaw)[:]); aErr == nil {
				assigneeID = &aID
			}
		}

		items = append(items, h.projector.Project(services.OrderSnapshot{
			ID:                orderID,
			Store:             store,
			Stage:             stage,
			DueDate:           dueDate,
			CancelledAt:       cancelledAt,
			AssigneeID:        assigneeID,
			DeliveryMethod:    delivery,
			Number:            number,
			MarketplaceNumber: marketplace,
		}, today))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
