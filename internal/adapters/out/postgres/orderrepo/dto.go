// Package orderrepo persists order aggregates with GORM, mapping between
// the domain model and the relational representation.
package orderrepo

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order aggregate. The stage is stored
// as its wire string and the due date as a YYYY-MM-DD string; both are
// parsed strictly on the write path and leniently only in the queue
// projection.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Store             string     `gorm:"index"`
	Stage             string     `gorm:"index"`
	DueDate           *string    `gorm:"type:varchar(10)"`
	CancelledAt       *time.Time `gorm:"index"`
	AssigneeID        *uuid.UUID `gorm:"type:uuid"`
	DeliveryMethod    string
	Number            string
	MarketplaceNumber string
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var dueDate *string
	if d := aggregate.DueDate(); d != nil {
		raw := d.String()
		dueDate = &raw
	}

	var assigneeID *uuid.UUID
	if id := aggregate.Assignee(); id != nil {
		raw := id.Bytes()
		assigneeID = &raw
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		Store:             aggregate.Store().String(),
		Stage:             aggregate.Stage().String(),
		DueDate:           dueDate,
		CancelledAt:       aggregate.CancelledAt(),
		AssigneeID:        assigneeID,
		DeliveryMethod:    aggregate.DeliveryMethod(),
		Number:            aggregate.Number(),
		MarketplaceNumber: aggregate.MarketplaceNumber(),
	}
}

// toDomain reconstructs the order aggregate from a database row using
// RestoreOrder. Rows written through this package always parse; a row that
// does not is corrupt and surfaces the parse error.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	stage, err := order.StageFromString(dto.Stage)
	if err != nil {
		return nil, err
	}

	var dueDate *kernel.Date
	if dto.DueDate != nil {
		d, dateErr := kernel.DateFromString(*dto.DueDate)
		if dateErr != nil {
			return nil, dateErr
		}
		dueDate = &d
	}

	var assigneeID *kernel.UUID
	if dto.AssigneeID != nil {
		aID, assigneeErr := kernel.UUIDFromBytes((*dto.AssigneeID)[:])
		if assigneeErr != nil {
			return nil, assigneeErr
		}
		assigneeID = &aID
	}

	return order.RestoreOrder(
		id,
		order.Store(dto.Store),
		stage,
		dueDate,
		dto.CancelledAt,
		assigneeID,
		dto.DeliveryMethod,
		dto.Number,
		dto.MarketplaceNumber,
	)
}
