package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to ingest a new bakery order into
// the production pipeline. The store and delivery-method fields arrive as
// loosely validated free text: the store normalizes to the known set here,
// while the delivery text is kept raw for the projection layer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "riverside", "Delivery", "CB-1001")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	store          order.Store
	deliveryMethod string
	number         string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to ingest a new order. The order
// ID must be valid; an unrecognized store falls back to the default store
// rather than failing, and the number may be empty (projections fall back
// to other identifiers).
func NewCreateOrderCommand(orderID kernel.UUID, store string, deliveryMethod string, number string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		store:          order.NormalizeStore(store),
		deliveryMethod: deliveryMethod,
		number:         number,
		guard:          guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Store returns the normalized store the order belongs to.
func (c CreateOrderCommand) Store() order.Store {
	return c.store
}

// DeliveryMethod returns the raw delivery text as received.
func (c CreateOrderCommand) DeliveryMethod() string {
	return c.deliveryMethod
}

// Number returns the human-readable order number, possibly empty.
func (c CreateOrderCommand) Number() string {
	return c.number
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
