package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a request to cancel an order. Cancellation
// is not a stage transition: it stamps a timestamp on the order and leaves
// the stage where it was. Store and notes ride along like on
// TransitionOrderCommand and do not affect the outcome.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	store   order.Store
	notes   string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID kernel.UUID, store string, notes string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		store: order.NormalizeStore(store),
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Store returns the normalized store the command was issued from.
func (c CancelOrderCommand) Store() order.Store {
	return c.store
}

// Notes returns the optional operator notes.
func (c CancelOrderCommand) Notes() string {
	return c.notes
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
