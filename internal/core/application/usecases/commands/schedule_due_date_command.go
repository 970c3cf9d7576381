package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var (
	ErrScheduleDueDateCommandIsNotConstructed = errors.New(
		"ScheduleDueDateCommand must be created via NewScheduleDueDateCommand constructor",
	)
)

// ScheduleDueDateCommand represents a request to compute and attach a due
// date to an order, based on the store's delivery calendar.
type ScheduleDueDateCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewScheduleDueDateCommand creates a command to schedule an order's due
// date.
func NewScheduleDueDateCommand(orderID kernel.UUID) (ScheduleDueDateCommand, error) {
	cmd := ScheduleDueDateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ScheduleDueDateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleDueDateCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDueDateCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to schedule.
func (c ScheduleDueDateCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ScheduleDueDateCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
