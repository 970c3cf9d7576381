package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
)

// TransitionOrderCommand represents a request to move an order one step
// through the production pipeline. The transition name is validated at
// construction; whether it is legal from the order's current stage is
// decided by the aggregate inside the handler.
//
// The store and notes fields ride along from the command surface: the store
// names the location the operator was working in, the notes are optional
// free text. Neither affects the transition outcome; the order is located
// by its globally unique id.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	store      order.Store
	transition order.Transition
	notes      string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to apply a stage transition.
func NewTransitionOrderCommand(orderID kernel.UUID, store string, transition order.Transition, notes string) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		store: order.NormalizeStore(store),
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTransition(transition),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Store returns the normalized store the command was issued from.
func (c TransitionOrderCommand) Store() order.Store {
	return c.store
}

// Transition returns the stage transition to apply.
func (c TransitionOrderCommand) Transition() order.Transition {
	return c.transition
}

// Notes returns the optional operator notes.
func (c TransitionOrderCommand) Notes() string {
	return c.notes
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTransition(transition order.Transition) error {
	if err := transition.Validate(); err != nil {
		return err
	}

	c.transition = transition
	return nil
}
