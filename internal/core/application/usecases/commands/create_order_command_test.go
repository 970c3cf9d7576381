package commands_test

import (
	"testing"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, "riverside", "Delivery", "CB-1001")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.StoreRiverside, cmd.Store())
	assert.Equal(t, "Delivery", cmd.DeliveryMethod())
	assert.Equal(t, "CB-1001", cmd.Number())
}

func TestNewCreateOrderCommand_UnknownStoreFallsBack(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, "pop-up stall", "Pickup", "CB-1002")
	require.NoError(t, err)
	assert.Equal(t, order.DefaultStore, cmd.Store())
}

func TestNewCreateOrderCommand_EmptyNumberAllowed(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, "high_street", "", "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Number())
	assert.Empty(t, cmd.DeliveryMethod())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, "riverside", "Delivery", "CB-1001")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
