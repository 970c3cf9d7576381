package services_test

import (
	"fmt"
	"testing"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueProjector_DeriveStatus(t *testing.T) {
	projector := services.NewQueueProjector()
	cancelled := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("cancellation wins over every stage", func(t *testing.T) {
		for _, stage := range []order.Stage{
			order.Filling, order.Covering, order.Decorating, order.Packing, order.Complete,
		} {
			t.Run(stage.String(), func(t *testing.T) {
				status := projector.DeriveStatus(stage, &cancelled)
				assert.Equal(t, services.StatusCancelled, status)
			})
		}
	})

	t.Run("cancellation beats Complete from disordered writes", func(t *testing.T) {
		status := projector.DeriveStatus(order.Complete, &cancelled)

		assert.Equal(t, services.StatusCancelled, status, "cancelled must win, not completed")
	})

	t.Run("complete stage without cancellation is completed", func(t *testing.T) {
		assert.Equal(t, services.StatusCompleted, projector.DeriveStatus(order.Complete, nil))
	})

	t.Run("everything else is in production", func(t *testing.T) {
		for _, stage := range []order.Stage{order.Filling, order.Covering, order.Decorating, order.Packing} {
			assert.Equal(t, services.StatusInProduction, projector.DeriveStatus(stage, nil))
		}
	})
}

func TestQueueProjector_DerivePriority(t *testing.T) {
	projector := services.NewQueueProjector()
	today := kernel.NewDate(2024, time.June, 10)

	t.Run("undefined without a due date", func(t *testing.T) {
		priority, ok := projector.DerivePriority(nil, today)

		assert.False(t, ok)
		assert.Empty(t, priority)
	})

	t.Run("tier per day delta", func(t *testing.T) {
		testCases := []struct {
			deltaDays int
			expected  services.Priority
		}{
			{-5, services.PriorityHigh}, // overdue
			{0, services.PriorityHigh},  // due today
			{1, services.PriorityHigh},  // due tomorrow
			{2, services.PriorityMedium},
			{3, services.PriorityMedium},
			{4, services.PriorityLow},
			{10, services.PriorityLow},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("delta %d", tc.deltaDays), func(t *testing.T) {
				due := today.AddDays(tc.deltaDays)

				priority, ok := projector.DerivePriority(&due, today)

				require.True(t, ok)
				assert.Equal(t, tc.expected, priority)
			})
		}
	})

	t.Run("never rises as the due date recedes", func(t *testing.T) {
		rank := map[services.Priority]int{
			services.PriorityHigh:   3,
			services.PriorityMedium: 2,
			services.PriorityLow:    1,
		}

		previous := rank[services.PriorityHigh]
		for delta := -3; delta <= 14; delta++ {
			due := today.AddDays(delta)
			priority, ok := projector.DerivePriority(&due, today)
			require.True(t, ok)

			assert.LessOrEqual(t, rank[priority], previous, "delta %d", delta)
			previous = rank[priority]
		}
	})
}

func TestQueueProjector_Project(t *testing.T) {
	projector := services.NewQueueProjector()
	today := kernel.NewDate(2024, time.June, 10)

	baseSnapshot := func() services.OrderSnapshot {
		due := today.AddDays(5)
		return services.OrderSnapshot{
			ID:                kernel.NewUUID(),
			Store:             "riverside",
			Stage:             "Decorating",
			DueDate:           &due,
			DeliveryMethod:    "Delivery",
			Number:            "CB-1001",
			MarketplaceNumber: "MKT-77",
		}
	}

	t.Run("projects a fully populated row", func(t *testing.T) {
		snap := baseSnapshot()

		item := projector.Project(snap, today)

		assert.Equal(t, "CB-1001", item.Number)
		assert.Equal(t, order.StoreRiverside, item.Store)
		assert.Equal(t, order.Decorating, item.Stage)
		assert.Equal(t, order.MethodDelivery, item.DeliveryMethod)
		assert.Equal(t, services.StatusInProduction, item.Status)
		assert.Equal(t, services.PriorityLow, item.Priority)
		assert.False(t, item.NeedsAttention)
	})

	t.Run("order number falls back through marketplace number to id", func(t *testing.T) {
		snap := baseSnapshot()
		snap.Number = ""
		assert.Equal(t, "MKT-77", projector.Project(snap, today).Number)

		snap.MarketplaceNumber = ""
		assert.Equal(t, snap.ID.String(), projector.Project(snap, today).Number)
	})

	t.Run("unrecognized stage displays as Filling", func(t *testing.T) {
		snap := baseSnapshot()
		snap.Stage = "Proofing"

		item := projector.Project(snap, today)

		assert.Equal(t, order.Filling, item.Stage)
		assert.Equal(t, services.StatusInProduction, item.Status)
	})

	t.Run("unrecognized store normalizes to the default", func(t *testing.T) {
		snap := baseSnapshot()
		snap.Store = "warehouse-9"

		assert.Equal(t, order.DefaultStore, projector.Project(snap, today).Store)
	})

	t.Run("free-text delivery method is never guessed", func(t *testing.T) {
		snap := baseSnapshot()
		snap.DeliveryMethod = "send it over"

		assert.Equal(t, order.MethodUnknown, projector.Project(snap, today).DeliveryMethod)
	})

	t.Run("missing due date flags attention even when Complete", func(t *testing.T) {
		snap := baseSnapshot()
		snap.Stage = "Complete"
		snap.DueDate = nil

		item := projector.Project(snap, today)

		assert.True(t, item.NeedsAttention)
		assert.Empty(t, item.Priority, "priority undefined without a due date")
		assert.Equal(t, services.StatusCompleted, item.Status)
	})

	t.Run("cancelled and complete projects as cancelled", func(t *testing.T) {
		snap := baseSnapshot()
		snap.Stage = "Complete"
		cancelledAt := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		snap.CancelledAt = &cancelledAt

		assert.Equal(t, services.StatusCancelled, projector.Project(snap, today).Status)
	})
}

func TestQueueProjector_ProjectOrder(t *testing.T) {
	projector := services.NewQueueProjector()
	today := kernel.NewDate(2024, time.June, 10)

	o, err := order.NewOrder(kernel.NewUUID(), order.StoreHighStreet, "pickup", "CB-3001")
	require.NoError(t, err)
	require.NoError(t, o.SetDueDate(today.AddDays(1)))

	item := projector.ProjectOrder(o, today)

	assert.Equal(t, "CB-3001", item.Number)
	assert.Equal(t, order.MethodPickup, item.DeliveryMethod)
	assert.Equal(t, services.StatusInProduction, item.Status)
	assert.Equal(t, services.PriorityHigh, item.Priority)
	assert.False(t, item.NeedsAttention)
}
