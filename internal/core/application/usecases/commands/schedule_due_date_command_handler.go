package commands

import (
	"context"
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/schedule"
	"bakery/internal/pkg/errs"
)

// ScheduleDueDateCommandHandler computes a due date for an order from its
// store's delivery calendar and attaches it to the aggregate. Stores
// without a stored calendar use the built-in default settings.
type ScheduleDueDateCommandHandler struct {
	uowFactory UoWFactory

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewScheduleDueDateCommandHandler creates a handler for due-date
// scheduling.
func NewScheduleDueDateCommandHandler(uowFactory UoWFactory) ScheduleDueDateCommandHandler {
	return ScheduleDueDateCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle loads the order and its store's calendar, computes the next valid
// due date starting from today, and persists the scheduled order.
func (h *ScheduleDueDateCommandHandler) Handle(ctx context.Context, cmd ScheduleDueDateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	settings, err := uow.StoreSettingsRepository().Get(ctx, aggregate.Store())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		settings = schedule.DefaultCalendarSettings()
	}

	today := kernel.DateFromTime(h.now())
	if err = aggregate.SetDueDate(settings.CalculateDueDate(today)); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
