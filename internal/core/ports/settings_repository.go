package ports

import (
	"context"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/schedule"
)

// StoreSettingsRepository defines the persistence contract for per-store
// calendar settings.
type StoreSettingsRepository interface {
	// Get retrieves the calendar settings for a store. Returns an
	// errs.ObjectNotFoundError when the store has no stored document;
	// callers fall back to schedule.DefaultCalendarSettings.
	Get(ctx context.Context, store order.Store) (schedule.CalendarSettings, error)

	// Save creates or replaces the calendar settings for a store.
	Save(ctx context.Context, store order.Store, settings schedule.CalendarSettings) error
}
