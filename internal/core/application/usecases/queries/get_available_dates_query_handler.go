package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/schedule"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetAvailableDatesQueryHandler reads a store's calendar settings row and
// runs the availability engine over it. Stores with no settings row use the
// built-in default calendar, so availability always computes.
type GetAvailableDatesQueryHandler struct {
	db *gorm.DB

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewGetAvailableDatesQueryHandler creates a handler for availability
// queries.
func NewGetAvailableDatesQueryHandler(db *gorm.DB) GetAvailableDatesQueryHandler {
	return GetAvailableDatesQueryHandler{
		db:  db,
		now: time.Now,
	}
}

// Handle executes the availability query. The next due date applies the
// store's lead time; the enumerated picker dates scan from today without
// the lead-time offset.
func (h GetAvailableDatesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDatesQuery,
) (GetAvailableDatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAvailableDatesQueryResponse{}, err
	}

	settings, err := h.loadSettings(ctx, query.Store().String())
	if err != nil {
		return GetAvailableDatesQueryResponse{}, err
	}

	today := kernel.DateFromTime(h.now())
	return GetAvailableDatesQueryResponse{
		NextDueDate:    settings.CalculateDueDate(today),
		AvailableDates: settings.NextAvailableDates(query.Count(), today),
	}, nil
}

// loadSettings reads the raw settings row for a store, falling back to the
// default calendar when no row exists. Row contents are external
// configuration and map leniently: missing weekday entries stay disallowed,
// unparseable blackout entries are dropped.
func (h GetAvailableDatesQueryHandler) loadSettings(ctx context.Context, store string) (schedule.CalendarSettings, error) {
	var (
		leadTime    string
		weekdaysRaw pq.BoolArray
		blackoutRaw pq.StringArray
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			default_lead_time,
			allowed_weekdays,
			blackout_dates
		FROM store_settings
		WHERE store = ?
	`, store).Row()

	err := row.Scan(&leadTime, &weekdaysRaw, &blackoutRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return schedule.DefaultCalendarSettings(), nil
	}
	if err != nil {
		return schedule.CalendarSettings{}, err
	}

	var weekdays [7]bool
	for i := 0; i < len(weekdays) && i < len(weekdaysRaw); i++ {
		weekdays[i] = weekdaysRaw[i]
	}

	blackout := make([]kernel.Date, 0, len(blackoutRaw))
	for _, raw := range blackoutRaw {
		d, dateErr := kernel.DateFromString(raw)
		if dateErr != nil {
			continue
		}
		blackout = append(blackout, d)
	}

	return schedule.NewCalendarSettings(leadTime, weekdays, blackout)
}
