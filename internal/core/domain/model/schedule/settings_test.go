package schedule_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allWeekdays = [7]bool{true, true, true, true, true, true, true}

func mustSettings(t *testing.T, leadTime string, weekdays [7]bool, blackout ...kernel.Date) schedule.CalendarSettings {
	t.Helper()
	settings, err := schedule.NewCalendarSettings(leadTime, weekdays, blackout)
	require.NoError(t, err)
	return settings
}

func TestNewCalendarSettings(t *testing.T) {
	t.Run("should construct with blackout dates", func(t *testing.T) {
		christmas := kernel.NewDate(2024, time.December, 25)

		settings := mustSettings(t, "+1 day", allWeekdays, christmas, christmas)

		require.NoError(t, settings.Validate())
		assert.Equal(t, "+1 day", settings.DefaultLeadTime())
		assert.Len(t, settings.BlackoutDates(), 1, "duplicates collapse")
	})

	t.Run("should reject a zero blackout date", func(t *testing.T) {
		_, err := schedule.NewCalendarSettings("+1 day", allWeekdays, []kernel.Date{{}})

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var settings schedule.CalendarSettings

		require.ErrorIs(t, settings.Validate(), schedule.ErrCalendarSettingsAreNotConstructed)
	})
}

func TestDefaultCalendarSettings(t *testing.T) {
	settings := schedule.DefaultCalendarSettings()

	require.NoError(t, settings.Validate())
	assert.Equal(t, 2, settings.LeadTimeDays())
	assert.Equal(t, [7]bool{true, true, true, true, true, true, false}, settings.AllowedWeekdays())
	assert.Empty(t, settings.BlackoutDates())
}

func TestCalendarSettings_LeadTimeDays(t *testing.T) {
	testCases := []struct {
		expression string
		expected   int
	}{
		{"today", 0},
		{"Today", 0},
		{"+1 day", 1},
		{"+2 days", 2},
		{"+10 days", 10},
		{"+3day", 3},
		{"", 0},
		{"next week", 0},
		{"someday", 0},
		{"+x days", 0},
	}

	for _, tc := range testCases {
		t.Run("expression "+tc.expression, func(t *testing.T) {
			settings := mustSettings(t, tc.expression, allWeekdays)

			assert.Equal(t, tc.expected, settings.LeadTimeDays())
		})
	}
}

func TestCalendarSettings_BlackoutDates(t *testing.T) {
	t.Run("returned sorted", func(t *testing.T) {
		settings := mustSettings(t, "today", allWeekdays,
			kernel.NewDate(2024, time.December, 31),
			kernel.NewDate(2024, time.December, 25),
			kernel.NewDate(2025, time.January, 1),
		)

		dates := settings.BlackoutDates()

		require.Len(t, dates, 3)
		assert.Equal(t, "2024-12-25", dates[0].String())
		assert.Equal(t, "2024-12-31", dates[1].String())
		assert.Equal(t, "2025-01-01", dates[2].String())
	})
}
