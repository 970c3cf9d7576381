// Package settingsrepo persists per-store delivery calendar settings with
// GORM, storing the weekday vector and blackout set as postgres arrays.
package settingsrepo

import (
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/schedule"

	"github.com/lib/pq"
)

// SettingsDTO is the database row for one store's calendar settings. The
// lead time stays the raw text expression; the weekday vector is a 7-entry
// boolean array indexed Monday=0.
type SettingsDTO struct {
	Store           string         `gorm:"primaryKey"`
	DefaultLeadTime string         `gorm:"type:varchar(32)"`
	AllowedWeekdays pq.BoolArray   `gorm:"type:boolean[]"`
	BlackoutDates   pq.StringArray `gorm:"type:text[]"`
}

// TableName overrides GORM's default naming to use "store_settings".
func (SettingsDTO) TableName() string {
	return "store_settings"
}

// fromDomain converts calendar settings to their database representation.
func fromDomain(store string, settings schedule.CalendarSettings) SettingsDTO {
	weekdays := settings.AllowedWeekdays()

	blackout := settings.BlackoutDates()
	blackoutRaw := make(pq.StringArray, 0, len(blackout))
	for _, d := range blackout {
		blackoutRaw = append(blackoutRaw, d.String())
	}

	return SettingsDTO{
		Store:           store,
		DefaultLeadTime: settings.DefaultLeadTime(),
		AllowedWeekdays: weekdays[:],
		BlackoutDates:   blackoutRaw,
	}
}

// toDomain reconstructs calendar settings from a database row. The row is
// external configuration: a short weekday array leaves the missing days
// disallowed, and unparseable blackout entries are dropped rather than
// failing the read.
func toDomain(dto SettingsDTO) (schedule.CalendarSettings, error) {
	var weekdays [7]bool
	for i := 0; i < len(weekdays) && i < len(dto.AllowedWeekdays); i++ {
		weekdays[i] = dto.AllowedWeekdays[i]
	}

	blackout := make([]kernel.Date, 0, len(dto.BlackoutDates))
	for _, raw := range dto.BlackoutDates {
		d, err := kernel.DateFromString(raw)
		if err != nil {
			continue
		}
		blackout = append(blackout, d)
	}

	return schedule.NewCalendarSettings(dto.DefaultLeadTime, weekdays, blackout)
}
