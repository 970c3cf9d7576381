package schedule

import "bakery/internal/core/domain/model/kernel"

// MaxScanAttempts caps every forward date scan. Settings are free-form
// external configuration: an all-false weekday vector or an unbounded
// blackout range must degrade to a bounded, deterministic result instead
// of an infinite loop.
const MaxScanAttempts = 30

// IsDateAvailable reports whether a due date may fall on the given day:
// its weekday must be allowed and the day must not be blacked out.
// Pure and side-effect free.
func (s CalendarSettings) IsDateAvailable(date kernel.Date) bool {
	if !s.allowedWeekdays[date.WeekdayIndex()] {
		return false
	}
	_, blackedOut := s.blackoutDates[date.String()]
	return !blackedOut
}

// CalculateDueDate computes the next valid due date for an order placed on
// startDate.
//
// The candidate is startDate plus the default lead time. From there the
// scan moves forward one day at a time until an available day is found or
// MaxScanAttempts days have been checked. An exhausted scan returns the
// unconstrained candidate: the calendar constraint is best-effort, and a
// misconfigured calendar must never make scheduling hang or fail.
func (s CalendarSettings) CalculateDueDate(startDate kernel.Date) kernel.Date {
	candidate := startDate.AddDays(s.LeadTimeDays())

	date := candidate
	for attempt := 0; attempt < MaxScanAttempts; attempt++ {
		if s.IsDateAvailable(date) {
			return date
		}
		date = date.AddDays(1)
	}

	return candidate
}

// NextAvailableDates enumerates up to count available days for date
// pickers, scanning forward from startDate itself. The lead-time offset is
// intentionally not applied here, unlike CalculateDueDate.
//
// The result is strictly increasing and duplicate-free; it is shorter than
// count only when MaxScanAttempts days were checked first.
func (s CalendarSettings) NextAvailableDates(count int, startDate kernel.Date) []kernel.Date {
	dates := make([]kernel.Date, 0, count)

	date := startDate
	for attempt := 0; attempt < MaxScanAttempts && len(dates) < count; attempt++ {
		if s.IsDateAvailable(date) {
			dates = append(dates, date)
		}
		date = date.AddDays(1)
	}

	return dates
}
