package schedule

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

// LeadTimeToday is the lead-time expression meaning "schedulable today".
const LeadTimeToday = "today"

// ErrCalendarSettingsAreNotConstructed is returned when validating settings
// not created via NewCalendarSettings or DefaultCalendarSettings.
var ErrCalendarSettingsAreNotConstructed = errs.NewValueIsRequiredError(
	"calendar settings must be created via NewCalendarSettings or DefaultCalendarSettings")

// leadTimePattern extracts the day count from "+N day" / "+N days"
// expressions. The sign and surrounding whitespace are optional.
var leadTimePattern = regexp.MustCompile(`\+?\s*(\d+)\s*day`)

// CalendarSettings is an immutable per-store delivery calendar.
//
// The allowed-weekday vector always has exactly 7 entries, indexed
// Monday=0 .. Sunday=6. Blackout membership is exact calendar-date
// equality on the YYYY-MM-DD form, never a datetime comparison.
//
// There is deliberately no package-level default instance: every caller
// receives an explicit value, and stores without a stored document get
// DefaultCalendarSettings().
type CalendarSettings struct {
	defaultLeadTime string
	allowedWeekdays [7]bool
	blackoutDates   map[string]struct{}

	guard guard.ConstructorGuard
}

// NewCalendarSettings creates settings from a lead-time expression, a
// 7-entry weekday vector, and a set of blackout dates. The lead-time text
// is stored as-is; parsing is lenient at use time, not construction time,
// because the expression originates from loosely validated configuration.
// Blackout dates must be constructed (non-zero); duplicates collapse.
func NewCalendarSettings(
	defaultLeadTime string,
	allowedWeekdays [7]bool,
	blackoutDates []kernel.Date,
) (CalendarSettings, error) {
	blackout := make(map[string]struct{}, len(blackoutDates))
	for _, d := range blackoutDates {
		if err := d.Validate(); err != nil {
			return CalendarSettings{}, err
		}
		blackout[d.String()] = struct{}{}
	}

	return CalendarSettings{
		defaultLeadTime: strings.TrimSpace(defaultLeadTime),
		allowedWeekdays: allowedWeekdays,
		blackoutDates:   blackout,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// DefaultCalendarSettings returns the fallback calendar used for stores
// with no stored settings document: two days of lead time, Monday through
// Saturday available, no blackout dates.
func DefaultCalendarSettings() CalendarSettings {
	settings, _ := NewCalendarSettings(
		"+2 days",
		[7]bool{true, true, true, true, true, true, false},
		nil,
	)
	return settings
}

// Validate ensures the settings were created through a constructor.
func (s CalendarSettings) Validate() error {
	return s.guard.Validate(ErrCalendarSettingsAreNotConstructed)
}

// DefaultLeadTime returns the raw lead-time expression.
func (s CalendarSettings) DefaultLeadTime() string {
	return s.defaultLeadTime
}

// AllowedWeekdays returns the weekday vector, Monday=0 .. Sunday=6.
func (s CalendarSettings) AllowedWeekdays() [7]bool {
	return s.allowedWeekdays
}

// BlackoutDates returns the blackout set as a sorted slice, for persistence
// and display.
func (s CalendarSettings) BlackoutDates() []kernel.Date {
	dates := make([]kernel.Date, 0, len(s.blackoutDates))
	for raw := range s.blackoutDates {
		// Entries were validated on construction; re-parse cannot fail.
		d, err := kernel.DateFromString(raw)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// LeadTimeDays parses the default lead-time expression into a day count.
//
// Recognized forms:
//   - "today" (case-insensitive) -> 0
//   - "+N day" / "+N days"       -> N
//
// Anything else falls back to 0 rather than failing: the expression is
// external configuration and a broken value must not block scheduling.
func (s CalendarSettings) LeadTimeDays() int {
	if strings.EqualFold(s.defaultLeadTime, LeadTimeToday) {
		return 0
	}

	match := leadTimePattern.FindStringSubmatch(s.defaultLeadTime)
	if match == nil {
		return 0
	}

	days, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return days
}
