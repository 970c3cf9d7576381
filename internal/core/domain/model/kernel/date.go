package kernel

import (
	"fmt"
	"time"

	"bakery/internal/pkg/errs"
)

// DateLayout is the canonical wire and storage form of a calendar day.
const DateLayout = "2006-01-02"

// ErrDateIsNotConstructed is returned when validating a zero-value Date.
// Dates must be created via NewDate, DateFromString, or DateFromTime.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError(
	"date must be created via NewDate, DateFromString, or DateFromTime")

// Date is an immutable calendar day with no time-of-day component.
// Internally it is pinned to midnight UTC, so day arithmetic and equality
// are stable regardless of the time zone a timestamp originated in.
//
// Weekday indexing follows the bakery calendar convention: Monday is 0 and
// Sunday is 6, matching the allowed-weekday vector in store settings.
//
// Example:
//
//	day, err := kernel.DateFromString("2024-12-24")
//	if err != nil {
//	    // handle parse error
//	}
//	fmt.Println(day.WeekdayIndex()) // 1 (Tuesday)
//	fmt.Println(day.AddDays(2))     // 2024-12-26
type Date struct {
	t time.Time
}

// NewDate creates a Date from a year, month, and day. Out-of-range values
// are normalized the way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateFromString parses a YYYY-MM-DD calendar date.
func DateFromString(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q is not a YYYY-MM-DD date", s))
	}
	return Date{t: t}, nil
}

// DateFromTime truncates a timestamp to the calendar day it falls on in the
// timestamp's own location, then normalizes to UTC. A 23:30 local timestamp
// therefore keeps its local date rather than shifting to the UTC one.
func DateFromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// AddDays returns the date n calendar days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the whole calendar days from d to other. Negative when
// other is in the past. Truncation, not rounding: both ends are midnights,
// so the result is exact.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

// WeekdayIndex maps Go's Sunday=0 weekday onto the store-calendar order,
// Monday=0 .. Sunday=6.
func (d Date) WeekdayIndex() int {
	return (int(d.t.Weekday()) + 6) % 7
}

// Before reports whether d falls on an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// IsEqual reports whether two dates are the same calendar day.
func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

// IsZero reports whether the date is the uninitialized zero value.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the date as midnight UTC, for persistence mapping.
func (d Date) Time() time.Time {
	return d.t
}

// String returns the YYYY-MM-DD form.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Validate returns ErrDateIsNotConstructed for a zero-value Date.
func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}
