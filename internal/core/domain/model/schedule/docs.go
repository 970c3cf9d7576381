// Package schedule provides the per-store delivery calendar and the
// due-date availability engine.
//
// CalendarSettings is a value object holding a store's default lead time,
// allowed-weekday vector (Monday=0 .. Sunday=6), and blackout dates. The
// engine on top of it answers three questions:
//   - is a given calendar day available at all (IsDateAvailable)
//   - what is the next valid due date from a start day (CalculateDueDate)
//   - which are the next N valid days for a date picker (NextAvailableDates)
//
// Settings are free-form external configuration, so the engine degrades
// gracefully instead of failing: unparseable lead times count as zero days,
// and both scans are bounded by MaxScanAttempts so an unsatisfiable
// calendar (every weekday disabled, an unbroken blackout range) yields a
// deterministic best-effort result rather than an error or an endless loop.
//
// Everything here is pure and referentially transparent; callers recompute
// freely on every poll.
package schedule
