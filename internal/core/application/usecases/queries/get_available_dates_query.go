package queries

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/schedule"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	ErrGetAvailableDatesQueryIsNotConstructed = errors.New(
		"GetAvailableDatesQuery must be created via NewGetAvailableDatesQuery constructor",
	)
)

// GetAvailableDatesQuery computes scheduling availability for one store:
// the next valid due date plus a list of upcoming available days for date
// pickers.
type GetAvailableDatesQuery struct {
	store order.Store
	count int

	guard guard.ConstructorGuard
}

// NewGetAvailableDatesQuery creates an availability query. The count caps
// the enumerated picker dates and must lie within the bounded scan window.
func NewGetAvailableDatesQuery(store string, count int) (GetAvailableDatesQuery, error) {
	if count < 1 || count > schedule.MaxScanAttempts {
		return GetAvailableDatesQuery{}, errs.NewValueIsOutOfRangeError(
			"count", count, 1, schedule.MaxScanAttempts)
	}

	return GetAvailableDatesQuery{
		store: order.NormalizeStore(store),
		count: count,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDatesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDatesQueryIsNotConstructed)
}

// Store returns the normalized store to compute availability for.
func (q GetAvailableDatesQuery) Store() order.Store {
	return q.store
}

// Count returns the maximum number of picker dates to enumerate.
func (q GetAvailableDatesQuery) Count() int {
	return q.count
}

// GetAvailableDatesQueryResponse carries the availability computation
// result. AvailableDates is strictly increasing and may be shorter than the
// requested count when the bounded scan runs out first.
type GetAvailableDatesQueryResponse struct {
	NextDueDate    kernel.Date
	AvailableDates []kernel.Date
}
