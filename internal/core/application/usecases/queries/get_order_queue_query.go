// Package queries contains read-side operations in the CQRS architecture.
// Queries bypass the domain repositories and read the database directly,
// projecting raw rows into UI-ready shapes.
package queries

import (
	"errors"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var (
	ErrGetOrderQueueQueryIsNotConstructed = errors.New(
		"GetOrderQueueQuery must be created via NewGetOrderQueueQuery constructor",
	)
)

// GetOrderQueueQuery retrieves the production queue: every order projected
// with derived status, priority, and needs-attention flag. An optional
// store filter narrows the queue to one location.
type GetOrderQueueQuery struct {
	store     order.Store
	hasFilter bool

	guard guard.ConstructorGuard
}

// NewGetOrderQueueQuery creates a queue query over all stores.
func NewGetOrderQueueQuery() GetOrderQueueQuery {
	return GetOrderQueueQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrderQueueQueryForStore creates a queue query filtered to one
// store. Unrecognized store text falls back to the default store, matching
// the projection's normalization.
func NewGetOrderQueueQueryForStore(store string) GetOrderQueueQuery {
	return GetOrderQueueQuery{
		store:     order.NormalizeStore(store),
		hasFilter: true,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through a constructor.
func (q GetOrderQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueueQueryIsNotConstructed)
}

// Store returns the store filter; meaningful only when HasStoreFilter.
func (q GetOrderQueueQuery) Store() order.Store {
	return q.store
}

// HasStoreFilter reports whether the query is scoped to one store.
func (q GetOrderQueueQuery) HasStoreFilter() bool {
	return q.hasFilter
}
