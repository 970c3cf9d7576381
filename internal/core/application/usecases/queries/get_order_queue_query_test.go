package queries_test

import (
	"testing"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQueueQuery_NoFilter(t *testing.T) {
	query := queries.NewGetOrderQueueQuery()
	require.NoError(t, query.Validate())
	assert.False(t, query.HasStoreFilter())
}

func TestNewGetOrderQueueQueryForStore_KnownStore(t *testing.T) {
	query := queries.NewGetOrderQueueQueryForStore("riverside")
	require.NoError(t, query.Validate())
	assert.True(t, query.HasStoreFilter())
	assert.Equal(t, order.StoreRiverside, query.Store())
}

func TestNewGetOrderQueueQueryForStore_UnknownStoreFallsBack(t *testing.T) {
	query := queries.NewGetOrderQueueQueryForStore("food truck")
	require.NoError(t, query.Validate())
	assert.True(t, query.HasStoreFilter())
	assert.Equal(t, order.DefaultStore, query.Store())
}

func TestGetOrderQueueQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetOrderQueueQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueueQueryIsNotConstructed)
}
