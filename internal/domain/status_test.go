package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycle_Order(t *testing.T) {
	expected := []OrderStatus{
		StatusPlaced,
		StatusAccepted,
		StatusProcessing,
		StatusPacked,
		StatusPicked,
		StatusShipped,
		StatusOutForDelivery,
		StatusDelivered,
	}

	assert.Equal(t, expected, Lifecycle())
}

func TestStatuses_IncludesSideStates(t *testing.T) {
	all := Statuses()

	assert.Len(t, all, 10)
	assert.Equal(t, StatusCancelled, all[8])
	assert.Equal(t, StatusReturned, all[9])
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("Order Shipped")
	assert.NoError(t, err)
	assert.Equal(t, StatusShipped, s)

	s, err = ParseStatus("  order out for delivery ")
	assert.NoError(t, err)
	assert.Equal(t, StatusOutForDelivery, s)

	_, err = ParseStatus("Shipped")
	assert.Error(t, err)
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, StatusPlaced.Valid())
	assert.True(t, StatusReturned.Valid())
	assert.False(t, OrderStatus("Order Teleported").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusReturned.Terminal())
	assert.False(t, StatusPlaced.Terminal())
	assert.False(t, StatusOutForDelivery.Terminal())
}

func TestOrderStatus_Rank(t *testing.T) {
	assert.Equal(t, 0, StatusPlaced.Rank())
	assert.Equal(t, 7, StatusDelivered.Rank())
	assert.Equal(t, -1, StatusCancelled.Rank())
	assert.Equal(t, -1, OrderStatus("bogus").Rank())

	// ranks strictly increase along the main lifecycle
	prev := -1
	for _, s := range Lifecycle() {
		assert.Greater(t, s.Rank(), prev)
		prev = s.Rank()
	}
}
