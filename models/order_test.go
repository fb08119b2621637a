package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "shipped", "delivered", "cancelled"} {
		status, err := ParseOrderStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, OrderStatus(valid), status)
	}

	status, err := ParseOrderStatus("  Shipped ")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, status)

	_, err = ParseOrderStatus("refunded")
	assert.Error(t, err)
	_, err = ParseOrderStatus("")
	assert.Error(t, err)
}
