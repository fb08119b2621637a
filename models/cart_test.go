package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartEntryDecodesLegacyQuantity(t *testing.T) {
	var entry CartEntry
	require.NoError(t, json.Unmarshal([]byte(`3`), &entry))

	assert.Equal(t, 3, entry.Quantity)
	assert.Empty(t, entry.Color)
	assert.Empty(t, entry.Size)
}

func TestCartEntryDecodesStructuredForm(t *testing.T) {
	var entry CartEntry
	require.NoError(t, json.Unmarshal([]byte(`{"quantity":2,"color":"Red","size":"XL"}`), &entry))

	assert.Equal(t, CartEntry{Quantity: 2, Color: "Red", Size: "XL"}, entry)
}

func TestCartDecodesMixedLegacyAndStructuredEntries(t *testing.T) {
	payload := []byte(`{"7":4,"12":{"quantity":1,"color":"Blue","size":"M"}}`)

	var cart Cart
	require.NoError(t, json.Unmarshal(payload, &cart))

	assert.Equal(t, 4, cart.Quantity(7))
	assert.Equal(t, CartEntry{Quantity: 1, Color: "Blue", Size: "M"}, cart[CartKey(12)])
}

func TestCartReencodesLegacyEntriesStructured(t *testing.T) {
	var cart Cart
	require.NoError(t, json.Unmarshal([]byte(`{"7":4}`), &cart))

	data, err := json.Marshal(cart)
	require.NoError(t, err)

	// Once written back, the legacy form is gone for good.
	assert.JSONEq(t, `{"7":{"quantity":4}}`, string(data))
}

func TestCartAddIncrementsExistingKey(t *testing.T) {
	cart := Cart{}
	cart.Add(7, 2, "Red", "L")
	cart.Add(7, 3, "Blue", "S")

	// Still one key: the second add only raises the count, the stored
	// selection is not replaced.
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart.Quantity(7))
	assert.Equal(t, "Red", cart[CartKey(7)].Color)
	assert.Equal(t, "L", cart[CartKey(7)].Size)
}

func TestCartAddAdoptsSelectionForUpgradedLegacyEntry(t *testing.T) {
	var cart Cart
	require.NoError(t, json.Unmarshal([]byte(`{"7":4}`), &cart))

	cart.Add(7, 1, "Red", "L")

	assert.Equal(t, 5, cart.Quantity(7))
	assert.Equal(t, "Red", cart[CartKey(7)].Color)
	assert.Equal(t, "L", cart[CartKey(7)].Size)
}

func TestCartQuantityIsSumOfAdds(t *testing.T) {
	cart := Cart{}
	cart.Add(1, 1, "", "")
	cart.Add(1, 1, "", "")
	cart.Add(1, 1, "", "")
	cart.Add(2, 2, "", "")

	assert.Equal(t, 3, cart.Quantity(1))
	assert.Equal(t, 2, cart.Quantity(2))
}

func TestCartRemoveDeletesKeyEntirely(t *testing.T) {
	cart := Cart{}
	cart.Add(1, 5, "", "")
	cart.Remove(1)

	assert.Zero(t, cart.Quantity(1))
	assert.True(t, cart.IsEmpty())

	// Removing an absent key is a no-op, never an error.
	cart.Remove(99)
	assert.True(t, cart.IsEmpty())
}

func TestCartClear(t *testing.T) {
	cart := Cart{}
	cart.Add(1, 1, "", "")
	cart.Add(2, 2, "", "")

	cart.Clear()
	assert.True(t, cart.IsEmpty())
}
