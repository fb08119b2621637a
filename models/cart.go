package models

import (
	"encoding/json"
	"strconv"
)

// CartEntry is one line in a session cart. Older sessions stored a bare
// integer quantity under the product key; current sessions store the full
// record. Decoding accepts both forms and always yields the structured one,
// so every caller past the decode sees a single shape.
type CartEntry struct {
	Quantity int    `json:"quantity"`
	Color    string `json:"color,omitempty"`
	Size     string `json:"size,omitempty"`
}

func (e *CartEntry) UnmarshalJSON(data []byte) error {
	// Legacy form: just the quantity.
	var qty int
	if err := json.Unmarshal(data, &qty); err == nil {
		*e = CartEntry{Quantity: qty}
		return nil
	}

	type structured CartEntry
	var s structured
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*e = CartEntry(s)
	return nil
}

// Cart maps a product key (the decimal product id) to its entry. It is a
// plain value: handlers read it from the session store, mutate it, and write
// it back. Entries are re-encoded structured, so a legacy cart is upgraded
// the first time it is saved.
type Cart map[string]CartEntry

// CartKey renders a product id as the cart's map key.
func CartKey(productID uint) string {
	return strconv.FormatUint(uint64(productID), 10)
}

// Add puts quantity of a product into the cart. A repeat add under the same
// key only increases the running count; the stored color/size selection is
// not replaced per addition.
func (c Cart) Add(productID uint, quantity int, color, size string) {
	key := CartKey(productID)
	if entry, ok := c[key]; ok {
		entry.Quantity += quantity
		if entry.Color == "" && entry.Size == "" {
			entry.Color = color
			entry.Size = size
		}
		c[key] = entry
		return
	}
	c[key] = CartEntry{Quantity: quantity, Color: color, Size: size}
}

// Remove deletes the product's entry. Removing an absent key is a no-op.
func (c Cart) Remove(productID uint) {
	delete(c, CartKey(productID))
}

// Quantity returns the carted quantity for a product, zero if absent.
func (c Cart) Quantity(productID uint) int {
	return c[CartKey(productID)].Quantity
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// Clear empties the cart in place.
func (c Cart) Clear() {
	for key := range c {
		delete(c, key)
	}
}
