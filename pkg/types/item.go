// Item entity and its construction-time validation rules.
package types

import (
	"fmt"
	"strings"
)

// Item weight bounds in kilograms. A valid weight w satisfies
// MinItemWeight < w <= MaxItemWeight.
const (
	MinItemWeight = 0.0
	MaxItemWeight = 50.0
)

// Item is a single stock-keeping unit. Items are immutable after
// construction; NewItem is the only way to obtain one.
type Item struct {
	// ID is the SKU, normalized to upper case.
	ID string

	// Name is the human-readable display name.
	Name string

	// Weight is the item weight in kilograms.
	Weight float64

	// Fragile marks items that need careful handling.
	Fragile bool
}

// NewItem validates the fields and returns the constructed Item.
// The id is trimmed and upper-cased; the name is trimmed. Validation
// failures return a sentinel error wrapped with the offending value.
func NewItem(id, name string, weight float64, fragile bool) (Item, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	name = strings.TrimSpace(name)

	if id == "" {
		return Item{}, ErrEmptyItemID
	}
	if name == "" {
		return Item{}, ErrEmptyItemName
	}
	if weight <= MinItemWeight {
		return Item{}, fmt.Errorf("%w (> %.1fkg): got %.2fkg", ErrWeightTooLight, MinItemWeight, weight)
	}
	if weight > MaxItemWeight {
		return Item{}, fmt.Errorf("%w (%.1fkg): got %.2fkg", ErrWeightTooHeavy, MaxItemWeight, weight)
	}

	return Item{ID: id, Name: name, Weight: weight, Fragile: fragile}, nil
}
