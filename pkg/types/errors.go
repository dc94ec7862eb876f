package types

import "errors"

// Validation errors returned at entity construction time. Invalid
// entities are rejected whole; no partially constructed Item or Order
// ever reaches a collection.
var (
	ErrEmptyItemID    = errors.New("item id must not be empty")
	ErrEmptyItemName  = errors.New("item name must not be empty")
	ErrWeightTooLight = errors.New("item weight must exceed the minimum")
	ErrWeightTooHeavy = errors.New("item weight exceeds the maximum")

	ErrEmptyOrderID = errors.New("order id must not be empty")
	ErrOrderEmpty   = errors.New("order must contain at least one item")
	ErrOrderTooBig  = errors.New("order exceeds the maximum item count")
)

// Collection errors.
var (
	// ErrDuplicateItem is returned when adding an item whose id is
	// already present in the inventory. Existing records are never
	// silently overwritten.
	ErrDuplicateItem = errors.New("item id already exists")

	// ErrNotFound is returned by lookups that miss. A miss is an
	// ordinary outcome, not a fault.
	ErrNotFound = errors.New("not found")
)

// ErrUnknownMode is returned when parsing an automation mode string
// that is neither full-auto nor semi-auto.
var ErrUnknownMode = errors.New("unknown automation mode")
