// Order and Task entities.
package types

import (
	"fmt"
	"strings"
)

// MaxItemsPerOrder caps the number of item lines in a single order.
// Duplicate ids are allowed and express quantity.
const MaxItemsPerOrder = 20

// Order is a customer request for a list of items. Orders are
// immutable once validated by NewOrder.
type Order struct {
	// ID is the order identifier, normalized to upper case.
	ID string

	// ItemIDs lists the required item ids in request order.
	// The same id may appear more than once.
	ItemIDs []string
}

// NewOrder validates the fields and returns the constructed Order.
// Item ids are normalized to upper case so they match inventory keys.
func NewOrder(id string, itemIDs []string) (Order, error) {
	id = strings.ToUpper(strings.TrimSpace(id))

	if id == "" {
		return Order{}, ErrEmptyOrderID
	}
	if len(itemIDs) == 0 {
		return Order{}, ErrOrderEmpty
	}
	if len(itemIDs) > MaxItemsPerOrder {
		return Order{}, fmt.Errorf("%w (%d): got %d", ErrOrderTooBig, MaxItemsPerOrder, len(itemIDs))
	}

	normalized := make([]string, len(itemIDs))
	for i, itemID := range itemIDs {
		normalized[i] = strings.ToUpper(strings.TrimSpace(itemID))
	}

	return Order{ID: id, ItemIDs: normalized}, nil
}

// Task is the robot's unit of work, derived 1:1 from an accepted
// order. Tasks exist only for orders that passed inventory validation.
type Task struct {
	// ID is the task identifier, derived from the order id.
	ID string

	// OrderID is the id of the originating order.
	OrderID string

	// ItemIDs is the ordered list of items to retrieve.
	ItemIDs []string
}

// NewTask derives the task for an accepted order.
func NewTask(order Order) Task {
	return Task{
		ID:      "T_" + order.ID,
		OrderID: order.ID,
		ItemIDs: order.ItemIDs,
	}
}
