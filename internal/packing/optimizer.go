// Package packing orders staged items for packing and tracks the
// packaging station's staging area and packed-order record.
package packing

import (
	"sort"

	"github.com/mesh-intelligence/warebot/pkg/types"
)

// Optimizer computes the pack order for a batch of staged items.
// Items are sorted ascending by weight and pushed onto a LIFO stack,
// so popping yields the heaviest remaining item first. Heavier items
// go to the bottom of the container; the stack discipline produces
// that order without custom comparators downstream. This is the
// documented policy, not a geometric packing model.
type Optimizer struct {
	stack []types.Item
}

// NewOptimizer returns an optimizer with an empty stack.
func NewOptimizer() *Optimizer {
	return &Optimizer{}
}

// Prepare replaces any unpopped remainder with the given batch,
// sorted ascending by weight and pushed in that order.
func (o *Optimizer) Prepare(items []types.Item) {
	batch := make([]types.Item, len(items))
	copy(batch, items)
	sort.SliceStable(batch, func(i, j int) bool {
		return batch[i].Weight < batch[j].Weight
	})
	o.stack = batch
}

// Next pops the top of the stack: the heaviest remaining item.
// Returns nil when the stack is empty.
func (o *Optimizer) Next() *types.Item {
	if len(o.stack) == 0 {
		return nil
	}
	item := o.stack[len(o.stack)-1]
	o.stack = o.stack[:len(o.stack)-1]
	return &item
}

// Remaining reports how many items are still on the stack.
func (o *Optimizer) Remaining() int {
	return len(o.stack)
}
