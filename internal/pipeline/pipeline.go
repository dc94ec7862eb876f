// Package pipeline converts customer orders into validated, queued
// units of robot work. Tasks are dequeued in FIFO order; completed task
// ids accumulate in an append-only list. A failed task is dropped, not
// re-queued.
package pipeline

import (
	"fmt"

	"github.com/mesh-intelligence/warebot/internal/warehouse"
	"github.com/mesh-intelligence/warebot/pkg/types"
)

// Pipeline owns the task queue, the completed-task record, and the
// sequential order-id counter. The counter belongs to the instance, so
// independent pipelines never collide.
type Pipeline struct {
	store     *warehouse.Store
	queue     []types.Task
	completed []string
	orderSeq  int
}

// New returns a pipeline validating against the given inventory store.
func New(store *warehouse.Store) *Pipeline {
	return &Pipeline{store: store, orderSeq: 1}
}

// Validate reports whether every item id the order requires currently
// resolves in inventory. All-or-nothing, no side effects.
func (p *Pipeline) Validate(order types.Order) bool {
	for _, id := range order.ItemIDs {
		if p.store.FindByID(id) == nil {
			return false
		}
	}
	return true
}

// Submit re-validates the order and, on success, derives its task and
// appends it to the FIFO queue. On failure nothing is enqueued.
func (p *Pipeline) Submit(order types.Order) bool {
	if !p.Validate(order) {
		return false
	}
	p.queue = append(p.queue, types.NewTask(order))
	return true
}

// NextOrderID issues the next sequential order id. Ids are
// zero-padded, monotonically increasing, and never reused, including
// across orders that are later rejected.
func (p *Pipeline) NextOrderID() string {
	id := fmt.Sprintf("ORD%04d", p.orderSeq)
	p.orderSeq++
	return id
}

// NextTask pops the queue head, or returns nil when the queue is
// empty. The first validated order is the first dequeued.
func (p *Pipeline) NextTask() *types.Task {
	if len(p.queue) == 0 {
		return nil
	}
	task := p.queue[0]
	p.queue = p.queue[1:]
	return &task
}

// MarkCompleted records a finished task id.
func (p *Pipeline) MarkCompleted(taskID string) {
	p.completed = append(p.completed, taskID)
}

// Completed returns the completed task ids in completion order.
func (p *Pipeline) Completed() []string {
	return p.completed
}

// QueueLen reports the number of tasks waiting in the queue.
func (p *Pipeline) QueueLen() int {
	return len(p.queue)
}
