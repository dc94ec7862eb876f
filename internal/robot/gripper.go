package robot

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/warebot/pkg/types"
)

// Gripper statuses.
const (
	GripperOpen   = "OPEN"
	GripperClosed = "CLOSED"
)

// Gripper is the single-slot manipulator. It holds at most one item
// at a time.
type Gripper struct {
	tuning Tuning
	sleep  Sleeper
	out    io.Writer
	held   *types.Item
	status string
}

var _ Grip = (*Gripper)(nil)

// NewGripper returns an open, empty gripper.
func NewGripper(tuning Tuning, deps Deps) *Gripper {
	deps = deps.fill()
	return &Gripper{
		tuning: tuning,
		sleep:  deps.Sleep,
		out:    deps.Out,
		status: GripperOpen,
	}
}

// Status returns the gripper status, OPEN or CLOSED.
func (g *Gripper) Status() string {
	return g.status
}

// Held reports the number of carried items.
func (g *Gripper) Held() int {
	if g.held == nil {
		return 0
	}
	return 1
}

// Pick stores the item in the slot and closes the gripper.
func (g *Gripper) Pick(item types.Item) {
	fmt.Fprintf(g.out, "[GRIPPER] Picking up %s...\n", item.Name)
	g.sleep(g.tuning.PickTime)
	g.held = &item
	g.status = GripperClosed
	fmt.Fprintf(g.out, "[GRIPPER] Picked up %s (%.1fkg)\n", item.Name, item.Weight)
}

// Drop releases the held item and opens the gripper. Returns nil when
// the slot is empty.
func (g *Gripper) Drop() *types.Item {
	if g.held == nil {
		return nil
	}
	fmt.Fprintln(g.out, "[GRIPPER] Dropping item...")
	g.sleep(g.tuning.DropTime)
	item := g.held
	g.held = nil
	g.status = GripperOpen
	fmt.Fprintf(g.out, "[GRIPPER] Dropped %s\n", item.Name)
	return item
}

// Clear discards the held item without simulated delay. Used only on
// the error-recovery path.
func (g *Gripper) Clear() {
	g.held = nil
	g.status = GripperOpen
}
