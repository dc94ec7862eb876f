package robot

import (
	"fmt"
	"io"
	"time"

	"github.com/mesh-intelligence/warebot/internal/packing"
	"github.com/mesh-intelligence/warebot/internal/pipeline"
	"github.com/mesh-intelligence/warebot/internal/warehouse"
	"github.com/mesh-intelligence/warebot/pkg/types"
)

// Robot coordinates one task end-to-end: retrieve and stage every
// required item, then pack the order. All battery-costing work is
// gated by a pre-action charging check; battery never goes negative.
type Robot struct {
	id     string
	mode   types.AutomationMode
	tuning Tuning

	battery float64
	status  types.RobotStatus

	nav       Navigator
	sensors   Sensor
	gripper   Grip
	optimizer *packing.Optimizer

	sleep Sleeper
	out   io.Writer
	now   func() time.Time
	sink  func(entry string)

	opLog []string
}

// New assembles a robot with simulated subsystems built from the same
// dependency set, so one dice sequence and one sleeper drive the whole
// machine.
func New(id string, mode types.AutomationMode, tuning Tuning, deps Deps) *Robot {
	deps = deps.fill()
	return &Robot{
		id:        id,
		mode:      mode,
		tuning:    tuning,
		battery:   tuning.InitialBattery,
		status:    types.StatusIdle,
		nav:       NewNavigation(tuning, deps),
		sensors:   NewSensorArray(tuning, deps),
		gripper:   NewGripper(tuning, deps),
		optimizer: packing.NewOptimizer(),
		sleep:     deps.Sleep,
		out:       deps.Out,
		now:       deps.Now,
		sink:      deps.Sink,
	}
}

// ID returns the robot identifier.
func (r *Robot) ID() string { return r.id }

// Battery returns the current battery percentage.
func (r *Robot) Battery() float64 { return r.battery }

// Status returns the current operational state.
func (r *Robot) Status() types.RobotStatus { return r.status }

// Mode returns the current automation mode.
func (r *Robot) Mode() types.AutomationMode { return r.mode }

// SetMode switches the automation mode at runtime.
func (r *Robot) SetMode(mode types.AutomationMode) { r.mode = mode }

// Location returns the navigation subsystem's current location.
func (r *Robot) Location() string { return r.nav.Location() }

// Carried reports the number of items in the gripper.
func (r *Robot) Carried() int { return r.gripper.Held() }

// ObstacleEvents returns up to n of the latest navigation events.
func (r *Robot) ObstacleEvents(n int) []string { return r.nav.RecentEvents(n) }

// SensorReadings returns up to n of the latest scan outcomes.
func (r *Robot) SensorReadings(n int) []string { return r.sensors.RecentReadings(n) }

// OperationLog returns up to n of the latest operation-log entries.
func (r *Robot) OperationLog(n int) []string { return tail(r.opLog, n) }

// Tuning returns the simulation parameters in effect.
func (r *Robot) Tuning() Tuning { return r.tuning }

// logf appends a timestamped entry to the operation log, echoes it to
// the output writer, and forwards it to the sink when one is wired.
func (r *Robot) logf(format string, args ...any) {
	entry := fmt.Sprintf("[%s] %s", r.now().Format("15:04:05"), fmt.Sprintf(format, args...))
	r.opLog = append(r.opLog, entry)
	fmt.Fprintln(r.out, entry)
	if r.sink != nil {
		r.sink(entry)
	}
}

// consumeBattery deducts amount, clamping at zero. A drained battery
// does not halt simulation steps; only CheckBatteryAndCharge gates
// further battery-costing work.
func (r *Robot) consumeBattery(amount float64) {
	r.battery -= amount
	if r.battery < 0 {
		r.battery = 0
	}
}

// CheckBatteryAndCharge charges the robot when the battery is at or
// below the charging threshold. It returns false only when navigation
// to the charging station fails; that failure is terminal for the
// call.
func (r *Robot) CheckBatteryAndCharge() bool {
	if r.battery > r.tuning.ChargingThreshold {
		return true
	}

	r.status = types.StatusCharging
	r.logf("[BATTERY] Battery low (%.1f%%), heading to charging station", r.battery)

	if !r.nav.MoveTo(ChargingStation, r.mode) {
		r.logf("[BATTERY] Failed to reach charging station")
		return false
	}

	r.logf("[BATTERY] Charging (approx. %s)", r.tuning.ChargeTime)
	r.sleep(r.tuning.ChargeTime)
	r.battery = r.tuning.InitialBattery
	r.status = types.StatusIdle
	r.logf("[BATTERY] Charging complete (%.1f%%)", r.battery)
	return true
}

// RetrieveAndStage executes the retrieval state machine for one item:
// navigate to the item, scan, pick, navigate to the station, drop and
// stage. Failure at any step short-circuits to failure for the item.
func (r *Robot) RetrieveAndStage(itemID string, store *warehouse.Store, station *packing.Station) bool {
	if !r.CheckBatteryAndCharge() {
		return false
	}

	r.status = types.StatusRetrieving
	r.logf("[ROBOT] Start retrieving %s", itemID)

	rec := store.FindByID(itemID)
	if rec == nil {
		r.logf("[ERROR] Item %s not found in inventory", itemID)
		return false
	}

	if !r.nav.MoveTo(rec.Location, r.mode) {
		r.logf("[ERROR] Navigation failed to %s", rec.Location)
		return false
	}
	r.consumeBattery(r.tuning.NavigationCost)

	if !r.sensors.Scan(rec.Location, r.mode) {
		r.logf("[ERROR] Sensor verification failed for %s at %s", itemID, rec.Location)
		return false
	}

	r.gripper.Pick(rec.Item)

	if !r.nav.MoveTo(station.ID(), r.mode) {
		r.logf("[ERROR] Could not reach station %s", station.ID())
		return false
	}
	r.consumeBattery(r.tuning.NavigationCost)

	dropped := r.gripper.Drop()
	if dropped == nil {
		r.logf("[ERROR] Gripper empty when attempting to drop %s", itemID)
		return false
	}

	station.ReceiveStaged(*dropped)
	r.consumeBattery(r.tuning.RetrievalCost)
	r.logf("[ROBOT] Staged %s at %s (battery %.1f%%)", itemID, station.ID(), r.battery)
	return true
}

// PackOrder drains the station's staging area, packs the items
// heaviest-first through the optimizer, and records the order as
// packed. An empty staging area packs trivially.
func (r *Robot) PackOrder(task types.Task, station *packing.Station) bool {
	if !r.CheckBatteryAndCharge() {
		return false
	}

	r.status = types.StatusPacking
	items := station.DrainStaged()
	r.logf("[ROBOT] Packing %d items for order %s", len(items), task.OrderID)

	if len(items) == 0 {
		r.logf("[ROBOT] Nothing to pack")
		return true
	}

	r.optimizer.Prepare(items)
	r.logf("[PACK] Optimizing packing sequence (heaviest first)")

	packed := 0
	for {
		item := r.optimizer.Next()
		if item == nil {
			break
		}
		r.sleep(r.tuning.PackTimePerItem)
		packed++
		r.logf("[PACK] Packed item %d/%d: %s (%s, %.1fkg, fragile=%t)",
			packed, len(items), item.ID, item.Name, item.Weight, item.Fragile)
	}

	station.RecordPacked(task.OrderID)
	r.consumeBattery(r.tuning.PackingCost)
	r.logf("[ROBOT] Order %s packaged (battery %.1f%%)", task.OrderID, r.battery)
	return true
}

// ExecuteWorkflow dequeues one task and drives it to completion or
// failure. The first retrieval failure aborts the whole task: the
// gripper is cleared, the status goes to Error, and the task is
// dropped without retry. Packing runs only after every item staged.
func (r *Robot) ExecuteWorkflow(p *pipeline.Pipeline, store *warehouse.Store, station *packing.Station) {
	task := p.NextTask()
	if task == nil {
		r.logf("[ROBOT] Checked for tasks: queue empty")
		return
	}

	r.logf("[ROBOT] Processing order %s with %d items", task.OrderID, len(task.ItemIDs))

	staged := true
	for i, itemID := range task.ItemIDs {
		r.logf("[ROBOT] Retrieving item %d/%d", i+1, len(task.ItemIDs))
		if !r.RetrieveAndStage(itemID, store, station) {
			staged = false
			break
		}
	}

	if !staged {
		r.status = types.StatusError
		r.gripper.Clear()
		r.logf("[FAIL] Order %s failed during retrieval/staging", task.OrderID)
		return
	}

	if !r.PackOrder(*task, station) {
		r.status = types.StatusError
		r.logf("[FAIL] Order %s failed during packing", task.OrderID)
		return
	}

	p.MarkCompleted(task.ID)
	r.status = types.StatusIdle
	r.logf("[SUCCESS] Order %s complete", task.OrderID)
}
