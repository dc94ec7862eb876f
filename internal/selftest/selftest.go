// Package selftest exercises the core simulation invariants in
// process, with sleeps disabled and faults forced off, so an operator
// can verify an installation without touching persistent state.
package selftest

import (
	"fmt"
	"io"
	"math"

	"github.com/mesh-intelligence/warebot/internal/packing"
	"github.com/mesh-intelligence/warebot/internal/pipeline"
	"github.com/mesh-intelligence/warebot/internal/robot"
	"github.com/mesh-intelligence/warebot/internal/warehouse"
	"github.com/mesh-intelligence/warebot/pkg/types"
)

// luckyDice never triggers a fault roll.
type luckyDice struct{}

func (luckyDice) Float64() float64 { return 0.99 }

type check struct {
	name string
	run  func() error
}

// Run executes every check, printing one PASS/FAIL line per check and
// a summary. It reports whether all checks passed.
func Run(out io.Writer) bool {
	checks := []check{
		{"item validation", checkItemValidation},
		{"inventory uniqueness", checkInventoryUniqueness},
		{"lookup equivalence", checkLookupEquivalence},
		{"order queue is first-in first-out", checkPipelineFIFO},
		{"packing is heaviest-first", checkPackingOrder},
		{"retrieval battery cost", checkRetrievalBatteryCost},
		{"fulfillment end to end", checkWorkflow},
		{"battery stays within bounds", checkBatteryBounds},
	}

	fmt.Fprintln(out, "\nSELF CHECKS:")
	passed := 0
	for _, c := range checks {
		if err := c.run(); err != nil {
			fmt.Fprintf(out, "  FAIL  %s: %v\n", c.name, err)
			continue
		}
		fmt.Fprintf(out, "  PASS  %s\n", c.name)
		passed++
	}
	fmt.Fprintf(out, "%d/%d checks passed.\n", passed, len(checks))
	return passed == len(checks)
}

// seededStore returns a store holding the stock demonstration items.
func seededStore() (*warehouse.Store, error) {
	seed := []struct {
		id, name string
		weight   float64
		fragile  bool
		loc      string
	}{
		{"SKU001", "Laptop", 2.5, true, "A1"},
		{"SKU002", "Cable", 0.1, false, "A2"},
		{"SKU003", "Monitor", 5.0, true, "B1"},
		{"SKU004", "Keyboard", 0.8, false, "B2"},
		{"SKU005", "Adapter", 0.5, false, "A3"},
	}

	store := warehouse.NewStore()
	for _, it := range seed {
		item, err := types.NewItem(it.id, it.name, it.weight, it.fragile)
		if err != nil {
			return nil, err
		}
		if !store.Add(item, it.loc) {
			return nil, fmt.Errorf("duplicate seed item %s", it.id)
		}
	}
	return store, nil
}

// quietRobot builds a full-auto robot with sleeps and faults disabled.
func quietRobot() *robot.Robot {
	return robot.New("SELFTEST_BOT", types.ModeFullAuto, robot.DefaultTuning(), robot.Deps{
		Sleep: robot.NopSleeper,
		Dice:  luckyDice{},
		Out:   io.Discard,
	})
}

func checkItemValidation() error {
	if _, err := types.NewItem("SKU900", "Widget", 1.0, false); err != nil {
		return fmt.Errorf("valid item rejected: %w", err)
	}
	if _, err := types.NewItem("", "Widget", 1.0, false); err == nil {
		return fmt.Errorf("empty ID accepted")
	}
	if _, err := types.NewItem("SKU901", "Widget", 0, false); err == nil {
		return fmt.Errorf("zero weight accepted")
	}
	if _, err := types.NewItem("SKU902", "Widget", types.MaxItemWeight+1, false); err == nil {
		return fmt.Errorf("overweight item accepted")
	}
	return nil
}

func checkInventoryUniqueness() error {
	store, err := seededStore()
	if err != nil {
		return err
	}
	before := store.Len()

	dup, err := types.NewItem("SKU001", "Impostor", 1.0, false)
	if err != nil {
		return err
	}
	if store.Add(dup, "Z9") {
		return fmt.Errorf("duplicate ID accepted")
	}
	if store.Len() != before {
		return fmt.Errorf("duplicate add changed inventory size")
	}
	if rec := store.FindByID("SKU001"); rec == nil || rec.Item.Name != "Laptop" {
		return fmt.Errorf("original record disturbed by duplicate add")
	}
	return nil
}

func checkLookupEquivalence() error {
	store, err := seededStore()
	if err != nil {
		return err
	}
	for _, rec := range store.Records() {
		indexed := store.FindByID(rec.Item.ID)
		linear := store.FindByIDLinear(rec.Item.ID)
		if indexed == nil || indexed != linear {
			return fmt.Errorf("lookups disagree for %s", rec.Item.ID)
		}
	}
	if store.FindByID("SKU999") != nil {
		return fmt.Errorf("indexed lookup found missing item")
	}
	if store.FindByIDLinear("SKU999") != nil {
		return fmt.Errorf("linear lookup found missing item")
	}
	return nil
}

func checkPipelineFIFO() error {
	store, err := seededStore()
	if err != nil {
		return err
	}
	pipe := pipeline.New(store)

	first, err := types.NewOrder(pipe.NextOrderID(), []string{"SKU002"})
	if err != nil {
		return err
	}
	second, err := types.NewOrder(pipe.NextOrderID(), []string{"SKU004"})
	if err != nil {
		return err
	}
	if !pipe.Submit(first) || !pipe.Submit(second) {
		return fmt.Errorf("valid order rejected")
	}

	task := pipe.NextTask()
	if task == nil || task.OrderID != first.ID {
		return fmt.Errorf("first submitted order not dispatched first")
	}
	task = pipe.NextTask()
	if task == nil || task.OrderID != second.ID {
		return fmt.Errorf("second submitted order not dispatched second")
	}
	if pipe.NextTask() != nil {
		return fmt.Errorf("drained queue produced a task")
	}
	return nil
}

func checkPackingOrder() error {
	light, err := types.NewItem("SKU910", "Feather", 0.2, false)
	if err != nil {
		return err
	}
	mid, err := types.NewItem("SKU911", "Brick", 2.0, false)
	if err != nil {
		return err
	}
	heavy, err := types.NewItem("SKU912", "Anvil", 9.0, false)
	if err != nil {
		return err
	}

	opt := packing.NewOptimizer()
	opt.Prepare([]types.Item{light, heavy, mid})

	want := []string{"SKU912", "SKU911", "SKU910"}
	for _, id := range want {
		item := opt.Next()
		if item == nil || item.ID != id {
			return fmt.Errorf("expected %s next", id)
		}
	}
	if opt.Next() != nil {
		return fmt.Errorf("empty optimizer produced an item")
	}
	return nil
}

func checkRetrievalBatteryCost() error {
	store, err := seededStore()
	if err != nil {
		return err
	}
	r := quietRobot()
	station := packing.NewStation("SELFTEST_STATION")

	before := r.Battery()
	if !r.RetrieveAndStage("SKU002", store, station) {
		return fmt.Errorf("fault-free retrieval failed")
	}

	tuning := r.Tuning()
	wantCost := 2*tuning.NavigationCost + tuning.RetrievalCost
	if got := before - r.Battery(); math.Abs(got-wantCost) > 1e-9 {
		return fmt.Errorf("battery cost %.1f, want %.1f", got, wantCost)
	}
	if station.StagedCount() != 1 {
		return fmt.Errorf("item not staged")
	}
	return nil
}

func checkWorkflow() error {
	store, err := seededStore()
	if err != nil {
		return err
	}
	pipe := pipeline.New(store)
	station := packing.NewStation("SELFTEST_STATION")
	r := quietRobot()

	order, err := types.NewOrder(pipe.NextOrderID(), []string{"SKU001", "SKU001", "SKU003"})
	if err != nil {
		return err
	}
	if !pipe.Submit(order) {
		return fmt.Errorf("valid order rejected")
	}

	r.ExecuteWorkflow(pipe, store, station)

	if r.Status() != types.StatusIdle {
		return fmt.Errorf("robot status %s after workflow, want %s", r.Status(), types.StatusIdle)
	}
	if r.Carried() != 0 {
		return fmt.Errorf("gripper not empty after workflow")
	}
	completed := pipe.Completed()
	if len(completed) != 1 || completed[0] != "T_"+order.ID {
		return fmt.Errorf("task not marked completed")
	}
	packed := station.PackedOrders()
	if len(packed) != 1 || packed[0] != order.ID {
		return fmt.Errorf("order not recorded as packed")
	}
	if station.StagedCount() != 0 {
		return fmt.Errorf("staging area not drained")
	}
	return nil
}

func checkBatteryBounds() error {
	store, err := seededStore()
	if err != nil {
		return err
	}
	pipe := pipeline.New(store)
	station := packing.NewStation("SELFTEST_STATION")
	r := quietRobot()
	initial := r.Battery()

	for i := 0; i < 12; i++ {
		order, err := types.NewOrder(pipe.NextOrderID(), []string{"SKU002"})
		if err != nil {
			return err
		}
		if !pipe.Submit(order) {
			return fmt.Errorf("valid order rejected")
		}
		r.ExecuteWorkflow(pipe, store, station)

		if r.Battery() > initial {
			return fmt.Errorf("battery %.1f exceeded initial %.1f", r.Battery(), initial)
		}
		if r.Battery() < 0 {
			return fmt.Errorf("battery went negative")
		}
	}
	return nil
}
