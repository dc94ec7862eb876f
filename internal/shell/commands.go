package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/warebot/internal/selftest"
	"github.com/mesh-intelligence/warebot/pkg/types"
)

const defaultHistoryLen = 10

func (s *Shell) cmdHelp() {
	fmt.Fprintln(s.out, `
Available commands:
  help          Show this help
  items         List warehouse inventory
  additem       Add a new item to the warehouse
  addorder      Create an order and queue it for fulfillment
  run [N]       Fulfill the next N queued orders (default 1)
  mode [auto|semi]
                Show or switch the automation mode
  status        Show robot and queue status
  history [N]   Show the last N operation-log entries (default 10)
  env [N]       Show recent obstacle events and sensor readings
  demo          Queue and fulfill a demonstration order
  test          Run the built-in self checks
  quit, exit    Leave the shell`)
}

func (s *Shell) cmdItems() {
	records := s.store.Records()
	if len(records) == 0 {
		fmt.Fprintln(s.out, "Inventory is empty. Use 'additem' to add items.")
		return
	}

	fmt.Fprintln(s.out, "\nINVENTORY:")
	fmt.Fprintf(s.out, "%-10s | %-15s | %6s | %-7s | %s\n",
		"ID", "NAME", "WEIGHT", "FRAGILE", "LOCATION")
	fmt.Fprintln(s.out, strings.Repeat("-", 56))
	for _, rec := range records {
		fmt.Fprintf(s.out, "%-10s | %-15s | %6.1f | %-7t | %s\n",
			rec.Item.ID, rec.Item.Name, rec.Item.Weight, rec.Item.Fragile, rec.Location)
	}
	fmt.Fprintf(s.out, "Total items: %d\n", len(records))
}

func (s *Shell) cmdAddItem() {
	id := strings.ToUpper(s.promptLine("Item ID: "))
	if id == "" {
		fmt.Fprintln(s.out, "Cancelled: item ID is required.")
		return
	}
	if s.store.FindByID(id) != nil {
		fmt.Fprintf(s.out, "Item %s already exists.\n", id)
		return
	}

	name := s.promptLine("Name: ")
	weightStr := s.promptLine("Weight (kg): ")
	weight, err := strconv.ParseFloat(weightStr, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid weight %q.\n", weightStr)
		return
	}
	fragile := strings.HasPrefix(strings.ToLower(s.promptLine("Fragile? (y/n): ")), "y")
	location := strings.ToUpper(s.promptLine("Storage location: "))
	if location == "" {
		fmt.Fprintln(s.out, "Cancelled: storage location is required.")
		return
	}

	item, err := types.NewItem(id, name, weight, fragile)
	if err != nil {
		fmt.Fprintf(s.out, "Cannot add item: %v\n", err)
		return
	}
	if !s.store.Add(item, location) {
		fmt.Fprintf(s.out, "Item %s already exists.\n", item.ID)
		return
	}
	fmt.Fprintf(s.out, "Added %s (%s) at %s.\n", item.ID, item.Name, location)
}

func (s *Shell) cmdAddOrder() {
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, "Inventory is empty. Use 'additem' first.")
		return
	}

	orderID := s.pipe.NextOrderID()
	fmt.Fprintf(s.out, "Creating order %s. Enter item IDs one per line; blank line to finish.\n", orderID)

	var itemIDs []string
	for {
		if len(itemIDs) >= types.MaxItemsPerOrder {
			fmt.Fprintf(s.out, "Order is full (%d items).\n", types.MaxItemsPerOrder)
			break
		}

		id := strings.ToUpper(s.promptLine("Item ID (blank to finish): "))
		if id == "" || id == "0" {
			break
		}
		if s.store.FindByID(id) == nil {
			fmt.Fprintf(s.out, "No such item %s.\n", id)
			continue
		}

		qtyStr := s.promptLine("Quantity: ")
		qty, err := strconv.Atoi(qtyStr)
		if err != nil || qty < 1 || qty > 50 {
			fmt.Fprintf(s.out, "Invalid quantity %q (want 1-50).\n", qtyStr)
			continue
		}
		for i := 0; i < qty && len(itemIDs) < types.MaxItemsPerOrder; i++ {
			itemIDs = append(itemIDs, id)
		}
	}

	if len(itemIDs) == 0 {
		fmt.Fprintln(s.out, "Cancelled: order has no items.")
		return
	}

	order, err := types.NewOrder(orderID, itemIDs)
	if err != nil {
		fmt.Fprintf(s.out, "Cannot create order: %v\n", err)
		return
	}
	if !s.pipe.Submit(order) {
		fmt.Fprintf(s.out, "Order %s rejected: an item is not in inventory.\n", order.ID)
		return
	}
	fmt.Fprintf(s.out, "Order %s queued with %d items (queue length %d). Use 'run' to fulfill.\n",
		order.ID, len(order.ItemIDs), s.pipe.QueueLen())
}

func (s *Shell) cmdRun(args []string) {
	cycles := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintf(s.out, "Invalid cycle count %q, running 1 cycle.\n", args[0])
		} else {
			cycles = n
		}
	}

	if s.pipe.QueueLen() == 0 {
		fmt.Fprintln(s.out, "Task queue is empty. Use 'addorder' or 'demo' to queue work.")
		return
	}

	for i := 1; i <= cycles; i++ {
		if s.pipe.QueueLen() == 0 {
			fmt.Fprintf(s.out, "Completed %d cycles - queue empty\n", i-1)
			return
		}
		fmt.Fprintf(s.out, "\n--- Cycle %d/%d ---\n", i, cycles)
		s.robot.ExecuteWorkflow(s.pipe, s.store, s.station)
		if i < cycles && s.pipe.QueueLen() > 0 {
			s.sleep(cyclePause)
		}
	}
}

func (s *Shell) cmdMode(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "Current mode: %s. Usage: mode auto|semi\n", s.robot.Mode())
		return
	}
	mode, err := types.ParseMode(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Unknown mode %q. Usage: mode auto|semi\n", args[0])
		return
	}
	s.robot.SetMode(mode)
	fmt.Fprintf(s.out, "Mode set to %s.\n", mode)
}

func (s *Shell) cmdStatus() {
	fmt.Fprintln(s.out, "\nROBOT STATUS:")
	fmt.Fprintf(s.out, "  ID:       %s\n", s.robot.ID())
	fmt.Fprintf(s.out, "  Status:   %s\n", s.robot.Status())
	fmt.Fprintf(s.out, "  Mode:     %s\n", s.robot.Mode())
	fmt.Fprintf(s.out, "  Location: %s\n", s.robot.Location())
	fmt.Fprintf(s.out, "  Battery:  %s\n", s.batteryLine())
	if n := s.robot.Carried(); n > 0 {
		fmt.Fprintf(s.out, "  Carrying: %d item\n", n)
	} else {
		fmt.Fprintln(s.out, "  Carrying: nothing")
	}
	fmt.Fprintf(s.out, "  Queue:    %d pending, %d completed\n",
		s.pipe.QueueLen(), len(s.pipe.Completed()))
	fmt.Fprintf(s.out, "  Station:  %d staged, %d orders packed\n",
		s.station.StagedCount(), len(s.station.PackedOrders()))
}

// batteryLine renders the battery with a severity marker below the
// charging thresholds.
func (s *Shell) batteryLine() string {
	battery := s.robot.Battery()
	tuning := s.robot.Tuning()
	switch {
	case battery <= tuning.CriticalBattery:
		return fmt.Sprintf("%.1f%% [CRITICAL]", battery)
	case battery < tuning.ChargingThreshold:
		return fmt.Sprintf("%.1f%% [LOW]", battery)
	default:
		return fmt.Sprintf("%.1f%%", battery)
	}
}

func (s *Shell) cmdHistory(args []string) {
	limit := parseCount(args, defaultHistoryLen)

	if s.jnl != nil {
		ops, err := s.jnl.Recent(limit)
		if err != nil {
			fmt.Fprintf(s.out, "Cannot read journal: %v\n", err)
			return
		}
		if len(ops) == 0 {
			fmt.Fprintln(s.out, "No operations recorded yet.")
			return
		}
		fmt.Fprintf(s.out, "\nOPERATION HISTORY (last %d):\n", len(ops))
		for _, op := range ops {
			fmt.Fprintf(s.out, "  %s\n", op.Entry)
		}
		return
	}

	entries := s.robot.OperationLog(limit)
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No operations recorded yet.")
		return
	}
	fmt.Fprintf(s.out, "\nOPERATION HISTORY (last %d):\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(s.out, "  %s\n", e)
	}
}

func (s *Shell) cmdEnv(args []string) {
	limit := parseCount(args, defaultHistoryLen)

	fmt.Fprintf(s.out, "\nENVIRONMENT (robot at %s):\n", s.robot.Location())

	events := s.robot.ObstacleEvents(limit)
	if len(events) == 0 {
		fmt.Fprintln(s.out, "  No obstacle events.")
	} else {
		fmt.Fprintln(s.out, "  Obstacle events:")
		for _, e := range events {
			fmt.Fprintf(s.out, "    %s\n", e)
		}
	}

	readings := s.robot.SensorReadings(limit)
	if len(readings) == 0 {
		fmt.Fprintln(s.out, "  No sensor readings.")
	} else {
		fmt.Fprintln(s.out, "  Sensor readings:")
		for _, r := range readings {
			fmt.Fprintf(s.out, "    %s\n", r)
		}
	}
}

// RunDemo queues the stock demonstration order and fulfills it.
func (s *Shell) RunDemo() {
	for _, id := range []string{"SKU001", "SKU003"} {
		if s.store.FindByID(id) == nil {
			fmt.Fprintf(s.out, "Demo needs item %s in inventory; seed the demo items first.\n", id)
			return
		}
	}

	order, err := types.NewOrder(s.pipe.NextOrderID(), []string{"SKU001", "SKU001", "SKU003"})
	if err != nil {
		fmt.Fprintf(s.out, "Demo order failed: %v\n", err)
		return
	}
	if !s.pipe.Submit(order) {
		fmt.Fprintln(s.out, "Demo order rejected: demo items missing from inventory.")
		return
	}
	fmt.Fprintf(s.out, "\nDemo: queued order %s (2x Laptop, 1x Monitor).\n", order.ID)
	s.robot.ExecuteWorkflow(s.pipe, s.store, s.station)
}

func (s *Shell) cmdTest() {
	if selftest.Run(s.out) {
		fmt.Fprintln(s.out, "All checks passed.")
	} else {
		fmt.Fprintln(s.out, "Some checks FAILED.")
	}
}

// parseCount reads an optional positive count argument.
func parseCount(args []string, def int) int {
	if len(args) == 0 {
		return def
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return def
	}
	return n
}
