// Package shell implements the operator-facing REPL: line-oriented
// commands on standard input driving the warehouse, the order
// pipeline, and the robot. Console reads never happen inside the
// simulation; the shell passes itself as the robot's decision
// callback for semi-auto retry prompts.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mesh-intelligence/warebot/internal/journal"
	"github.com/mesh-intelligence/warebot/internal/packing"
	"github.com/mesh-intelligence/warebot/internal/pipeline"
	"github.com/mesh-intelligence/warebot/internal/robot"
	"github.com/mesh-intelligence/warebot/internal/warehouse"
	"github.com/mesh-intelligence/warebot/pkg/types"
)

const prompt = "robot>> "

// cyclePause is the pause between consecutive run cycles.
const cyclePause = time.Second

// Config assembles the shell's collaborators. In, Out, and the
// simulation seams (Sleep, Dice, Now) are injectable for tests;
// zero values fall back to real implementations.
type Config struct {
	Store    *warehouse.Store
	Pipeline *pipeline.Pipeline
	Station  *packing.Station

	// Journal, when set, receives every operation-log entry and
	// backs the history command across sessions. A nil journal keeps
	// history in memory only.
	Journal *journal.Journal

	RobotID string
	Mode    types.AutomationMode
	Tuning  robot.Tuning

	In  io.Reader
	Out io.Writer

	Sleep robot.Sleeper
	Dice  robot.Dice
	Now   func() time.Time
}

// Shell is one interactive operator session.
type Shell struct {
	store    *warehouse.Store
	pipe     *pipeline.Pipeline
	station  *packing.Station
	jnl      *journal.Journal
	robot    *robot.Robot
	scanner  *bufio.Scanner
	out      io.Writer
	sleep    robot.Sleeper
	sinkErrs int
}

// New builds a shell and its robot. The robot's decision callback and
// log sink are wired to the shell's console and journal.
func New(cfg Config) *Shell {
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}

	s := &Shell{
		store:   cfg.Store,
		pipe:    cfg.Pipeline,
		station: cfg.Station,
		jnl:     cfg.Journal,
		scanner: bufio.NewScanner(cfg.In),
		out:     cfg.Out,
		sleep:   cfg.Sleep,
	}

	s.robot = robot.New(cfg.RobotID, cfg.Mode, cfg.Tuning, robot.Deps{
		Sleep:  cfg.Sleep,
		Dice:   cfg.Dice,
		Decide: s.askYesNo,
		Out:    cfg.Out,
		Now:    cfg.Now,
		Sink:   s.record,
	})
	return s
}

// Robot exposes the session's robot, mainly for the demo command and
// tests.
func (s *Shell) Robot() *robot.Robot {
	return s.robot
}

// record forwards one operation-log entry to the journal. Journal
// trouble is reported once instead of flooding the console.
func (s *Shell) record(entry string) {
	if s.jnl == nil {
		return
	}
	if err := s.jnl.Append(s.robot.ID(), entry); err != nil {
		s.sinkErrs++
		if s.sinkErrs == 1 {
			fmt.Fprintf(s.out, "warning: journal write failed: %v\n", err)
		}
	}
}

// Run reads commands until quit, exit, or end of input. End of input
// (Ctrl+D, closed pipe) exits gracefully.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
	fmt.Fprintln(s.out, "WAREBOT WAREHOUSE SYSTEM")
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
	fmt.Fprintf(s.out, "\nRobot %s ready at %s, battery %.1f%%, mode %s\n",
		s.robot.ID(), s.robot.Location(), s.robot.Battery(), s.robot.Mode())
	fmt.Fprintf(s.out, "Inventory: %d items. Type 'help' for commands.\n\n", s.store.Len())

	for {
		fmt.Fprint(s.out, prompt)
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out, "\nShutting down. Goodbye!")
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := strings.ToLower(fields[0]), fields[1:]

		if cmd == "quit" || cmd == "exit" {
			fmt.Fprintln(s.out, "Shutting down. Goodbye!")
			return nil
		}
		s.dispatch(cmd, args)
	}
}

// dispatch routes one command line.
func (s *Shell) dispatch(cmd string, args []string) {
	switch cmd {
	case "help":
		s.cmdHelp()
	case "items":
		s.cmdItems()
	case "additem":
		s.cmdAddItem()
	case "addorder":
		s.cmdAddOrder()
	case "run":
		s.cmdRun(args)
	case "mode":
		s.cmdMode(args)
	case "status":
		s.cmdStatus()
	case "history":
		s.cmdHistory(args)
	case "env":
		s.cmdEnv(args)
	case "demo":
		s.RunDemo()
	case "test":
		s.cmdTest()
	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type 'help' for available commands.\n", cmd)
	}
}

// readLine reads the next input line. ok is false at end of input.
func (s *Shell) readLine() (line string, ok bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

// promptLine prints a prompt and reads the reply. End of input is an
// empty reply.
func (s *Shell) promptLine(p string) string {
	fmt.Fprint(s.out, p)
	line, _ := s.readLine()
	return line
}

// askYesNo is the robot's decision callback for semi-auto retry
// prompts.
func (s *Shell) askYesNo(p string) bool {
	reply := strings.ToLower(s.promptLine(p))
	return reply == "y" || reply == "yes"
}

// SeedDemoInventory loads the stock demonstration items.
func SeedDemoInventory(store *warehouse.Store) error {
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
	for _, it := range seed {
		item, err := types.NewItem(it.id, it.name, it.weight, it.fragile)
		if err != nil {
			return fmt.Errorf("seed item %s: %w", it.id, err)
		}
		if !store.Add(item, it.loc) {
			return fmt.Errorf("seed item %s: %w", it.id, types.ErrDuplicateItem)
		}
	}
	return nil
}
