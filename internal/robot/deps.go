package robot

import (
	"io"
	"math/rand"
	"time"

	"github.com/mesh-intelligence/warebot/pkg/types"
)

// Sleeper models simulated time. The shell passes time.Sleep; tests
// pass NopSleeper so runs are instant.
type Sleeper func(d time.Duration)

// NopSleeper returns immediately.
func NopSleeper(time.Duration) {}

// Dice is the probability source for fault injection. *rand.Rand
// satisfies it; tests substitute a fixed sequence to force either
// branch of every probabilistic decision.
type Dice interface {
	Float64() float64
}

// DecisionFunc answers a retry prompt during semi-auto operation.
// A nil DecisionFunc declines every prompt.
type DecisionFunc func(prompt string) bool

// Deps bundles the injected collaborators for the robot and its
// subsystems. Zero-value fields fall back to real implementations.
type Deps struct {
	Sleep  Sleeper
	Dice   Dice
	Decide DecisionFunc
	Out    io.Writer
	Now    func() time.Time

	// Sink, when set, receives every operation-log entry in addition
	// to the in-memory log (the shell wires the journal here).
	Sink func(entry string)
}

// fill replaces zero-value dependencies with defaults.
func (d Deps) fill() Deps {
	if d.Sleep == nil {
		d.Sleep = time.Sleep
	}
	if d.Dice == nil {
		d.Dice = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.Out == nil {
		d.Out = io.Discard
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// Navigator moves the robot between locations.
type Navigator interface {
	// MoveTo attempts travel to location under the given mode.
	// The robot's location updates only on success.
	MoveTo(location string, mode types.AutomationMode) bool

	// Location returns the current location.
	Location() string

	// RecentEvents returns up to n of the latest obstacle events.
	RecentEvents(n int) []string
}

// Sensor verifies item presence at a location.
type Sensor interface {
	Scan(location string, mode types.AutomationMode) bool

	// RecentReadings returns up to n of the latest scan outcomes.
	RecentReadings(n int) []string
}

// Grip is the single-slot manipulator.
type Grip interface {
	// Pick stores the item and closes the gripper.
	Pick(item types.Item)

	// Drop releases and returns the held item, or nil when empty.
	Drop() *types.Item

	// Clear discards held state without simulated delay. Error
	// recovery only.
	Clear()

	// Held reports the number of carried items (0 or 1).
	Held() int
}

// tail returns up to n trailing entries of log.
func tail(log []string, n int) []string {
	if n <= 0 || len(log) == 0 {
		return nil
	}
	if n > len(log) {
		n = len(log)
	}
	out := make([]string, n)
	copy(out, log[len(log)-n:])
	return out
}
