package robot

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/warebot/pkg/types"
)

// SensorArray is the simulated sensing subsystem. A scan succeeds
// with probability 1-ScanFailureRate; on failure, semi-auto offers
// exactly one retry. Every outcome is appended to the readings log.
type SensorArray struct {
	tuning   Tuning
	sleep    Sleeper
	dice     Dice
	decide   DecisionFunc
	out      io.Writer
	readings []string
}

var _ Sensor = (*SensorArray)(nil)

// NewSensorArray returns a sensing subsystem.
func NewSensorArray(tuning Tuning, deps Deps) *SensorArray {
	deps = deps.fill()
	return &SensorArray{
		tuning: tuning,
		sleep:  deps.Sleep,
		dice:   deps.Dice,
		decide: deps.Decide,
		out:    deps.Out,
	}
}

// RecentReadings returns up to limit of the latest scan outcomes.
func (sa *SensorArray) RecentReadings(limit int) []string {
	return tail(sa.readings, limit)
}

// Scan verifies item presence at location.
func (sa *SensorArray) Scan(location string, mode types.AutomationMode) bool {
	fmt.Fprintf(sa.out, "[SENSOR] Scanning location %s...\n", location)
	sa.sleep(sa.tuning.ScanTime)

	ok := sa.dice.Float64() > sa.tuning.ScanFailureRate
	if ok {
		sa.readings = append(sa.readings, "Scan "+location+": OK")
		fmt.Fprintln(sa.out, "[SENSOR] Scan successful")
		return true
	}

	sa.readings = append(sa.readings, "Scan "+location+": FAIL")
	fmt.Fprintf(sa.out, "[SENSOR] Scan failed at %s\n", location)

	if mode == types.ModeSemiAuto && sa.decide != nil && sa.decide("[SENSOR] Retry scan? (y/n): ") {
		fmt.Fprintln(sa.out, "[SENSOR] Retrying scan...")
		sa.sleep(sa.tuning.ScanTime)
		sa.readings = append(sa.readings, "Scan "+location+": OK (retry)")
		fmt.Fprintln(sa.out, "[SENSOR] Scan successful (retry)")
		return true
	}
	return false
}
