// Package robot implements the simulated robot: navigation, sensing
// and gripper subsystems with injected fault sources, and the
// coordinator that drives one task end-to-end under a battery budget.
package robot

import "time"

// Well-known navigation targets.
const (
	HomeLocation    = "DOCK_HOME"
	ChargingStation = "CHARGE_STATION"
)

// Tuning collects the simulation parameters: battery economics, fault
// probabilities, and simulated action durations. Values are loaded
// from config with DefaultTuning as the fallback.
type Tuning struct {
	InitialBattery    float64 `mapstructure:"initial_battery"`
	ChargingThreshold float64 `mapstructure:"charging_threshold"`
	CriticalBattery   float64 `mapstructure:"critical_battery"`

	NavigationCost float64 `mapstructure:"navigation_cost"`
	RetrievalCost  float64 `mapstructure:"retrieval_cost"`
	PackingCost    float64 `mapstructure:"packing_cost"`

	ObstacleChance       float64 `mapstructure:"obstacle_chance"`
	RerouteFailureChance float64 `mapstructure:"reroute_failure_chance"`
	ScanFailureRate      float64 `mapstructure:"scan_failure_rate"`

	TravelTime      time.Duration `mapstructure:"travel_time"`
	RerouteTime     time.Duration `mapstructure:"reroute_time"`
	ScanTime        time.Duration `mapstructure:"scan_time"`
	PickTime        time.Duration `mapstructure:"pick_time"`
	DropTime        time.Duration `mapstructure:"drop_time"`
	ChargeTime      time.Duration `mapstructure:"charge_time"`
	PackTimePerItem time.Duration `mapstructure:"pack_time_per_item"`
}

// DefaultTuning returns the stock simulation parameters.
func DefaultTuning() Tuning {
	return Tuning{
		InitialBattery:    100.0,
		ChargingThreshold: 20.0,
		CriticalBattery:   10.0,

		NavigationCost: 5.0,
		RetrievalCost:  3.0,
		PackingCost:    10.0,

		ObstacleChance:       0.20,
		RerouteFailureChance: 0.30,
		ScanFailureRate:      0.15,

		TravelTime:      time.Second,
		RerouteTime:     time.Second,
		ScanTime:        500 * time.Millisecond,
		PickTime:        300 * time.Millisecond,
		DropTime:        300 * time.Millisecond,
		ChargeTime:      3 * time.Second,
		PackTimePerItem: 500 * time.Millisecond,
	}
}
