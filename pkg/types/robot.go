// Robot status and automation mode enums.
package types

import "strings"

// RobotStatus is the robot's operational state.
type RobotStatus string

// Robot operational states.
const (
	StatusIdle       RobotStatus = "IDLE"
	StatusRetrieving RobotStatus = "RETRIEVING"
	StatusPacking    RobotStatus = "PACKING"
	StatusCharging   RobotStatus = "CHARGING"
	StatusError      RobotStatus = "ERROR"
)

// AutomationMode selects how simulated faults are handled: full-auto
// retries without asking, semi-auto consults the operator.
type AutomationMode string

// Automation modes.
const (
	ModeFullAuto AutomationMode = "FULL_AUTO"
	ModeSemiAuto AutomationMode = "SEMI_AUTO"
)

// ParseMode maps operator spellings to an AutomationMode. Accepted
// aliases: auto, full, fullauto, full_auto; semi, semiauto, semi_auto.
func ParseMode(s string) (AutomationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "full", "fullauto", "full_auto", "full-auto":
		return ModeFullAuto, nil
	case "semi", "semiauto", "semi_auto", "semi-auto":
		return ModeSemiAuto, nil
	default:
		return "", ErrUnknownMode
	}
}
