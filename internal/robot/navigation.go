package robot

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/warebot/pkg/types"
)

// Navigation is the simulated movement subsystem. Travel takes
// simulated time; with ObstacleChance an obstacle blocks the route.
// Full-auto reroutes without asking; semi-auto consults the decision
// callback before rerouting, and again for one manual retry when the
// reroute itself fails.
type Navigation struct {
	tuning  Tuning
	sleep   Sleeper
	dice    Dice
	decide  DecisionFunc
	out     io.Writer
	current string
	events  []string
}

var _ Navigator = (*Navigation)(nil)

// NewNavigation returns a navigation subsystem starting at the home
// dock.
func NewNavigation(tuning Tuning, deps Deps) *Navigation {
	deps = deps.fill()
	return &Navigation{
		tuning:  tuning,
		sleep:   deps.Sleep,
		dice:    deps.Dice,
		decide:  deps.Decide,
		out:     deps.Out,
		current: HomeLocation,
	}
}

// Location returns the robot's current location.
func (n *Navigation) Location() string {
	return n.current
}

// RecentEvents returns up to limit of the latest obstacle events.
func (n *Navigation) RecentEvents(limit int) []string {
	return tail(n.events, limit)
}

// MoveTo attempts travel to location. The sequence of outcomes:
// direct arrival, successful reroute, manual retry after a failed
// reroute (semi-auto only), or failure. The current location changes
// only when the move succeeds.
func (n *Navigation) MoveTo(location string, mode types.AutomationMode) bool {
	fmt.Fprintf(n.out, "[NAV] Navigating from %s to %s...\n", n.current, location)
	n.sleep(n.tuning.TravelTime)

	if n.dice.Float64() < n.tuning.ObstacleChance {
		n.events = append(n.events, "Obstacle en route to "+location)
		fmt.Fprintf(n.out, "[NAV] Obstacle detected en route to %s\n", location)

		if mode == types.ModeSemiAuto {
			if !n.ask("[NAV] Attempt automatic reroute? (y/n): ") {
				fmt.Fprintln(n.out, "[NAV] Navigation cancelled by operator")
				return false
			}
		}

		fmt.Fprintln(n.out, "[NAV] Attempting automatic reroute...")
		n.sleep(n.tuning.RerouteTime)

		if n.dice.Float64() < n.tuning.RerouteFailureChance {
			n.events = append(n.events, "Reroute failed to "+location)
			fmt.Fprintln(n.out, "[NAV] Reroute failed")

			if mode == types.ModeSemiAuto && n.ask("[NAV] Retry navigation? (y/n): ") {
				fmt.Fprintln(n.out, "[NAV] Retrying navigation...")
				n.sleep(n.tuning.TravelTime)
				n.current = location
				fmt.Fprintf(n.out, "[NAV] Reached %s (manual retry)\n", location)
				return true
			}
			return false
		}

		fmt.Fprintln(n.out, "[NAV] Reroute successful")
	}

	n.current = location
	fmt.Fprintf(n.out, "[NAV] Arrived at %s\n", location)
	return true
}

// ask consults the decision callback; no callback means decline.
func (n *Navigation) ask(prompt string) bool {
	if n.decide == nil {
		return false
	}
	return n.decide(prompt)
}
