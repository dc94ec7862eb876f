package packing

import "github.com/mesh-intelligence/warebot/pkg/types"

// Station is the physical workspace where the robot stages retrieved
// items and packs completed orders.
type Station struct {
	id     string
	staged []types.Item
	packed []string
}

// NewStation returns an empty station with the given id.
func NewStation(id string) *Station {
	return &Station{id: id}
}

// ID returns the station identifier, which is also the navigation
// target for item drop-off.
func (s *Station) ID() string {
	return s.id
}

// ReceiveStaged accepts one item delivered by the robot.
func (s *Station) ReceiveStaged(item types.Item) {
	s.staged = append(s.staged, item)
}

// DrainStaged returns all staged items and clears the staging area.
// Each packing cycle drains exactly once.
func (s *Station) DrainStaged() []types.Item {
	items := s.staged
	s.staged = nil
	return items
}

// StagedCount reports the number of items currently staged.
func (s *Station) StagedCount() int {
	return len(s.staged)
}

// RecordPacked records a completed order id.
func (s *Station) RecordPacked(orderID string) {
	s.packed = append(s.packed, orderID)
}

// PackedOrders returns the packed order ids in completion order.
func (s *Station) PackedOrders() []string {
	return s.packed
}
