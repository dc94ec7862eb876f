// Package warehouse implements the inventory store: item records with
// an append-ordered view for iteration, an id index for O(1) lookup,
// and a location index for spatial queries. The three views are kept
// mutually consistent; a successful Add is visible in all of them.
package warehouse

import "github.com/mesh-intelligence/warebot/pkg/types"

// Record pairs an item with its storage location. Records are unique
// per item id.
type Record struct {
	Item     types.Item
	Location string
}

// Store holds the warehouse inventory.
type Store struct {
	records    []*Record
	byID       map[string]*Record
	byLocation map[string][]*Record
}

// NewStore returns an empty inventory store.
func NewStore() *Store {
	return &Store{
		byID:       make(map[string]*Record),
		byLocation: make(map[string][]*Record),
	}
}

// Add inserts an item at the given location. It returns false, without
// touching any view, if the item id is already present: existing
// records are never overwritten.
func (s *Store) Add(item types.Item, location string) bool {
	if _, exists := s.byID[item.ID]; exists {
		return false
	}

	rec := &Record{Item: item, Location: location}
	s.records = append(s.records, rec)
	s.byID[item.ID] = rec
	s.byLocation[location] = append(s.byLocation[location], rec)
	return true
}

// FindByID looks up a record through the id index. Returns nil on a
// miss.
func (s *Store) FindByID(id string) *Record {
	return s.byID[id]
}

// FindByIDLinear walks the append-ordered record list until the id
// matches. It returns the same record FindByID would; the only
// observable difference is the O(n) walk.
func (s *Store) FindByIDLinear(id string) *Record {
	for _, rec := range s.records {
		if rec.Item.ID == id {
			return rec
		}
	}
	return nil
}

// FindByLocation returns the records stored at the given location, in
// insertion order. The slice is empty when nothing is stored there.
func (s *Store) FindByLocation(location string) []*Record {
	return s.byLocation[location]
}

// Records returns the inventory in insertion order.
func (s *Store) Records() []*Record {
	return s.records
}

// Len reports the number of records in the inventory.
func (s *Store) Len() int {
	return len(s.records)
}
