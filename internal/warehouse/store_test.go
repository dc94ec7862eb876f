package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/warebot/pkg/types"
)

func mustItem(t *testing.T, id, name string, weight float64) types.Item {
	t.Helper()
	item, err := types.NewItem(id, name, weight, false)
	require.NoError(t, err)
	return item
}

func TestStoreAdd(t *testing.T) {
	s := NewStore()
	laptop := mustItem(t, "SKU001", "Laptop", 2.5)

	assert.True(t, s.Add(laptop, "A1"))
	assert.Equal(t, 1, s.Len())

	// Second add with the same id is rejected and nothing changes.
	dupe := mustItem(t, "SKU001", "Other laptop", 3.0)
	assert.False(t, s.Add(dupe, "B9"))
	assert.Equal(t, 1, s.Len())

	rec := s.FindByID("SKU001")
	require.NotNil(t, rec)
	assert.Equal(t, "Laptop", rec.Item.Name)
	assert.Equal(t, "A1", rec.Location)
	assert.Empty(t, s.FindByLocation("B9"))
}

func TestStoreViewsStayConsistent(t *testing.T) {
	s := NewStore()
	items := []struct {
		id, name string
		weight   float64
		loc      string
	}{
		{"SKU001", "Laptop", 2.5, "A1"},
		{"SKU002", "Cable", 0.1, "A2"},
		{"SKU003", "Monitor", 5.0, "B1"},
		{"SKU004", "Keyboard", 0.8, "B1"},
	}

	for _, it := range items {
		assert.True(t, s.Add(mustItem(t, it.id, it.name, it.weight), it.loc))
	}

	// Insertion order preserved in the record view.
	recs := s.Records()
	require.Len(t, recs, 4)
	for i, it := range items {
		assert.Equal(t, it.id, recs[i].Item.ID)
	}

	// Every record reachable through every view.
	for _, it := range items {
		rec := s.FindByID(it.id)
		require.NotNil(t, rec, it.id)
		assert.Contains(t, s.FindByLocation(it.loc), rec)
	}

	// Location index groups co-located records.
	assert.Len(t, s.FindByLocation("B1"), 2)
	assert.Empty(t, s.FindByLocation("Z9"))
}

func TestStoreLinearLookupMatchesIndexed(t *testing.T) {
	s := NewStore()
	ids := []string{"SKU001", "SKU002", "SKU003", "SKU004", "SKU005"}
	for i, id := range ids {
		assert.True(t, s.Add(mustItem(t, id, "Item", float64(i)+0.5), "A1"))
	}

	for _, id := range ids {
		indexed := s.FindByID(id)
		linear := s.FindByIDLinear(id)
		require.NotNil(t, indexed, id)
		assert.Same(t, indexed, linear, "both lookups must return the same record")
	}

	assert.Nil(t, s.FindByID("SKU999"))
	assert.Nil(t, s.FindByIDLinear("SKU999"))
}

func TestStoreEmptyLookups(t *testing.T) {
	s := NewStore()
	assert.Nil(t, s.FindByID("SKU001"))
	assert.Nil(t, s.FindByIDLinear("SKU001"))
	assert.Empty(t, s.FindByLocation("A1"))
	assert.Zero(t, s.Len())
}
