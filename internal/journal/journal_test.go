package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalAppendAndRecent(t *testing.T) {
	j, err := Open(t.TempDir())
	require.NoError(t, err)
	defer j.Close()

	entries := []string{
		"[10:00:01] [ROBOT] Start retrieving SKU001",
		"[10:00:02] [ROBOT] Staged SKU001 at PACK_STATION_1 (battery 87.0%)",
		"[10:00:03] [SUCCESS] Order ORD0001 complete",
	}
	for _, e := range entries {
		require.NoError(t, j.Append("ROBOT_001", e))
	}

	ops, err := j.Recent(10)
	require.NoError(t, err)
	require.Len(t, ops, 3)
	for i, op := range ops {
		assert.Equal(t, entries[i], op.Entry, "chronological order")
		assert.Equal(t, "ROBOT_001", op.RobotID)
		assert.NotEmpty(t, op.ID)
		assert.False(t, op.RecordedAt.IsZero())
	}

	n, err := j.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestJournalRecentLimit(t *testing.T) {
	j, err := Open(t.TempDir())
	require.NoError(t, err)
	defer j.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, j.Append("ROBOT_001", string(rune('a'+i))))
	}

	ops, err := j.Recent(2)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, "d", ops[0].Entry)
	assert.Equal(t, "e", ops[1].Entry)
}

func TestJournalPersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()

	j, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, j.Append("ROBOT_001", "first session entry"))
	require.NoError(t, j.Close())

	j2, err := Open(dir)
	require.NoError(t, err)
	defer j2.Close()

	ops, err := j2.Recent(10)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "first session entry", ops[0].Entry)
}

func TestJournalEmptyRecent(t *testing.T) {
	j, err := Open(t.TempDir())
	require.NoError(t, err)
	defer j.Close()

	ops, err := j.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestJournalCloseIdempotent(t *testing.T) {
	j, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, j.Close())
	assert.NoError(t, j.Close())
}
