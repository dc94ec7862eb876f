// Package journal implements the persistent operation journal: every
// robot operation-log entry is appended to a SQLite database under the
// data directory, so the shell's history survives restarts.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// dbFileName is the journal database file inside the data directory.
const dbFileName = "warebot.db"

// Operation is one recorded operation-log entry.
type Operation struct {
	ID         string
	RobotID    string
	Entry      string
	RecordedAt time.Time
}

// Journal is an append-only operation record backed by SQLite.
type Journal struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens the journal
// database, and ensures the schema exists.
func Open(dataDir string) (*Journal, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}

	if _, err := db.Exec(createOperations); err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close releases the database handle. Idempotent.
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}

// Append records one operation-log entry for the given robot.
func (j *Journal) Append(robotID, entry string) error {
	_, err := j.db.Exec(
		"INSERT INTO operations (op_id, robot_id, entry, recorded_at) VALUES (?, ?, ?, ?)",
		generateUUID(), robotID, entry, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append operation: %w", err)
	}
	return nil
}

// Recent returns up to limit of the latest operations, oldest first.
func (j *Journal) Recent(limit int) ([]Operation, error) {
	rows, err := j.db.Query(
		"SELECT op_id, robot_id, entry, recorded_at FROM operations ORDER BY rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query operations: %w", err)
	}
	defer rows.Close()

	var ops []Operation
	for rows.Next() {
		var op Operation
		var at string
		if err := rows.Scan(&op.ID, &op.RobotID, &op.Entry, &at); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		op.RecordedAt, err = time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("parse recorded_at %q: %w", at, err)
		}
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}

	// Reverse into chronological order.
	for i, k := 0, len(ops)-1; i < k; i, k = i+1, k-1 {
		ops[i], ops[k] = ops[k], ops[i]
	}
	return ops, nil
}

// Count reports the total number of recorded operations.
func (j *Journal) Count() (int, error) {
	var n int
	if err := j.db.QueryRow("SELECT COUNT(*) FROM operations").Scan(&n); err != nil {
		return 0, fmt.Errorf("count operations: %w", err)
	}
	return n, nil
}

// generateUUID generates a UUID v7 so journal ids sort by time.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}
