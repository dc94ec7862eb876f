package journal

// Schema DDL. The journal persists across sessions, so tables are
// created only when missing.
const createOperations = `CREATE TABLE IF NOT EXISTS operations (
    op_id TEXT PRIMARY KEY,
    robot_id TEXT NOT NULL,
    entry TEXT NOT NULL,
    recorded_at TEXT NOT NULL
);`
