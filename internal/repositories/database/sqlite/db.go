package sqlite

import (
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	home_country_key TEXT NOT NULL,
	comparison_country_key TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS profile_values (
	field_name TEXT PRIMARY KEY,
	base_value REAL NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS rate_snapshots (
	snapshot_id TEXT PRIMARY KEY,
	base_code TEXT NOT NULL,
	rates_json TEXT NOT NULL,
	fetched_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_rate_snapshots_fetched_at
	ON rate_snapshots(fetched_at DESC);
`

// EnsureSchema creates the tables the repositories need. Safe to call on
// every startup.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create sqlite schema: %w", err)
	}
	return nil
}
