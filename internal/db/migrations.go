package db

import (
	"database/sql"
	"fmt"
)

// migrations is a list of SQL statements applied in order after schema creation.
// Each migration must be idempotent. Append new migrations at the end.
var migrations = []string{
	// Migration 1: item history is read per item, newest day first.
	`CREATE INDEX IF NOT EXISTS idx_day_log_item ON day_log(item_id, day DESC)`,
	// Migration 2: the daily run scans active items only.
	`CREATE INDEX IF NOT EXISTS idx_items_active ON items(id) WHERE deleted_at IS NULL`,
}

// Migrate ensures the schema and runs the migrations.
func Migrate(db *sql.DB) error {
	if err := EnsureSchema(db); err != nil {
		return err
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
