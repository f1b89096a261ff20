package db

import (
	"database/sql"
	"fmt"
)

// migrations is an ordered list of SQL statements to run.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS visits (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT    NOT NULL,
		description TEXT,
		date        TEXT,
		cep         TEXT,
		address     TEXT,
		city        TEXT,
		uf          TEXT,
		lat         REAL,
		lon         REAL,
		responsible TEXT,
		status      TEXT    DEFAULT 'scheduled',
		created_at  TEXT,
		updated_at  TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_visits_status ON visits(status)`,
	`CREATE INDEX IF NOT EXISTS idx_visits_date ON visits(date)`,
}

// migrate runs all migrations in order.
func migrate(db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
