package storage

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// index is the sqlite run catalog. The bulk sample data stays in CSV;
// the index only answers listings.
type index struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id            TEXT PRIMARY KEY,
	scenario      TEXT NOT NULL,
	created_at    TEXT NOT NULL,
	dt            REAL NOT NULL,
	start_time    REAL NOT NULL,
	end_time      REAL NOT NULL,
	sample_period INTEGER NOT NULL,
	samples       INTEGER NOT NULL
);`

func openIndex(path string) (*index, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &index{db: db}, nil
}

func (ix *index) close() error {
	return ix.db.Close()
}

func (ix *index) add(meta RunMetadata) error {
	_, err := ix.db.Exec(
		`INSERT INTO runs (id, scenario, created_at, dt, start_time, end_time, sample_period, samples)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		meta.ID, meta.Scenario, meta.Timestamp.Format(time.RFC3339),
		meta.DT, meta.StartTime, meta.EndTime, meta.SamplePeriod, meta.Samples,
	)
	return err
}

func (ix *index) list() ([]RunMetadata, error) {
	rows, err := ix.db.Query(
		`SELECT id, scenario, created_at, dt, start_time, end_time, sample_period, samples
		 FROM runs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]RunMetadata, 0)
	for rows.Next() {
		var meta RunMetadata
		var createdAt string
		if err := rows.Scan(&meta.ID, &meta.Scenario, &createdAt,
			&meta.DT, &meta.StartTime, &meta.EndTime,
			&meta.SamplePeriod, &meta.Samples); err != nil {
			return nil, err
		}
		meta.Timestamp, _ = time.Parse(time.RFC3339, createdAt)
		runs = append(runs, meta)
	}
	return runs, rows.Err()
}
