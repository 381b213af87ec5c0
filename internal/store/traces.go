package store

import (
	"database/sql"
	"fmt"
	"time"
)

// TraceIDByHash returns the id of the trace with the given content hash,
// or (0, false, nil) if no such trace is stored
func TraceIDByHash(tx *sql.Tx, sha256Hash string) (int64, bool, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM trace WHERE sha256_hash = ?", sha256Hash).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to look up trace: %w", err)
	}
	return id, true, nil
}

// InsertTrace records a newly archived trace and returns its id
func InsertTrace(tx *sql.Tx, downloadedAt time.Time, originalFilename, sha256Hash string) (int64, error) {
	_, err := tx.Exec(
		"INSERT INTO trace (downloaded_at, original_filename, sha256_hash) VALUES (?, ?, ?)",
		downloadedAt, originalFilename, sha256Hash,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert trace: %w", err)
	}

	var id int64
	err = tx.QueryRow("SELECT id FROM trace WHERE sha256_hash = ?", sha256Hash).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to re-select trace: %w", err)
	}
	return id, nil
}
