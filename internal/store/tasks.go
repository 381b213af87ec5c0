package store

import (
	"database/sql"
	"fmt"
)

// InsertTask stores an ordered turnpoint sequence as a fresh task and
// returns its id. Tasks are never shared between flights and never
// deleted, so the next id is the count of distinct existing ids.
func InsertTask(tx *sql.Tx, turnpointCodes []string) (int64, error) {
	var taskID int64
	if err := tx.QueryRow("SELECT COUNT(DISTINCT id) FROM task").Scan(&taskID); err != nil {
		return 0, fmt.Errorf("failed to allocate task id: %w", err)
	}

	for i, code := range turnpointCodes {
		_, err := tx.Exec(
			"INSERT INTO task (id, turnpoint_index, turnpoint_code) VALUES (?, ?, ?)",
			taskID, i, code,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert turnpoint %d: %w", i, err)
		}
	}

	return taskID, nil
}

// TaskTurnpoints returns the ordered turnpoint codes of a task
func TaskTurnpoints(tx *sql.Tx, taskID int64) ([]string, error) {
	rows, err := tx.Query(
		"SELECT turnpoint_code FROM task WHERE id = ? ORDER BY turnpoint_index",
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query task: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan turnpoint: %w", err)
		}
		codes = append(codes, code)
	}

	return codes, rows.Err()
}
