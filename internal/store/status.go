package store

import "fmt"

// MirrorTables lists the mirrored tables in display order
var MirrorTables = []string{
	"pilot", "club", "glider_model", "glider", "launch_point",
	"trace", "flight",
}

// TableCount returns the number of rows in a mirrored table
func (s *Store) TableCount(table string) (int64, error) {
	// table names come from MirrorTables, never from user input
	var count int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s rows: %w", table, err)
	}
	return count, nil
}

// CountTasks returns the number of distinct stored tasks
func (s *Store) CountTasks() (int64, error) {
	var count int64
	if err := s.db.QueryRow("SELECT COUNT(DISTINCT id) FROM task").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return count, nil
}
