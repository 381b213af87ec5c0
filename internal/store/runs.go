package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScrapeRun is one audit row per scrape invocation
type ScrapeRun struct {
	ID         string
	Kind       string // "days" or "season"
	Target     string
	StartedAt  time.Time
	FinishedAt time.Time
	Found      int
	New        int
	Skipped    int
}

// BeginScrapeRun records the start of a scrape and returns its run id
func (s *Store) BeginScrapeRun(kind, target string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO scrape_run (id, kind, target, started_at) VALUES (?, ?, ?, ?)",
		id, kind, target, time.Now(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert scrape run: %w", err)
	}
	return id, nil
}

// FinishScrapeRun records the outcome of a scrape
func (s *Store) FinishScrapeRun(id string, found, new, skipped int) error {
	_, err := s.db.Exec(`
		UPDATE scrape_run
		SET finished_at = ?, records_found = ?, records_new = ?, records_skipped = ?
		WHERE id = ?
	`, time.Now(), found, new, skipped, id)
	if err != nil {
		return fmt.Errorf("failed to update scrape run: %w", err)
	}
	return nil
}

// RecentScrapeRuns returns the most recently started runs, newest first
func (s *Store) RecentScrapeRuns(limit int) ([]*ScrapeRun, error) {
	rows, err := s.db.Query(`
		SELECT id, kind, target, started_at,
		       COALESCE(finished_at, started_at),
		       records_found, records_new, records_skipped
		FROM scrape_run
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scrape runs: %w", err)
	}
	defer rows.Close()

	var runs []*ScrapeRun
	for rows.Next() {
		r := &ScrapeRun{}
		err := rows.Scan(
			&r.ID, &r.Kind, &r.Target, &r.StartedAt,
			&r.FinishedAt,
			&r.Found, &r.New, &r.Skipped,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scrape run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}
