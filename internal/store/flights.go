package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Flight is the central fact record of the mirror
type Flight struct {
	ID       int64
	LadderID int64

	PilotID  int64
	ClubID   int64
	GliderID int64
	TraceID  sql.NullInt64
	TaskID   int64

	FlightDate time.Time
	ScrapedAt  time.Time

	Weekend   bool
	Junior    bool
	Height    bool
	TwoSeater bool
	Wooden    bool
	Engine    bool

	Penalty         float64
	Speed           float64
	HandicapSpeed   float64
	ScoringDistance float64
	SpeedPoints     float64
	HeightGain      float64
	HeightPoints    float64
	TotalPoints     float64
}

// FlightExists reports whether a flight with the given ladder id is
// already stored. This is the idempotency check that makes re-scraping an
// overlapping window a no-op.
func FlightExists(tx *sql.Tx, ladderID int64) (bool, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM flight WHERE ladder_id = ?", ladderID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up flight: %w", err)
	}
	return true, nil
}

// InsertFlight stores a fully resolved flight row
func InsertFlight(tx *sql.Tx, f *Flight) error {
	_, err := tx.Exec(`
		INSERT INTO flight (
			pilot, club, glider, trace,
			flight_date, scraped_at,
			is_weekend, is_junior, is_height, is_two_seater, is_wooden, has_engine,
			penalty, task,
			speed, handicap_speed, scoring_distance,
			speed_points, height_gain, height_points, total_points,
			ladder_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		f.PilotID, f.ClubID, f.GliderID, f.TraceID,
		f.FlightDate, f.ScrapedAt,
		f.Weekend, f.Junior, f.Height, f.TwoSeater, f.Wooden, f.Engine,
		f.Penalty, f.TaskID,
		f.Speed, f.HandicapSpeed, f.ScoringDistance,
		f.SpeedPoints, f.HeightGain, f.HeightPoints, f.TotalPoints,
		f.LadderID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert flight: %w", err)
	}

	return nil
}

// CountFlights returns the number of stored flights
func (s *Store) CountFlights() (int64, error) {
	var count int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM flight").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count flights: %w", err)
	}
	return count, nil
}
