package store

import (
	"database/sql"
	"fmt"
)

// Bulk insert helpers used only by the one-time prefill. Unlike the
// get-or-create resolvers these set the full attribute set.

// InsertGliderModelFull stores a glider model with its rich attributes
func InsertGliderModelFull(tx *sql.Tx, modelName string, seats int, vintage, turbo bool, handicap float64, ladderID int64) error {
	_, err := tx.Exec(`
		INSERT INTO glider_model (model_name, seats, vintage, turbo, handicap, ladder_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`, modelName, seats, vintage, turbo, handicap, ladderID)
	if err != nil {
		return fmt.Errorf("failed to insert glider model %q: %w", modelName, err)
	}
	return nil
}

// InsertLaunchPoint stores a launch point reference row.
// heightAMSL is in metres; clubLadderCode may be NULL.
func InsertLaunchPoint(tx *sql.Tx, siteName string, lat, lon, heightAMSL float64, ladderID string, clubLadderCode sql.NullString) error {
	_, err := tx.Exec(`
		INSERT INTO launch_point (site_name, lat, lon, height_amsl, ladder_id, club_ladder_code)
		VALUES (?, ?, ?, ?, ?, ?)
	`, siteName, lat, lon, heightAMSL, ladderID, clubLadderCode)
	if err != nil {
		return fmt.Errorf("failed to insert launch point %q: %w", siteName, err)
	}
	return nil
}

// InsertClubFull stores a club with its name and university flag
func InsertClubFull(tx *sql.Tx, name string, isUniversity bool, ladderCode string) error {
	_, err := tx.Exec(
		"INSERT INTO club (club_name, is_university, ladder_code) VALUES (?, ?, ?)",
		name, isUniversity, ladderCode,
	)
	if err != nil {
		return fmt.Errorf("failed to insert club %q: %w", name, err)
	}
	return nil
}

// InsertPilot stores a pilot from the bulk active pilot list
func InsertPilot(tx *sql.Tx, forename, surname string, ladderID int64) error {
	_, err := tx.Exec(
		"INSERT INTO pilot (forename, surname, ladder_id) VALUES (?, ?, ?)",
		forename, surname, ladderID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert pilot %s %s: %w", forename, surname, err)
	}
	return nil
}
