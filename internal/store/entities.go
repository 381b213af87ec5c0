package store

import (
	"database/sql"
	"fmt"
)

// Get-or-create resolvers for reference entities. Each looks a row up by
// its natural key and inserts it with only the known fields when absent,
// re-selecting by a unique column to obtain the generated id. All of them
// run inside the per-flight ingestion transaction; execution is
// single-threaded, so check-then-insert cannot race, and the UNIQUE
// constraints on the external keys back the lookup.

// GetOrCreatePilot resolves a pilot by (forename, surname, ladder id)
func GetOrCreatePilot(tx *sql.Tx, forename, surname string, ladderID int64) (int64, error) {
	var id int64
	err := tx.QueryRow(`
		SELECT id FROM pilot
		WHERE forename = ? AND surname = ? AND ladder_id = ?
	`, forename, surname, ladderID).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up pilot: %w", err)
	}

	_, err = tx.Exec(
		"INSERT INTO pilot (forename, surname, ladder_id) VALUES (?, ?, ?)",
		forename, surname, ladderID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert pilot: %w", err)
	}

	// ladder_id is unique and we just inserted a non-null value
	err = tx.QueryRow("SELECT id FROM pilot WHERE ladder_id = ?", ladderID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to re-select pilot: %w", err)
	}
	return id, nil
}

// GetOrCreateClub resolves a club by its ladder code. A club created here
// has no name; the bulk prefill fills that in.
func GetOrCreateClub(tx *sql.Tx, ladderCode string) (int64, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM club WHERE ladder_code = ?", ladderCode).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up club: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO club (ladder_code) VALUES (?)", ladderCode); err != nil {
		return 0, fmt.Errorf("failed to insert club: %w", err)
	}

	err = tx.QueryRow("SELECT id FROM club WHERE ladder_code = ?", ladderCode).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to re-select club: %w", err)
	}
	return id, nil
}

// GetOrCreateGliderModel resolves a glider model by name. A model created
// here carries only the name and ladder id; seats, vintage, turbo and
// handicap come from the bulk prefill.
func GetOrCreateGliderModel(tx *sql.Tx, modelName string, ladderID int64) (int64, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM glider_model WHERE model_name = ?", modelName).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up glider model: %w", err)
	}

	_, err = tx.Exec(
		"INSERT INTO glider_model (model_name, ladder_id) VALUES (?, ?)",
		modelName, ladderID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert glider model: %w", err)
	}

	err = tx.QueryRow("SELECT id FROM glider_model WHERE ladder_id = ?", ladderID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to re-select glider model: %w", err)
	}
	return id, nil
}

// GetOrCreateGlider resolves an individual airframe by registration
func GetOrCreateGlider(tx *sql.Tx, reg string, modelID int64) (int64, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM glider WHERE reg = ?", reg).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up glider: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO glider (reg, model) VALUES (?, ?)", reg, modelID); err != nil {
		return 0, fmt.Errorf("failed to insert glider: %w", err)
	}

	err = tx.QueryRow("SELECT id FROM glider WHERE reg = ?", reg).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to re-select glider: %w", err)
	}
	return id, nil
}
