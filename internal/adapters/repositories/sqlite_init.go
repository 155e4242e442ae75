package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the database schema. Statements use portable syntax so
// the same code serves the SQLite server store and the dbtool Postgres
// path.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPassengersQuery := `
	CREATE TABLE IF NOT EXISTS passengers (
		passenger_id INTEGER PRIMARY KEY,
		pickup_floor INTEGER NOT NULL,
		drop_floor INTEGER NOT NULL,
		name TEXT
	);
	`

	statements := []string{
		createPassengersQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PassengerSeed struct {
	PassengerID int    `json:"passenger_id"`
	Pickup      int    `json:"pickup"`
	Drop        int    `json:"drop"`
	Name        string `json:"name"`
}

// Populate the database with passenger data from a JSON file. Seeds
// must already satisfy pickup != drop; a zero-distance seed is a data
// error, not something to silently filter.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed passengers: read %q: %w", jsonPath, err)
	}

	var data []PassengerSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed passengers: parse json: %w", err)
	}

	rows := make([]PassengerSeed, 0, len(data))
	for i, item := range data {
		if item.PassengerID <= 0 {
			return fmt.Errorf("seed passengers: invalid passenger_id at index %d: %d", i+1, item.PassengerID)
		}
		if item.Pickup == item.Drop {
			return fmt.Errorf("seed passengers: passenger_id=%d has pickup == drop (%d)", item.PassengerID, item.Pickup)
		}
		item.Name = strings.TrimSpace(item.Name)
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed passengers: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// ON CONFLICT upsert is understood by both SQLite and Postgres, as
	// are $N placeholders.
	query := `
	INSERT INTO passengers (
		passenger_id,
		pickup_floor,
		drop_floor,
		name
	)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (passenger_id) DO UPDATE SET
		pickup_floor = EXCLUDED.pickup_floor,
		drop_floor = EXCLUDED.drop_floor,
		name = EXCLUDED.name;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed passengers: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		if _, err := stmt.Exec(p.PassengerID, p.Pickup, p.Drop, p.Name); err != nil {
			return fmt.Errorf("seed passengers: insert passenger_id=%d: %w", p.PassengerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed passengers: commit tx: %w", err)
	}

	return nil
}
