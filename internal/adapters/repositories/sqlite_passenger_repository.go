package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"elevator-sequence-service/internal/domain"
)

// SQLite-backed implementation of the PassengerRepository port.
type SqlitePassengerRepository struct{ DB *sql.DB }

func NewSqlitePassengerRepository(db *sql.DB) *SqlitePassengerRepository {
	return &SqlitePassengerRepository{DB: db}
}

// Return all passenger requests stored in the database.
func (s *SqlitePassengerRepository) ListPassengers(ctx context.Context) ([]domain.Passenger, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite passenger repository: DB is nil")
	}

	query := `
	SELECT
		passenger_id,
		pickup_floor,
		drop_floor,
		name
	FROM passengers
	ORDER BY passenger_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list passengers: query passengers table: %w", err)
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0, 16)
	for rows.Next() {
		var (
			id, pickup, drop int
			name             sql.NullString
		)
		if err := rows.Scan(&id, &pickup, &drop, &name); err != nil {
			return nil, fmt.Errorf("list passengers: scan row: %w", err)
		}
		passengers = append(passengers, domain.Passenger{
			ID:     id,
			Pickup: pickup,
			Drop:   drop,
			Name:   name.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list passengers: row iteration: %w", err)
	}

	return passengers, nil
}
