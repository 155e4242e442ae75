package ports

import (
	"context"

	"elevator-sequence-service/internal/domain"
)

// Port: a boundary for retrieving passenger requests from a data source.
type PassengerRepository interface {
	// Retrieve all passenger requests available for scheduling.
	ListPassengers(ctx context.Context) ([]domain.Passenger, error)
}
