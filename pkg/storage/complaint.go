package storage

import (
	"context"
	"travel/pkg/domain"
)

// ComplaintStorage persists passenger complaints against airports and airlines.
type ComplaintStorage interface {
	StoreAirportComplaints(ctx context.Context,
		complaints ...domain.AirportComplaint) ([]domain.AirportComplaint, error)
	StoreAirlineComplaints(ctx context.Context,
		complaints ...domain.AirlineComplaint) ([]domain.AirlineComplaint, error)
	// PassengerAirportComplaints lists a passenger's airport complaints ordered by ID.
	PassengerAirportComplaints(ctx context.Context, email domain.Email) ([]domain.AirportComplaint, error)
	// PassengerAirlineComplaints lists a passenger's airline complaints ordered by ID.
	PassengerAirlineComplaints(ctx context.Context, email domain.Email) ([]domain.AirlineComplaint, error)
}
