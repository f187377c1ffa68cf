package storage

import (
	"context"
	"travel/pkg/domain"
)

// AccountStorage persists user accounts and their role profiles.
type AccountStorage interface {
	StoreUsers(ctx context.Context, users ...domain.User) ([]domain.User, error)
	StorePassengers(ctx context.Context, passengers ...domain.Passenger) ([]domain.Passenger, error)
	StoreAirportAdmins(ctx context.Context, admins ...domain.AirportAdmin) ([]domain.AirportAdmin, error)
	StoreAirlineAdmins(ctx context.Context, admins ...domain.AirlineAdmin) ([]domain.AirlineAdmin, error)
	// PassengerByEmail returns nil when no passenger profile exists for email.
	PassengerByEmail(ctx context.Context, email domain.Email) (*domain.Passenger, error)
}
