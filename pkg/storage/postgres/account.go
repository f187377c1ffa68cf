package postgres

import (
	"context"
	"fmt"
	"travel/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	usersTable         = "users"
	passengersTable    = "passenger"
	airportAdminsTable = "airport_admin"
	airlineAdminsTable = "airline_admin"
)

func (p *PgSQL) StoreUsers(ctx context.Context, users ...domain.User) ([]domain.User, error) {
	if len(users) == 0 {
		return nil, nil
	}

	rows, err := insertRows(ctx, p.Builder, usersTable, mapAll(users, pgUserFromDomain))
	if err != nil {
		return nil, err
	}

	return mapAll(rows, PgUser.toDomain), nil
}

func (p *PgSQL) StorePassengers(ctx context.Context, passengers ...domain.Passenger) ([]domain.Passenger, error) {
	if len(passengers) == 0 {
		return nil, nil
	}

	rows, err := insertRows(ctx, p.Builder, passengersTable, mapAll(passengers, pgPassengerFromDomain))
	if err != nil {
		return nil, err
	}

	return mapAll(rows, PgPassenger.toDomain), nil
}

func (p *PgSQL) StoreAirportAdmins(ctx context.Context,
	admins ...domain.AirportAdmin) ([]domain.AirportAdmin, error) {
	if len(admins) == 0 {
		return nil, nil
	}

	rows, err := insertRows(ctx, p.Builder, airportAdminsTable, mapAll(admins, pgAirportAdminFromDomain))
	if err != nil {
		return nil, err
	}

	return mapAll(rows, PgAirportAdmin.toDomain), nil
}

func (p *PgSQL) StoreAirlineAdmins(ctx context.Context,
	admins ...domain.AirlineAdmin) ([]domain.AirlineAdmin, error) {
	if len(admins) == 0 {
		return nil, nil
	}

	rows, err := insertRows(ctx, p.Builder, airlineAdminsTable, mapAll(admins, pgAirlineAdminFromDomain))
	if err != nil {
		return nil, err
	}

	return mapAll(rows, PgAirlineAdmin.toDomain), nil
}

// PassengerByEmail returns the passenger profile for email, or nil.
func (p *PgSQL) PassengerByEmail(ctx context.Context, email domain.Email) (*domain.Passenger, error) {
	var row PgPassenger
	found, err := p.Builder.From(passengersTable).
		Where(goqu.I("email").Eq(string(email))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch passenger by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	passenger := row.toDomain()

	return &passenger, nil
}
