package storage

import (
	"context"
	"travel/pkg/domain"
)

// TravelStorage persists airlines, their fleet and flights, and the fares and
// tickets sold on them.
type TravelStorage interface {
	StoreAirlines(ctx context.Context, airlines ...domain.Airline) ([]domain.Airline, error)
	StoreDestinations(ctx context.Context, destinations ...domain.Destination) ([]domain.Destination, error)
	StoreAirplanes(ctx context.Context, airplanes ...domain.Airplane) ([]domain.Airplane, error)
	StoreFlights(ctx context.Context, flights ...domain.Flight) ([]domain.Flight, error)
	StoreFares(ctx context.Context, fares ...domain.Fare) ([]domain.Fare, error)
	StoreTickets(ctx context.Context, tickets ...domain.Ticket) ([]domain.Ticket, error)
	// FlightFares lists the fares of a flight ordered by price.
	FlightFares(ctx context.Context, number domain.FlightNumber) ([]domain.Fare, error)
	// PassengerTickets lists the tickets held by a passenger ordered by ID.
	PassengerTickets(ctx context.Context, email domain.Email) ([]domain.Ticket, error)
}
