package postgres

import (
	"context"
	"fmt"
	"travel/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	airlinesTable     = "airline"
	destinationsTable = "destination"
	airplanesTable    = "airplane"
	flightsTable      = "flight"
	faresTable        = "fare"
	ticketsTable      = "ticket"
)

func (p *PgSQL) StoreAirlines(ctx context.Context, airlines ...domain.Airline) ([]domain.Airline, error) {
	if len(airlines) == 0 {
		return nil, nil
	}

	rows, err := insertRows(ctx, p.Builder, airlinesTable, mapAll(airlines, pgAirlineFromDomain))
	if err != nil {
		return nil, err
	}

	return mapAll(rows, PgAirline.toDomain), nil
}

func (p *PgSQL) StoreDestinations(ctx context.Context,
	destinations ...domain.Destination) ([]domain.Destination, error) {
	if len(destinations) == 0 {
		return nil, nil
	}

	rows, err := insertRows(ctx, p.Builder, destinationsTable, mapAll(destinations, pgDestinationFromDomain))
	if err != nil {
		return nil, err
	}

	return mapAll(rows, PgDestination.toDomain), nil
}

func (p *PgSQL) StoreAirplanes(ctx context.Context, airplanes ...domain.Airplane) ([]domain.Airplane, error) {
	if len(airplanes) == 0 {
		return nil, nil
	}

	rows, err := insertRows(ctx, p.Builder, airplanesTable, mapAll(airplanes, pgAirplaneFromDomain))
	if err != nil {
		return nil, err
	}

	return mapAll(rows, PgAirplane.toDomain), nil
}

func (p *PgSQL) StoreFlights(ctx context.Context, flights ...domain.Flight) ([]domain.Flight, error) {
	if len(flights) == 0 {
		return nil, nil
	}

	rows, err := insertRows(ctx, p.Builder, flightsTable, mapAll(flights, pgFlightFromDomain))
	if err != nil {
		return nil, err
	}

	return mapAll(rows, PgFlight.toDomain), nil
}

func (p *PgSQL) StoreFares(ctx context.Context, fares ...domain.Fare) ([]domain.Fare, error) {
	if len(fares) == 0 {
		return nil, nil
	}

	rows, err := insertRows(ctx, p.Builder, faresTable, mapAll(fares, pgFareFromDomain))
	if err != nil {
		return nil, err
	}

	return convertAll(rows, PgFare.toDomain)
}

func (p *PgSQL) StoreTickets(ctx context.Context, tickets ...domain.Ticket) ([]domain.Ticket, error) {
	if len(tickets) == 0 {
		return nil, nil
	}

	rows, err := insertRows(ctx, p.Builder, ticketsTable, mapAll(tickets, pgTicketFromDomain))
	if err != nil {
		return nil, err
	}

	return mapAll(rows, PgTicket.toDomain), nil
}

func (p *PgSQL) FlightFares(ctx context.Context, number domain.FlightNumber) ([]domain.Fare, error) {
	var rows []PgFare
	if err := p.Builder.From(faresTable).
		Where(goqu.I("flight_num").Eq(int64(number))).
		Order(goqu.I("price").Asc(), goqu.I("fare_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch flight fares from pg: %w", err)
	}

	return convertAll(rows, PgFare.toDomain)
}

func (p *PgSQL) PassengerTickets(ctx context.Context, email domain.Email) ([]domain.Ticket, error) {
	var rows []PgTicket
	if err := p.Builder.From(ticketsTable).
		Where(goqu.I("passenger_email").Eq(string(email))).
		Order(goqu.I("ticket_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch passenger tickets from pg: %w", err)
	}

	return mapAll(rows, PgTicket.toDomain), nil
}
