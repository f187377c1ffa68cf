package postgres

import (
	"context"
	"fmt"
	"travel/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	airportComplaintsTable = "airport_complaint"
	airlineComplaintsTable = "airline_complaint"
)

func (p *PgSQL) StoreAirportComplaints(ctx context.Context,
	complaints ...domain.AirportComplaint) ([]domain.AirportComplaint, error) {
	if len(complaints) == 0 {
		return nil, nil
	}

	rows, err := insertRows(ctx, p.Builder, airportComplaintsTable,
		mapAll(complaints, pgAirportComplaintFromDomain))
	if err != nil {
		return nil, err
	}

	return mapAll(rows, PgAirportComplaint.toDomain), nil
}

func (p *PgSQL) StoreAirlineComplaints(ctx context.Context,
	complaints ...domain.AirlineComplaint) ([]domain.AirlineComplaint, error) {
	if len(complaints) == 0 {
		return nil, nil
	}

	rows, err := insertRows(ctx, p.Builder, airlineComplaintsTable,
		mapAll(complaints, pgAirlineComplaintFromDomain))
	if err != nil {
		return nil, err
	}

	return mapAll(rows, PgAirlineComplaint.toDomain), nil
}

func (p *PgSQL) PassengerAirportComplaints(ctx context.Context,
	email domain.Email) ([]domain.AirportComplaint, error) {
	var rows []PgAirportComplaint
	if err := p.Builder.From(airportComplaintsTable).
		Where(goqu.I("passenger_email").Eq(string(email))).
		Order(goqu.I("complaint_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch airport complaints from pg: %w", err)
	}

	return mapAll(rows, PgAirportComplaint.toDomain), nil
}

func (p *PgSQL) PassengerAirlineComplaints(ctx context.Context,
	email domain.Email) ([]domain.AirlineComplaint, error) {
	var rows []PgAirlineComplaint
	if err := p.Builder.From(airlineComplaintsTable).
		Where(goqu.I("passenger_email").Eq(string(email))).
		Order(goqu.I("complaint_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch airline complaints from pg: %w", err)
	}

	return mapAll(rows, PgAirlineComplaint.toDomain), nil
}
