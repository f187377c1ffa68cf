package postgres

import (
	"context"
	"fmt"
	"travel/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	companiesTable    = "company"
	hotelsTable       = "hotel"
	transactionsTable = "transaction"
	staysTable        = "stay"
)

func (p *PgSQL) StoreCompanies(ctx context.Context, companies ...domain.Company) ([]domain.Company, error) {
	if len(companies) == 0 {
		return nil, nil
	}

	rows, err := insertRows(ctx, p.Builder, companiesTable, mapAll(companies, pgCompanyFromDomain))
	if err != nil {
		return nil, err
	}

	return mapAll(rows, PgCompany.toDomain), nil
}

func (p *PgSQL) StoreHotels(ctx context.Context, hotels ...domain.Hotel) ([]domain.Hotel, error) {
	if len(hotels) == 0 {
		return nil, nil
	}

	rows, err := insertRows(ctx, p.Builder, hotelsTable, mapAll(hotels, pgHotelFromDomain))
	if err != nil {
		return nil, err
	}

	return mapAll(rows, PgHotel.toDomain), nil
}

func (p *PgSQL) StoreTransactions(ctx context.Context,
	txs ...domain.Transaction) ([]domain.Transaction, error) {
	if len(txs) == 0 {
		return nil, nil
	}

	rows, err := insertRows(ctx, p.Builder, transactionsTable, mapAll(txs, pgTransactionFromDomain))
	if err != nil {
		return nil, err
	}

	return mapAll(rows, PgTransaction.toDomain), nil
}

func (p *PgSQL) StoreStays(ctx context.Context, stays ...domain.Stay) ([]domain.Stay, error) {
	if len(stays) == 0 {
		return nil, nil
	}

	rows, err := insertRows(ctx, p.Builder, staysTable, mapAll(stays, pgStayFromDomain))
	if err != nil {
		return nil, err
	}

	return convertAll(rows, PgStay.toDomain)
}

// HotelStays returns the stays of a hotel ordered by ID.
func (p *PgSQL) HotelStays(ctx context.Context, hotelID domain.HotelID) ([]domain.Stay, error) {
	var rows []PgStay
	if err := p.Builder.From(staysTable).
		Where(goqu.I("hotel_id").Eq(int64(hotelID))).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch hotel stays from pg: %w", err)
	}

	return convertAll(rows, PgStay.toDomain)
}
