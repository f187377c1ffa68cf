package storage

import (
	"context"
	"travel/pkg/domain"
)

// LodgingStorage persists companies, hotels, stays and the transactions
// purchasing them.
type LodgingStorage interface {
	StoreCompanies(ctx context.Context, companies ...domain.Company) ([]domain.Company, error)
	StoreHotels(ctx context.Context, hotels ...domain.Hotel) ([]domain.Hotel, error)
	// StoreTransactions stores transactions; Date is set to the current day by the database.
	StoreTransactions(ctx context.Context, txs ...domain.Transaction) ([]domain.Transaction, error)
	StoreStays(ctx context.Context, stays ...domain.Stay) ([]domain.Stay, error)
	// HotelStays lists the stays of a hotel ordered by ID.
	HotelStays(ctx context.Context, hotelID domain.HotelID) ([]domain.Stay, error)
}
