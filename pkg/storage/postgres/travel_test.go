package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"
	"travel/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Travel(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	seedAccounts(t, pg)

	_, err := pg.StoreAirlines(ctx, domain.Airline{Name: "Aurora Air", Location: "Oslo"})
	require.NoError(t, err)
	_, err = pg.StoreDestinations(ctx, domain.Destination{Code: "LIS", City: "Lisbon", Country: "Portugal"})
	require.NoError(t, err)
	planes, err := pg.StoreAirplanes(ctx, domain.Airplane{
		Model:         "A320",
		Manufacturer:  "Airbus",
		AirlineName:   "Aurora Air",
		EconomySeats:  150,
		BusinessSeats: 12,
	})
	require.NoError(t, err)
	require.Len(t, planes, 1)
	require.Equal(t, uint(162), planes[0].TotalSeats())

	dep := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	flights, err := pg.StoreFlights(ctx, domain.Flight{
		Number:          812,
		AirlineName:     "Aurora Air",
		Departure:       dep,
		Arrival:         dep.Add(3*time.Hour + 30*time.Minute),
		DestinationCode: "LIS",
		AirplaneID:      planes[0].ID,
	})
	require.NoError(t, err)
	require.Equal(t, 3*time.Hour+30*time.Minute, flights[0].Duration())
	require.True(t, flights[0].Departure.Equal(dep))

	fares, err := pg.StoreFares(ctx,
		domain.Fare{Price: 49900, Cabin: "business", FlightNumber: 812, Tickets: 12},
		domain.Fare{Price: 8999, Cabin: "economy", FlightNumber: 812, Tickets: 150},
	)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("812 - %d", fares[0].ID), fares[0].String())

	listed, err := pg.FlightFares(ctx, 812)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Equal(t, "economy", listed[0].Cabin)
	require.Equal(t, "89.99", listed[0].Price.String())

	_, err = pg.StoreTickets(ctx,
		domain.Ticket{SeatPosition: "12A", PassengerEmail: passengerEmail, FareID: listed[0].ID},
		domain.Ticket{SeatPosition: "12B", FareID: listed[0].ID},
	)
	require.NoError(t, err)

	tickets, err := pg.PassengerTickets(ctx, passengerEmail)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	require.Equal(t, "12A", tickets[0].SeatPosition)

	t.Run("removing the plane and destination keeps the flight", func(t *testing.T) {
		db := pg.DB.(*sql.DB)
		_, err := db.ExecContext(ctx, `DELETE FROM airplane WHERE pid = $1`, int64(planes[0].ID))
		require.NoError(t, err)
		_, err = db.ExecContext(ctx, `DELETE FROM destination WHERE airport_code = 'LIS'`)
		require.NoError(t, err)

		var dest sql.NullString
		var plane sql.NullInt64
		require.NoError(t, db.QueryRowContext(ctx,
			`SELECT dest_code, plane_id FROM flight WHERE flight_num = 812`).Scan(&dest, &plane))
		require.False(t, dest.Valid)
		require.False(t, plane.Valid)
	})

	t.Run("price above the column precision is rejected", func(t *testing.T) {
		_, err := pg.StoreFares(ctx, domain.Fare{Price: 1000000, Cabin: "first", FlightNumber: 812})
		require.Error(t, err)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := pg.StoreFares(ctx, domain.Fare{Price: -5, Cabin: "economy", FlightNumber: 812})
		require.Error(t, err)
	})
}
