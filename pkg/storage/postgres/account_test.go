package postgres_test

import (
	"context"
	"testing"
	"travel/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Accounts(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	seedAccounts(t, pg)

	t.Run("passenger by email", func(t *testing.T) {
		p, err := pg.PassengerByEmail(ctx, passengerEmail)
		require.NoError(t, err)
		require.NotNil(t, p)
		require.Equal(t, "123-45-6789", p.SSN)
		require.Equal(t, "/jane@example.com/", p.AbsoluteURL())
	})

	t.Run("unknown passenger", func(t *testing.T) {
		p, err := pg.PassengerByEmail(ctx, "ghost@example.com")
		require.NoError(t, err)
		require.Nil(t, p)
	})

	t.Run("admin IDs are unique", func(t *testing.T) {
		_, err := pg.StoreUsers(ctx, domain.User{Email: "other@example.com", AirportAdmin: true})
		require.NoError(t, err)
		_, err = pg.StoreAirportAdmins(ctx, domain.AirportAdmin{Email: "other@example.com", AdminID: 7})
		require.Error(t, err)
	})

	t.Run("airline admin", func(t *testing.T) {
		_, err := pg.StoreUsers(ctx, domain.User{Email: "crew@example.com", AirlineAdmin: true})
		require.NoError(t, err)
		admins, err := pg.StoreAirlineAdmins(ctx, domain.AirlineAdmin{Email: "crew@example.com", EmployeeID: 42})
		require.NoError(t, err)
		require.Equal(t, []domain.AirlineAdmin{{Email: "crew@example.com", EmployeeID: 42}}, admins)
	})

	t.Run("empty input", func(t *testing.T) {
		users, err := pg.StoreUsers(ctx)
		require.NoError(t, err)
		require.Nil(t, users)
	})
}
