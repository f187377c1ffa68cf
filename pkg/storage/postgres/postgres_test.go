package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"
	"travel"
	"travel/pkg/domain"
	"travel/pkg/storage/postgres"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(travel.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)

	err = runMigrations(pgSQL.DB.(*sql.DB))
	require.NoError(t, err)

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

const (
	passengerEmail domain.Email = "jane@example.com"
	adminEmail     domain.Email = "admin@example.com"
)

// seedAccounts stores a passenger and an airport admin.
func seedAccounts(t *testing.T, pg *postgres.PgSQL) {
	t.Helper()
	ctx := context.Background()

	_, err := pg.StoreUsers(ctx,
		domain.User{Email: passengerEmail, FirstName: "Jane", LastName: "Doe", Passenger: true},
		domain.User{Email: adminEmail, FirstName: "Ada", LastName: "Admin", AirportAdmin: true},
	)
	require.NoError(t, err)
	_, err = pg.StorePassengers(ctx, domain.Passenger{Email: passengerEmail, SSN: "123-45-6789", Address: "1 Main St"})
	require.NoError(t, err)
	_, err = pg.StoreAirportAdmins(ctx, domain.AirportAdmin{Email: adminEmail, AdminID: 7})
	require.NoError(t, err)
}

// seedHotel stores a company and one hotel owned by it.
func seedHotel(t *testing.T, pg *postgres.PgSQL, image string) domain.Hotel {
	t.Helper()
	ctx := context.Background()

	_, err := pg.StoreCompanies(ctx, domain.Company{Name: "Acme Stays"})
	require.NoError(t, err)
	hotels, err := pg.StoreHotels(ctx, domain.Hotel{
		Name:        "Harbor Inn",
		Location:    "Lisbon",
		CompanyName: "Acme Stays",
		Image:       image,
	})
	require.NoError(t, err)
	require.Len(t, hotels, 1)

	return hotels[0]
}
