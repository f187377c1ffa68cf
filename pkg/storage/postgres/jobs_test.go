package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"travel/pkg/storage/postgres"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

type pingJobArgs struct {
	ID int64 `json:"id"`
}

func (pingJobArgs) Kind() string { return "ping" }

type pingTxJobArgs struct {
	ID int64 `json:"id"`
}

func (pingTxJobArgs) Kind() string { return "ping_tx" }

func migrateRiver(t *testing.T, pg *postgres.PgSQL) {
	t.Helper()
	migrator, err := rivermigrate.New(riverdatabasesql.New(pg.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, nil)
	require.NoError(t, err)
}

func TestPgSQL_AddJob(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()
	unique := &river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true}}

	t.Run("outside a transaction", func(t *testing.T) {
		inserted, err := pg.AddJob(ctx, pingJobArgs{ID: 1}, unique)
		require.NoError(t, err)
		require.True(t, inserted)

		rivertest.RequireInserted[*riverdatabasesql.Driver](ctx, t,
			riverdatabasesql.New(pg.DB.(*sql.DB)), &pingJobArgs{}, nil)
	})

	t.Run("duplicate is skipped", func(t *testing.T) {
		inserted, err := pg.AddJob(ctx, pingJobArgs{ID: 1}, unique)
		require.NoError(t, err)
		require.False(t, inserted)
	})

	t.Run("inside a transaction", func(t *testing.T) {
		txStorage, err := pg.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = txStorage.Rollback() }()

		inserted, err := txStorage.AddJob(ctx, pingTxJobArgs{ID: 2}, unique)
		require.NoError(t, err)
		require.True(t, inserted)

		rivertest.RequireInsertedTx[*riverdatabasesql.Driver](ctx, t,
			txStorage.(*postgres.PgSQL).DB.(*sql.Tx), &pingTxJobArgs{}, nil)
	})
}
