package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"autobuilder/pkg/domain"
	"autobuilder/pkg/storage"
	"autobuilder/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Ping(ctx))
	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreRepository(ctx, domain.Repository{
		Owner: "acme", Name: "committed", FullName: "acme/committed", GitHubRepoID: 1,
	})
	require.NoError(t, err)
	require.NoError(t, txStorage.Commit())

	repo, err := pg.RepositoryByFullName(ctx, "acme/committed")
	require.NoError(t, err)
	require.NotNil(t, repo)
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreRepository(ctx, domain.Repository{
		Owner: "acme", Name: "discarded", FullName: "acme/discarded", GitHubRepoID: 2,
	})
	require.NoError(t, err)
	require.NoError(t, txStorage.Rollback())

	repo, err := pg.RepositoryByFullName(ctx, "acme/discarded")
	require.NoError(t, err)
	require.Nil(t, repo)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreRepository(ctx, domain.Repository{
			Owner: "acme", Name: "kept", FullName: "acme/kept", GitHubRepoID: 3,
		})

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.StoreRepository(ctx, domain.Repository{
			Owner: "acme", Name: "dropped", FullName: "acme/dropped", GitHubRepoID: 4,
		})

		return errors.New("boom")
	})
	require.Error(t, err)

	_, total, err := pg.ListRepositories(ctx, storage.RepositoryFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
}
