package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"autobuilder"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/storage/postgres"

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
	goose.SetBaseFS(autobuilder.Migrations)
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

func seedRepository(t *testing.T, pg *postgres.PgSQL, fullName string, githubID int64) *domain.Repository {
	t.Helper()
	repo, err := pg.StoreRepository(t.Context(), domain.Repository{
		Owner:         "acme",
		Name:          fullName[len("acme/"):],
		FullName:      fullName,
		GitHubRepoID:  githubID,
		PrimaryBranch: "main",
		Settings:      map[string]any{"notify": true},
	})
	require.NoError(t, err)

	return repo
}

func seedIntegration(t *testing.T, pg *postgres.PgSQL, repoID domain.RepositoryID) *domain.Integration {
	t.Helper()
	integration, err := pg.StoreIntegration(t.Context(), domain.Integration{
		RepositoryID:   repoID,
		Platform:       domain.PlatformCodemagic,
		Config:         map[string]any{"app_id": "app-1"},
		TokenEncrypted: "sealed",
		IsActive:       true,
	})
	require.NoError(t, err)

	return integration
}

func seedBuild(t *testing.T,
	pg *postgres.PgSQL,
	integration *domain.Integration,
	status domain.BuildStatus,
	retryOf domain.BuildID) *domain.Build {
	t.Helper()
	build, err := pg.StoreBuild(t.Context(), domain.Build{
		RepositoryID:  integration.RepositoryID,
		IntegrationID: integration.ID,
		RetryOf:       retryOf,
		Branch:        "main",
		CommitSHA:     "abc123",
		Trigger:       domain.TriggerPush,
		Status:        status,
	})
	require.NoError(t, err)

	return build
}
