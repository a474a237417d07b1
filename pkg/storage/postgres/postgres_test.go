package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	root "taskhub"
	"taskhub/pkg/domain"
	"taskhub/pkg/storage/postgres"

	"github.com/google/uuid"
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
	goose.SetBaseFS(root.Migrations)

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

	// start container
	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	// create postgres instance
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

	// apply the embedded migrations
	err = runMigrations(pgSQL.DB.(*sql.DB))
	require.NoError(t, err)

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

// newTestDomainUser builds (but does not store) a user with unique
// email/username derived from a fresh uuid.
func newTestDomainUser(t *testing.T) *domain.User {
	t.Helper()

	suffix := uuid.NewString()[:8]
	email, err := domain.NewEmail(fmt.Sprintf("user-%s@example.com", suffix))
	require.NoError(t, err)
	user, err := domain.NewUser(email, "user-"+suffix, "$2a$10$testhash")
	require.NoError(t, err)

	return user
}

// storeTestUser inserts a user with unique email/username and returns the
// stored row.
func storeTestUser(t *testing.T, pgSQL *postgres.PgSQL) *domain.User {
	t.Helper()

	user := newTestDomainUser(t)

	stored, err := pgSQL.StoreUser(context.Background(), *user)
	require.NoError(t, err)
	require.NotNil(t, stored)

	return stored
}
