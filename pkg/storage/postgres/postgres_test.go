package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	root "handi"
	"handi/pkg/storage/postgres"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "handi_test"
)

// tables are emptied before every test sharing the container.
const truncateTables = `TRUNCATE profiles, settings, takes, river_job RESTART IDENTITY CASCADE`

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

// shared is one migrated container for the whole package, started by the
// first test that needs it.
var shared struct { //nolint: gochecknoglobals
	once      sync.Once
	container *postgresContainer
	err       error
}

func TestMain(m *testing.M) {
	code := m.Run()
	if shared.container != nil {
		_ = shared.container.Container.Terminate(context.Background())
	}
	os.Exit(code)
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

// runMigrations applies the goose migrations and the river job tables.
func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river migrator: %w", err)
	}
	versions := migrator.AllVersions()
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: versions[len(versions)-1].Version,
	}); err != nil {
		return fmt.Errorf("could not run river migrations: %w", err)
	}

	return nil
}

func connect(ctx context.Context, c *postgresContainer) (*postgres.PgSQL, error) {
	return postgres.New(ctx, postgres.Options{ //nolint: wrapcheck
		Username:           testUser,
		Password:           testPassword,
		Host:               c.Host,
		Port:               c.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 1,
	})
}

func startShared(ctx context.Context) (*postgresContainer, error) {
	c, err := startPostgresContainer(ctx)
	if err != nil {
		return nil, err
	}

	pg, err := connect(ctx, c)
	if err != nil {
		return c, err
	}
	defer pg.Close()

	return c, runMigrations(ctx, pg.DB.(*sql.DB))
}

// setupTestDB connects to the shared container with empty tables. The
// returned cleanup closes the connection.
func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container tests are skipped in short mode")
	}
	ctx := context.Background()

	shared.once.Do(func() {
		shared.container, shared.err = startShared(ctx)
	})
	require.NoError(t, shared.err)

	pgSQL, err := connect(ctx, shared.container)
	require.NoError(t, err)

	_, err = pgSQL.DB.ExecContext(ctx, truncateTables)
	require.NoError(t, err)

	return pgSQL, func() {
		_ = pgSQL.Close()
	}
}
