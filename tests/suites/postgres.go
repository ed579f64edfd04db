package suites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// PostgresContainer wraps a throwaway Postgres instance for repository
// tests.
type PostgresContainer struct {
	testcontainers.Container
	ConnectionString string
	Host             string
	Port             string
}

func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	const port = "5432/tcp"

	dbURL := func(host string, port nat.Port) string {
		return fmt.Sprintf("postgres://testuser:testpass@%s:%s/contactbook_test?sslmode=disable", host, port.Port())
	}

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17.5-alpine3.21",
		ExposedPorts: []string{port},
		Cmd:          []string{"postgres", "-c", "fsync=off"},
		Env: map[string]string{
			"POSTGRES_DB":       "contactbook_test",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_USER":     "testuser",
		},
		WaitingFor: wait.ForSQL(port, "postgres", dbURL).
			WithStartupTimeout(30 * time.Second).
			WithQuery("SELECT 1"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	return &PostgresContainer{
		Container:        container,
		ConnectionString: dbURL(host, mappedPort),
		Host:             host,
		Port:             mappedPort.Port(),
	}, nil
}

// RepositoryTestSuite starts one Postgres container per suite, applies
// the project migrations and truncates every table between tests. Child
// suites embed it and use DB directly.
type RepositoryTestSuite struct {
	suite.Suite
	Container      *PostgresContainer
	DB             *gorm.DB
	SQLDB          *sql.DB
	MigrationsPath string
}

func (s *RepositoryTestSuite) SetupSuite() {
	s.T().Helper()

	if testing.Short() {
		s.T().Skip("Skipping database integration tests in short mode")
	}

	if s.MigrationsPath == "" {
		s.MigrationsPath = s.findMigrationsPath()
	}

	s.createContainer()
	s.createConnections()

	if err := s.RunMigrations(); err != nil {
		s.T().Fatalf("Failed to run migrations: %v", err)
	}

	s.T().Cleanup(func() {
		s.cleanup()
	})
}

func (s *RepositoryTestSuite) createContainer() {
	container, err := NewPostgresContainer(context.Background())
	if err != nil {
		s.T().Fatalf("Failed to create postgres container: %v", err)
	}
	s.Container = container
}

func (s *RepositoryTestSuite) createConnections() {
	sqlDB, err := sql.Open("postgres", s.Container.ConnectionString)
	if err != nil {
		s.T().Fatalf("Failed to open sql connection: %v", err)
	}
	s.SQLDB = sqlDB

	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = sqlDB.PingContext(ctx); err != nil {
		s.T().Fatalf("Failed to ping database: %v", err)
	}

	// TranslateError matches production: duplicate-key violations surface
	// as gorm.ErrDuplicatedKey.
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		s.T().Fatalf("Failed to open gorm connection: %v", err)
	}
	s.DB = gormDB
}

// findMigrationsPath walks up to the module root and returns its
// migrations directory.
func (s *RepositoryTestSuite) findMigrationsPath() string {
	wd, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return filepath.Join(wd, "migrations")
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			return ""
		}
		wd = parent
	}
}

func (s *RepositoryTestSuite) RunMigrations() error {
	if s.MigrationsPath == "" {
		return errors.New("migrations path not set")
	}

	sourceURL := fmt.Sprintf("file://%s", s.MigrationsPath)
	m, err := migrate.New(sourceURL, s.Container.ConnectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// BeforeTest wipes the data tables so every test starts from an empty
// store. People goes first because of the country foreign key.
func (s *RepositoryTestSuite) BeforeTest(_, _ string) {
	if s.DB == nil {
		return
	}
	for _, table := range []string{"people", "countries"} {
		s.DB.Exec(fmt.Sprintf(`DELETE FROM %q`, table))
	}
}

func (s *RepositoryTestSuite) cleanup() {
	if s.SQLDB != nil {
		_ = s.SQLDB.Close()
	}
	if s.Container != nil {
		_ = s.Container.Terminate(context.Background())
	}
}

func (s *RepositoryTestSuite) CountRecords(table string) int64 {
	var c int64
	s.DB.Table(table).Count(&c)
	return c
}
