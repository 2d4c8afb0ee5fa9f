// Package pgtest starts a migrated PostgreSQL container for integration tests.
package pgtest

import (
	"context"
	"testing"
	"time"

	postgresadapter "skiservice/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SkipIfShort skips the calling test under go test -short, where no Docker
// daemon is expected.
func SkipIfShort(tb testing.TB) {
	tb.Helper()
	skipIf(tb, testing.Short())
}

func skipIf(tb testing.TB, short bool) {
	if short {
		tb.Skip("skipping PostgreSQL integration test in short mode")
	}
}

// Start runs postgres:15-alpine, opens it with GORM the same way the application
// does and applies the migrations, including the service catalog seed.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return container, nil, err
	}

	if err = postgresadapter.Migrate(ctx, db); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Reset removes employees and orders. The seeded catalog is kept.
func Reset(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE service_orders, employees RESTART IDENTITY").Error
}
