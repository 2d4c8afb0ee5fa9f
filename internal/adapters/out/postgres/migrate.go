package postgres

import (
	"context"
	"fmt"

	"skiservice/internal/adapters/out/postgres/migrations"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// Migrate applies the embedded goose migrations to the database behind db.
func Migrate(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB from gorm: %w", err)
	}

	goose.SetBaseFS(migrations.FS)
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err = goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
