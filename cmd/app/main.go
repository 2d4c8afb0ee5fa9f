package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skiservice/cmd"
	"skiservice/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := newLogger(configs)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(ctx, configs)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs)

	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
}

func newLogger(configs cmd.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: configs.LogLevel}
	if configs.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func openDatabase(ctx context.Context, configs cmd.Config) (*gorm.DB, error) {
	dsn, err := configs.DSN()
	if err != nil {
		return nil, err
	}

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err = postgres.Migrate(ctx, gormDB); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return gormDB, nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config) {
	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	if configs.IsProduction() {
		e.Logger.SetLevel(log.WARN)
	} else {
		e.Logger.SetLevel(log.DEBUG)
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()
	slog.InfoContext(ctx, "HTTP server started", "port", configs.HTTPPort)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
