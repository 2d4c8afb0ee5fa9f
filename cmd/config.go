package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

var ErrJWTSecretIsRequired = errors.New("JWT_SECRET is required")

type Config struct {
	AppEnv             string
	LogLevel           slog.Level
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	DBURL              string
	JWTSecret          string
	JWTTTL             time.Duration
	BcryptCost         int
	OverdueJobSchedule string
}

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; variables already set win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		AppEnv:             getEnv("APP_ENV", EnvDevelopment),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBName:             getEnv("DB_NAME", "skiservice"),
		DBSslMode:          getEnv("DB_SSLMODE", "disable"),
		DBURL:              getEnv("DB_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		OverdueJobSchedule: getEnv("OVERDUE_JOB_SCHEDULE", ""),
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrJWTSecretIsRequired
	}

	var err error
	if cfg.JWTTTL, err = time.ParseDuration(getEnv("JWT_TTL", "8h")); err != nil {
		return Config{}, fmt.Errorf("parse JWT_TTL: %w", err)
	}

	if cfg.BcryptCost, err = strconv.Atoi(getEnv("BCRYPT_COST", "10")); err != nil {
		return Config{}, fmt.Errorf("parse BCRYPT_COST: %w", err)
	}

	if err = cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// DSN returns the keyword/value connection string for the postgres driver.
// DB_URL takes precedence over the individual DB_* variables. Values are quoted
// and empty values are left out.
func (c Config) DSN() (string, error) {
	if c.DBURL != "" {
		dsn, err := pq.ParseURL(c.DBURL)
		if err != nil {
			return "", fmt.Errorf("parse DB_URL: %w", err)
		}
		return dsn, nil
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}

	dsn, err := pq.ParseURL(u.String())
	if err != nil {
		return "", fmt.Errorf("build DSN: %w", err)
	}
	return dsn, nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
