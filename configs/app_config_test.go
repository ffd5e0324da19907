package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "APP_PORT", "DB_DRIVER", "DB_DSN", "SESSION_EXPIRATION"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.SessionExpiration)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "Production")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_NAME", "catalog")
	t.Setenv("SESSION_EXPIRATION", "90m")

	cfg := LoadConfig()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 90*time.Minute, cfg.SessionExpiration)
	assert.Equal(t, "catalog.db", cfg.Database.ConnectionString())
}

func TestConnectionString(t *testing.T) {
	t.Run("dsn wins", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: DriverPostgres, DSN: "postgres://u@h/db", Host: "ignored"}
		assert.Equal(t, "postgres://u@h/db", cfg.ConnectionString())
	})

	t.Run("postgres key value", func(t *testing.T) {
		cfg := DatabaseConfig{
			Driver: DriverPostgres, Host: "db", Port: "5433", User: "app",
			Password: "secret", Name: "cards", SSLMode: "disable", TimeZone: "UTC",
		}
		dsn := cfg.ConnectionString()
		for _, part := range []string{"host=db", "port=5433", "user=app", "password=secret", "dbname=cards", "sslmode=disable", "TimeZone=UTC"} {
			assert.Contains(t, dsn, part)
		}
	})
}
