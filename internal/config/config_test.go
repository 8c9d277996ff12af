package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/invoices")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 168*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, "PKR", cfg.Currency)
	assert.True(t, cfg.AutoMigrate)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, 1.0, cfg.LoginRatePerSecond)
	assert.Equal(t, 5, cfg.LoginBurst)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("COOKIE_SECURE", "yes")
	t.Setenv("DB_AUTO_MIGRATE", "0")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")
	_, err := Load()
	assert.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("DATABASE_URL", "x")
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoad_InvalidValues(t *testing.T) {
	setRequired(t)

	t.Setenv("DB_DRIVER", "mysql")
	_, err := Load()
	assert.ErrorContains(t, err, "DB_DRIVER")

	t.Setenv("DB_DRIVER", "")
	t.Setenv("SESSION_TTL", "forever")
	_, err = Load()
	assert.ErrorContains(t, err, "SESSION_TTL")

	t.Setenv("SESSION_TTL", "")
	t.Setenv("COOKIE_SECURE", "maybe")
	_, err = Load()
	assert.ErrorContains(t, err, "COOKIE_SECURE")

	t.Setenv("COOKIE_SECURE", "")
	t.Setenv("SESSION_TTL", "0s")
	_, err = Load()
	assert.ErrorContains(t, err, "SESSION_TTL must be positive")
}

func TestLoad_NonPositiveLoginLimits(t *testing.T) {
	setRequired(t)

	for _, v := range []string{"0", "-1", "NaN"} {
		t.Setenv("LOGIN_RATE_PER_SECOND", v)
		_, err := Load()
		assert.ErrorContains(t, err, "LOGIN_RATE_PER_SECOND must be positive", v)
	}
	t.Setenv("LOGIN_RATE_PER_SECOND", "")

	for _, v := range []string{"0", "-3"} {
		t.Setenv("LOGIN_BURST", v)
		_, err := Load()
		assert.ErrorContains(t, err, "LOGIN_BURST must be positive", v)
	}
}

func TestOpenDB_SQLite(t *testing.T) {
	db, err := OpenDB(DriverSQLite, "file::memory:", logger.Silent)
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestOpenDB_UnknownDriver(t *testing.T) {
	_, err := OpenDB("oracle", "dsn", logger.Silent)
	assert.Error(t, err)
}
