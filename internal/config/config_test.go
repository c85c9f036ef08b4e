package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "PORT", "CORS_ORIGINS", "LOG_RETENTION"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "clinic_admin", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, 30*24*time.Hour, cfg.LogRetention)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_RETENTION", "168h")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.LogRetention)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "clinic",
		DBPassword: "secret",
		DBName:     "clinic_admin",
		DBSSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=db")
	assert.Contains(t, dsn, "port=5433")
	assert.Contains(t, dsn, "sslmode=require")
	assert.Contains(t, dsn, "TimeZone=UTC")
}

func TestParseDuration_FallsBack(t *testing.T) {
	assert.Equal(t, 30*24*time.Hour, parseDuration("not-a-duration"))
	assert.Equal(t, time.Minute, parseDuration("1m"))
}
