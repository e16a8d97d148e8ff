package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "")
	t.Setenv("EMAIL_PORT", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "5000", cfg.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "30m")
	t.Setenv("EMAIL_PORT", "465")

	cfg := Load()

	assert.Equal(t, 30*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, 465, cfg.SMTPPort)
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "soon")

	assert.Equal(t, time.Hour, Load().JWTExpiry)
}

func TestDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "notes")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_SSLMODE", "require")

	dsn := Load().DSN()
	assert.Equal(t, "host=db.internal user=svc password=pw dbname=notes port=5433 sslmode=require TimeZone=UTC", dsn)
}
