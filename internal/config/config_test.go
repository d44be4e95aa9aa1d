package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("DATABASE_DSN", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "pharmacy.db", cfg.DatabaseDSN)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_DSN", "records.db")

	cfg := Load()
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "records.db", cfg.DatabaseDSN)
}

func TestLoadRejectsNonNumericPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")

	cfg := Load()
	assert.Equal(t, "8080", cfg.HTTPPort)
}
