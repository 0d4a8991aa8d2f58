package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MARKET_ADDR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SEED_FILE", "")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "seed.json", cfg.SeedFile)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MARKET_ADDR", ":9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED_FILE", "fixtures/demo.json")

	cfg := Load()
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "fixtures/demo.json", cfg.SeedFile)
}
