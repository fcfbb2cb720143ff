package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.NotEmpty(t, cfg.APIOrigin)
	assert.NotEmpty(t, cfg.LocalStorePath)
	assert.NotEmpty(t, cfg.PhotoExportPath)
	assert.NotEmpty(t, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("API_ORIGIN", "https://reports.example.com")
	t.Setenv("LOCAL_STORE_PATH", "/custom/local.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "/tmp/cleaning.log")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://reports.example.com", cfg.APIOrigin)
	assert.Equal(t, "/custom/local.db", cfg.LocalStorePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/cleaning.log", cfg.LogFile)
	assert.Equal(t, "text", cfg.LogFormat)
}
