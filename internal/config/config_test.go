package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.Equal(t, 2.5, cfg.Defaults.ColumnDiameter)
	assert.Equal(t, 0.7, cfg.Defaults.Cd)
	assert.Equal(t, 0.7, cfg.Defaults.CdPile)
	assert.Equal(t, 1.2, cfg.Defaults.MinDebrisDepth)
	assert.Equal(t, 3.0, cfg.Defaults.MaxDebrisDepth)
	assert.Equal(t, 2000.0, cfg.Defaults.LogMass)
	assert.Equal(t, 0.075, cfg.Defaults.StoppingDistance)
	assert.Equal(t, 1.3, cfg.Defaults.LoadFactor)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("WFF_DEFAULTS_LOAD_FACTOR", "1.0")
	t.Setenv("WFF_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1.0, cfg.Defaults.LoadFactor)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestInitLogger_RejectsBadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "nope", Format: "console"})
	require.Error(t, err)
}
