package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet_calc/pet"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, pet.DefaultSolverSettings(), cfg.Solver)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet_calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
solver:
  max_iterations: 50
  tolerance: 1.0e-8
batch:
  workers: 4
log:
  level: info
`), 0644))
	t.Setenv("PET_CALC_BATCH_WORKERS", "8")

	cfg, err := loadConfig(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Solver.MaxIterations)
	assert.Equal(t, 1e-8, cfg.Solver.Tolerance)
	assert.Equal(t, pet.DefaultSolverSettings().FDStep, cfg.Solver.FDStep)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PET_CALC_SOLVER_FD_STEP", "0")
	_, err = loadConfig(viper.New(), "")
	assert.ErrorContains(t, err, "fd_step")
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := newLogger(level)
		require.NoError(t, err, level)
		assert.NotNil(t, logger)
	}

	_, err := newLogger("verbose")
	assert.Error(t, err)
}
