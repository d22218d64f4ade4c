package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"pet_calc/pet"
)

// Config は計算条件以外の実行設定。
type Config struct {
	Solver   pet.SolverSettings
	Workers  int
	LogLevel string
}

func setDefaults(v *viper.Viper) {
	d := pet.DefaultSolverSettings()
	v.SetDefault("solver.max_iterations", d.MaxIterations)
	v.SetDefault("solver.tolerance", d.Tolerance)
	v.SetDefault("solver.step_tolerance", d.StepTolerance)
	v.SetDefault("solver.fd_step", d.FDStep)
	v.SetDefault("solver.stall_tolerance", d.StallTolerance)
	v.SetDefault("solver.bracket_width", d.BracketWidth)
	v.SetDefault("solver.bisection_tolerance", d.BisectionTolerance)
	v.SetDefault("batch.workers", 0)
	v.SetDefault("log.level", "error")
}

/*
設定を読み込む。

	Args:
		v: フラグを結び付けた viper
		path: 設定ファイルのパス（空なら . と $HOME の pet_calc.yaml を探す）

	Notes:
		優先順位はフラグ、環境変数（PET_CALC_SOLVER_TOLERANCE など）、設定ファイル、既定値の順。
*/
func loadConfig(v *viper.Viper, path string) (Config, error) {
	setDefaults(v)

	v.SetEnvPrefix("PET_CALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pet_calc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Solver: pet.SolverSettings{
			MaxIterations:      v.GetInt("solver.max_iterations"),
			Tolerance:          v.GetFloat64("solver.tolerance"),
			StepTolerance:      v.GetFloat64("solver.step_tolerance"),
			FDStep:             v.GetFloat64("solver.fd_step"),
			StallTolerance:     v.GetFloat64("solver.stall_tolerance"),
			BracketWidth:       v.GetFloat64("solver.bracket_width"),
			BisectionTolerance: v.GetFloat64("solver.bisection_tolerance"),
		},
		Workers:  v.GetInt("batch.workers"),
		LogLevel: v.GetString("log.level"),
	}

	if cfg.Solver.MaxIterations <= 0 {
		return Config{}, fmt.Errorf("solver.max_iterations must be positive, got %d", cfg.Solver.MaxIterations)
	}
	if cfg.Solver.FDStep <= 0 {
		return Config{}, fmt.Errorf("solver.fd_step must be positive, got %g", cfg.Solver.FDStep)
	}

	return cfg, nil
}
