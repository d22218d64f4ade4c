package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"pet_calc/pet"
)

// app はサブコマンド間で共有する実行時の状態。
type app struct {
	v      *viper.Viper
	cfg    Config
	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	var configPath string
	root := &cobra.Command{
		Use:           "pet_calc",
		Short:         "生理学的等価温度（PET）の計算",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.v, configPath)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "設定ファイルのパス（既定は ./pet_calc.yaml または $HOME/pet_calc.yaml）")
	root.PersistentFlags().String("log", "error", "ログレベルを指定します。 (debug, info, warn, error)")
	_ = a.v.BindPFlag("log.level", root.PersistentFlags().Lookup("log"))

	root.AddCommand(newSingleCommand(a), newBatchCommand(a))
	return root
}

func newSingleCommand(a *app) *cobra.Command {
	var (
		tdb, tr, v, rh, met, clo float64
		pAtm, wme                float64
		age, weight, height      float64
		sex, position            string
	)

	cmd := &cobra.Command{
		Use:   "single",
		Short: "1条件の PET を計算する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := pet.Person{Age: age, Weight: weight, Height: height}
			var err error
			if p.Sex, err = pet.SexFromString(sex); err != nil {
				return err
			}
			if p.Position, err = pet.PositionFromString(position); err != nil {
				return err
			}

			env := pet.NewEnvironment(tdb, tr, v, rh, met*pet.MetFactor, clo)
			env.PAtm = pAtm
			env.Wme = wme

			a.logger.Debug("single condition",
				zap.Float64("tdb", tdb), zap.Float64("tr", tr), zap.Float64("v", v),
				zap.Float64("rh", rh), zap.Float64("met", met), zap.Float64("clo", clo))

			out := pet.EvaluateBatch(cmd.Context(), []pet.Case{{ID: "single", Environment: env, Person: p}}, 1, a.cfg.Solver)[0]
			if out.Err != nil {
				return fmt.Errorf("calculate PET: %w", out.Err)
			}

			res := out.Result
			class := pet.ClassifyPet(res.Pet)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "PET: %.2f degree C\n", res.Pet)
			fmt.Fprintf(w, "perception: %s (%s)\n", class, class.Stress())
			fmt.Fprintf(w, "PMV: %.2f  PPD: %.1f %%\n", out.Pmv, out.Ppd)
			if ot, err := pet.OperativeTemperatureForPmv(0, env, a.cfg.Solver); err == nil {
				fmt.Fprintf(w, "neutral operative temperature: %.2f degree C\n", ot)
			}
			fmt.Fprintf(w, "t_core: %.2f  t_skin: %.2f  t_clo: %.2f degree C\n",
				res.State.TCore, res.State.TSkin, res.State.TClo)

			a.logger.Info("solved",
				zap.Int("iterations", res.Iterations),
				zap.Int("search_iterations", res.SearchIterations))
			return nil
		},
	}

	d := pet.DefaultPerson()
	f := cmd.Flags()
	f.Float64Var(&tdb, "tdb", 0, "空気温度, degree C")
	f.Float64Var(&tr, "tr", 0, "平均放射温度, degree C")
	f.Float64Var(&v, "v", pet.RefAirSpeed, "風速, m/s")
	f.Float64Var(&rh, "rh", pet.RefRelativeHumidity, "相対湿度, %")
	f.Float64Var(&met, "met", pet.RefMetabolicRate/pet.MetFactor, "代謝量, met")
	f.Float64Var(&clo, "clo", pet.RefClo, "着衣量, clo")
	f.Float64Var(&pAtm, "p_atm", 1013.25, "大気圧, hPa")
	f.Float64Var(&wme, "wme", 0, "外部仕事効率, -")
	f.StringVar(&position, "position", d.Position.String(), "姿勢 (sitting, standing, standing_forced_convection)")
	f.Float64Var(&age, "age", d.Age, "年齢, year")
	f.StringVar(&sex, "sex", d.Sex.String(), "性別 (male, female)")
	f.Float64Var(&weight, "weight", d.Weight, "体重, kg")
	f.Float64Var(&height, "height", d.Height, "身長, m")
	_ = cmd.MarkFlagRequired("tdb")
	_ = cmd.MarkFlagRequired("tr")

	return cmd
}

func newBatchCommand(a *app) *cobra.Command {
	var input, outputDataDir string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "条件ファイルの全条件の PET を計算して CSV に保存する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			a.logger.Info("条件ファイルの読み込み開始", zap.String("path", input))
			cases, err := loadConditions(input)
			if err != nil {
				return err
			}

			a.logger.Info("計算開始", zap.Int("cases", len(cases)), zap.Int("workers", a.cfg.Workers))
			outcomes := pet.EvaluateBatch(cmd.Context(), cases, a.cfg.Workers, a.cfg.Solver)

			r := NewRecorder(len(outcomes))
			for _, o := range outcomes {
				if o.Err != nil {
					a.logger.Warn("calculation failed", zap.String("id", o.ID), zap.Error(o.Err))
				}
				r.recording(o)
			}

			path, err := r.save(outputDataDir)
			if err != nil {
				return err
			}
			a.logger.Info("Save calculation results", zap.String("path", path))

			s := pet.Summarize(outcomes)
			fmt.Fprintf(cmd.OutOrStdout(), "cases: %d  failures: %d  PET mean: %.2f  sd: %.2f  min: %.2f  max: %.2f\n",
				s.Count, s.Failures, s.Mean, s.StdDev, s.Min, s.Max)

			a.logger.Info("elapsed_time", zap.Duration("elapsed", time.Since(start)))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&input, "input", "", "計算条件の CSV ファイル")
	f.StringVarP(&outputDataDir, "output", "o", ".", "出力フォルダ")
	f.Int("workers", 0, "並列数 (0 なら CPU 数)")
	_ = a.v.BindPFlag("batch.workers", f.Lookup("workers"))
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pet_calc:", err)
		os.Exit(1)
	}
}
