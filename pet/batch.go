package pet

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Case は一括計算の1件分の条件。
type Case struct {
	ID          string
	Environment Environment
	Person      Person
}

// Outcome は一括計算の1件分の結果。
type Outcome struct {
	ID     string
	Result Result
	Pmv    float64
	Ppd    float64
	Err    error
}

/*
複数の条件の PET を並列に計算する。

	Args:
		ctx: キャンセル用のコンテキスト
		cases: 条件
		workers: 並列数（0 以下なら GOMAXPROCS）
		s: 収束計算の設定

	Returns:
		cases と同じ順序の結果。個々の計算の失敗は Outcome.Err に入る。

	Notes:
		ctx がキャンセルされた場合、未着手の条件は ctx.Err() を結果とする。
*/
func EvaluateBatch(ctx context.Context, cases []Case, workers int, s SolverSettings) []Outcome {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]Outcome, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range cases {
		g.Go(func() error {
			c := cases[i]
			outcomes[i].ID = c.ID
			if err := ctx.Err(); err != nil {
				outcomes[i].Err = err
				return nil
			}
			outcomes[i] = evaluateCase(c, s)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func evaluateCase(c Case, s SolverSettings) Outcome {
	o := Outcome{ID: c.ID}

	res, err := Pet(c.Environment, c.Person, s)
	if err != nil {
		o.Err = err
		return o
	}
	o.Result = res

	pmv, err := Pmv(c.Environment, s)
	if err != nil {
		o.Err = err
		return o
	}
	o.Pmv = pmv
	o.Ppd = Ppd(pmv)

	return o
}

// Summary は一括計算の PET の統計量。
type Summary struct {
	Count    int
	Failures int
	Mean     float64
	StdDev   float64
	Min      float64
	Max      float64
}

// Summarize computes PET statistics over the successful outcomes.
func Summarize(outcomes []Outcome) Summary {
	var pets []float64
	sum := Summary{Count: len(outcomes)}
	for _, o := range outcomes {
		if o.Err != nil {
			sum.Failures++
			continue
		}
		pets = append(pets, o.Result.Pet)
	}
	if len(pets) == 0 {
		sum.Mean, sum.StdDev, sum.Min, sum.Max = math.NaN(), math.NaN(), math.NaN(), math.NaN()
		return sum
	}

	sum.Mean, sum.StdDev = stat.MeanStdDev(pets, nil)
	sum.Min = floats.Min(pets)
	sum.Max = floats.Max(pets)
	return sum
}
