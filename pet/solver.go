package pet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SolverSettings は収束計算の設定。
type SolverSettings struct {
	MaxIterations      int     // 反復回数の上限
	Tolerance          float64 // 残差の最大絶対値の許容値, W/m2
	StepTolerance      float64 // 相対ステップ幅の許容値, -
	FDStep             float64 // ヤコビアンの中心差分の刻み, degree C
	StallTolerance     float64 // 厳密な零点に届かないときに解として認める残差, W/m2
	BracketWidth       float64 // PET 探索区間の初期半幅, degree C
	BisectionTolerance float64 // 二分法の許容幅, degree C
}

// DefaultSolverSettings returns the settings used when none are configured.
func DefaultSolverSettings() SolverSettings {
	return SolverSettings{
		MaxIterations:      100,
		Tolerance:          1e-6,
		StepTolerance:      1.49012e-8,
		FDStep:             1e-2,
		StallTolerance:     5e-2,
		BracketWidth:       10,
		BisectionTolerance: 1e-6,
	}
}

// 探索区間を広げる回数の上限
const maxBracketExpansions = 5

// ステップを縮める下限
const minStepRatio = 1e-10

// 仕上げの反復回数の上限
const maxRefinements = 20

func allFinite(s []float64) bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

/*
ニュートン法で連立方程式 f(x) = 0 を解く。

	Args:
		f: 残差関数 f(y, x)
		x0: 初期値
		s: 収束計算の設定

	Returns:
		(1) 解
		(2) 解における残差
		(3) 反復回数

	Notes:
		ヤコビアンは中心差分で求め、ステップは減衰させずに全量とる。
		残差が非有限になる場合に限りステップを半分にする。
		p_sat の丸めにより残差は階段状になるため、厳密な零点が存在せず
		反復が零点の近くで振動することがある。そのため反復中で残差が最小の点を保持し、
		そこから残差の最大絶対値が減少するステップだけをとる仕上げの反復を行う。
		最終的な残差が StallTolerance 未満なら解とみなす。
*/
func newton(f func(y, x []float64), x0 []float64, s SolverSettings) ([]float64, []float64, int, error) {
	n := len(x0)

	x := make([]float64, n)
	copy(x, x0)
	fx := make([]float64, n)
	f(fx, x)
	if !allFinite(fx) {
		return x, fx, 0, fmt.Errorf("%w: at initial guess %v", ErrNonFinite, x)
	}

	// 残差の最大絶対値が最小の点
	best := make([]float64, n)
	bestF := make([]float64, n)
	copy(best, x)
	copy(bestF, fx)

	ns := newNewtonStep(f, n, s.FDStep)
	xt := make([]float64, n)
	ft := make([]float64, n)

	iter := 0
	for iter < s.MaxIterations {
		if floats.Norm(fx, math.Inf(1)) < s.Tolerance {
			return x, fx, iter, nil
		}
		iter++

		step, err := ns.solve(x, fx)
		if err != nil {
			return x, fx, iter, err
		}

		lambda := 1.0
		for {
			floats.AddScaledTo(xt, x, lambda, step)
			f(ft, xt)
			if allFinite(ft) {
				break
			}
			lambda /= 2
			if lambda < minStepRatio {
				return best, bestF, iter, fmt.Errorf("%w: no finite residual along the step from %v", ErrNonFinite, x)
			}
		}

		stepNorm := lambda * floats.Norm(step, 2)
		copy(x, xt)
		copy(fx, ft)
		if floats.Norm(fx, math.Inf(1)) < floats.Norm(bestF, math.Inf(1)) {
			copy(best, x)
			copy(bestF, fx)
		}

		if stepNorm <= s.StepTolerance*(floats.Norm(x, 2)+s.StepTolerance) {
			break
		}
	}

	if floats.Norm(bestF, math.Inf(1)) >= s.Tolerance {
		ns.refine(best, bestF, s.Tolerance)
	}

	r := floats.Norm(bestF, math.Inf(1))
	if r < s.Tolerance || r < s.StallTolerance {
		return best, bestF, iter, nil
	}
	return best, bestF, iter, fmt.Errorf("%w: after %d iterations, residual %v", ErrNoConvergence, iter, bestF)
}

// newtonStep はニュートンステップの計算に使う作業領域。
type newtonStep struct {
	f        func(y, x []float64)
	jac      *mat.Dense
	rhs      *mat.VecDense
	dx       mat.VecDense
	settings *fd.JacobianSettings
}

func newNewtonStep(f func(y, x []float64), n int, fdStep float64) *newtonStep {
	return &newtonStep{
		f:   f,
		jac: mat.NewDense(n, n, nil),
		rhs: mat.NewVecDense(n, nil),
		settings: &fd.JacobianSettings{
			Formula: fd.Central,
			Step:    fdStep,
		},
	}
}

// J dx = -f(x) を解く。
func (ns *newtonStep) solve(x, fx []float64) ([]float64, error) {
	fd.Jacobian(ns.jac, ns.f, x, ns.settings)
	for i, v := range fx {
		ns.rhs.SetVec(i, -v)
	}
	// 条件数が 1/ε を超える（mat.Condition が返る）ヤコビアンは特異とみなす
	if err := ns.dx.SolveVec(ns.jac, ns.rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularJacobian, err)
	}
	step := ns.dx.RawVector().Data
	if !allFinite(step) {
		return nil, fmt.Errorf("%w: non-finite step %v", ErrSingularJacobian, step)
	}
	return step, nil
}

// x から残差の最大絶対値が減少するステップだけをとり、x と fx を更新する。
func (ns *newtonStep) refine(x, fx []float64, tol float64) {
	n := len(x)
	xt := make([]float64, n)
	ft := make([]float64, n)

	for k := 0; k < maxRefinements; k++ {
		step, err := ns.solve(x, fx)
		if err != nil {
			return
		}

		r0 := floats.Norm(fx, math.Inf(1))
		accepted := false
		for lambda := 1.0; lambda >= minStepRatio; lambda /= 2 {
			floats.AddScaledTo(xt, x, lambda, step)
			ns.f(ft, xt)
			if allFinite(ft) && floats.Norm(ft, math.Inf(1)) < r0 {
				accepted = true
				break
			}
		}
		if !accepted {
			return
		}

		copy(x, xt)
		copy(fx, ft)
		if floats.Norm(fx, math.Inf(1)) < tol {
			return
		}
	}
}

/*
単調な1変数関数 g(t) = 0 の解を、探索区間の拡大と二分法で求める。

	Args:
		g: 1変数関数
		guess: 探索区間の中心, degree C
		s: 収束計算の設定

	Returns:
		(1) 解
		(2) 二分法の反復回数
*/
func findRoot(g func(float64) float64, guess float64, s SolverSettings) (float64, int, error) {
	w := s.BracketWidth
	a, b := guess-w, guess+w
	ga, gb := g(a), g(b)
	for k := 0; k < maxBracketExpansions && ga*gb > 0; k++ {
		w *= 2
		a, b = guess-w, guess+w
		ga, gb = g(a), g(b)
	}
	if !allFinite([]float64{ga, gb}) {
		return 0, 0, fmt.Errorf("%w: in the interval [%f, %f]", ErrNonFinite, a, b)
	}
	if ga == 0 {
		return a, 0, nil
	}
	if gb == 0 {
		return b, 0, nil
	}
	if ga*gb > 0 {
		return 0, 0, fmt.Errorf("%w: [%f, %f]", ErrNoBracket, a, b)
	}

	var c float64
	for i := 1; i <= s.MaxIterations; i++ {
		c = (a + b) / 2
		gc := g(c)
		if math.IsNaN(gc) {
			return 0, i, fmt.Errorf("%w: at %f", ErrNonFinite, c)
		}

		if gc == 0 || (b-a)/2 < s.BisectionTolerance {
			return c, i, nil
		}

		if gc*ga < 0 {
			b = c
		} else {
			a, ga = c, gc
		}
	}
	return 0, s.MaxIterations, fmt.Errorf("%w: failed to find root within %d iterations", ErrNoConvergence, s.MaxIterations)
}
