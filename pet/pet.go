package pet

import (
	"fmt"
	"math"
)

// Result は PET の計算結果。
type Result struct {
	Pet              float64      // PET, degree C（小数第2位に丸める）
	State            ThermalState // 実環境での核心温度・皮膚温度・着衣表面温度
	Fluxes           HeatFluxes   // 実環境での熱収支の各項
	Iterations       int          // ニュートン法の反復回数
	SearchIterations int          // PET 探索の二分法の反復回数
}

// InitialGuess returns the starting point [36.7, 34, (tdb+tr)/2] of the thermal state search.
func InitialGuess(env Environment) ThermalState {
	return ThermalState{
		TCore: 36.7,
		TSkin: 34.0,
		TClo:  0.5 * (env.Tdb + env.Tr),
	}
}

/*
実環境における核心温度・皮膚温度・着衣表面温度を求める。
Solve the three-node heat balance of the actual environment.

	Args:
		env: 実環境
		p: 被験者
		s: 収束計算の設定

	Returns:
		(1) 熱収支を満たす温度
		(2) ニュートン法の反復回数
*/
func SolveThermalState(env Environment, p Person, s SolverSettings) (ThermalState, int, error) {
	f := func(y, x []float64) {
		r := ResidualVector(thermalStateFromSlice(x), env, p)
		copy(y, r[:])
	}

	x, _, iter, err := newton(f, InitialGuess(env).Slice(), s)
	if err != nil {
		return ThermalState{}, iter, fmt.Errorf("solve thermal state: %w", err)
	}
	return thermalStateFromSlice(x), iter, nil
}

/*
基準環境の熱収支が実環境の熱収支と一致する温度（PET）を求める。

	Args:
		state: 実環境で求めた温度
		actual: 実環境
		p: 被験者
		s: 収束計算の設定

	Returns:
		(1) PET, degree C（丸めなし）
		(2) 二分法の反復回数

	Notes:
		探索は着衣表面温度を中心に行う。
*/
func SolvePet(state ThermalState, actual Environment, p Person, s SolverSettings) (float64, int, error) {
	target := Balance(state, actual, p, ModeActual).Net

	g := func(tx float64) float64 {
		return ScalarBalance(state, tx, actual, p) - target
	}

	tx, iter, err := findRoot(g, state.TClo, s)
	if err != nil {
		return 0, iter, fmt.Errorf("solve pet: %w", err)
	}
	return tx, iter, nil
}

/*
PET を計算する。
Calculate the Physiological Equivalent Temperature.

	Args:
		env: 実環境
		p: 被験者
		s: 収束計算の設定

	Returns:
		計算結果
*/
func Pet(env Environment, p Person, s SolverSettings) (Result, error) {
	state, iter, err := SolveThermalState(env, p, s)
	if err != nil {
		return Result{Iterations: iter}, err
	}

	tx, searchIter, err := SolvePet(state, env, p, s)
	if err != nil {
		return Result{State: state, Iterations: iter, SearchIterations: searchIter}, err
	}

	return Result{
		Pet:              math.Round(tx*100) / 100,
		State:            state,
		Fluxes:           Balance(state, env, p, ModeActual),
		Iterations:       iter,
		SearchIterations: searchIter,
	}, nil
}

//---------------------------------------------------------------------------------------------------//

type steadyOptions struct {
	person   Person
	pAtm     float64
	wme      float64
	settings SolverSettings
}

// Option configures PetSteady.
type Option func(*steadyOptions)

// WithPerson sets the subject (default: DefaultPerson).
func WithPerson(p Person) Option {
	return func(o *steadyOptions) { o.person = p }
}

// WithPressure sets the atmospheric pressure in hPa (default 1013.25).
func WithPressure(pAtm float64) Option {
	return func(o *steadyOptions) { o.pAtm = pAtm }
}

// WithExternalWork sets the external work efficiency (default 0).
func WithExternalWork(wme float64) Option {
	return func(o *steadyOptions) { o.wme = wme }
}

// WithSolverSettings overrides DefaultSolverSettings.
func WithSolverSettings(s SolverSettings) Option {
	return func(o *steadyOptions) { o.settings = s }
}

/*
定常状態の PET を計算する。

	Args:
		tdb: 空気温度, degree C
		tr: 平均放射温度, degree C
		v: 風速, m/s
		rh: 相対湿度, %
		met: 代謝量, met（58.2 W/m2 を乗じて使う）
		clo: 着衣量, clo

	Returns:
		PET, degree C
*/
func PetSteady(tdb, tr, v, rh, met, clo float64, opts ...Option) (float64, error) {
	o := steadyOptions{
		person:   DefaultPerson(),
		pAtm:     pAtmStd,
		settings: DefaultSolverSettings(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	env := NewEnvironment(tdb, tr, v, rh, met*MetFactor, clo)
	env.PAtm = o.pAtm
	env.Wme = o.wme

	res, err := Pet(env, o.person, o.settings)
	if err != nil {
		return 0, err
	}
	return res.Pet, nil
}
