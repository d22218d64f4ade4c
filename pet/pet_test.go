package pet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetSteady(t *testing.T) {
	tests := []struct {
		name                string
		tdb, tr, v, rh, met float64
		clo                 float64
		want                float64
	}{
		{"light clothing, slight breeze", 20, 20, 0.15, 50, 1.37, 0.5, 18.85},
		{"warm radiant load", 30, 60, 1, 50, 80 / MetFactor, 0.5, 39.2},
		{"hot humid", 35, 35, 0.5, 60, 80 / MetFactor, 0.5, 36.41},
		{"cold windy", 0, 0, 2, 60, 1.2, 1.5, -5.15},
		{"below freezing, active", -5, -5, 3, 60, 2, 1.5, -9.73},
		{"still air, heavy clothing", 25, 25, 0, 50, 1.37, 2.5, 30.71},
		{"radiant load, heavy clothing", 20, 40, 0.1, 50, 1.37, 2.5, 34.78},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PetSteady(tt.tdb, tt.tr, tt.v, tt.rh, tt.met, tt.clo)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.02)
		})
	}
}

// 20 degC, 50 % では水蒸気圧がほぼ基準環境の 12 hPa になる
func TestPetOfReferenceEnvironmentIsAirTemperature(t *testing.T) {
	res, err := Pet(neutralEnvironment(), DefaultPerson(), DefaultSolverSettings())
	require.NoError(t, err)
	assert.InDelta(t, 20, res.Pet, 0.1)
	assert.InDelta(t, 19.94, res.Pet, 0.02)
}

func TestSolveThermalStateStillAirHeavyClothing(t *testing.T) {
	env := NewEnvironment(25, 25, 0, 50, 1.37*MetFactor, 2.5)
	s := DefaultSolverSettings()

	state, _, err := SolveThermalState(env, DefaultPerson(), s)
	require.NoError(t, err)
	assert.InDelta(t, 39.24, state.TCore, 0.01)
	assert.InDelta(t, 38.41, state.TSkin, 0.01)
	assert.InDelta(t, 26.74, state.TClo, 0.01)

	r := ResidualVector(state, env, DefaultPerson())
	for i, v := range r {
		assert.Less(t, math.Abs(v), s.StallTolerance, "residual %d", i)
	}
}

// 暑熱・無風・厚着を含む条件の全域で解が得られる
func TestPetConvergesAcrossConditions(t *testing.T) {
	s := DefaultSolverSettings()
	for _, tdb := range []float64{-30, -10, 10, 25, 38.5, 50} {
		for _, v := range []float64{0, 2, 10} {
			for _, rh := range []float64{0, 50, 100} {
				for _, clo := range []float64{0.1, 1.3, 2.5} {
					for _, dtr := range []float64{0, 20} {
						env := NewEnvironment(tdb, tdb+dtr, v, rh, 1.37*MetFactor, clo)
						_, err := Pet(env, DefaultPerson(), s)
						assert.NoError(t, err, "tdb=%v tr=%v v=%v rh=%v clo=%v", tdb, tdb+dtr, v, rh, clo)
					}
				}
			}
		}
	}
}

func TestPetIncreasesWithAirTemperature(t *testing.T) {
	prev := -1e9
	for tdb := 10.0; tdb <= 40; tdb += 5 {
		res, err := Pet(NewEnvironment(tdb, tdb, 0.1, 50, 80, 0.9), DefaultPerson(), DefaultSolverSettings())
		require.NoError(t, err)
		assert.Greater(t, res.Pet, prev, "tdb=%v", tdb)
		prev = res.Pet
	}
}

func TestPetResultCarriesSolvedState(t *testing.T) {
	env := neutralEnvironment()
	res, err := Pet(env, DefaultPerson(), DefaultSolverSettings())
	require.NoError(t, err)

	assert.Greater(t, res.Iterations, 0)
	assert.Greater(t, res.SearchIterations, 0)
	assert.Equal(t, ResidualVector(res.State, env, DefaultPerson()), res.Fluxes.Residuals)
	assert.Greater(t, res.State.TCore, res.State.TSkin)
	assert.Greater(t, res.State.TSkin, res.State.TClo)
}

func TestPetPositionAndSex(t *testing.T) {
	env := NewEnvironment(25, 30, 0.5, 50, 80, 0.5)

	standing := DefaultPerson()
	standing.Position = PositionStanding
	got, err := Pet(env, standing, DefaultSolverSettings())
	require.NoError(t, err)
	assert.InDelta(t, 24.49, got.Pet, 0.02)

	forced := DefaultPerson()
	forced.Position = PositionStandingForcedConvection
	got, err = Pet(env, forced, DefaultSolverSettings())
	require.NoError(t, err)
	assert.InDelta(t, 24.1, got.Pet, 0.02)

	woman := Person{Age: 40, Sex: SexFemale, Weight: 60, Height: 1.65, Position: PositionSitting}
	got, err = Pet(env, woman, DefaultSolverSettings())
	require.NoError(t, err)
	assert.InDelta(t, 24.92, got.Pet, 0.02)
}

func TestPetSteadyOptions(t *testing.T) {
	base, err := PetSteady(20, 20, 0.1, 50, 80/MetFactor, 0.9)
	require.NoError(t, err)

	same, err := PetSteady(20, 20, 0.1, 50, 80/MetFactor, 0.9,
		WithPerson(DefaultPerson()),
		WithPressure(1013.25),
		WithExternalWork(0),
		WithSolverSettings(DefaultSolverSettings()),
	)
	require.NoError(t, err)
	assert.Equal(t, base, same)
}

func TestPetRejectsPhysicallyInvalidInputs(t *testing.T) {
	_, err := PetSteady(25, 25, 0.1, 50, 1.2, 0)
	require.ErrorIs(t, err, ErrNonFinite)

	p := DefaultPerson()
	p.Weight = 0
	_, err = PetSteady(25, 25, 0.1, 50, 1.2, 0.5, WithPerson(p))
	require.ErrorIs(t, err, ErrNonFinite)
}
