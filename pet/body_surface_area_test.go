package pet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodySurfaceArea(t *testing.T) {
	tests := []struct {
		formula BsaFormula
		want    float64
	}{
		{BsaDubois, 1.8438},
		{BsaTakahira, 1.8438 * 0.2042 / 0.202},
		{BsaFujimoto, 1.7988},
		{BsaKurazumi, 1.8302},
	}
	for _, tt := range tests {
		t.Run(tt.formula.String(), func(t *testing.T) {
			got, err := BodySurfaceArea(70, 1.75, tt.formula)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 5e-3)
		})
	}
}

func TestBodySurfaceAreaInvalidFormula(t *testing.T) {
	_, err := BodySurfaceArea(70, 1.75, BsaFormula("mosteller"))
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "mosteller")
}

func TestBsaFormulaFromString(t *testing.T) {
	f, err := BsaFormulaFromString("kurazumi")
	require.NoError(t, err)
	assert.Equal(t, BsaKurazumi, f)

	_, err = BsaFormulaFromString("Dubois")
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), `"Dubois"`)
}

func TestDuboisMatchesSelectableFormula(t *testing.T) {
	want, err := BodySurfaceArea(75, 1.8, BsaDubois)
	require.NoError(t, err)
	assert.InDelta(t, want, aDubois(75, 1.8), 1e-12)
}
