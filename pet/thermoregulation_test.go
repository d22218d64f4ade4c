package pet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVasomotricity(t *testing.T) {
	tests := []struct {
		name       string
		tCore      float64
		tSkin      float64
		wantMBlood float64
	}{
		{"set points", 36.6, 34, 6.3},
		{"warm core", 37, 34, 36.3},
		{"cool skin reduces flow", 36.6, 32, 6.3 / 2},
		{"warm skin is ignored", 36.6, 36, 6.3},
		{"hot core saturates", 40, 34, 90},
		{"extreme core saturates", 45, 34, 90},
		{"cold skin pulls hot core below the cap", 45, 20, (6.3 + 75*8.4) / (1 + 0.5*14)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Vasomotricity(tt.tCore, tt.tSkin)
			assert.InDelta(t, tt.wantMBlood, got.MBlood, 1e-9)
			assert.InDelta(t, 0.0417737+0.7451833/(tt.wantMBlood+0.585417), got.Alpha, 1e-12)
		})
	}
}

func TestVasomotricityAlphaDecreasesWithFlow(t *testing.T) {
	low := Vasomotricity(36.6, 34)
	high := Vasomotricity(38, 34)
	assert.Greater(t, low.Alpha, high.Alpha)
}

func TestSweatRate(t *testing.T) {
	assert.Equal(t, 0.0, SweatRate(30))
	assert.InDelta(t, 0.0, SweatRate(36.34), 1e-12)
	assert.InDelta(t, 0.30494, SweatRate(37.34), 1e-9)
	assert.Equal(t, 500.0, SweatRate(1e4))
}

func TestSweatRateIsMonotone(t *testing.T) {
	prev := SweatRate(30)
	for tb := 30.0; tb < 3000; tb += 7.5 {
		cur := SweatRate(tb)
		assert.GreaterOrEqual(t, cur, prev, "t_body=%v", tb)
		assert.LessOrEqual(t, cur, 500.0)
		prev = cur
	}
}
