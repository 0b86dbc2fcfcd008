package chartjs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLabels(t *testing.T) {
	tests := []struct {
		name   string
		min    float64
		max    float64
		length int
		want   []float64
	}{
		{name: "five steps", min: 0, max: 100, length: 5, want: []float64{0, 20, 40, 60, 80, 100}},
		{name: "negative range", min: -10, max: 10, length: 4, want: []float64{-10, -5, 0, 5, 10}},
		{name: "fractional step", min: 0, max: 10, length: 3, want: []float64{0, 3, 7, 10}},
		{name: "single step", min: 1.2, max: 8.7, length: 1, want: []float64{1, 9}},
		{name: "descending", min: 10, max: 0, length: 2, want: []float64{10, 5, 0}},
		{name: "halves round up", min: -2.5, max: 2.5, length: 1, want: []float64{-2, 3}},
		{name: "just below half rounds down", min: 0.49999999999999994, max: 1, length: 1, want: []float64{0, 1}},
		{name: "odd integer above 2^52 unchanged", min: 4503599627370497, max: 4503599627370497, length: 1, want: []float64{4503599627370497, 4503599627370497}},
		{name: "zero length keeps min only", min: 2.4, max: 9, length: 0, want: []float64{2}},
		{name: "negative length keeps min only", min: 1, max: 5, length: -3, want: []float64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateLabels(tt.min, tt.max, tt.length))
		})
	}
}

func TestGenerateLabels_Properties(t *testing.T) {
	ranges := [][2]float64{{0, 100}, {-50, 50}, {3.3, 17.9}, {1000, 1001}}

	for _, r := range ranges {
		for length := 1; length <= 25; length++ {
			labels := GenerateLabels(r[0], r[1], length)
			require.Len(t, labels, length+1)
			assert.Equal(t, roundHalfUp(r[0]), labels[0])

			step := (r[1] - r[0]) / float64(length)
			for i := 1; i < len(labels); i++ {
				// each label is within rounding of min + i*step
				assert.InDelta(t, r[0]+float64(i)*step, labels[i], 0.5+1e-9)
				assert.Equal(t, math.Trunc(labels[i]), labels[i])
			}
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 2.5, want: 3},
		{in: -2.5, want: -2},
		{in: -2.6, want: -3},
		{in: 0.49999999999999994, want: 0},
		{in: -0.5, want: 0},
		{in: 4503599627370497, want: 4503599627370497},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, roundHalfUp(tt.in), "round(%v)", tt.in)
	}
	assert.True(t, math.IsNaN(roundHalfUp(math.NaN())))
	assert.True(t, math.IsInf(roundHalfUp(math.Inf(1)), 1))
	assert.True(t, math.IsInf(roundHalfUp(math.Inf(-1)), -1))
}

func TestGenerateLabels_NonFiniteIncrement(t *testing.T) {
	labels := GenerateLabels(0, math.Inf(1), 2)
	require.Len(t, labels, 3)
	assert.Equal(t, 0.0, labels[0])
	assert.True(t, math.IsInf(labels[1], 1))
	assert.True(t, math.IsInf(labels[2], 1))
}
