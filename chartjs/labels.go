package chartjs

import "math"

// GenerateLabels returns length+1 axis labels starting at min, each
// stepped by (max-min)/length and rounded to the nearest integer.
//
// length is not checked. With length 0 the step is non-finite and only
// round(min) is returned; a negative length behaves the same way.
func GenerateLabels(min, max float64, length int) []float64 {
	increment := (max - min) / float64(length)

	values := []float64{min}
	for i := 0; i < length; i++ {
		values = append(values, values[len(values)-1]+increment)
	}

	for i, v := range values {
		values[i] = roundHalfUp(v)
	}
	return values
}

// roundHalfUp rounds .5 toward positive infinity, so -2.5 becomes -2.
// v+0.5 is not used since the sum itself can round up.
func roundHalfUp(v float64) float64 {
	f := math.Floor(v)
	if v-f >= 0.5 {
		return f + 1
	}
	return f
}
