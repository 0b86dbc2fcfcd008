// Package chartjs builds Chart.js configurations for catalog attribute
// summaries and renders them into HTML pages.
package chartjs

import (
	"math"
	"strconv"
)

// Config is the object passed to `new Chart(ctx, config)`.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

// Data holds the x axis labels and the datasets drawn against them.
type Data struct {
	Labels   []Tick    `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one series. An empty Type inherits the chart type.
type Dataset struct {
	Type             string    `json:"type,omitempty"`
	Label            string    `json:"label"`
	Data             []float64 `json:"data"`
	BackgroundColors []string  `json:"backgroundColor,omitempty"`
	BorderColors     []string  `json:"borderColor,omitempty"`
	BorderWidth      int       `json:"borderWidth"`
}

// Options is the subset of Chart.js options the catalog charts set.
type Options struct {
	Scales Scales `json:"scales"`
}

// Scales uses the Chart.js 2 axis layout.
type Scales struct {
	YAxes []Axis `json:"yAxes"`
}

// Axis is one entry of Scales.YAxes.
type Axis struct {
	Ticks Ticks `json:"ticks"`
}

// Ticks controls where the value axis starts.
type Ticks struct {
	BeginAtZero bool `json:"beginAtZero"`
}

// Tick is an axis label value. Non-finite ticks encode as null.
type Tick float64

func (t Tick) MarshalJSON() ([]byte, error) {
	f := float64(t)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

// ToTicks converts raw label values for a Data.Labels field.
func ToTicks(values []float64) []Tick {
	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick(v)
	}
	return ticks
}
