package chartjs

import (
	"github.com/goccy/go-json"
)

// Chart is a chart bound to a canvas element. The caller owns it.
type Chart struct {
	CanvasID string
	Config   Config

	// FileURL, when set, is linked under the canvas on a rendered page.
	FileURL string

	destroyed bool
}

// PlotNumeric builds a bar chart of data with the same values overlaid
// as a line. Axis labels span min..max in len(data) steps.
func PlotNumeric(canvasID string, min, max float64, label string, data []float64, beginAtZero bool) *Chart {
	colors := GenerateColors(len(data))

	return &Chart{
		CanvasID: canvasID,
		Config: Config{
			Type: "bar",
			Data: Data{
				Labels: ToTicks(GenerateLabels(min, max, len(data))),
				Datasets: []Dataset{
					{
						Label:            label,
						Data:             data,
						BackgroundColors: colors.Fill,
						BorderColors:     colors.Border,
						BorderWidth:      1,
					},
					{
						Type:        "line",
						Label:       label,
						Data:        data,
						BorderWidth: 1,
					},
				},
			},
			Options: Options{
				Scales: Scales{
					YAxes: []Axis{{Ticks: Ticks{BeginAtZero: beginAtZero}}},
				},
			},
		},
	}
}

// MarshalJSON encodes the Chart.js config object.
func (c *Chart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Config)
}

// Destroy releases the chart; pages skip destroyed charts.
func (c *Chart) Destroy() {
	c.destroyed = true
}

func (c *Chart) Destroyed() bool {
	return c.destroyed
}
