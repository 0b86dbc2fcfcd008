package chartjs

// placeholder palette until summaries carry their own colors
const (
	FillColor   = "rgba(255,255,0,1)" // opaque yellow
	BorderColor = "rgba(0,0,0,1)"     // opaque black
)

// ColorPair holds one fill and one border color per data point.
type ColorPair struct {
	Fill   []string `json:"fill"`
	Border []string `json:"border"`
}

// GenerateColors returns length fill colors and length border colors.
func GenerateColors(length int) ColorPair {
	if length < 0 {
		length = 0
	}

	pair := ColorPair{
		Fill:   make([]string, length),
		Border: make([]string, length),
	}
	for i := 0; i < length; i++ {
		pair.Fill[i] = FillColor
		pair.Border[i] = BorderColor
	}
	return pair
}
