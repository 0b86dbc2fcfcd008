package chartjs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_AddAndLookup(t *testing.T) {
	page := NewPage("Summaries")
	a := PlotNumeric("a", 0, 10, "A", []float64{1, 2}, false)
	require.NoError(t, page.Add(a))

	got, ok := page.Lookup("a")
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = page.Lookup("missing")
	assert.False(t, ok)

	err := page.Add(PlotNumeric("a", 0, 1, "dup", []float64{1}, false))
	assert.ErrorIs(t, err, ErrDuplicateCanvas)
	assert.Len(t, page.Charts(), 1)
}

func TestPage_Render(t *testing.T) {
	page := NewPage("Sizes <2017>")

	a := PlotNumeric("sizes", 0, 100, "Size", []float64{3, 1, 4, 1, 5}, true)
	a.FileURL = "http://files.local/crawl/a.csv"
	require.NoError(t, page.Add(a))

	b := PlotNumeric("gone", 0, 1, "Gone", []float64{1}, false)
	require.NoError(t, page.Add(b))
	b.Destroy()

	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "<title>Sizes &lt;2017&gt;</title>")
	assert.Contains(t, out, `<canvas id="sizes"></canvas>`)
	assert.Contains(t, out, `<a href="http://files.local/crawl/a.csv">`)
	assert.Contains(t, out, `new Chart(document.getElementById("sizes"), {"type":"bar"`)
	assert.Contains(t, out, `"labels":[0,20,40,60,80,100]`)
	assert.Contains(t, out, `"type":"line"`)
	assert.Contains(t, out, `"beginAtZero":true`)

	assert.NotContains(t, out, `id="gone"`)
	assert.Equal(t, 1, strings.Count(out, "new Chart("))
	assert.NotContains(t, out, "{{")
}

func TestPage_RenderEscapesCanvasID(t *testing.T) {
	page := NewPage("x")
	require.NoError(t, page.Add(PlotNumeric(`"><script>`, 0, 1, "x", []float64{1}, false)))

	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf))
	assert.Contains(t, buf.String(), `<canvas id="&#34;&gt;&lt;script&gt;"></canvas>`)
}

func TestPage_RenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPage("empty").Render(&buf))
	assert.Contains(t, buf.String(), "<body>")
	assert.NotContains(t, buf.String(), "new Chart(")
}
