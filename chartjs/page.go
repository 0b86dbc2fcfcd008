package chartjs

import (
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/valyala/fasttemplate"
)

var ErrDuplicateCanvas = errors.New("duplicate canvas id")

const pageTemplate = `<!DOCTYPE html>
<html>

<head>
	<meta charset="utf-8">
	<title>{{title}}</title>
	<script src="https://cdn.jsdelivr.net/npm/chart.js@2.9.4/dist/Chart.min.js"></script>
	<style>
	body {
		display: grid;
		grid-template-columns: repeat(2, 1fr);
		grid-gap: 2vw;
	}
	</style>
</head>

<body>
{{canvases}}
	<script>
{{scripts}}	</script>
</body>

</html>
`

const canvasTemplate = `	<div>
		<canvas id="{{id}}"></canvas>{{link}}
	</div>
`

const scriptTemplate = `		new Chart(document.getElementById({{id}}), {{config}});
`

var (
	pageTmpl   = fasttemplate.New(pageTemplate, "{{", "}}")
	canvasTmpl = fasttemplate.New(canvasTemplate, "{{", "}}")
	scriptTmpl = fasttemplate.New(scriptTemplate, "{{", "}}")
)

// Page is a set of charts keyed by canvas id, rendered as one HTML document.
type Page struct {
	Title string

	charts []*Chart
	byID   map[string]*Chart
}

func NewPage(title string) *Page {
	return &Page{
		Title: title,
		byID:  make(map[string]*Chart),
	}
}

// Add binds a chart to the page.
func (p *Page) Add(c *Chart) error {
	if _, ok := p.byID[c.CanvasID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCanvas, c.CanvasID)
	}
	p.byID[c.CanvasID] = c
	p.charts = append(p.charts, c)
	return nil
}

// Lookup returns the chart bound to a canvas id.
func (p *Page) Lookup(canvasID string) (*Chart, bool) {
	c, ok := p.byID[canvasID]
	return c, ok
}

// Charts returns live charts in insertion order.
func (p *Page) Charts() []*Chart {
	live := make([]*Chart, 0, len(p.charts))
	for _, c := range p.charts {
		if !c.Destroyed() {
			live = append(live, c)
		}
	}
	return live
}

// Render writes the page as HTML.
func (p *Page) Render(w io.Writer) error {
	var canvases, scripts strings.Builder

	for _, c := range p.Charts() {
		config, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("encode chart %s: %w", c.CanvasID, err)
		}
		id, err := json.Marshal(c.CanvasID)
		if err != nil {
			return fmt.Errorf("encode canvas id %s: %w", c.CanvasID, err)
		}

		link := ""
		if c.FileURL != "" {
			u := html.EscapeString(c.FileURL)
			link = "\n\t\t<a href=\"" + u + "\">" + u + "</a>"
		}

		canvasTmpl.ExecuteFunc(&canvases, func(w io.Writer, tag string) (int, error) {
			switch tag {
			case "id":
				return io.WriteString(w, html.EscapeString(c.CanvasID))
			case "link":
				return io.WriteString(w, link)
			}
			return 0, nil
		})
		scriptTmpl.ExecuteFunc(&scripts, func(w io.Writer, tag string) (int, error) {
			switch tag {
			case "id":
				return w.Write(id)
			case "config":
				return w.Write(config)
			}
			return 0, nil
		})
	}

	_, err := pageTmpl.Execute(w, map[string]any{
		"title":    html.EscapeString(p.Title),
		"canvases": canvases.String(),
		"scripts":  scripts.String(),
	})
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
