// Package catalog holds the per-attribute summaries produced by the
// catalog aggregator and turns numeric ones into charts.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/goccy/go-json"

	"github.com/mikills/tinkerings/catalogplot/chartjs"
)

var (
	ErrNotFound   = errors.New("summary not found")
	ErrNotNumeric = errors.New("summary is not numeric")
)

// Summary describes one attribute of a crawled file.
type Summary struct {
	ID       string    `json:"id"`
	Title    string    `json:"plot_title"`
	Min      float64   `json:"plot_minimum"`
	Max      float64   `json:"plot_maximum"`
	Values   []float64 `json:"plot_values"`
	Numeric  bool      `json:"is_numeric"`
	FilePath string    `json:"file_path"`
}

// URLBuilder resolves a file path to an absolute URL.
type URLBuilder interface {
	URLFromFilePath(path string) string
}

type Catalog struct {
	summaries map[string]Summary
}

// Load decodes a JSON array of summaries.
func Load(r io.Reader) (*Catalog, error) {
	var summaries []Summary
	if err := json.NewDecoder(r).Decode(&summaries); err != nil {
		return nil, fmt.Errorf("decode summaries: %w", err)
	}
	return New(summaries)
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// New indexes summaries by id. Ids must be unique and non-empty.
func New(summaries []Summary) (*Catalog, error) {
	c := &Catalog{summaries: make(map[string]Summary, len(summaries))}
	for _, s := range summaries {
		if s.ID == "" {
			return nil, fmt.Errorf("summary %q has no id", s.Title)
		}
		if _, ok := c.summaries[s.ID]; ok {
			return nil, fmt.Errorf("duplicate summary id %q", s.ID)
		}
		c.summaries[s.ID] = s
	}
	return c, nil
}

func (c *Catalog) Get(id string) (Summary, error) {
	s, ok := c.summaries[id]
	if !ok {
		return Summary{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s, nil
}

// List returns all summaries sorted by id.
func (c *Catalog) List() []Summary {
	out := make([]Summary, 0, len(c.summaries))
	for _, s := range c.summaries {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Numeric returns the numeric summaries sorted by id.
func (c *Catalog) Numeric() []Summary {
	var out []Summary
	for _, s := range c.List() {
		if s.Numeric {
			out = append(out, s)
		}
	}
	return out
}

// Plot charts a numeric summary on canvas "summary-<id>" and links its file.
func (c *Catalog) Plot(id string, beginAtZero bool, urls URLBuilder) (*chartjs.Chart, error) {
	s, err := c.Get(id)
	if err != nil {
		return nil, err
	}
	if !s.Numeric {
		return nil, fmt.Errorf("%w: %s", ErrNotNumeric, id)
	}

	chart := chartjs.PlotNumeric(CanvasID(id), s.Min, s.Max, s.Title, s.Values, beginAtZero)
	if s.FilePath != "" && urls != nil {
		chart.FileURL = urls.URLFromFilePath(s.FilePath)
	}
	return chart, nil
}

func CanvasID(summaryID string) string {
	return "summary-" + summaryID
}
