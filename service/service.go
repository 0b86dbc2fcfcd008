package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mikills/tinkerings/catalogplot/catalog"
	"github.com/mikills/tinkerings/catalogplot/chartjs"
	"github.com/mikills/tinkerings/catalogplot/fileurl"
)

// Service exposes the chart helpers and the summary catalog over HTTP.
type Service struct {
	Catalog *catalog.Catalog
	URLs    *fileurl.Builder
	Logger  *slog.Logger

	echo *echo.Echo
}

// New creates a Service and registers its routes. A nil catalog serves
// an empty one; nil urls use the default file server.
func New(cat *catalog.Catalog, urls *fileurl.Builder, logger *slog.Logger) *Service {
	if cat == nil {
		cat, _ = catalog.New(nil)
	}
	if urls == nil {
		urls = fileurl.New("")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Service{Catalog: cat, URLs: urls, Logger: logger}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}
	e.Use(requestLogger(logger))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	// axis labels and placeholder colors
	e.GET("/labels", s.handleLabels)
	e.GET("/colors", s.handleColors)
	// bar+line chart config
	e.POST("/plot", s.handlePlot)
	// absolute file url
	e.GET("/url", s.handleURL)
	// catalog summaries
	e.GET("/summaries", s.handleListSummaries)
	e.GET("/summaries/:id/chart", s.handleSummaryChart)
	e.GET("/summaries/:id/page", s.handleSummaryPage)

	s.echo = e
	return s
}

func (s *Service) Handler() http.Handler {
	return s.echo
}

// Run serves on addr until ctx is cancelled.
func (s *Service) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("http listening", "addr", addr)
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}

// --- Handlers ---

// maxLength caps the length query value so one request cannot allocate
// an unbounded label or color list.
const maxLength = 10000

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}

func (s *Service) handleLabels(c echo.Context) error {
	min, err := strconv.ParseFloat(c.QueryParam("min"), 64)
	if err != nil {
		return badRequest(c, "invalid min")
	}
	max, err := strconv.ParseFloat(c.QueryParam("max"), 64)
	if err != nil {
		return badRequest(c, "invalid max")
	}
	length, err := strconv.Atoi(c.QueryParam("length"))
	if err != nil || length > maxLength {
		return badRequest(c, "invalid length")
	}
	return c.JSON(http.StatusOK, chartjs.ToTicks(chartjs.GenerateLabels(min, max, length)))
}

func (s *Service) handleColors(c echo.Context) error {
	length, err := strconv.Atoi(c.QueryParam("length"))
	if err != nil || length > maxLength {
		return badRequest(c, "invalid length")
	}
	return c.JSON(http.StatusOK, chartjs.GenerateColors(length))
}

type PlotRequest struct {
	CanvasID    string    `json:"canvasId"`
	Min         float64   `json:"min"`
	Max         float64   `json:"max"`
	Label       string    `json:"label"`
	Data        []float64 `json:"data"`
	BeginAtZero bool      `json:"beginAtZero"`
}

func (s *Service) handlePlot(c echo.Context) error {
	var req PlotRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	if req.CanvasID == "" {
		return badRequest(c, "canvasId is required")
	}
	if len(req.Data) == 0 {
		return badRequest(c, "data must contain at least one item")
	}
	chart := chartjs.PlotNumeric(req.CanvasID, req.Min, req.Max, req.Label, req.Data, req.BeginAtZero)
	return c.JSON(http.StatusOK, chart)
}

func (s *Service) handleURL(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"url": s.URLs.URLFromFilePath(c.QueryParam("path"))})
}

func (s *Service) handleListSummaries(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Catalog.List())
}

func (s *Service) summaryChart(c echo.Context) (*chartjs.Chart, error) {
	beginAtZero := false
	if v := c.QueryParam("beginAtZero"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid beginAtZero")
		}
		beginAtZero = b
	}

	chart, err := s.Catalog.Plot(c.Param("id"), beginAtZero, s.URLs)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return nil, echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, catalog.ErrNotNumeric):
		return nil, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		return nil, err
	}
	return chart, nil
}

func (s *Service) handleSummaryChart(c echo.Context) error {
	chart, err := s.summaryChart(c)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, chart)
}

func (s *Service) handleSummaryPage(c echo.Context) error {
	chart, err := s.summaryChart(c)
	if err != nil {
		return errorJSON(c, err)
	}

	page := chartjs.NewPage(chart.Config.Data.Datasets[0].Label)
	if err := page.Add(chart); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func errorJSON(c echo.Context, err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, _ := he.Message.(string)
		return c.JSON(he.Code, map[string]string{"error": msg})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
