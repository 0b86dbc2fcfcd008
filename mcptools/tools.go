// Package mcptools exposes the chart helpers as MCP tools over stdio.
package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mikills/tinkerings/catalogplot/catalog"
	"github.com/mikills/tinkerings/catalogplot/chartjs"
	"github.com/mikills/tinkerings/catalogplot/fileurl"
)

const (
	serverName    = "catalogplot"
	serverVersion = "1.0.0"
)

type NumericChartArgs struct {
	CanvasID    string    `json:"canvasId,omitempty" jsonschema:"description=Id of the canvas element the chart is bound to (default 'chart')"`
	Min         float64   `json:"min" jsonschema:"description=Lower bound of the x axis"`
	Max         float64   `json:"max" jsonschema:"description=Upper bound of the x axis"`
	Label       string    `json:"label" jsonschema:"description=Label shared by the bar and line datasets"`
	Data        []float64 `json:"data" jsonschema:"description=Values plotted as bars and as an overlaid line,minItems=1"`
	BeginAtZero bool      `json:"beginAtZero,omitempty" jsonschema:"description=Start the value axis at zero"`
}

type AxisLabelArgs struct {
	Min    float64 `json:"min" jsonschema:"description=First label value"`
	Max    float64 `json:"max" jsonschema:"description=Last label value"`
	Length int     `json:"length" jsonschema:"description=Number of steps between min and max,minimum=1"`
}

type FileURLArgs struct {
	Path string `json:"path" jsonschema:"description=Catalog file path relative to the file server (e.g. 'crawl/2017/data.csv')"`
}

type SummaryChartArgs struct {
	ID          string `json:"id" jsonschema:"description=Summary id from the catalog"`
	BeginAtZero bool   `json:"beginAtZero,omitempty" jsonschema:"description=Start the value axis at zero"`
}

func generateNumericChart(args NumericChartArgs) (any, error) {
	canvasID := args.CanvasID
	if canvasID == "" {
		canvasID = "chart"
	}
	return chartjs.PlotNumeric(canvasID, args.Min, args.Max, args.Label, args.Data, args.BeginAtZero), nil
}

func validateNumericChartArgs(args NumericChartArgs) error {
	if len(args.Data) == 0 {
		return fmt.Errorf("data must contain at least one item")
	}
	return nil
}

func generateAxisLabels(args AxisLabelArgs) (any, error) {
	return chartjs.ToTicks(chartjs.GenerateLabels(args.Min, args.Max, args.Length)), nil
}

func validateAxisLabelArgs(args AxisLabelArgs) error {
	if args.Length <= 0 {
		return fmt.Errorf("length must be at least 1")
	}
	return nil
}

func validateFileURLArgs(args FileURLArgs) error {
	if args.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

// New returns an MCP server with the chart tools registered. The summary
// tool is only registered when cat is non-nil.
func New(cat *catalog.Catalog, urls *fileurl.Builder) *server.MCPServer {
	if urls == nil {
		urls = fileurl.New("")
	}

	srv := server.NewMCPServer(serverName, serverVersion)

	registerTool(srv, toolConfig{
		name: "numeric-chart-generator",
		description: `Generates a Chart.js bar chart of numeric values with the same values overlaid as a line.
					  X axis labels are evenly spaced integers from min to max, one step per value.`,
	},
		generateNumericChart,
		validateNumericChartArgs,
	)

	registerTool(srv, toolConfig{
		name:        "axis-label-generator",
		description: `Generates length+1 evenly spaced axis labels from min to max, rounded to integers.`,
	},
		generateAxisLabels,
		validateAxisLabelArgs,
	)

	registerTool(srv, toolConfig{
		name:        "file-url-builder",
		description: `Returns the absolute URL of a catalog file on the file server.`,
	},
		func(args FileURLArgs) (any, error) {
			return map[string]string{"url": urls.URLFromFilePath(args.Path)}, nil
		},
		validateFileURLArgs,
	)

	if cat != nil {
		registerTool(srv, toolConfig{
			name:        "summary-chart-generator",
			description: `Generates the Chart.js configuration for a numeric attribute summary in the catalog.`,
		},
			func(args SummaryChartArgs) (any, error) {
				return cat.Plot(args.ID, args.BeginAtZero, urls)
			},
			nil,
		)
	}

	return srv
}

type toolConfig struct {
	name        string
	description string
}

func registerTool[T any](
	srv *server.MCPServer,
	cfg toolConfig,
	generator func(T) (any, error),
	validator func(T) error,
) {
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args T
		if err := req.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("bind arguments: %v", err)), nil
		}

		if validator != nil {
			if err := validator(args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		}

		result, err := generator(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultJSON(result)
	}

	tool := mcp.NewTool(
		cfg.name,
		mcp.WithDescription(cfg.description),
		mcp.WithInputSchema[T](),
	)

	srv.AddTool(tool, handler)
}
