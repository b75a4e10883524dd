// Package tools holds the MCP tool definitions exposed by the server.
package tools

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hkweather/hko-weather-mcp/internal/weather"
	"github.com/hkweather/hko-weather-mcp/internal/weather/hko"
)

var validate = validator.New()

// weatherArgs are the two inputs of the get_weather tool.
type weatherArgs struct {
	DataType string `validate:"required,oneof=flw fnd rhrread warnsum warningInfo swt"`
	Lang     string `validate:"required,oneof=en tc sc"`
}

// NoDataMessage is returned when the upstream fetch fails for any reason.
const NoDataMessage = "No weather data available"

// InvalidInputMessage names the accepted report types and languages. It is
// returned verbatim for any unrecognized input, before any network call.
var InvalidInputMessage = fmt.Sprintf(
	"Invalid dataType or lang. Use dataType in [%s] and lang in [%s]",
	strings.Join(weather.ValidReportTypes, " "),
	strings.Join(weather.ValidLangs, " "),
)

const weatherDescription = `Get weather from the Hong Kong Observatory.

dataType selects the report:
  flw         local weather forecast (general situation, tropical cyclone info,
              fire danger, forecast period and description, outlook)
  fnd         9-day weather forecast (per-day weather, date, min/max temperature)
  rhrread     current weather report (temperature, rainfall, humidity, UV index)
  warnsum     weather warning summary (warning name, action, issue time)
  warningInfo weather warning details (statement code, subtype, update time)
  swt         special weather tips

lang selects the language: en (English), tc (traditional Chinese), sc (simplified Chinese).`

// WeatherTool exposes HKO weather lookups as a single MCP tool.
type WeatherTool struct {
	client *hko.Client
}

// NewWeatherTool creates the tool around an HKO client.
func NewWeatherTool(client *hko.Client) *WeatherTool {
	return &WeatherTool{client: client}
}

// Definition declares the tool name and input schema registered with the
// server at startup.
func (t *WeatherTool) Definition() mcp.Tool {
	return mcp.NewTool("get_weather",
		mcp.WithDescription(weatherDescription),
		mcp.WithString("dataType",
			mcp.Required(),
			mcp.Description("Report type to fetch"),
			mcp.Enum(weather.ValidReportTypes...),
		),
		mcp.WithString("lang",
			mcp.Required(),
			mcp.Description("Response language"),
			mcp.Enum(weather.ValidLangs...),
		),
	)
}

// Handle runs one lookup: validate inputs, fetch the document, render it.
// User-facing failures come back as tool results, never as Go errors, so a
// bad call never takes the serving process down.
func (t *WeatherTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dataType, err := req.RequireString("dataType")
	if err != nil {
		return mcp.NewToolResultError(InvalidInputMessage), nil
	}
	lang, err := req.RequireString("lang")
	if err != nil {
		return mcp.NewToolResultError(InvalidInputMessage), nil
	}

	args := weatherArgs{DataType: dataType, Lang: lang}
	if err := validate.Struct(args); err != nil {
		return mcp.NewToolResultError(InvalidInputMessage), nil
	}

	raw, err := t.client.Fetch(ctx, args.DataType, args.Lang)
	if err != nil {
		// The fetch already logged the tagged failure; the caller just
		// gets the fixed no-data text.
		return mcp.NewToolResultText(NoDataMessage), nil
	}

	text, err := weather.Format(args.DataType, raw)
	if err != nil {
		log.Printf("ERROR: formatting %s report failed: %v", args.DataType, err)
		return mcp.NewToolResultError(fmt.Sprintf("failed to format %s report: %v", args.DataType, err)), nil
	}
	return mcp.NewToolResultText(text), nil
}
