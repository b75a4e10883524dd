package main

import (
	"log"
	"net/http"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/hkweather/hko-weather-mcp/internal/config"
	"github.com/hkweather/hko-weather-mcp/internal/tools"
	"github.com/hkweather/hko-weather-mcp/internal/weather/hko"
)

const version = "0.1.0"

func main() {
	// stdout carries the MCP protocol; all diagnostics go to stderr.
	log.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound HKO calls. Keep-alives are disabled so
	// each lookup opens and closes its own connection.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
		Transport: &http.Transport{
			DisableKeepAlives: true,
		},
	}

	client := hko.NewClient(httpClient, cfg.HKOBaseURL, cfg.UserAgent)

	srv := server.NewMCPServer("weather", version,
		server.WithToolCapabilities(false),
	)

	// Single startup-time tool registration.
	weatherTool := tools.NewWeatherTool(client)
	srv.AddTool(weatherTool.Definition(), weatherTool.Handle)

	log.Printf("INFO: serving get_weather over stdio (upstream %s)", cfg.HKOBaseURL)
	if err := server.ServeStdio(srv); err != nil {
		log.Fatalf("stdio server stopped: %v", err)
	}
}
