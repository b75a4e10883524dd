package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hkweather/hko-weather-mcp/internal/weather"
	"github.com/hkweather/hko-weather-mcp/internal/weather/hko"
)

// fixtures are minimal well-formed upstream documents per report type.
var fixtures = map[string]string{
	weather.ReportLocalForecast:  `{"generalSituation":"Fine and dry.","outlook":"Sunny periods.","updateTime":"2024-01-01T08:00"}`,
	weather.ReportNineDay:        `{"weatherForecast":[{"week":"Monday","forecastDate":"20240101","forecastWeather":"Sunny","forecastMintemp":{"value":15},"forecastMaxtemp":{"value":22,"unit":"C"}}]}`,
	weather.ReportCurrent:        `{"temperature":{"recordTime":"t","data":[{"place":"Central","value":18,"unit":"C"}]},"rainfall":{"data":[{"place":"Central","max":0,"unit":"mm","main":"FALSE"}]},"humidity":{"recordTime":"t","data":[{"place":"Central","value":70,"unit":"percent"}]},"uvindex":{"recordDesc":"past hour","data":[{"place":"King's Park","value":3,"desc":"moderate"}]}}`,
	weather.ReportWarningSummary: `{"WTS":{"name":"Thunderstorm Warning","actionCode":"ISSUE","issueTime":"t"}}`,
	weather.ReportWarningInfo:    `{"details":[{"warningStatementCode":"WTS","updateTime":"t","contents":["Thunderstorms expected."]}]}`,
	weather.ReportSpecialTips:    `{"swt":[{"updateTime":"t","desc":"Stay alert."}]}`,
}

func newToolRequest(dataType, lang string) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = "get_weather"
	req.Params.Arguments = map[string]any{
		"dataType": dataType,
		"lang":     lang,
	}
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatal("expected a result with content")
	}
	tc, ok := mcp.AsTextContent(res.Content[0])
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func newTestTool(t *testing.T, handler http.HandlerFunc) *WeatherTool {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := hko.NewClient(srv.Client(), srv.URL, "")
	return NewWeatherTool(client)
}

func TestHandleAllReportTypesAndLangs(t *testing.T) {
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		dataType := r.URL.Query().Get("dataType")
		doc, ok := fixtures[dataType]
		if !ok {
			http.Error(w, "unknown dataType", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	})

	for _, dataType := range weather.ValidReportTypes {
		for _, lang := range weather.ValidLangs {
			res, err := tool.Handle(context.Background(), newToolRequest(dataType, lang))
			if err != nil {
				t.Fatalf("%s/%s: unexpected handler error: %v", dataType, lang, err)
			}
			if res.IsError {
				t.Fatalf("%s/%s: expected success result, got error: %s", dataType, lang, resultText(t, res))
			}
			if resultText(t, res) == "" {
				t.Errorf("%s/%s: expected non-empty output", dataType, lang)
			}
		}
	}
}

func TestHandleInvalidInputMakesNoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{}`))
	})

	cases := []struct {
		name     string
		dataType string
		lang     string
	}{
		{"bad dataType", "bogus", "en"},
		{"bad lang", "flw", "fr"},
		{"both bad", "bogus", "fr"},
		{"empty dataType", "", "en"},
		{"empty lang", "flw", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tool.Handle(context.Background(), newToolRequest(tc.dataType, tc.lang))
			if err != nil {
				t.Fatalf("unexpected handler error: %v", err)
			}
			if !res.IsError {
				t.Fatal("expected an error result for invalid input")
			}
			if got := resultText(t, res); got != InvalidInputMessage {
				t.Errorf("expected %q, got %q", InvalidInputMessage, got)
			}
		})
	}

	if n := calls.Load(); n != 0 {
		t.Errorf("expected no network calls for invalid input, got %d", n)
	}
}

func TestHandleMissingArguments(t *testing.T) {
	var calls atomic.Int64
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	req := mcp.CallToolRequest{}
	req.Params.Name = "get_weather"
	req.Params.Arguments = map[string]any{"lang": "en"}

	res, err := tool.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected handler error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected an error result for missing dataType")
	}
	if got := resultText(t, res); got != InvalidInputMessage {
		t.Errorf("expected %q, got %q", InvalidInputMessage, got)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("expected no network calls, got %d", n)
	}
}

func TestHandleUpstreamFailureReturnsNoData(t *testing.T) {
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	res, err := tool.Handle(context.Background(), newToolRequest("flw", "en"))
	if err != nil {
		t.Fatalf("unexpected handler error: %v", err)
	}
	if res.IsError {
		t.Fatal("fetch failure should yield the no-data text, not an error result")
	}
	if got := resultText(t, res); got != NoDataMessage {
		t.Errorf("expected %q, got %q", NoDataMessage, got)
	}
}

func TestHandleUpstreamTimeoutReturnsNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	client := hko.NewClient(&http.Client{Timeout: 20 * time.Millisecond}, srv.URL, "")
	tool := NewWeatherTool(client)

	res, err := tool.Handle(context.Background(), newToolRequest("flw", "en"))
	if err != nil {
		t.Fatalf("unexpected handler error: %v", err)
	}
	if got := resultText(t, res); got != NoDataMessage {
		t.Errorf("expected %q, got %q", NoDataMessage, got)
	}
}

func TestHandleMalformedDocument(t *testing.T) {
	// fnd without weatherForecast is a lookup failure, surfaced as an
	// explicit error result; the handler itself must not fail.
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	res, err := tool.Handle(context.Background(), newToolRequest("fnd", "en"))
	if err != nil {
		t.Fatalf("unexpected handler error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected an error result for a malformed document")
	}
}

func TestDefinition(t *testing.T) {
	tool := newTestTool(t, func(w http.ResponseWriter, r *http.Request) {})

	def := tool.Definition()
	if def.Name != "get_weather" {
		t.Errorf("expected tool name get_weather, got %q", def.Name)
	}
	for _, param := range []string{"dataType", "lang"} {
		if _, ok := def.InputSchema.Properties[param]; !ok {
			t.Errorf("expected %s in input schema properties", param)
		}
	}
}
