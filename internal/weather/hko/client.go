// Package hko is a thin client for the Hong Kong Observatory open-data
// weather API.
package hko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// DefaultBaseURL is the fixed upstream endpoint for all report types.
const DefaultBaseURL = "https://data.weather.gov.hk/weatherAPI/opendata/weather.php"

// DefaultUserAgent identifies this integration to the upstream API.
const DefaultUserAgent = "weather-app/1.0"

// ErrTimeout tags a fetch that exceeded the configured deadline.
var ErrTimeout = errors.New("hko: request timed out")

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("hko: unexpected status %d (%s)", e.Code, e.Status)
}

// Client performs single-shot lookups against the HKO API. It holds no state
// between calls beyond the injected HTTP client.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a Client around the given HTTP client. Empty baseURL or
// userAgent fall back to the defaults.
func NewClient(httpClient *http.Client, baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: httpClient,
	}
}

// Fetch performs exactly one GET for the given report type and language and
// returns the raw JSON document. Failures come back tagged: *StatusError for
// a non-2xx response, ErrTimeout for a deadline, and wrapped transport errors
// otherwise. No retry, no caching.
func (c *Client) Fetch(ctx context.Context, dataType, lang string) (json.RawMessage, error) {
	values := url.Values{}
	values.Set("dataType", dataType)
	values.Set("lang", lang)
	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())

	// Correlation id for the diagnostic lines of this one call.
	reqID := uuid.NewString()
	log.Printf("INFO: [%s] requesting %s", reqID, u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("hko: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = classifyTransportError(err)
		log.Printf("ERROR: [%s] request failed: %v", reqID, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Code: resp.StatusCode, Status: resp.Status}
		log.Printf("ERROR: [%s] %v", reqID, statusErr)
		return nil, statusErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("ERROR: [%s] read body: %v", reqID, err)
		return nil, fmt.Errorf("hko: read body: %w", err)
	}

	return json.RawMessage(body), nil
}

// classifyTransportError maps timeouts onto ErrTimeout and wraps everything
// else.
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("hko: request failed: %w", err)
}
