// Package usgs is the HTTP boundary to the USGS FDSN event service. It owns
// the query URL template and the single GET per query; everything after the
// response body is the domain package's concern.
package usgs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/quake-query-service/internal/observability"
)

// DefaultBaseURL is the production FDSN event search endpoint.
const DefaultBaseURL = "https://earthquake.usgs.gov/fdsnws/event/1/query"

// BuildQueryURL substitutes the validated date strings into the fixed query
// template. Pure function; the YYYY-MM-DD form needs no escaping, but the
// values go through url.Values anyway so the base URL stays composable.
func BuildQueryURL(baseURL, start, end string) string {
	params := url.Values{
		"format":    {"geojson"},
		"starttime": {start},
		"endtime":   {end},
	}
	return baseURL + "?" + params.Encode()
}

// Client fetches feature collections over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a USGS client. A zero timeout means the client waits
// indefinitely; callers that need a deadline set one here or on the context.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// FetchEvents issues one GET for the date range and returns the full response
// body. A connectivity or read fault wraps ErrTransport; any status other
// than 200 returns a StatusError without reading the body.
func (c *Client) FetchEvents(ctx context.Context, start, end string) (string, error) {
	fullURL := BuildQueryURL(c.baseURL, start, end)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	began := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	c.metrics.FetchStatusCodes.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	elapsed := time.Since(began)
	c.metrics.FetchDuration.Observe(elapsed.Seconds())
	c.logger.Debug("usgs fetch complete",
		"starttime", start,
		"endtime", end,
		"bytes", len(body),
		"elapsed", elapsed,
	)

	return string(body), nil
}
