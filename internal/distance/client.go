// Package distance delegates distance calculations to the
// distance-service microservice.
package distance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/visitaup/visitas-api/internal/apperrors"
)

// DefaultBaseURL matches the docker-compose service address.
const DefaultBaseURL = "http://distance-service:5000"

const requestTimeout = 10 * time.Second

// Point is a geographic coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// checkRequest is the wire format expected by distance-service.
type checkRequest struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Client calls the distance-service API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a distance-service client. An empty baseURL selects
// the default service address.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// Check asks the distance service for the distance between two points
// and relays its response body untouched. Upstream failures come back
// with a generic message; the underlying cause is logged, not returned.
func (c *Client) Check(ctx context.Context, origin, dest Point) (json.RawMessage, error) {
	body, err := json.Marshal(checkRequest{From: origin, To: dest})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/distance", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("distance service unreachable", "error", err)
		return nil, fmt.Errorf("%w: could not reach distance service", apperrors.ErrBadGateway)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("closing distance response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("distance service returned an error", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: distance service returned an error", apperrors.ErrBadGateway)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Warn("reading distance response", "error", err)
		return nil, fmt.Errorf("%w: distance service returned an error", apperrors.ErrBadGateway)
	}

	if !json.Valid(raw) {
		slog.Warn("distance service returned a non-JSON body")
		return nil, fmt.Errorf("%w: distance service returned an error", apperrors.ErrBadGateway)
	}

	return json.RawMessage(raw), nil
}
