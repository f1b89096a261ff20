// Package client provides an HTTP client for the visitas REST API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/visitaup/visitas-api/internal/apperrors"
	"github.com/visitaup/visitas-api/internal/cep"
	"github.com/visitaup/visitas-api/internal/distance"
	"github.com/visitaup/visitas-api/internal/visit"
)

// Client is an HTTP client for the visitas API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is an error response from the visitas server.
type APIError struct {
	Kind    string
	Message string
}

func (e *APIError) Error() string { return e.Message }

// Unwrap maps the server's error kind onto a shared sentinel so
// callers can test with errors.Is.
func (e *APIError) Unwrap() error {
	switch e.Kind {
	case "validation_error":
		return apperrors.ErrInvalid
	case "not_found":
		return apperrors.ErrNotFound
	case "bad_gateway":
		return apperrors.ErrBadGateway
	}
	return nil
}

// VisitParams carries the writable fields of a visit for create and
// update calls.
type VisitParams struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Date        *string  `json:"date,omitempty"`
	CEP         *string  `json:"cep,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lon         *float64 `json:"lon,omitempty"`
	Responsible *string  `json:"responsible,omitempty"`
	Status      string   `json:"status,omitempty"`
}

// ListOptions controls paging and filtering for ListVisits. Zero
// values are omitted and the server applies its defaults.
type ListOptions struct {
	Page   int
	Size   int
	Status string
}

// CreateVisit records a new visit and returns its id.
func (c *Client) CreateVisit(params VisitParams) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.post("/visits", params, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// GetVisit returns a single visit.
func (c *Client) GetVisit(id int64) (*visit.Visit, error) {
	var v visit.Visit
	if err := c.get(fmt.Sprintf("/visits/%d", id), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ListVisits returns a page of visits, optionally filtered by status.
func (c *Client) ListVisits(opts ListOptions) ([]*visit.Visit, error) {
	path := "/visits"
	var params []string
	if opts.Page > 0 {
		params = append(params, fmt.Sprintf("page=%d", opts.Page))
	}
	if opts.Size > 0 {
		params = append(params, fmt.Sprintf("size=%d", opts.Size))
	}
	if opts.Status != "" {
		params = append(params, fmt.Sprintf("status=%s", opts.Status))
	}
	if len(params) > 0 {
		path += "?" + strings.Join(params, "&")
	}

	var visits []*visit.Visit
	if err := c.get(path, &visits); err != nil {
		return nil, err
	}
	return visits, nil
}

// UpdateVisit replaces the stored fields of a visit.
func (c *Client) UpdateVisit(id int64, params VisitParams) error {
	return c.put(fmt.Sprintf("/visits/%d", id), params, nil)
}

// DeleteVisit removes a visit. Deleting an id that does not exist is
// not an error.
func (c *Client) DeleteVisit(id int64) error {
	return c.doDelete(fmt.Sprintf("/visits/%d", id))
}

// LookupAddress resolves a CEP through the server's address gateway.
func (c *Client) LookupAddress(code string) (*cep.Address, error) {
	var addr cep.Address
	if err := c.get("/address/cep/"+code, &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

// CheckDistance asks the distance service how far apart two points
// are, in the context of a visit. The raw upstream payload is
// returned untouched.
func (c *Client) CheckDistance(id int64, origin, dest distance.Point) (json.RawMessage, error) {
	body := map[string]distance.Point{
		"origin":      origin,
		"destination": dest,
	}
	var raw json.RawMessage
	if err := c.post(fmt.Sprintf("/visits/%d/distance-check", id), body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Health checks that the server is up.
func (c *Client) Health() error {
	return c.get("/health", nil)
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(path string, body interface{}, result interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

// put performs a PUT request with a JSON body and decodes the response.
func (c *Client) put(path string, body interface{}, result interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequest("PUT", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

// doDelete performs a DELETE request.
func (c *Client) doDelete(path string) error {
	req, err := http.NewRequest("DELETE", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, nil)
}

// do executes an HTTP request and handles errors.
func (c *Client) do(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
			return &APIError{Kind: errResp.Error, Message: errResp.Message}
		}
		return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
