// Package cep resolves Brazilian postal codes against the ViaCEP directory.
package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/visitaup/visitas-api/internal/apperrors"
)

// DefaultBaseURL is the public ViaCEP endpoint.
const DefaultBaseURL = "https://viacep.com.br"

const requestTimeout = 10 * time.Second

// Address is the normalized result of a postal code lookup.
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	UF           string `json:"uf"`
}

// Client looks up addresses on the ViaCEP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a ViaCEP client. An empty baseURL selects the public
// endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// viaCEPResponse mirrors the upstream payload. The erro flag has shipped
// as both a bare boolean and the string "true" across API versions, so
// it is kept raw and inspected by hand.
type viaCEPResponse struct {
	CEP          string          `json:"cep"`
	Street       string          `json:"logradouro"`
	Complement   string          `json:"complemento"`
	Neighborhood string          `json:"bairro"`
	City         string          `json:"localidade"`
	UF           string          `json:"uf"`
	Erro         json.RawMessage `json:"erro"`
}

// notFound reports whether the upstream flagged the code as unknown.
func (r *viaCEPResponse) notFound() bool {
	return strings.Trim(string(r.Erro), `"`) == "true"
}

// Lookup resolves a postal code to an address. All non-digit characters
// are stripped from raw before the upstream call. Upstream failures come
// back with a generic message; the underlying cause is logged, not
// returned.
func (c *Client) Lookup(ctx context.Context, raw string) (*Address, error) {
	code := digitsOnly(raw)
	if code == "" {
		return nil, fmt.Errorf("%w: cep %q contains no digits", apperrors.ErrInvalid, raw)
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("cep directory unreachable", "error", err)
		return nil, fmt.Errorf("%w: could not reach address service", apperrors.ErrBadGateway)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("closing cep response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("cep directory returned an error", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: address service returned an error", apperrors.ErrBadGateway)
	}

	var result viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Warn("decoding cep response", "error", err)
		return nil, fmt.Errorf("%w: address service returned an error", apperrors.ErrBadGateway)
	}

	if result.notFound() {
		return nil, fmt.Errorf("cep %s: %w", code, apperrors.ErrNotFound)
	}

	return &Address{
		CEP:          result.CEP,
		Street:       result.Street,
		Complement:   result.Complement,
		Neighborhood: result.Neighborhood,
		City:         result.City,
		UF:           result.UF,
	}, nil
}

// digitsOnly strips everything but ASCII digits from s.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
