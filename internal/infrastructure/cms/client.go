// Package cms implements the resource gateway against the external headless
// content API. It is a thin, uncached pass-through: every call is a single
// round trip carrying the caller's bearer credential.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cx-platform/projects-dashboard/internal/core/domain"
	"github.com/cx-platform/projects-dashboard/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// Client talks to the content API at a fixed base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL. A trailing slash on the
// base URL is tolerated.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// requestBody is the mutation envelope the CMS expects: {"data": {...}}.
type requestBody struct {
	Data json.RawMessage `json:"data"`
}

// Invoke maps (model, action) to the fixed HTTP method and path, appends the
// query string when present, and executes the call. The upstream payload is
// returned unmodified; non-2xx responses return the body alongside an
// *ports.UpstreamError so the caller can inspect the upstream error shape.
func (c *Client) Invoke(ctx context.Context, model string, action domain.Action, token, id string, data json.RawMessage, query url.Values) (json.RawMessage, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}

	endpoint := c.baseURL + action.Path(model, id)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if action.HasBody() && data != nil {
		payload, err := json.Marshal(requestBody{Data: data})
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, action.Method(), endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req)
}

// Ping checks CMS reachability for readiness probes. Any HTTP response,
// including 4xx, proves the upstream is alive.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cms ping: %w", err)
	}
	resp.Body.Close()
	return nil
}

// do executes the request and applies the error-as-data contract.
func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return payload, &ports.UpstreamError{Status: resp.StatusCode, Body: payload}
	}
	return payload, nil
}

var _ ports.ResourceGateway = (*Client)(nil)
