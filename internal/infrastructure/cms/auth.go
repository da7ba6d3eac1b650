package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cx-platform/projects-dashboard/internal/core/domain"
	"github.com/cx-platform/projects-dashboard/internal/core/ports"
)

type signInRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn exchanges credentials for a bearer token via /api/auth/local.
// The CMS identifies users by email or username under "identifier".
func (c *Client) SignIn(ctx context.Context, identifier, password string) (*ports.AuthResult, error) {
	payload, err := c.postJSON(ctx, "/api/auth/local", signInRequest{
		Identifier: identifier,
		Password:   password,
	})
	if err != nil {
		var ue *ports.UpstreamError
		if errors.As(err, &ue) && ue.Status == http.StatusBadRequest {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	var result ports.AuthResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("decoding auth response: %w", err)
	}
	return &result, nil
}

// Register forwards a registration payload to /api/auth/local/register.
// On rejection the *ports.UpstreamError carries the upstream status and body
// so the handler can forward them verbatim.
func (c *Client) Register(ctx context.Context, username, email, password string) (json.RawMessage, error) {
	return c.postJSON(ctx, "/api/auth/local/register", registerRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
}

func (c *Client) postJSON(ctx context.Context, path string, body any) (json.RawMessage, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}
