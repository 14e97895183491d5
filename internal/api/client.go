// Package api is the REST client for the tracklab service. The login
// flow uses exactly three calls: anonymous key issuance, viewer lookup,
// and the post-login user-settings refresh.
package api

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// basicAuthUser is the fixed login identifier for API key auth. The
// service identifies the account from the key itself.
const basicAuthUser = "api"

// Client talks to the tracklab service at a fixed base URL.
type Client struct {
	rc *resty.Client
}

// New creates a Client for the given base URL, e.g. "https://api.tracklab.ai".
func New(baseURL string) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", "tracklab-cli")
	return &Client{rc: rc}
}

// errorEnvelope is the service's error response body.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (e *errorEnvelope) message(resp *resty.Response) string {
	if e != nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return fmt.Sprintf("unexpected response (%d)", resp.StatusCode())
}

// CreateAnonymousKey asks the service to issue a throwaway API key.
// Failures propagate to the caller; the login flow treats them as fatal
// for the attempt.
func (c *Client) CreateAnonymousKey(ctx context.Context) (string, error) {
	var out struct {
		APIKey string `json:"apiKey"`
	}
	var apiErr errorEnvelope

	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiErr).
		Post("/api/anonymous-keys")
	if err != nil {
		return "", fmt.Errorf("creating anonymous key: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("creating anonymous key: %s", apiErr.message(resp))
	}
	if out.APIKey == "" {
		return "", fmt.Errorf("creating anonymous key: empty key in response")
	}
	return out.APIKey, nil
}

// Viewer is the identity the service resolves for an API key.
type Viewer struct {
	Entity string `json:"entity"`
	Email  string `json:"email,omitempty"`
}

// Viewer resolves the identity behind key.
func (c *Client) Viewer(ctx context.Context, key string) (*Viewer, error) {
	var out Viewer
	var apiErr errorEnvelope

	resp, err := c.rc.R().
		SetContext(ctx).
		SetBasicAuth(basicAuthUser, key).
		SetResult(&out).
		SetError(&apiErr).
		Get("/api/viewer")
	if err != nil {
		return nil, fmt.Errorf("resolving viewer: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("resolving viewer: %s", apiErr.message(resp))
	}
	return &out, nil
}

// RefreshUserSettings asks the service to push the account's settings
// to this client. Best-effort: the login flow logs failures and moves on.
func (c *Client) RefreshUserSettings(ctx context.Context, key string) error {
	var apiErr errorEnvelope

	resp, err := c.rc.R().
		SetContext(ctx).
		SetBasicAuth(basicAuthUser, key).
		SetError(&apiErr).
		Post("/api/users/settings/refresh")
	if err != nil {
		return fmt.Errorf("refreshing user settings: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("refreshing user settings: %s", apiErr.message(resp))
	}
	return nil
}
