// Package auth is the HTTP client for the external identity provider. The
// provider owns credentials and OAuth flows; this backend only redirects to
// it, exchanges callback codes and resolves profiles.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"safeqr/config"
	"safeqr/domain"
)

// ProviderClient defines the interface for identity provider operations
type ProviderClient interface {
	AuthorizeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*domain.Session, error)
	GetUser(ctx context.Context, accessToken string) (*domain.UserContext, error)
	SignOut(ctx context.Context, accessToken string) error
}

// Client represents an identity provider client wrapper
type Client struct {
	baseURL     string
	apiKey      string
	callbackURL string
	sessionTTL  time.Duration
	httpClient  *http.Client
	logger      *slog.Logger
}

// Ensure Client implements ProviderClient interface
var _ ProviderClient = (*Client)(nil)

// tokenResponse is the provider's code exchange payload
type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        userResponse `json:"user"`
}

// userResponse is the provider's profile payload
type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Metadata struct {
		Name      string `json:"full_name"`
		AvatarURL string `json:"avatar_url"`
	} `json:"user_metadata"`
}

// NewClient creates a new identity provider client
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:     cfg.Auth.ProviderURL,
		apiKey:      cfg.Auth.ProviderAPIKey,
		callbackURL: cfg.Auth.CallbackURL,
		sessionTTL:  cfg.Auth.SessionTTL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// AuthorizeURL builds the provider URL the browser is redirected to
func (c *Client) AuthorizeURL(state string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("redirect_uri", c.callbackURL)
	params.Set("state", state)
	return c.baseURL + "/authorize?" + params.Encode()
}

// ExchangeCode trades an authorization code for a provider session
func (c *Client) ExchangeCode(ctx context.Context, code string) (*domain.Session, error) {
	payload := map[string]string{
		"grant_type":   "authorization_code",
		"code":         code,
		"redirect_uri": c.callbackURL,
	}

	response, err := c.makeRequest(ctx, "POST", "/token", "", payload)
	if err != nil {
		c.logger.Error("code exchange failed", "error", err)
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	var result tokenResponse
	if err := json.Unmarshal(response, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token response: %w", err)
	}
	if result.AccessToken == "" {
		return nil, fmt.Errorf("provider returned no access token")
	}

	userID, err := uuid.Parse(result.User.ID)
	if err != nil {
		return nil, fmt.Errorf("provider returned invalid user id: %w", err)
	}

	return &domain.Session{
		UserID:      userID,
		Email:       result.User.Email,
		Name:        result.User.Metadata.Name,
		AvatarURL:   result.User.Metadata.AvatarURL,
		ExpiresAt:   time.Now().Add(c.sessionTTL),
		AccessToken: result.AccessToken,
	}, nil
}

// GetUser resolves the profile behind a provider access token
func (c *Client) GetUser(ctx context.Context, accessToken string) (*domain.UserContext, error) {
	response, err := c.makeRequest(ctx, "GET", "/user", accessToken, nil)
	if err != nil {
		c.logger.Error("user lookup failed", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var result userResponse
	if err := json.Unmarshal(response, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user response: %w", err)
	}

	userID, err := uuid.Parse(result.ID)
	if err != nil {
		return nil, fmt.Errorf("provider returned invalid user id: %w", err)
	}

	return &domain.UserContext{
		UserID:    userID,
		Email:     result.Email,
		Name:      result.Metadata.Name,
		AvatarURL: result.Metadata.AvatarURL,
		ExpiresAt: time.Now().Add(c.sessionTTL),
	}, nil
}

// SignOut revokes the provider session for the given access token
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	_, err := c.makeRequest(ctx, "POST", "/logout", accessToken, nil)
	if err != nil {
		c.logger.Error("provider sign out failed", "error", err)
		return fmt.Errorf("failed to sign out: %w", err)
	}
	return nil
}

// makeRequest is a helper method to make HTTP requests to the provider
func (c *Client) makeRequest(ctx context.Context, method, endpoint, accessToken string, payload interface{}) ([]byte, error) {
	var body io.Reader

	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request payload: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	requestURL := c.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	c.logger.Debug("making provider request", "method", method, "url", requestURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("provider error: status=%d, body=%s", resp.StatusCode, string(responseBody))
	}

	return responseBody, nil
}
