package airtable

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultAuthBaseURL = "https://airtable.com/oauth2/v1"

	// access this service needs on the connected account
	oauthScope = "data.records:read data.records:write schema.bases:read"
)

type OAuthConfig struct {
	ClientID     string        `json:"client_id" yaml:"client_id"`
	ClientSecret string        `json:"client_secret" yaml:"client_secret"`
	RedirectURI  string        `json:"redirect_uri" yaml:"redirect_uri"`
	AuthBaseURL  string        `json:"auth_base_url" yaml:"auth_base_url"`
	APIBaseURL   string        `json:"api_base_url" yaml:"api_base_url"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

func (cfg OAuthConfig) authBaseURL() string {
	if cfg.AuthBaseURL == "" {
		return DefaultAuthBaseURL
	}
	return cfg.AuthBaseURL
}

func (cfg OAuthConfig) apiBaseURL() string {
	if cfg.APIBaseURL == "" {
		return DefaultAPIBaseURL
	}
	return cfg.APIBaseURL
}

// BuildAuthorizeURL returns the URL to redirect the user to for granting
// access.
func (cfg OAuthConfig) BuildAuthorizeURL(state string) string {
	query := url.Values{}
	query.Set("client_id", cfg.ClientID)
	query.Set("redirect_uri", cfg.RedirectURI)
	query.Set("response_type", "code")
	query.Set("scope", oauthScope)
	query.Set("state", state)
	return cfg.authBaseURL() + "/authorize?" + query.Encode()
}

// ExchangeCode trades an authorization code for access and refresh tokens.
func (cfg OAuthConfig) ExchangeCode(code string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", cfg.RedirectURI)
	form.Set("client_id", cfg.ClientID)
	form.Set("client_secret", cfg.ClientSecret)

	req, err := http.NewRequest(http.MethodPost, cfg.authBaseURL()+"/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{
		Timeout: cfg.Timeout,
	}
	resp, err := client.Do(req)
	if err != nil {
		slog.Error("unexpected error in token exchange", slog.String("error", err.Error()))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("token exchange failed with status %d", resp.StatusCode)
	}

	var tokens TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		slog.Error("Error decoding token response", slog.String("error", err.Error()))
		return nil, err
	}
	return &tokens, nil
}

// GetCurrentUser fetches identity infos of the token's account.
func (cfg OAuthConfig) GetCurrentUser(accessToken string) (*UserInfo, error) {
	req, err := http.NewRequest(http.MethodGet, cfg.apiBaseURL()+"/meta/whoami", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	client := &http.Client{
		Timeout: cfg.Timeout,
	}
	resp, err := client.Do(req)
	if err != nil {
		slog.Error("unexpected error fetching user info", slog.String("error", err.Error()))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("user info request failed with status %d", resp.StatusCode)
	}

	var userInfo UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		slog.Error("Error decoding user info response", slog.String("error", err.Error()))
		return nil, err
	}
	return &userInfo, nil
}
