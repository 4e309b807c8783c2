// Package auth0 implements the redirect-based federated login protocol
// against an Auth0 tenant: authorize redirect, code exchange, userinfo
// lookup, and the provider-side logout URL.
package auth0

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Scope requests the identity claims the callback needs.
const Scope = "openid email profile"

type Client struct {
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string

	// BaseURL overrides https://<Domain> for tests.
	BaseURL    string
	HTTPClient *http.Client
}

func New(domain, clientID, clientSecret, callbackURL string) *Client {
	return &Client{
		Domain:       domain,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		CallbackURL:  callbackURL,
		HTTPClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.Domain != "" && c.ClientID != ""
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return "https://" + c.Domain
}

// AuthorizeURL is the provider redirect that starts the flow. No local state
// is created here beyond the caller's state cookie.
func (c *Client) AuthorizeURL(state string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", c.ClientID)
	params.Set("redirect_uri", c.CallbackURL)
	params.Set("scope", Scope)
	params.Set("state", state)
	return c.baseURL() + "/authorize?" + params.Encode()
}

// LogoutURL is the provider-side logout redirect. returnTo is the origin the
// provider sends the browser back to.
func (c *Client) LogoutURL(returnTo string) string {
	params := url.Values{}
	params.Set("client_id", c.ClientID)
	params.Set("returnTo", returnTo)
	return c.baseURL() + "/v2/logout?" + params.Encode()
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Exchange trades the callback code for an access token.
func (c *Client) Exchange(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", c.ClientID)
	form.Set("client_secret", c.ClientSecret)
	form.Set("code", code)
	form.Set("redirect_uri", c.CallbackURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("auth0: token endpoint returned %d", resp.StatusCode)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", err
	}
	if token.AccessToken == "" {
		return "", errors.New("auth0: token response missing access_token")
	}
	return token.AccessToken, nil
}

// Profile is the subset of userinfo claims the callback consumes.
type Profile struct {
	Sub   string `json:"sub"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (c *Client) UserInfo(ctx context.Context, accessToken string) (Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/userinfo", nil)
	if err != nil {
		return Profile{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Profile{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Profile{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("auth0: userinfo returned %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.Unmarshal(body, &profile); err != nil {
		return Profile{}, err
	}
	if profile.Email == "" {
		return Profile{}, errors.New("auth0: userinfo missing email claim")
	}
	return profile, nil
}
