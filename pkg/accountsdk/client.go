package accountsdk

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// Client talks to the accounts service. It is safe for concurrent use, but
// all calls share one session cookie.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	base *url.URL
}

// NewClient creates a client with its own cookie jar.
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return NewClientWithHTTPClient(baseURL, &http.Client{
		Jar:     jar,
		Timeout: 10 * time.Second,
	})
}

// NewClientWithHTTPClient uses hc as-is. hc needs a cookie jar for the
// session to survive between calls.
func NewClientWithHTTPClient(baseURL string, hc *http.Client) (*Client, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	return &Client{
		BaseURL:    baseURL,
		HTTPClient: hc,
		base:       u,
	}, nil
}

// SessionToken returns the current session cookie value, or "" when the
// client is signed out.
func (c *Client) SessionToken() string {
	if c.HTTPClient.Jar == nil {
		return ""
	}
	for _, ck := range c.HTTPClient.Jar.Cookies(c.base) {
		if ck.Name == SessionCookieName {
			return ck.Value
		}
	}
	return ""
}

// SetSessionToken installs token as the session cookie, e.g. to resume a
// session obtained elsewhere.
func (c *Client) SetSessionToken(token string) {
	if c.HTTPClient.Jar == nil {
		return
	}
	c.HTTPClient.Jar.SetCookies(c.base, []*http.Cookie{{
		Name:  SessionCookieName,
		Value: token,
		Path:  "/",
	}})
}

// SessionCookieName is the cookie the service keeps its session in.
const SessionCookieName = "jwt"
