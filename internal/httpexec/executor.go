package httpexec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrRemoteAPI covers any transport-level failure against an instance:
// connection errors, timeouts, and non-2xx responses alike.
var ErrRemoteAPI = errors.New("error reading remote API")

// Auth describes how a request authenticates. The zero value sends no
// credentials; a non-empty token is attached as a bearer token.
type Auth struct {
	Token string
}

// None is the unauthenticated Auth.
var None = Auth{}

// Bearer returns an Auth carrying the given bearer token.
func Bearer(token string) Auth {
	return Auth{Token: token}
}

// Client issues requests against advisor instances.
type Client struct {
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(e *Client) {
		e.httpClient = c
	}
}

// New creates a Client with the given options.
func New(opts ...Option) *Client {
	c := &Client{httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute performs a single GET against url and returns the response body.
// The deadline covers the full exchange including the body read. Exactly one
// attempt is made; there are no retries. Responses outside the 2xx range are
// reported as ErrRemoteAPI with the status in the message.
func (c *Client) Execute(ctx context.Context, url string, auth Auth, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: creating request for %s: %v", ErrRemoteAPI, url, err)
	}
	if auth.Token != "" {
		req.Header.Set("Authorization", "Bearer "+auth.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteAPI, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response body: %v", ErrRemoteAPI, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s returned status %d", ErrRemoteAPI, url, resp.StatusCode)
	}

	return string(body), nil
}
