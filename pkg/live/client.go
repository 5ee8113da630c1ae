// Package live consumes the Picture Pink API and its real-time event
// channel, maintaining a local mirror of server collections: one initial
// list fetch, then patch-on-event for as long as the watch is running.
// The mirror is best-effort; events missed while disconnected are never
// replayed, so the copy self-corrects only on the next fresh watch.
package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Client is a minimal REST client for the API root
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a Client for the given API root, e.g. "http://host:5000/api"
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken attaches a bearer token to subsequent requests
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a failure envelope returned by the server
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// envelope mirrors the server's response body
type envelope struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Err        string          `json:"error"`
}

// Get performs a GET against the API and decodes the envelope's data into out
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}
	if !env.Success {
		return &APIError{StatusCode: env.StatusCode, Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// List fetches a collection endpoint. The server answers an empty
// collection with a "No records found!" failure envelope; that is mapped
// back to an empty list here.
func List[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	err := c.Get(ctx, path, &items)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message == "No records found!" {
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}
