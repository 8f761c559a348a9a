// Package render talks to the external renderer service that turns a deck
// into a binary slide file.
package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gerunddev/deckbridge/internal/deck"
)

// DefaultTimeout bounds a single render call.
const DefaultTimeout = 30 * time.Second

// Client posts decks to the renderer service. One POST per deck; the call
// either succeeds or fails, there is no retry or backoff.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return NewClientWithTimeout(baseURL, DefaultTimeout)
}

// NewClientWithTimeout creates a client with a custom request timeout.
func NewClientWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Render serializes the deck and posts it to the service's /render endpoint.
// A non-2xx response is surfaced as an error carrying the status and the
// start of the response body.
func (c *Client) Render(ctx context.Context, d deck.Deck) error {
	body, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode deck: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/render", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build render request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("render request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("renderer returned %s: %s", res.Status, strings.TrimSpace(string(snippet)))
	}
	return nil
}
