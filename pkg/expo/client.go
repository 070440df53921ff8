// Package expo provides a client for the Expo push notification gateway.
//
// The gateway is treated as unreliable: it performs no retries of its own,
// and any non-success response is reported back as an error for the caller
// to record.
package expo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultBaseURL is the public Expo push endpoint.
const DefaultBaseURL = "https://exp.host/--/api/v2/push/send"

// Message is a single push delivery request.
type Message struct {
	To    string            `json:"to"`
	Sound string            `json:"sound,omitempty"`
	Title string            `json:"title,omitempty"`
	Body  string            `json:"body,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// Ticket is the gateway's acknowledgment of a delivery request. A Status
// other than "ok" means the request was rejected.
type Ticket struct {
	ID      string `json:"id,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Accepted reports whether the gateway accepted the request.
func (t Ticket) Accepted() bool {
	return t.Status == "ok"
}

// IsExpoPushToken reports whether s has the shape of an Expo push token.
// Tokens outside this shape are permanently invalid and not worth a round trip.
func IsExpoPushToken(s string) bool {
	if !strings.HasSuffix(s, "]") {
		return false
	}

	return strings.HasPrefix(s, "ExponentPushToken[") || strings.HasPrefix(s, "ExpoPushToken[")
}

// Client represents an Expo push gateway client.
type Client struct {
	baseURL     string
	accessToken string
	client      *http.Client
}

// NewClient creates a new Expo Client. An empty baseURL falls back to the
// public endpoint; accessToken is optional and only needed for accounts with
// enhanced push security enabled.
func NewClient(baseURL, accessToken string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		client:      &http.Client{},
	}
}

// pushResponse represents the envelope returned by the Expo push API.
type pushResponse struct {
	Data []Ticket `json:"data"`
}

// Send submits a single delivery request to the gateway and returns its
// ticket. The context bounds the whole round trip; callers are expected to
// pass a deadline so a hung gateway call cannot stall them indefinitely.
func (c *Client) Send(ctx context.Context, msg Message) (Ticket, error) {
	body, err := json.Marshal([]Message{msg})
	if err != nil {
		return Ticket{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return Ticket{}, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Ticket{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Ticket{}, fmt.Errorf("expo API error: %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Ticket{}, fmt.Errorf("read response: %w", err)
	}

	var pr pushResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return Ticket{}, fmt.Errorf("unmarshal response: %w", err)
	}

	if len(pr.Data) == 0 {
		return Ticket{}, fmt.Errorf("expo API returned no tickets")
	}

	return pr.Data[0], nil
}
