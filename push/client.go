// Package push implements the client side of the push-delivery gateway.
// The gateway is an opaque token-addressed transport: the client shapes
// one JSON send request per notification and reports the gateway's
// verdict as-is, with no retry of its own.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"guest-push/contract"
	"guest-push/domain"
)

const sendPath = "/v1/messages:send"

type Client struct {
	httpClient *http.Client
	baseURL    string
	serverKey  string
}

var _ contract.Pusher = (*Client)(nil)

func NewClient(baseURL, serverKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		serverKey:  serverKey,
	}
}

type sendRequest struct {
	To           string            `json:"to"`
	Notification sendNotification  `json:"notification"`
	Data         map[string]string `json:"data"`
}

type sendNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// errorResponse is the gateway's rejection body. Its message travels back
// verbatim so the direct-send entry point can surface it to callers.
type errorResponse struct {
	Error string `json:"error"`
}

// Send delivers one notification to one device token.
func (c *Client) Send(ctx context.Context, token string, n domain.Notification) error {
	data := n.Data
	if data == nil {
		data = map[string]string{}
	}

	payload, err := json.Marshal(sendRequest{
		To:           token,
		Notification: sendNotification{Title: n.Title, Body: n.Body},
		Data:         data,
	})
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.serverKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	var gw errorResponse
	if err := json.Unmarshal(body, &gw); err == nil && gw.Error != "" {
		return fmt.Errorf("push gateway rejected send: %s", gw.Error)
	}
	return fmt.Errorf("push gateway error: status=%d body=%s", resp.StatusCode, string(body))
}
