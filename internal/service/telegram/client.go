package telegram

import (
	"context"
	"fmt"
	"time"

	xhttp "QuantScout/pkg/http"
)

const apiURL = "https://api.telegram.org"

// Client delivers alert messages through the Telegram bot sendMessage
// endpoint. Delivery is best effort with a short timeout; callers swallow
// errors.
type Client struct {
	token   string
	chatID  string
	baseURL string
	client  *xhttp.Client
}

// New creates a Telegram sender.
func New(token, chatID string) *Client {
	return &Client{
		token:   token,
		chatID:  chatID,
		baseURL: apiURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(3 * time.Second)),
	}
}

func (c *Client) Available() bool { return c.token != "" && c.chatID != "" }

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// Send posts one message to the configured chat.
func (c *Client) Send(ctx context.Context, text string) error {
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token),
		Body:   sendMessageRequest{ChatID: c.chatID, Text: text},
	}, nil)
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
