package tiingo

import (
	"context"
	"fmt"
	"time"

	xhttp "QuantScout/pkg/http"
)

// Client is the primary NewsSource backed by the Tiingo news API.
type Client struct {
	apiKey  string
	baseURL string
	client  *xhttp.Client
}

// New creates a Tiingo client.
func New(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(5 * time.Second)),
	}
}

func (c *Client) Name() string { return "Tiingo" }

func (c *Client) Available() bool { return c.apiKey != "" }

type newsItem struct {
	Title string `json:"title"`
}

// LatestHeadline returns the title of the single most recent article tagged
// with symbol.
func (c *Client) LatestHeadline(ctx context.Context, symbol string) (string, error) {
	var items []newsItem
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/tiingo/news",
		QueryParams: map[string][]string{
			"tickers": {symbol},
			"limit":   {"1"},
			"token":   {c.apiKey},
		},
	}, &items)
	if err != nil {
		return "", fmt.Errorf("tiingo news: %w", err)
	}
	if len(items) == 0 || items[0].Title == "" {
		return "", fmt.Errorf("tiingo news: no articles for %s", symbol)
	}
	return items[0].Title, nil
}
