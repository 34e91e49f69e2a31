package polygon

import (
	"context"
	"fmt"
	"time"

	xhttp "QuantScout/pkg/http"
)

// Client is the fallback PriceSource backed by the Polygon last-trade API.
type Client struct {
	apiKey  string
	baseURL string
	client  *xhttp.Client
}

// New creates a Polygon client.
func New(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(5 * time.Second)),
	}
}

func (c *Client) Name() string { return "Polygon" }

func (c *Client) Available() bool { return c.apiKey != "" }

type lastTradeResponse struct {
	Results *struct {
		Price float64 `json:"p"`
	} `json:"results"`
}

// LatestPrice returns the price of the most recent trade for symbol.
func (c *Client) LatestPrice(ctx context.Context, symbol string) (float64, error) {
	var resp lastTradeResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/v2/last/trade/%s", c.baseURL, symbol),
		QueryParams: map[string][]string{
			"apiKey": {c.apiKey},
		},
	}, &resp)
	if err != nil {
		return 0, fmt.Errorf("polygon last trade: %w", err)
	}
	if resp.Results == nil || resp.Results.Price <= 0 {
		return 0, fmt.Errorf("polygon last trade: no results in payload")
	}
	return resp.Results.Price, nil
}
