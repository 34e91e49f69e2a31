package alpaca

import (
	"context"
	"fmt"
	"time"

	xhttp "QuantScout/pkg/http"
)

// Client fetches latest trades and daily bars from the Alpaca market data
// API. It serves as both the primary PriceSource and the primary BarSource;
// without a key pair it reports unavailable and the engines fall through.
type Client struct {
	keyID     string
	secretKey string
	dataURL   string
	client    *xhttp.Client
}

// New creates an Alpaca data client.
func New(keyID, secretKey, dataURL string) *Client {
	return &Client{
		keyID:     keyID,
		secretKey: secretKey,
		dataURL:   dataURL,
		client:    xhttp.NewClient(xhttp.WithTimeout(5 * time.Second)),
	}
}

func (c *Client) Name() string { return "Alpaca" }

func (c *Client) Available() bool { return c.keyID != "" && c.secretKey != "" }

func (c *Client) headers() map[string]string {
	return map[string]string{
		"APCA-API-KEY-ID":     c.keyID,
		"APCA-API-SECRET-KEY": c.secretKey,
	}
}

type latestTradeResponse struct {
	Trade *struct {
		Price float64 `json:"p"`
	} `json:"trade"`
}

// LatestPrice returns the price of the most recent trade for symbol.
func (c *Client) LatestPrice(ctx context.Context, symbol string) (float64, error) {
	var resp latestTradeResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodGet,
		URL:     fmt.Sprintf("%s/v2/stocks/%s/trades/latest", c.dataURL, symbol),
		Headers: c.headers(),
	}, &resp)
	if err != nil {
		return 0, fmt.Errorf("alpaca latest trade: %w", err)
	}
	if resp.Trade == nil || resp.Trade.Price <= 0 {
		return 0, fmt.Errorf("alpaca latest trade: no trade in payload")
	}
	return resp.Trade.Price, nil
}

type barsResponse struct {
	Bars []struct {
		Close float64 `json:"c"`
	} `json:"bars"`
}

// DailyCloses returns up to the last 50 daily closes on the IEX feed, oldest
// first, as Alpaca orders them.
func (c *Client) DailyCloses(ctx context.Context, symbol string) ([]float64, error) {
	var resp barsResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodGet,
		URL:     fmt.Sprintf("%s/v2/stocks/%s/bars", c.dataURL, symbol),
		Headers: c.headers(),
		QueryParams: map[string][]string{
			"timeframe": {"1Day"},
			"limit":     {"50"},
			"feed":      {"iex"},
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("alpaca bars: %w", err)
	}
	if len(resp.Bars) == 0 {
		return nil, fmt.Errorf("alpaca bars: empty payload")
	}
	closes := make([]float64, 0, len(resp.Bars))
	for _, b := range resp.Bars {
		closes = append(closes, b.Close)
	}
	return closes, nil
}
