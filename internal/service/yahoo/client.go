package yahoo

import (
	"context"
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// Client is the fallback BarSource: three months of free daily history from
// Yahoo Finance. The finance-go chart API manages its own HTTP transport, so
// the shared client timeout does not apply here.
type Client struct{}

// New creates a Yahoo history client.
func New() *Client { return &Client{} }

func (c *Client) Name() string { return "Yahoo" }

func (c *Client) Available() bool { return true }

// DailyCloses returns daily closes for roughly the last three months, oldest
// first.
func (c *Client) DailyCloses(_ context.Context, symbol string) ([]float64, error) {
	end := time.Now()
	start := end.AddDate(0, -3, 0)

	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)
	var closes []float64
	for iter.Next() {
		closes = append(closes, iter.Bar().Close.InexactFloat64())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("yahoo history: %w", err)
	}
	if len(closes) == 0 {
		return nil, fmt.Errorf("yahoo history: empty for %s", symbol)
	}
	return closes, nil
}
