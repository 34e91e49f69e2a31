package googlenews

import (
	"context"
	"fmt"
	"net/url"
	"time"

	xhttp "QuantScout/pkg/http"

	"github.com/mmcdole/gofeed"
)

const searchURL = "https://news.google.com/rss/search"

// Client is the fallback NewsSource: a free-text Google News RSS search for
// "<symbol> stock news" restricted to the last day. No credentials needed.
type Client struct {
	client *xhttp.Client
	parser *gofeed.Parser
}

// New creates a Google News RSS client.
func New() *Client {
	return &Client{
		client: xhttp.NewClient(xhttp.WithTimeout(5 * time.Second)),
		parser: gofeed.NewParser(),
	}
}

func (c *Client) Name() string { return "Google" }

func (c *Client) Available() bool { return true }

// LatestHeadline returns the title of the first search result.
func (c *Client) LatestHeadline(ctx context.Context, symbol string) (string, error) {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("%s stock news when:1d", symbol))
	q.Set("hl", "en-US")
	q.Set("gl", "US")
	q.Set("ceid", "US:en")

	var body []byte
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    searchURL + "?" + q.Encode(),
	}, &body)
	if err != nil {
		return "", fmt.Errorf("google news fetch: %w", err)
	}

	feed, err := c.parser.ParseString(string(body))
	if err != nil {
		return "", fmt.Errorf("google news parse: %w", err)
	}
	if len(feed.Items) == 0 || feed.Items[0].Title == "" {
		return "", fmt.Errorf("google news: no results for %s", symbol)
	}
	return feed.Items[0].Title, nil
}
