package stats

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"valfantasy/pkg/messages"
)

// Client fetches the league stats page.
type Client struct {
	httpClient *http.Client
	statsURL   string
}

// NewClient creates a stats page client.
func NewClient(statsURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		statsURL:   statsURL,
	}
}

// Fetch downloads and parses the current stats table.
func (c *Client) Fetch(ctx context.Context) ([]RawPlayerStat, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.statsURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", c.statsURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, c.statsURL)
	}

	return ParseStatsTable(resp.Body)
}
