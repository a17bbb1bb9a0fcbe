package quote

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"nse-stock-alert-bot/config"
)

// chartResponse mirrors the Yahoo Finance v8 chart document. Closing prices
// arrive as a parallel array of nullable values.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}

// Client fetches the latest traded price for a ticker. The upstream flakes
// regularly, so every lookup walks a ladder of sampling intervals, finest
// first, retrying each a few times with a growing delay before falling back
// to the next coarser one.
type Client struct {
	baseURL    string
	httpClient *http.Client
	intervals  []string
	attempts   int
	retryDelay time.Duration
}

func NewClient() *Client {
	return &Client{
		baseURL:    config.GetString("quote_base_url"),
		httpClient: &http.Client{Timeout: 20 * time.Second},
		intervals:  []string{"1m", "5m", "15m"},
		attempts:   3,
		retryDelay: 2 * time.Second,
	}
}

// Fetch returns the most recent closing price for the ticker. Unavailability
// is an ordinary outcome, reported via ok=false and never as an error;
// failed attempts are only logged.
func (c *Client) Fetch(ticker string) (float64, bool) {
	for _, interval := range c.intervals {
		for attempt := 1; attempt <= c.attempts; attempt++ {
			price, err := c.fetchOnce(ticker, interval)
			if err == nil {
				return price, true
			}

			log.Warnf("quote fetch failed for %s (interval %s, attempt %d/%d): %v",
				ticker, interval, attempt, c.attempts, err)

			if attempt < c.attempts {
				time.Sleep(time.Duration(attempt) * c.retryDelay)
			}
		}
	}

	log.Errorf("quote unavailable for %s after exhausting all intervals", ticker)
	return 0, false
}

func (c *Client) fetchOnce(ticker, interval string) (float64, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=1d",
		c.baseURL, url.PathEscape(ticker), interval)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	// Yahoo rejects requests without a browser-looking agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "json") {
		return 0, fmt.Errorf("unexpected content type %q", ct)
	}

	var body chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("malformed chart response: %w", err)
	}

	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		return 0, fmt.Errorf("no quote data in response")
	}

	closes := body.Chart.Result[0].Indicators.Quote[0].Close
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] != nil {
			return *closes[i], nil
		}
	}

	return 0, fmt.Errorf("no closing prices in series")
}
