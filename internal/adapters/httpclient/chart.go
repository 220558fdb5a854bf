package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fxboard/internal/adapters"
)

const chartDateLayout = "2006-01-02"

// ChartClient downloads daily OHLC history from the bulk quote provider.
// The provider serves three endpoints: a batched download for a symbol
// list, a per-symbol history used as fallback, and a live quote.
type ChartClient struct {
	http    *http.Client
	baseURL string
}

func NewChartClient(httpClient *http.Client, baseURL string) *ChartClient {
	return &ChartClient{http: httpClient, baseURL: strings.TrimSuffix(baseURL, "/")}
}

type bulkResponse struct {
	Dates   []string `json:"dates"`
	Columns []struct {
		Labels []string   `json:"labels"`
		Values []*float64 `json:"values"`
	} `json:"columns"`
}

type historyResponse struct {
	Dates []string   `json:"dates"`
	Open  []*float64 `json:"open"`
	High  []*float64 `json:"high"`
	Low   []*float64 `json:"low"`
	Close []*float64 `json:"close"`
}

type quoteResponse struct {
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
}

func (c *ChartClient) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request for %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, path)
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response for %s: %w", path, err)
	}
	return nil
}

func parseDates(raw []string) ([]time.Time, error) {
	dates := make([]time.Time, len(raw))
	for i, s := range raw {
		d, err := time.Parse(chartDateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date %q: %w", s, err)
		}
		dates[i] = d
	}
	return dates, nil
}

// DownloadDaily fetches daily bars for the whole symbol set in one call.
// Column labelling varies between provider versions; the raw frame is
// returned untouched for the caller to normalize.
func (c *ChartClient) DownloadDaily(ctx context.Context, symbols []string, rng string) (*adapters.BulkFrame, error) {
	q := url.Values{}
	q.Set("symbols", strings.Join(symbols, ","))
	q.Set("range", rng)
	q.Set("interval", "1d")

	var body bulkResponse
	if err := c.get(ctx, "/v8/finance/download", q, &body); err != nil {
		return nil, err
	}

	dates, err := parseDates(body.Dates)
	if err != nil {
		return nil, err
	}

	frame := &adapters.BulkFrame{Dates: dates}
	for _, col := range body.Columns {
		if len(col.Values) != len(dates) {
			return nil, fmt.Errorf("column %v has %d values for %d dates", col.Labels, len(col.Values), len(dates))
		}
		frame.Columns = append(frame.Columns, adapters.BulkColumn{Labels: col.Labels, Values: col.Values})
	}
	return frame, nil
}

// History fetches one symbol's daily bars, used when the bulk download
// comes back empty.
func (c *ChartClient) History(ctx context.Context, symbol string, rng string) (*adapters.TickerBars, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("range", rng)
	q.Set("interval", "1d")

	var body historyResponse
	if err := c.get(ctx, "/v8/finance/history", q, &body); err != nil {
		return nil, err
	}

	dates, err := parseDates(body.Dates)
	if err != nil {
		return nil, err
	}
	n := len(dates)
	for _, series := range [][]*float64{body.Open, body.High, body.Low, body.Close} {
		if series != nil && len(series) != n {
			return nil, fmt.Errorf("history for %q has ragged columns", symbol)
		}
	}

	return &adapters.TickerBars{
		Dates: dates,
		Open:  body.Open,
		High:  body.High,
		Low:   body.Low,
		Close: body.Close,
	}, nil
}

// Quote returns the live market price for a symbol.
func (c *ChartClient) Quote(ctx context.Context, symbol string) (float64, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	var body quoteResponse
	if err := c.get(ctx, "/v8/finance/quote", q, &body); err != nil {
		return 0, err
	}
	if body.RegularMarketPrice == nil {
		return 0, fmt.Errorf("no market price for %q", symbol)
	}
	return *body.RegularMarketPrice, nil
}
