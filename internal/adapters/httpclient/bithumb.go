package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// BithumbClient reads the USDT/KRW closing price from Bithumb's public
// ticker endpoint.
type BithumbClient struct {
	http *http.Client
	url  string
}

func NewBithumbClient(httpClient *http.Client, url string) *BithumbClient {
	return &BithumbClient{http: httpClient, url: url}
}

type bithumbResponse struct {
	Status string `json:"status"`
	Data   struct {
		ClosingPrice *string `json:"closing_price"`
	} `json:"data"`
}

func (c *BithumbClient) Rate(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create ticker request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute ticker request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("unexpected ticker status: %s", resp.Status)
	}

	var body bithumbResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode ticker response: %w", err)
	}
	if body.Data.ClosingPrice == nil {
		return 0, fmt.Errorf("ticker response carries no closing price")
	}

	price, err := strconv.ParseFloat(*body.Data.ClosingPrice, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse closing price %q: %w", *body.Data.ClosingPrice, err)
	}
	return price, nil
}
