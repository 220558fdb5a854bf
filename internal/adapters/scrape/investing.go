package scrape

import (
	"context"
	"fmt"
	"net/http"
)

// InvestingSource reads one cell out of the Investing.com exchange-rates
// table. The same page serves both USD/KRW and JPY/KRW; only the cell
// selector differs.
type InvestingSource struct {
	http     *http.Client
	url      string
	selector string
}

// Cell selectors for the two rates the dashboard displays.
const (
	InvestingUSDKRWSelector = "td#last_12_28"
	InvestingJPYKRWSelector = "td#last_2_28"
)

func NewInvestingSource(httpClient *http.Client, url, selector string) *InvestingSource {
	return &InvestingSource{http: httpClient, url: url, selector: selector}
}

func (s *InvestingSource) Rate(ctx context.Context) (float64, error) {
	doc, err := fetchDocument(ctx, s.http, s.url)
	if err != nil {
		return 0, err
	}

	cell := doc.Find(s.selector).First()
	if cell.Length() == 0 {
		return 0, fmt.Errorf("cell %q not found in page", s.selector)
	}
	return parseWon(cell.Text())
}
