// Package scrape parses spot rates out of public finance pages. The DOM
// selectors are provider-specific and brittle; any structural change is
// reported as an error and absorbed by the caller.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func fetchDocument(ctx context.Context, client *http.Client, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected page status: %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc, nil
}

// parseWon strips the thousands separator and the won suffix and parses
// the remainder as a float.
func parseWon(text string) (float64, error) {
	num := strings.TrimSpace(text)
	num = strings.ReplaceAll(num, ",", "")
	num = strings.TrimSuffix(num, "원")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse rate %q: %w", text, err)
	}
	return v, nil
}

// NaverSource reads the headline USD/KRW rate off the Naver market-index
// page.
type NaverSource struct {
	http *http.Client
	url  string
}

func NewNaverSource(httpClient *http.Client, url string) *NaverSource {
	return &NaverSource{http: httpClient, url: url}
}

func (s *NaverSource) Rate(ctx context.Context) (float64, error) {
	doc, err := fetchDocument(ctx, s.http, s.url)
	if err != nil {
		return 0, err
	}

	node := doc.Find("#exchangeList .head_info .value").First()
	if node.Length() == 0 {
		return 0, fmt.Errorf("rate node not found in page")
	}
	return parseWon(node.Text())
}
