package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestParseWon(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{in: "1,391.50", want: 1391.50},
		{in: "1,391.50원", want: 1391.50},
		{in: " 9.42 ", want: 9.42},
		{in: "941.2원", want: 941.2},
	}
	for _, tc := range cases {
		got, err := parseWon(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	_, err := parseWon("원")
	require.Error(t, err)
	_, err = parseWon("")
	require.Error(t, err)
}

func TestNaverSource_ReadsHeadlineValue(t *testing.T) {
	srv := serveHTML(t, `
        <div id="exchangeList">
            <div class="head_info">
                <span class="value">1,391.50</span>
                <span class="value">1,392.00</span>
            </div>
        </div>`)

	s := NewNaverSource(srv.Client(), srv.URL)

	rate, err := s.Rate(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1391.50, rate)
}

func TestNaverSource_MissingNode(t *testing.T) {
	srv := serveHTML(t, `<div id="other"></div>`)

	s := NewNaverSource(srv.Client(), srv.URL)

	_, err := s.Rate(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "rate node not found")
}

func TestInvestingSource_SelectsConfiguredCell(t *testing.T) {
	srv := serveHTML(t, `
        <table>
            <tr><td id="last_12_28">1,390.20</td></tr>
            <tr><td id="last_2_28">941.2원</td></tr>
        </table>`)

	usd := NewInvestingSource(srv.Client(), srv.URL, InvestingUSDKRWSelector)
	rate, err := usd.Rate(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1390.20, rate)

	jpy := NewInvestingSource(srv.Client(), srv.URL, InvestingJPYKRWSelector)
	rate, err = jpy.Rate(context.Background())
	require.NoError(t, err)
	require.Equal(t, 941.2, rate)
}

func TestInvestingSource_MissingCell(t *testing.T) {
	srv := serveHTML(t, `<table></table>`)

	s := NewInvestingSource(srv.Client(), srv.URL, InvestingUSDKRWSelector)

	_, err := s.Rate(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found in page")
}

func TestSource_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	s := NewNaverSource(srv.Client(), srv.URL)

	_, err := s.Rate(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected page status")
}
