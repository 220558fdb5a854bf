package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"fxboard/internal/adapters"
	"fxboard/internal/domain"
	"fxboard/internal/rates"
)

// --- stub adapters behind a real service ---

type stubChart struct {
	frame *adapters.BulkFrame
}

func (s *stubChart) DownloadDaily(ctx context.Context, symbols []string, rng string) (*adapters.BulkFrame, error) {
	if s.frame == nil {
		return nil, errors.New("provider down")
	}
	return s.frame, nil
}

func (s *stubChart) History(ctx context.Context, symbol string, rng string) (*adapters.TickerBars, error) {
	return nil, errors.New("provider down")
}

func (s *stubChart) Quote(ctx context.Context, symbol string) (float64, error) {
	return 0, errors.New("provider down")
}

type noStore struct{}

func (noStore) LatestDates(ctx context.Context, pairs []domain.Pair) (map[domain.Pair]*time.Time, error) {
	return nil, nil
}

func (noStore) Load(ctx context.Context, pairs []domain.Pair, start, end time.Time) (*domain.Table, *domain.Table, *domain.Table, error) {
	return domain.NewTable(), domain.NewTable(), domain.NewTable(), nil
}

func (noStore) Save(ctx context.Context, closeT, highT, lowT, openT *domain.Table) bool { return false }

func (noStore) Coverage(ctx context.Context, pairs []domain.Pair) (map[domain.Pair]bool, error) {
	return nil, nil
}

type stubSpotSource struct {
	value float64
	err   error
}

func (s stubSpotSource) Rate(ctx context.Context) (float64, error) { return s.value, s.err }

type mapCache map[string]float64

func (c mapCache) Get(key string) (float64, bool) {
	v, ok := c[key]
	return v, ok
}

func (c mapCache) Set(key string, value float64, ttl time.Duration) { c[key] = value }

func f(v float64) *float64 { return &v }

func testFrame() *adapters.BulkFrame {
	d1, _ := time.Parse("2006-01-02", "2025-08-01")
	d2, _ := time.Parse("2006-01-02", "2025-08-04")
	return &adapters.BulkFrame{
		Dates: []time.Time{d1, d2},
		Columns: []adapters.BulkColumn{
			{Labels: []string{"USDKRW=X", "Close"}, Values: []*float64{f(1390), f(1392)}},
			{Labels: []string{"JPY=X", "Close"}, Values: []*float64{f(147.2), f(147.5)}},
		},
	}
}

func newTestRouter(t *testing.T, chart adapters.ChartClient) *chi.Mux {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	clock := clockwork.NewFakeClockAt(time.Date(2025, 8, 14, 10, 0, 0, 0, time.UTC))

	fetcher := rates.NewFetcher(chart, log)
	memo := rates.NewResultMemo(time.Hour, clock)
	service := rates.NewService(noStore{}, fetcher, memo, clock, log)

	spots := rates.NewSpotService(rates.SpotConfig{
		USDTKRW:         stubSpotSource{value: 1391.0},
		NaverUSDKRW:     stubSpotSource{err: errors.New("blocked")},
		InvestingUSDKRW: stubSpotSource{value: 1390.2},
		InvestingJPYKRW: stubSpotSource{value: 9.42},
		TickerTTL:       time.Minute,
		ScrapeTTL:       time.Minute,
	}, make(mapCache), log)

	h := NewRatesHandler(service, spots)

	router := chi.NewRouter()
	router.Get("/api/v1/rates/current", h.GetCurrent)
	router.Get("/api/v1/rates/spot", h.GetSpotAll)
	router.Get("/api/v1/rates/spot/{source}", h.GetSpot)
	router.Get("/api/v1/rates/period/{months}", h.GetPeriod)
	return router
}

func doGet(t *testing.T, router *chi.Mux, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetPeriod_ValidatesMonths(t *testing.T) {
	router := newTestRouter(t, &stubChart{frame: testFrame()})

	rec := doGet(t, router, "/api/v1/rates/period/2")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doGet(t, router, "/api/v1/rates/period/abc")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPeriod_ReturnsSeries(t *testing.T) {
	router := newTestRouter(t, &stubChart{frame: testFrame()})

	rec := doGet(t, router, "/api/v1/rates/period/12")
	require.Equal(t, http.StatusOK, rec.Code)

	var res GetPeriodResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, 12, res.Months)
	require.Equal(t, []string{"2025-08-01", "2025-08-04"}, res.Close.Dates)
	require.Equal(t, 1390.0, *res.Close.Series["USD_KRW"][0])
	// Derived cross-rate comes along with the fetched columns.
	require.InDelta(t, 1390.0/147.2, *res.Close.Series["JPY_KRW"][0], 1e-9)
	// Index needs all six components; with only two pairs it is null per row.
	for _, v := range res.Index {
		require.Nil(t, v)
	}
}

func TestGetCurrent_ReportsRatesAndNullIndex(t *testing.T) {
	router := newTestRouter(t, &stubChart{frame: testFrame()})

	rec := doGet(t, router, "/api/v1/rates/current")
	require.Equal(t, http.StatusOK, rec.Code)

	var res GetCurrentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	require.Equal(t, 1392.0, *res.Rates["USD_KRW"])
	// Pairs with no data carry the explicit zero, derived entries are null.
	require.Equal(t, 0.0, *res.Rates["EUR_USD"])
	require.InDelta(t, 100/147.5, *res.Rates["JXY"], 1e-9)
	require.Nil(t, res.DollarIndex)
}

func TestGetSpot(t *testing.T) {
	router := newTestRouter(t, &stubChart{frame: testFrame()})

	rec := doGet(t, router, "/api/v1/rates/spot/usdt-krw")
	require.Equal(t, http.StatusOK, rec.Code)
	var res GetSpotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "usdt-krw", res.Source)
	require.Equal(t, 1391.0, *res.Rate)

	rec = doGet(t, router, "/api/v1/rates/spot/btc-krw")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSpotAll(t *testing.T) {
	router := newTestRouter(t, &stubChart{frame: testFrame()})

	rec := doGet(t, router, "/api/v1/rates/spot")
	require.Equal(t, http.StatusOK, rec.Code)

	var res GetSpotAllResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Rates, 4)
	require.Equal(t, 1391.0, *res.Rates["usdt-krw"])
	require.Nil(t, res.Rates["naver-usd-krw"])
}
