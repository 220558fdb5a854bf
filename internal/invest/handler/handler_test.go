package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fxboard/internal/domain"
	"fxboard/internal/invest"
)

type MockInvestmentRepository struct{ mock.Mock }

func (m *MockInvestmentRepository) List(ctx context.Context, currency domain.Currency) ([]domain.Investment, error) {
	args := m.Called(ctx, currency)
	invs, _ := args.Get(0).([]domain.Investment)
	return invs, args.Error(1)
}

func (m *MockInvestmentRepository) Create(ctx context.Context, inv domain.Investment) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvestmentRepository) Delete(ctx context.Context, currency domain.Currency, id uuid.UUID) error {
	args := m.Called(ctx, currency, id)
	return args.Error(0)
}

func (m *MockInvestmentRepository) Sell(ctx context.Context, currency domain.Currency, id uuid.UUID, sellRate, sellAmount float64, at time.Time) (domain.SellResult, error) {
	args := m.Called(ctx, currency, id, sellRate, sellAmount, at)
	result, _ := args.Get(0).(domain.SellResult)
	return result, args.Error(1)
}

func (m *MockInvestmentRepository) ListSellRecords(ctx context.Context, currency domain.Currency) ([]domain.SellRecord, error) {
	args := m.Called(ctx, currency)
	records, _ := args.Get(0).([]domain.SellRecord)
	return records, args.Error(1)
}

func (m *MockInvestmentRepository) DeleteSellRecord(ctx context.Context, currency domain.Currency, id uuid.UUID) error {
	args := m.Called(ctx, currency, id)
	return args.Error(0)
}

func newTestRouter(repo *MockInvestmentRepository) *chi.Mux {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 8, 14, 10, 0, 0, 0, time.UTC))
	h := NewInvestHandler(invest.NewService(repo, clock))

	router := chi.NewRouter()
	router.Get("/api/v1/investments/{currency}", h.List)
	router.Post("/api/v1/investments/{currency}", h.Create)
	router.Delete("/api/v1/investments/{currency}/{id}", h.Delete)
	router.Post("/api/v1/investments/{currency}/{id}/sell", h.Sell)
	router.Get("/api/v1/sell-records/{currency}", h.ListSellRecords)
	router.Delete("/api/v1/sell-records/{currency}/{id}", h.DeleteSellRecord)
	return router
}

func do(router *chi.Mux, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestList_ReturnsInvestments(t *testing.T) {
	repo := new(MockInvestmentRepository)
	memo := "dca"
	repo.On("List", mock.Anything, domain.CurrencyUSD).Return([]domain.Investment{{
		ID:               uuid.New(),
		Currency:         domain.CurrencyUSD,
		InvestmentNumber: 3,
		PurchaseDate:     time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC),
		ExchangeRate:     1388.2,
		PurchaseKRW:      1388200,
		Amount:           1000,
		ExchangeName:     "hana",
		Memo:             &memo,
		CreatedAt:        time.Date(2025, 8, 14, 1, 0, 0, 0, time.UTC),
	}}, nil)

	rec := do(newTestRouter(repo), http.MethodGet, "/api/v1/investments/usd", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res ListInvestmentsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Investments, 1)
	require.Equal(t, "2025-08-14", res.Investments[0].PurchaseDate)
	require.Equal(t, "dca", *res.Investments[0].Memo)
}

func TestList_UnsupportedCurrency(t *testing.T) {
	rec := do(newTestRouter(new(MockInvestmentRepository)), http.MethodGet, "/api/v1/investments/EUR", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestList_NoStorage(t *testing.T) {
	repo := new(MockInvestmentRepository)
	repo.On("List", mock.Anything, domain.CurrencyUSD).Return(nil, domain.ErrNoStorage)

	rec := do(newTestRouter(repo), http.MethodGet, "/api/v1/investments/USD", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCreate_ValidRequest(t *testing.T) {
	repo := new(MockInvestmentRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	body := []byte(`{
        "investment_number": 3,
        "purchase_date": "2025-08-14",
        "exchange_rate": 1388.2,
        "purchase_krw": 1388200,
        "amount": 1000,
        "exchange_name": "hana"
    }`)
	rec := do(newTestRouter(repo), http.MethodPost, "/api/v1/investments/USD", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var res InvestmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(t, res.ID)
	require.Equal(t, "USD", res.Currency)
	require.Equal(t, "2025-08-14", res.PurchaseDate)
}

func TestCreate_BadRequests(t *testing.T) {
	router := newTestRouter(new(MockInvestmentRepository))

	cases := []struct {
		name string
		body string
	}{
		{name: "broken json", body: `{`},
		{name: "unknown field", body: `{"purchase_date":"2025-08-14","exchange_rate":1,"purchase_krw":1,"amount":1,"exchange_name":"hana","extra":1}`},
		{name: "bad date", body: `{"purchase_date":"14/08/2025","exchange_rate":1,"purchase_krw":1,"amount":1,"exchange_name":"hana"}`},
		{name: "zero amount", body: `{"purchase_date":"2025-08-14","exchange_rate":1,"purchase_krw":1,"amount":0,"exchange_name":"hana"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(router, http.MethodPost, "/api/v1/investments/USD", []byte(tc.body))
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDelete(t *testing.T) {
	repo := new(MockInvestmentRepository)
	id := uuid.New()
	repo.On("Delete", mock.Anything, domain.CurrencyJPY, id).Return(nil)

	router := newTestRouter(repo)

	rec := do(router, http.MethodDelete, "/api/v1/investments/JPY/"+id.String(), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(router, http.MethodDelete, "/api/v1/investments/JPY/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(MockInvestmentRepository)
	id := uuid.New()
	repo.On("Delete", mock.Anything, domain.CurrencyUSD, id).Return(domain.ErrInvestmentNotFound)

	rec := do(newTestRouter(repo), http.MethodDelete, "/api/v1/investments/USD/"+id.String(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSell_PartialAndErrors(t *testing.T) {
	repo := new(MockInvestmentRepository)
	id := uuid.New()
	repo.On("Sell", mock.Anything, domain.CurrencyUSD, id, 1400.0, 400.0, mock.Anything).
		Return(domain.SellResult{Remaining: 600, FullSell: false}, nil)

	router := newTestRouter(repo)

	rec := do(router, http.MethodPost, "/api/v1/investments/USD/"+id.String()+"/sell", []byte(`{"sell_rate":1400,"sell_amount":400}`))
	require.Equal(t, http.StatusOK, rec.Code)
	var res SellResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, 600.0, res.Remaining)
	require.False(t, res.FullSell)

	rec = do(router, http.MethodPost, "/api/v1/investments/USD/"+id.String()+"/sell", []byte(`{"sell_rate":0,"sell_amount":400}`))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSell_InsufficientAmountConflicts(t *testing.T) {
	repo := new(MockInvestmentRepository)
	id := uuid.New()
	repo.On("Sell", mock.Anything, domain.CurrencyUSD, id, 1400.0, 5000.0, mock.Anything).
		Return(domain.SellResult{}, domain.ErrInsufficientAmount)

	rec := do(newTestRouter(repo), http.MethodPost, "/api/v1/investments/USD/"+id.String()+"/sell", []byte(`{"sell_rate":1400,"sell_amount":5000}`))
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestSellRecords_ListAndDelete(t *testing.T) {
	repo := new(MockInvestmentRepository)
	recID := uuid.New()
	repo.On("ListSellRecords", mock.Anything, domain.CurrencyUSD).Return([]domain.SellRecord{{
		ID:               recID,
		InvestmentID:     uuid.New(),
		Currency:         domain.CurrencyUSD,
		InvestmentNumber: 3,
		SellDate:         time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
		PurchaseRate:     1388.2,
		SellRate:         1400,
		SellAmount:       400,
		SellKRW:          560000,
		ProfitKRW:        4720,
		ExchangeName:     "hana",
	}}, nil)
	repo.On("DeleteSellRecord", mock.Anything, domain.CurrencyUSD, recID).Return(nil)

	router := newTestRouter(repo)

	rec := do(router, http.MethodGet, "/api/v1/sell-records/USD", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var res ListSellRecordsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.SellRecords, 1)
	require.Equal(t, "2025-08-20", res.SellRecords[0].SellDate)
	require.Equal(t, 4720.0, res.SellRecords[0].ProfitKRW)

	rec = do(router, http.MethodDelete, "/api/v1/sell-records/USD/"+recID.String(), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteSellRecord_NotFound(t *testing.T) {
	repo := new(MockInvestmentRepository)
	id := uuid.New()
	repo.On("DeleteSellRecord", mock.Anything, domain.CurrencyUSD, id).Return(domain.ErrRecordNotFound)

	rec := do(newTestRouter(repo), http.MethodDelete, "/api/v1/sell-records/USD/"+id.String(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
