package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"fxboard/internal/domain"
	"fxboard/internal/invest"
)

type Handler struct {
	service *invest.Service
}

func NewInvestHandler(service *invest.Service) *Handler {
	return &Handler{service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func currencyParam(r *http.Request) domain.Currency {
	return domain.Currency(strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "currency"))))
}

func idParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// InvestmentResponse is the wire shape of a single ledger entry.
type InvestmentResponse struct {
	ID               string  `json:"id"`
	Currency         string  `json:"currency" example:"USD"`
	InvestmentNumber int     `json:"investment_number" example:"3"`
	PurchaseDate     string  `json:"purchase_date" example:"2025-08-14"`
	ExchangeRate     float64 `json:"exchange_rate" example:"1388.2"`
	PurchaseKRW      float64 `json:"purchase_krw" example:"1388200"`
	Amount           float64 `json:"amount" example:"1000"`
	ExchangeName     string  `json:"exchange_name" example:"hana"`
	Memo             *string `json:"memo,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

func investmentPayload(inv domain.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:               inv.ID.String(),
		Currency:         string(inv.Currency),
		InvestmentNumber: inv.InvestmentNumber,
		PurchaseDate:     inv.PurchaseDate.Format("2006-01-02"),
		ExchangeRate:     inv.ExchangeRate,
		PurchaseKRW:      inv.PurchaseKRW,
		Amount:           inv.Amount,
		ExchangeName:     inv.ExchangeName,
		Memo:             inv.Memo,
		CreatedAt:        inv.CreatedAt.UTC().Format(time.RFC3339),
	}
}
