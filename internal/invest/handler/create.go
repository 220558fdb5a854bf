package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"fxboard/internal/domain"
	"fxboard/internal/invest"
)

type CreateInvestmentRequest struct {
	InvestmentNumber int     `json:"investment_number"`
	PurchaseDate     string  `json:"purchase_date" example:"2025-08-14"`
	ExchangeRate     float64 `json:"exchange_rate"`
	PurchaseKRW      float64 `json:"purchase_krw"`
	Amount           float64 `json:"amount"`
	ExchangeName     string  `json:"exchange_name"`
	Memo             *string `json:"memo"`
}

// Create godoc
// @Summary Record an investment
// @Description Add a buy entry to the currency's ledger
// @Tags Investments
// @Accept json
// @Produce json
// @Param currency path string true "Ledger currency" Enums(USD, JPY)
// @Param request body CreateInvestmentRequest true "Investment"
// @Success 201 {object} InvestmentResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse "no storage configured"
// @Router /investments/{currency} [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	currency := currencyParam(r)

	r.Body = http.MaxBytesReader(w, r.Body, 4096)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req CreateInvestmentRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "purchase_date must be YYYY-MM-DD")
		return
	}

	inv, err := h.service.Create(r.Context(), currency, invest.CreateInput{
		InvestmentNumber: req.InvestmentNumber,
		PurchaseDate:     purchaseDate,
		ExchangeRate:     req.ExchangeRate,
		PurchaseKRW:      req.PurchaseKRW,
		Amount:           req.Amount,
		ExchangeName:     req.ExchangeName,
		Memo:             req.Memo,
	})
	if err != nil {
		if errors.Is(err, invest.ErrInvalidCurrency) {
			writeError(w, http.StatusBadRequest, "unsupported currency")
			return
		}
		if errors.Is(err, invest.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "exchange_rate, purchase_krw and amount must be positive and exchange_name is required")
			return
		}
		if errors.Is(err, domain.ErrNoStorage) {
			writeError(w, http.StatusServiceUnavailable, "investment ledger requires a database")
			return
		}
		msg := "ups, couldn't record the investment this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Create", "currency": currency}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusCreated, investmentPayload(inv))
}
