package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"fxboard/internal/domain"
	"fxboard/internal/invest"
)

type SellRequest struct {
	SellRate   float64 `json:"sell_rate"`
	SellAmount float64 `json:"sell_amount"`
}

type SellResponse struct {
	Remaining float64 `json:"remaining"`
	FullSell  bool    `json:"full_sell"`
}

// Sell godoc
// @Summary Sell from an investment
// @Description Record a sale against an investment; closes the position when the remainder is negligible
// @Tags Investments
// @Accept json
// @Produce json
// @Param currency path string true "Ledger currency" Enums(USD, JPY)
// @Param id path string true "Investment ID"
// @Param request body SellRequest true "Sale"
// @Success 200 {object} SellResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse "sell amount exceeds holding"
// @Failure 503 {object} errorResponse "no storage configured"
// @Router /investments/{currency}/{id}/sell [post]
func (h *Handler) Sell(w http.ResponseWriter, r *http.Request) {
	currency := currencyParam(r)
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid investment ID format")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1024)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req SellRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Sell(r.Context(), currency, id, req.SellRate, req.SellAmount)
	if err != nil {
		if errors.Is(err, invest.ErrInvalidCurrency) {
			writeError(w, http.StatusBadRequest, "unsupported currency")
			return
		}
		if errors.Is(err, invest.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "sell_rate and sell_amount must be positive")
			return
		}
		if errors.Is(err, domain.ErrInvestmentNotFound) {
			writeError(w, http.StatusNotFound, "investment not found")
			return
		}
		if errors.Is(err, domain.ErrInsufficientAmount) {
			writeError(w, http.StatusConflict, "sell amount exceeds the held amount")
			return
		}
		if errors.Is(err, domain.ErrNoStorage) {
			writeError(w, http.StatusServiceUnavailable, "investment ledger requires a database")
			return
		}
		msg := "ups, couldn't settle the sale this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Sell", "currency": currency, "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, SellResponse{Remaining: result.Remaining, FullSell: result.FullSell})
}
