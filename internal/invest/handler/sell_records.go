package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"fxboard/internal/domain"
	"fxboard/internal/invest"
)

type SellRecordResponse struct {
	ID               string  `json:"id"`
	InvestmentID     string  `json:"investment_id"`
	Currency         string  `json:"currency" example:"USD"`
	InvestmentNumber int     `json:"investment_number"`
	SellDate         string  `json:"sell_date" example:"2025-08-20"`
	PurchaseRate     float64 `json:"purchase_rate"`
	SellRate         float64 `json:"sell_rate"`
	SellAmount       float64 `json:"sell_amount"`
	SellKRW          float64 `json:"sell_krw"`
	ProfitKRW        float64 `json:"profit_krw"`
	ExchangeName     string  `json:"exchange_name"`
}

type ListSellRecordsResponse struct {
	SellRecords []SellRecordResponse `json:"sell_records"`
}

// ListSellRecords godoc
// @Summary List sell records
// @Description Settlement history for a currency, newest sale first
// @Tags Investments
// @Produce json
// @Param currency path string true "Ledger currency" Enums(USD, JPY)
// @Success 200 {object} ListSellRecordsResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse "no storage configured"
// @Router /sell-records/{currency} [get]
func (h *Handler) ListSellRecords(w http.ResponseWriter, r *http.Request) {
	currency := currencyParam(r)

	records, err := h.service.ListSellRecords(r.Context(), currency)
	if err != nil {
		if errors.Is(err, invest.ErrInvalidCurrency) {
			writeError(w, http.StatusBadRequest, "unsupported currency")
			return
		}
		if errors.Is(err, domain.ErrNoStorage) {
			writeError(w, http.StatusServiceUnavailable, "investment ledger requires a database")
			return
		}
		msg := "ups, couldn't list sell records this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListSellRecords", "currency": currency}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := ListSellRecordsResponse{SellRecords: make([]SellRecordResponse, 0, len(records))}
	for _, rec := range records {
		res.SellRecords = append(res.SellRecords, SellRecordResponse{
			ID:               rec.ID.String(),
			InvestmentID:     rec.InvestmentID.String(),
			Currency:         string(rec.Currency),
			InvestmentNumber: rec.InvestmentNumber,
			SellDate:         rec.SellDate.Format("2006-01-02"),
			PurchaseRate:     rec.PurchaseRate,
			SellRate:         rec.SellRate,
			SellAmount:       rec.SellAmount,
			SellKRW:          rec.SellKRW,
			ProfitKRW:        rec.ProfitKRW,
			ExchangeName:     rec.ExchangeName,
		})
	}
	writeJSON(w, http.StatusOK, res)
}

// DeleteSellRecord godoc
// @Summary Delete a sell record
// @Description Remove one settlement entry; the originating investment is untouched
// @Tags Investments
// @Produce json
// @Param currency path string true "Ledger currency" Enums(USD, JPY)
// @Param id path string true "Sell record ID"
// @Success 204 "deleted"
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 503 {object} errorResponse "no storage configured"
// @Router /sell-records/{currency}/{id} [delete]
func (h *Handler) DeleteSellRecord(w http.ResponseWriter, r *http.Request) {
	currency := currencyParam(r)
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid sell record ID format")
		return
	}

	if err := h.service.DeleteSellRecord(r.Context(), currency, id); err != nil {
		if errors.Is(err, invest.ErrInvalidCurrency) {
			writeError(w, http.StatusBadRequest, "unsupported currency")
			return
		}
		if errors.Is(err, domain.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "sell record not found")
			return
		}
		if errors.Is(err, domain.ErrNoStorage) {
			writeError(w, http.StatusServiceUnavailable, "investment ledger requires a database")
			return
		}
		msg := "ups, couldn't delete the sell record this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "DeleteSellRecord", "currency": currency, "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
