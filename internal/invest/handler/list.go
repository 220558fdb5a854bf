package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"fxboard/internal/domain"
	"fxboard/internal/invest"
)

type ListInvestmentsResponse struct {
	Investments []InvestmentResponse `json:"investments"`
}

// List godoc
// @Summary List investments
// @Description All open investments for a currency, newest purchase first
// @Tags Investments
// @Produce json
// @Param currency path string true "Ledger currency" Enums(USD, JPY)
// @Success 200 {object} ListInvestmentsResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse "no storage configured"
// @Router /investments/{currency} [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	currency := currencyParam(r)

	investments, err := h.service.List(r.Context(), currency)
	if err != nil {
		if errors.Is(err, invest.ErrInvalidCurrency) {
			writeError(w, http.StatusBadRequest, "unsupported currency")
			return
		}
		if errors.Is(err, domain.ErrNoStorage) {
			writeError(w, http.StatusServiceUnavailable, "investment ledger requires a database")
			return
		}
		msg := "ups, couldn't list investments this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "List", "currency": currency}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := ListInvestmentsResponse{Investments: make([]InvestmentResponse, 0, len(investments))}
	for _, inv := range investments {
		res.Investments = append(res.Investments, investmentPayload(inv))
	}
	writeJSON(w, http.StatusOK, res)
}
