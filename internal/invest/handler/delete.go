package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"fxboard/internal/domain"
	"fxboard/internal/invest"
)

// Delete godoc
// @Summary Delete an investment
// @Description Remove a ledger entry without recording a sale
// @Tags Investments
// @Produce json
// @Param currency path string true "Ledger currency" Enums(USD, JPY)
// @Param id path string true "Investment ID"
// @Success 204 "deleted"
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 503 {object} errorResponse "no storage configured"
// @Router /investments/{currency}/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	currency := currencyParam(r)
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid investment ID format")
		return
	}

	if err := h.service.Delete(r.Context(), currency, id); err != nil {
		if errors.Is(err, invest.ErrInvalidCurrency) {
			writeError(w, http.StatusBadRequest, "unsupported currency")
			return
		}
		if errors.Is(err, domain.ErrInvestmentNotFound) {
			writeError(w, http.StatusNotFound, "investment not found")
			return
		}
		if errors.Is(err, domain.ErrNoStorage) {
			writeError(w, http.StatusServiceUnavailable, "investment ledger requires a database")
			return
		}
		msg := "ups, couldn't delete the investment this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Delete", "currency": currency, "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
