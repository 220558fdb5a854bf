package handler

import (
	"errors"
	"net/http"

	"fxboard/internal/domain"
	"fxboard/internal/rates"
)

type GetCurrentResponse struct {
	Rates       map[string]*float64 `json:"rates"`
	DollarIndex *float64            `json:"dollar_index"`
}

// GetCurrent godoc
// @Summary Current exchange rates
// @Description Current rate per tracked pair plus the derived yen cross rate, yen index and dollar index
// @Tags Rates
// @Produce json
// @Success 200 {object} GetCurrentResponse
// @Router /rates/current [get]
func (h *Handler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	snap := h.service.CurrentRates(r.Context())

	res := GetCurrentResponse{Rates: snapshotPayload(snap)}
	index, err := rates.CurrentIndex(snap)
	if err == nil {
		res.DollarIndex = &index
	} else if !errors.Is(err, domain.ErrIndexUnavailable) {
		writeError(w, http.StatusInternalServerError, "ups, couldn't compute the dollar index this time")
		return
	}

	writeJSON(w, http.StatusOK, res)
}
