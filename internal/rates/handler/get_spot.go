package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type GetSpotResponse struct {
	Source string   `json:"source"`
	Rate   *float64 `json:"rate"`
}

type GetSpotAllResponse struct {
	Rates map[string]*float64 `json:"rates"`
}

// GetSpot godoc
// @Summary Spot rate from one source
// @Description Latest KRW spot rate from a single external source; null when the source is unavailable
// @Tags Spot
// @Produce json
// @Param source path string true "Source ID" Enums(usdt-krw, naver-usd-krw, investing-usd-krw, investing-jpy-krw)
// @Success 200 {object} GetSpotResponse
// @Failure 404 {object} errorResponse
// @Router /rates/spot/{source} [get]
func (h *Handler) GetSpot(w http.ResponseWriter, r *http.Request) {
	source := chi.URLParam(r, "source")
	if !h.spots.Known(source) {
		writeError(w, http.StatusNotFound, "unknown spot source")
		return
	}

	res := GetSpotResponse{
		Source: source,
		Rate:   jsonNumber(h.spots.Rate(r.Context(), source)),
	}
	writeJSON(w, http.StatusOK, res)
}

// GetSpotAll godoc
// @Summary Spot rates from all sources
// @Description Latest KRW spot rate per source; failed sources map to null
// @Tags Spot
// @Produce json
// @Success 200 {object} GetSpotAllResponse
// @Router /rates/spot [get]
func (h *Handler) GetSpotAll(w http.ResponseWriter, r *http.Request) {
	all := h.spots.All(r.Context())
	for id, v := range all {
		all[id] = jsonNumber(v)
	}
	writeJSON(w, http.StatusOK, GetSpotAllResponse{Rates: all})
}
