package handler

import (
	"encoding/json"
	"math"
	"net/http"

	"fxboard/internal/domain"
	"fxboard/internal/rates"
)

type Handler struct {
	service *rates.Service
	spots   *rates.SpotService
}

func NewRatesHandler(service *rates.Service, spots *rates.SpotService) *Handler {
	return &Handler{service: service, spots: spots}
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

// jsonNumber coerces non-finite values to null; encoding/json rejects
// NaN and Inf outright and the clients expect null for "no data" anyway.
func jsonNumber(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}

func snapshotPayload(s domain.Snapshot) map[string]*float64 {
	out := make(map[string]*float64, len(s))
	for pair, v := range s {
		out[string(pair)] = jsonNumber(v)
	}
	return out
}
