package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fxboard/internal/domain"
)

type TablePayload struct {
	Dates  []string              `json:"dates"`
	Series map[string][]*float64 `json:"series"`
}

type GetPeriodResponse struct {
	Months int                 `json:"months"`
	Close  TablePayload        `json:"close"`
	High   TablePayload        `json:"high"`
	Low    TablePayload        `json:"low"`
	Rates  map[string]*float64 `json:"rates"`
	Index  []*float64          `json:"dollar_index"`
}

var supportedMonths = map[int]struct{}{1: {}, 3: {}, 6: {}, 12: {}}

// GetPeriod godoc
// @Summary Historical rates for a period
// @Description Daily close, high and low series for the lookback period, with current rates and the dollar index series
// @Tags Rates
// @Produce json
// @Param months path int true "Lookback period in months" Enums(1, 3, 6, 12)
// @Success 200 {object} GetPeriodResponse
// @Failure 400 {object} errorResponse
// @Router /rates/period/{months} [get]
func (h *Handler) GetPeriod(w http.ResponseWriter, r *http.Request) {
	months, err := strconv.Atoi(chi.URLParam(r, "months"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid months value")
		return
	}
	if _, ok := supportedMonths[months]; !ok {
		writeError(w, http.StatusBadRequest, "supported periods are 1, 3, 6 and 12 months")
		return
	}

	data := h.service.PeriodData(r.Context(), months)

	res := GetPeriodResponse{
		Months: months,
		Close:  tablePayload(data.Close),
		High:   tablePayload(data.High),
		Low:    tablePayload(data.Low),
		Rates:  snapshotPayload(data.Rates),
		Index:  indexPayload(data.Index),
	}
	writeJSON(w, http.StatusOK, res)
}

func tablePayload(t *domain.Table) TablePayload {
	p := TablePayload{
		Dates:  make([]string, 0, len(t.Dates)),
		Series: make(map[string][]*float64, len(t.Cols)),
	}
	for _, d := range t.Dates {
		p.Dates = append(p.Dates, d.Format("2006-01-02"))
	}
	for _, pair := range t.Pairs() {
		col := make([]*float64, len(t.Dates))
		for i := range t.Dates {
			col[i] = jsonNumber(t.Cell(i, pair))
		}
		p.Series[string(pair)] = col
	}
	return p
}

func indexPayload(series []*float64) []*float64 {
	out := make([]*float64, len(series))
	for i, v := range series {
		out[i] = jsonNumber(v)
	}
	return out
}
