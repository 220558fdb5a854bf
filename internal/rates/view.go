package rates

import "fxboard/internal/domain"

// PeriodData is one period's assembled result: the merged price tables,
// the current-rate snapshot and the dollar index series aligned to the
// close table's date axis.
type PeriodData struct {
	Close *domain.Table
	High  *domain.Table
	Low   *domain.Table
	Rates domain.Snapshot
	Index []*float64
}
