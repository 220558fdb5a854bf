package rates

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"fxboard/internal/adapters"
	"fxboard/internal/domain"
)

// Fetcher pulls daily history for the tracked pairs from the chart
// provider, preferring one bulk request and degrading to per-symbol
// requests when the bulk response is unusable.
type Fetcher struct {
	chart adapters.ChartClient
	log   *logrus.Logger
}

func NewFetcher(chart adapters.ChartClient, log *logrus.Logger) *Fetcher {
	return &Fetcher{chart: chart, log: log}
}

// FetchRange downloads the period's daily bars and returns the four price
// tables with derived columns filled in, plus a snapshot of current rates.
// Pairs the provider fails to deliver are simply absent; the result is
// never an error, at worst empty tables.
func (f *Fetcher) FetchRange(ctx context.Context, months int) (closeT, highT, lowT, openT *domain.Table, snap domain.Snapshot) {
	rng := domain.PeriodRange(months)
	symbols := make([]string, 0, len(domain.TrackedPairs))
	for _, pair := range domain.TrackedPairs {
		symbols = append(symbols, domain.ChartTickers[pair])
	}

	frame, err := f.chart.DownloadDaily(ctx, symbols, rng)
	if err != nil {
		f.log.WithError(err).Warn("bulk download failed, falling back to per-symbol requests")
		closeT, highT, lowT, openT = f.fetchPerSymbol(ctx, rng)
	} else {
		closeT, highT, lowT, openT = Normalize(frame, f.log)
		if closeT.IsEmpty() {
			closeT, highT, lowT, openT = f.fetchPerSymbol(ctx, rng)
		}
	}

	for _, t := range []*domain.Table{closeT, highT, lowT, openT} {
		t.SortByDate()
	}
	AddDerivedColumns(closeT, highT, lowT, openT)
	snap = f.CurrentRates(ctx, closeT)
	return
}

// fetchPerSymbol requests each pair's bars individually and unions them
// onto a shared date axis. A failed symbol leaves a hole, not an error.
func (f *Fetcher) fetchPerSymbol(ctx context.Context, rng string) (closeT, highT, lowT, openT *domain.Table) {
	closeT, highT, lowT, openT = domain.NewTable(), domain.NewTable(), domain.NewTable(), domain.NewTable()

	for _, pair := range domain.TrackedPairs {
		bars, err := f.chart.History(ctx, domain.ChartTickers[pair], rng)
		if err != nil {
			f.log.WithError(err).WithField("pair", pair).Warn("history request failed, skipping pair")
			continue
		}
		if bars == nil || len(bars.Dates) == 0 {
			continue
		}
		appendBars(closeT, pair, bars.Dates, bars.Close)
		appendBars(highT, pair, bars.Dates, bars.High)
		appendBars(lowT, pair, bars.Dates, bars.Low)
		appendBars(openT, pair, bars.Dates, bars.Open)
	}
	return
}

// appendBars merges one symbol's series into a union table, matching rows
// by calendar day and adding rows for days the table has not seen.
func appendBars(t *domain.Table, pair domain.Pair, dates []time.Time, values []*float64) {
	rowAt := make(map[int64]int, len(t.Dates))
	for i, d := range t.Dates {
		rowAt[domain.Day(d).Unix()] = i
	}
	for i, d := range dates {
		if i >= len(values) {
			break
		}
		key := domain.Day(d).Unix()
		row, ok := rowAt[key]
		if !ok {
			t.Dates = append(t.Dates, domain.Day(d))
			row = len(t.Dates) - 1
			rowAt[key] = row
		}
		t.SetCell(row, pair, values[i])
	}
}

// CurrentRates assembles the current snapshot for every tracked pair:
// live quote first, last usable close from the table second, and an
// explicit zero when both fail so callers can tell "unknown" apart from
// a missing key. Derived entries are filled afterwards and are nil, not
// zero, when their inputs are unusable.
func (f *Fetcher) CurrentRates(ctx context.Context, closeT *domain.Table) domain.Snapshot {
	snap := make(domain.Snapshot, len(domain.TrackedPairs)+len(domain.DerivedPairs))

	for _, pair := range domain.TrackedPairs {
		rate, err := f.chart.Quote(ctx, domain.ChartTickers[pair])
		if err == nil && validRate(rate) {
			snap.Set(pair, rate)
			continue
		}
		if err != nil {
			f.log.WithError(err).WithField("pair", pair).Debug("quote failed, using last close")
		}
		if last := closeT.LastValid(pair); last != nil {
			snap.Set(pair, *last)
			continue
		}
		f.log.WithField("pair", pair).Warn("no current rate available")
		snap.Set(pair, 0)
	}

	DeriveSnapshot(snap)
	return snap
}
