package rates

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"fxboard/internal/adapters"
	"fxboard/internal/domain"
)

// Service assembles period data from storage and the chart provider.
// Storage is an accelerator, not a requirement: every storage failure is
// logged and absorbed, and as a last resort the service falls back to a
// direct provider fetch so a request never fails outright.
type Service struct {
	store   adapters.HistoryRepository
	fetcher *Fetcher
	memo    *ResultMemo
	clock   clockwork.Clock
	log     *logrus.Logger
}

func NewService(store adapters.HistoryRepository, fetcher *Fetcher, memo *ResultMemo, clock clockwork.Clock, log *logrus.Logger) *Service {
	return &Service{store: store, fetcher: fetcher, memo: memo, clock: clock, log: log}
}

// PeriodData returns the assembled result for the period, serving from
// the per-period memo when fresh.
func (s *Service) PeriodData(ctx context.Context, months int) *PeriodData {
	if data, ok := s.memo.Get(months); ok {
		return data
	}

	data, err := s.assemble(ctx, months)
	if err != nil {
		s.log.WithError(err).Error("stored-data path failed, fetching directly")
		data = s.directFetch(ctx, months)
	}

	s.memo.Set(months, data)
	return data
}

// CurrentRates returns just the snapshot for the default one-year period.
func (s *Service) CurrentRates(ctx context.Context) domain.Snapshot {
	return s.PeriodData(ctx, 12).Rates
}

func (s *Service) assemble(ctx context.Context, months int) (data *PeriodData, err error) {
	// The stored-data path touches enough moving parts that a programming
	// error here must not take the endpoint down with it.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("assemble period data: %v", r)
		}
	}()

	end := domain.Day(s.clock.Now().UTC())
	start := end.AddDate(0, 0, -domain.PeriodDays(months))

	closeT, highT, lowT := s.loadStored(ctx, start, end)

	if s.needsRefresh(ctx, closeT) {
		freshClose, freshHigh, freshLow, freshOpen, _ := s.fetcher.FetchRange(ctx, months)
		if !freshClose.IsEmpty() {
			if s.store.Save(ctx, freshClose, freshHigh, freshLow, freshOpen) {
				s.log.WithField("rows", len(freshClose.Dates)).Debug("persisted refreshed history")
			}
			closeT = closeT.Merge(freshClose)
			highT = highT.Merge(freshHigh)
			lowT = lowT.Merge(freshLow)
		}
	}

	for _, t := range []*domain.Table{closeT, highT, lowT} {
		t.DropAllNilRows()
	}

	return &PeriodData{
		Close: closeT,
		High:  highT,
		Low:   lowT,
		Rates: s.fetcher.CurrentRates(ctx, closeT),
		Index: IndexSeries(closeT),
	}, nil
}

func (s *Service) loadStored(ctx context.Context, start, end time.Time) (closeT, highT, lowT *domain.Table) {
	pairs := append(append([]domain.Pair{}, domain.TrackedPairs...), domain.DerivedPairs...)
	closeT, highT, lowT, err := s.store.Load(ctx, pairs, start, end)
	if err != nil {
		s.log.WithError(err).Warn("loading stored history failed, treating as empty")
		return domain.NewTable(), domain.NewTable(), domain.NewTable()
	}
	return closeT, highT, lowT
}

// needsRefresh decides whether the whole batch goes back to the provider.
// Data from today or yesterday is fresh; anything older, or any tracked
// pair with no stored rows at all, triggers a full refetch.
func (s *Service) needsRefresh(ctx context.Context, closeT *domain.Table) bool {
	if closeT.IsEmpty() {
		return true
	}

	latest, err := s.store.LatestDates(ctx, domain.TrackedPairs)
	if err != nil {
		s.log.WithError(err).Warn("latest-date query failed, refreshing")
		return true
	}

	today := domain.Day(s.clock.Now().UTC())
	for _, pair := range domain.TrackedPairs {
		last := latest[pair]
		if last == nil {
			return true
		}
		if daysApart(*last, today) > 1 {
			return true
		}
	}
	return false
}

func daysApart(a, b time.Time) int {
	d := int(domain.Day(b).Sub(domain.Day(a)).Hours() / 24)
	if d < 0 {
		d = -d
	}
	return d
}

// directFetch is the no-storage path: provider data only.
func (s *Service) directFetch(ctx context.Context, months int) *PeriodData {
	closeT, highT, lowT, _, snap := s.fetcher.FetchRange(ctx, months)
	for _, t := range []*domain.Table{closeT, highT, lowT} {
		t.DropAllNilRows()
	}
	return &PeriodData{
		Close: closeT,
		High:  highT,
		Low:   lowT,
		Rates: snap,
		Index: IndexSeries(closeT),
	}
}
