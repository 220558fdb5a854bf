package adapters

import (
	"context"
	"time"

	"fxboard/internal/domain"

	"github.com/google/uuid"
)

// BulkFrame is the chart provider's raw bulk-download payload: one shared
// date axis plus labelled columns. Providers are not consistent about the
// column labelling — see rates.DetectLayout for the known variants.
type BulkFrame struct {
	Dates   []time.Time
	Columns []BulkColumn
}

// BulkColumn carries one or two labels (ticker and/or price type, in either
// order) and one value per frame date. Missing observations are nil.
type BulkColumn struct {
	Labels []string
	Values []*float64
}

// TickerBars is a single ticker's daily OHLC history, used by the
// per-ticker fallback path when the bulk download yields nothing.
type TickerBars struct {
	Dates []time.Time
	Open  []*float64
	High  []*float64
	Low   []*float64
	Close []*float64
}

// ChartClient talks to the bulk historical-quote provider.
type ChartClient interface {
	DownloadDaily(ctx context.Context, symbols []string, rng string) (*BulkFrame, error)
	History(ctx context.Context, symbol string, rng string) (*TickerBars, error)
	Quote(ctx context.Context, symbol string) (float64, error)
}

// SpotSource fetches one point-in-time rate from a single external source.
type SpotSource interface {
	Rate(ctx context.Context) (float64, error)
}

// SpotCache memoizes the last successful spot fetch per source.
type SpotCache interface {
	Get(key string) (float64, bool)
	Set(key string, value float64, ttl time.Duration)
}

// HistoryRepository persists and serves the historical OHLC series. With no
// storage configured every method degrades to its empty value so callers can
// always operate storage-less.
type HistoryRepository interface {
	LatestDates(ctx context.Context, pairs []domain.Pair) (map[domain.Pair]*time.Time, error)
	Load(ctx context.Context, pairs []domain.Pair, start, end time.Time) (closeT, highT, lowT *domain.Table, err error)
	Save(ctx context.Context, closeT, highT, lowT, openT *domain.Table) bool
	Coverage(ctx context.Context, pairs []domain.Pair) (map[domain.Pair]bool, error)
}

// InvestmentRepository is the buy/sell ledger storage.
type InvestmentRepository interface {
	List(ctx context.Context, currency domain.Currency) ([]domain.Investment, error)
	Create(ctx context.Context, inv domain.Investment) error
	Delete(ctx context.Context, currency domain.Currency, id uuid.UUID) error
	Sell(ctx context.Context, currency domain.Currency, id uuid.UUID, sellRate, sellAmount float64, at time.Time) (domain.SellResult, error)
	ListSellRecords(ctx context.Context, currency domain.Currency) ([]domain.SellRecord, error)
	DeleteSellRecord(ctx context.Context, currency domain.Currency, id uuid.UUID) error
}
