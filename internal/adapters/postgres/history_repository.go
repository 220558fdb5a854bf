package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"fxboard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"
const saveBatchSize = 1000

// HistoryRepository stores daily OHLC rows keyed by (date, currency_pair).
// A nil pool is a valid storage-less configuration: every method returns
// its empty value instead of failing.
type HistoryRepository struct {
	pool  *pgxpool.Pool
	clock clockwork.Clock
}

func NewHistoryRepository(pool *pgxpool.Pool, clock clockwork.Clock) *HistoryRepository {
	return &HistoryRepository{pool: pool, clock: clock}
}

func (r *HistoryRepository) LatestDates(ctx context.Context, pairs []domain.Pair) (map[domain.Pair]*time.Time, error) {
	latest := make(map[domain.Pair]*time.Time, len(pairs))
	for _, p := range pairs {
		latest[p] = nil
	}
	if r.pool == nil || len(pairs) == 0 {
		return latest, nil
	}

	const q = `
		select currency_pair, max(date)
		from exchange_rate_history
		where currency_pair = any($1)
		group by currency_pair;
	`
	rows, err := r.pool.Query(ctx, q, pairStrings(pairs))
	if err != nil {
		return latest, fmt.Errorf("failed to query latest dates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pair string
		var date time.Time
		if err = rows.Scan(&pair, &date); err != nil {
			return latest, fmt.Errorf("failed to scan latest date: %w", err)
		}
		day := domain.Day(date)
		latest[domain.Pair(pair)] = &day
	}
	if err = rows.Err(); err != nil {
		return latest, fmt.Errorf("error iterating latest dates: %w", err)
	}
	return latest, nil
}

// Load returns the stored series pivoted into per-price tables: one row per
// date, one column per pair. Pairs with no rows in range are absent.
func (r *HistoryRepository) Load(ctx context.Context, pairs []domain.Pair, start, end time.Time) (*domain.Table, *domain.Table, *domain.Table, error) {
	closeT, highT, lowT := domain.NewTable(), domain.NewTable(), domain.NewTable()
	if r.pool == nil || len(pairs) == 0 {
		return closeT, highT, lowT, nil
	}

	const q = `
		select date, currency_pair, close, high, low
		from exchange_rate_history
		where currency_pair = any($1) and date >= $2 and date <= $3
		order by date;
	`
	rows, err := r.pool.Query(ctx, q, pairStrings(pairs), domain.Day(start), domain.Day(end))
	if err != nil {
		return closeT, highT, lowT, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	rowAt := make(map[time.Time]int)
	for rows.Next() {
		var date time.Time
		var pair string
		var closeV, highV, lowV *float64
		if err = rows.Scan(&date, &pair, &closeV, &highV, &lowV); err != nil {
			return closeT, highT, lowT, fmt.Errorf("failed to scan history row: %w", err)
		}

		day := domain.Day(date)
		at, ok := rowAt[day]
		if !ok {
			closeT.Dates = append(closeT.Dates, day)
			highT.Dates = append(highT.Dates, day)
			lowT.Dates = append(lowT.Dates, day)
			at = len(closeT.Dates) - 1
			rowAt[day] = at
		}
		p := domain.Pair(pair)
		closeT.SetCell(at, p, closeV)
		highT.SetCell(at, p, highV)
		lowT.SetCell(at, p, lowV)
	}
	if err = rows.Err(); err != nil {
		return closeT, highT, lowT, fmt.Errorf("error iterating history rows: %w", err)
	}

	closeT.SortByDate()
	highT.SortByDate()
	lowT.SortByDate()
	return closeT, highT, lowT, nil
}

type historyRecord struct {
	Date  string   `json:"date"`
	Pair  string   `json:"currency_pair"`
	Open  *float64 `json:"open"`
	High  *float64 `json:"high"`
	Low   *float64 `json:"low"`
	Close *float64 `json:"close"`
}

// Save upserts every (date, pair) cell of the given tables. A missing open
// table falls back to close prices. Rows where all four prices sanitize to
// nil are skipped. Returns false instead of an error so callers can treat
// persistence as best-effort.
func (r *HistoryRepository) Save(ctx context.Context, closeT, highT, lowT, openT *domain.Table) bool {
	if r.pool == nil || closeT.IsEmpty() {
		return false
	}
	if openT == nil {
		openT = closeT
	}

	highRows := dateIndex(highT)
	lowRows := dateIndex(lowT)
	openRows := dateIndex(openT)

	pairSet := make(map[domain.Pair]struct{})
	for _, t := range []*domain.Table{closeT, highT, lowT, openT} {
		if t == nil {
			continue
		}
		for p := range t.Cols {
			pairSet[p] = struct{}{}
		}
	}

	var records []historyRecord
	for i, date := range closeT.Dates {
		day := domain.Day(date)
		for p := range pairSet {
			rec := historyRecord{
				Date:  day.Format(dateLayout),
				Pair:  string(p),
				Open:  sanitize(cellAt(openT, openRows, day, p), p),
				High:  sanitize(cellAt(highT, highRows, day, p), p),
				Low:   sanitize(cellAt(lowT, lowRows, day, p), p),
				Close: sanitize(closeT.Cell(i, p), p),
			}
			if rec.Open == nil && rec.High == nil && rec.Low == nil && rec.Close == nil {
				continue
			}
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return false
	}

	const q = `
		insert into exchange_rate_history (date, currency_pair, open, high, low, close)
		select r.date, r.currency_pair, r.open, r.high, r.low, r.close
		from json_to_recordset($1::json)
		  as r(date date, currency_pair text, open double precision, high double precision,
		       low double precision, close double precision)
		on conflict (date, currency_pair) do update
		set open = excluded.open, high = excluded.high, low = excluded.low, close = excluded.close;
	`
	for from := 0; from < len(records); from += saveBatchSize {
		to := min(from+saveBatchSize, len(records))
		payload, err := json.Marshal(records[from:to])
		if err != nil {
			logrus.WithError(err).Warn("Failed to marshal history batch")
			return false
		}
		if _, err = r.pool.Exec(ctx, q, json.RawMessage(payload)); err != nil {
			logrus.WithError(err).WithField("rows", to-from).Warn("Failed to upsert history batch")
			return false
		}
	}
	return true
}

// Coverage reports, per pair, whether the latest stored date is today or
// yesterday. Advisory only.
func (r *HistoryRepository) Coverage(ctx context.Context, pairs []domain.Pair) (map[domain.Pair]bool, error) {
	coverage := make(map[domain.Pair]bool, len(pairs))
	for _, p := range pairs {
		coverage[p] = false
	}
	if r.pool == nil {
		return coverage, nil
	}

	latest, err := r.LatestDates(ctx, pairs)
	if err != nil {
		return coverage, err
	}
	today := domain.Day(r.clock.Now())
	for p, d := range latest {
		if d != nil {
			coverage[p] = daysBetween(*d, today) <= 1
		}
	}
	return coverage, nil
}

func daysBetween(from, to time.Time) int {
	return int(domain.Day(to).Sub(domain.Day(from)).Hours() / 24)
}

func dateIndex(t *domain.Table) map[time.Time]int {
	idx := make(map[time.Time]int)
	if t == nil {
		return idx
	}
	for i, d := range t.Dates {
		idx[domain.Day(d)] = i
	}
	return idx
}

func cellAt(t *domain.Table, rows map[time.Time]int, day time.Time, p domain.Pair) *float64 {
	if t == nil {
		return nil
	}
	at, ok := rows[day]
	if !ok {
		return nil
	}
	return t.Cell(at, p)
}

// sanitize maps NaN and infinities to nil, and treats an exact zero on the
// derived pairs as the not-computable sentinel.
func sanitize(v *float64, p domain.Pair) *float64 {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	if *v == 0 && p.IsDerived() {
		return nil
	}
	return v
}

func pairStrings(pairs []domain.Pair) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = string(p)
	}
	return out
}
