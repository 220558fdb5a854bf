package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fxboard/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// fullSellThreshold: a residual at or below one unit of the foreign
// currency counts as a full sell and closes the position.
const fullSellThreshold = 1.0

type InvestmentRepository struct {
	pool *pgxpool.Pool
}

func NewInvestmentRepository(pool *pgxpool.Pool) *InvestmentRepository {
	return &InvestmentRepository{pool: pool}
}

func (r *InvestmentRepository) List(ctx context.Context, currency domain.Currency) ([]domain.Investment, error) {
	if r.pool == nil {
		return nil, domain.ErrNoStorage
	}

	const q = `
		select id, currency, investment_number, purchase_date, exchange_rate,
		       purchase_krw, amount, exchange_name, memo, created_at
		from investments
		where currency = $1
		order by purchase_date desc, created_at desc;
	`
	rows, err := r.pool.Query(ctx, q, string(currency))
	if err != nil {
		return nil, fmt.Errorf("failed to query investments: %w", err)
	}
	defer rows.Close()

	investments := make([]domain.Investment, 0, 32)
	for rows.Next() {
		var inv domain.Investment
		if err = rows.Scan(
			&inv.ID, &inv.Currency, &inv.InvestmentNumber, &inv.PurchaseDate,
			&inv.ExchangeRate, &inv.PurchaseKRW, &inv.Amount, &inv.ExchangeName,
			&inv.Memo, &inv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		investments = append(investments, inv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investments: %w", err)
	}
	return investments, nil
}

func (r *InvestmentRepository) Create(ctx context.Context, inv domain.Investment) error {
	if r.pool == nil {
		return domain.ErrNoStorage
	}

	const q = `
		insert into investments
		  (id, currency, investment_number, purchase_date, exchange_rate,
		   purchase_krw, amount, exchange_name, memo)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, q,
		inv.ID, string(inv.Currency), inv.InvestmentNumber, inv.PurchaseDate,
		inv.ExchangeRate, inv.PurchaseKRW, inv.Amount, inv.ExchangeName, inv.Memo,
	)
	if err != nil {
		return fmt.Errorf("failed to insert investment: %w", err)
	}
	return nil
}

func (r *InvestmentRepository) Delete(ctx context.Context, currency domain.Currency, id uuid.UUID) error {
	if r.pool == nil {
		return domain.ErrNoStorage
	}

	tag, err := r.pool.Exec(ctx, `delete from investments where id = $1 and currency = $2;`, id, string(currency))
	if err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvestmentNotFound
	}
	return nil
}

// Sell settles a (partial) sale in one transaction: validates the amount,
// writes the sell record, then either closes the position or shrinks it.
func (r *InvestmentRepository) Sell(ctx context.Context, currency domain.Currency, id uuid.UUID, sellRate, sellAmount float64, at time.Time) (domain.SellResult, error) {
	if r.pool == nil {
		return domain.SellResult{}, domain.ErrNoStorage
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.SellResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const selectQ = `
		select investment_number, exchange_rate, amount, exchange_name
		from investments
		where id = $1 and currency = $2
		for update;
	`
	var number int
	var purchaseRate, held float64
	var exchangeName string
	if err = tx.QueryRow(ctx, selectQ, id, string(currency)).Scan(&number, &purchaseRate, &held, &exchangeName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SellResult{}, domain.ErrInvestmentNotFound
		}
		return domain.SellResult{}, fmt.Errorf("failed to select investment %s: %w", id, err)
	}

	if sellAmount > held {
		return domain.SellResult{Remaining: held}, domain.ErrInsufficientAmount
	}

	const recordQ = `
		insert into sell_records
		  (id, investment_id, currency, investment_number, sell_date,
		   purchase_rate, sell_rate, sell_amount, sell_krw, profit_krw, exchange_name)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, recordQ,
		uuid.New(), id, string(currency), number, at,
		purchaseRate, sellRate, sellAmount,
		sellAmount*sellRate, (sellRate-purchaseRate)*sellAmount, exchangeName,
	)
	if err != nil {
		return domain.SellResult{}, fmt.Errorf("failed to insert sell record: %w", err)
	}

	remaining := held - sellAmount
	result := domain.SellResult{Remaining: remaining}
	if remaining <= fullSellThreshold {
		if _, err = tx.Exec(ctx, `delete from investments where id = $1;`, id); err != nil {
			return domain.SellResult{}, fmt.Errorf("failed to close investment: %w", err)
		}
		result.Remaining = 0
		result.FullSell = true
	} else {
		const updateQ = `update investments set amount = $2, purchase_krw = $3 where id = $1;`
		if _, err = tx.Exec(ctx, updateQ, id, remaining, remaining*purchaseRate); err != nil {
			return domain.SellResult{}, fmt.Errorf("failed to shrink investment: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return domain.SellResult{}, fmt.Errorf("failed to commit sell: %w", err)
	}
	return result, nil
}

func (r *InvestmentRepository) ListSellRecords(ctx context.Context, currency domain.Currency) ([]domain.SellRecord, error) {
	if r.pool == nil {
		return nil, domain.ErrNoStorage
	}

	const q = `
		select id, investment_id, currency, investment_number, sell_date,
		       purchase_rate, sell_rate, sell_amount, sell_krw, profit_krw, exchange_name
		from sell_records
		where currency = $1
		order by sell_date desc;
	`
	rows, err := r.pool.Query(ctx, q, string(currency))
	if err != nil {
		return nil, fmt.Errorf("failed to query sell records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SellRecord, 0, 32)
	for rows.Next() {
		var rec domain.SellRecord
		if err = rows.Scan(
			&rec.ID, &rec.InvestmentID, &rec.Currency, &rec.InvestmentNumber, &rec.SellDate,
			&rec.PurchaseRate, &rec.SellRate, &rec.SellAmount, &rec.SellKRW, &rec.ProfitKRW,
			&rec.ExchangeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sell record: %w", err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sell records: %w", err)
	}
	return records, nil
}

func (r *InvestmentRepository) DeleteSellRecord(ctx context.Context, currency domain.Currency, id uuid.UUID) error {
	if r.pool == nil {
		return domain.ErrNoStorage
	}

	tag, err := r.pool.Exec(ctx, `delete from sell_records where id = $1 and currency = $2;`, id, string(currency))
	if err != nil {
		return fmt.Errorf("failed to delete sell record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}
