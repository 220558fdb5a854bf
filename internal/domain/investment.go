package domain

import (
	"time"

	"github.com/google/uuid"
)

// Currency discriminates the two investment ledgers.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyJPY Currency = "JPY"
)

// Valid reports whether c names a supported ledger.
func (c Currency) Valid() bool {
	return c == CurrencyUSD || c == CurrencyJPY
}

// Investment is a single buy entry in the ledger. Amount is the foreign
// currency still held; partial sells shrink it.
type Investment struct {
	ID               uuid.UUID
	Currency         Currency
	InvestmentNumber int
	PurchaseDate     time.Time
	ExchangeRate     float64
	PurchaseKRW      float64
	Amount           float64
	ExchangeName     string
	Memo             *string
	CreatedAt        time.Time
}

// SellRecord is the settlement bookkeeping written when (part of) an
// investment is sold.
type SellRecord struct {
	ID               uuid.UUID
	InvestmentID     uuid.UUID
	Currency         Currency
	InvestmentNumber int
	SellDate         time.Time
	PurchaseRate     float64
	SellRate         float64
	SellAmount       float64
	SellKRW          float64
	ProfitKRW        float64
	ExchangeName     string
}

// SellResult reports the outcome of a sell settlement.
type SellResult struct {
	Remaining float64
	FullSell  bool
}
