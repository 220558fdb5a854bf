// Package invest is the buy/sell ledger: investments recorded per
// currency, and sell settlements that either shrink or close a position.
package invest

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"fxboard/internal/adapters"
	"fxboard/internal/domain"
)

var (
	ErrInvalidCurrency = errors.New("unsupported currency")
	ErrInvalidInput    = errors.New("invalid investment input")
)

type Service struct {
	repo  adapters.InvestmentRepository
	clock clockwork.Clock
}

func NewService(repo adapters.InvestmentRepository, clock clockwork.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

func (s *Service) List(ctx context.Context, currency domain.Currency) ([]domain.Investment, error) {
	if !currency.Valid() {
		return nil, ErrInvalidCurrency
	}
	return s.repo.List(ctx, currency)
}

// CreateInput carries the client-supplied fields of a new investment.
type CreateInput struct {
	InvestmentNumber int
	PurchaseDate     time.Time
	ExchangeRate     float64
	PurchaseKRW      float64
	Amount           float64
	ExchangeName     string
	Memo             *string
}

func (s *Service) Create(ctx context.Context, currency domain.Currency, in CreateInput) (domain.Investment, error) {
	if !currency.Valid() {
		return domain.Investment{}, ErrInvalidCurrency
	}
	if in.ExchangeRate <= 0 || in.PurchaseKRW <= 0 || in.Amount <= 0 || in.ExchangeName == "" || in.PurchaseDate.IsZero() {
		return domain.Investment{}, ErrInvalidInput
	}

	inv := domain.Investment{
		ID:               uuid.New(),
		Currency:         currency,
		InvestmentNumber: in.InvestmentNumber,
		PurchaseDate:     domain.Day(in.PurchaseDate),
		ExchangeRate:     in.ExchangeRate,
		PurchaseKRW:      in.PurchaseKRW,
		Amount:           in.Amount,
		ExchangeName:     in.ExchangeName,
		Memo:             in.Memo,
		CreatedAt:        s.clock.Now().UTC(),
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return domain.Investment{}, err
	}
	return inv, nil
}

func (s *Service) Delete(ctx context.Context, currency domain.Currency, id uuid.UUID) error {
	if !currency.Valid() {
		return ErrInvalidCurrency
	}
	return s.repo.Delete(ctx, currency, id)
}

// Sell settles a sale against an investment: it records the sale and
// either shrinks the position or, when the remainder is negligible,
// closes it entirely.
func (s *Service) Sell(ctx context.Context, currency domain.Currency, id uuid.UUID, sellRate, sellAmount float64) (domain.SellResult, error) {
	if !currency.Valid() {
		return domain.SellResult{}, ErrInvalidCurrency
	}
	if sellRate <= 0 || sellAmount <= 0 {
		return domain.SellResult{}, ErrInvalidInput
	}
	return s.repo.Sell(ctx, currency, id, sellRate, sellAmount, s.clock.Now().UTC())
}

func (s *Service) ListSellRecords(ctx context.Context, currency domain.Currency) ([]domain.SellRecord, error) {
	if !currency.Valid() {
		return nil, ErrInvalidCurrency
	}
	return s.repo.ListSellRecords(ctx, currency)
}

func (s *Service) DeleteSellRecord(ctx context.Context, currency domain.Currency, id uuid.UUID) error {
	if !currency.Valid() {
		return ErrInvalidCurrency
	}
	return s.repo.DeleteSellRecord(ctx, currency, id)
}
