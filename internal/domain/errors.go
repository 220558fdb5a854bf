package domain

import "errors"

var (
	ErrIndexUnavailable   = errors.New("index components missing")
	ErrInvestmentNotFound = errors.New("investment not found")
	ErrRecordNotFound     = errors.New("sell record not found")
	ErrInsufficientAmount = errors.New("sell amount exceeds held amount")
	ErrNoStorage          = errors.New("storage not configured")
)
