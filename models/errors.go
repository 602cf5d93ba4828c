package models

import "errors"

// Validation and trading errors surfaced by model hooks and services.
// Handlers translate these to HTTP statuses with errors.Is.
var (
	ErrInvalidStock      = errors.New("stock price must be positive")
	ErrInvalidHolding    = errors.New("holding quantity cannot be negative")
	ErrInvalidOrder      = errors.New("order quantity must be a positive integer")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrStockNotFound     = errors.New("stock not found")
	ErrPortfolioNotFound = errors.New("portfolio not found")
	ErrPriceUnavailable  = errors.New("no price available for stock")
)
