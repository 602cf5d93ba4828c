package services

import (
	"errors"
	"fmt"

	"papertrade/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// HoldingsValue sums quantity x current price over all holdings. The prices
// map is keyed by stock ID; a holding whose stock has no entry fails with
// ErrPriceUnavailable.
func HoldingsValue(holdings []models.Holding, prices map[uint]decimal.Decimal) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, h := range holdings {
		price, ok := prices[h.StockID]
		if !ok {
			return decimal.Zero, fmt.Errorf("stock %d: %w", h.StockID, models.ErrPriceUnavailable)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(h.Quantity))))
	}
	return total, nil
}

// TotalValue is the cash balance plus the market value of all holdings.
// Pure and order-independent.
func TotalValue(balance decimal.Decimal, holdings []models.Holding, prices map[uint]decimal.Decimal) (decimal.Decimal, error) {
	holdingsValue, err := HoldingsValue(holdings, prices)
	if err != nil {
		return decimal.Zero, err
	}
	return balance.Add(holdingsValue), nil
}

// PortfolioValue loads a portfolio with its holdings and current stock
// prices and returns its total value.
func PortfolioValue(db *gorm.DB, portfolioID uint) (decimal.Decimal, error) {
	var portfolio models.Portfolio
	if err := db.Preload("Holdings.Stock").First(&portfolio, portfolioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, models.ErrPortfolioNotFound
		}
		return decimal.Zero, err
	}
	return TotalValue(portfolio.Balance, portfolio.Holdings, PriceSet(portfolio.Holdings))
}

// PriceSet extracts the current price of each held stock, assuming the
// holdings were loaded with their Stock preloaded.
func PriceSet(holdings []models.Holding) map[uint]decimal.Decimal {
	prices := make(map[uint]decimal.Decimal, len(holdings))
	for _, h := range holdings {
		prices[h.StockID] = h.Stock.CurrentPrice
	}
	return prices
}
