package services

import (
	"testing"

	"papertrade/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestTotalValueCashOnly(t *testing.T) {
	total, err := TotalValue(decimal.NewFromInt(1000), nil, nil)
	require.NoError(t, err)
	requireDecimalEqual(t, decimal.NewFromInt(1000), total)
}

func TestTotalValueOrderIndependent(t *testing.T) {
	prices := map[uint]decimal.Decimal{
		1: decimal.NewFromInt(150),
		2: decimal.NewFromInt(40),
	}
	balance := decimal.NewFromInt(100)

	forward := []models.Holding{
		{PortfolioID: 1, StockID: 1, Quantity: 5},
		{PortfolioID: 1, StockID: 2, Quantity: 3},
	}
	reversed := []models.Holding{
		{PortfolioID: 1, StockID: 2, Quantity: 3},
		{PortfolioID: 1, StockID: 1, Quantity: 5},
	}

	a, err := TotalValue(balance, forward, prices)
	require.NoError(t, err)
	b, err := TotalValue(balance, reversed, prices)
	require.NoError(t, err)

	requireDecimalEqual(t, a, b)
	// 100 + 5*150 + 3*40
	requireDecimalEqual(t, decimal.NewFromInt(970), a)
}

func TestTotalValueMissingPrice(t *testing.T) {
	holdings := []models.Holding{{PortfolioID: 1, StockID: 42, Quantity: 5}}

	_, err := TotalValue(decimal.NewFromInt(100), holdings, map[uint]decimal.Decimal{})
	require.ErrorIs(t, err, models.ErrPriceUnavailable)
}

func TestPortfolioValueAfterBuy(t *testing.T) {
	db := setupTestDB(t)
	portfolio := createUserWithPortfolio(t, db, "value@example.com", "1000.00")
	stock := createStock(t, db, "AAPL", "Apple Inc.", "150.00")

	_, err := ExecuteBuy(db, portfolio.ID, stock, 2)
	require.NoError(t, err)

	// Buying at the current price moves cash into shares, the total is
	// unchanged until the price moves.
	total, err := PortfolioValue(db, portfolio.ID)
	require.NoError(t, err)
	requireDecimalEqual(t, dec(t, "1000.00"), total)

	require.NoError(t, db.Model(stock).Update("current_price", dec(t, "200.00")).Error)

	total, err = PortfolioValue(db, portfolio.ID)
	require.NoError(t, err)
	requireDecimalEqual(t, dec(t, "1100.00"), total)
}

func TestPortfolioValueUnknownPortfolio(t *testing.T) {
	db := setupTestDB(t)

	_, err := PortfolioValue(db, 123)
	require.ErrorIs(t, err, models.ErrPortfolioNotFound)
}
