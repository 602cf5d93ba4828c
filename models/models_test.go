package models

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&User{}, &Stock{}, &Portfolio{}, &Holding{}, &Transaction{}))
	return db
}

func TestStockSymbolNormalizedOnSave(t *testing.T) {
	db := openTestDB(t)

	stock := Stock{
		Symbol:       "googl",
		Name:         "Alphabet Inc.",
		CurrentPrice: decimal.RequireFromString("2800.00"),
		LastUpdated:  time.Now(),
	}
	require.NoError(t, db.Create(&stock).Error)

	var reloaded Stock
	require.NoError(t, db.First(&reloaded, stock.ID).Error)
	assert.Equal(t, "GOOGL", reloaded.Symbol)
}

func TestStockRejectsNonPositivePrice(t *testing.T) {
	db := openTestDB(t)

	for _, price := range []string{"-50.00", "0"} {
		stock := Stock{
			Symbol:       "BAD",
			Name:         "Bad Co.",
			CurrentPrice: decimal.RequireFromString(price),
		}
		err := db.Create(&stock).Error
		assert.ErrorIs(t, err, ErrInvalidStock, "price %s", price)
	}

	var count int64
	db.Model(&Stock{}).Count(&count)
	assert.Zero(t, count)
}

func TestHoldingRejectsNegativeQuantity(t *testing.T) {
	db := openTestDB(t)

	holding := Holding{PortfolioID: 1, StockID: 1, Quantity: -1}
	err := db.Create(&holding).Error
	assert.ErrorIs(t, err, ErrInvalidHolding)
}

func TestTransactionDerivesTotalAmount(t *testing.T) {
	db := openTestDB(t)

	transaction := Transaction{
		UserID:   1,
		StockID:  1,
		Type:     TransactionTypeBuy,
		Quantity: 3,
		Price:    decimal.RequireFromString("150.00"),
	}
	require.NoError(t, db.Create(&transaction).Error)

	assert.True(t, decimal.RequireFromString("450.00").Equal(transaction.TotalAmount),
		"expected 450.00, got %s", transaction.TotalAmount)
	assert.False(t, transaction.Timestamp.IsZero())
}

func TestTransactionRejectsNonPositiveQuantity(t *testing.T) {
	db := openTestDB(t)

	transaction := Transaction{
		UserID:   1,
		StockID:  1,
		Type:     TransactionTypeBuy,
		Quantity: 0,
		Price:    decimal.RequireFromString("150.00"),
	}
	err := db.Create(&transaction).Error
	assert.ErrorIs(t, err, ErrInvalidOrder)
}
