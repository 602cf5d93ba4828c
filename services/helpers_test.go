package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"papertrade/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens a per-test in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Stock{},
		&models.Portfolio{},
		&models.Holding{},
		&models.Transaction{},
		&models.PortfolioSnapshot{},
		&models.PerformanceMetric{},
	))

	return db
}

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return d
}

func createUserWithPortfolio(t *testing.T, db *gorm.DB, email, balance string) *models.Portfolio {
	t.Helper()

	user := models.User{
		Name:     "Test Trader",
		Email:    email,
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)

	portfolio := models.Portfolio{
		UserID:  user.ID,
		Balance: dec(t, balance),
	}
	require.NoError(t, db.Create(&portfolio).Error)

	return &portfolio
}

func createStock(t *testing.T, db *gorm.DB, symbol, name, price string) *models.Stock {
	t.Helper()

	stock := models.Stock{
		Symbol:       symbol,
		Name:         name,
		CurrentPrice: dec(t, price),
		LastUpdated:  time.Now(),
	}
	require.NoError(t, db.Create(&stock).Error)

	return &stock
}

func requireDecimalEqual(t *testing.T, want, got decimal.Decimal) {
	t.Helper()
	require.True(t, want.Equal(got), "expected %s, got %s", want, got)
}
