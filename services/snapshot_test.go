package services

import (
	"testing"

	"papertrade/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSnapshotFreshPortfolio(t *testing.T) {
	db := setupTestDB(t)
	portfolio := createUserWithPortfolio(t, db, "fresh@example.com", "1000.00")

	snapshot, err := RecordSnapshot(db, portfolio.ID)
	require.NoError(t, err)

	// No holdings yet, so total value equals the cash balance.
	requireDecimalEqual(t, dec(t, "1000.00"), snapshot.TotalValue)
	requireDecimalEqual(t, dec(t, "1000.00"), snapshot.CashBalance)
	assert.False(t, snapshot.Timestamp.IsZero())
}

func TestRecordSnapshotWithHoldings(t *testing.T) {
	db := setupTestDB(t)
	portfolio := createUserWithPortfolio(t, db, "held@example.com", "1000.00")
	stock := createStock(t, db, "AAPL", "Apple Inc.", "150.00")

	_, err := ExecuteBuy(db, portfolio.ID, stock, 2)
	require.NoError(t, err)

	snapshot, err := RecordSnapshot(db, portfolio.ID)
	require.NoError(t, err)

	requireDecimalEqual(t, dec(t, "1000.00"), snapshot.TotalValue)
	requireDecimalEqual(t, dec(t, "700.00"), snapshot.CashBalance)
}

func TestRecordSnapshotAppendsOnly(t *testing.T) {
	db := setupTestDB(t)
	portfolio := createUserWithPortfolio(t, db, "twice@example.com", "500.00")

	first, err := RecordSnapshot(db, portfolio.ID)
	require.NoError(t, err)
	second, err := RecordSnapshot(db, portfolio.ID)
	require.NoError(t, err)

	// No dedup: back-to-back calls produce two rows.
	assert.NotEqual(t, first.ID, second.ID)

	var count int64
	db.Model(&models.PortfolioSnapshot{}).Where("portfolio_id = ?", portfolio.ID).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestRecordSnapshotUnknownPortfolio(t *testing.T) {
	db := setupTestDB(t)

	_, err := RecordSnapshot(db, 77)
	require.ErrorIs(t, err, models.ErrPortfolioNotFound)
}
