package services

import (
	"errors"
	"time"

	"papertrade/models"

	"gorm.io/gorm"
)

// RecordSnapshot captures the portfolio's valuation right now and persists
// it as a new immutable snapshot row. Existing snapshots are never touched,
// and back-to-back calls produce two rows; any dedup policy lives with the
// caller.
func RecordSnapshot(db *gorm.DB, portfolioID uint) (*models.PortfolioSnapshot, error) {
	var portfolio models.Portfolio
	if err := db.Preload("Holdings.Stock").First(&portfolio, portfolioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPortfolioNotFound
		}
		return nil, err
	}

	totalValue, err := TotalValue(portfolio.Balance, portfolio.Holdings, PriceSet(portfolio.Holdings))
	if err != nil {
		return nil, err
	}

	snapshot := models.PortfolioSnapshot{
		PortfolioID: portfolio.ID,
		TotalValue:  totalValue,
		CashBalance: portfolio.Balance,
		Timestamp:   time.Now(),
	}
	if err := db.Create(&snapshot).Error; err != nil {
		return nil, err
	}

	return &snapshot, nil
}
