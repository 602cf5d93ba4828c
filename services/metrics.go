package services

import (
	"errors"
	"time"

	"papertrade/models"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var hundred = decimal.NewFromInt(100)

// ComputeDailyMetric writes the performance row for the portfolio on the
// given calendar date, replacing an existing row for that date when the
// job runs twice. Daily return compares against the last snapshot taken
// before that day; total return compares against the portfolio's first
// snapshot. Unrealized gain/loss is current holdings value minus the buy
// cost basis. Realized gain/loss stays zero until a sell side exists.
func ComputeDailyMetric(db *gorm.DB, portfolioID uint, date time.Time) (*models.PerformanceMetric, error) {
	day := now.New(date).BeginningOfDay()

	var portfolio models.Portfolio
	if err := db.Preload("Holdings.Stock").First(&portfolio, portfolioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPortfolioNotFound
		}
		return nil, err
	}

	holdingsValue, err := HoldingsValue(portfolio.Holdings, PriceSet(portfolio.Holdings))
	if err != nil {
		return nil, err
	}
	currentValue := portfolio.Balance.Add(holdingsValue)

	var costBasis decimal.Decimal
	row := db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", portfolio.UserID, models.TransactionTypeBuy).
		Select("COALESCE(SUM(total_amount), 0)").Row()
	if err := row.Scan(&costBasis); err != nil {
		return nil, err
	}

	metric := models.PerformanceMetric{
		PortfolioID:        portfolio.ID,
		Date:               day,
		DailyReturn:        percentChange(previousClose(db, portfolio.ID, day), currentValue),
		TotalReturn:        percentChange(firstClose(db, portfolio.ID), currentValue),
		RealizedGainLoss:   decimal.Zero,
		UnrealizedGainLoss: holdingsValue.Sub(costBasis),
	}

	err = db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "portfolio_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"daily_return", "total_return", "realized_gain_loss", "unrealized_gain_loss",
		}),
	}).Create(&metric).Error
	if err != nil {
		return nil, err
	}

	return &metric, nil
}

// previousClose is the total value of the last snapshot taken before the
// given day, zero when no such snapshot exists.
func previousClose(db *gorm.DB, portfolioID uint, day time.Time) decimal.Decimal {
	var snapshot models.PortfolioSnapshot
	err := db.Where("portfolio_id = ? AND timestamp < ?", portfolioID, day).
		Order("timestamp DESC").First(&snapshot).Error
	if err != nil {
		return decimal.Zero
	}
	return snapshot.TotalValue
}

// firstClose is the total value of the portfolio's earliest snapshot.
func firstClose(db *gorm.DB, portfolioID uint) decimal.Decimal {
	var snapshot models.PortfolioSnapshot
	err := db.Where("portfolio_id = ?", portfolioID).
		Order("timestamp ASC").First(&snapshot).Error
	if err != nil {
		return decimal.Zero
	}
	return snapshot.TotalValue
}

// percentChange returns (current - base) / base * 100, zero when there is
// no base to compare against.
func percentChange(base, current decimal.Decimal) decimal.Decimal {
	if base.IsZero() {
		return decimal.Zero
	}
	return current.Sub(base).Div(base).Mul(hundred).Round(4)
}
