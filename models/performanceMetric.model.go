package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PerformanceMetric holds one row of daily performance figures per
// portfolio per calendar date. Returns are percentages; gain/loss values
// are absolute amounts.
type PerformanceMetric struct {
	gorm.Model
	PortfolioID        uint            `gorm:"not null;uniqueIndex:idx_portfolio_date" json:"portfolioId"`
	Date               time.Time       `gorm:"not null;uniqueIndex:idx_portfolio_date" json:"date"`
	DailyReturn        decimal.Decimal `gorm:"type:numeric(8,4);not null" json:"dailyReturn"`
	TotalReturn        decimal.Decimal `gorm:"type:numeric(8,4);not null" json:"totalReturn"`
	RealizedGainLoss   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"realizedGainLoss"`
	UnrealizedGainLoss decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"unrealizedGainLoss"`
}
