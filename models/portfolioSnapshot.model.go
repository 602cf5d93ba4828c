package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PortfolioSnapshot is an immutable point-in-time valuation record.
type PortfolioSnapshot struct {
	gorm.Model
	PortfolioID uint            `gorm:"not null;index:idx_portfolio_snap_time" json:"portfolioId"`
	TotalValue  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"totalValue"`
	CashBalance decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"cashBalance"`
	Timestamp   time.Time       `gorm:"not null;index:idx_portfolio_snap_time" json:"timestamp"`
}
