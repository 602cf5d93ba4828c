package models

import (
	"gorm.io/gorm"
)

// Holding records how many shares of one stock a portfolio owns. Exactly
// one row per (portfolio, stock) pair.
type Holding struct {
	gorm.Model
	PortfolioID uint `gorm:"not null;uniqueIndex:idx_portfolio_stock" json:"portfolioId"`
	StockID     uint `gorm:"not null;uniqueIndex:idx_portfolio_stock" json:"stockId"`
	Quantity    int  `gorm:"not null;default:0" json:"quantity"`

	Stock Stock `gorm:"foreignKey:StockID" json:"stock,omitempty"`
}

func (h *Holding) BeforeSave(tx *gorm.DB) error {
	if h.Quantity < 0 {
		return ErrInvalidHolding
	}
	return nil
}
