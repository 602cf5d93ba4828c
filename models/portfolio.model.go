package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Portfolio holds a user's cash balance. One portfolio per user. Holdings
// and snapshots are owned by the portfolio and go away with it.
type Portfolio struct {
	gorm.Model
	UserID    uint                `gorm:"uniqueIndex;not null" json:"userId"`
	Balance   decimal.Decimal     `gorm:"type:numeric(12,2);not null;default:0" json:"balance"`
	Holdings  []Holding           `gorm:"constraint:OnDelete:CASCADE" json:"holdings,omitempty"`
	Snapshots []PortfolioSnapshot `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
