package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Stock struct {
	gorm.Model                   // Auto includes ID, CreatedAt, UpdatedAt, DeletedAt
	Symbol       string          `gorm:"uniqueIndex;not null" json:"symbol"`
	Name         string          `gorm:"index;not null" json:"name"`
	CurrentPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"currentPrice"`
	LastUpdated  time.Time       `json:"lastUpdated"`
}

// BeforeSave normalizes the symbol to uppercase and rejects non-positive
// prices. Runs on both create and update so a price can never be written
// at or below zero.
func (s *Stock) BeforeSave(tx *gorm.DB) error {
	s.Symbol = strings.ToUpper(strings.TrimSpace(s.Symbol))
	if !s.CurrentPrice.IsPositive() {
		return ErrInvalidStock
	}
	return nil
}
