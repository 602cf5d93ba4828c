package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType defines the side of a trade
type TransactionType string

const (
	TransactionTypeBuy  TransactionType = "BUY"
	TransactionTypeSell TransactionType = "SELL"
)

// Transaction is the append-only trade log. Price is the per-share price
// captured at execution time; rows are never updated after creation.
type Transaction struct {
	gorm.Model
	UserID      uint            `gorm:"not null;index:idx_user_time" json:"userId"`
	StockID     uint            `gorm:"not null;index:idx_stock_time" json:"stockId"`
	Type        TransactionType `gorm:"type:varchar(4);not null" json:"type"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"totalAmount"`
	Timestamp   time.Time       `gorm:"not null;index:idx_user_time;index:idx_stock_time" json:"timestamp"`

	Stock Stock `gorm:"foreignKey:StockID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate derives the total and rejects non-positive quantities.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Quantity <= 0 {
		return ErrInvalidOrder
	}
	t.TotalAmount = t.Price.Mul(decimal.NewFromInt(int64(t.Quantity)))
	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now()
	}
	return nil
}
