package services

import (
	"errors"
	"time"

	"papertrade/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExecuteBuy debits the portfolio, bumps the holding and appends a BUY
// transaction as one database transaction. The price is captured from the
// stock at the moment of execution.
//
// The affordability check is folded into the debit itself: a conditional
// UPDATE that only fires when the balance covers the cost. Two concurrent
// buys against the same portfolio therefore cannot both pass against a
// stale balance; the second one sees the already-debited row and fails
// with ErrInsufficientFunds.
func ExecuteBuy(db *gorm.DB, portfolioID uint, stock *models.Stock, quantity int) (*models.Transaction, error) {
	if quantity <= 0 {
		return nil, models.ErrInvalidOrder
	}
	if !stock.CurrentPrice.IsPositive() {
		return nil, models.ErrInvalidStock
	}

	price := stock.CurrentPrice
	cost := price.Mul(decimal.NewFromInt(int64(quantity)))

	var transaction models.Transaction

	err := db.Transaction(func(tx *gorm.DB) error {
		// Atomic check-then-debit. RowsAffected == 0 means either the
		// portfolio does not exist or the balance does not cover the cost.
		debit := tx.Model(&models.Portfolio{}).
			Where("id = ? AND balance >= ?", portfolioID, cost).
			Update("balance", gorm.Expr("balance - ?", cost))
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			var portfolio models.Portfolio
			if err := tx.First(&portfolio, portfolioID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.ErrPortfolioNotFound
				}
				return err
			}
			return models.ErrInsufficientFunds
		}

		var portfolio models.Portfolio
		if err := tx.First(&portfolio, portfolioID).Error; err != nil {
			return err
		}

		// Upsert the (portfolio, stock) holding and add the shares.
		var holding models.Holding
		if err := tx.Where(models.Holding{PortfolioID: portfolioID, StockID: stock.ID}).
			Attrs(models.Holding{Quantity: 0}).
			FirstOrCreate(&holding).Error; err != nil {
			return err
		}
		if err := tx.Model(&holding).
			Update("quantity", gorm.Expr("quantity + ?", quantity)).Error; err != nil {
			return err
		}

		transaction = models.Transaction{
			UserID:    portfolio.UserID,
			StockID:   stock.ID,
			Type:      models.TransactionTypeBuy,
			Quantity:  quantity,
			Price:     price,
			Timestamp: time.Now(),
		}
		return tx.Create(&transaction).Error
	})
	if err != nil {
		return nil, err
	}

	return &transaction, nil
}

// No sell side exists yet. A future ExecuteSell needs the symmetric
// inventory check (quantity <= held quantity) inside the same transaction
// scope before crediting the balance.
