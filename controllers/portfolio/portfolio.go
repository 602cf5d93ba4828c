package portfolioController

import (
	"errors"
	"fmt"
	"strings"

	"papertrade/database"
	"papertrade/middleware"
	"papertrade/models"
	"papertrade/services"
	tradeValidator "papertrade/validators/trade"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ownPortfolio resolves the acting user's portfolio. Portfolios are only
// ever looked up through the JWT user id, so no cross-user access exists.
func ownPortfolio(db *gorm.DB, userId uint) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := db.Where("user_id = ?", userId).First(&portfolio).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPortfolioNotFound
		}
		return nil, err
	}
	return &portfolio, nil
}

// GetPortfolio returns the caller's portfolio with holdings and its
// current total value
func GetPortfolio(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	db := database.Database.Db

	var portfolio models.Portfolio
	if err := db.Preload("Holdings.Stock").Where("user_id = ?", userId).First(&portfolio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Portfolio not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch portfolio!", nil)
	}

	totalValue, err := services.TotalValue(portfolio.Balance, portfolio.Holdings, services.PriceSet(portfolio.Holdings))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to value portfolio!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Portfolio fetched!", fiber.Map{
		"portfolio":  portfolio,
		"totalValue": totalValue,
	})
}

// BuyStock executes a validated buy order against the caller's portfolio
func BuyStock(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	order, ok := c.Locals("validatedBuy").(*tradeValidator.BuyOrder)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	portfolio, err := ownPortfolio(db, userId)
	if err != nil {
		if errors.Is(err, models.ErrPortfolioNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Portfolio not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch portfolio!", nil)
	}

	var stock models.Stock
	if err := db.Where("symbol = ?", strings.ToUpper(order.Symbol)).First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Stock not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stock!", nil)
	}

	// Fast affordability check before entering the executor. The executor
	// re-checks atomically, so a balance change between here and there
	// still cannot oversell the cash.
	cost := stock.CurrentPrice.Mul(decimal.NewFromInt(int64(order.Quantity)))
	if portfolio.Balance.LessThan(cost) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient funds for this purchase!", nil)
	}

	transaction, err := services.ExecuteBuy(db, portfolio.ID, &stock, order.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInsufficientFunds):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient funds for this purchase!", nil)
		case errors.Is(err, models.ErrInvalidOrder):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quantity provided!", nil)
		case errors.Is(err, models.ErrInvalidStock):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Stock has no valid price!", nil)
		case errors.Is(err, models.ErrPortfolioNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Portfolio not found!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to execute buy!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true,
		fmt.Sprintf("Successfully purchased %d shares of %s", order.Quantity, stock.Symbol),
		fiber.Map{
			"transactionId": transaction.ID,
			"symbol":        stock.Symbol,
			"quantity":      transaction.Quantity,
			"price":         transaction.Price,
			"totalAmount":   transaction.TotalAmount,
		})
}

// GetTransactionHistory returns the caller's trade log, newest first
func GetTransactionHistory(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	// Parse query params
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	txnType := c.Query("type") // BUY or SELL

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit
	db := database.Database.Db

	query := db.Model(&models.Transaction{}).Where("user_id = ?", userId)

	if txnType != "" {
		query = query.Where("type = ?", txnType)
	}

	var total int64
	query.Count(&total)

	var transactions []models.Transaction
	if err := query.
		Preload("Stock").
		Order("timestamp DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction history fetched!", fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// RecordSnapshot captures the caller's portfolio valuation right now
func RecordSnapshot(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	db := database.Database.Db

	portfolio, err := ownPortfolio(db, userId)
	if err != nil {
		if errors.Is(err, models.ErrPortfolioNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Portfolio not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch portfolio!", nil)
	}

	snapshot, err := services.RecordSnapshot(db, portfolio.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record snapshot!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Snapshot recorded!", snapshot)
}

// GetSnapshots returns the caller's snapshot history, newest first
func GetSnapshots(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 30)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 30
	}

	offset := (page - 1) * limit
	db := database.Database.Db

	portfolio, err := ownPortfolio(db, userId)
	if err != nil {
		if errors.Is(err, models.ErrPortfolioNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Portfolio not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch portfolio!", nil)
	}

	query := db.Model(&models.PortfolioSnapshot{}).Where("portfolio_id = ?", portfolio.ID)

	var total int64
	query.Count(&total)

	var snapshots []models.PortfolioSnapshot
	if err := query.
		Order("timestamp DESC").
		Offset(offset).
		Limit(limit).
		Find(&snapshots).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch snapshots!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Snapshots fetched!", fiber.Map{
		"snapshots": snapshots,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetPerformanceMetrics returns the caller's daily metric rows, newest first
func GetPerformanceMetrics(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	db := database.Database.Db

	portfolio, err := ownPortfolio(db, userId)
	if err != nil {
		if errors.Is(err, models.ErrPortfolioNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Portfolio not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch portfolio!", nil)
	}

	var metrics []models.PerformanceMetric
	if err := db.Where("portfolio_id = ?", portfolio.ID).
		Order("date DESC").
		Limit(90).
		Find(&metrics).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch metrics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Performance metrics fetched!", metrics)
}
