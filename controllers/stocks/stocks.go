package stockController

import (
	"errors"
	"strings"
	"time"

	"papertrade/database"
	"papertrade/middleware"
	"papertrade/models"
	"papertrade/utils"
	stockValidator "papertrade/validators/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetStocksList returns a paginated list of stocks
func GetStocksList(c *fiber.Ctx) error {
	// Parse query params
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("sizePerPage", 10)
	search := c.Query("search")

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit
	db := database.Database.Db

	query := db.Model(&models.Stock{})

	// Search by symbol or company name
	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Where("symbol ILIKE ? OR name ILIKE ?", searchPattern, searchPattern)
	}

	var total int64
	query.Count(&total)

	var stocks []models.Stock
	if err := query.
		Order("symbol ASC").
		Offset(offset).
		Limit(limit).
		Find(&stocks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stocks!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stocks fetched!", fiber.Map{
		"stocks": stocks,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetStockBySymbol returns one stock looked up by its ticker symbol. The
// quote cache is consulted first so hot symbols skip the database.
func GetStockBySymbol(c *fiber.Ctx) error {
	symbol := strings.ToUpper(c.Params("symbol"))

	if cached, ok := utils.GetCachedQuote(symbol); ok {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Stock fetched!", cached)
	}

	var stock models.Stock
	if err := database.Database.Db.Where("symbol = ?", symbol).First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Stock not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stock!", nil)
	}

	utils.CacheQuote(&stock)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stock fetched!", stock)
}

// CreateStock adds a new stock (Admin only). Symbol normalization and the
// positive-price rule are enforced by the model hook.
func CreateStock(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStock").(*stockValidator.ValidatedStock)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	symbol := strings.ToUpper(strings.TrimSpace(reqData.Symbol))
	if err := db.Where("symbol = ?", symbol).First(&models.Stock{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Symbol is already listed!", nil)
	}

	stock := models.Stock{
		Symbol:       reqData.Symbol,
		Name:         reqData.Name,
		CurrentPrice: reqData.CurrentPrice,
		LastUpdated:  time.Now(),
	}

	if err := db.Create(&stock).Error; err != nil {
		if errors.Is(err, models.ErrInvalidStock) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Stock price must be positive!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create stock!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Stock created!", stock)
}

// UpdateStockPrice updates a stock's current price (Admin only)
func UpdateStockPrice(c *fiber.Ctx) error {
	symbol := strings.ToUpper(c.Params("symbol"))

	price, ok := c.Locals("validatedPrice").(decimal.Decimal)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var stock models.Stock
	if err := db.Where("symbol = ?", symbol).First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Stock not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stock!", nil)
	}

	stock.CurrentPrice = price
	stock.LastUpdated = time.Now()

	if err := db.Save(&stock).Error; err != nil {
		if errors.Is(err, models.ErrInvalidStock) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Stock price must be positive!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update price!", nil)
	}

	utils.InvalidateQuote(symbol)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Price updated!", stock)
}
