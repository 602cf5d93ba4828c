package stockRoutes

import (
	stockController "papertrade/controllers/stocks"
	"papertrade/middleware"
	stockValidator "papertrade/validators/stock"

	"github.com/gofiber/fiber/v2"
)

func SetupStockRoutes(app *fiber.App) {
	stockGroup := app.Group("/stocks")

	// User routes
	stockGroup.Get("/", middleware.JWTMiddleware, stockController.GetStocksList)
	stockGroup.Get("/:symbol", middleware.JWTMiddleware, stockController.GetStockBySymbol)

	// Admin routes
	stockGroup.Post("/", stockValidator.CreateStock(), middleware.JWTMiddleware, middleware.AdminOnly, stockController.CreateStock)
	stockGroup.Put("/:symbol/price", stockValidator.UpdatePrice(), middleware.JWTMiddleware, middleware.AdminOnly, stockController.UpdateStockPrice)
}
