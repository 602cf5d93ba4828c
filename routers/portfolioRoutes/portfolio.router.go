package portfolioRoutes

import (
	portfolioController "papertrade/controllers/portfolio"
	"papertrade/middleware"
	tradeValidator "papertrade/validators/trade"

	"github.com/gofiber/fiber/v2"
)

func SetupPortfolioRoutes(app *fiber.App) {
	portfolioGroup := app.Group("/portfolio")

	portfolioGroup.Get("/", middleware.JWTMiddleware, portfolioController.GetPortfolio)
	portfolioGroup.Post("/buy", tradeValidator.Buy(), middleware.JWTMiddleware, portfolioController.BuyStock)
	portfolioGroup.Get("/transactions", middleware.JWTMiddleware, portfolioController.GetTransactionHistory)
	portfolioGroup.Post("/snapshot", middleware.JWTMiddleware, portfolioController.RecordSnapshot)
	portfolioGroup.Get("/snapshots", middleware.JWTMiddleware, portfolioController.GetSnapshots)
	portfolioGroup.Get("/metrics", middleware.JWTMiddleware, portfolioController.GetPerformanceMetrics)
}
