package main

import (
	"log"

	"papertrade/config"
	"papertrade/database"
	authRoutes "papertrade/routers/authRoutes"
	portfolioRoutes "papertrade/routers/portfolioRoutes"
	stockRoutes "papertrade/routers/stockRoutes"
	"papertrade/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	config.InitRedis()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	stockRoutes.SetupStockRoutes(app)
	portfolioRoutes.SetupPortfolioRoutes(app)

	// Daily snapshot + performance metric job
	utils.InitializeSnapshotScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
