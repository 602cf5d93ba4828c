package stockValidator

import (
	"strings"

	"papertrade/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// CreateStock validates admin stock creation requests. Price arrives as a
// string so the decimal survives parsing without a float round trip.
func CreateStock() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Symbol       string `json:"symbol"`
			Name         string `json:"name"`
			CurrentPrice string `json:"currentPrice"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Symbol) == "" {
			errors["symbol"] = "Symbol is required!"
		}
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		price, err := decimal.NewFromString(reqData.CurrentPrice)
		if err != nil {
			errors["currentPrice"] = "Price must be a valid number!"
		} else if !price.IsPositive() {
			errors["currentPrice"] = "Price must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStock", &ValidatedStock{
			Symbol:       reqData.Symbol,
			Name:         reqData.Name,
			CurrentPrice: price,
		})
		return c.Next()
	}
}

// UpdatePrice validates admin price update requests
func UpdatePrice() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CurrentPrice string `json:"currentPrice"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		price, err := decimal.NewFromString(reqData.CurrentPrice)
		if err != nil {
			errors["currentPrice"] = "Price must be a valid number!"
		} else if !price.IsPositive() {
			errors["currentPrice"] = "Price must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPrice", price)
		return c.Next()
	}
}

// ValidatedStock carries a parsed stock creation payload
type ValidatedStock struct {
	Symbol       string
	Name         string
	CurrentPrice decimal.Decimal
}
