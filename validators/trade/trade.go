package tradeValidator

import (
	"encoding/json"
	"strings"

	"papertrade/middleware"

	"github.com/gofiber/fiber/v2"
)

// BuyOrder carries a validated buy request
type BuyOrder struct {
	Symbol   string
	Quantity int
}

// Buy validates buy order requests. Quantity is rejected here when it is
// missing, fractional or not positive, so malformed orders never reach the
// trade executor.
func Buy() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Symbol   string      `json:"symbol"`
			Quantity json.Number `json:"quantity"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Symbol) == "" {
			errors["symbol"] = "Symbol is required!"
		}

		quantity, err := reqData.Quantity.Int64()
		if err != nil {
			errors["quantity"] = "Quantity must be a whole number!"
		} else if quantity <= 0 {
			errors["quantity"] = "Quantity must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBuy", &BuyOrder{
			Symbol:   strings.ToUpper(strings.TrimSpace(reqData.Symbol)),
			Quantity: int(quantity),
		})
		return c.Next()
	}
}
