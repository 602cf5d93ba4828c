package tradeValidator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBuyApp mounts the validator in front of a handler that echoes the
// validated order, so a 200 means the order got through.
func newBuyApp() *fiber.App {
	app := fiber.New()
	app.Post("/buy", Buy(), func(c *fiber.Ctx) error {
		order := c.Locals("validatedBuy").(*BuyOrder)
		return c.JSON(order)
	})
	return app
}

func postBuy(t *testing.T, app *fiber.App, body string) int {
	t.Helper()

	req := httptest.NewRequest("POST", "/buy", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestBuyRejectsFractionalQuantity(t *testing.T) {
	app := newBuyApp()

	status := postBuy(t, app, `{"symbol": "AAPL", "quantity": 2.5}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestBuyRejectsNonPositiveQuantity(t *testing.T) {
	app := newBuyApp()

	for _, body := range []string{
		`{"symbol": "AAPL", "quantity": 0}`,
		`{"symbol": "AAPL", "quantity": -3}`,
	} {
		status := postBuy(t, app, body)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status, "body %s", body)
	}
}

func TestBuyRejectsMissingSymbol(t *testing.T) {
	app := newBuyApp()

	status := postBuy(t, app, `{"symbol": "  ", "quantity": 2}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestBuyRejectsMalformedBody(t *testing.T) {
	app := newBuyApp()

	// Quantity as a JSON string never reaches the quantity checks.
	status := postBuy(t, app, `{"symbol": "AAPL", "quantity": "two"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestBuyAcceptsWholeQuantityAndNormalizesSymbol(t *testing.T) {
	app := fiber.New()

	var captured *BuyOrder
	app.Post("/buy", Buy(), func(c *fiber.Ctx) error {
		captured = c.Locals("validatedBuy").(*BuyOrder)
		return c.SendStatus(fiber.StatusOK)
	})

	status := postBuy(t, app, `{"symbol": " aapl ", "quantity": 2}`)
	require.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, captured)
	assert.Equal(t, "AAPL", captured.Symbol)
	assert.Equal(t, 2, captured.Quantity)
}