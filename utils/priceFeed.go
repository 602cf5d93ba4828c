package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"papertrade/config"
	"papertrade/database"
	"papertrade/models"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const quoteCacheTTL = 5 * time.Minute

func quoteKey(symbol string) string {
	return fmt.Sprintf("stock:%s:quote", symbol)
}

// CacheQuote stores a stock's current quote in Redis with a short TTL.
// No-op when Redis is not configured.
func CacheQuote(stock *models.Stock) {
	if config.Rdb == nil {
		return
	}
	data, err := json.Marshal(stock)
	if err != nil {
		return
	}
	if err := config.Rdb.Set(config.Ctx, quoteKey(stock.Symbol), data, quoteCacheTTL).Err(); err != nil {
		log.Printf("[PRICE-FEED] Failed to cache quote for %s: %v", stock.Symbol, err)
	}
}

// GetCachedQuote returns the cached quote for a symbol, if any
func GetCachedQuote(symbol string) (*models.Stock, bool) {
	if config.Rdb == nil {
		return nil, false
	}
	data, err := config.Rdb.Get(config.Ctx, quoteKey(symbol)).Result()
	if err != nil {
		return nil, false
	}
	var stock models.Stock
	if err := json.Unmarshal([]byte(data), &stock); err != nil {
		return nil, false
	}
	return &stock, true
}

// InvalidateQuote drops a symbol from the cache after a price write
func InvalidateQuote(symbol string) {
	if config.Rdb == nil {
		return
	}
	config.Rdb.Del(config.Ctx, quoteKey(symbol))
}

// globalQuoteResponse is the Alpha Vantage GLOBAL_QUOTE payload shape
type globalQuoteResponse struct {
	GlobalQuote struct {
		Price string `json:"05. price"`
	} `json:"Global Quote"`
}

// FetchQuote pulls the latest price for a symbol from the quote API
func FetchQuote(symbol string) (decimal.Decimal, error) {
	if config.AppConfig.QuoteApiKey == "" {
		return decimal.Zero, fmt.Errorf("QUOTE_API_KEY is not configured")
	}

	client := resty.New().SetTimeout(10 * time.Second)

	var quote globalQuoteResponse
	resp, err := client.R().
		SetQueryParams(map[string]string{
			"function": "GLOBAL_QUOTE",
			"symbol":   symbol,
			"apikey":   config.AppConfig.QuoteApiKey,
		}).
		SetResult(&quote).
		Get(config.AppConfig.QuoteApiUrl)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch quote: %w", err)
	}
	if resp.IsError() {
		return decimal.Zero, fmt.Errorf("quote API error: %s", resp.Status())
	}
	if quote.GlobalQuote.Price == "" {
		return decimal.Zero, fmt.Errorf("no quote data for %s", symbol)
	}

	price, err := decimal.NewFromString(quote.GlobalQuote.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse quote price %q: %w", quote.GlobalQuote.Price, err)
	}
	return price, nil
}

// RefreshPrices updates current_price for every listed stock from the
// quote API. Stocks whose fetch fails keep their last price.
func RefreshPrices() {
	db := database.Database.Db

	var stocks []models.Stock
	if err := db.Find(&stocks).Error; err != nil {
		log.Printf("[PRICE-FEED] Failed to list stocks: %v", err)
		return
	}

	updated := 0
	for i := range stocks {
		price, err := FetchQuote(stocks[i].Symbol)
		if err != nil {
			log.Printf("[PRICE-FEED] %s: %v", stocks[i].Symbol, err)
			continue
		}

		stocks[i].CurrentPrice = price
		stocks[i].LastUpdated = time.Now()
		if err := db.Save(&stocks[i]).Error; err != nil {
			log.Printf("[PRICE-FEED] Failed to save %s: %v", stocks[i].Symbol, err)
			continue
		}

		InvalidateQuote(stocks[i].Symbol)
		updated++
	}

	log.Printf("[PRICE-FEED] Refreshed %d of %d stock prices", updated, len(stocks))
}
