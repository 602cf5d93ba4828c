package config

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	// Cash credited to every new portfolio at signup
	StartingBalance string

	RedisAddr     string
	RedisPassword string

	QuoteApiUrl string // Alpha Vantage style quote endpoint
	QuoteApiKey string

	// Cron expression for the daily snapshot + metrics job
	SnapshotSchedule string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// Rdb is the global Redis client, nil when REDIS_ADDR is unset.
var Rdb *redis.Client

// Ctx is the context for Redis operations.
var Ctx = context.Background()

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		StartingBalance: getEnv("STARTING_BALANCE", "10000.00"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		QuoteApiUrl: getEnv("QUOTE_API_URL", "https://www.alphavantage.co/query"),
		QuoteApiKey: getEnv("QUOTE_API_KEY", ""),

		SnapshotSchedule: getEnv("SNAPSHOT_SCHEDULE", "0 16 * * 1-5"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// InitRedis initializes the Redis connection used as a short-TTL quote
// cache. Skipped entirely when no address is configured.
func InitRedis() {
	if AppConfig.RedisAddr == "" {
		log.Println("Warning: REDIS_ADDR not set. Quote caching disabled.")
		return
	}

	Rdb = redis.NewClient(&redis.Options{
		Addr:     AppConfig.RedisAddr,
		Password: AppConfig.RedisPassword,
		DB:       0,
	})

	if err := Rdb.Ping(Ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
