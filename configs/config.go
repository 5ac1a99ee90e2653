package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"foodiehub/pkg/pricing"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	TaxRateBP         int64
	DeliveryFee       int64
	EstimatedDelivery string

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:          getEnv("DB_SOURCE", "foodiehub.db"),
		Port:              getEnv("PORT", "8000"),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		JWTTTL:            time.Duration(24) * time.Hour,
		TaxRateBP:         getEnvInt64("TAX_RATE_BP", 200),
		DeliveryFee:       getEnvInt64("DELIVERY_FEE", 150),
		EstimatedDelivery: getEnv("ESTIMATED_DELIVERY_TIME", "30-45 min"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
	}
}

// Pricing returns the engine configuration derived from env.
func (c *Config) Pricing() pricing.Config {
	return pricing.Config{
		TaxRateBP:         c.TaxRateBP,
		DeliveryFee:       c.DeliveryFee,
		EstimatedDelivery: c.EstimatedDelivery,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
	}
	return fallback
}
