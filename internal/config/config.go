package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"paygate/internal/models"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// GetDecimalEnv returns a decimal environment variable or a default value.
// Monetary configuration is parsed as decimal, never float.
func GetDecimalEnv(key, defaultVal string) decimal.Decimal {
	raw := GetEnv(key, defaultVal)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("invalid decimal for %s: %q, using default %s", key, raw, defaultVal)
		return decimal.RequireFromString(defaultVal)
	}
	return d
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// PaymentSchedule builds the payment fee schedule from the environment.
func PaymentSchedule() models.FeeSchedule {
	return models.FeeSchedule{
		FixedFee:         GetDecimalEnv("PAYMENT_FIXED_FEE", "0"),
		PercentFee:       GetDecimalEnv("PAYMENT_PERCENT_FEE", "2.5"),
		GSTPercentOnFee:  GetDecimalEnv("PAYMENT_GST_PERCENT_ON_FEE", "18"),
		MinimumPrincipal: GetDecimalEnv("PAYMENT_MINIMUM_PRINCIPAL", "1"),
	}
}

// PayoutSchedule builds the payout fee schedule from the environment.
// No GST line applies to payout fees; the field stays for schedule symmetry.
func PayoutSchedule() models.FeeSchedule {
	return models.FeeSchedule{
		FixedFee:         GetDecimalEnv("PAYOUT_FIXED_FEE", "20"),
		PercentFee:       GetDecimalEnv("PAYOUT_PERCENT_FEE", "0"),
		GSTPercentOnFee:  GetDecimalEnv("PAYOUT_GST_PERCENT_ON_FEE", "0"),
		MinimumPrincipal: GetDecimalEnv("PAYOUT_MINIMUM_PRINCIPAL", "100"),
	}
}
