package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceAccountEmail string
	PrivateKey          string
	SpreadsheetID       string
	AllowedOrigin       string
	ServerPort          string
	SheetsTimeout       time.Duration
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		ServiceAccountEmail: getEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
		PrivateKey:          getEnv("GOOGLE_PRIVATE_KEY", ""),
		SpreadsheetID:       getEnv("GOOGLE_SHEET_ID", ""),
		AllowedOrigin:       getEnv("ALLOWED_ORIGIN", "*"),
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		SheetsTimeout:       time.Duration(getEnvAsInt("SHEETS_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

// Validate reports every missing required variable at once so the operator
// can fix the environment in a single pass.
func (c *Config) Validate() error {
	var missing []string
	if c.ServiceAccountEmail == "" {
		missing = append(missing, "GOOGLE_SERVICE_ACCOUNT_EMAIL")
	}
	if c.PrivateKey == "" {
		missing = append(missing, "GOOGLE_PRIVATE_KEY")
	}
	if c.SpreadsheetID == "" {
		missing = append(missing, "GOOGLE_SHEET_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
