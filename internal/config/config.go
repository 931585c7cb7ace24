package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Ledger backends
const (
	BackendExcel  = "excel"
	BackendSheets = "sheets"
	BackendMemory = "memory"
)

type Config struct {
	// HTTP Server
	Port               string
	RateLimitPerMinute int

	// Logging
	LogLevel string

	// Ledger source
	LedgerBackend string
	LedgerPath    string
	LedgerSheet   string

	// Google Sheets
	GoogleSpreadsheetID      string
	GoogleSheetRange         string
	GoogleServiceAccountFile string
	GoogleServiceAccountJSON string

	// User settings
	UserSettingsPath string

	// Market data
	BaseCurrency   string
	APIKeyCurrency string
	APIKeyStock    string
	CurrencyAPIURL string
	StockAPIURL    string
	MarketTimeout  time.Duration
	MarketCacheTTL time.Duration

	// Reports
	ReportDir     string
	ReferenceDate string
}

func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8081"),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		LogLevel:           getEnv("LOG_LEVEL", "info"),

		LedgerBackend: getEnv("LEDGER_BACKEND", BackendExcel),
		LedgerPath:    getEnv("LEDGER_PATH", "data/operations.xlsx"),
		LedgerSheet:   getEnv("LEDGER_SHEET", ""),

		GoogleSpreadsheetID:      getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetRange:         getEnv("GOOGLE_SHEET_RANGE", "Operations"),
		GoogleServiceAccountFile: getEnv("GOOGLE_SERVICE_ACCOUNT_FILE", ""),
		GoogleServiceAccountJSON: getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),

		UserSettingsPath: getEnv("USER_SETTINGS_PATH", "data/user_settings.json"),

		BaseCurrency:   strings.ToUpper(getEnv("BASE_CURRENCY", "RUB")),
		APIKeyCurrency: getEnv("API_KEY_CURRENCY", ""),
		APIKeyStock:    getEnv("API_KEY_STOCK", ""),
		CurrencyAPIURL: getEnv("CURRENCY_API_URL", "https://v6.exchangerate-api.com/v6"),
		StockAPIURL:    getEnv("STOCK_API_URL", "https://finnhub.io/api/v1"),
		MarketTimeout:  getEnvDuration("MARKET_TIMEOUT", 10*time.Second),
		MarketCacheTTL: getEnvDuration("MARKET_CACHE_TTL", 5*time.Minute),

		ReportDir:     getEnv("REPORT_DIR", "."),
		ReferenceDate: getEnv("REFERENCE_DATE", ""),
	}
}

// Validate validates the configuration and returns an error listing every problem
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.RateLimitPerMinute < 1 || c.RateLimitPerMinute > 10000 {
		errors = append(errors, fmt.Sprintf("invalid rate limit %d: must be between 1 and 10000 requests per minute", c.RateLimitPerMinute))
	}

	// Validate ledger backend
	switch c.LedgerBackend {
	case BackendExcel:
		if c.LedgerPath == "" {
			errors = append(errors, "LEDGER_PATH is required when using excel backend")
		}
	case BackendSheets:
		if c.GoogleSpreadsheetID == "" {
			errors = append(errors, "Google Spreadsheet ID is required when using sheets backend")
		}
		hasFile := c.GoogleServiceAccountFile != ""
		if !hasFile && c.GoogleServiceAccountJSON == "" {
			errors = append(errors, "either GOOGLE_SERVICE_ACCOUNT_FILE or GOOGLE_SERVICE_ACCOUNT_JSON must be provided for sheets backend")
		}
		if hasFile {
			if _, err := os.Stat(c.GoogleServiceAccountFile); os.IsNotExist(err) {
				errors = append(errors, fmt.Sprintf("Google service account file does not exist: %s", c.GoogleServiceAccountFile))
			}
		}
	case BackendMemory:
	default:
		errors = append(errors, fmt.Sprintf("invalid ledger backend '%s': must be one of %v",
			c.LedgerBackend, []string{BackendExcel, BackendSheets, BackendMemory}))
	}

	if c.UserSettingsPath == "" {
		errors = append(errors, "USER_SETTINGS_PATH cannot be empty")
	}

	// Validate market data access
	if len(c.BaseCurrency) != 3 {
		errors = append(errors, fmt.Sprintf("invalid base currency '%s': must be a 3-letter code", c.BaseCurrency))
	}
	if c.APIKeyCurrency == "" {
		errors = append(errors, "API_KEY_CURRENCY is required")
	}
	if c.APIKeyStock == "" {
		errors = append(errors, "API_KEY_STOCK is required")
	}
	for name, raw := range map[string]string{"CURRENCY_API_URL": c.CurrencyAPIURL, "STOCK_API_URL": c.StockAPIURL} {
		if u, err := url.Parse(raw); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errors = append(errors, fmt.Sprintf("invalid %s '%s': must be an http(s) URL", name, raw))
		}
	}
	if c.MarketTimeout < time.Second || c.MarketTimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid market timeout %v: must be between 1 second and 5 minutes", c.MarketTimeout))
	}
	if c.MarketCacheTTL < time.Second || c.MarketCacheTTL > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid market cache TTL %v: must be between 1 second and 24 hours", c.MarketCacheTTL))
	}

	if c.ReportDir == "" {
		errors = append(errors, "REPORT_DIR cannot be empty")
	}
	if c.ReferenceDate != "" {
		if _, err := time.Parse("2006-01-02 15:04:05", c.ReferenceDate); err != nil {
			errors = append(errors, fmt.Sprintf("invalid reference date '%s': must be YYYY-MM-DD HH:MM:SS", c.ReferenceDate))
		}
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
