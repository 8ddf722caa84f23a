// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"fmt"
	"strings"
	"time"

	"ocorrencias_logistica/internal/domain/entities"

	"github.com/spf13/viper"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverSheets   = "sheets"
	DriverXLSX     = "xlsx"
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"
)

// Config holds all runtime configuration. Every field maps 1:1 to an env var.
type Config struct {
	// Server
	Port               int    `mapstructure:"PORT"`
	Env                string `mapstructure:"APP_ENV"` // development | production
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	Timezone           string `mapstructure:"TIMEZONE"`

	// Backing store
	StoreDriver               string `mapstructure:"STORE_DRIVER"`
	SpreadsheetID             string `mapstructure:"SPREADSHEET_ID"`
	GoogleCredentialsFile     string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	GoogleCredentialsSecretID string `mapstructure:"GOOGLE_CREDENTIALS_SECRET_ID"`
	XLSXPath                  string `mapstructure:"XLSX_PATH"`
	SheetRowsTable            string `mapstructure:"SHEET_ROWS_TABLE"`

	// AWS (DynamoDB driver, Secrets Manager)
	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`

	// Tabs
	OccurrenceSheetSP string `mapstructure:"OCCURRENCE_SHEET_SP"`
	OccurrenceSheetPE string `mapstructure:"OCCURRENCE_SHEET_PE"`
	OccurrenceSheetES string `mapstructure:"OCCURRENCE_SHEET_ES"`
	ExpedicaoSheet    string `mapstructure:"EXPEDICAO_SHEET"`
	StockSheet        string `mapstructure:"STOCK_SHEET"`

	// Stock cache; an empty REDIS_URL disables it
	RedisURL      string        `mapstructure:"REDIS_URL"`
	StockCacheTTL time.Duration `mapstructure:"STOCK_CACHE_TTL"`

	// Business
	DeletePasswordHash string `mapstructure:"DELETE_PASSWORD_HASH"` // bcrypt; empty disables the check
	CompanyName        string `mapstructure:"COMPANY_NAME"`
}

var defaults = map[string]any{
	"PORT":                         8080,
	"APP_ENV":                      "development",
	"LOG_LEVEL":                    "info",
	"CORS_ALLOWED_ORIGINS":         "*",
	"TIMEZONE":                     "America/Sao_Paulo",
	"STORE_DRIVER":                 DriverMemory,
	"SPREADSHEET_ID":               "",
	"GOOGLE_CREDENTIALS_FILE":      "",
	"GOOGLE_CREDENTIALS_SECRET_ID": "",
	"XLSX_PATH":                    "data/ocorrencias.xlsx",
	"SHEET_ROWS_TABLE":             "sheet_rows",
	"AWS_REGION":                   "us-east-1",
	"AWS_ACCESS_KEY_ID":            "",
	"AWS_SECRET_ACCESS_KEY":        "",
	"DYNAMODB_ENDPOINT":            "",
	"OCCURRENCE_SHEET_SP":          "OCORRENCIAS_SP",
	"OCCURRENCE_SHEET_PE":          "OCORRENCIAS_PE",
	"OCCURRENCE_SHEET_ES":          "OCORRENCIAS_ES",
	"EXPEDICAO_SHEET":              "EXPEDICAO",
	"STOCK_SHEET":                  "SALDO",
	"REDIS_URL":                    "",
	"STOCK_CACHE_TTL":              "60s",
	"DELETE_PASSWORD_HASH":         "",
	"COMPANY_NAME":                 "Controle de Ocorrências",
}

// Load reads configuration from environment variables and, when present, a
// .env file in dir. Environment variables win over the file.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(dir)
	v.AutomaticEnv()

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	// Optional .env file for local development; a missing file is fine.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the selected driver depends on.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory, DriverDynamoDB:
	case DriverSheets:
		if c.SpreadsheetID == "" {
			return fmt.Errorf("config: SPREADSHEET_ID is required for the %s driver", DriverSheets)
		}
		if c.GoogleCredentialsFile == "" && c.GoogleCredentialsSecretID == "" {
			return fmt.Errorf("config: GOOGLE_CREDENTIALS_FILE or GOOGLE_CREDENTIALS_SECRET_ID is required for the %s driver", DriverSheets)
		}
	case DriverXLSX:
		if c.XLSXPath == "" {
			return fmt.Errorf("config: XLSX_PATH is required for the %s driver", DriverXLSX)
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.Port <= 0 {
		return fmt.Errorf("config: invalid PORT %d", c.Port)
	}
	return nil
}

func (c *Config) IsProduction() bool { return c.Env == "production" }

// OccurrenceTabs maps each branch to its tab name.
func (c *Config) OccurrenceTabs() map[entities.Branch]string {
	return map[entities.Branch]string{
		entities.BranchSP: c.OccurrenceSheetSP,
		entities.BranchPE: c.OccurrenceSheetPE,
		entities.BranchES: c.OccurrenceSheetES,
	}
}

func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Location falls back to UTC when TIMEZONE is empty.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}
