package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds the derivation constants that are not role-specific:
// the monthly hour ceiling the hour bonus is prorated against, and the
// flat food-voucher benefit reported on every record.
type PayrollConfig struct {
	MonthlyMaxHours decimal.Decimal
	FoodVouchers    decimal.Decimal
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "nomina"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	maxHours, err := decimal.NewFromString(getEnv("PAYROLL_MONTHLY_MAX_HOURS", "160"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_MONTHLY_MAX_HOURS: %w", err)
	}
	foodVouchers, err := decimal.NewFromString(getEnv("PAYROLL_FOOD_VOUCHERS", "1038.00"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_FOOD_VOUCHERS: %w", err)
	}
	config.Payroll = PayrollConfig{
		MonthlyMaxHours: maxHours,
		FoodVouchers:    foodVouchers,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.MonthlyMaxHours.Sign() <= 0 {
		return fmt.Errorf("PAYROLL_MONTHLY_MAX_HOURS must be positive")
	}
	if c.Payroll.FoodVouchers.Sign() < 0 {
		return fmt.Errorf("PAYROLL_FOOD_VOUCHERS must be non-negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
