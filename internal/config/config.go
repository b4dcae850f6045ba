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

// PayrollConfig holds the calculation engine defaults
type PayrollConfig struct {
	RegularDailyHours    decimal.Decimal // regular -> overtime boundary
	DoubleTimeDailyHours decimal.Decimal // overtime -> double-time boundary
	CalcWorkers          int             // per-employee concurrency during a run
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "shiftwise-wfm"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll engine configuration
	regularHours, err := decimal.NewFromString(getEnv("PAYROLL_REGULAR_DAILY_HOURS", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_REGULAR_DAILY_HOURS: %w", err)
	}
	doubleTimeHours, err := decimal.NewFromString(getEnv("PAYROLL_DOUBLE_TIME_DAILY_HOURS", "12"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DOUBLE_TIME_DAILY_HOURS: %w", err)
	}
	calcWorkers, err := strconv.Atoi(getEnv("PAYROLL_CALC_WORKERS", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_CALC_WORKERS: %w", err)
	}

	config.Payroll = PayrollConfig{
		RegularDailyHours:    regularHours,
		DoubleTimeDailyHours: doubleTimeHours,
		CalcWorkers:          calcWorkers,
	}

	// Validate required fields
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
	if !c.Payroll.RegularDailyHours.IsPositive() {
		return fmt.Errorf("PAYROLL_REGULAR_DAILY_HOURS must be positive")
	}
	if c.Payroll.DoubleTimeDailyHours.LessThanOrEqual(c.Payroll.RegularDailyHours) {
		return fmt.Errorf("PAYROLL_DOUBLE_TIME_DAILY_HOURS must exceed PAYROLL_REGULAR_DAILY_HOURS")
	}
	if c.Payroll.CalcWorkers < 1 {
		return fmt.Errorf("PAYROLL_CALC_WORKERS must be at least 1")
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
