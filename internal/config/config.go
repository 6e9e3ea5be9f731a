package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Report   ReportConfig
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

// ReportConfig holds tunables for the reporting engine.
type ReportConfig struct {
	// TopN is the slice size for ranked analytics (top performers, top leave takers).
	TopN int
	// OvertimeCeilingHours is the expected annual overtime ceiling used to
	// normalize the overtime contribution of the performance score.
	OvertimeCeilingHours float64
}

func Load() (*Config, error) {
	// .env is optional; real deployments configure through the environment.
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
		Name:     getEnv("DB_NAME", "ems"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
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
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	topN, err := strconv.Atoi(getEnv("REPORT_TOP_N", "10"))
	if err != nil || topN <= 0 {
		return nil, fmt.Errorf("invalid REPORT_TOP_N: %q", getEnv("REPORT_TOP_N", "10"))
	}

	overtimeCeiling, err := strconv.ParseFloat(getEnv("REPORT_OVERTIME_CEILING_HOURS", "144"), 64)
	if err != nil || overtimeCeiling <= 0 {
		return nil, fmt.Errorf("invalid REPORT_OVERTIME_CEILING_HOURS: %q", getEnv("REPORT_OVERTIME_CEILING_HOURS", "144"))
	}

	config.Report = ReportConfig{
		TopN:                 topN,
		OvertimeCeilingHours: overtimeCeiling,
	}

	return config, nil
}

// DatabaseURL builds the postgres connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return defaultValue
}
