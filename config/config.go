package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Environment string
	Port        string

	DB      DBConfig
	JWT     JWTConfig
	Accrual AccrualConfig

	// BusinessDayOffsetHours is the shop's fixed UTC offset used to
	// bucket transactions into business days (negative is west of UTC).
	BusinessDayOffsetHours int
}

type DBConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type AccrualConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

func Load() Config {
	return Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),
		DB: DBConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "3306"),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "boba_pos"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "dev-secret-change-me"),
			TTL:    getEnvDuration("JWT_TTL", 24*time.Hour),
		},
		Accrual: AccrualConfig{
			PollInterval: getEnvDuration("ACCRUAL_POLL_INTERVAL", 5*time.Second),
			BatchSize:    getEnvInt("ACCRUAL_BATCH_SIZE", 50),
			MaxAttempts:  getEnvInt("ACCRUAL_MAX_ATTEMPTS", 5),
		},
		BusinessDayOffsetHours: getEnvInt("BUSINESS_DAY_UTC_OFFSET", -6),
	}
}

// DSN builds the MySQL connection string. Timestamps are stored and
// compared in UTC; business-day math happens in the application.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
