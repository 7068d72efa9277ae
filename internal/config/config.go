package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration, populated from environment
// variables with sane development defaults.
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	RateRPS float64
	RateMax int
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Midnight Library"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RateRPS: getEnvFloat("RATE_LIMIT_RPS", 2),
		RateMax: getEnvInt("RATE_LIMIT_BURST", 4),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
