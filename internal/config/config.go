package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	JWTSecret   string
	SalonName   string

	// Slot grid: candidate start times are enumerated across the full day
	// regardless of the shift window, which is applied afterwards as a filter.
	SlotStartHour   int
	SlotEndHour     int
	SlotStepMinutes int

	PixelsPerMinute  int
	SlotCacheSeconds int

	AllowedOrigins []string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, relying on environment")
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		RedisURL:         getEnv("REDIS_URL", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		SalonName:        getEnv("SALON_NAME", "SalonBook"),
		SlotStartHour:    getEnvAsInt("SLOT_GRID_START_HOUR", 8),
		SlotEndHour:      getEnvAsInt("SLOT_GRID_END_HOUR", 22),
		SlotStepMinutes:  getEnvAsInt("SLOT_GRID_STEP_MINUTES", 15),
		PixelsPerMinute:  getEnvAsInt("PIXELS_PER_MINUTE", 2),
		SlotCacheSeconds: getEnvAsInt("SLOT_CACHE_SECONDS", 60),
		AllowedOrigins:   strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}

	if cfg.DatabaseURL == "" {
		logrus.Fatal("DATABASE_URL not set")
	}
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET not set")
	}

	return cfg
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvAsInt(name string, defaultVal int) int {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return val
	}
	return defaultVal
}
