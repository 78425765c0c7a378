package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	logrus "github.com/sirupsen/logrus"
)

// Config holds everything the service reads from the environment.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Database
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	DBTimezone        string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	// Logging
	LogFile        string
	LogLevel       string
	LogMaxSizeMB   int
	LogMaxBackups  int
	LogMaxAgeDays  int
	HTTPLogEnabled bool

	// CORS, comma-separated
	CORSAllowedOrigins string

	// Seeding
	SeedEnabled bool
	SeedDir     string // empty means the bundled sample data
}

// Load reads .env (if present) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, relying on env vars")
	}

	return &Config{
		AppName: getEnv("APP_NAME", "driver-service"),
		Env:     getEnv("APP_ENV", "development"),
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),

		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "password"),
		DBName:            getEnv("DB_NAME", "fleetops"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		DBTimezone:        getEnv("DB_TIMEZONE", "UTC"),
		DBMaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", time.Hour),

		LogFile:        getEnv("LOG_FILE", "./logs/app.log"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogMaxSizeMB:   getInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups:  getInt("LOG_MAX_BACKUPS", 7),
		LogMaxAgeDays:  getInt("LOG_MAX_AGE_DAYS", 7),
		HTTPLogEnabled: getBool("HTTP_LOG_ENABLED", true),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),

		SeedEnabled: getBool("SEED_ENABLED", true),
		SeedDir:     getEnv("SEED_DIR", ""),
	}
}

// PostgresDSN builds the key/value connection string understood by lib/pq.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode, c.DBTimezone,
	)
}

// CORSOrigins splits CORSAllowedOrigins, dropping blanks.
func (c *Config) CORSOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists && v != "" {
		return v
	}
	return defaultValue
}

func getInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		logrus.WithError(err).Warnf("invalid int for %s, using default %d", key, def)
		return def
	}
	return i
}

func getBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logrus.WithError(err).Warnf("invalid boolean for %s, using default %v", key, def)
		return def
	}
	return b
}

func getDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.WithError(err).Warnf("invalid duration for %s, using default %s", key, def)
		return def
	}
	return d
}
