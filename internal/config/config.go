package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Story    StoryConfig
	Log      LogConfig
}

type ServerConfig struct {
	Address        string
	ContextTimeout time.Duration
	ProfileCookie  string
}

// StoreConfig selects the backend of the per-profile records
type StoreConfig struct {
	Driver     string
	SQLitePath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// CacheConfig is the redis connection. Host empty means no cache.
type CacheConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type StoryConfig struct {
	RefreshInterval  time.Duration
	ActiveProfileTTL time.Duration
	BoardCacheTTL    time.Duration
	Location         *time.Location
}

type LogConfig struct {
	Level  string
	Format string // "json" or "text"
}

// Load reads .env when present, then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Address:        getEnv("SERVER_ADDRESS", ":9090"),
			ContextTimeout: time.Duration(getIntEnv("CONTEXT_TIMEOUT", 30)) * time.Second,
			ProfileCookie:  getEnv("PROFILE_COOKIE", "sc_profile"),
		},
		Store: StoreConfig{
			Driver:     getEnv("STORE_DRIVER", DriverMemory),
			SQLitePath: getEnv("SQLITE_PATH", "./data/sentence-chain.db"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DATABASE_HOST", "localhost"),
			Port:     getEnv("DATABASE_PORT", "3306"),
			User:     getEnv("DATABASE_USER", "root"),
			Password: os.Getenv("DATABASE_PASS"),
			Name:     getEnv("DATABASE_NAME", "sentence_chain"),
		},
		Cache: CacheConfig{
			Host:     os.Getenv("CACHE_HOST"),
			Port:     getEnv("CACHE_PORT", "6379"),
			Password: os.Getenv("CACHE_PASS"),
			DB:       getIntEnv("CACHE_DB", 0),
		},
		Story: StoryConfig{
			RefreshInterval:  getDurationEnv("REFRESH_INTERVAL", 30*time.Second),
			ActiveProfileTTL: getDurationEnv("ACTIVE_PROFILE_TTL", 10*time.Minute),
			BoardCacheTTL:    getDurationEnv("BOARD_CACHE_TTL", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	loc, err := time.LoadLocation(getEnv("STORY_TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("STORY_TIMEZONE: %w", err)
	}
	cfg.Story.Location = loc

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverMySQL, DriverSQLite:
	case DriverRedis:
		if c.Cache.Host == "" {
			return fmt.Errorf("CACHE_HOST is required for the %s store", DriverRedis)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Story.RefreshInterval <= 0 {
		return fmt.Errorf("REFRESH_INTERVAL must be positive")
	}
	return nil
}

// DSN returns the MySQL connection string
func (c *DatabaseConfig) DSN() string {
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Local")
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", c.User, c.Password, c.Host, c.Port, c.Name, val.Encode())
}

func (c *CacheConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// SetupLogger applies level and format to the standard logrus logger
func (c *LogConfig) SetupLogger() {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", c.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if c.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		logrus.Warnf("failed to parse %s, using default %d", key, defaultValue)
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		logrus.Warnf("failed to parse %s, using default %s", key, defaultValue)
	}
	return defaultValue
}
