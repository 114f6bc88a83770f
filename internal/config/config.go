package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime settings read from the environment.
type Config struct {
	HTTPAddr string
	GinMode  string

	DB DBConfig

	RedisAddr     string // empty disables redis publishing
	RedisPassword string
	RedisDB       int

	LogLevel  string
	LogFormat string

	UpdateYear string // year served by /installations-maj-2021
	WatchCron  string // borough watcher schedule, with seconds
}

// DBConfig describes a database connection. Driver is one of "postgres",
// "mysql" or "memory".
type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// LoadEnv loads .env files unless ENV_CHEK is set, which is how containers
// signal that the environment is already populated.
func LoadEnv(files ...string) error {
	if os.Getenv("ENV_CHEK") != "" {
		return nil
	}
	return godotenv.Load(files...)
}

// Load builds a Config from the current environment, applying defaults.
func Load() Config {
	return Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		GinMode:       getenv("GIN_MODE", "release"),
		DB:            loadDB("DB_"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       atoi(getenv("REDIS_DB", "0")),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFormat:     getenv("LOG_FORMAT", "json"),
		UpdateYear:    getenv("UPDATE_YEAR", "2021"),
		WatchCron:     getenv("WATCH_CRON", "0 */15 * * * *"),
	}
}

// LoadTestDB reads the TEST_DB_* variables used by integration tests.
func LoadTestDB() DBConfig {
	return loadDB("TEST_DB_")
}

func loadDB(prefix string) DBConfig {
	return DBConfig{
		Driver:   strings.ToLower(getenv(prefix+"DRIVER", "postgres")),
		Host:     getenv(prefix+"HOST", "localhost"),
		Port:     os.Getenv(prefix + "PORT"),
		User:     os.Getenv(prefix + "USER"),
		Password: os.Getenv(prefix + "PASSWORD"),
		Name:     os.Getenv(prefix + "NAME"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}
