package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "DB_DRIVER", "DB_HOST", "REDIS_ADDR", "REDIS_DB", "UPDATE_YEAR", "WATCH_CRON", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "2021", cfg.UpdateYear)
	assert.Equal(t, "0 */15 * * * *", cfg.WatchCron)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("UPDATE_YEAR", "2022")

	cfg := Load()

	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, "3306", cfg.DB.Port)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "2022", cfg.UpdateYear)
}

func TestLoadTestDB(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "db-test")
	t.Setenv("TEST_DB_NAME", "installations_test")

	db := LoadTestDB()

	assert.Equal(t, "db-test", db.Host)
	assert.Equal(t, "installations_test", db.Name)
	assert.Equal(t, "postgres", db.Driver)
}

func TestLoadEnvSkippedWhenEnvChek(t *testing.T) {
	t.Setenv("ENV_CHEK", "1")

	assert.NoError(t, LoadEnv("does-not-exist.env"))
}
