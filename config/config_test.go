package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "development")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "mix")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "mixmaster")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SPOTLIGHT_LIMIT", "5")
	t.Setenv("MODERATION_POLICY", "MASK")
	t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("CREATE_RATE_LIMIT", "20")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 5, cfg.SpotlightLimit)
	assert.Equal(t, "mask", cfg.ModerationPolicy)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 20, cfg.CreateRateLimit)
	assert.Equal(t, "host=db.internal port=5433 user=mix password=secret dbname=mixmaster sslmode=disable", cfg.PostgresDSN())
}

func TestLoadConfigWithDefaults(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "development")
	for _, key := range []string{"STORE_DRIVER", "SQLITE_PATH", "SERVER_PORT", "LOG_MODE", "MODERATION_POLICY", "SPOTLIGHT_LIMIT", "REDIS_DB", "CORS_ORIGINS", "CREATE_RATE_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "mixmaster.db", cfg.SQLitePath)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "development", cfg.LogMode)
	assert.Equal(t, "reject", cfg.ModerationPolicy)
	assert.Equal(t, 8, cfg.SpotlightLimit)
	assert.Equal(t, 0, cfg.CreateRateLimit)
	assert.Contains(t, cfg.CORSOrigins, "http://localhost:5173")
}

func TestLoadConfigTestEnvironmentUsesMemory(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	t.Setenv("STORE_DRIVER", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
}

func TestLoadConfigRejectsBadInteger(t *testing.T) {
	t.Setenv("SPOTLIGHT_LIMIT", "many")

	_, err := LoadConfig()
	require.Error(t, err)

	var verr ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "SPOTLIGHT_LIMIT", verr.Field)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServerPort:       "8080",
			StoreDriver:      DriverMemory,
			ModerationPolicy: "reject",
			SpotlightLimit:   8,
		}
	}

	t.Run("valid memory config", func(t *testing.T) {
		assert.NoError(t, ValidateConfig(valid()))
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := valid()
		cfg.StoreDriver = "mongo"
		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "STORE_DRIVER")
	})

	t.Run("reports every problem", func(t *testing.T) {
		cfg := valid()
		cfg.ModerationPolicy = "shout"
		cfg.SpotlightLimit = 0
		cfg.CreateRateLimit = -1
		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CREATE_RATE_LIMIT")
		assert.Contains(t, err.Error(), "MODERATION_POLICY")
		assert.Contains(t, err.Error(), "SPOTLIGHT_LIMIT")
	})

	t.Run("sqlite needs a path", func(t *testing.T) {
		cfg := valid()
		cfg.StoreDriver = DriverSQLite
		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SQLITE_PATH")
	})
}
