package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers understood by the database package.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Store configuration
	StoreDriver string
	SQLitePath  string

	// Postgres configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string
	RedisPrefix   string

	// HTTP
	CORSOrigins []string
	// CreateRateLimit caps recipe creations per client per hour. 0 disables
	// it. Counting needs Redis.
	CreateRateLimit int

	// Behaviour
	LogMode          string
	ModerationPolicy string
	SpotlightLimit   int
}

// LoadConfig creates a new Config instance from the environment. A .env file
// in the working directory is loaded first when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	env := GetEnvironment()
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", defaultDriver(env))),
		SQLitePath:  getEnv("SQLITE_PATH", "mixmaster.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", readSecret("db_password")),
		DBName:     getEnv("DB_NAME", "mixmaster"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", readSecret("redis_password")),
		RedisURL:      os.Getenv("REDIS_URL"),
		RedisPrefix:   getEnv("REDIS_PREFIX", "mixmaster:"),

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:8081,http://localhost:19006")),

		LogMode:          getEnv("LOG_MODE", defaultLogMode(env)),
		ModerationPolicy: strings.ToLower(getEnv("MODERATION_POLICY", "reject")),
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.SpotlightLimit, err = getEnvInt("SPOTLIGHT_LIMIT", 8); err != nil {
		return nil, err
	}
	if cfg.CreateRateLimit, err = getEnvInt("CREATE_RATE_LIMIT", 0); err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// PostgresDSN returns the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// RedisAddr returns host:port for the redis client.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func defaultDriver(env Environment) string {
	if env == Test || env == CI {
		return DriverMemory
	}
	return DriverSQLite
}

func defaultLogMode(env Environment) string {
	if env == Production {
		return "production"
	}
	return "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ValidationError{Field: key, Message: fmt.Sprintf("must be an integer, got %q", raw)}
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(secretsDir + "/" + name); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
