package config

import (
	"errors"
	"fmt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var moderationPolicies = map[string]bool{
	"reject": true,
	"mask":   true,
}

// driverRequirements lists the fields each store driver cannot run without.
var driverRequirements = map[string]func(*Config) []error{
	DriverMemory: func(*Config) []error { return nil },
	DriverSQLite: func(cfg *Config) []error {
		if cfg.SQLitePath == "" {
			return []error{ValidationError{Field: "SQLITE_PATH", Message: "is required for the sqlite driver"}}
		}
		return nil
	},
	DriverPostgres: func(cfg *Config) []error {
		var errs []error
		if cfg.DBHost == "" {
			errs = append(errs, ValidationError{Field: "DB_HOST", Message: "is required for the postgres driver"})
		}
		if cfg.DBName == "" {
			errs = append(errs, ValidationError{Field: "DB_NAME", Message: "is required for the postgres driver"})
		}
		if GetEnvironment() == Production && cfg.DBPassword == "" {
			errs = append(errs, ValidationError{Field: "DB_PASSWORD", Message: "db_password secret is required in production"})
		}
		return errs
	},
	DriverRedis: func(cfg *Config) []error {
		if cfg.RedisURL == "" && cfg.RedisHost == "" {
			return []error{ValidationError{Field: "REDIS_HOST", Message: "REDIS_URL or REDIS_HOST is required for the redis driver"}}
		}
		return nil
	},
}

// ValidateConfig checks the configuration for the selected store driver.
// All problems are reported at once, joined.
func ValidateConfig(cfg *Config) error {
	var errs []error

	check, ok := driverRequirements[cfg.StoreDriver]
	if !ok {
		errs = append(errs, ValidationError{Field: "STORE_DRIVER", Message: fmt.Sprintf("unknown driver %q", cfg.StoreDriver)})
	} else {
		errs = append(errs, check(cfg)...)
	}

	if !moderationPolicies[cfg.ModerationPolicy] {
		errs = append(errs, ValidationError{Field: "MODERATION_POLICY", Message: fmt.Sprintf("must be reject or mask, got %q", cfg.ModerationPolicy)})
	}
	if cfg.SpotlightLimit <= 0 {
		errs = append(errs, ValidationError{Field: "SPOTLIGHT_LIMIT", Message: "must be positive"})
	}
	if cfg.CreateRateLimit < 0 {
		errs = append(errs, ValidationError{Field: "CREATE_RATE_LIMIT", Message: "must not be negative"})
	}
	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: "is required"})
	}

	return errors.Join(errs...)
}
