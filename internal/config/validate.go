package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be between 0 and max_conns (got %d)", c.Database.MinConns)
	}

	if c.UOW.OperationTimeout <= 0 {
		return fmt.Errorf("uow.operation_timeout must be > 0 (got %v)", c.UOW.OperationTimeout)
	}

	if c.Mongo.Enabled() && c.Mongo.Database == "" {
		return fmt.Errorf("mongo.database is required when mongo.uri is set")
	}

	if c.Redis.Enabled() && c.Redis.TTL <= 0 {
		return fmt.Errorf("redis.ttl must be > 0 (got %v)", c.Redis.TTL)
	}

	if err := c.Analytics.validate(); err != nil {
		return fmt.Errorf("analytics: %w", err)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (a *AnalyticsConfig) validate() error {
	if a.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be > 0 (got %d)", a.QueueSize)
	}
	if a.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", a.Workers)
	}
	return nil
}
