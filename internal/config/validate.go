package config

import (
	"time"

	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("log_level", c.LogLevel, logLevels, vb)
	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)

	if c.Redis.Enabled {
		if len(c.Redis.Addresses) == 0 {
			vb.RequiredField("redis.addresses")
		}
		for i, addr := range c.Redis.Addresses {
			if addr == "" {
				vb.Fieldf("redis.addresses", "address %d is empty", i)
			}
		}
	}

	if c.UsesFiles() && c.Catalog.UseSRDAPI {
		vb.Field("catalog.use_srd_api", "cannot be combined with catalog files")
	}
	if c.Catalog.UseSRDAPI {
		errors.ValidateRequired("catalog.srd_base_url", c.Catalog.SRDBaseURL, vb)
	}
	if d, err := time.ParseDuration(c.Catalog.CacheTTL); err != nil || d <= 0 {
		vb.Fieldf("catalog.cache_ttl", "must be a positive duration, got %q", c.Catalog.CacheTTL)
	}
	errors.ValidateRequired("catalog.core_source", c.Catalog.CoreSource, vb)
	errors.ValidateRequired("converter.default_source", c.Converter.DefaultSource, vb)

	return vb.Build()
}
