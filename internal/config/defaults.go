package config

import "time"

const (
	defaultLogLevel      = "info"
	defaultPort          = 50051
	defaultRedisAddress  = "localhost:6379"
	defaultKeyPrefix     = "catalog:"
	defaultSRDBaseURL    = "https://www.dnd5eapi.co/api/2014/"
	defaultCacheTTL      = 24 * time.Hour
	defaultCoreSource    = "DMG"
	defaultDefaultSource = "HB"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		LogLevel: defaultLogLevel,
		Server: Server{
			Port: defaultPort,
		},
		Redis: Redis{
			Addresses: []string{defaultRedisAddress},
			KeyPrefix: defaultKeyPrefix,
		},
		Catalog: Catalog{
			SRDBaseURL: defaultSRDBaseURL,
			CacheTTL:   defaultCacheTTL.String(),
			CoreSource: defaultCoreSource,
		},
		Converter: Converter{
			DefaultSource: defaultDefaultSource,
		},
	}
}
