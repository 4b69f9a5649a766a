// Package config loads the converter's TOML configuration file.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
)

//go:embed sample_config.toml
var sampleConfig string

// Server contains the gRPC listener settings.
type Server struct {
	Port int `toml:"port"`
}

// Redis contains the catalog snapshot store settings.
type Redis struct {
	Enabled   bool     `toml:"enabled"`
	Addresses []string `toml:"addresses"`
	KeyPrefix string   `toml:"key_prefix"`
}

// Catalog selects where base items and classes are loaded from.
// Exactly one source is used: the JSON files, the Redis snapshot, or the SRD API.
type Catalog struct {
	ItemsFile   string `toml:"items_file"`
	ClassesFile string `toml:"classes_file"`
	UseSRDAPI   bool   `toml:"use_srd_api"`
	SRDBaseURL  string `toml:"srd_base_url"`
	CacheTTL    string `toml:"cache_ttl"`
	CoreSource  string `toml:"core_source"`
}

// Converter contains defaults applied to every conversion.
type Converter struct {
	DefaultSource string `toml:"default_source"`
	TitleCase     bool   `toml:"title_case"`
}

// Config encapsulates all configuration values for the converter.
type Config struct {
	LogLevel  string    `toml:"log_level"`
	Server    Server    `toml:"server"`
	Redis     Redis     `toml:"redis"`
	Catalog   Catalog   `toml:"catalog"`
	Converter Converter `toml:"converter"`
}

// Load parses and validates a configuration file.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Parse(nil)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		cfg, err := Parse(data)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid config %s", path)
		}
		return cfg, nil
	case os.IsNotExist(err):
		return Parse(nil)
	default:
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
}

// Parse decodes configuration from TOML text on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config")
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Catalog.ItemsFile = strings.TrimSpace(c.Catalog.ItemsFile)
	c.Catalog.ClassesFile = strings.TrimSpace(c.Catalog.ClassesFile)
	c.Catalog.CoreSource = strings.TrimSpace(c.Catalog.CoreSource)
	c.Converter.DefaultSource = strings.TrimSpace(c.Converter.DefaultSource)
}

// CacheTTL returns the SRD client cache lifetime
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Catalog.CacheTTL)
	if err != nil {
		return defaultCacheTTL
	}
	return d
}

// UsesFiles reports whether the catalogs come from JSON files
func (c *Config) UsesFiles() bool {
	return c.Catalog.ItemsFile != "" || c.Catalog.ClassesFile != ""
}

// Marshal renders the configuration as TOML
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode config")
	}
	return data, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "failed to create config directory")
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return errors.Wrap(err, "failed to write sample config")
	}
	return nil
}
