package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-item-converter/internal/config"
	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)

	s.Equal("info", cfg.LogLevel)
	s.Equal(50051, cfg.Server.Port)
	s.False(cfg.Redis.Enabled)
	s.Equal("DMG", cfg.Catalog.CoreSource)
	s.Equal("HB", cfg.Converter.DefaultSource)
	s.Equal(24*time.Hour, cfg.CacheTTL())
	s.False(cfg.UsesFiles())
}

func (s *ConfigTestSuite) TestLoadMissingFile() {
	cfg, err := config.Load(filepath.Join(s.dir, "missing.toml"))
	s.Require().NoError(err)
	s.Equal(config.Default().Server, cfg.Server)
}

func (s *ConfigTestSuite) TestLoadFile() {
	path := filepath.Join(s.dir, "converter.toml")
	s.Require().NoError(os.WriteFile(path, []byte(`
log_level = " DEBUG "

[server]
port = 6000

[catalog]
items_file = "data/items-base.json"
classes_file = "data/class.json"
cache_ttl = "1h"

[converter]
default_source = "TCE"
title_case = true
`), 0o600))

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal("debug", cfg.LogLevel)
	s.Equal(6000, cfg.Server.Port)
	s.True(cfg.UsesFiles())
	s.Equal("data/items-base.json", cfg.Catalog.ItemsFile)
	s.Equal(time.Hour, cfg.CacheTTL())
	s.Equal("TCE", cfg.Converter.DefaultSource)
	s.True(cfg.Converter.TitleCase)
	s.Equal("DMG", cfg.Catalog.CoreSource)
}

func (s *ConfigTestSuite) TestParseErrors() {
	testCases := []struct {
		name   string
		data   string
		errMsg string
	}{
		{
			name:   "malformed toml",
			data:   `[server`,
			errMsg: "failed to parse config",
		},
		{
			name:   "unknown log level",
			data:   `log_level = "loud"`,
			errMsg: "log_level",
		},
		{
			name:   "port out of range",
			data:   "[server]\nport = 70000",
			errMsg: "server.port",
		},
		{
			name:   "files and srd api together",
			data:   "[catalog]\nitems_file = \"items.json\"\nuse_srd_api = true",
			errMsg: "catalog.use_srd_api",
		},
		{
			name:   "bad cache ttl",
			data:   "[catalog]\ncache_ttl = \"soon\"",
			errMsg: "catalog.cache_ttl",
		},
		{
			name:   "redis enabled without addresses",
			data:   "[redis]\nenabled = true\naddresses = []",
			errMsg: "redis.addresses",
		},
		{
			name:   "blank core source",
			data:   "[catalog]\ncore_source = \"  \"",
			errMsg: "catalog.core_source",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg, err := config.Parse([]byte(tc.data))
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(cfg)
		})
	}
}

func (s *ConfigTestSuite) TestLoadMalformedFile() {
	path := filepath.Join(s.dir, "broken.toml")
	s.Require().NoError(os.WriteFile(path, []byte("[server"), 0o644))

	cfg, err := config.Load(path)
	s.Nil(cfg)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "broken.toml")
}

func (s *ConfigTestSuite) TestSampleConfigLoads() {
	path := filepath.Join(s.dir, "nested", "config.toml")
	s.Require().NoError(config.CreateSample(path))

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal(config.Default(), *cfg)
}

func (s *ConfigTestSuite) TestMarshalRoundTrip() {
	cfg := config.Default()
	cfg.Redis.Enabled = true
	cfg.Catalog.UseSRDAPI = true

	data, err := cfg.Marshal()
	s.Require().NoError(err)

	parsed, err := config.Parse(data)
	s.Require().NoError(err)
	s.Equal(cfg, *parsed)
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
