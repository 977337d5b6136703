// Package config loads ontograph settings from an optional YAML file,
// ONTOGRAPH_* environment variables and built-in defaults.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/coolbeans/ontograph/pkg/errors"
)

// EnvPrefix prefixes every environment variable viper binds, so
// documents.cache_dir is read from ONTOGRAPH_DOCUMENTS_CACHE_DIR.
const EnvPrefix = "ONTOGRAPH"

// Config is the complete ontograph configuration.
type Config struct {
	// Language is a language URI or one of the short names accepted by
	// the profile registry.
	Language  string          `mapstructure:"language"`
	Strict    bool            `mapstructure:"strict"`
	Log       LogConfig       `mapstructure:"log"`
	Documents DocumentsConfig `mapstructure:"documents"`
}

// LogConfig configures the global logger.
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// DocumentsConfig configures the document manager.
type DocumentsConfig struct {
	ProcessImports bool `mapstructure:"process_imports"`
	CacheModels    bool `mapstructure:"cache_models"`
	// PolicyFile is an ont-policy YAML file with document mappings.
	PolicyFile string `mapstructure:"policy_file"`
	// CacheDir holds remote downloads. Empty disables remote fetching.
	CacheDir      string        `mapstructure:"cache_dir"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
	FetchTimeout  time.Duration `mapstructure:"fetch_timeout"`
	StrictImports bool          `mapstructure:"strict_imports"`
	IgnoreImports []string      `mapstructure:"ignore_imports"`
}

// Load reads configuration from path, when non-empty, layered over the
// environment and the defaults.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}
	return LoadWithViper(v)
}

// New returns a viper instance with defaults and environment binding
// but no config file.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// LoadWithViper unmarshals the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}
