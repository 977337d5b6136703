package config

import (
	"github.com/spf13/viper"

	"github.com/coolbeans/ontograph/pkg/docmgr"
	"github.com/coolbeans/ontograph/pkg/profile"
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("language", profile.LangOWL)
	v.SetDefault("strict", true)

	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")

	v.SetDefault("documents.process_imports", true)
	v.SetDefault("documents.cache_models", true)
	v.SetDefault("documents.policy_file", "")
	v.SetDefault("documents.cache_dir", "")
	v.SetDefault("documents.cache_ttl", docmgr.DefaultCacheTTL)
	v.SetDefault("documents.fetch_timeout", docmgr.DefaultFetchTimeout)
	v.SetDefault("documents.strict_imports", false)
	v.SetDefault("documents.ignore_imports", []string{})
}
