package main

import (
	"context"
	"net/url"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/coolbeans/ontograph/pkg/config"
	"github.com/coolbeans/ontograph/pkg/logger"
	"github.com/coolbeans/ontograph/pkg/ont"
)

// session is everything a command needs after flag and config handling.
type session struct {
	cfg      *config.Config
	registry *prometheus.Registry
	model    *ont.Model
	source   string
}

// loadConfig reads --config and applies the global flags the user set
// explicitly on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flags.Changed("lang") {
		cfg.Language, _ = flags.GetString("lang")
	}
	if flags.Changed("no-imports") {
		noImports, _ := flags.GetBool("no-imports")
		cfg.Documents.ProcessImports = !noImports
	}
	if flags.Changed("policy") {
		cfg.Documents.PolicyFile, _ = flags.GetString("policy")
	}
	if flags.Changed("cache-dir") {
		cfg.Documents.CacheDir, _ = flags.GetString("cache-dir")
	}
	if flags.Changed("json-log") {
		cfg.Log.JSON, _ = flags.GetBool("json-log")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("lax") {
		lax, _ := flags.GetBool("lax")
		cfg.Strict = !lax
	}

	if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSession loads the configuration and reads source, with its
// imports, into a fresh model.
func openSession(ctx context.Context, cmd *cobra.Command, source string) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, registry: prometheus.NewRegistry(), source: documentURI(source)}
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// reload rebuilds the document manager and the model from scratch.
func (s *session) reload(ctx context.Context) error {
	s.registry = prometheus.NewRegistry()
	docs, err := s.cfg.DocumentManager(s.registry)
	if err != nil {
		return err
	}
	m, err := ont.NewModel(ctx, ont.ModelSpec{
		Language:        s.cfg.Language,
		DocumentManager: docs,
		Lax:             !s.cfg.Strict,
	})
	if err != nil {
		return err
	}
	if err := m.Read(ctx, s.source); err != nil {
		return err
	}
	s.model = m
	return nil
}

// documentURI turns a file path argument into a file URL and leaves
// anything with a scheme alone.
func documentURI(source string) string {
	if u, err := url.Parse(source); err == nil && len(u.Scheme) > 1 {
		return source
	}
	abs, err := filepath.Abs(source)
	if err != nil {
		return source
	}
	return "file://" + filepath.ToSlash(abs)
}

// localFile returns the path behind a file URL.
func localFile(uri string) (string, bool) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return "", false
	}
	return filepath.FromSlash(u.Path), true
}
