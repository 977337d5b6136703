package config

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/coolbeans/ontograph/pkg/docmgr"
	"github.com/coolbeans/ontograph/pkg/errors"
)

// Policy returns the document policy: the policy file when one is
// configured, otherwise the default policy. The process_imports and
// cache_models settings and the extra ignored imports of the config
// always win over the file.
func (d DocumentsConfig) Policy() (*docmgr.Policy, error) {
	policy := docmgr.DefaultPolicy()
	if d.PolicyFile != "" {
		loaded, err := docmgr.LoadPolicy(d.PolicyFile)
		if err != nil {
			return nil, err
		}
		policy = loaded
	}
	policy.ProcessImports = d.ProcessImports
	policy.CacheModels = d.CacheModels
	for _, uri := range d.IgnoreImports {
		if uri != "" {
			policy.IgnoreImports = append(policy.IgnoreImports, uri)
		}
	}
	return policy, nil
}

// DocumentManagerOptions converts the documents section into document
// manager options. Metrics are registered on reg when it is non-nil.
func (c *Config) DocumentManagerOptions(reg prometheus.Registerer) ([]docmgr.Option, error) {
	policy, err := c.Documents.Policy()
	if err != nil {
		return nil, err
	}
	opts := []docmgr.Option{
		docmgr.WithPolicy(policy),
		docmgr.WithStrictReadFailures(c.Documents.StrictImports),
	}

	fetcher := docmgr.RoutingFetcher{}
	if c.Documents.CacheDir != "" {
		remote, err := docmgr.NewGetterFetcher(c.Documents.CacheDir, c.Documents.CacheTTL)
		if err != nil {
			return nil, err
		}
		remote.SetTimeout(c.Documents.FetchTimeout)
		fetcher.Remote = remote
	}
	opts = append(opts, docmgr.WithFetcher(fetcher))

	if reg != nil {
		metrics, err := docmgr.NewMetrics(reg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to set up document metrics")
		}
		opts = append(opts, docmgr.WithMetrics(metrics))
	}
	return opts, nil
}

// DocumentManager builds a document manager from the configuration.
func (c *Config) DocumentManager(reg prometheus.Registerer) (*docmgr.DocumentManager, error) {
	opts, err := c.DocumentManagerOptions(reg)
	if err != nil {
		return nil, err
	}
	return docmgr.New(opts...), nil
}
