package docmgr

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coolbeans/ontograph/pkg/errors"
)

// DocumentSpec describes one known ontology document.
type DocumentSpec struct {
	// URI is the public name of the document as it appears in imports.
	URI string `yaml:"uri"`

	// AltURL is where the document is actually read from, typically a
	// local copy.
	AltURL string `yaml:"alt_url,omitempty"`

	// Prefix is the preferred namespace prefix for the document.
	Prefix string `yaml:"prefix,omitempty"`

	// Language is the ontology language URI the document is written in.
	Language string `yaml:"language,omitempty"`

	// Format overrides syntax detection: turtle, ntriples or rdfxml.
	Format string `yaml:"format,omitempty"`
}

// Policy controls how documents are located and whether imports are
// followed.
type Policy struct {
	ProcessImports bool           `yaml:"process_imports"`
	CacheModels    bool           `yaml:"cache_models"`
	Documents      []DocumentSpec `yaml:"documents,omitempty"`
	IgnoreImports  []string       `yaml:"ignore_imports,omitempty"`
}

// DefaultPolicy follows imports and caches parsed documents.
func DefaultPolicy() *Policy {
	return &Policy{ProcessImports: true, CacheModels: true}
}

// LoadPolicy reads a policy from a YAML file.
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read policy file %s", path)
	}
	return ParsePolicy(data)
}

// ParsePolicy decodes a YAML policy. Fields absent from the document keep
// their DefaultPolicy values.
func ParsePolicy(data []byte) (*Policy, error) {
	policy := DefaultPolicy()
	if err := yaml.Unmarshal(data, policy); err != nil {
		return nil, errors.Wrap(err, "failed to parse policy")
	}
	for i, doc := range policy.Documents {
		if doc.URI == "" {
			return nil, errors.Newf("policy document %d has no uri", i)
		}
	}
	return policy, nil
}

// SavePolicy writes a policy as YAML.
func SavePolicy(path string, policy *Policy) error {
	data, err := policy.ToYAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write policy file %s", path)
	}
	return nil
}

// ToYAML encodes the policy.
func (p *Policy) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal policy")
	}
	return data, nil
}

// Document returns the entry for uri, matched after normalisation.
func (p *Policy) Document(uri string) (DocumentSpec, bool) {
	key := CacheURLFor(uri)
	for _, doc := range p.Documents {
		if CacheURLFor(doc.URI) == key {
			return doc, true
		}
	}
	return DocumentSpec{}, false
}

func (p *Policy) clone() *Policy {
	c := *p
	c.Documents = append([]DocumentSpec(nil), p.Documents...)
	c.IgnoreImports = append([]string(nil), p.IgnoreImports...)
	return &c
}
