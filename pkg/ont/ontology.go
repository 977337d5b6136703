package ont

import (
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
)

// Ontology is a view over an ontology header node.
type Ontology struct {
	*Resource
}

// Imports returns the URIs of the documents the ontology imports.
func (o *Ontology) Imports() ([]string, error) {
	nodes, err := o.model.values(o.node, profile.TermImports)
	if err != nil {
		return nil, err
	}
	var uris []string
	for _, n := range nodes {
		if n.IsURI() {
			uris = append(uris, n.Value)
		}
	}
	return uris, nil
}

// ImportsDocument reports whether uri is imported, under any alias of
// imports.
func (o *Ontology) ImportsDocument(uri string) (bool, error) {
	return o.model.hasValue(o.node, profile.TermImports, store.URI(uri))
}

// AddImport records an import of uri. The document is not loaded until
// the model next reads.
func (o *Ontology) AddImport(uri string) error {
	return o.model.addValue(o.node, profile.TermImports, store.URI(uri))
}

// RemoveImport retracts an import of uri.
func (o *Ontology) RemoveImport(uri string) error {
	return o.model.removeValue(o.node, profile.TermImports, store.URI(uri))
}

// PriorVersion returns the ontologies this one supersedes.
func (o *Ontology) PriorVersion() ([]store.Node, error) {
	return o.model.values(o.node, profile.TermPriorVersion)
}

// AddPriorVersion records a prior version.
func (o *Ontology) AddPriorVersion(n store.Node) error {
	return o.model.addValue(o.node, profile.TermPriorVersion, n)
}

// BackwardCompatibleWith returns the versions this one is compatible with.
func (o *Ontology) BackwardCompatibleWith() ([]store.Node, error) {
	return o.model.values(o.node, profile.TermBackwardCompatibleWith)
}

// AddBackwardCompatibleWith records a compatible prior version.
func (o *Ontology) AddBackwardCompatibleWith(n store.Node) error {
	return o.model.addValue(o.node, profile.TermBackwardCompatibleWith, n)
}

// IncompatibleWith returns the versions this one is incompatible with.
func (o *Ontology) IncompatibleWith() ([]store.Node, error) {
	return o.model.values(o.node, profile.TermIncompatibleWith)
}

// AddIncompatibleWith records an incompatible prior version.
func (o *Ontology) AddIncompatibleWith(n store.Node) error {
	return o.model.addValue(o.node, profile.TermIncompatibleWith, n)
}

// AllDifferent is a view over a set of mutually distinct individuals.
type AllDifferent struct {
	*Resource
}

// DistinctMembers returns the individuals declared distinct. In strict
// mode each must resolve as an individual.
func (a *AllDifferent) DistinctMembers() ([]*Individual, error) {
	members, err := a.model.listValue(a.node, profile.TermDistinctMembers)
	if err != nil {
		return nil, err
	}
	if err := a.model.checkMembers(a.node, members, profile.FacetIndividual); err != nil {
		return nil, err
	}
	return a.model.individuals(resourcesOnly(members)), nil
}

// AddDistinctMember appends an individual to the set.
func (a *AllDifferent) AddDistinctMember(individual store.Node) error {
	if err := mustResource(individual, "distinct member"); err != nil {
		return err
	}
	return a.model.appendListValue(a.node, profile.TermDistinctMembers, individual)
}

// SetDistinctMembers replaces the set.
func (a *AllDifferent) SetDistinctMembers(individuals []store.Node) error {
	for _, n := range individuals {
		if err := mustResource(n, "distinct member"); err != nil {
			return err
		}
	}
	return a.model.setListValue(a.node, profile.TermDistinctMembers, individuals)
}
