package ont

import (
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
)

// Individual is a view over an instance of one or more classes.
type Individual struct {
	*Resource
}

// OntClasses returns the classes of the individual: the asserted types,
// or with direct false those and all their superclasses.
func (i *Individual) OntClasses(direct bool) []*Class {
	return i.model.classes(i.RDFTypes(direct))
}

// HasOntClass reports whether class is among OntClasses(direct).
func (i *Individual) HasOntClass(class store.Node, direct bool) bool {
	return i.HasRDFType(class, direct)
}

// AddOntClass types the individual by class.
func (i *Individual) AddOntClass(class store.Node) error {
	if err := mustResource(class, "class"); err != nil {
		return err
	}
	return i.AddRDFType(class)
}

// RemoveOntClass retracts the type class.
func (i *Individual) RemoveOntClass(class store.Node) {
	i.RemoveRDFType(class)
}

// SameIndividualAs returns the individuals declared the same as i.
func (i *Individual) SameIndividualAs() ([]*Individual, error) {
	nodes, err := i.model.values(i.node, profile.TermSameIndividualAs)
	if err != nil {
		return nil, err
	}
	return i.model.individuals(resourcesOnly(nodes)), nil
}

// AddSameIndividualAs declares other the same individual as i.
func (i *Individual) AddSameIndividualAs(other store.Node) error {
	if err := mustResource(other, "individual"); err != nil {
		return err
	}
	return i.model.addValue(i.node, profile.TermSameIndividualAs, other)
}

func (m *Model) individuals(nodes []store.Node) []*Individual {
	out := make([]*Individual, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &Individual{Resource: newResource(m, n)})
	}
	return out
}
