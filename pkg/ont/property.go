package ont

import (
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
	"github.com/coolbeans/ontograph/pkg/vocab"
)

// Property is a view over any kind of property.
type Property struct {
	*Resource
}

// SuperProperties returns the directly asserted superproperties, or with
// closed the reflexive-transitive closure along subPropertyOf.
func (p *Property) SuperProperties(closed bool) ([]*Property, error) {
	if _, err := checkedProperty(p.model.profile, profile.TermSubPropertyOf); err != nil {
		return nil, err
	}
	if closed {
		return p.model.properties(sortedNodes(closure(p.node, p.model.superPropertiesOf))), nil
	}
	return p.model.properties(p.model.superPropertiesOf(p.node)), nil
}

// SubProperties mirrors SuperProperties in the other direction.
func (p *Property) SubProperties(closed bool) ([]*Property, error) {
	if _, err := checkedProperty(p.model.profile, profile.TermSubPropertyOf); err != nil {
		return nil, err
	}
	if closed {
		return p.model.properties(sortedNodes(closure(p.node, p.model.subPropertiesOf))), nil
	}
	return p.model.properties(p.model.subPropertiesOf(p.node)), nil
}

// HasSuperProperty reports whether super is among SuperProperties(closed).
func (p *Property) HasSuperProperty(super store.Node, closed bool) (bool, error) {
	supers, err := p.SuperProperties(closed)
	if err != nil {
		return false, err
	}
	return containsView(supers, super), nil
}

// AddSuperProperty asserts p subPropertyOf super.
func (p *Property) AddSuperProperty(super store.Node) error {
	if err := mustResource(super, "superproperty"); err != nil {
		return err
	}
	return p.model.addValue(p.node, profile.TermSubPropertyOf, super)
}

// AddSubProperty asserts sub subPropertyOf p.
func (p *Property) AddSubProperty(sub store.Node) error {
	if err := mustResource(sub, "subproperty"); err != nil {
		return err
	}
	return p.model.addValue(sub, profile.TermSubPropertyOf, p.node)
}

// Domains returns the declared domain classes.
func (p *Property) Domains() ([]*Class, error) {
	nodes, err := p.model.values(p.node, profile.TermDomain)
	if err != nil {
		return nil, err
	}
	return p.model.classes(resourcesOnly(nodes)), nil
}

// AddDomain adds a domain class.
func (p *Property) AddDomain(class store.Node) error {
	if err := mustResource(class, "domain"); err != nil {
		return err
	}
	return p.model.addValue(p.node, profile.TermDomain, class)
}

// Ranges returns the declared ranges: classes, datatypes or data ranges.
func (p *Property) Ranges() ([]*Resource, error) {
	nodes, err := p.model.values(p.node, profile.TermRange)
	if err != nil {
		return nil, err
	}
	out := make([]*Resource, 0, len(nodes))
	for _, n := range resourcesOnly(nodes) {
		out = append(out, newResource(p.model, n))
	}
	return out, nil
}

// AddRange adds a range.
func (p *Property) AddRange(r store.Node) error {
	if err := mustResource(r, "range"); err != nil {
		return err
	}
	return p.model.addValue(p.node, profile.TermRange, r)
}

// InverseOf returns the property declared inverse to p, in either
// direction.
func (p *Property) InverseOf() (*Property, bool, error) {
	n, ok, err := p.model.value(p.node, profile.TermInverseOf)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		subjects, err := p.model.subjectsOf(profile.TermInverseOf, p.node)
		if err != nil || len(subjects) == 0 {
			return nil, false, err
		}
		n = subjects[0]
	}
	if !n.IsResource() {
		return nil, false, nil
	}
	return &Property{Resource: newResource(p.model, n)}, true, nil
}

// SetInverseOf replaces the inverse of p.
func (p *Property) SetInverseOf(inverse store.Node) error {
	if err := mustResource(inverse, "inverse property"); err != nil {
		return err
	}
	return p.model.setValue(p.node, profile.TermInverseOf, inverse)
}

// EquivalentProperties returns the properties declared equivalent to p.
func (p *Property) EquivalentProperties() ([]*Property, error) {
	nodes, err := p.model.values(p.node, profile.TermEquivalentProperty)
	if err != nil {
		return nil, err
	}
	return p.model.properties(resourcesOnly(nodes)), nil
}

// AddEquivalentProperty declares other equivalent to p.
func (p *Property) AddEquivalentProperty(other store.Node) error {
	if err := mustResource(other, "equivalent property"); err != nil {
		return err
	}
	return p.model.addValue(p.node, profile.TermEquivalentProperty, other)
}

// IsObjectProperty reports whether p relates individuals.
func (p *Property) IsObjectProperty() bool { return p.CanAs(profile.FacetObjectProperty) }

// IsDatatypeProperty reports whether p relates individuals to data values.
func (p *Property) IsDatatypeProperty() bool { return p.CanAs(profile.FacetDatatypeProperty) }

// IsAnnotationProperty reports whether p is an annotation property.
func (p *Property) IsAnnotationProperty() bool { return p.CanAs(profile.FacetAnnotationProperty) }

// IsOntologyProperty reports whether p relates ontologies.
func (p *Property) IsOntologyProperty() bool { return p.CanAs(profile.FacetOntologyProperty) }

// IsFunctional reports whether p has at most one value per subject.
func (p *Property) IsFunctional() bool { return p.CanAs(profile.FacetFunctionalProperty) }

// IsTransitive reports whether p is transitive.
func (p *Property) IsTransitive() bool { return p.CanAs(profile.FacetTransitiveProperty) }

// IsSymmetric reports whether p is symmetric.
func (p *Property) IsSymmetric() bool { return p.CanAs(profile.FacetSymmetricProperty) }

// IsInverseFunctional reports whether p's object identifies its subject.
func (p *Property) IsInverseFunctional() bool {
	return p.CanAs(profile.FacetInverseFunctionalProperty)
}

// ConvertToFunctional types p as a functional property.
func (p *Property) ConvertToFunctional() (*Property, error) {
	return p.convertTo(profile.TermFunctionalProperty)
}

// ConvertToTransitive types p as a transitive property.
func (p *Property) ConvertToTransitive() (*Property, error) {
	return p.convertTo(profile.TermTransitiveProperty)
}

// ConvertToSymmetric types p as a symmetric property.
func (p *Property) ConvertToSymmetric() (*Property, error) {
	return p.convertTo(profile.TermSymmetricProperty)
}

// ConvertToInverseFunctional types p as an inverse functional property.
func (p *Property) ConvertToInverseFunctional() (*Property, error) {
	return p.convertTo(profile.TermInverseFunctionalProperty)
}

func (p *Property) convertTo(name profile.Term) (*Property, error) {
	t, err := checkedProperty(p.model.profile, name)
	if err != nil {
		return nil, err
	}
	if err := p.model.Add(store.NewTriple(p.node, vocab.RDFType, t)); err != nil {
		return nil, err
	}
	return p, nil
}

func (m *Model) superPropertiesOf(n store.Node) []store.Node {
	values, err := m.values(n, profile.TermSubPropertyOf)
	if err != nil {
		return nil
	}
	return resourcesOnly(values)
}

func (m *Model) subPropertiesOf(n store.Node) []store.Node {
	subjects, err := m.subjectsOf(profile.TermSubPropertyOf, n)
	if err != nil {
		return nil
	}
	return subjects
}

func (m *Model) properties(nodes []store.Node) []*Property {
	out := make([]*Property, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &Property{Resource: newResource(m, n)})
	}
	return out
}
