package ont

import (
	"github.com/coolbeans/ontograph/pkg/errors"
	"github.com/coolbeans/ontograph/pkg/facet"
	"github.com/coolbeans/ontograph/pkg/logger"
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
	"github.com/coolbeans/ontograph/pkg/vocab"
)

// nodeFor returns the URI node for uri, or a fresh blank node when uri is
// empty.
func nodeFor(uri string) store.Node {
	if uri == "" {
		return store.NewBlank()
	}
	return store.URI(uri)
}

// prepare checks typeTerm and every term in needs against the profile
// and picks the node to create. Nothing is written.
func (m *Model) prepare(uri string, typeTerm profile.Term, needs ...profile.Term) (store.Node, map[profile.Term]store.Node, error) {
	terms, err := checkedTerms(m.profile, append([]profile.Term{typeTerm}, needs...)...)
	if err != nil {
		logger.Debugw("create refused by profile",
			logger.FieldURI, uri,
			logger.FieldLanguage, m.profile.Language(),
			logger.FieldError, err.Error())
		return store.Node{}, nil, err
	}
	return nodeFor(uri), terms, nil
}

// create types the node in the base graph once the profile check passes.
func (m *Model) create(uri string, typeTerm profile.Term, needs ...profile.Term) (store.Node, map[profile.Term]store.Node, error) {
	node, terms, err := m.prepare(uri, typeTerm, needs...)
	if err != nil {
		return store.Node{}, nil, err
	}
	if err := m.commit(store.NewTriple(node, vocab.RDFType, terms[typeTerm])); err != nil {
		return store.Node{}, nil, err
	}
	return node, terms, nil
}

// commit asserts every triple or none: all are validated first, and the
// ones this call added are retracted if a write still fails.
func (m *Model) commit(triples ...store.Triple) error {
	for _, t := range triples {
		if !t.IsValid() {
			return errors.Newf("invalid triple %s", t.NTriples())
		}
	}
	base := m.BaseGraph()
	var added []store.Triple
	for _, t := range triples {
		if base.Contains(t.Subject, t.Predicate, t.Object) {
			continue
		}
		if err := m.Add(t); err != nil {
			for _, a := range added {
				base.Remove(a.Subject, a.Predicate, a.Object)
			}
			return err
		}
		added = append(added, t)
	}
	return nil
}

// createWithList types a node by typeTerm and links it to a new list of
// members under listTerm. The list cells and both links are written
// together or not at all.
func (m *Model) createWithList(uri string, typeTerm, listTerm profile.Term, members []store.Node) (store.Node, error) {
	node, terms, err := m.prepare(uri, typeTerm, listTerm, profile.TermFirst, profile.TermRest, profile.TermNil)
	if err != nil {
		return store.Node{}, err
	}
	head, cells, err := m.listTriples(members)
	if err != nil {
		return store.Node{}, err
	}
	triples := append(cells,
		store.NewTriple(node, vocab.RDFType, terms[typeTerm]),
		store.NewTriple(node, terms[listTerm], head))
	if err := m.commit(triples...); err != nil {
		return store.Node{}, err
	}
	return node, nil
}

func requireValues(what string, nodes ...store.Node) error {
	for _, n := range nodes {
		if n.IsAny() {
			return errors.Newf("%s must be a concrete node, got %s", what, n)
		}
	}
	return nil
}

func requireResources(what string, nodes ...store.Node) error {
	for _, n := range nodes {
		if err := mustResource(n, what); err != nil {
			return err
		}
	}
	return nil
}

// CreateClass types uri as a class. An empty uri creates an anonymous
// class.
func (m *Model) CreateClass(uri string) (*Class, error) {
	node, _, err := m.create(uri, profile.TermClass)
	if err != nil {
		return nil, err
	}
	return m.class(node), nil
}

// CreateRestriction creates a restriction on property with no constraint
// yet.
func (m *Model) CreateRestriction(uri string, property store.Node) (*Class, error) {
	return m.createRestriction(uri, property, "", store.Node{})
}

// CreateAllValuesFromRestriction creates a restriction requiring every
// value of property to belong to class.
func (m *Model) CreateAllValuesFromRestriction(uri string, property, class store.Node) (*Class, error) {
	if err := mustResource(class, "allValuesFrom class"); err != nil {
		return nil, err
	}
	return m.createRestriction(uri, property, profile.TermAllValuesFrom, class)
}

// CreateSomeValuesFromRestriction creates a restriction requiring some
// value of property to belong to class.
func (m *Model) CreateSomeValuesFromRestriction(uri string, property, class store.Node) (*Class, error) {
	if err := mustResource(class, "someValuesFrom class"); err != nil {
		return nil, err
	}
	return m.createRestriction(uri, property, profile.TermSomeValuesFrom, class)
}

// CreateHasValueRestriction creates a restriction requiring property to
// take value.
func (m *Model) CreateHasValueRestriction(uri string, property, value store.Node) (*Class, error) {
	if value.IsAny() {
		return nil, errors.New("hasValue restriction needs a value")
	}
	return m.createRestriction(uri, property, profile.TermHasValue, value)
}

// CreateCardinalityRestriction creates a restriction fixing the number of
// values of property.
func (m *Model) CreateCardinalityRestriction(uri string, property store.Node, n int) (*Class, error) {
	return m.createCardinality(uri, property, profile.TermCardinality, n)
}

// CreateMinCardinalityRestriction creates a lower bound on the number of
// values of property.
func (m *Model) CreateMinCardinalityRestriction(uri string, property store.Node, n int) (*Class, error) {
	return m.createCardinality(uri, property, profile.TermMinCardinality, n)
}

// CreateMaxCardinalityRestriction creates an upper bound on the number of
// values of property.
func (m *Model) CreateMaxCardinalityRestriction(uri string, property store.Node, n int) (*Class, error) {
	return m.createCardinality(uri, property, profile.TermMaxCardinality, n)
}

func (m *Model) createCardinality(uri string, property store.Node, name profile.Term, n int) (*Class, error) {
	if n < 0 {
		return nil, errors.Newf("%s must be non-negative, got %d", name, n)
	}
	return m.createRestriction(uri, property, name, cardinalityLiteral(n))
}

func (m *Model) createRestriction(uri string, property store.Node, variant profile.Term, value store.Node) (*Class, error) {
	if err := mustResource(property, "onProperty"); err != nil {
		return nil, err
	}
	needs := []profile.Term{profile.TermOnProperty}
	if variant != "" {
		needs = append(needs, variant)
	}
	node, terms, err := m.prepare(uri, profile.TermRestriction, needs...)
	if err != nil {
		return nil, err
	}
	triples := []store.Triple{
		store.NewTriple(node, vocab.RDFType, terms[profile.TermRestriction]),
		store.NewTriple(node, terms[profile.TermOnProperty], property),
	}
	if variant != "" {
		triples = append(triples, store.NewTriple(node, terms[variant], value))
	}
	if err := m.commit(triples...); err != nil {
		return nil, err
	}
	return &Class{Resource: newResource(m, node), hint: KindRestriction}, nil
}

// CreateUnionClass creates a class whose extension is the union of
// members.
func (m *Model) CreateUnionClass(uri string, members []store.Node) (*Class, error) {
	return m.createListClass(uri, profile.TermUnionOf, KindUnion, members)
}

// CreateIntersectionClass creates a class whose extension is the
// intersection of members.
func (m *Model) CreateIntersectionClass(uri string, members []store.Node) (*Class, error) {
	return m.createListClass(uri, profile.TermIntersectionOf, KindIntersection, members)
}

// CreateEnumeratedClass creates a class consisting of exactly the given
// individuals.
func (m *Model) CreateEnumeratedClass(uri string, individuals []store.Node) (*Class, error) {
	return m.createListClass(uri, profile.TermOneOf, KindEnumerated, individuals)
}

// CreateComplementClass creates the class of everything not in operand.
func (m *Model) CreateComplementClass(uri string, operand store.Node) (*Class, error) {
	if err := mustResource(operand, "complement operand"); err != nil {
		return nil, err
	}
	node, terms, err := m.prepare(uri, profile.TermClass, profile.TermComplementOf)
	if err != nil {
		return nil, err
	}
	if err := m.commit(
		store.NewTriple(node, vocab.RDFType, terms[profile.TermClass]),
		store.NewTriple(node, terms[profile.TermComplementOf], operand),
	); err != nil {
		return nil, err
	}
	return &Class{Resource: newResource(m, node), hint: KindComplement}, nil
}

func (m *Model) createListClass(uri string, name profile.Term, kind ClassKind, members []store.Node) (*Class, error) {
	if err := requireResources(string(name)+" member", members...); err != nil {
		return nil, err
	}
	node, err := m.createWithList(uri, profile.TermClass, name, members)
	if err != nil {
		return nil, err
	}
	return &Class{Resource: newResource(m, node), hint: kind}, nil
}

// CreateOntProperty types uri as a plain property.
func (m *Model) CreateOntProperty(uri string) (*Property, error) {
	return m.createProperty(uri, profile.TermProperty, false)
}

// CreateObjectProperty types uri as an object property, and as functional
// when functional is set.
func (m *Model) CreateObjectProperty(uri string, functional bool) (*Property, error) {
	return m.createProperty(uri, profile.TermObjectProperty, functional)
}

// CreateDatatypeProperty types uri as a datatype property, and as
// functional when functional is set.
func (m *Model) CreateDatatypeProperty(uri string, functional bool) (*Property, error) {
	return m.createProperty(uri, profile.TermDatatypeProperty, functional)
}

// CreateAnnotationProperty types uri as an annotation property.
func (m *Model) CreateAnnotationProperty(uri string) (*Property, error) {
	return m.createProperty(uri, profile.TermAnnotationProperty, false)
}

// CreateOntologyProperty types uri as an ontology property.
func (m *Model) CreateOntologyProperty(uri string) (*Property, error) {
	return m.createProperty(uri, profile.TermOntologyProperty, false)
}

// CreateTransitiveProperty types uri as a transitive property.
func (m *Model) CreateTransitiveProperty(uri string) (*Property, error) {
	return m.createProperty(uri, profile.TermTransitiveProperty, false)
}

// CreateSymmetricProperty types uri as a symmetric property.
func (m *Model) CreateSymmetricProperty(uri string) (*Property, error) {
	return m.createProperty(uri, profile.TermSymmetricProperty, false)
}

// CreateInverseFunctionalProperty types uri as an inverse functional
// property.
func (m *Model) CreateInverseFunctionalProperty(uri string) (*Property, error) {
	return m.createProperty(uri, profile.TermInverseFunctionalProperty, false)
}

func (m *Model) createProperty(uri string, typeTerm profile.Term, functional bool) (*Property, error) {
	var needs []profile.Term
	if functional {
		needs = append(needs, profile.TermFunctionalProperty)
	}
	node, terms, err := m.prepare(uri, typeTerm, needs...)
	if err != nil {
		return nil, err
	}
	triples := []store.Triple{store.NewTriple(node, vocab.RDFType, terms[typeTerm])}
	if functional {
		triples = append(triples, store.NewTriple(node, vocab.RDFType, terms[profile.TermFunctionalProperty]))
	}
	if err := m.commit(triples...); err != nil {
		return nil, err
	}
	return &Property{Resource: newResource(m, node)}, nil
}

// CreateIndividual types uri by class. An empty uri creates an anonymous
// individual.
func (m *Model) CreateIndividual(uri string, class store.Node) (*Individual, error) {
	if err := mustResource(class, "class"); err != nil {
		return nil, err
	}
	node := nodeFor(uri)
	if err := m.commit(store.NewTriple(node, vocab.RDFType, class)); err != nil {
		return nil, err
	}
	return &Individual{Resource: newResource(m, node)}, nil
}

// CreateOntology creates an ontology header for uri.
func (m *Model) CreateOntology(uri string) (*Ontology, error) {
	node, _, err := m.create(uri, profile.TermOntology)
	if err != nil {
		return nil, err
	}
	return &Ontology{Resource: newResource(m, node)}, nil
}

// CreateAllDifferent declares the individuals mutually distinct.
func (m *Model) CreateAllDifferent(individuals []store.Node) (*AllDifferent, error) {
	if err := requireResources("distinct member", individuals...); err != nil {
		return nil, err
	}
	node, err := m.createWithList("", profile.TermAllDifferent, profile.TermDistinctMembers, individuals)
	if err != nil {
		return nil, err
	}
	return &AllDifferent{Resource: newResource(m, node)}, nil
}

// CreateDataRange creates an enumerated range of data values.
func (m *Model) CreateDataRange(uri string, values []store.Node) (*DataRange, error) {
	if err := requireValues("data range value", values...); err != nil {
		return nil, err
	}
	node, err := m.createWithList(uri, profile.TermDataRange, profile.TermOneOf, values)
	if err != nil {
		return nil, err
	}
	return &DataRange{Resource: newResource(m, node)}, nil
}

// CreateList writes a new list holding members. An empty list is the
// profile's nil node.
func (m *Model) CreateList(members []store.Node) (*List, error) {
	head, err := m.buildList(members)
	if err != nil {
		return nil, err
	}
	return &List{Resource: newResource(m, head)}, nil
}

// Get returns uri viewed as key when the node occurs in the model and
// passes the structural test. It never creates anything.
func (m *Model) Get(uri string, key profile.FacetKey) (facet.View, bool) {
	node := store.URI(uri)
	if !m.mentions(node) {
		return nil, false
	}
	return m.engine.TryResolve(node, m, key)
}

func (m *Model) mentions(n store.Node) bool {
	return m.Contains(n, store.Any, store.Any) ||
		m.Contains(store.Any, store.Any, n) ||
		m.Contains(store.Any, n, store.Any)
}

func getView[V facet.View](m *Model, uri string, key profile.FacetKey) (V, bool) {
	var zero V
	v, ok := m.Get(uri, key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(V)
	return typed, ok
}

// GetOntResource returns uri as a plain resource.
func (m *Model) GetOntResource(uri string) (*Resource, bool) {
	return getView[*Resource](m, uri, profile.FacetResource)
}

// GetOntClass returns uri as a class.
func (m *Model) GetOntClass(uri string) (*Class, bool) {
	return getView[*Class](m, uri, profile.FacetClass)
}

// GetRestriction returns uri as a restriction.
func (m *Model) GetRestriction(uri string) (*Class, bool) {
	return getView[*Class](m, uri, profile.FacetRestriction)
}

// GetUnionClass returns uri as a union class.
func (m *Model) GetUnionClass(uri string) (*Class, bool) {
	return getView[*Class](m, uri, profile.FacetUnionClass)
}

// GetIntersectionClass returns uri as an intersection class.
func (m *Model) GetIntersectionClass(uri string) (*Class, bool) {
	return getView[*Class](m, uri, profile.FacetIntersectionClass)
}

// GetComplementClass returns uri as a complement class.
func (m *Model) GetComplementClass(uri string) (*Class, bool) {
	return getView[*Class](m, uri, profile.FacetComplementClass)
}

// GetEnumeratedClass returns uri as an enumerated class.
func (m *Model) GetEnumeratedClass(uri string) (*Class, bool) {
	return getView[*Class](m, uri, profile.FacetEnumeratedClass)
}

// GetOntProperty returns uri as a property of any kind.
func (m *Model) GetOntProperty(uri string) (*Property, bool) {
	return getView[*Property](m, uri, profile.FacetProperty)
}

// GetObjectProperty returns uri as an object property.
func (m *Model) GetObjectProperty(uri string) (*Property, bool) {
	return getView[*Property](m, uri, profile.FacetObjectProperty)
}

// GetDatatypeProperty returns uri as a datatype property.
func (m *Model) GetDatatypeProperty(uri string) (*Property, bool) {
	return getView[*Property](m, uri, profile.FacetDatatypeProperty)
}

// GetAnnotationProperty returns uri as an annotation property.
func (m *Model) GetAnnotationProperty(uri string) (*Property, bool) {
	return getView[*Property](m, uri, profile.FacetAnnotationProperty)
}

// GetOntologyProperty returns uri as an ontology property.
func (m *Model) GetOntologyProperty(uri string) (*Property, bool) {
	return getView[*Property](m, uri, profile.FacetOntologyProperty)
}

// GetFunctionalProperty returns uri as a functional property.
func (m *Model) GetFunctionalProperty(uri string) (*Property, bool) {
	return getView[*Property](m, uri, profile.FacetFunctionalProperty)
}

// GetTransitiveProperty returns uri as a transitive property.
func (m *Model) GetTransitiveProperty(uri string) (*Property, bool) {
	return getView[*Property](m, uri, profile.FacetTransitiveProperty)
}

// GetSymmetricProperty returns uri as a symmetric property.
func (m *Model) GetSymmetricProperty(uri string) (*Property, bool) {
	return getView[*Property](m, uri, profile.FacetSymmetricProperty)
}

// GetInverseFunctionalProperty returns uri as an inverse functional
// property.
func (m *Model) GetInverseFunctionalProperty(uri string) (*Property, bool) {
	return getView[*Property](m, uri, profile.FacetInverseFunctionalProperty)
}

// GetIndividual returns uri as an individual.
func (m *Model) GetIndividual(uri string) (*Individual, bool) {
	return getView[*Individual](m, uri, profile.FacetIndividual)
}

// GetOntology returns uri as an ontology header.
func (m *Model) GetOntology(uri string) (*Ontology, bool) {
	return getView[*Ontology](m, uri, profile.FacetOntology)
}

// GetDataRange returns uri as a data range.
func (m *Model) GetDataRange(uri string) (*DataRange, bool) {
	return getView[*DataRange](m, uri, profile.FacetDataRange)
}
