package ont

import (
	"github.com/coolbeans/ontograph/pkg/errors"
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
)

// ClassKind tags the form of a class expression.
type ClassKind int

const (
	KindNamed ClassKind = iota
	KindAnonymous
	KindUnion
	KindIntersection
	KindComplement
	KindEnumerated
	KindRestriction
)

var classKindNames = [...]string{
	KindNamed:        "Class",
	KindAnonymous:    "Anonymous",
	KindUnion:        "Union",
	KindIntersection: "Intersection",
	KindComplement:   "Complement",
	KindEnumerated:   "Enumerated",
	KindRestriction:  "Restriction",
}

func (k ClassKind) String() string {
	if k < 0 || int(k) >= len(classKindNames) {
		return "Unknown"
	}
	return classKindNames[k]
}

// RestrictionKind names the constraint a restriction places on its
// property.
type RestrictionKind int

const (
	RestrictionNone RestrictionKind = iota
	RestrictionAllValuesFrom
	RestrictionSomeValuesFrom
	RestrictionHasValue
	RestrictionCardinality
	RestrictionMinCardinality
	RestrictionMaxCardinality
)

var restrictionTerms = []struct {
	kind RestrictionKind
	term profile.Term
	name string
}{
	{RestrictionAllValuesFrom, profile.TermAllValuesFrom, "allValuesFrom"},
	{RestrictionSomeValuesFrom, profile.TermSomeValuesFrom, "someValuesFrom"},
	{RestrictionHasValue, profile.TermHasValue, "hasValue"},
	{RestrictionCardinality, profile.TermCardinality, "cardinality"},
	{RestrictionMinCardinality, profile.TermMinCardinality, "minCardinality"},
	{RestrictionMaxCardinality, profile.TermMaxCardinality, "maxCardinality"},
}

func (k RestrictionKind) String() string {
	for _, rt := range restrictionTerms {
		if rt.kind == k {
			return rt.name
		}
	}
	return "none"
}

// Class is a view over a class expression of any kind. Kind reports which
// one; the accessors for other kinds fail with an error.
type Class struct {
	*Resource
	hint ClassKind
}

// Kind classifies the expression from its triples. A view created by a
// lax conversion reports the requested kind when the triples say nothing
// more specific.
func (c *Class) Kind() ClassKind {
	p, g := c.model.profile, c.model
	switch {
	case p.HasType(c.node, g, profile.TermRestriction):
		return KindRestriction
	case p.HasProperty(c.node, g, profile.TermUnionOf):
		return KindUnion
	case p.HasProperty(c.node, g, profile.TermIntersectionOf):
		return KindIntersection
	case p.HasProperty(c.node, g, profile.TermComplementOf):
		return KindComplement
	case p.HasProperty(c.node, g, profile.TermOneOf):
		return KindEnumerated
	case c.hint != KindNamed:
		return c.hint
	case c.node.IsBlank():
		return KindAnonymous
	default:
		return KindNamed
	}
}

// IsRestriction reports whether the class is a property restriction.
func (c *Class) IsRestriction() bool { return c.Kind() == KindRestriction }

// AsRestriction views the class as a restriction.
func (c *Class) AsRestriction() (*Class, error) {
	v, err := c.As(profile.FacetRestriction)
	if err != nil {
		return nil, err
	}
	return v.(*Class), nil
}

// SuperClasses returns the directly asserted superclasses, or with closed
// the reflexive-transitive closure along subClassOf, the class itself
// included.
func (c *Class) SuperClasses(closed bool) ([]*Class, error) {
	if _, err := checkedProperty(c.model.profile, profile.TermSubClassOf); err != nil {
		return nil, err
	}
	if closed {
		return c.model.classes(sortedNodes(c.model.superClassClosure(c.node))), nil
	}
	return c.model.classes(c.model.superClassesOf(c.node)), nil
}

// SubClasses mirrors SuperClasses in the other direction.
func (c *Class) SubClasses(closed bool) ([]*Class, error) {
	if _, err := checkedProperty(c.model.profile, profile.TermSubClassOf); err != nil {
		return nil, err
	}
	if closed {
		return c.model.classes(sortedNodes(closure(c.node, c.model.subClassesOf))), nil
	}
	return c.model.classes(c.model.subClassesOf(c.node)), nil
}

// HasSuperClass reports whether super is among SuperClasses(closed).
func (c *Class) HasSuperClass(super store.Node, closed bool) (bool, error) {
	supers, err := c.SuperClasses(closed)
	if err != nil {
		return false, err
	}
	return containsView(supers, super), nil
}

// HasSubClass reports whether sub is among SubClasses(closed).
func (c *Class) HasSubClass(sub store.Node, closed bool) (bool, error) {
	subs, err := c.SubClasses(closed)
	if err != nil {
		return false, err
	}
	return containsView(subs, sub), nil
}

// AddSuperClass asserts c subClassOf super.
func (c *Class) AddSuperClass(super store.Node) error {
	if err := mustResource(super, "superclass"); err != nil {
		return err
	}
	return c.model.addValue(c.node, profile.TermSubClassOf, super)
}

// RemoveSuperClass retracts c subClassOf super, under any alias.
func (c *Class) RemoveSuperClass(super store.Node) error {
	return c.model.removeValue(c.node, profile.TermSubClassOf, super)
}

// AddSubClass asserts sub subClassOf c.
func (c *Class) AddSubClass(sub store.Node) error {
	if err := mustResource(sub, "subclass"); err != nil {
		return err
	}
	return c.model.addValue(sub, profile.TermSubClassOf, c.node)
}

// IsHierarchyRoot reports whether c is a named class whose only direct
// superclasses are itself or the universal class.
func (c *Class) IsHierarchyRoot() bool {
	p := c.model.profile
	if c.node.IsBlank() || p.IsTerm(c.node, profile.TermThing) || p.IsTerm(c.node, profile.TermNothing) {
		return false
	}
	for _, s := range c.model.superClassesOf(c.node) {
		if s != c.node && !p.IsTerm(s, profile.TermThing) {
			return false
		}
	}
	return true
}

// EquivalentClasses returns the classes declared equivalent to c.
func (c *Class) EquivalentClasses() ([]*Class, error) {
	nodes, err := c.model.values(c.node, profile.TermEquivalentClass)
	if err != nil {
		return nil, err
	}
	return c.model.classes(resourcesOnly(nodes)), nil
}

// AddEquivalentClass declares other equivalent to c.
func (c *Class) AddEquivalentClass(other store.Node) error {
	if err := mustResource(other, "equivalent class"); err != nil {
		return err
	}
	return c.model.addValue(c.node, profile.TermEquivalentClass, other)
}

// DisjointWith returns the classes declared disjoint with c in either
// direction.
func (c *Class) DisjointWith() ([]*Class, error) {
	out, err := c.model.values(c.node, profile.TermDisjointWith)
	if err != nil {
		return nil, err
	}
	in, err := c.model.subjectsOf(profile.TermDisjointWith, c.node)
	if err != nil {
		return nil, err
	}
	return c.model.classes(dedupe(append(resourcesOnly(out), in...))), nil
}

// AddDisjointWith declares other disjoint with c.
func (c *Class) AddDisjointWith(other store.Node) error {
	if err := mustResource(other, "disjoint class"); err != nil {
		return err
	}
	return c.model.addValue(c.node, profile.TermDisjointWith, other)
}

// Instances returns the individuals typed by c, or with direct false by c
// or any of its subclasses.
func (c *Class) Instances(direct bool) []*Individual {
	classes := []store.Node{c.node}
	if !direct {
		classes = closure(c.node, c.model.subClassesOf)
	}
	var nodes []store.Node
	for _, cls := range classes {
		nodes = append(nodes, c.model.instancesOf(cls)...)
	}
	nodes = sortedNodes(dedupe(nodes))
	out := make([]*Individual, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &Individual{Resource: newResource(c.model, n)})
	}
	return out
}

// Operands returns the members of a union or intersection class. In
// strict mode every member must resolve as a class.
func (c *Class) Operands() ([]*Class, error) {
	term, err := c.operandTerm()
	if err != nil {
		return nil, err
	}
	members, err := c.model.listValue(c.node, term)
	if err != nil {
		return nil, err
	}
	if err := c.model.checkMembers(c.node, members, profile.FacetClass); err != nil {
		return nil, err
	}
	return c.model.classes(resourcesOnly(members)), nil
}

// AddOperand appends a member to a union or intersection class.
func (c *Class) AddOperand(operand store.Node) error {
	term, err := c.operandTerm()
	if err != nil {
		return err
	}
	if err := mustResource(operand, "operand"); err != nil {
		return err
	}
	return c.model.appendListValue(c.node, term, operand)
}

// SetOperands replaces the members of a union or intersection class.
func (c *Class) SetOperands(operands []store.Node) error {
	term, err := c.operandTerm()
	if err != nil {
		return err
	}
	for _, o := range operands {
		if err := mustResource(o, "operand"); err != nil {
			return err
		}
	}
	return c.model.setListValue(c.node, term, operands)
}

func (c *Class) operandTerm() (profile.Term, error) {
	switch c.Kind() {
	case KindUnion:
		return profile.TermUnionOf, nil
	case KindIntersection:
		return profile.TermIntersectionOf, nil
	default:
		return "", errors.Newf("%s is a %s class, not a union or intersection", c.node, c.Kind())
	}
}

// Operand returns the class a complement class negates.
func (c *Class) Operand() (*Class, error) {
	if err := c.requireKind(KindComplement); err != nil {
		return nil, err
	}
	n, ok, err := c.model.value(c.node, profile.TermComplementOf)
	if err != nil {
		return nil, err
	}
	if !ok || !n.IsResource() {
		return nil, errors.NewConsistencyError(c.node.String(), "complement class has no operand")
	}
	if err := c.model.checkMembers(c.node, []store.Node{n}, profile.FacetClass); err != nil {
		return nil, err
	}
	return c.model.class(n), nil
}

// SetOperand replaces the class a complement class negates.
func (c *Class) SetOperand(operand store.Node) error {
	if err := c.requireKind(KindComplement); err != nil {
		return err
	}
	if err := mustResource(operand, "operand"); err != nil {
		return err
	}
	return c.model.setValue(c.node, profile.TermComplementOf, operand)
}

// OneOf returns the individuals an enumerated class consists of.
func (c *Class) OneOf() ([]*Individual, error) {
	if err := c.requireKind(KindEnumerated); err != nil {
		return nil, err
	}
	members, err := c.model.listValue(c.node, profile.TermOneOf)
	if err != nil {
		return nil, err
	}
	if err := c.model.checkMembers(c.node, members, profile.FacetIndividual); err != nil {
		return nil, err
	}
	out := make([]*Individual, 0, len(members))
	for _, n := range resourcesOnly(members) {
		out = append(out, &Individual{Resource: newResource(c.model, n)})
	}
	return out, nil
}

// AddOneOf appends an individual to an enumerated class.
func (c *Class) AddOneOf(individual store.Node) error {
	if err := c.requireKind(KindEnumerated); err != nil {
		return err
	}
	if err := mustResource(individual, "enumerated member"); err != nil {
		return err
	}
	return c.model.appendListValue(c.node, profile.TermOneOf, individual)
}

// RestrictionKind reports which constraint a restriction carries.
func (c *Class) RestrictionKind() RestrictionKind {
	if !c.IsRestriction() {
		return RestrictionNone
	}
	for _, rt := range restrictionTerms {
		if c.model.profile.HasProperty(c.node, c.model, rt.term) {
			return rt.kind
		}
	}
	return RestrictionNone
}

// OnProperty returns the property a restriction constrains.
func (c *Class) OnProperty() (*Property, error) {
	if err := c.requireKind(KindRestriction); err != nil {
		return nil, err
	}
	n, ok, err := c.model.value(c.node, profile.TermOnProperty)
	if err != nil {
		return nil, err
	}
	if !ok || !n.IsResource() {
		return nil, errors.NewConsistencyError(c.node.String(), "restriction has no onProperty")
	}
	return &Property{Resource: newResource(c.model, n)}, nil
}

// SetOnProperty replaces the property a restriction constrains.
func (c *Class) SetOnProperty(property store.Node) error {
	if err := c.requireKind(KindRestriction); err != nil {
		return err
	}
	if err := mustResource(property, "onProperty"); err != nil {
		return err
	}
	return c.model.setValue(c.node, profile.TermOnProperty, property)
}

// AllValuesFrom returns the class every value must belong to.
func (c *Class) AllValuesFrom() (store.Node, bool, error) {
	return c.restrictionValue(profile.TermAllValuesFrom)
}

// SetAllValuesFrom replaces the allValuesFrom class.
func (c *Class) SetAllValuesFrom(class store.Node) error {
	return c.setRestrictionValue(profile.TermAllValuesFrom, class)
}

// SomeValuesFrom returns the class some value must belong to.
func (c *Class) SomeValuesFrom() (store.Node, bool, error) {
	return c.restrictionValue(profile.TermSomeValuesFrom)
}

// SetSomeValuesFrom replaces the someValuesFrom class.
func (c *Class) SetSomeValuesFrom(class store.Node) error {
	return c.setRestrictionValue(profile.TermSomeValuesFrom, class)
}

// HasValue returns the value the property must take.
func (c *Class) HasValue() (store.Node, bool, error) {
	return c.restrictionValue(profile.TermHasValue)
}

// SetHasValue replaces the hasValue value.
func (c *Class) SetHasValue(value store.Node) error {
	return c.setRestrictionValue(profile.TermHasValue, value)
}

// Cardinality returns the exact cardinality.
func (c *Class) Cardinality() (int, error) {
	if err := c.requireKind(KindRestriction); err != nil {
		return 0, err
	}
	return c.model.intValue(c.node, profile.TermCardinality)
}

// SetCardinality replaces the exact cardinality.
func (c *Class) SetCardinality(n int) error {
	if err := c.requireKind(KindRestriction); err != nil {
		return err
	}
	return c.model.setIntValue(c.node, profile.TermCardinality, n)
}

// MinCardinality returns the minimum cardinality.
func (c *Class) MinCardinality() (int, error) {
	if err := c.requireKind(KindRestriction); err != nil {
		return 0, err
	}
	return c.model.intValue(c.node, profile.TermMinCardinality)
}

// SetMinCardinality replaces the minimum cardinality.
func (c *Class) SetMinCardinality(n int) error {
	if err := c.requireKind(KindRestriction); err != nil {
		return err
	}
	return c.model.setIntValue(c.node, profile.TermMinCardinality, n)
}

// MaxCardinality returns the maximum cardinality.
func (c *Class) MaxCardinality() (int, error) {
	if err := c.requireKind(KindRestriction); err != nil {
		return 0, err
	}
	return c.model.intValue(c.node, profile.TermMaxCardinality)
}

// SetMaxCardinality replaces the maximum cardinality.
func (c *Class) SetMaxCardinality(n int) error {
	if err := c.requireKind(KindRestriction); err != nil {
		return err
	}
	return c.model.setIntValue(c.node, profile.TermMaxCardinality, n)
}

func (c *Class) restrictionValue(name profile.Term) (store.Node, bool, error) {
	if err := c.requireKind(KindRestriction); err != nil {
		return store.Node{}, false, err
	}
	return c.model.value(c.node, name)
}

func (c *Class) setRestrictionValue(name profile.Term, value store.Node) error {
	if err := c.requireKind(KindRestriction); err != nil {
		return err
	}
	return c.model.setValue(c.node, name, value)
}

func (c *Class) requireKind(kind ClassKind) error {
	if got := c.Kind(); got != kind {
		return errors.Newf("%s is a %s class, not a %s class", c.node, got, kind)
	}
	return nil
}

// superClassesOf returns the direct superclasses of n, aliases included.
func (m *Model) superClassesOf(n store.Node) []store.Node {
	values, err := m.values(n, profile.TermSubClassOf)
	if err != nil {
		return nil
	}
	return resourcesOnly(values)
}

// subClassesOf returns the direct subclasses of n, aliases included.
func (m *Model) subClassesOf(n store.Node) []store.Node {
	subjects, err := m.subjectsOf(profile.TermSubClassOf, n)
	if err != nil {
		return nil
	}
	return subjects
}

func (m *Model) superClassClosure(n store.Node) []store.Node {
	return closure(n, m.superClassesOf)
}

func (m *Model) class(n store.Node) *Class {
	return &Class{Resource: newResource(m, n)}
}

func (m *Model) classes(nodes []store.Node) []*Class {
	out := make([]*Class, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, m.class(n))
	}
	return out
}

type noder interface{ Node() store.Node }

func containsView[V noder](views []V, n store.Node) bool {
	for _, v := range views {
		if v.Node() == n {
			return true
		}
	}
	return false
}

func dedupe(nodes []store.Node) []store.Node {
	seen := make(map[store.Node]bool, len(nodes))
	out := nodes[:0:0]
	for _, n := range nodes {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
