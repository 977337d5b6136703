package ont

import (
	"fmt"

	"github.com/coolbeans/ontograph/pkg/errors"
	"github.com/coolbeans/ontograph/pkg/logger"
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
)

// checkMembers requires, in strict mode, every member to resolve as key.
func (m *Model) checkMembers(owner store.Node, members []store.Node, key profile.FacetKey) error {
	if !m.Strict() {
		return nil
	}
	return m.validateMembers(owner, members, key)
}

func (m *Model) validateMembers(owner store.Node, members []store.Node, key profile.FacetKey) error {
	for _, n := range members {
		if !m.engine.CanResolve(n, m, key) {
			return errors.NewConsistencyError(owner.String(),
				fmt.Sprintf("member %s is not a %s", n, key))
		}
	}
	return nil
}

// Validate runs the structural consistency checks over the union
// regardless of strict mode and returns every violation found:
//   - union and intersection operands must be classes
//   - complement operands must be classes
//   - enumerated class and AllDifferent members must be individuals
//   - restrictions must name a property
//   - the lists involved must be well formed
func (m *Model) Validate() []error {
	var errs []error
	report := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	for _, c := range m.ListClasses() {
		switch c.Kind() {
		case KindUnion:
			report(m.validateList(c.node, profile.TermUnionOf, profile.FacetClass))
		case KindIntersection:
			report(m.validateList(c.node, profile.TermIntersectionOf, profile.FacetClass))
		case KindEnumerated:
			report(m.validateList(c.node, profile.TermOneOf, profile.FacetIndividual))
		case KindComplement:
			if n, ok, _ := m.value(c.node, profile.TermComplementOf); ok {
				report(m.validateMembers(c.node, []store.Node{n}, profile.FacetClass))
			}
		}
	}
	for _, r := range m.ListRestrictions() {
		if n, ok, _ := m.value(r.node, profile.TermOnProperty); !ok || !n.IsResource() {
			report(errors.NewConsistencyError(r.node.String(), "restriction has no onProperty"))
		}
	}
	for _, a := range m.ListAllDifferent() {
		report(m.validateList(a.node, profile.TermDistinctMembers, profile.FacetIndividual))
	}

	if len(errs) > 0 {
		logger.Infow("consistency violations found",
			logger.FieldCount, len(errs),
			logger.FieldLanguage, m.profile.Language())
	}
	return errs
}

func (m *Model) validateList(owner store.Node, name profile.Term, key profile.FacetKey) error {
	members, err := m.listValue(owner, name)
	if err != nil {
		return err
	}
	return m.validateMembers(owner, members, key)
}
