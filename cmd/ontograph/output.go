package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/coolbeans/ontograph/pkg/ont"
	"github.com/coolbeans/ontograph/pkg/store"
)

func renderTable(rows [][]string) error {
	if len(rows) <= 1 {
		pterm.Info.Println("nothing to show")
		return nil
	}
	return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData(rows)).Render()
}

func labelOf(r *ont.Resource) string {
	if label, ok := r.Label(""); ok {
		return label
	}
	return ""
}

func joinClasses(classes []*ont.Class) string {
	names := make([]string, 0, len(classes))
	for _, c := range classes {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

func joinResources(resources []*ont.Resource) string {
	names := make([]string, 0, len(resources))
	for _, r := range resources {
		names = append(names, r.String())
	}
	return strings.Join(names, ", ")
}

func propertyKinds(p *ont.Property) string {
	var kinds []string
	for _, k := range []struct {
		name string
		is   func() bool
	}{
		{"object", p.IsObjectProperty},
		{"datatype", p.IsDatatypeProperty},
		{"annotation", p.IsAnnotationProperty},
		{"ontology", p.IsOntologyProperty},
		{"functional", p.IsFunctional},
		{"inverse-functional", p.IsInverseFunctional},
		{"transitive", p.IsTransitive},
		{"symmetric", p.IsSymmetric},
	} {
		if k.is() {
			kinds = append(kinds, k.name)
		}
	}
	return strings.Join(kinds, " ")
}

func printSummary(s *session) {
	m := s.model
	pterm.DefaultSection.Println(s.source)
	rows := [][]string{
		{"Property", "Value"},
		{"Language", m.Profile().Label()},
		{"Strict", fmt.Sprint(m.Strict())},
		{"Triples (base)", fmt.Sprint(m.BaseGraph().Count())},
		{"Triples (union)", fmt.Sprint(m.Count())},
		{"Resources", fmt.Sprint(len(store.Resources(m)))},
		{"Imported graphs", fmt.Sprint(m.CountSubGraphs())},
		{"Classes", fmt.Sprint(len(m.ListClasses()))},
		{"Named classes", fmt.Sprint(len(m.ListNamedClasses()))},
		{"Restrictions", fmt.Sprint(len(m.ListRestrictions()))},
		{"Properties", fmt.Sprint(len(m.ListOntProperties()))},
		{"Individuals", fmt.Sprint(len(m.ListIndividuals()))},
		{"Ontologies", fmt.Sprint(len(m.ListOntologies()))},
	}
	if err := renderTable(rows); err != nil {
		pterm.Error.Println(err)
	}
	if state := m.LastReadState(); state != nil && len(state.Results) > 0 {
		fmt.Println(state.String())
	}
}

func printMetrics(s *session) error {
	families, err := s.registry.Gather()
	if err != nil {
		return err
	}
	rows := [][]string{{"Metric", "Value"}}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			rows = append(rows, []string{mf.GetName(), fmt.Sprint(metric.GetCounter().GetValue())})
		}
	}
	return renderTable(rows)
}
