package profile

import (
	"github.com/coolbeans/ontograph/pkg/store"
	"github.com/coolbeans/ontograph/pkg/vocab"
)

// RDFS returns the RDF Schema profile. It knows classes, properties and
// lists, and nothing of restrictions, ontologies or property
// characteristics.
func RDFS() *Profile {
	terms := map[Term]store.Node{
		TermClass:         vocab.RDFSClass,
		TermProperty:      vocab.RDFProperty,
		TermList:          vocab.RDFList,
		TermNil:           vocab.RDFNil,
		TermFirst:         vocab.RDFFirst,
		TermRest:          vocab.RDFRest,
		TermSubClassOf:    vocab.RDFSSubClassOf,
		TermSubPropertyOf: vocab.RDFSSubPropertyOf,
		TermDomain:        vocab.RDFSDomain,
		TermRange:         vocab.RDFSRange,
		TermLabel:         vocab.RDFSLabel,
		TermComment:       vocab.RDFSComment,
		TermSeeAlso:       vocab.RDFSSeeAlso,
		TermIsDefinedBy:   vocab.RDFSIsDefinedBy,
	}
	class := anyOf(typedAs(TermClass), isTerm(TermClass), typedAsNode(vocab.RDFSDatatype))
	checks := map[FacetKey]SupportCheck{
		FacetResource:           isResource,
		FacetClass:              class,
		FacetProperty:           typedAs(TermProperty),
		FacetAnnotationProperty: isAnnotation,
		FacetIndividual:         allOf(isResource, not(typedAs(TermClass, TermProperty))),
		FacetList:               anyOf(isTerm(TermNil), hasProperty(TermFirst), typedAs(TermList)),
	}
	return New(Definition{
		Language:              LangRDFS,
		Label:                 "RDFS",
		Terms:                 terms,
		ClassDescriptionTypes: []Term{TermClass},
		AnnotationProperties:  []Term{TermLabel, TermComment, TermSeeAlso, TermIsDefinedBy},
		Checks:                checks,
	})
}
