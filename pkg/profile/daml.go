package profile

import (
	"github.com/coolbeans/ontograph/pkg/store"
	"github.com/coolbeans/ontograph/pkg/vocab"
)

// DAML returns the DAML+OIL (March 2001) profile. Terms from the December
// 2000 namespace and the daml: copies of RDF Schema terms are accepted as
// aliases.
func DAML() *Profile {
	terms := map[Term]store.Node{
		TermClass:                     vocab.DAMLClass,
		TermRestriction:               vocab.DAMLRestriction,
		TermThing:                     vocab.DAMLThing,
		TermNothing:                   vocab.DAMLNothing,
		TermProperty:                  vocab.RDFProperty,
		TermObjectProperty:            vocab.DAMLObjectProperty,
		TermDatatypeProperty:          vocab.DAMLDatatypeProperty,
		TermTransitiveProperty:        vocab.DAMLTransitiveProperty,
		TermFunctionalProperty:        vocab.DAMLUniqueProperty,
		TermInverseFunctionalProperty: vocab.DAMLUnambiguousProperty,
		TermOntology:                  vocab.DAMLOntology,
		TermList:                      vocab.DAMLList,
		TermNil:                       vocab.DAMLNil,
		TermFirst:                     vocab.DAMLFirst,
		TermRest:                      vocab.DAMLRest,
		TermEquivalentClass:           vocab.DAMLSameClassAs,
		TermEquivalentProperty:        vocab.DAMLSamePropertyAs,
		TermDisjointWith:              vocab.DAMLDisjointWith,
		TermSameAs:                    vocab.DAMLEquivalentTo,
		TermSameIndividualAs:          vocab.DAMLSameIndividualAs,
		TermDifferentFrom:             vocab.DAMLDifferentIndividualFrom,
		TermUnionOf:                   vocab.DAMLUnionOf,
		TermIntersectionOf:            vocab.DAMLIntersectionOf,
		TermComplementOf:              vocab.DAMLComplementOf,
		TermOneOf:                     vocab.DAMLOneOf,
		TermOnProperty:                vocab.DAMLOnProperty,
		TermAllValuesFrom:             vocab.DAMLToClass,
		TermSomeValuesFrom:            vocab.DAMLHasClass,
		TermHasValue:                  vocab.DAMLHasValue,
		TermCardinality:               vocab.DAMLCardinality,
		TermMinCardinality:            vocab.DAMLMinCardinality,
		TermMaxCardinality:            vocab.DAMLMaxCardinality,
		TermInverseOf:                 vocab.DAMLInverseOf,
		TermImports:                   vocab.DAMLImports,
		TermVersionInfo:               vocab.DAMLVersionInfo,
		TermSubClassOf:                vocab.RDFSSubClassOf,
		TermSubPropertyOf:             vocab.RDFSSubPropertyOf,
		TermDomain:                    vocab.RDFSDomain,
		TermRange:                     vocab.RDFSRange,
		TermLabel:                     vocab.RDFSLabel,
		TermComment:                   vocab.RDFSComment,
		TermSeeAlso:                   vocab.RDFSSeeAlso,
		TermIsDefinedBy:               vocab.RDFSIsDefinedBy,
	}
	aliases := []Alias{
		{Canonical: vocab.DAMLClass, Alias: vocab.DAMLLegacyClass},
		{Canonical: vocab.DAMLRestriction, Alias: vocab.DAMLLegacyRestriction},
		{Canonical: vocab.DAMLObjectProperty, Alias: vocab.DAMLLegacyObjectProperty},
		{Canonical: vocab.DAMLDatatypeProperty, Alias: vocab.DAMLLegacyDatatypeProperty},
		{Canonical: vocab.DAMLOntology, Alias: vocab.DAMLLegacyOntology},
		{Canonical: vocab.DAMLImports, Alias: vocab.DAMLLegacyImports},
		{Canonical: vocab.RDFProperty, Alias: vocab.DAMLProperty},
		{Canonical: vocab.RDFProperty, Alias: vocab.DAMLLegacyProperty},
		{Canonical: vocab.RDFType, Alias: vocab.DAMLType},
		{Canonical: vocab.RDFSSubClassOf, Alias: vocab.DAMLSubClassOf},
		{Canonical: vocab.RDFSSubClassOf, Alias: vocab.DAMLLegacySubClassOf},
		{Canonical: vocab.RDFSSubPropertyOf, Alias: vocab.DAMLSubPropertyOf},
		{Canonical: vocab.RDFSDomain, Alias: vocab.DAMLDomain},
		{Canonical: vocab.RDFSRange, Alias: vocab.DAMLRange},
		{Canonical: vocab.RDFSLabel, Alias: vocab.DAMLLabel},
		{Canonical: vocab.RDFSComment, Alias: vocab.DAMLComment},
		{Canonical: vocab.RDFSSeeAlso, Alias: vocab.DAMLSeeAlso},
		{Canonical: vocab.RDFSIsDefinedBy, Alias: vocab.DAMLIsDefinedBy},
	}

	class := anyOf(
		typedAs(TermClass, TermRestriction),
		typedAsNode(vocab.RDFSClass),
		isTerm(TermThing, TermNothing),
	)
	checks := map[FacetKey]SupportCheck{
		FacetResource:                  isResource,
		FacetClass:                     class,
		FacetRestriction:               typedAs(TermRestriction),
		FacetAllValuesFromRestriction:  restriction(TermAllValuesFrom),
		FacetSomeValuesFromRestriction: restriction(TermSomeValuesFrom),
		FacetHasValueRestriction:       restriction(TermHasValue),
		FacetCardinalityRestriction:    restriction(TermCardinality),
		FacetMinCardinalityRestriction: restriction(TermMinCardinality),
		FacetMaxCardinalityRestriction: restriction(TermMaxCardinality),
		FacetUnionClass:                allOf(class, hasProperty(TermUnionOf)),
		FacetIntersectionClass:         allOf(class, hasProperty(TermIntersectionOf)),
		FacetComplementClass:           allOf(class, hasProperty(TermComplementOf)),
		FacetEnumeratedClass:           allOf(class, hasProperty(TermOneOf)),
		FacetProperty: typedAs(TermProperty, TermObjectProperty, TermDatatypeProperty,
			TermTransitiveProperty, TermFunctionalProperty, TermInverseFunctionalProperty),
		FacetObjectProperty:            typedAs(TermObjectProperty, TermTransitiveProperty, TermInverseFunctionalProperty),
		FacetDatatypeProperty:          typedAs(TermDatatypeProperty),
		FacetAnnotationProperty:        isAnnotation,
		FacetFunctionalProperty:        typedAs(TermFunctionalProperty),
		FacetTransitiveProperty:        typedAs(TermTransitiveProperty),
		FacetInverseFunctionalProperty: typedAs(TermInverseFunctionalProperty),
		FacetIndividual: allOf(isResource, not(typedAs(TermClass, TermRestriction, TermOntology,
			TermProperty, TermObjectProperty, TermDatatypeProperty, TermTransitiveProperty,
			TermFunctionalProperty, TermInverseFunctionalProperty))),
		FacetOntology: typedAs(TermOntology),
		FacetList:     anyOf(isTerm(TermNil), hasProperty(TermFirst), typedAs(TermList)),
	}

	return New(Definition{
		Language:              LangDAML,
		Label:                 "DAML+OIL",
		Terms:                 terms,
		Aliases:               aliases,
		ClassDescriptionTypes: []Term{TermClass, TermRestriction},
		AnnotationProperties:  []Term{TermVersionInfo, TermLabel, TermComment, TermSeeAlso, TermIsDefinedBy},
		Checks:                checks,
	})
}
