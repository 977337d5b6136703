package profile

import (
	"github.com/coolbeans/ontograph/pkg/store"
	"github.com/coolbeans/ontograph/pkg/vocab"
)

// Language URIs.
const (
	LangOWL     = "http://www.w3.org/2002/07/owl#"
	LangOWLDL   = "http://www.w3.org/TR/owl-features/#term_OWLDL"
	LangOWLLite = "http://www.w3.org/TR/owl-features/#term_OWLLite"
	LangDAML    = "http://www.daml.org/2001/03/daml+oil#"
	LangRDFS    = "http://www.w3.org/2000/01/rdf-schema#"
)

func owlTerms() map[Term]store.Node {
	return map[Term]store.Node{
		TermClass:                     vocab.OWLClass,
		TermRestriction:               vocab.OWLRestriction,
		TermThing:                     vocab.OWLThing,
		TermNothing:                   vocab.OWLNothing,
		TermProperty:                  vocab.RDFProperty,
		TermObjectProperty:            vocab.OWLObjectProperty,
		TermDatatypeProperty:          vocab.OWLDatatypeProperty,
		TermAnnotationProperty:        vocab.OWLAnnotationProperty,
		TermOntologyProperty:          vocab.OWLOntologyProperty,
		TermTransitiveProperty:        vocab.OWLTransitiveProperty,
		TermSymmetricProperty:         vocab.OWLSymmetricProperty,
		TermFunctionalProperty:        vocab.OWLFunctionalProperty,
		TermInverseFunctionalProperty: vocab.OWLInverseFunctionalProperty,
		TermAllDifferent:              vocab.OWLAllDifferent,
		TermOntology:                  vocab.OWLOntology,
		TermDeprecatedClass:           vocab.OWLDeprecatedClass,
		TermDeprecatedProperty:        vocab.OWLDeprecatedProperty,
		TermDataRange:                 vocab.OWLDataRange,
		TermList:                      vocab.RDFList,
		TermNil:                       vocab.RDFNil,
		TermFirst:                     vocab.RDFFirst,
		TermRest:                      vocab.RDFRest,
		TermEquivalentClass:           vocab.OWLEquivalentClass,
		TermEquivalentProperty:        vocab.OWLEquivalentProperty,
		TermDisjointWith:              vocab.OWLDisjointWith,
		TermSameAs:                    vocab.OWLSameAs,
		TermSameIndividualAs:          vocab.OWLSameIndividualAs,
		TermDifferentFrom:             vocab.OWLDifferentFrom,
		TermDistinctMembers:           vocab.OWLDistinctMembers,
		TermUnionOf:                   vocab.OWLUnionOf,
		TermIntersectionOf:            vocab.OWLIntersectionOf,
		TermComplementOf:              vocab.OWLComplementOf,
		TermOneOf:                     vocab.OWLOneOf,
		TermOnProperty:                vocab.OWLOnProperty,
		TermAllValuesFrom:             vocab.OWLAllValuesFrom,
		TermSomeValuesFrom:            vocab.OWLSomeValuesFrom,
		TermHasValue:                  vocab.OWLHasValue,
		TermCardinality:               vocab.OWLCardinality,
		TermMinCardinality:            vocab.OWLMinCardinality,
		TermMaxCardinality:            vocab.OWLMaxCardinality,
		TermInverseOf:                 vocab.OWLInverseOf,
		TermImports:                   vocab.OWLImports,
		TermVersionInfo:               vocab.OWLVersionInfo,
		TermPriorVersion:              vocab.OWLPriorVersion,
		TermBackwardCompatibleWith:    vocab.OWLBackwardCompatibleWith,
		TermIncompatibleWith:          vocab.OWLIncompatibleWith,
		TermSubClassOf:                vocab.RDFSSubClassOf,
		TermSubPropertyOf:             vocab.RDFSSubPropertyOf,
		TermDomain:                    vocab.RDFSDomain,
		TermRange:                     vocab.RDFSRange,
		TermLabel:                     vocab.RDFSLabel,
		TermComment:                   vocab.RDFSComment,
		TermSeeAlso:                   vocab.RDFSSeeAlso,
		TermIsDefinedBy:               vocab.RDFSIsDefinedBy,
	}
}

var owlAnnotationTerms = []Term{TermVersionInfo, TermLabel, TermComment, TermSeeAlso, TermIsDefinedBy}

var owlClassDescriptionTerms = []Term{TermClass, TermRestriction}

// propertyTypes are the types that make a node some kind of property.
var propertyTypes = []Term{
	TermProperty, TermObjectProperty, TermDatatypeProperty, TermAnnotationProperty,
	TermOntologyProperty, TermTransitiveProperty, TermSymmetricProperty,
	TermFunctionalProperty, TermInverseFunctionalProperty,
}

// metaTypes are the types that exclude a node from being an individual.
var metaTypes = append([]Term{
	TermClass, TermRestriction, TermDataRange, TermOntology, TermAllDifferent,
	TermDeprecatedClass, TermDeprecatedProperty,
}, propertyTypes...)

// commonChecks holds the checks shared by every OWL flavour. Callers
// override the entries that differ.
func commonChecks(class SupportCheck) map[FacetKey]SupportCheck {
	return map[FacetKey]SupportCheck{
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
		FacetProperty:                  typedAs(propertyTypes...),
		FacetObjectProperty: typedAs(TermObjectProperty, TermTransitiveProperty,
			TermSymmetricProperty, TermInverseFunctionalProperty),
		FacetDatatypeProperty:          typedAs(TermDatatypeProperty),
		FacetAnnotationProperty:        anyOf(typedAs(TermAnnotationProperty), isAnnotation),
		FacetOntologyProperty:          typedAs(TermOntologyProperty),
		FacetFunctionalProperty:        typedAs(TermFunctionalProperty),
		FacetTransitiveProperty:        typedAs(TermTransitiveProperty),
		FacetSymmetricProperty:         typedAs(TermSymmetricProperty),
		FacetInverseFunctionalProperty: typedAs(TermInverseFunctionalProperty),
		FacetIndividual:                allOf(isResource, not(typedAs(metaTypes...))),
		FacetOntology:                  typedAs(TermOntology),
		FacetAllDifferent:              typedAs(TermAllDifferent),
		FacetDataRange:                 typedAs(TermDataRange),
		FacetList:                      anyOf(isTerm(TermNil), hasProperty(TermFirst), typedAs(TermList)),
	}
}

// OWLFull returns the profile for unrestricted OWL. Class recognition is
// liberal: anything typed as a class, used as a domain or range, or
// carrying a boolean class constructor qualifies.
func OWLFull() *Profile {
	class := anyOf(
		typedAs(TermClass, TermRestriction, TermDataRange),
		typedAsNode(vocab.RDFSClass),
		isTerm(TermThing, TermNothing),
		objectOf(TermDomain, TermRange),
		hasProperty(TermUnionOf),
		hasProperty(TermIntersectionOf),
		hasProperty(TermComplementOf),
	)
	return New(Definition{
		Language:              LangOWL,
		Label:                 "OWL Full",
		Terms:                 owlTerms(),
		ClassDescriptionTypes: append([]Term{}, owlClassDescriptionTerms...),
		AnnotationProperties:  owlAnnotationTerms,
		Checks:                commonChecks(class),
	})
}

// dlClass accepts only explicitly typed classes and the two built-ins.
var dlClass = anyOf(typedAs(TermClass, TermRestriction), isTerm(TermThing, TermNothing))

// OWLDL returns the OWL DL profile. Individuals must be typed by a class
// and plain rdf:Property declarations do not make a property.
func OWLDL() *Profile {
	checks := commonChecks(dlClass)
	checks[FacetProperty] = typedAs(propertyTypes[1:]...)
	checks[FacetIndividual] = allOf(instanceOfClass(dlClass), not(typedAs(metaTypes...)))
	return New(Definition{
		Language:              LangOWLDL,
		Label:                 "OWL DL",
		Terms:                 owlTerms(),
		ClassDescriptionTypes: append([]Term{}, owlClassDescriptionTerms...),
		AnnotationProperties:  owlAnnotationTerms,
		Checks:                checks,
	})
}

// OWLLite returns the OWL Lite profile. It has no boolean class
// constructors other than intersection, no enumerations, no value
// restrictions, no disjointness or data ranges, and cardinalities are
// limited to 0 or 1.
func OWLLite() *Profile {
	terms := owlTerms()
	for _, t := range []Term{TermUnionOf, TermComplementOf, TermOneOf, TermHasValue, TermDisjointWith, TermDataRange} {
		delete(terms, t)
	}
	checks := commonChecks(dlClass)
	checks[FacetProperty] = typedAs(propertyTypes[1:]...)
	checks[FacetIndividual] = allOf(instanceOfClass(dlClass), not(typedAs(metaTypes...)))
	for _, key := range []FacetKey{FacetUnionClass, FacetComplementClass, FacetEnumeratedClass, FacetHasValueRestriction, FacetDataRange} {
		delete(checks, key)
	}
	checks[FacetCardinalityRestriction] = allOf(restriction(TermCardinality), cardinalityWithin(TermCardinality, 0, 1))
	checks[FacetMinCardinalityRestriction] = allOf(restriction(TermMinCardinality), cardinalityWithin(TermMinCardinality, 0, 1))
	checks[FacetMaxCardinalityRestriction] = allOf(restriction(TermMaxCardinality), cardinalityWithin(TermMaxCardinality, 0, 1))
	return New(Definition{
		Language:              LangOWLLite,
		Label:                 "OWL Lite",
		Terms:                 terms,
		ClassDescriptionTypes: append([]Term{}, owlClassDescriptionTerms...),
		AnnotationProperties:  owlAnnotationTerms,
		Checks:                checks,
	})
}
