package profile

// Term is the symbolic name of an ontology concept. A profile maps each
// term it supports onto a canonical graph node.
type Term string

// Class and resource type terms.
const (
	TermClass                     Term = "CLASS"
	TermRestriction               Term = "RESTRICTION"
	TermThing                     Term = "THING"
	TermNothing                   Term = "NOTHING"
	TermProperty                  Term = "PROPERTY"
	TermObjectProperty            Term = "OBJECT_PROPERTY"
	TermDatatypeProperty          Term = "DATATYPE_PROPERTY"
	TermAnnotationProperty        Term = "ANNOTATION_PROPERTY"
	TermOntologyProperty          Term = "ONTOLOGY_PROPERTY"
	TermTransitiveProperty        Term = "TRANSITIVE_PROPERTY"
	TermSymmetricProperty         Term = "SYMMETRIC_PROPERTY"
	TermFunctionalProperty        Term = "FUNCTIONAL_PROPERTY"
	TermInverseFunctionalProperty Term = "INVERSE_FUNCTIONAL_PROPERTY"
	TermAllDifferent              Term = "ALL_DIFFERENT"
	TermOntology                  Term = "ONTOLOGY"
	TermDeprecatedClass           Term = "DEPRECATED_CLASS"
	TermDeprecatedProperty        Term = "DEPRECATED_PROPERTY"
	TermDataRange                 Term = "DATARANGE"
	TermList                      Term = "LIST"
	TermNil                       Term = "NIL"
)

// Predicate terms.
const (
	TermFirst                  Term = "FIRST"
	TermRest                   Term = "REST"
	TermEquivalentClass        Term = "EQUIVALENT_CLASS"
	TermEquivalentProperty     Term = "EQUIVALENT_PROPERTY"
	TermDisjointWith           Term = "DISJOINT_WITH"
	TermSameAs                 Term = "SAME_AS"
	TermSameIndividualAs       Term = "SAME_INDIVIDUAL_AS"
	TermDifferentFrom          Term = "DIFFERENT_FROM"
	TermDistinctMembers        Term = "DISTINCT_MEMBERS"
	TermUnionOf                Term = "UNION_OF"
	TermIntersectionOf         Term = "INTERSECTION_OF"
	TermComplementOf           Term = "COMPLEMENT_OF"
	TermOneOf                  Term = "ONE_OF"
	TermOnProperty             Term = "ON_PROPERTY"
	TermAllValuesFrom          Term = "ALL_VALUES_FROM"
	TermSomeValuesFrom         Term = "SOME_VALUES_FROM"
	TermHasValue               Term = "HAS_VALUE"
	TermCardinality            Term = "CARDINALITY"
	TermMinCardinality         Term = "MIN_CARDINALITY"
	TermMaxCardinality         Term = "MAX_CARDINALITY"
	TermInverseOf              Term = "INVERSE_OF"
	TermImports                Term = "IMPORTS"
	TermVersionInfo            Term = "VERSION_INFO"
	TermPriorVersion           Term = "PRIOR_VERSION"
	TermBackwardCompatibleWith Term = "BACKWARD_COMPATIBLE_WITH"
	TermIncompatibleWith       Term = "INCOMPATIBLE_WITH"
	TermSubClassOf             Term = "SUB_CLASS_OF"
	TermSubPropertyOf          Term = "SUB_PROPERTY_OF"
	TermDomain                 Term = "DOMAIN"
	TermRange                  Term = "RANGE"
	TermLabel                  Term = "LABEL"
	TermComment                Term = "COMMENT"
	TermSeeAlso                Term = "SEE_ALSO"
	TermIsDefinedBy            Term = "IS_DEFINED_BY"
)

// FacetKey names an ontology abstraction a graph node can be viewed as.
type FacetKey string

const (
	FacetResource                  FacetKey = "OntResource"
	FacetClass                     FacetKey = "OntClass"
	FacetRestriction               FacetKey = "Restriction"
	FacetAllValuesFromRestriction  FacetKey = "AllValuesFromRestriction"
	FacetSomeValuesFromRestriction FacetKey = "SomeValuesFromRestriction"
	FacetHasValueRestriction       FacetKey = "HasValueRestriction"
	FacetCardinalityRestriction    FacetKey = "CardinalityRestriction"
	FacetMinCardinalityRestriction FacetKey = "MinCardinalityRestriction"
	FacetMaxCardinalityRestriction FacetKey = "MaxCardinalityRestriction"
	FacetUnionClass                FacetKey = "UnionClass"
	FacetIntersectionClass         FacetKey = "IntersectionClass"
	FacetComplementClass           FacetKey = "ComplementClass"
	FacetEnumeratedClass           FacetKey = "EnumeratedClass"
	FacetProperty                  FacetKey = "OntProperty"
	FacetObjectProperty            FacetKey = "ObjectProperty"
	FacetDatatypeProperty          FacetKey = "DatatypeProperty"
	FacetAnnotationProperty        FacetKey = "AnnotationProperty"
	FacetOntologyProperty          FacetKey = "OntologyProperty"
	FacetFunctionalProperty        FacetKey = "FunctionalProperty"
	FacetTransitiveProperty        FacetKey = "TransitiveProperty"
	FacetSymmetricProperty         FacetKey = "SymmetricProperty"
	FacetInverseFunctionalProperty FacetKey = "InverseFunctionalProperty"
	FacetIndividual                FacetKey = "Individual"
	FacetOntology                  FacetKey = "Ontology"
	FacetAllDifferent              FacetKey = "AllDifferent"
	FacetDataRange                 FacetKey = "DataRange"
	FacetList                      FacetKey = "List"
)

// Facets returns every facet key in a stable order.
func Facets() []FacetKey {
	return []FacetKey{
		FacetResource, FacetClass, FacetRestriction,
		FacetAllValuesFromRestriction, FacetSomeValuesFromRestriction, FacetHasValueRestriction,
		FacetCardinalityRestriction, FacetMinCardinalityRestriction, FacetMaxCardinalityRestriction,
		FacetUnionClass, FacetIntersectionClass, FacetComplementClass, FacetEnumeratedClass,
		FacetProperty, FacetObjectProperty, FacetDatatypeProperty, FacetAnnotationProperty,
		FacetOntologyProperty, FacetFunctionalProperty, FacetTransitiveProperty,
		FacetSymmetricProperty, FacetInverseFunctionalProperty,
		FacetIndividual, FacetOntology, FacetAllDifferent, FacetDataRange, FacetList,
	}
}
