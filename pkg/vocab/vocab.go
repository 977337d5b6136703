// Package vocab defines the RDF, RDFS, OWL, XSD and DAML+OIL terms as
// graph nodes. Profiles map their symbolic term names onto these values.
package vocab

import "github.com/coolbeans/ontograph/pkg/store"

// RDF terms.
var (
	RDFType      = store.URI(store.NamespaceRDF + "type")
	RDFProperty  = store.URI(store.NamespaceRDF + "Property")
	RDFList      = store.URI(store.NamespaceRDF + "List")
	RDFFirst     = store.URI(store.NamespaceRDF + "first")
	RDFRest      = store.URI(store.NamespaceRDF + "rest")
	RDFNil       = store.URI(store.NamespaceRDF + "nil")
	RDFValue     = store.URI(store.NamespaceRDF + "value")
	RDFStatement = store.URI(store.NamespaceRDF + "Statement")
)

// RDF Schema terms.
var (
	RDFSClass         = store.URI(store.NamespaceRDFS + "Class")
	RDFSResource      = store.URI(store.NamespaceRDFS + "Resource")
	RDFSLiteral       = store.URI(store.NamespaceRDFS + "Literal")
	RDFSDatatype      = store.URI(store.NamespaceRDFS + "Datatype")
	RDFSSubClassOf    = store.URI(store.NamespaceRDFS + "subClassOf")
	RDFSSubPropertyOf = store.URI(store.NamespaceRDFS + "subPropertyOf")
	RDFSDomain        = store.URI(store.NamespaceRDFS + "domain")
	RDFSRange         = store.URI(store.NamespaceRDFS + "range")
	RDFSLabel         = store.URI(store.NamespaceRDFS + "label")
	RDFSComment       = store.URI(store.NamespaceRDFS + "comment")
	RDFSSeeAlso       = store.URI(store.NamespaceRDFS + "seeAlso")
	RDFSIsDefinedBy   = store.URI(store.NamespaceRDFS + "isDefinedBy")
	RDFSMember        = store.URI(store.NamespaceRDFS + "member")
	RDFSContainer     = store.URI(store.NamespaceRDFS + "Container")
)

// OWL terms.
var (
	OWLClass                     = store.URI(store.NamespaceOWL + "Class")
	OWLThing                     = store.URI(store.NamespaceOWL + "Thing")
	OWLNothing                   = store.URI(store.NamespaceOWL + "Nothing")
	OWLRestriction               = store.URI(store.NamespaceOWL + "Restriction")
	OWLObjectProperty            = store.URI(store.NamespaceOWL + "ObjectProperty")
	OWLDatatypeProperty          = store.URI(store.NamespaceOWL + "DatatypeProperty")
	OWLAnnotationProperty        = store.URI(store.NamespaceOWL + "AnnotationProperty")
	OWLOntologyProperty          = store.URI(store.NamespaceOWL + "OntologyProperty")
	OWLTransitiveProperty        = store.URI(store.NamespaceOWL + "TransitiveProperty")
	OWLSymmetricProperty         = store.URI(store.NamespaceOWL + "SymmetricProperty")
	OWLFunctionalProperty        = store.URI(store.NamespaceOWL + "FunctionalProperty")
	OWLInverseFunctionalProperty = store.URI(store.NamespaceOWL + "InverseFunctionalProperty")
	OWLAllDifferent              = store.URI(store.NamespaceOWL + "AllDifferent")
	OWLOntology                  = store.URI(store.NamespaceOWL + "Ontology")
	OWLDeprecatedClass           = store.URI(store.NamespaceOWL + "DeprecatedClass")
	OWLDeprecatedProperty        = store.URI(store.NamespaceOWL + "DeprecatedProperty")
	OWLDataRange                 = store.URI(store.NamespaceOWL + "DataRange")
	OWLEquivalentClass           = store.URI(store.NamespaceOWL + "equivalentClass")
	OWLEquivalentProperty        = store.URI(store.NamespaceOWL + "equivalentProperty")
	OWLDisjointWith              = store.URI(store.NamespaceOWL + "disjointWith")
	OWLSameAs                    = store.URI(store.NamespaceOWL + "sameAs")
	OWLSameIndividualAs          = store.URI(store.NamespaceOWL + "sameIndividualAs")
	OWLDifferentFrom             = store.URI(store.NamespaceOWL + "differentFrom")
	OWLDistinctMembers           = store.URI(store.NamespaceOWL + "distinctMembers")
	OWLUnionOf                   = store.URI(store.NamespaceOWL + "unionOf")
	OWLIntersectionOf            = store.URI(store.NamespaceOWL + "intersectionOf")
	OWLComplementOf              = store.URI(store.NamespaceOWL + "complementOf")
	OWLOneOf                     = store.URI(store.NamespaceOWL + "oneOf")
	OWLOnProperty                = store.URI(store.NamespaceOWL + "onProperty")
	OWLAllValuesFrom             = store.URI(store.NamespaceOWL + "allValuesFrom")
	OWLSomeValuesFrom            = store.URI(store.NamespaceOWL + "someValuesFrom")
	OWLHasValue                  = store.URI(store.NamespaceOWL + "hasValue")
	OWLCardinality               = store.URI(store.NamespaceOWL + "cardinality")
	OWLMinCardinality            = store.URI(store.NamespaceOWL + "minCardinality")
	OWLMaxCardinality            = store.URI(store.NamespaceOWL + "maxCardinality")
	OWLInverseOf                 = store.URI(store.NamespaceOWL + "inverseOf")
	OWLImports                   = store.URI(store.NamespaceOWL + "imports")
	OWLVersionInfo               = store.URI(store.NamespaceOWL + "versionInfo")
	OWLPriorVersion              = store.URI(store.NamespaceOWL + "priorVersion")
	OWLBackwardCompatibleWith    = store.URI(store.NamespaceOWL + "backwardCompatibleWith")
	OWLIncompatibleWith          = store.URI(store.NamespaceOWL + "incompatibleWith")
)

// DAML+OIL (March 2001) terms.
var (
	DAMLClass                   = store.URI(store.NamespaceDAML + "Class")
	DAMLThing                   = store.URI(store.NamespaceDAML + "Thing")
	DAMLNothing                 = store.URI(store.NamespaceDAML + "Nothing")
	DAMLRestriction             = store.URI(store.NamespaceDAML + "Restriction")
	DAMLObjectProperty          = store.URI(store.NamespaceDAML + "ObjectProperty")
	DAMLDatatypeProperty        = store.URI(store.NamespaceDAML + "DatatypeProperty")
	DAMLTransitiveProperty      = store.URI(store.NamespaceDAML + "TransitiveProperty")
	DAMLUniqueProperty          = store.URI(store.NamespaceDAML + "UniqueProperty")
	DAMLUnambiguousProperty     = store.URI(store.NamespaceDAML + "UnambiguousProperty")
	DAMLOntology                = store.URI(store.NamespaceDAML + "Ontology")
	DAMLList                    = store.URI(store.NamespaceDAML + "List")
	DAMLFirst                   = store.URI(store.NamespaceDAML + "first")
	DAMLRest                    = store.URI(store.NamespaceDAML + "rest")
	DAMLNil                     = store.URI(store.NamespaceDAML + "nil")
	DAMLProperty                = store.URI(store.NamespaceDAML + "Property")
	DAMLLiteral                 = store.URI(store.NamespaceDAML + "Literal")
	DAMLSameClassAs             = store.URI(store.NamespaceDAML + "sameClassAs")
	DAMLSamePropertyAs          = store.URI(store.NamespaceDAML + "samePropertyAs")
	DAMLEquivalentTo            = store.URI(store.NamespaceDAML + "equivalentTo")
	DAMLSameIndividualAs        = store.URI(store.NamespaceDAML + "sameIndividualAs")
	DAMLDifferentIndividualFrom = store.URI(store.NamespaceDAML + "differentIndividualFrom")
	DAMLDisjointWith            = store.URI(store.NamespaceDAML + "disjointWith")
	DAMLUnionOf                 = store.URI(store.NamespaceDAML + "unionOf")
	DAMLIntersectionOf          = store.URI(store.NamespaceDAML + "intersectionOf")
	DAMLComplementOf            = store.URI(store.NamespaceDAML + "complementOf")
	DAMLOneOf                   = store.URI(store.NamespaceDAML + "oneOf")
	DAMLOnProperty              = store.URI(store.NamespaceDAML + "onProperty")
	DAMLToClass                 = store.URI(store.NamespaceDAML + "toClass")
	DAMLHasValue                = store.URI(store.NamespaceDAML + "hasValue")
	DAMLHasClass                = store.URI(store.NamespaceDAML + "hasClass")
	DAMLCardinality             = store.URI(store.NamespaceDAML + "cardinality")
	DAMLMinCardinality          = store.URI(store.NamespaceDAML + "minCardinality")
	DAMLMaxCardinality          = store.URI(store.NamespaceDAML + "maxCardinality")
	DAMLCardinalityQ            = store.URI(store.NamespaceDAML + "cardinalityQ")
	DAMLMinCardinalityQ         = store.URI(store.NamespaceDAML + "minCardinalityQ")
	DAMLMaxCardinalityQ         = store.URI(store.NamespaceDAML + "maxCardinalityQ")
	DAMLHasClassQ               = store.URI(store.NamespaceDAML + "hasClassQ")
	DAMLInverseOf               = store.URI(store.NamespaceDAML + "inverseOf")
	DAMLImports                 = store.URI(store.NamespaceDAML + "imports")
	DAMLVersionInfo             = store.URI(store.NamespaceDAML + "versionInfo")
	DAMLSubClassOf              = store.URI(store.NamespaceDAML + "subClassOf")
	DAMLSubPropertyOf           = store.URI(store.NamespaceDAML + "subPropertyOf")
	DAMLDomain                  = store.URI(store.NamespaceDAML + "domain")
	DAMLRange                   = store.URI(store.NamespaceDAML + "range")
	DAMLLabel                   = store.URI(store.NamespaceDAML + "label")
	DAMLComment                 = store.URI(store.NamespaceDAML + "comment")
	DAMLSeeAlso                 = store.URI(store.NamespaceDAML + "seeAlso")
	DAMLIsDefinedBy             = store.URI(store.NamespaceDAML + "isDefinedBy")
	DAMLType                    = store.URI(store.NamespaceDAML + "type")
	DAMLValue                   = store.URI(store.NamespaceDAML + "value")
)

// DAML+OIL (December 2000) terms still found in older documents.
var (
	DAMLLegacyClass            = store.URI(store.NamespaceDAMLLegacy + "Class")
	DAMLLegacyRestriction      = store.URI(store.NamespaceDAMLLegacy + "Restriction")
	DAMLLegacyProperty         = store.URI(store.NamespaceDAMLLegacy + "Property")
	DAMLLegacyObjectProperty   = store.URI(store.NamespaceDAMLLegacy + "ObjectProperty")
	DAMLLegacyDatatypeProperty = store.URI(store.NamespaceDAMLLegacy + "DatatypeProperty")
	DAMLLegacySubClassOf       = store.URI(store.NamespaceDAMLLegacy + "subClassOf")
	DAMLLegacyImports          = store.URI(store.NamespaceDAMLLegacy + "imports")
	DAMLLegacyOntology         = store.URI(store.NamespaceDAMLLegacy + "Ontology")
)

// XML Schema datatypes used for cardinality values.
var (
	XSDString             = store.URI(store.NamespaceXSD + "string")
	XSDInt                = store.URI(store.NamespaceXSD + "int")
	XSDInteger            = store.URI(store.NamespaceXSD + "integer")
	XSDNonNegativeInteger = store.URI(store.NamespaceXSD + "nonNegativeInteger")
	XSDBoolean            = store.URI(store.NamespaceXSD + "boolean")
)
