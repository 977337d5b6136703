package store

// Namespace URIs for the vocabularies the ontology layer reads and writes.
const (
	// NamespaceRDF is the standard RDF namespace.
	NamespaceRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// NamespaceRDFS is the RDF Schema namespace.
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"

	// NamespaceOWL is the Web Ontology Language namespace.
	NamespaceOWL = "http://www.w3.org/2002/07/owl#"

	// NamespaceXSD is the XML Schema namespace for datatypes.
	NamespaceXSD = "http://www.w3.org/2001/XMLSchema#"

	// NamespaceDAML is the DAML+OIL (March 2001) namespace.
	NamespaceDAML = "http://www.daml.org/2001/03/daml+oil#"

	// NamespaceDAMLLegacy is the superseded DAML+OIL (December 2000) namespace.
	NamespaceDAMLLegacy = "http://www.daml.org/2000/12/daml+oil#"

	// NamespaceDC is the Dublin Core namespace for metadata.
	NamespaceDC = "http://purl.org/dc/elements/1.1/"
)

// RDF terms the substrate itself needs for serialisation and list walking.
var (
	RDFType  = URI(NamespaceRDF + "type")
	RDFFirst = URI(NamespaceRDF + "first")
	RDFRest  = URI(NamespaceRDF + "rest")
	RDFNil   = URI(NamespaceRDF + "nil")
)

// PrefixMapping associates a short prefix label with its full namespace URI.
type PrefixMapping struct {
	Prefix    string
	Namespace string
}

func defaultPrefixMappings() []PrefixMapping {
	return []PrefixMapping{
		{Prefix: "rdf", Namespace: NamespaceRDF},
		{Prefix: "rdfs", Namespace: NamespaceRDFS},
		{Prefix: "owl", Namespace: NamespaceOWL},
		{Prefix: "xsd", Namespace: NamespaceXSD},
		{Prefix: "daml", Namespace: NamespaceDAML},
		{Prefix: "dc", Namespace: NamespaceDC},
	}
}
