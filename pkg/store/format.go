package store

import (
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/coolbeans/ontograph/pkg/errors"
)

// Format identifies an RDF concrete syntax.
type Format string

const (
	FormatTurtle   Format = "turtle"
	FormatNTriples Format = "ntriples"
	FormatRDFXML   Format = "rdfxml"
)

// ParseFormat maps a user-supplied syntax name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ttl", "turtle", "n3":
		return FormatTurtle, nil
	case "nt", "ntriples", "n-triples":
		return FormatNTriples, nil
	case "rdf", "xml", "rdfxml", "rdf/xml", "owl", "daml":
		return FormatRDFXML, nil
	default:
		return "", errors.Newf("unknown RDF syntax %q", name)
	}
}

// FormatFromPath guesses the syntax from a file name or URL. Unknown
// extensions default to RDF/XML, the usual syntax of published ontologies.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttl", ".n3":
		return FormatTurtle
	case ".nt":
		return FormatNTriples
	default:
		return FormatRDFXML
	}
}

// Write serialises every triple of g to w in the given syntax.
func Write(w io.Writer, g Graph, format Format, prefixes ...PrefixMapping) error {
	var out string

	switch format {
	case FormatTurtle:
		options := make([]TurtleOption, 0, len(prefixes))
		for _, mapping := range prefixes {
			options = append(options, WithPrefix(mapping.Prefix, mapping.Namespace))
		}
		out = NewTurtleSerializer(options...).Serialize(g)
	case FormatRDFXML:
		options := make([]RDFXMLOption, 0, len(prefixes))
		for _, mapping := range prefixes {
			options = append(options, WithRDFXMLPrefix(mapping.Prefix, mapping.Namespace))
		}
		out = NewRDFXMLSerializer(options...).Serialize(g)
	case FormatNTriples:
		out = SerializeNTriples(g)
	default:
		return errors.Newf("no writer for syntax %q", format)
	}

	_, err := io.WriteString(w, out)
	return errors.Wrap(err, "write graph")
}

// SerializeNTriples writes one sorted N-Triples line per triple.
func SerializeNTriples(g Graph) string {
	triples := g.Find(Any, Any, Any)
	lines := make([]string, 0, len(triples))
	for _, t := range triples {
		lines = append(lines, t.NTriples())
	}
	sort.Strings(lines)

	var builder strings.Builder
	for _, line := range lines {
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	return builder.String()
}

// groupTriplesBySubject organizes triples into subject -> predicate -> objects.
func groupTriplesBySubject(g Graph) map[Node]map[Node][]Node {
	subjectGroups := make(map[Node]map[Node][]Node)

	for _, triple := range g.Find(Any, Any, Any) {
		if _, exists := subjectGroups[triple.Subject]; !exists {
			subjectGroups[triple.Subject] = make(map[Node][]Node)
		}
		subjectGroups[triple.Subject][triple.Predicate] = append(
			subjectGroups[triple.Subject][triple.Predicate],
			triple.Object,
		)
	}

	return subjectGroups
}

// sortNodes orders nodes by kind, then N-Triples form, for stable output.
func sortNodes(nodes []Node) {
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Kind != nodes[j].Kind {
			return nodes[i].Kind < nodes[j].Kind
		}
		return nodes[i].String() < nodes[j].String()
	})
}

func sortedNodeKeys[V any](m map[Node]V) []Node {
	keys := make([]Node, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sortNodes(keys)
	return keys
}

// sortPredicatesTypeFirst sorts predicates with rdf:type first, then by URI.
func sortPredicatesTypeFirst(predicateObjectMap map[Node][]Node) []Node {
	predicates := make([]Node, 0, len(predicateObjectMap))
	hasRDFType := false

	for predicate := range predicateObjectMap {
		if predicate == RDFType {
			hasRDFType = true
		} else {
			predicates = append(predicates, predicate)
		}
	}

	sortNodes(predicates)

	if hasRDFType {
		predicates = append([]Node{RDFType}, predicates...)
	}

	return predicates
}

// sortedKeys returns the keys of a map sorted alphabetically.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
