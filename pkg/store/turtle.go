package store

import (
	"fmt"
	"strings"
)

// TurtleSerializer converts a Graph into W3C-compliant Turtle (TTL) format.
type TurtleSerializer struct {
	prefixMappings []PrefixMapping
	namespaceIndex map[string]string // namespace -> prefix
}

// TurtleOption is a functional option for configuring the TurtleSerializer.
type TurtleOption func(*TurtleSerializer)

// NewTurtleSerializer creates a TurtleSerializer with standard prefix declarations.
func NewTurtleSerializer(options ...TurtleOption) *TurtleSerializer {
	serializer := &TurtleSerializer{
		prefixMappings: defaultPrefixMappings(),
	}

	for _, option := range options {
		option(serializer)
	}

	serializer.rebuildIndexes()

	return serializer
}

// WithPrefix adds or overrides a prefix mapping.
func WithPrefix(prefix, namespace string) TurtleOption {
	return func(serializer *TurtleSerializer) {
		serializer.prefixMappings = append(serializer.prefixMappings, PrefixMapping{
			Prefix:    prefix,
			Namespace: namespace,
		})
	}
}

// WithoutDefaultPrefixes clears default prefixes so only custom ones are used.
func WithoutDefaultPrefixes() TurtleOption {
	return func(serializer *TurtleSerializer) {
		serializer.prefixMappings = nil
	}
}

func (serializer *TurtleSerializer) rebuildIndexes() {
	byPrefix := make(map[string]string, len(serializer.prefixMappings))
	for _, mapping := range serializer.prefixMappings {
		byPrefix[mapping.Prefix] = mapping.Namespace
	}

	serializer.prefixMappings = serializer.prefixMappings[:0]
	serializer.namespaceIndex = make(map[string]string, len(byPrefix))
	for _, prefix := range sortedKeys(byPrefix) {
		serializer.prefixMappings = append(serializer.prefixMappings, PrefixMapping{Prefix: prefix, Namespace: byPrefix[prefix]})
		serializer.namespaceIndex[byPrefix[prefix]] = prefix
	}
}

// Serialize converts all triples in the graph to Turtle format.
func (serializer *TurtleSerializer) Serialize(g Graph) string {
	var builder strings.Builder

	serializer.writePrefixDeclarations(&builder)

	subjectGroups := groupTriplesBySubject(g)
	sortedSubjects := sortedNodeKeys(subjectGroups)

	for subjectIndex, subject := range sortedSubjects {
		if subjectIndex > 0 {
			builder.WriteString("\n")
		}
		serializer.writeSubjectGroup(&builder, subject, subjectGroups[subject])
	}

	return builder.String()
}

func (serializer *TurtleSerializer) writePrefixDeclarations(builder *strings.Builder) {
	for _, mapping := range serializer.prefixMappings {
		fmt.Fprintf(builder, "@prefix %s: <%s> .\n", mapping.Prefix, mapping.Namespace)
	}

	if len(serializer.prefixMappings) > 0 {
		builder.WriteString("\n")
	}
}

func (serializer *TurtleSerializer) writeSubjectGroup(
	builder *strings.Builder,
	subject Node,
	predicateObjectMap map[Node][]Node,
) {
	builder.WriteString(serializer.formatNode(subject))

	sortedPredicates := sortPredicatesTypeFirst(predicateObjectMap)

	for predicateIndex, predicate := range sortedPredicates {
		objects := predicateObjectMap[predicate]
		sortNodes(objects)

		if predicateIndex == 0 {
			builder.WriteString(" ")
		} else {
			builder.WriteString(" ;\n    ")
		}

		builder.WriteString(serializer.formatPredicate(predicate))

		for objectIndex, object := range objects {
			if objectIndex > 0 {
				builder.WriteString(" ,\n        ")
			} else {
				builder.WriteString(" ")
			}
			builder.WriteString(serializer.formatNode(object))
		}
	}

	builder.WriteString(" .\n")
}

// formatPredicate formats a predicate, using "a" shorthand for rdf:type.
func (serializer *TurtleSerializer) formatPredicate(predicate Node) string {
	if predicate == RDFType {
		return "a"
	}
	return serializer.formatNode(predicate)
}

// formatNode formats a URI, blank node or literal.
func (serializer *TurtleSerializer) formatNode(node Node) string {
	switch node.Kind {
	case KindURI:
		return serializer.formatURI(node.Value)
	case KindBlank:
		return "_:" + node.Value
	case KindLiteral:
		literal := formatLiteral(node.Value)
		if node.Lang != "" {
			return literal + "@" + node.Lang
		}
		if node.Datatype != "" {
			return literal + "^^" + serializer.formatURI(node.Datatype)
		}
		return literal
	default:
		return ""
	}
}

func (serializer *TurtleSerializer) formatURI(uri string) string {
	if compacted, ok := serializer.compactURI(uri); ok {
		return compacted
	}
	return "<" + escapeIRI(uri) + ">"
}

// compactURI replaces a full namespace URI with its prefix form.
func (serializer *TurtleSerializer) compactURI(fullURI string) (string, bool) {
	// Longest namespace match first for correctness
	bestPrefix := ""
	bestNamespace := ""
	for namespace, prefix := range serializer.namespaceIndex {
		if strings.HasPrefix(fullURI, namespace) && len(namespace) > len(bestNamespace) {
			localName := fullURI[len(namespace):]
			if isValidLocalName(localName) {
				bestPrefix = prefix
				bestNamespace = namespace
			}
		}
	}

	if bestNamespace != "" {
		return bestPrefix + ":" + fullURI[len(bestNamespace):], true
	}
	return "", false
}

// isValidLocalName checks if a string is a valid Turtle local name.
func isValidLocalName(localName string) bool {
	if localName == "" {
		return false
	}
	return !strings.ContainsAny(localName, " \t\n\r<>\"{}|^`\\#/:+")
}

// formatLiteral wraps a string value in Turtle-compliant double quotes.
func formatLiteral(value string) string {
	escaped := escapeLiteralString(value)

	if strings.Contains(value, "\n") {
		return `"""` + escaped + `"""`
	}

	return `"` + escaped + `"`
}

// escapeLiteralString escapes the characters Turtle string literals cannot hold.
func escapeLiteralString(value string) string {
	var builder strings.Builder
	builder.Grow(len(value) + len(value)/8)

	for _, char := range value {
		switch char {
		case '\\':
			builder.WriteString(`\\`)
		case '"':
			builder.WriteString(`\"`)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		case '\t':
			builder.WriteString(`\t`)
		default:
			builder.WriteRune(char)
		}
	}

	return builder.String()
}

// escapeIRI escapes characters not allowed in IRIs within angle brackets.
func escapeIRI(iri string) string {
	var builder strings.Builder
	builder.Grow(len(iri))

	for _, char := range iri {
		switch char {
		case '<':
			builder.WriteString(`\u003C`)
		case '>':
			builder.WriteString(`\u003E`)
		case '"':
			builder.WriteString(`\u0022`)
		case ' ':
			builder.WriteString(`\u0020`)
		case '{':
			builder.WriteString(`\u007B`)
		case '}':
			builder.WriteString(`\u007D`)
		default:
			builder.WriteRune(char)
		}
	}

	return builder.String()
}
