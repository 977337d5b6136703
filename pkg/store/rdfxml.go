package store

import (
	"fmt"
	"strings"
)

// RDFXMLSerializer converts a Graph into W3C-compliant RDF/XML format.
type RDFXMLSerializer struct {
	prefixMappings []PrefixMapping
	namespaceIndex map[string]string // namespace -> prefix
}

// RDFXMLOption is a functional option for configuring the RDFXMLSerializer.
type RDFXMLOption func(*RDFXMLSerializer)

// NewRDFXMLSerializer creates an RDFXMLSerializer with standard namespace declarations.
func NewRDFXMLSerializer(options ...RDFXMLOption) *RDFXMLSerializer {
	serializer := &RDFXMLSerializer{
		prefixMappings: defaultPrefixMappings(),
	}

	for _, option := range options {
		option(serializer)
	}

	serializer.rebuildIndexes()

	return serializer
}

// WithRDFXMLPrefix adds or overrides a namespace prefix mapping.
func WithRDFXMLPrefix(prefix, namespace string) RDFXMLOption {
	return func(serializer *RDFXMLSerializer) {
		serializer.prefixMappings = append(serializer.prefixMappings, PrefixMapping{
			Prefix:    prefix,
			Namespace: namespace,
		})
	}
}

func (serializer *RDFXMLSerializer) rebuildIndexes() {
	serializer.namespaceIndex = make(map[string]string, len(serializer.prefixMappings))

	for _, mapping := range serializer.prefixMappings {
		serializer.namespaceIndex[mapping.Namespace] = mapping.Prefix
	}
}

// Serialize converts all triples in the graph to RDF/XML format. Predicates
// whose namespace has no registered prefix get a generated nsN prefix.
func (serializer *RDFXMLSerializer) Serialize(g Graph) string {
	var builder strings.Builder

	subjectGroups := groupTriplesBySubject(g)
	sortedSubjects := sortedNodeKeys(subjectGroups)

	namespaces := serializer.collectNamespaces(subjectGroups)

	serializer.writeXMLHeader(&builder, namespaces)

	for _, subject := range sortedSubjects {
		serializer.writeDescription(&builder, subject, subjectGroups[subject], namespaces)
	}

	builder.WriteString("</rdf:RDF>\n")

	return builder.String()
}

// collectNamespaces returns namespace -> prefix for every predicate in use,
// always including rdf.
func (serializer *RDFXMLSerializer) collectNamespaces(subjectGroups map[Node]map[Node][]Node) map[string]string {
	namespaces := map[string]string{NamespaceRDF: "rdf"}
	generated := 0

	for _, predicateObjectMap := range subjectGroups {
		for predicate := range predicateObjectMap {
			namespace, _ := splitURI(predicate.Value)
			if _, ok := namespaces[namespace]; ok {
				continue
			}
			if prefix, ok := serializer.namespaceIndex[namespace]; ok {
				namespaces[namespace] = prefix
				continue
			}
			namespaces[namespace] = fmt.Sprintf("ns%d", generated)
			generated++
		}
	}

	return namespaces
}

// writeXMLHeader writes the XML declaration and opening rdf:RDF element with namespace attributes.
func (serializer *RDFXMLSerializer) writeXMLHeader(builder *strings.Builder, namespaces map[string]string) {
	builder.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	builder.WriteString("<rdf:RDF")

	byPrefix := make(map[string]string, len(namespaces))
	for namespace, prefix := range namespaces {
		byPrefix[prefix] = namespace
	}

	for _, prefix := range sortedKeys(byPrefix) {
		fmt.Fprintf(builder, "\n    xmlns:%s=\"%s\"", prefix, escapeXMLAttribute(byPrefix[prefix]))
	}

	builder.WriteString(">\n")
}

// writeDescription writes an rdf:Description block for a single subject.
func (serializer *RDFXMLSerializer) writeDescription(
	builder *strings.Builder,
	subject Node,
	predicateObjectMap map[Node][]Node,
	namespaces map[string]string,
) {
	builder.WriteString("\n")
	if subject.IsBlank() {
		fmt.Fprintf(builder, "  <rdf:Description rdf:nodeID=\"%s\">\n", escapeXMLAttribute(subject.Value))
	} else {
		fmt.Fprintf(builder, "  <rdf:Description rdf:about=\"%s\">\n", escapeXMLAttribute(subject.Value))
	}

	for _, predicate := range sortPredicatesTypeFirst(predicateObjectMap) {
		objects := predicateObjectMap[predicate]
		sortNodes(objects)

		namespace, localName := splitURI(predicate.Value)
		elementName := namespaces[namespace] + ":" + localName

		for _, object := range objects {
			writeProperty(builder, elementName, object)
		}
	}

	builder.WriteString("  </rdf:Description>\n")
}

// writeProperty writes a single predicate-object pair as an XML element.
func writeProperty(builder *strings.Builder, elementName string, object Node) {
	switch object.Kind {
	case KindURI:
		fmt.Fprintf(builder, "    <%s rdf:resource=\"%s\"/>\n", elementName, escapeXMLAttribute(object.Value))
	case KindBlank:
		fmt.Fprintf(builder, "    <%s rdf:nodeID=\"%s\"/>\n", elementName, escapeXMLAttribute(object.Value))
	default:
		attributes := ""
		if object.Lang != "" {
			attributes = fmt.Sprintf(" xml:lang=\"%s\"", escapeXMLAttribute(object.Lang))
		} else if object.Datatype != "" {
			attributes = fmt.Sprintf(" rdf:datatype=\"%s\"", escapeXMLAttribute(object.Datatype))
		}
		fmt.Fprintf(builder, "    <%s%s>%s</%s>\n", elementName, attributes, escapeXMLText(object.Value), elementName)
	}
}

// splitURI splits a URI after its last '#' or '/' into namespace and local name.
func splitURI(uri string) (string, string) {
	if idx := strings.LastIndexAny(uri, "#/"); idx != -1 && idx < len(uri)-1 {
		return uri[:idx+1], uri[idx+1:]
	}
	return uri, ""
}

// escapeXMLText escapes characters that are special in XML text content.
func escapeXMLText(text string) string {
	var builder strings.Builder
	builder.Grow(len(text) + len(text)/8)

	for _, char := range text {
		switch char {
		case '&':
			builder.WriteString("&amp;")
		case '<':
			builder.WriteString("&lt;")
		case '>':
			builder.WriteString("&gt;")
		default:
			builder.WriteRune(char)
		}
	}

	return builder.String()
}

// escapeXMLAttribute escapes characters that are special in XML attribute values.
func escapeXMLAttribute(text string) string {
	return strings.ReplaceAll(escapeXMLText(text), `"`, "&quot;")
}
