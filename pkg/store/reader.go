package store

import (
	"io"

	"github.com/knakk/rdf"

	"github.com/coolbeans/ontograph/pkg/errors"
)

func decoderFormat(format Format) (rdf.Format, error) {
	switch format {
	case FormatTurtle:
		return rdf.Turtle, nil
	case FormatNTriples:
		return rdf.NTriples, nil
	case FormatRDFXML:
		return rdf.RDFXML, nil
	default:
		return 0, errors.Newf("no reader for syntax %q", format)
	}
}

// Read decodes RDF from r and adds every triple to g. base resolves
// relative IRIs in Turtle and RDF/XML input. Blank node labels are local
// to one call: each label gets a fresh node, so documents read into the
// same union never share blank nodes. It returns the number of triples
// decoded.
func Read(r io.Reader, base string, format Format, g Graph) (int, error) {
	rdfFormat, err := decoderFormat(format)
	if err != nil {
		return 0, err
	}

	decoder := rdf.NewTripleDecoder(r, rdfFormat)
	if base != "" {
		if baseIRI, err := rdf.NewIRI(base); err == nil {
			_ = decoder.SetOption(rdf.Base, baseIRI)
		}
	}

	terms := termMapper{blanks: make(map[string]Node)}
	count := 0
	for {
		decoded, err := decoder.Decode()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, errors.Wrapf(err, "decode %s", format)
		}

		triple := Triple{
			Subject:   terms.node(decoded.Subj),
			Predicate: terms.node(decoded.Pred),
			Object:    terms.node(decoded.Obj),
		}
		if err := g.Add(triple); err != nil {
			return count, err
		}
		count++
	}
}

type termMapper struct {
	blanks map[string]Node
}

// node converts a decoded term to a Node.
func (m termMapper) node(term rdf.Term) Node {
	switch term.Type() {
	case rdf.TermIRI:
		return URI(term.String())
	case rdf.TermBlank:
		label := term.String()
		n, ok := m.blanks[label]
		if !ok {
			n = NewBlank()
			m.blanks[label] = n
		}
		return n
	default:
		literal, ok := term.(rdf.Literal)
		if !ok {
			return Literal(term.String())
		}
		if lang := literal.Lang(); lang != "" {
			return LangLiteral(literal.String(), lang)
		}
		datatype := literal.DataType.String()
		if datatype == "" || datatype == NamespaceXSD+"string" {
			return Literal(literal.String())
		}
		return TypedLiteral(literal.String(), datatype)
	}
}
