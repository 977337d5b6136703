package store

import (
	"strings"

	"github.com/google/uuid"
)

// NodeKind distinguishes the three kinds of graph node. The zero kind is
// the wildcard used in find patterns.
type NodeKind uint8

const (
	KindAny NodeKind = iota
	KindURI
	KindBlank
	KindLiteral
)

func (k NodeKind) String() string {
	switch k {
	case KindURI:
		return "uri"
	case KindBlank:
		return "blank"
	case KindLiteral:
		return "literal"
	default:
		return "any"
	}
}

// Node is an immutable graph term: a URI, a blank node or a literal.
// Nodes are comparable by value and usable as map keys.
//   - URI: Value holds the full URI
//   - Blank: Value holds the label without the "_:" prefix
//   - Literal: Value holds the lexical form, with an optional Lang or Datatype
type Node struct {
	Kind     NodeKind
	Value    string
	Lang     string
	Datatype string
}

// Any is the wildcard node. It matches every node in Find and Remove.
var Any = Node{}

// URI creates a URI node.
func URI(uri string) Node {
	return Node{Kind: KindURI, Value: uri}
}

// Blank creates a blank node with the given label.
func Blank(label string) Node {
	return Node{Kind: KindBlank, Value: strings.TrimPrefix(label, "_:")}
}

// NewBlank mints a blank node with a fresh, globally unique label.
func NewBlank() Node {
	return Blank("b" + strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// Literal creates a plain literal.
func Literal(lexical string) Node {
	return Node{Kind: KindLiteral, Value: lexical}
}

// LangLiteral creates a literal with a language tag.
func LangLiteral(lexical, lang string) Node {
	return Node{Kind: KindLiteral, Value: lexical, Lang: strings.ToLower(lang)}
}

// TypedLiteral creates a literal with a datatype URI.
func TypedLiteral(lexical, datatype string) Node {
	return Node{Kind: KindLiteral, Value: lexical, Datatype: datatype}
}

// IsAny reports whether the node is the wildcard.
func (n Node) IsAny() bool { return n.Kind == KindAny }

// IsURI reports whether the node is a URI.
func (n Node) IsURI() bool { return n.Kind == KindURI }

// IsBlank reports whether the node is a blank node.
func (n Node) IsBlank() bool { return n.Kind == KindBlank }

// IsLiteral reports whether the node is a literal.
func (n Node) IsLiteral() bool { return n.Kind == KindLiteral }

// IsResource reports whether the node can be the subject of a triple.
func (n Node) IsResource() bool { return n.Kind == KindURI || n.Kind == KindBlank }

// Matches reports whether the node matches a pattern node, where Any
// matches everything.
func (n Node) Matches(pattern Node) bool {
	return pattern.IsAny() || n == pattern
}

// LocalName returns the part of a URI after the last '#' or '/'. For other
// kinds it returns Value.
func (n Node) LocalName() string {
	if n.Kind != KindURI {
		return n.Value
	}
	if idx := strings.LastIndexAny(n.Value, "#/"); idx != -1 && idx < len(n.Value)-1 {
		return n.Value[idx+1:]
	}
	return n.Value
}

// String returns the node in N-Triples syntax.
func (n Node) String() string {
	switch n.Kind {
	case KindURI:
		return "<" + n.Value + ">"
	case KindBlank:
		return "_:" + n.Value
	case KindLiteral:
		literal := `"` + escapeLiteralString(n.Value) + `"`
		if n.Lang != "" {
			return literal + "@" + n.Lang
		}
		if n.Datatype != "" {
			return literal + "^^<" + n.Datatype + ">"
		}
		return literal
	default:
		return "ANY"
	}
}
