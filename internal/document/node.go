package document

// Kind classifies a node in a document tree.
type Kind int

const (
	KindMapping Kind = iota
	KindScalar
	KindSequence
	KindNull
)

// String returns a human readable name for the node kind.
func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Node is one position in a document tree. Mappings keep key order.
type Node struct {
	Kind     Kind
	Tag      string
	Value    string
	Keys     []string
	Children map[string]*Node
	Items    []*Node
	Line     int
}

// Get returns the child stored under key when n is a mapping.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != KindMapping {
		return nil, false
	}
	child, ok := n.Children[key]
	return child, ok
}

// Has reports whether a mapping contains key.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// IsMapping reports whether n is a mapping node.
func (n *Node) IsMapping() bool {
	return n != nil && n.Kind == KindMapping
}

// IsString reports whether n is a scalar resolved to the YAML string type.
func (n *Node) IsString() bool {
	return n != nil && n.Kind == KindScalar && n.Tag == tagString
}

// TypeName describes the node for messages ("string", "integer", "mapping", ...).
func (n *Node) TypeName() string {
	if n == nil {
		return "missing"
	}
	if n.Kind != KindScalar {
		return n.Kind.String()
	}
	switch n.Tag {
	case tagString:
		return "string"
	case "!!int":
		return "integer"
	case "!!float":
		return "float"
	case "!!bool":
		return "boolean"
	case "!!timestamp":
		return "timestamp"
	case "!!binary":
		return "binary"
	default:
		return "scalar " + n.Tag
	}
}

// Document is one parsed locale file.
type Document struct {
	ID   string
	Path string
	Root *Node
}
