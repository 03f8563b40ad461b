package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	tagString = "!!str"
	tagMerge  = "!!merge"
	tagNull   = "!!null"
)

// Parse checks the encoding of data and parses it into a Document.
// Failures are returned as *EncodingError or *ParseError.
func Parse(id string, data []byte) (*Document, error) {
	text, err := checkEncoding(data)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(text)) == 0 {
		return nil, &ParseError{Message: "document is empty"}
	}

	decoder := yaml.NewDecoder(bytes.NewReader(text))
	var raw yaml.Node
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Message: "document is empty"}
		}
		return nil, &ParseError{Message: "YAML syntax error", Err: err}
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, &ParseError{Message: "multiple YAML documents are not supported"}
		}
		return nil, &ParseError{Message: "YAML syntax error", Err: err}
	}

	root, err := newConverter().convert(&raw, 0)
	if err != nil {
		return nil, err
	}
	if root.Kind != KindMapping {
		return nil, &ParseError{Line: root.Line, Message: fmt.Sprintf("top level is a %s, expected a mapping", root.Kind)}
	}
	return &Document{ID: id, Root: root}, nil
}

// ReadFile reads and parses the document at src.Path. Read failures are
// reported as *ParseError so a single unreadable file never aborts a run.
func ReadFile(src Source) (*Document, error) {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, &ParseError{Message: "read document", Err: err}
	}
	doc, err := Parse(src.ID, data)
	if err != nil {
		return nil, err
	}
	doc.Path = src.Path
	return doc, nil
}

const (
	// maxDepth bounds nesting so recursive anchors cannot loop forever.
	maxDepth = 256
	// maxNodes bounds the size of the converted tree, counting merged keys.
	maxNodes = 250_000
)

// converter maps a yaml.Node onto the document tree. Anchored nodes are
// converted once and shared by every alias that refers to them.
type converter struct {
	anchors map[*yaml.Node]*Node
	nodes   int
}

func newConverter() *converter {
	return &converter{anchors: map[*yaml.Node]*Node{}}
}

// grow charges n nodes against the tree budget.
func (c *converter) grow(line, n int) error {
	c.nodes += n
	if c.nodes > maxNodes {
		return &ParseError{Line: line, Message: fmt.Sprintf("document too large: more than %d nodes after alias expansion", maxNodes)}
	}
	return nil
}

// convert resolves aliases and merge keys and rejects duplicate mapping keys.
func (c *converter) convert(node *yaml.Node, depth int) (*Node, error) {
	if depth > maxDepth {
		return nil, &ParseError{Line: node.Line, Message: "document nesting too deep"}
	}
	if shared, ok := c.anchors[node]; ok {
		return shared, nil
	}
	out, err := c.convertNode(node, depth)
	if err != nil {
		return nil, err
	}
	if node.Anchor != "" {
		c.anchors[node] = out
	}
	return out, nil
}

func (c *converter) convertNode(node *yaml.Node, depth int) (*Node, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, &ParseError{Message: "document is empty"}
		}
		return c.convert(node.Content[0], depth+1)
	case yaml.AliasNode:
		if node.Alias == nil {
			return nil, &ParseError{Line: node.Line, Message: "unresolved alias"}
		}
		return c.convert(node.Alias, depth+1)
	}

	if err := c.grow(node.Line, 1); err != nil {
		return nil, err
	}
	switch node.Kind {
	case yaml.ScalarNode:
		tag := node.ShortTag()
		if tag == tagNull {
			return &Node{Kind: KindNull, Tag: tag, Line: node.Line}, nil
		}
		return &Node{Kind: KindScalar, Tag: tag, Value: node.Value, Line: node.Line}, nil
	case yaml.SequenceNode:
		out := &Node{Kind: KindSequence, Tag: node.ShortTag(), Line: node.Line}
		for _, item := range node.Content {
			child, err := c.convert(item, depth+1)
			if err != nil {
				return nil, err
			}
			out.Items = append(out.Items, child)
		}
		return out, nil
	case yaml.MappingNode:
		return c.convertMapping(node, depth)
	default:
		return nil, &ParseError{Line: node.Line, Message: "unsupported YAML node"}
	}
}

func (c *converter) convertMapping(node *yaml.Node, depth int) (*Node, error) {
	out := &Node{Kind: KindMapping, Tag: node.ShortTag(), Line: node.Line, Children: map[string]*Node{}}
	var merged []*Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]
		value, err := c.convert(valueNode, depth+1)
		if err != nil {
			return nil, err
		}
		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == tagMerge {
			merged = append(merged, mergeSources(value)...)
			continue
		}
		if keyNode.Kind != yaml.ScalarNode {
			return nil, &ParseError{Line: keyNode.Line, Message: "mapping keys must be scalars"}
		}
		key := keyNode.Value
		if _, exists := out.Children[key]; exists {
			return nil, &ParseError{Line: keyNode.Line, Message: fmt.Sprintf("duplicate key %q", key)}
		}
		out.Keys = append(out.Keys, key)
		out.Children[key] = value
	}
	// Explicit keys win over merged ones; earlier merge sources win over later.
	for _, source := range merged {
		if source.Kind != KindMapping {
			return nil, &ParseError{Line: source.Line, Message: "merge key value must be a mapping"}
		}
		if err := c.grow(node.Line, len(source.Keys)); err != nil {
			return nil, err
		}
		for _, key := range source.Keys {
			if _, exists := out.Children[key]; exists {
				continue
			}
			out.Keys = append(out.Keys, key)
			out.Children[key] = source.Children[key]
		}
	}
	return out, nil
}

func mergeSources(value *Node) []*Node {
	if value.Kind == KindSequence {
		return value.Items
	}
	return []*Node{value}
}
