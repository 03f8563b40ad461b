package spec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadExpectations reads an expectation table from a YAML file. The file may
// be a mapping of locale ids to values, the same mapping nested under an
// "expectations" key, or a list of {id, value} entries.
func LoadExpectations(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read expectations: %w", err)
	}
	return ParseExpectations(data, filepath.Base(path))
}

// ParseExpectations parses expectation table bytes; source names the input
// in error messages.
func ParseExpectations(data []byte, source string) (map[string]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("no expectations found in %s", source)
	}
	expectations := map[string]string{}
	if err := parseExpectationNode(doc.Content[0], expectations, source); err != nil {
		return nil, err
	}
	return expectations, nil
}

// parseExpectationNode dispatches to map or list parsing based on node kind.
func parseExpectationNode(node *yaml.Node, expectations map[string]string, source string) error {
	switch node.Kind {
	case yaml.MappingNode:
		if nested := mappingValue(node, "expectations"); nested != nil {
			return parseExpectationNode(nested, expectations, source)
		}
		return parseExpectationMapNode(node, expectations, source)
	case yaml.SequenceNode:
		return parseExpectationListNode(node, expectations, source)
	default:
		return fmt.Errorf("invalid expectations in %s", source)
	}
}

// parseExpectationMapNode parses a mapping of ids to expected values.
func parseExpectationMapNode(node *yaml.Node, expectations map[string]string, source string) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		id := strings.TrimSpace(node.Content[i].Value)
		if id == "" {
			return fmt.Errorf("empty locale id in %s", source)
		}
		if err := addExpectation(expectations, id, node.Content[i+1], source); err != nil {
			return err
		}
	}
	return nil
}

// parseExpectationListNode parses a list of {id, value} entries.
func parseExpectationListNode(node *yaml.Node, expectations map[string]string, source string) error {
	for _, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return fmt.Errorf("invalid expectation entry in %s", source)
		}
		idNode := mappingValue(item, "id")
		if idNode == nil || strings.TrimSpace(idNode.Value) == "" {
			return fmt.Errorf("missing id in %s (line %d)", source, item.Line)
		}
		valueNode := mappingValue(item, "value")
		if valueNode == nil {
			return fmt.Errorf("missing value for %q in %s", idNode.Value, source)
		}
		if err := addExpectation(expectations, strings.TrimSpace(idNode.Value), valueNode, source); err != nil {
			return err
		}
	}
	return nil
}

func addExpectation(expectations map[string]string, id string, value *yaml.Node, source string) error {
	if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!str" {
		return fmt.Errorf("expectation for %q in %s must be a string", id, source)
	}
	if _, exists := expectations[id]; exists {
		return fmt.Errorf("duplicate expectation for %q in %s", id, source)
	}
	expectations[id] = value.Value
	return nil
}

// mappingValue returns the value node for a key in a mapping node.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
