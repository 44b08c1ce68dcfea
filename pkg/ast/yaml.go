package ast

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EncodeYAML renders a tree as a YAML document. Every mapping starts with a
// "type" key holding the node type; child keys follow in declaration order.
func EncodeYAML(node Node) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{toYAML(node)}}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("ast: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("ast: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func toYAML(node Node) *yaml.Node {
	if node == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
	m := newMapping(node.NodeType())
	switch n := node.(type) {
	case *IntegerLiteral:
		m.add("value", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(n.Value, 10)})
	case *StringLiteral:
		m.add("value", str(n.Value))
	case *Identifier:
		m.add("name", str(n.Name))
	case *LastValueReference:
	case *ComparisonExpression:
		m.add("operator", str(string(n.Operator)))
		m.add("left", toYAML(n.Left))
		m.add("right", toYAML(n.Right))
	case *SetStatement:
		m.add("name", str(n.Name))
		m.add("value", toYAML(n.Value))
	case *ArithmeticStatement:
		m.add("operator", str(string(n.Operator)))
		m.add("target", str(n.Target))
		m.add("value", toYAML(n.Value))
	case *ShowStatement:
		m.add("value", toYAML(n.Value))
	case *IfStatement:
		m.add("condition", toYAML(n.Condition))
		m.add("then", toYAML(n.Then))
	case *SequenceStatement:
		m.add("first", toYAML(n.First))
		m.add("second", toYAML(n.Second))
	case *CountLoop:
		m.add("count", toYAML(n.Count))
		m.add("body", toYAML(n.Body))
	}
	return m.node
}

type mapping struct {
	node *yaml.Node
}

func newMapping(kind NodeType) mapping {
	m := mapping{node: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
	m.add("type", str(string(kind)))
	return m
}

func (m mapping) add(key string, value *yaml.Node) {
	m.node.Content = append(m.node.Content, str(key), value)
}

func str(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
