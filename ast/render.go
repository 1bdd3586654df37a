// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Render writes a human-readable rendering of each of the given nodes to w, as
// a sequence of YAML documents. Each level of the tree is rendered as a
// mapping giving the kind and span of the node, and its children, key, or
// value as appropriate:
//
//	kind: object
//	span: "1:1-1:9"
//	properties:
//	  - kind: property
//	    span: "1:2-1:8"
//	    key: {kind: literal, span: "1:2-1:5", type: string, value: "a"}
//	    value: {kind: literal, span: "1:7-1:8", type: number, value: 1}
//
// Render is intended for debugging and testing; its output is not meant to be
// parsed as JSON.
func Render(w io.Writer, nodes ...Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, n := range nodes {
		if err := enc.Encode(renderNode(n)); err != nil {
			return err
		}
	}
	return enc.Close()
}

// RenderString renders n as a string. See Render.
func RenderString(n Node) string {
	var sb strings.Builder
	if err := Render(&sb, n); err != nil {
		panic(err) // writing to a strings.Builder does not fail
	}
	return sb.String()
}

func renderNode(n Node) *yaml.Node {
	switch t := n.(type) {
	case *Object:
		props := seqNode()
		for _, p := range t.Properties {
			props.Content = append(props.Content, mapNode(
				"kind", strNode("property", 0),
				"span", strNode(p.Span().String(), yaml.DoubleQuotedStyle),
				"key", renderNode(p.Key),
				"value", renderNode(p.Value),
			))
		}
		return mapNode(
			"kind", strNode("object", 0),
			"span", strNode(t.Span().String(), yaml.DoubleQuotedStyle),
			"properties", props,
		)

	case *Array:
		elts := seqNode()
		for _, e := range t.Elements {
			elts.Content = append(elts.Content, renderNode(e))
		}
		return mapNode(
			"kind", strNode("array", 0),
			"span", strNode(t.Span().String(), yaml.DoubleQuotedStyle),
			"elements", elts,
		)

	case *Literal:
		return mapNode(
			"kind", strNode("literal", 0),
			"span", strNode(t.Span().String(), yaml.DoubleQuotedStyle),
			"type", strNode(t.Value.Kind().String(), 0),
			"value", valueNode(t.Value),
		)

	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func valueNode(v LiteralValue) *yaml.Node {
	switch v.Kind() {
	case StrKind:
		return strNode(v.Text(), yaml.DoubleQuotedStyle)
	case NumKind:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v.Int64(), 10)}
	case BoolKind:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.Bool())}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func strNode(s string, style yaml.Style) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: style}
}

func seqNode() *yaml.Node { return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"} }

// mapNode constructs a mapping from alternating keys and values.
func mapNode(kvs ...any) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i+1 < len(kvs); i += 2 {
		m.Content = append(m.Content, strNode(kvs[i].(string), 0), kvs[i+1].(*yaml.Node))
	}
	return m
}
