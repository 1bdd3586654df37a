// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/jspan/ast"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func lit(span, typ string, value any) map[string]any {
	return map[string]any{"kind": "literal", "span": span, "type": typ, "value": value}
}

func TestRender(t *testing.T) {
	v, err := ast.ParseSingle(`{"a": [1, "x", true, null]}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out := ast.RenderString(v)
	t.Logf("Rendered:\n%s", out)

	var got map[string]any
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Decoding rendered output: %v", err)
	}
	want := map[string]any{
		"kind": "object",
		"span": "1:1-1:28",
		"properties": []any{
			map[string]any{
				"kind": "property",
				"span": "1:2-1:27",
				"key":  lit("1:2-1:5", "string", "a"),
				"value": map[string]any{
					"kind": "array",
					"span": "1:7-1:27",
					"elements": []any{
						lit("1:8-1:9", "number", 1),
						lit("1:11-1:14", "string", "x"),
						lit("1:16-1:20", "boolean", true),
						lit("1:22-1:26", "null", nil),
					},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render (-want, +got):\n%s", diff)
	}
}

func TestRenderStringsStayStrings(t *testing.T) {
	v, err := ast.ParseSingle(`["true", "1", "null", ""]`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var got struct {
		Elements []struct {
			Value any `yaml:"value"`
		} `yaml:"elements"`
	}
	if err := yaml.Unmarshal([]byte(ast.RenderString(v)), &got); err != nil {
		t.Fatalf("Decoding rendered output: %v", err)
	}
	var vals []any
	for _, e := range got.Elements {
		vals = append(vals, e.Value)
	}
	if diff := cmp.Diff([]any{"true", "1", "null", ""}, vals); diff != "" {
		t.Errorf("Values (-want, +got):\n%s", diff)
	}
}

func TestRenderMultiple(t *testing.T) {
	vs, err := ast.Parse(`1 [] {}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var sb strings.Builder
	if err := ast.Render(&sb, vs...); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var kinds []string
	dec := yaml.NewDecoder(strings.NewReader(sb.String()))
	for {
		var doc struct {
			Kind string `yaml:"kind"`
		}
		if err := dec.Decode(&doc); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		kinds = append(kinds, doc.Kind)
	}
	if diff := cmp.Diff([]string{"literal", "array", "object"}, kinds); diff != "" {
		t.Errorf("Kinds (-want, +got):\n%s", diff)
	}
}
