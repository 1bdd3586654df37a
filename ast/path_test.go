// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/creachadair/jspan/ast"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestPath(t *testing.T) {
	v, err := ast.ParseSingle(testJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	root := v.(*ast.Object)
	list := root.Find("list").Value.(*ast.Array)
	xyz := root.Find("xyz").Value.(*ast.Object)

	tests := []struct {
		name string
		path []any
		want ast.Node
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, nil, true},
		{"WrongType", []any{"o", "hi"}, nil, true},
		{"BadElement", []any{3.5}, nil, true},

		{"ArrayPos", []any{"list", 1}, list.Elements[1], false},
		{"ArrayNeg", []any{"list", -1}, list.Elements[1], false},
		{"ArrayRange", []any{"o", 25}, nil, true},
		{"ObjIndex", []any{"xyz", 1}, xyz.Properties[1].Value, false},
		{"ObjPath", []any{"xyz", "d"}, xyz.Find("d").Value, false},
		{"Deep", []any{"list", 0, "x"}, list.Elements[0].(*ast.Object).Properties[0].Value, false},
		{"LiteralIndex", []any{"xyz", "d", 0}, nil, true},

		{"FuncArray", []any{"o", testPathFunc}, root.Find("o").Value.(*ast.Array).Elements[0], false},
		{"FuncObj", []any{"xyz", testPathFunc}, xyz.Properties[0].Value, false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ast.Path(v, tc.path...)
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Path %+v: unexpected error: %v", tc.path, err)
				}
			} else if tc.fail {
				t.Fatalf("Path %+v: got %v, want error", tc.path, got)
			}
			if got != tc.want {
				t.Errorf("Path %+v: got %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

// testPathFunc maps a container to its first element or property value.
func testPathFunc(n ast.Node) (ast.Node, error) {
	switch t := n.(type) {
	case *ast.Array:
		return t.Elements[0], nil
	case *ast.Object:
		return t.Properties[0].Value, nil
	default:
		return nil, errors.New("not a container")
	}
}

func TestLocate(t *testing.T) {
	vs, err := ast.Parse(`{"a": [1, 22]} "b"`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	describe := func(ns []ast.Node) []string {
		var out []string
		for _, n := range ns {
			out = append(out, fmt.Sprintf("%T %v", n, n.Span()))
		}
		return out
	}

	tests := []struct {
		line, col int
		want      []string
	}{
		{1, 1, []string{"*ast.Object 1:1-1:15"}},
		{1, 3, []string{"*ast.Object 1:1-1:15", "*ast.Literal 1:2-1:5"}},
		{1, 5, []string{"*ast.Object 1:1-1:15"}},
		{1, 7, []string{"*ast.Object 1:1-1:15", "*ast.Array 1:7-1:14"}},
		{1, 12, []string{"*ast.Object 1:1-1:15", "*ast.Array 1:7-1:14", "*ast.Literal 1:11-1:13"}},
		{1, 15, nil},
		{1, 17, []string{"*ast.Literal 1:16-1:19"}},
		{2, 1, nil},
	}
	for _, tc := range tests {
		got := describe(ast.Locate(vs, pt(tc.line, tc.col)))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Locate %d:%d (-want, +got):\n%s", tc.line, tc.col, diff)
		}
	}
}
