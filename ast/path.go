// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"

	"github.com/creachadair/jspan"
)

// Path traverses a sequential path into the structure of n, where path
// elements are either strings (denoting object keys), integers (denoting
// offsets into arrays or objects), or functions.  If the path is valid, the
// node reached is returned. Otherwise, Path reports an error describing the
// first step that could not be taken.
//
// If a path element is a string, the corresponding node must be an object, and
// the string selects the value of the first property with that key.
//
// If a path element is an integer, the corresponding node must be an array or
// object, and the integer selects an element or property value by index.
// Negative indices count backward from the end (-1 is last, -2 second last).
//
// If a path element is a function, the function is executed and its result
// becomes the next node in the sequence. The function must have a signature
//
//	func(ast.Node) (ast.Node, error)
func Path(n Node, path ...any) (Node, error) {
	cur := n
	for i, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, ok := cur.(*Object)
			if !ok {
				return nil, fmt.Errorf("step %d: cannot traverse %T with %q", i, cur, t)
			}
			p := obj.Find(t)
			if p == nil {
				return nil, fmt.Errorf("step %d: key %q not found", i, t)
			}
			cur = p.Value

		case int:
			switch e := cur.(type) {
			case *Array:
				j, ok := fixArrayBound(len(e.Elements), t)
				if !ok {
					return nil, fmt.Errorf("step %d: array index %d out of bounds (n=%d)", i, t, len(e.Elements))
				}
				cur = e.Elements[j]
			case *Object:
				j, ok := fixArrayBound(len(e.Properties), t)
				if !ok {
					return nil, fmt.Errorf("step %d: object index %d out of bounds (n=%d)", i, t, len(e.Properties))
				}
				cur = e.Properties[j].Value
			default:
				return nil, fmt.Errorf("step %d: cannot traverse %T with %v", i, cur, t)
			}

		case func(Node) (Node, error):
			next, err := t(cur)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			cur = next

		default:
			return nil, fmt.Errorf("step %d: invalid path element %T", i, elt)
		}
	}
	return cur, nil
}

// Locate returns the nodes among vs and their descendants whose spans contain
// pos, from outermost to innermost. If pos falls within the key of a property,
// the key literal is the innermost node reported. Locate returns nil if no
// node contains pos.
func Locate(vs []Node, pos jspan.Point) []Node {
	var out []Node
	for next := findContaining(vs, pos); next != nil; {
		out = append(out, next)
		switch t := next.(type) {
		case *Object:
			next = nil
			for _, p := range t.Properties {
				if p.Key.Span().Contains(pos) {
					next = p.Key
					break
				} else if p.Value.Span().Contains(pos) {
					next = p.Value
					break
				}
			}
		case *Array:
			next = findContaining(t.Elements, pos)
		default:
			next = nil
		}
	}
	return out
}

func findContaining(vs []Node, pos jspan.Point) Node {
	for _, v := range vs {
		if v.Span().Contains(pos) {
			return v
		}
	}
	return nil
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
