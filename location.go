// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jspan

import "fmt"

// A Point describes the line and column of a character in source text.
type Point struct {
	Line   int // line number, 1-based
	Column int // column number in characters, 1-based
}

// String renders p as "line:column".
func (p Point) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// Before reports whether p precedes q in the source.
func (p Point) Before(q Point) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Column < q.Column)
}

// A Span describes a contiguous range of source text.  Start is the position
// of the first character of the range, and End is the position just past its
// last character.
type Span struct {
	Start, End Point
}

// String renders s as "line:col-line:col".
func (s Span) String() string { return s.Start.String() + "-" + s.End.String() }

// Contains reports whether p lies within s.
func (s Span) Contains(p Point) bool { return !p.Before(s.Start) && p.Before(s.End) }
