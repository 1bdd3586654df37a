// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jspan implements the position-tracking machinery for a
// recursive-descent parser of JSON-like text.
//
// # Cursors
//
// The Cursor type holds the input text and the current scanning position.
// Every character consumed through a Cursor updates its line and column, so
// the parser never has to compute locations itself:
//
//	c := jspan.NewCursor(input)
//	c.SkipWhitespace()
//	if err := c.Expect('{'); err != nil {
//	   log.Fatalf("Expect: %v", err) // err is a *jspan.SyntaxError
//	}
//	log.Printf("Now at %v", c.Pos())
//
// Positions are reported as Point values (1-based line and column, counted in
// characters), and ranges of text as Span values whose End is just past the
// last character of the range.
//
// # Parsing
//
// The ast subpackage implements the parser, which builds a syntax tree in
// which every node records its Span:
//
//	vs, err := ast.Parse(`{"name": "value", "list": [1, 2, 3]}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// # Errors
//
// All errors reported by the Cursor and the parser have concrete type
// *SyntaxError. The Kind field is one of the Err* values defined in this
// package, and errors.Is may be used to test it:
//
//	if errors.Is(err, jspan.ErrInvalidNumber) {
//	   log.Print("Number out of range")
//	}
//
// A syntax error is terminal: the parser does not attempt to recover, and
// reports only the first error it encounters.
package jspan
