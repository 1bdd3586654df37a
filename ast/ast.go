// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an abstract syntax tree for JSON-like values, and a
// recursive-descent parser that constructs syntax trees from source text.
//
// Every node of the tree records the span of source text it was parsed from,
// so tools can report diagnostics at precise locations.
package ast

import (
	"fmt"
	"strconv"

	"github.com/creachadair/jspan"
)

// A Node is a value in the syntax tree. The concrete type of a Node is one of
// *Object, *Array, or *Literal.
type Node interface {
	// Span reports the location of the node in the source text.
	Span() jspan.Span

	isNode()
}

// An Object is an ordered collection of key-value properties. Duplicate keys
// are permitted, and are retained in the order they occur.
type Object struct {
	Properties []*Property

	span jspan.Span
}

// Span satisfies the Node interface.
func (o *Object) Span() jspan.Span { return o.span }

// Len reports the number of properties in o.
func (o *Object) Len() int { return len(o.Properties) }

// Find returns the first property of o with the given key, or nil.
func (o *Object) Find(key string) *Property {
	for _, p := range o.Properties {
		if p.Key.Value.Text() == key {
			return p
		}
	}
	return nil
}

func (*Object) isNode() {}

// A Property is a single key-value pair belonging to an Object.
// Its span runs from the opening quote of the key to the end of the value.
type Property struct {
	Key   *Literal // always a string
	Value Node

	span jspan.Span
}

// Span reports the location of the property in the source text.
func (p *Property) Span() jspan.Span { return p.span }

// An Array is an ordered sequence of values.
type Array struct {
	Elements []Node

	span jspan.Span
}

// Span satisfies the Node interface.
func (a *Array) Span() jspan.Span { return a.span }

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.Elements) }

func (*Array) isNode() {}

// A Literal is a string, number, Boolean, or null constant.
type Literal struct {
	Value LiteralValue

	span jspan.Span
}

// Span satisfies the Node interface.
func (l *Literal) Span() jspan.Span { return l.span }

func (*Literal) isNode() {}

// Kind identifies the type of a LiteralValue.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind Kind = iota // null
	BoolKind             // true or false
	NumKind              // signed 64-bit integer
	StrKind              // quoted string
)

var kindStr = [...]string{
	NullKind: "null",
	BoolKind: "boolean",
	NumKind:  "number",
	StrKind:  "string",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid kind"
	}
	return kindStr[k]
}

// A LiteralValue is the value of a Literal. The zero value is null.
type LiteralValue struct {
	kind Kind
	text string
	num  int64
	ok   bool
}

// Null is the null literal value.
var Null LiteralValue

// Str constructs a string literal value with the given text.
func Str(s string) LiteralValue { return LiteralValue{kind: StrKind, text: s} }

// Num constructs a numeric literal value.
func Num(z int64) LiteralValue { return LiteralValue{kind: NumKind, num: z} }

// Bool constructs a Boolean literal value.
func Bool(ok bool) LiteralValue { return LiteralValue{kind: BoolKind, ok: ok} }

// Kind reports the kind of v.
func (v LiteralValue) Kind() Kind { return v.kind }

// Text returns the text of a string value. It panics if v is not a string.
// The text is the raw source between the quotation marks; escape sequences
// are not interpreted.
func (v LiteralValue) Text() string {
	v.mustBe(StrKind)
	return v.text
}

// Int64 returns the value of a number. It panics if v is not a number.
func (v LiteralValue) Int64() int64 {
	v.mustBe(NumKind)
	return v.num
}

// Bool returns the value of a Boolean. It panics if v is not a Boolean.
func (v LiteralValue) Bool() bool {
	v.mustBe(BoolKind)
	return v.ok
}

// String renders v as it would be written in source text.
func (v LiteralValue) String() string {
	switch v.kind {
	case StrKind:
		return `"` + v.text + `"`
	case NumKind:
		return strconv.FormatInt(v.num, 10)
	case BoolKind:
		return strconv.FormatBool(v.ok)
	default:
		return "null"
	}
}

func (v LiteralValue) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("literal is %v, not %v", v.kind, k))
	}
}
