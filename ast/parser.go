// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"strconv"

	"github.com/creachadair/jspan"
)

// DefaultMaxDepth is the default limit on the nesting depth of objects and
// arrays accepted by a Parser.
const DefaultMaxDepth = 512

var (
	// ErrNoInput is reported by ParseSingle if the input contains no value.
	ErrNoInput = errors.New("no value in input")

	// ErrExtraInput is reported by ParseSingle if the input contains more than
	// one value.
	ErrExtraInput = errors.New("extra input after value")
)

// Parse parses and returns the values in text using the default settings.
// In case of error, no values are returned, and the error has concrete type
// *jspan.SyntaxError.
func Parse(text string) ([]Node, error) { return new(Parser).Parse(text) }

// ParseSingle parses text using the default settings and returns its only
// value. See Parser.ParseSingle.
func ParseSingle(text string) (Node, error) { return new(Parser).ParseSingle(text) }

// A Parser parses JSON-like text into syntax trees.  The zero value is ready
// for use with default settings. A Parser holds only settings, so a single
// Parser may be used for concurrent calls.
type Parser struct {
	maxDepth int  // 0 means DefaultMaxDepth
	loose    bool // allow missing and trailing separators
}

// NewParser constructs a new Parser with default settings.
func NewParser() *Parser { return new(Parser) }

// MaxDepth sets the maximum nesting depth of objects and arrays. A value at a
// depth greater than n is reported as a jspan.ErrDepthExceeded error.  If
// n <= 0, the limit is reset to DefaultMaxDepth.
func (p *Parser) MaxDepth(n int) { p.maxDepth = max(n, 0) }

// AllowLooseSeparators configures the parser to accept (true) or reject
// (false) a missing comma between the elements of an object or array, and a
// comma after the last element. This is a compatibility setting; by default
// separators are required and trailing commas are rejected.
func (p *Parser) AllowLooseSeparators(ok bool) { p.loose = ok }

// Parse parses and returns the values in text, in the order they occur.
// Values may be separated by whitespace. An empty input yields no values and
// no error. In case of error, no values are returned, and the error has
// concrete type *jspan.SyntaxError.
func (p *Parser) Parse(text string) ([]Node, error) {
	limit := p.maxDepth
	if limit == 0 {
		limit = DefaultMaxDepth
	}
	st := &parseState{c: jspan.NewCursor(text), limit: limit, loose: p.loose}
	return st.parseDocument()
}

// ParseSingle parses text and returns its only value. If text contains no
// values, it reports ErrNoInput. If text contains more than one value, it
// returns the first along with ErrExtraInput. The whole input must be
// syntactically valid.
func (p *Parser) ParseSingle(text string) (Node, error) {
	vs, err := p.Parse(text)
	if err != nil {
		return nil, err
	}
	switch len(vs) {
	case 0:
		return nil, ErrNoInput
	case 1:
		return vs[0], nil
	default:
		return vs[0], ErrExtraInput
	}
}

// parseState holds the state of a single call to Parse.
//
// The grammar methods abort parsing by panicking with a *jspan.SyntaxError,
// which is recovered by parseDocument. Each grammar method is entered with the
// cursor on the first character of its production, and returns with the
// cursor just past the end of the production.
type parseState struct {
	c     *jspan.Cursor
	depth int
	limit int
	loose bool
}

func (s *parseState) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		serr, ok := perr.(*jspan.SyntaxError)
		if !ok {
			panic(perr)
		}
		*errp = serr
	}
}

// parseDocument consumes a sequence of zero or more values separated by
// optional whitespace, until the input is exhausted.
func (s *parseState) parseDocument() (_ []Node, err error) {
	defer s.recoverParseError(&err)

	var vs []Node
	for {
		s.c.SkipWhitespace()
		if s.c.AtEnd() {
			return vs, nil
		}
		vs = append(vs, s.parseValue())
	}
}

// parseValue consumes a single value of any type.
func (s *parseState) parseValue() Node {
	ch, ok := s.c.Current()
	switch {
	case !ok:
		panic(jspan.UnexpectedEOF(s.c.Pos(), "value"))
	case ch == '{':
		return s.parseObject()
	case ch == '[':
		return s.parseArray()
	case ch == '"':
		return s.parseString()
	case isDigit(ch):
		return s.parseNumber()
	case isLetter(ch):
		return s.parseConstant()
	default:
		panic(jspan.UnexpectedChar(s.c.Pos(), "value", ch))
	}
}

// parseObject consumes an object and its properties.
// Precondition: current == '{'.
func (s *parseState) parseObject() *Object {
	start := s.c.Pos()
	s.enter()
	defer s.leave()

	s.check(s.c.Expect('{'))
	obj := new(Object)
	s.c.SkipWhitespace()
	if !s.c.ConsumeIf('}') {
		for {
			obj.Properties = append(obj.Properties, s.parseProperty())
			if s.endOfElement('}', `"," or "}"`) {
				break
			}
		}
	}
	obj.span = jspan.Span{Start: start, End: s.c.Pos()}
	return obj
}

// parseProperty consumes a single "key": value pair.
// Precondition: current is the first character of the key.
func (s *parseState) parseProperty() *Property {
	start := s.c.Pos()
	ch, ok := s.c.Current()
	if !ok {
		panic(jspan.UnexpectedEOF(start, "object key"))
	} else if ch != '"' {
		panic(jspan.InvalidKey(start, ch))
	}
	key := s.parseString()

	s.c.SkipWhitespace()
	s.check(s.c.Expect(':'))
	s.c.SkipWhitespace()
	val := s.parseValue()

	return &Property{
		Key:   key,
		Value: val,
		span:  jspan.Span{Start: start, End: s.c.Pos()},
	}
}

// parseArray consumes an array and its elements.
// Precondition: current == '['.
func (s *parseState) parseArray() *Array {
	start := s.c.Pos()
	s.enter()
	defer s.leave()

	s.check(s.c.Expect('['))
	arr := new(Array)
	s.c.SkipWhitespace()
	if !s.c.ConsumeIf(']') {
		for {
			arr.Elements = append(arr.Elements, s.parseValue())
			if s.endOfElement(']', `"," or "]"`) {
				break
			}
		}
	}
	arr.span = jspan.Span{Start: start, End: s.c.Pos()}
	return arr
}

// endOfElement consumes the separator following an element of an object or
// array, along with surrounding whitespace. It reports true if the closing
// delimiter was consumed, or false if another element should follow.
func (s *parseState) endOfElement(closer rune, want string) bool {
	s.c.SkipWhitespace()
	if s.c.ConsumeIf(closer) {
		return true
	} else if s.c.ConsumeIf(',') {
		s.c.SkipWhitespace()
		return s.loose && s.c.ConsumeIf(closer) // trailing comma
	} else if s.loose {
		return false // missing comma
	}
	if ch, ok := s.c.Current(); ok {
		panic(jspan.UnexpectedChar(s.c.Pos(), want, ch))
	}
	panic(jspan.UnexpectedEOF(s.c.Pos(), want))
}

// parseString consumes a quoted string. The text of the value is the raw
// source between the quotes. A backslash prevents the character after it from
// closing the string, but is otherwise not interpreted.
// Precondition: current == '"'.
func (s *parseState) parseString() *Literal {
	start := s.c.Pos()
	s.check(s.c.Expect('"'))
	pos := s.c.Offset()
	for {
		ch, ok := s.c.Current()
		if !ok {
			panic(jspan.UnterminatedString(start))
		} else if ch == '"' {
			break
		}
		s.check(s.c.Advance())
		if ch == '\\' && !s.c.AtEnd() {
			s.check(s.c.Advance())
		}
	}
	text := s.c.Slice(pos, s.c.Offset())
	s.check(s.c.Advance()) // closing quote

	return &Literal{
		Value: Str(text),
		span:  jspan.Span{Start: start, End: s.c.Pos()},
	}
}

// parseNumber consumes a run of decimal digits.
// Precondition: current is a digit.
func (s *parseState) parseNumber() *Literal {
	start := s.c.Pos()
	pos := s.c.Offset()
	s.c.AdvanceWhile(isDigit)
	text := s.c.Slice(pos, s.c.Offset())
	if text == "" {
		panic(jspan.InvalidNumber(start, text, nil))
	}
	z, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		panic(jspan.InvalidNumber(start, text, err))
	}
	return &Literal{
		Value: Num(z),
		span:  jspan.Span{Start: start, End: s.c.Pos()},
	}
}

// parseConstant consumes one of the constants true, false, or null. Any other
// bare word is an error.
// Precondition: current is a letter.
func (s *parseState) parseConstant() *Literal {
	start := s.c.Pos()
	pos := s.c.Offset()
	s.c.AdvanceWhile(isLetter)

	var v LiteralValue
	switch word := s.c.Slice(pos, s.c.Offset()); word {
	case "true":
		v = Bool(true)
	case "false":
		v = Bool(false)
	case "null":
		v = Null
	default:
		panic(jspan.UnknownKeyword(start, word))
	}
	return &Literal{
		Value: v,
		span:  jspan.Span{Start: start, End: s.c.Pos()},
	}
}

// enter records entry into a nested object or array, and reports an error if
// this exceeds the depth limit.
func (s *parseState) enter() {
	s.depth++
	if s.depth > s.limit {
		panic(jspan.DepthExceeded(s.c.Pos(), s.limit))
	}
}

func (s *parseState) leave() { s.depth-- }

func (s *parseState) check(err error) {
	if err != nil {
		panic(err)
	}
}

func isDigit(ch rune) bool  { return '0' <= ch && ch <= '9' }
func isLetter(ch rune) bool { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }
