// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jspan

import (
	"fmt"

	"go4.org/mem"
)

// A Cursor tracks a scanning position in source text. The text is decoded into
// characters once when the cursor is constructed, and the cursor advances
// forward through it, updating its line and column as characters are
// consumed.
//
// A Cursor is not safe for concurrent use by multiple goroutines.
type Cursor struct {
	text []rune
	off  int   // offset of the current character in text
	pos  Point // line and column of the current character
}

// NewCursor constructs a Cursor positioned at the beginning of text.
// Invalid UTF-8 sequences in text are decoded as the Unicode replacement rune.
func NewCursor(text string) *Cursor {
	buf := make([]rune, 0, len(text))
	src := mem.S(text)
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}
		buf = append(buf, r)
		src = src.SliceFrom(n)
	}
	return &Cursor{text: buf, pos: Point{Line: 1, Column: 1}}
}

// Len reports the total number of characters in the input.
func (c *Cursor) Len() int { return len(c.text) }

// Offset reports the offset of the current character, counted in characters
// from the start of the input.
func (c *Cursor) Offset() int { return c.off }

// Pos reports the line and column of the current character.
func (c *Cursor) Pos() Point { return c.pos }

// AtEnd reports whether the whole input has been consumed.
func (c *Cursor) AtEnd() bool { return c.off >= len(c.text) }

// Peek returns the character at offset off of the input, without moving the
// cursor. It reports an ErrOutOfRange error if off is outside the input.
func (c *Cursor) Peek(off int) (rune, error) {
	if off < 0 || off >= len(c.text) {
		return 0, &SyntaxError{
			Kind:    ErrOutOfRange,
			Pos:     c.pos,
			Message: fmt.Sprintf("offset %d out of range (n=%d)", off, len(c.text)),
		}
	}
	return c.text[off], nil
}

// Current returns the character under the cursor. It reports false if the
// input is exhausted.
func (c *Cursor) Current() (rune, bool) {
	if c.AtEnd() {
		return 0, false
	}
	return c.text[c.off], true
}

// Advance consumes the current character. A newline moves the position to
// the first column of the next line; any other character moves it one column
// to the right. Advance reports an ErrUnexpectedEOF error at the end of the
// input.
func (c *Cursor) Advance() error {
	if c.AtEnd() {
		return UnexpectedEOF(c.pos, "")
	}
	c.advance()
	return nil
}

func (c *Cursor) advance() {
	if c.text[c.off] == '\n' {
		c.pos.Line++
		c.pos.Column = 1
	} else {
		c.pos.Column++
	}
	c.off++
}

// Expect consumes the current character if it equals ch. Otherwise, it
// reports an ErrUnexpectedChar error, or ErrUnexpectedEOF at the end of the
// input, and the cursor does not move.
func (c *Cursor) Expect(ch rune) error {
	cur, ok := c.Current()
	if !ok {
		return UnexpectedEOF(c.pos, fmt.Sprintf("%q", ch))
	} else if cur != ch {
		return UnexpectedChar(c.pos, fmt.Sprintf("%q", ch), cur)
	}
	c.advance()
	return nil
}

// ConsumeIf consumes the current character if it equals ch, and reports
// whether it did so.
func (c *Cursor) ConsumeIf(ch rune) bool {
	if cur, ok := c.Current(); ok && cur == ch {
		c.advance()
		return true
	}
	return false
}

// AdvanceWhile consumes characters matching f until the end of the input or
// until a character not matching f is found. It returns the number of
// characters consumed.
func (c *Cursor) AdvanceWhile(f func(rune) bool) int {
	var nr int
	for !c.AtEnd() && f(c.text[c.off]) {
		c.advance()
		nr++
	}
	return nr
}

// SkipWhitespace consumes a run of spaces and newlines. Other characters,
// including tabs and carriage returns, are not considered whitespace.
func (c *Cursor) SkipWhitespace() { c.AdvanceWhile(isSpace) }

// Slice returns the text of the input between offsets from (inclusive) and
// to (exclusive). The offsets are clamped to the bounds of the input.
func (c *Cursor) Slice(from, to int) string {
	from = max(0, min(from, len(c.text)))
	to = max(from, min(to, len(c.text)))
	return string(c.text[from:to])
}

func isSpace(ch rune) bool { return ch == ' ' || ch == '\n' }
