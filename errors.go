// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jspan

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Error kinds reported by a SyntaxError. Use errors.Is to check the kind of an
// error returned by the parser.
var (
	ErrUnexpectedChar     = errors.New("unexpected character")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrInvalidNumber      = errors.New("invalid number")
	ErrUnexpectedEOF      = errors.New("unexpected end of input")
	ErrInvalidKey         = errors.New("invalid object key")
	ErrDepthExceeded      = errors.New("maximum nesting depth exceeded")
	ErrOutOfRange         = errors.New("offset out of range")
)

// SyntaxError is the concrete type of errors reported by the Cursor and the
// parser. Only the fields relevant to the error kind are populated.
type SyntaxError struct {
	Kind    error  // one of the Err* kinds
	Pos     Point  // where the error was detected
	Message string // human-readable description

	Expected string // ErrUnexpectedChar: what was wanted
	Found    rune   // ErrUnexpectedChar: the character found
	Text     string // ErrInvalidNumber: the raw digits; unknown keywords: the word
	Limit    int    // ErrDepthExceeded: the configured limit

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Pos, e.Message)
}

// Unwrap supports error wrapping. Both the kind and the underlying cause, if
// any, are reported.
func (e *SyntaxError) Unwrap() []error {
	if e.err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.err}
}

// UnexpectedChar constructs an ErrUnexpectedChar error at pos.
func UnexpectedChar(pos Point, want string, got rune) *SyntaxError {
	return &SyntaxError{
		Kind:     ErrUnexpectedChar,
		Pos:      pos,
		Message:  fmt.Sprintf("expected %s, got %q", want, got),
		Expected: want,
		Found:    got,
	}
}

// UnexpectedEOF constructs an ErrUnexpectedEOF error at pos.
func UnexpectedEOF(pos Point, want string) *SyntaxError {
	msg := ErrUnexpectedEOF.Error()
	if want != "" {
		msg = fmt.Sprintf("expected %s, got end of input", want)
	}
	return &SyntaxError{Kind: ErrUnexpectedEOF, Pos: pos, Message: msg, Expected: want}
}

// UnterminatedString constructs an ErrUnterminatedString error for a string
// whose opening quote is at pos.
func UnterminatedString(pos Point) *SyntaxError {
	return &SyntaxError{
		Kind:    ErrUnterminatedString,
		Pos:     pos,
		Message: "unterminated string",
	}
}

// InvalidNumber constructs an ErrInvalidNumber error for the digits in text
// starting at pos. If err != nil, it is retained as the cause.
func InvalidNumber(pos Point, text string, err error) *SyntaxError {
	msg := fmt.Sprintf("invalid number %q", text)
	if text == "" {
		msg = "expected digits"
	} else if errors.Is(err, strconv.ErrRange) {
		msg = fmt.Sprintf("number %s out of range", text)
	}
	return &SyntaxError{
		Kind:    ErrInvalidNumber,
		Pos:     pos,
		Message: msg,
		Text:    text,
		err:     err,
	}
}

// UnknownKeyword constructs an ErrUnexpectedChar error for a bare word at pos
// that is not one of the constants true, false, or null.
func UnknownKeyword(pos Point, word string) *SyntaxError {
	const want = "true, false, or null"
	first, _ := utf8.DecodeRuneInString(word)
	return &SyntaxError{
		Kind:     ErrUnexpectedChar,
		Pos:      pos,
		Message:  fmt.Sprintf("unknown constant %q, expected %s", word, want),
		Expected: want,
		Found:    first,
		Text:     word,
	}
}

// InvalidKey constructs an ErrInvalidKey error for an object key at pos that
// does not begin with got.
func InvalidKey(pos Point, got rune) *SyntaxError {
	return &SyntaxError{
		Kind:    ErrInvalidKey,
		Pos:     pos,
		Message: fmt.Sprintf("object key must be a string, got %q", got),
		Found:   got,
	}
}

// DepthExceeded constructs an ErrDepthExceeded error for a value at pos that
// would nest more deeply than limit.
func DepthExceeded(pos Point, limit int) *SyntaxError {
	return &SyntaxError{
		Kind:    ErrDepthExceeded,
		Pos:     pos,
		Message: fmt.Sprintf("nesting depth exceeds %d", limit),
		Limit:   limit,
	}
}
