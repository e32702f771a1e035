// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package connstr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"zombiezen.com/go/log"
)

// ErrInvalidUTF8 is wrapped by the *ParseError returned from UnmarshalText
// when its input is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// A ParseError describes input that cannot be interpreted as a connection
// string at all. Malformed properties never produce a ParseError; they are
// skipped.
type ParseError struct {
	// Offset is the byte offset in the input where the problem was found.
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("connstr: parse: offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses a connection string. Parse never fails: properties that
// cannot be understood are dropped. See the Syntax section in the package
// documentation for the format recognized by Parse.
func Parse(s string) *ConnectionString {
	return parse(s, nil)
}

// ParseContext is like Parse, but logs each dropped property at debug level
// to the logger in ctx. Property text is never logged.
func ParseContext(ctx context.Context, s string) *ConnectionString {
	return parse(s, func(offset int, reason string) {
		log.Debugf(ctx, "Skipping connection string property at offset %d: %s", offset, reason)
	})
}

func parse(s string, skip func(offset int, reason string)) *ConnectionString {
	cs := new(ConnectionString)
	t := tokenizer{s: s}
	for {
		p, ok := t.next()
		if !ok {
			return cs
		}
		if p.trailing {
			if skip != nil {
				skip(p.offset, "unexpected text after quoted value")
			}
			continue
		}
		key := strings.TrimSpace(strings.ReplaceAll(p.key, "==", "="))
		if key == "" {
			if p.hasValue && skip != nil {
				skip(p.offset, "empty key")
			}
			continue
		}
		cs.Set(Normalize(key), p.decodeValue())
	}
}

// validUTF8 returns the offset of the first invalid UTF-8 sequence in b,
// or -1 if b is valid.
func validUTF8(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// A rawPair is a property as it appears in the input, before unescaping.
type rawPair struct {
	offset int // byte offset of the property in the input

	// key is the untrimmed key text with "==" escapes intact.
	key string
	// hasValue is false if the property had no '='.
	hasValue bool
	// value is the trimmed value text. If quote is nonzero, value includes
	// the surrounding quote characters.
	value string
	quote byte
	// trailing is set if text other than whitespace followed the closing
	// quote of the value.
	trailing bool
}

func (p rawPair) decodeValue() string {
	if p.quote == 0 {
		return p.value
	}
	inner := p.value[1 : len(p.value)-1]
	q := string(p.quote)
	return strings.ReplaceAll(inner, q+q, q)
}

// tokenizer splits a connection string into raw properties in a single
// forward pass.
type tokenizer struct {
	s   string
	pos int
}

// next returns the next property or false at the end of input. Empty
// segments are skipped.
func (t *tokenizer) next() (rawPair, bool) {
	for t.pos < len(t.s) {
		start := t.pos
		i := t.scanKey(start)
		p := rawPair{offset: start, key: t.s[start:i]}
		if i >= len(t.s) || t.s[i] == ';' {
			t.pos = i + 1
			if strings.TrimSpace(p.key) == "" {
				continue
			}
			return p, true
		}
		p.hasValue = true
		t.scanValue(&p, i+1)
		return p, true
	}
	return rawPair{}, false
}

// scanKey returns the index of the '=' or ';' that ends the key starting at
// start, or len(t.s).
func (t *tokenizer) scanKey(start int) int {
	for i := start; i < len(t.s); i++ {
		switch t.s[i] {
		case ';':
			return i
		case '=':
			if i+1 < len(t.s) && t.s[i+1] == '=' {
				i++
				continue
			}
			return i
		}
	}
	return len(t.s)
}

// scanValue fills in the value of p, which starts at start, and advances
// t.pos past the terminating semicolon.
func (t *tokenizer) scanValue(p *rawPair, start int) {
	rest := strings.TrimLeftFunc(t.s[start:], unicode.IsSpace)
	open := len(t.s) - len(rest)
	if open < len(t.s) && (t.s[open] == '"' || t.s[open] == '\'') {
		if end, ok := scanQuoted(t.s, open); ok {
			semi := indexSemicolon(t.s, end)
			p.value = t.s[open:end]
			p.quote = t.s[open]
			p.trailing = strings.TrimSpace(t.s[end:semi]) != ""
			t.pos = semi + 1
			return
		}
		// Unterminated quote: fall back to the unquoted form.
	}
	semi := indexSemicolon(t.s, start)
	p.value = strings.TrimSpace(t.s[start:semi])
	t.pos = semi + 1
}

// scanQuoted returns the index just past the closing quote that matches the
// quote at s[open]. A doubled quote character does not close the value.
func scanQuoted(s string, open int) (end int, ok bool) {
	q := s[open]
	for i := open + 1; i < len(s); i++ {
		if s[i] != q {
			continue
		}
		if i+1 < len(s) && s[i+1] == q {
			i++
			continue
		}
		return i + 1, true
	}
	return 0, false
}

func indexSemicolon(s string, from int) int {
	i := strings.IndexByte(s[from:], ';')
	if i == -1 {
		return len(s)
	}
	return from + i
}
