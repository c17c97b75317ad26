// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jview

import (
	"fmt"
	"io"
	"unicode/utf8"

	"go4.org/mem"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Integer              // number: integer with no fraction or exponent
	Number               // number with fraction and/or exponent
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Integer: "integer",
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (t Token) String() string {
	if int(t) >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[t]
}

// StartsValue reports whether t is the first token of a JSON value.
func (t Token) StartsValue() bool {
	switch t {
	case LBrace, LSquare, Integer, Number, String, True, False, Null:
		return true
	}
	return false
}

// punct maps self-delimiting bytes to their tokens.
var punct = [...]Token{
	'{': LBrace, '}': RBrace,
	'[': LSquare, ']': RSquare,
	',': Comma, ':': Colon,
}

// A Scanner splits JSON source text into lexical tokens. Each call to Next
// advances the scanner to the next token, or reports false at the end of the
// input or on error.
type Scanner struct {
	src []byte
	tok Token
	err error

	beg       Pos // start of the current token
	pos       int // offset of the next unread byte
	line, col int // line (1-based) and column of pos
}

// NewScanner constructs a Scanner over the JSON text in src. The scanner does
// not modify src, and the caller must not modify it while scanning.
func NewScanner(src []byte) *Scanner { return &Scanner{src: src, line: 1} }

// Next advances s to the next token of the input and reports whether a token
// is available. When Next returns false, Err reports io.EOF at the end of the
// input, or a *SyntaxError describing the lexical error that stopped s.
// Once Next has reported false, it continues to do so.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	s.skipSpace()
	s.beg = s.here()
	s.tok = Invalid
	if s.pos >= len(s.src) {
		s.err = io.EOF
		return false
	}

	ch := s.src[s.pos]
	if int(ch) < len(punct) && punct[ch] != Invalid {
		s.tok = punct[ch]
		s.moveTo(s.pos + 1)
		return true
	}
	switch {
	case ch == '"':
		s.err = s.scanString()
	case ch == '-' || isDigit(ch):
		s.err = s.scanNumber()
	case 'a' <= ch && ch <= 'z':
		s.err = s.scanConstant()
	default:
		r, _ := utf8.DecodeRune(s.src[s.pos:])
		s.err = s.failAt(s.pos, "unexpected %q", r)
	}
	return s.err == nil
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the error that caused the most recent call to Next to report
// false, or nil if Next last reported true.
func (s *Scanner) Err() error { return s.err }

// Text returns the undecoded text of the current token. The result aliases
// the source text and must not be modified.
func (s *Scanner) Text() []byte { return s.src[s.beg.Offset:s.pos] }

// Pos returns the starting position of the current token. After Next reports
// io.EOF, Pos is the end of the input.
func (s *Scanner) Pos() Pos { return s.beg }

func (s *Scanner) here() Pos { return Pos{Offset: s.pos, Line: s.line, Column: s.col} }

func (s *Scanner) skipSpace() {
	for ; s.pos < len(s.src); s.pos++ {
		switch s.src[s.pos] {
		case ' ', '\t', '\r':
			s.col++
		case '\n':
			s.line++
			s.col = 0
		default:
			return
		}
	}
}

// moveTo advances the read position to offset i. The bytes skipped must not
// include a newline.
func (s *Scanner) moveTo(i int) {
	s.col += i - s.pos
	s.pos = i
}

// failAt returns a *SyntaxError located at offset i on the current line.
func (s *Scanner) failAt(i int, msg string, args ...any) error {
	return &SyntaxError{
		Pos:     Pos{Offset: i, Line: s.line, Column: s.col + i - s.pos},
		Message: fmt.Sprintf(msg, args...),
	}
}

// scanString scans a quoted string starting at the current position.
// A string cannot contain a raw newline, so it lies on a single line.
func (s *Scanner) scanString() error {
	src := s.src
	for i := s.pos + 1; i < len(src); {
		switch c := src[i]; {
		case c == '"':
			s.tok = String
			s.moveTo(i + 1)
			return nil
		case c == '\\':
			if i+1 >= len(src) {
				i = len(src)
				continue
			}
			switch e := src[i+1]; e {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				if !isHex4(src[i+2:]) {
					return s.failAt(i, "invalid Unicode escape")
				}
				i += 6
			default:
				r, _ := utf8.DecodeRune(src[i+1:])
				return s.failAt(i, "invalid %q after escape", r)
			}
		case c < ' ':
			return s.failAt(i, "unescaped control %q", rune(c))
		case c < utf8.RuneSelf:
			i++
		default:
			r, n := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && n == 1 {
				return s.failAt(i, "invalid UTF-8 in string")
			}
			i += n
		}
	}
	return s.failAt(s.pos, "unterminated string")
}

// scanNumber scans a number starting at the current position:
//
//	-? (0 | [1-9][0-9]*) (\.[0-9]+)? ([eE][-+]?[0-9]+)?
func (s *Scanner) scanNumber() error {
	src := s.src
	i := s.pos
	if src[i] == '-' {
		i++
		if i >= len(src) || !isDigit(src[i]) {
			return s.failAt(i, "expected digit after %q", '-')
		}
	}
	if src[i] == '0' && i+1 < len(src) && isDigit(src[i+1]) {
		return s.failAt(i, "extra leading zeroes")
	}
	i = skipDigits(src, i)

	s.tok = Integer
	if i < len(src) && src[i] == '.' {
		j := skipDigits(src, i+1)
		if j == i+1 {
			return s.failAt(j, "no digits after decimal point")
		}
		i, s.tok = j, Number
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		i++
		if i < len(src) && (src[i] == '+' || src[i] == '-') {
			i++
		}
		j := skipDigits(src, i)
		if j == i {
			return s.failAt(j, "missing exponent digits")
		}
		i, s.tok = j, Number
	}
	s.moveTo(i)
	return nil
}

var constants = [...]struct {
	name string
	tok  Token
}{{"true", True}, {"false", False}, {"null", Null}}

// scanConstant scans a lowercase word and checks that it names a constant.
func (s *Scanner) scanConstant() error {
	end := s.pos
	for end < len(s.src) && 'a' <= s.src[end] && s.src[end] <= 'z' {
		end++
	}
	word := mem.B(s.src[s.pos:end])
	for _, c := range constants {
		if word.EqualString(c.name) {
			s.tok = c.tok
			s.moveTo(end)
			return nil
		}
	}
	return s.failAt(s.pos, "unknown constant %q", word.StringCopy())
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isHex4(b []byte) bool {
	if len(b) < 4 {
		return false
	}
	for _, c := range b[:4] {
		if !isHexDigit(c) {
			return false
		}
	}
	return true
}

func skipDigits(src []byte, i int) int {
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	return i
}
