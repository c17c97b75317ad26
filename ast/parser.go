// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/creachadair/jview"
)

// Parse reads r to completion and parses its contents as a single JSON value.
// See ParseBytes.
func Parse(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return ParseBytes(data)
}

// ParseString parses a single JSON value from the text of s.
func ParseString(s string) (Value, error) { return ParseBytes([]byte(s)) }

// ParseBytes parses a single JSON value from data. The input must contain
// exactly one value, optionally surrounded by whitespace. Errors in the input,
// including an empty input or data following the value, are reported as a
// *jview.SyntaxError.
//
// Object keys in the result are unique: if a key is repeated, the last value
// given for it wins, at the position where the key first appeared.
func ParseBytes(data []byte) (_ Value, err error) {
	p := &parser{s: jview.NewScanner(data)}
	defer p.recover(&err)

	p.next()
	v := p.value()
	if p.next() {
		if tok := p.s.Token(); tok.StartsValue() {
			p.fail("unexpected %v after value", tok)
		} else {
			p.fail("unexpected %v", tok)
		}
	}
	return v, nil
}

// A parser is a recursive-descent parser over the tokens of a Scanner.
// Errors are reported by panicking with a *jview.SyntaxError, which is
// recovered at the top level.
type parser struct {
	s   *jview.Scanner
	eof bool
}

func (p *parser) recover(errp *error) {
	if x := recover(); x != nil {
		serr, ok := x.(*jview.SyntaxError)
		if !ok {
			panic(x)
		}
		*errp = serr
	}
}

// next advances to the next token and reports whether one is available.
// A lexical error aborts the parse.
func (p *parser) next() bool {
	if p.s.Next() {
		return true
	}
	if err := p.s.Err(); err != io.EOF {
		panic(err)
	}
	p.eof = true
	return false
}

func (p *parser) fail(msg string, args ...any) {
	panic(&jview.SyntaxError{Pos: p.s.Pos(), Message: fmt.Sprintf(msg, args...)})
}

// expect checks that the current token is one of tokens, and returns it.
func (p *parser) expect(tokens ...jview.Token) jview.Token {
	if !p.eof && slices.Contains(tokens, p.s.Token()) {
		return p.s.Token()
	}
	got := "end of input"
	if !p.eof {
		got = p.s.Token().String()
	}
	p.fail("expected %s, got %s", orList(tokens), got)
	panic("unreachable")
}

// value parses the value beginning at the current token.
func (p *parser) value() Value {
	if p.eof {
		p.fail("unexpected end of input")
	}
	switch tok := p.s.Token(); tok {
	case jview.LBrace:
		return p.object()
	case jview.LSquare:
		return p.array()
	case jview.String:
		return String(p.text())
	case jview.Integer, jview.Number:
		return Number(p.s.Text())
	case jview.True, jview.False:
		return Bool(tok == jview.True)
	case jview.Null:
		return Null
	default:
		p.fail("unexpected %v", tok)
		panic("unreachable")
	}
}

// object parses the members of an object whose open brace is current.
func (p *parser) object() Object {
	obj := Object{}
	p.next()
	if p.expect(jview.RBrace, jview.String) == jview.RBrace {
		return obj
	}
	seen := make(map[string]int) // key → offset in obj
	for {
		key := p.text()
		p.next()
		p.expect(jview.Colon)
		p.next()
		v := p.value()

		// A repeated key replaces the earlier value but keeps its position.
		if i, ok := seen[key]; ok {
			obj[i].Value = v
		} else {
			seen[key] = len(obj)
			obj = append(obj, &Member{Key: key, Value: v})
		}

		p.next()
		if p.expect(jview.RBrace, jview.Comma) == jview.RBrace {
			return obj
		}
		p.next()
		p.expect(jview.String)
	}
}

// array parses the elements of an array whose open bracket is current.
func (p *parser) array() Array {
	arr := Array{}
	if p.next() && p.s.Token() == jview.RSquare {
		return arr
	}
	for {
		arr = append(arr, p.value())
		p.next()
		if p.expect(jview.RSquare, jview.Comma) == jview.RSquare {
			return arr
		}
		p.next()
	}
}

// text returns the decoded contents of the current string token.
func (p *parser) text() string {
	dec, err := jview.Unquote(p.s.Text())
	if err != nil {
		p.fail("invalid string: %v", err)
	}
	return string(dec)
}

// orList renders tokens as "a", "a or b", or "a, b or c".
func orList(tokens []jview.Token) string {
	ss := make([]string, len(tokens))
	for i, tok := range tokens {
		ss[i] = tok.String()
	}
	if len(ss) == 1 {
		return ss[0]
	}
	last := len(ss) - 1
	return strings.Join(ss[:last], ", ") + " or " + ss[last]
}
