// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jview

import "fmt"

// A Pos is a position in source text.
type Pos struct {
	Offset int // byte offset, 0-based
	Line   int // line number, 1-based
	Column int // byte offset within the line, 0-based
}

// String renders p as "line:column".
func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// SyntaxError is the concrete type of errors reported when decoding JSON
// text, whether the problem is lexical or grammatical.
type SyntaxError struct {
	Pos     Pos
	Message string
}

// Error satisfies the error interface. The text has the form
// "at LINE:COL: message".
func (e *SyntaxError) Error() string { return fmt.Sprintf("at %s: %s", e.Pos, e.Message) }
