// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package document holds the state of a single loaded input text.
//
// A document is in one of three states. Text that is empty or contains only
// whitespace is Empty, meaning no data has been provided yet; this is not an
// error. Otherwise the text is validated, and the document is either Valid,
// with a decoded value, or Invalid, with the decoder's diagnostic.
package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creachadair/jview/ast"
	"github.com/creachadair/jview/format"
	"github.com/creachadair/jview/tree"
	"github.com/creachadair/jview/validate"
)

// ErrNoInput is reported by the accessors of an Empty document.
var ErrNoInput = errors.New("no data")

// Status is the presentation state of a document.
type Status byte

// Constants defining the valid Status values.
const (
	Empty   Status = iota // no input has been provided
	Invalid               // the input is not valid JSON
	Valid                 // the input decoded to a value
)

var statusStr = [...]string{Empty: "empty", Invalid: "invalid", Valid: "valid"}

func (s Status) String() string {
	if int(s) >= len(statusStr) {
		return fmt.Sprintf("Status(%d)", s)
	}
	return statusStr[s]
}

// A Document is a loaded input text and the outcome of validating it.
type Document struct {
	text   string
	status Status
	res    validate.Result
	pretty string // cached formatted text, if valid
}

// Load constructs a document for text, validating it with v unless it is
// empty.
func Load(text string, v validate.Validator) *Document {
	d := &Document{text: text}
	if strings.TrimSpace(text) == "" {
		return d
	}
	d.res = v.Validate(text)
	if d.res.Valid() {
		d.status = Valid
	} else {
		d.status = Invalid
	}
	return d
}

// Text returns the input text of d.
func (d *Document) Text() string { return d.text }

// Status reports the status of d.
func (d *Document) Status() Status { return d.status }

// Err returns nil if d is Valid, ErrNoInput if d is Empty, or the
// *validate.DecodeError describing why d is Invalid.
func (d *Document) Err() error {
	switch d.status {
	case Empty:
		return ErrNoInput
	case Invalid:
		return d.res.Err
	}
	return nil
}

// Value returns the decoded value of d, or an error as reported by Err.
func (d *Document) Value() (ast.Value, error) {
	if err := d.Err(); err != nil {
		return nil, err
	}
	return d.res.Value, nil
}

// Formatted returns the pretty-printed text of the value of d.
func (d *Document) Formatted() (string, error) {
	v, err := d.Value()
	if err != nil {
		return "", err
	}
	if d.pretty == "" {
		d.pretty = format.Indent(v)
	}
	return d.pretty, nil
}

// View returns a new tree view of the value of d, with only the root
// expanded.
func (d *Document) View() (*tree.View, error) {
	v, err := d.Value()
	if err != nil {
		return nil, err
	}
	return tree.New(v), nil
}

// Stats summarize the formatted text of a document.
type Stats struct {
	Lines int    // number of lines of formatted text
	Bytes int    // size in bytes of formatted text
	Items int    // number of children of the root value
	Noun  string // noun for Items, "" if there are none
}

func (s Stats) String() string {
	out := fmt.Sprintf("%d lines, %d bytes", s.Lines, s.Bytes)
	if s.Items > 0 {
		out += fmt.Sprintf(", %d %s", s.Items, s.Noun)
	}
	return out
}

// Stats reports statistics for the value of d.
func (d *Document) Stats() (Stats, error) {
	text, err := d.Formatted()
	if err != nil {
		return Stats{}, err
	}
	n, noun := tree.Count(d.res.Value)
	return Stats{
		Lines: strings.Count(text, "\n") + 1,
		Bytes: len(text),
		Items: n,
		Noun:  noun,
	}, nil
}
