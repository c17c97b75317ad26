// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package format pretty-prints JSON values.
//
// The output puts each array element and object member on its own line,
// indented two spaces per level, with object members written "key": value.
// Empty arrays and objects are written [] and {}. Strings are quoted and
// escaped, and numbers are written as they appeared in the source.
package format

import (
	"bufio"
	"io"
	"strings"

	"github.com/creachadair/jview/ast"
)

// A Formatter carries the settings for pretty-printing values.
// A zero value is ready for use with default settings.
type Formatter struct {
	// The text used for one level of indentation. If empty, two spaces.
	Indent string
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "  "
	}
	return f.Indent
}

// Indent returns the pretty-printed text of v with default settings.
// The result does not end with a newline.
func Indent(v ast.Value) string {
	var sb strings.Builder
	Formatter{}.Format(&sb, v) // strings.Builder does not fail
	return sb.String()
}

// Format writes the pretty-printed text of v to w with default settings.
func Format(w io.Writer, v ast.Value) error { return Formatter{}.Format(w, v) }

// Format writes the pretty-printed text of v to w using the settings of f.
func (f Formatter) Format(w io.Writer, v ast.Value) error {
	bw := bufio.NewWriter(w)
	f.formatValue(bw, v, "")
	return bw.Flush()
}

func (f Formatter) formatValue(w *bufio.Writer, v ast.Value, indent string) {
	switch t := v.(type) {
	case ast.Array:
		if len(t) == 0 {
			w.WriteString("[]")
			return
		}
		adent := indent + f.indent()
		w.WriteString("[\n")
		for i, elt := range t {
			if i > 0 {
				w.WriteString(",\n")
			}
			w.WriteString(adent)
			f.formatValue(w, elt, adent)
		}
		w.WriteString("\n" + indent + "]")

	case ast.Object:
		if len(t) == 0 {
			w.WriteString("{}")
			return
		}
		mdent := indent + f.indent()
		w.WriteString("{\n")
		for i, m := range t {
			if i > 0 {
				w.WriteString(",\n")
			}
			w.WriteString(mdent)
			w.WriteString(ast.String(m.Key).JSON())
			w.WriteString(": ")
			f.formatValue(w, m.Value, mdent)
		}
		w.WriteString("\n" + indent + "}")

	case nil:
		w.WriteString("null")

	default:
		w.WriteString(t.JSON())
	}
}
