// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"strconv"
	"strings"

	"github.com/creachadair/jview/ast"
	"github.com/creachadair/jview/nodepath"
)

// A Line is a single line of a rendered tree.
type Line struct {
	Depth int      // nesting depth, 0 for the root
	Label string   // quoted object key, array index, or "" for the root
	Path  string   // node path of the value on this line
	Kind  ast.Kind // kind of the value on this line
	Text  string   // display text of the value or bracket

	// For an array or object, the number of its children and their noun.
	Count int
	Noun  string

	Expandable bool // the value is an array or object
	Expanded   bool // the value is open; its children follow
	Closing    bool // this line holds the closing bracket of Path
}

// String renders the line as indented plain text.
func (ln Line) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", ln.Depth))
	if ln.Label != "" {
		sb.WriteString(ln.Label)
		sb.WriteString(": ")
	}
	sb.WriteString(ln.Text)
	if ln.Count > 0 {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(ln.Count))
		sb.WriteByte(' ')
		sb.WriteString(ln.Noun)
	}
	return sb.String()
}

// Render returns the visible lines of v given the expansion state st.
// Composite values not expanded in st are rendered as placeholders, and their
// contents are not visited. A nil st is treated as an empty state, in which
// nothing is expanded.
func Render(v ast.Value, st *State) []Line {
	if st == nil {
		st = new(State)
	}
	var out []Line
	render(&out, v, st, nodepath.Root, "", 0)
	return out
}

func render(out *[]Line, v ast.Value, st *State, path, label string, depth int) {
	kind := ast.Classify(v)
	ln := Line{Depth: depth, Label: label, Path: path, Kind: kind}
	if !kind.IsComposite() {
		ln.Text = FormatScalar(v, kind)
		*out = append(*out, ln)
		return
	}

	ln.Count, ln.Noun = Count(v)
	ln.Expandable = true
	open, shut := "{", "}"
	if kind == ast.ArrayKind {
		open, shut = "[", "]"
	}
	if !st.Has(path) {
		ln.Text = open + "..." + shut
		*out = append(*out, ln)
		return
	}
	ln.Text = open
	ln.Expanded = true
	*out = append(*out, ln)

	switch t := v.(type) {
	case ast.Array:
		for i, elt := range t {
			render(out, elt, st, nodepath.Index(path, i), strconv.Itoa(i), depth+1)
		}
	case ast.Object:
		for _, m := range t {
			render(out, m.Value, st, nodepath.Key(path, m.Key), `"`+m.Key+`"`, depth+1)
		}
	}
	*out = append(*out, Line{
		Depth:   depth,
		Path:    path,
		Kind:    kind,
		Text:    shut,
		Closing: true,
	})
}

// CompositePaths returns the node paths of every array and object in v,
// including v itself, in depth-first order. It visits the entire value.
func CompositePaths(v ast.Value) []string {
	var out []string
	var walk func(ast.Value, string)
	walk = func(v ast.Value, path string) {
		switch t := v.(type) {
		case ast.Array:
			out = append(out, path)
			for i, elt := range t {
				walk(elt, nodepath.Index(path, i))
			}
		case ast.Object:
			out = append(out, path)
			for _, m := range t {
				walk(m.Value, nodepath.Key(path, m.Key))
			}
		}
	}
	walk(v, nodepath.Root)
	return out
}
