// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"strings"

	"github.com/creachadair/jview/ast"
	"github.com/creachadair/jview/nodepath"
)

// A View binds a value to its expansion state.
type View struct {
	value ast.Value
	state *State
}

// New constructs a View of v with only the root expanded.
func New(v ast.Value) *View { return &View{value: v, state: NewState()} }

// Value returns the value displayed by the view.
func (v *View) Value() ast.Value { return v.value }

// State returns the expansion state of the view.
func (v *View) State() *State { return v.state }

// Toggle flips the expansion of path and reports whether it is now expanded.
// Paths that do not name an array or object are ignored, and Toggle reports
// false for them. A path that spells a key in quoted form when it could be
// written as a word is accepted, and refers to the same node.
func (v *View) Toggle(path string) bool {
	p, ok := v.composite(path)
	if !ok {
		return false
	}
	return v.state.Toggle(p)
}

// Expand expands each of the given paths that names an array or object, and
// reports how many did.
func (v *View) Expand(paths ...string) int {
	var n int
	for _, p := range paths {
		if c, ok := v.composite(p); ok {
			v.state.Expand(c)
			n++
		}
	}
	return n
}

// ExpandAll expands every array and object in the view.
func (v *View) ExpandAll() { v.state.ExpandAll(v.value) }

// CollapseAll collapses everything but the root.
func (v *View) CollapseAll() { v.state.CollapseAll() }

// Lines returns the visible lines of the view.
func (v *View) Lines() []Line { return Render(v.value, v.state) }

// String renders the visible lines of the view as text, one per line.
func (v *View) String() string {
	var sb strings.Builder
	for _, ln := range v.Lines() {
		sb.WriteString(ln.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Lookup returns the value at the given path in the view.
func (v *View) Lookup(path string) (ast.Value, error) { return nodepath.Resolve(v.value, path) }

// composite reports whether path names an array or object in the view, and
// if so returns the path in canonical form.
func (v *View) composite(path string) (string, bool) {
	p, err := nodepath.Parse(path)
	if err != nil {
		return "", false
	}
	sub, err := p.Resolve(v.value)
	if err != nil || !ast.Classify(sub).IsComposite() {
		return "", false
	}
	return p.String(), true
}
