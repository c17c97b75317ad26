// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"slices"

	"github.com/creachadair/jview/ast"
	"github.com/creachadair/jview/nodepath"
	"github.com/creachadair/mds/mapset"
)

// State is the expansion state of a tree: the set of node paths whose
// composite values are shown open. A zero State is empty and ready for use,
// but a State for a newly-loaded document should be created with NewState.
type State struct {
	open mapset.Set[string]
}

// NewState returns a new State in which only the root is expanded.
func NewState() *State { return &State{open: mapset.New(nodepath.Root)} }

// Has reports whether path is expanded in s.
func (s *State) Has(path string) bool { return s.open.Has(path) }

// Toggle flips the expansion of path, and reports whether path is expanded
// after the change.
func (s *State) Toggle(path string) bool {
	if s.open.Has(path) {
		s.open.Remove(path)
		return false
	}
	s.open.Add(path)
	return true
}

// Expand marks the specified paths as expanded.
func (s *State) Expand(paths ...string) { s.open.Add(paths...) }

// ExpandAll replaces the contents of s with the paths of every array and
// object in v.
func (s *State) ExpandAll(v ast.Value) { s.open = mapset.New(CompositePaths(v)...) }

// CollapseAll replaces the contents of s with the root path alone.
func (s *State) CollapseAll() { s.open = mapset.New(nodepath.Root) }

// Len reports the number of expanded paths in s.
func (s *State) Len() int { return s.open.Len() }

// Paths returns the expanded paths of s in lexicographic order.
func (s *State) Paths() []string {
	out := s.open.Slice()
	slices.Sort(out)
	return out
}

// Equal reports whether s and o contain the same paths.
func (s *State) Equal(o *State) bool { return s.open.Equals(o.open) }

// Clone returns a copy of s that does not share storage with s.
func (s *State) Clone() *State { return &State{open: s.open.Clone()} }
