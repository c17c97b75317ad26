// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package nodepath constructs, parses, and resolves node paths.
//
// A node path names a position in a JSON value. It begins with the root
// marker "root" and is followed by a sequence of steps:
//
//	root.items[2].name
//
// An object member whose key is a plain word is written ".key". Any other key
// is written in brackets as a quoted JSON string, for example root["a.b"] or
// root[""], so that distinct positions never share a path. An array element
// is written "[index]".
//
// Grammar:
//
//	path = "root" { step }
//	step = "." WORD
//	step = "[" INDEX "]"
//	step = "[" QUOTED "]"
//
//	WORD   = RE `[A-Za-z_$][A-Za-z0-9_$]*`
//	INDEX  = RE `\d+`
//	QUOTED = a JSON string literal
package nodepath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/creachadair/jview"
	"github.com/creachadair/jview/ast"
)

// Root is the path of the top-level value.
const Root = "root"

// Key returns the path of the member with the given key in the object at
// parent.
func Key(parent, key string) string {
	if IsWord(key) {
		return parent + "." + key
	}
	return parent + "[" + jview.Quote(key) + "]"
}

// Index returns the path of element i of the array at parent.
func Index(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

// IsWord reports whether key can be written in a path as ".key".
func IsWord(key string) bool { return wordRE.MatchString(key) }

var (
	wordRE  = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	startRE = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*`)
	indexRE = regexp.MustCompile(`^\d+`)
)

// A Step is a single step of a Path, either an object key or an array index.
type Step struct {
	Key     string // object key, if !IsIndex
	Index   int    // array offset, if IsIndex
	IsIndex bool
}

func (s Step) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	} else if IsWord(s.Key) {
		return "." + s.Key
	}
	return "[" + jview.Quote(s.Key) + "]"
}

// A Path is a parsed node path. The root marker is implied.
type Path []Step

// String renders p in its canonical text form.
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString(Root)
	for _, s := range p {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Parent returns the path of the value containing p, and reports whether p
// has a parent. The root has no parent.
func (p Path) Parent() (Path, bool) {
	if len(p) == 0 {
		return p, false
	}
	return p[:len(p)-1], true
}

// Parse parses s as a node path.
func Parse(s string) (Path, error) {
	rest, ok := strings.CutPrefix(s, Root)
	if !ok {
		return nil, errors.New("missing root marker")
	}
	var p Path
	for rest != "" {
		step, next, err := parseStep(rest)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", len(s)-len(rest), err)
		}
		p = append(p, step)
		rest = next
	}
	return p, nil
}

func parseStep(s string) (_ Step, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "."); ok {
		m := startRE.FindString(t)
		if m == "" {
			return Step{}, s, errors.New("invalid .name")
		}
		return Step{Key: m}, t[len(m):], nil
	}
	t, ok := strings.CutPrefix(s, "[")
	if !ok {
		return Step{}, s, errors.New("invalid path step")
	}
	var step Step
	if m := indexRE.FindString(t); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid index: %w", err)
		}
		step = Step{Index: n, IsIndex: true}
		t = t[len(m):]
	} else if strings.HasPrefix(t, `"`) {
		end := quoteEnd(t)
		if end < 0 {
			return Step{}, s, errors.New("unterminated quoted key")
		}
		key, err := jview.Unquote([]byte(t[:end]))
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid quoted key: %w", err)
		}
		step = Step{Key: string(key)}
		t = t[end:]
	} else {
		return Step{}, s, errors.New("invalid bracket step")
	}
	u, ok := strings.CutPrefix(t, "]")
	if !ok {
		return Step{}, s, errors.New("missing close bracket")
	}
	return step, u, nil
}

// quoteEnd returns the offset just past the closing quote of the string
// literal at the front of s, or -1 if it is not terminated.
func quoteEnd(s string) int {
	esc := false
	for i := 1; i < len(s); i++ {
		switch {
		case esc:
			esc = false
		case s[i] == '\\':
			esc = true
		case s[i] == '"':
			return i + 1
		}
	}
	return -1
}

// Resolve parses path and returns the value it names within v.
func Resolve(v ast.Value, path string) (ast.Value, error) {
	p, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return p.Resolve(v)
}

// Resolve traverses p starting from v and returns the value reached. If the
// path cannot be completely consumed, Resolve reports an error naming the
// prefix of p that could not be resolved.
func (p Path) Resolve(v ast.Value) (ast.Value, error) {
	cur := v
	for i, s := range p {
		switch t := cur.(type) {
		case ast.Object:
			if s.IsIndex {
				return nil, fmt.Errorf("%s: cannot index object with %d", p[:i], s.Index)
			}
			m := t.Find(s.Key)
			if m == nil {
				return nil, fmt.Errorf("%s: key %q not found", p[:i], s.Key)
			}
			cur = m.Value
		case ast.Array:
			if !s.IsIndex {
				return nil, fmt.Errorf("%s: cannot select key %q from array", p[:i], s.Key)
			}
			if s.Index >= len(t) {
				return nil, fmt.Errorf("%s: array index %d out of bounds (n=%d)", p[:i], s.Index, len(t))
			}
			cur = t[s.Index]
		default:
			return nil, fmt.Errorf("%s: cannot traverse %v", p[:i], ast.Classify(cur))
		}
	}
	return cur, nil
}
