// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package tree_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/creachadair/jview/ast"
	"github.com/creachadair/jview/tree"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) ast.Value {
	t.Helper()
	v, err := ast.ParseString(s)
	if err != nil {
		t.Fatalf("Parse %q: %v", s, err)
	}
	return v
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Kind
	}{
		{"null", ast.NullKind},
		{"[]", ast.ArrayKind},
		{"{}", ast.ObjectKind},
		{`"x"`, ast.StringKind},
		{"3.14", ast.NumberKind},
		{"-12", ast.NumberKind},
		{"true", ast.BoolKind},
		{"false", ast.BoolKind},
	}
	for _, tc := range tests {
		if got := ast.Classify(mustParse(t, tc.input)); got != tc.want {
			t.Errorf("Classify %s: got %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestFormatScalar(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`"x"`, `"x"`},
		{`"say \"hi\""`, `"say "hi""`},
		{`"a\nb"`, "\"a\nb\""},
		{"3.14", "3.14"},
		{"1.50", "1.5"},
		{"1e10", "10000000000"},
		{"1E+2", "100"},
		{"-0", "0"},
		{"0.0", "0"},
		{"-12", "-12"},
		{"0.000001", "0.000001"},
		{"1.5e-7", "1.5e-7"},
		{"123e20", "1.23e+22"},
		{"1e21", "1e+21"},
		{"100000000000000000000", "100000000000000000000"},
		{"9007199254740993", "9007199254740992"},
		{"1e400", "1e400"},
		{"true", "true"},
		{"false", "false"},
		{"null", "null"},

		// Composites are a misuse, but produce compact JSON.
		{`[1, {"a": 2}]`, `[1,{"a":2}]`},
	}
	for _, tc := range tests {
		v := mustParse(t, tc.input)
		if got := tree.FormatScalar(v, ast.Classify(v)); got != tc.want {
			t.Errorf("FormatScalar %s: got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		input string
		n     int
		noun  string
	}{
		{"[]", 0, ""},
		{"[1]", 1, "item"},
		{"[1,2]", 2, "items"},
		{"{}", 0, ""},
		{`{"a":1}`, 1, "property"},
		{`{"a":1,"b":2,"c":3}`, 3, "properties"},
		{`[[1,2,3]]`, 1, "item"},
		{`"abc"`, 0, ""},
		{"5", 0, ""},
		{"null", 0, ""},
		{"true", 0, ""},
	}
	for _, tc := range tests {
		n, noun := tree.Count(mustParse(t, tc.input))
		if n != tc.n || noun != tc.noun {
			t.Errorf("Count %s: got (%d, %q), want (%d, %q)", tc.input, n, noun, tc.n, tc.noun)
		}
	}
}

func TestCompositePaths(t *testing.T) {
	v := mustParse(t, `{"a":1,"b":[1,[2],{"c":{}}],"d e":{"f":[]},"g":"h"}`)
	got := tree.CompositePaths(v)
	want := []string{
		"root",
		"root.b",
		"root.b[1]",
		"root.b[2]",
		"root.b[2].c",
		`root["d e"]`,
		`root["d e"].f`,
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("CompositePaths (-got, +want):\n%s", diff)
	}

	if got := tree.CompositePaths(mustParse(t, `"scalar"`)); len(got) != 0 {
		t.Errorf("CompositePaths scalar: got %q, want empty", got)
	}
}

func TestRender(t *testing.T) {
	v := mustParse(t, `{"a":1,"b":[1,2,3]}`)
	st := tree.NewState()

	t.Run("Root", func(t *testing.T) {
		checkLines(t, tree.Render(v, st), `
{ 2 properties
  "a": 1
  "b": [...] 3 items
}`)
	})

	t.Run("Collapsed", func(t *testing.T) {
		lines := tree.Render(v, st)
		b := lines[2]
		if b.Path != "root.b" || b.Text != "[...]" || b.Count != 3 || b.Noun != "items" {
			t.Errorf("Line for root.b: got %+v", b)
		}
		if !b.Expandable || b.Expanded {
			t.Errorf("Line for root.b: expandable=%v expanded=%v, want true, false", b.Expandable, b.Expanded)
		}
	})

	t.Run("Expanded", func(t *testing.T) {
		st := st.Clone()
		st.Toggle("root.b")
		lines := tree.Render(v, st)
		checkLines(t, lines, `
{ 2 properties
  "a": 1
  "b": [ 3 items
    0: 1
    1: 2
    2: 3
  ]
}`)
		var paths []string
		for _, ln := range lines[3:6] {
			paths = append(paths, ln.Path)
		}
		if diff := cmp.Diff(paths, []string{"root.b[0]", "root.b[1]", "root.b[2]"}); diff != "" {
			t.Errorf("Element paths (-got, +want):\n%s", diff)
		}
		if end := lines[6]; !end.Closing || end.Path != "root.b" {
			t.Errorf("Closing line: got %+v", end)
		}
	})

	t.Run("RootCollapsed", func(t *testing.T) {
		checkLines(t, tree.Render(v, new(tree.State)), `{...} 2 properties`)
	})

	t.Run("NilState", func(t *testing.T) {
		checkLines(t, tree.Render(v, nil), `{...} 2 properties`)
	})
}

func TestRenderEdges(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"ScalarRoot", `"hello"`, `"hello"`},
		{"NullRoot", `null`, `null`},
		{"EmptyArray", `[]`, "[\n]"},
		{"EmptyObject", `{}`, "{\n}"},
		{"EmptyChildren", `{"x":[],"y":{}}`, `
{ 2 properties
  "x": [...]
  "y": {...}
}`},
		{"OneItem", `[{"k":null}]`, `
[ 1 item
  0: {...} 1 property
]`},
		{"OddKeys", `{"":1,"a.b":2}`, `
{ 2 properties
  "": 1
  "a.b": 2
}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			checkLines(t, tree.Render(mustParse(t, tc.input), tree.NewState()), tc.want)
		})
	}

	t.Run("ScalarNotExpandable", func(t *testing.T) {
		lines := tree.Render(ast.Number("5"), tree.NewState())
		if len(lines) != 1 || lines[0].Expandable || lines[0].Label != "" {
			t.Errorf("Scalar root: got %+v", lines)
		}
	})
}

func TestState(t *testing.T) {
	v := mustParse(t, `{"a":{"b":[1,{"c":2}]},"d":[[]]}`)
	all := tree.CompositePaths(v)

	t.Run("Initial", func(t *testing.T) {
		st := tree.NewState()
		if diff := cmp.Diff(st.Paths(), []string{"root"}); diff != "" {
			t.Errorf("Initial paths (-got, +want):\n%s", diff)
		}
	})

	t.Run("ToggleTwice", func(t *testing.T) {
		for _, p := range append(all, "root.nonesuch") {
			st := tree.NewState()
			st.Toggle("root.a")
			before := st.Clone()
			rbefore := tree.Render(v, st)

			st.Toggle(p)
			st.Toggle(p)
			if !st.Equal(before) {
				t.Errorf("Toggle %q twice: got %q, want %q", p, st.Paths(), before.Paths())
			}
			if diff := cmp.Diff(tree.Render(v, st), rbefore); diff != "" {
				t.Errorf("Toggle %q twice: render differs (-got, +want):\n%s", p, diff)
			}
		}
	})

	t.Run("ToggleReports", func(t *testing.T) {
		st := tree.NewState()
		if st.Toggle("root") {
			t.Error("Toggle root: reported expanded, want collapsed")
		}
		if !st.Toggle("root") {
			t.Error("Toggle root: reported collapsed, want expanded")
		}
	})

	t.Run("CollapseExpand", func(t *testing.T) {
		st := tree.NewState()
		st.Toggle("root")
		st.Toggle("root.x")
		st.CollapseAll()
		if diff := cmp.Diff(st.Paths(), []string{"root"}); diff != "" {
			t.Errorf("CollapseAll (-got, +want):\n%s", diff)
		}
		st.ExpandAll(v)
		if diff := cmp.Diff(st.Paths(), slices.Sorted(slices.Values(all))); diff != "" {
			t.Errorf("ExpandAll (-got, +want):\n%s", diff)
		}
		if st.Len() != len(all) {
			t.Errorf("Len: got %d, want %d", st.Len(), len(all))
		}
	})

	t.Run("ExpandAllRender", func(t *testing.T) {
		st := tree.NewState()
		st.ExpandAll(v)
		for _, ln := range tree.Render(v, st) {
			if ln.Expandable && !ln.Expanded {
				t.Errorf("Line %q is not expanded", ln.Path)
			}
		}
	})

	t.Run("Clone", func(t *testing.T) {
		st := tree.NewState()
		cp := st.Clone()
		cp.Toggle("root.a")
		if st.Has("root.a") {
			t.Error("Clone shares storage with its original")
		}
		if st.Equal(cp) {
			t.Error("Equal: states should differ")
		}
	})

	t.Run("Zero", func(t *testing.T) {
		var st tree.State
		if st.Has("root") || st.Len() != 0 {
			t.Errorf("Zero state: got %q, want empty", st.Paths())
		}
		if !st.Toggle("root") || !st.Has("root") {
			t.Error("Zero state: toggle did not expand root")
		}

		var ex tree.State
		ex.Expand("root", "root.x", "root")
		if diff := cmp.Diff(ex.Paths(), []string{"root", "root.x"}); diff != "" {
			t.Errorf("Zero state Expand (-got, +want):\n%s", diff)
		}
	})
}

func TestView(t *testing.T) {
	v := mustParse(t, `{"a":1,"b":[1,2,3],"c":{"d":"e"}}`)
	tv := tree.New(v)

	if got, want := tv.String(), `{ 3 properties
  "a": 1
  "b": [...] 3 items
  "c": {...} 1 property
}
`; got != want {
		t.Errorf("Initial view:\n got %q\nwant %q", got, want)
	}

	// Scalars and unknown paths are not toggled.
	if tv.Toggle("root.a") || tv.Toggle("root.q") || tv.Toggle("bogus") {
		t.Error("Toggle of a non-composite path reported true")
	}
	if diff := cmp.Diff(tv.State().Paths(), []string{"root"}); diff != "" {
		t.Errorf("State after bad toggles (-got, +want):\n%s", diff)
	}

	// A quoted key names the same node as its word form.
	if !tv.Toggle(`root["c"]`) || !tv.State().Has("root.c") {
		t.Error(`Toggle root["c"] did not expand root.c`)
	}

	if n := tv.Expand("root.b", "root.a", "root.nonesuch"); n != 1 {
		t.Errorf("Expand: got %d, want 1", n)
	}

	tv.CollapseAll()
	tv.ExpandAll()
	if diff := cmp.Diff(tv.State().Paths(), []string{"root", "root.b", "root.c"}); diff != "" {
		t.Errorf("ExpandAll (-got, +want):\n%s", diff)
	}
	if n := len(tv.Lines()); n != 11 {
		t.Errorf("Lines after ExpandAll: got %d, want 11\n%s", n, tv)
	}

	got, err := tv.Lookup("root.c.d")
	if err != nil {
		t.Fatalf("Lookup: unexpected error: %v", err)
	}
	if got.JSON() != `"e"` {
		t.Errorf("Lookup root.c.d: got %s, want %q", got.JSON(), `"e"`)
	}
	if _, err := tv.Lookup("root.c.z"); err == nil {
		t.Error("Lookup root.c.z: got nil error, want error")
	}
}

func checkLines(t *testing.T, lines []tree.Line, want string) {
	t.Helper()
	var got []string
	for _, ln := range lines {
		got = append(got, ln.String())
	}
	if diff := cmp.Diff(got, strings.Split(strings.TrimPrefix(want, "\n"), "\n")); diff != "" {
		t.Errorf("Rendered lines (-got, +want):\n%s", diff)
	}
}
