// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/jview"
	"github.com/creachadair/jview/ast"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  },
  "z": null,
  "n": -3.5e2
}`

func TestParse(t *testing.T) {
	v, err := ast.Parse(strings.NewReader(testJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	obj, ok := v.(ast.Object)
	if !ok {
		t.Fatalf("Parse: got %T, want object", v)
	}

	var keys []string
	for _, m := range obj {
		keys = append(keys, m.Key)
	}
	if diff := cmp.Diff(keys, []string{"list", "y", "o", "xyz", "z", "n"}); diff != "" {
		t.Errorf("Keys (-got, +want):\n%s", diff)
	}

	const want = `{"list":[{"x":1},{"x":2}],"y":{"hello":"there"},"o":["hi","yourself"],` +
		`"xyz":{"p":true,"d":true,"q":false},"z":null,"n":-3.5e2}`
	if got := v.JSON(); got != want {
		t.Errorf("JSON:\n got %s\nwant %s", got, want)
	}

	if m := obj.Find("xyz"); m == nil {
		t.Error("Find xyz: not found")
	} else if got := m.Value.(ast.Object).Find("q").Value; got != ast.Bool(false) {
		t.Errorf("Find xyz.q: got %v, want false", got)
	}
	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf("Find nonesuch: got %v, want nil", m)
	}
	if got := obj.Find("z").Value; got != ast.Null {
		t.Errorf("Find z: got %v, want null", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  ast.Kind
		name  string
	}{
		{ast.String("x"), ast.StringKind, "string"},
		{ast.Number("3.14"), ast.NumberKind, "number"},
		{ast.Bool(true), ast.BoolKind, "boolean"},
		{ast.Null, ast.NullKind, "null"},
		{nil, ast.NullKind, "null"},
		{ast.Array{}, ast.ArrayKind, "array"},
		{ast.Object{}, ast.ObjectKind, "object"},
	}
	for _, tc := range tests {
		got := ast.Classify(tc.input)
		if got != tc.want {
			t.Errorf("Classify %v: got %v, want %v", tc.input, got, tc.want)
		}
		if s := got.String(); s != tc.name {
			t.Errorf("Kind %d: got %q, want %q", got, s, tc.name)
		}
		if c := got.IsComposite(); c != (tc.want == ast.ArrayKind || tc.want == ast.ObjectKind) {
			t.Errorf("Kind %v: IsComposite is %v", got, c)
		}
	}
	if s := ast.Kind(0).String(); s != "invalid" {
		t.Errorf("Kind(0): got %q, want invalid", s)
	}
}

func TestDuplicateKeys(t *testing.T) {
	v, err := ast.ParseString(`{"a": 1, "b": 2, "a": [3], "c": {"d": 1, "d": 2}}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := v.JSON(), `{"a":[3],"b":2,"c":{"d":2}}`; got != want {
		t.Errorf("JSON: got %s, want %s", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", "at 1:0: unexpected end of input"},
		{"   ", "at 1:3: unexpected end of input"},
		{`{"a":}`, `at 1:5: unexpected "}"`},
		{`[1,`, "at 1:3: unexpected end of input"},
		{`{`, `at 1:1: expected "}" or string, got end of input`},
		{`true false`, "at 1:5: unexpected false after value"},
		{`{}}`, `at 1:2: unexpected "}"`},
		{`"x" "y"`, "at 1:4: unexpected string after value"},
	}
	for _, tc := range tests {
		v, err := ast.ParseString(tc.input)
		if err == nil {
			t.Errorf("Parse %q: got %v, want error", tc.input, v)
			continue
		}
		var serr *jview.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Parse %q: got %T, want *jview.SyntaxError", tc.input, err)
		}
		if got := err.Error(); got != tc.want {
			t.Errorf("Parse %q: got error %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNumber(t *testing.T) {
	if got := ast.Int(-7).JSON(); got != "-7" {
		t.Errorf("Int: got %q, want -7", got)
	}
	if got := ast.Float(0.5).JSON(); got != "0.5" {
		t.Errorf("Float: got %q, want 0.5", got)
	}
	if got := ast.Float(1e21).JSON(); got != "1e+21" {
		t.Errorf("Float: got %q, want 1e+21", got)
	}
}

func TestToValue(t *testing.T) {
	v := ast.Object{
		ast.Field("s", "text\n"),
		ast.Field("i", 5),
		ast.Field("f", 1.5),
		ast.Field("b", true),
		ast.Field("z", nil),
		ast.Field("a", ast.Array{ast.ToValue("x"), ast.ToValue(int64(2))}),
	}
	if got, want := v.JSON(), `{"s":"text\n","i":5,"f":1.5,"b":true,"z":null,"a":["x",2]}`; got != want {
		t.Errorf("JSON: got %s, want %s", got, want)
	}

	mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
	mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
	mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
}
