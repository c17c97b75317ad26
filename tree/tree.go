// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package tree renders a JSON value as a collapsible tree.
//
// The expansion state of a tree is a set of node paths (see package
// nodepath). A composite value whose path is in the set is shown open, with
// one line for each of its children followed by a closing bracket. Any other
// composite is shown as a single placeholder line, and its children are not
// visited. Scalar values are always shown on a single line.
package tree

import (
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/jview/ast"
)

// FormatScalar returns the display text of a scalar value v of the given
// kind. Strings are enclosed in double quotes without escaping, so the result
// is for display only. Numbers are shown in the shortest decimal form that
// round-trips their float64 value, switching to exponent form outside the
// range [1e-6, 1e21); a number too large or too small for a float64 is shown
// as written.
//
// FormatScalar is not meant for arrays and objects; for those it returns the
// compact JSON encoding of v.
func FormatScalar(v ast.Value, kind ast.Kind) string {
	switch kind {
	case ast.StringKind:
		if s, ok := v.(ast.String); ok {
			return `"` + string(s) + `"`
		}
	case ast.NumberKind:
		if n, ok := v.(ast.Number); ok {
			return numberText(n)
		}
	case ast.BoolKind:
		if b, ok := v.(ast.Bool); ok {
			return strconv.FormatBool(bool(b))
		}
	case ast.NullKind:
		return "null"
	}
	if v == nil {
		return "null"
	}
	return v.JSON()
}

func numberText(n ast.Number) string {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return string(n) // out of range for float64
	} else if f == 0 {
		return "0" // including -0
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// Exponents are written without leading zeroes: 1e-7, not 1e-07.
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

// Count reports the number of direct children of v, together with a noun
// describing them. Arrays count elements ("item", "items") and objects count
// members ("property", "properties"). Scalars and empty composites report
// (0, "").
func Count(v ast.Value) (int, string) {
	switch t := v.(type) {
	case ast.Array:
		return len(t), plural(len(t), "item", "items")
	case ast.Object:
		return len(t), plural(len(t), "property", "properties")
	}
	return 0, ""
}

func plural(n int, one, many string) string {
	switch n {
	case 0:
		return ""
	case 1:
		return one
	default:
		return many
	}
}
