// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jview implements the lexical layer of the JSON decoder used by the
// jview viewer.
//
// The viewer itself lives in subpackages: package ast decodes text into the
// value model, package validate turns raw text into a parse result, package
// tree renders collapsible trees, and package format pretty-prints values.
//
// # Scanning
//
// The Scanner type splits JSON source text into tokens. Construct a scanner
// over the complete text and call its Next method to iterate over the tokens:
//
//	s := jview.NewScanner(data)
//	for s.Next() {
//	   log.Printf("At %v: %v %s", s.Pos(), s.Token(), s.Text())
//	}
//
// When Next reports false, Err returns io.EOF if the input was fully
// consumed. Otherwise it returns a *SyntaxError.
//
// # Errors
//
// Decoding errors have concrete type *SyntaxError, whose text gives the
// 1-based line and 0-based byte column of the problem:
//
//	at 3:2: expected "}" or ",", got string
package jview
