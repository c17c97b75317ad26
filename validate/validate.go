// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package validate checks whether text is a well-formed JSON value.
//
// Decoding is done by the stream parser in package jview, and any error it
// reports is surfaced without modification:
//
//	res := validate.Validate(`{"a":}`)
//	if !res.Valid() {
//		fmt.Println(res.Err) // at 1:5: unexpected "}"
//	}
package validate

import (
	"github.com/creachadair/jview/ast"
	"github.com/tailscale/hujson"
)

// A Result is the outcome of validating a text. Exactly one of its fields is
// set: Value for a valid text, Err for an invalid one.
type Result struct {
	Value ast.Value
	Err   *DecodeError
}

// Valid reports whether r holds a decoded value.
func (r Result) Valid() bool { return r.Err == nil }

// Message returns the diagnostic text of an invalid result, or "".
func (r Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// DecodeError reports that a text is not a well-formed JSON value.
type DecodeError struct {
	Err error // the error reported by the decoder
}

// Error returns the text of the decoder error, unchanged.
func (e *DecodeError) Error() string { return e.Err.Error() }

// Unwrap supports error wrapping.
func (e *DecodeError) Unwrap() error { return e.Err }

// A Validator decodes text into values. A zero Validator is ready for use
// and accepts only strict JSON.
type Validator struct {
	// If true, accept JSON with comments and trailing commas (JWCC).
	// The input is converted to standard JSON before it is decoded.
	Lenient bool
}

// Validate decodes text as a single JSON value. Empty input is not treated
// specially, and fails the way the decoder does.
func (v Validator) Validate(text string) Result {
	src := []byte(text)
	if v.Lenient {
		std, err := hujson.Standardize(src)
		if err != nil {
			return Result{Err: &DecodeError{Err: err}}
		}
		src = std
	}
	val, err := ast.ParseBytes(src)
	if err != nil {
		return Result{Err: &DecodeError{Err: err}}
	}
	return Result{Value: val}
}

// Validate decodes text as a single strict JSON value.
func Validate(text string) Result { return Validator{}.Validate(text) }
