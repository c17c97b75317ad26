// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jview

import (
	"errors"

	"github.com/creachadair/jview/internal/escape"

	"go4.org/mem"
)

// Quote returns src as a JSON string literal, escaped and enclosed in double
// quotation marks.
func Quote(src string) string {
	buf := make([]byte, 1, len(src)+2)
	buf[0] = '"'
	buf = escape.Append(buf, mem.S(src))
	return string(append(buf, '"'))
}

// Unquote decodes the JSON string literal src, which must be enclosed in
// double quotation marks.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src []byte) ([]byte, error) {
	if len(src) < 2 || src[0] != '"' || src[len(src)-1] != '"' {
		return nil, errors.New("missing quotations")
	}
	return escape.Decode(make([]byte, 0, len(src)-2), mem.B(src[1:len(src)-1]))
}
