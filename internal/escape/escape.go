// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape converts between Go strings and the bodies of JSON string
// literals, not including the enclosing quotation marks.
package escape

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

const hexDigits = "0123456789abcdef"

// Append appends the escaped form of src to dst and returns the result.
// Control characters, quotation marks, and backslashes are escaped, as are
// U+2028, U+2029, and the replacement rune. Invalid UTF-8 is written as an
// escaped replacement rune.
func Append(dst []byte, src mem.RO) []byte {
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)
		switch r {
		case '"', '\\':
			dst = append(dst, '\\', byte(r))
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case utf8.RuneError, '\u2028', '\u2029':
			dst = appendU(dst, r)
		default:
			if r < ' ' {
				dst = appendU(dst, r)
			} else {
				dst = utf8.AppendRune(dst, r)
			}
		}
	}
	return dst
}

// appendU appends r as a \uXXXX escape. The rune must be in the BMP.
func appendU(dst []byte, r rune) []byte {
	return append(dst, '\\', 'u',
		hexDigits[r>>12&15], hexDigits[r>>8&15], hexDigits[r>>4&15], hexDigits[r&15])
}

// simple maps the single-character escapes to the bytes they denote.
var simple = [...]byte{
	'"': '"', '\\': '\\', '/': '/',
	'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r', 't': '\t',
}

// Decode appends the unescaped form of src to dst and returns the result.
//
// An unknown escape, a malformed \u escape, or an unpaired UTF-16 surrogate
// decodes to the replacement rune. Decode reports an error only when src ends
// in the middle of an escape sequence.
func Decode(dst []byte, src mem.RO) ([]byte, error) {
	for src.Len() != 0 {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dst, src), nil
		}
		dst = mem.Append(dst, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		c := src.At(0)
		if int(c) < len(simple) && simple[c] != 0 {
			dst = append(dst, simple[c])
			src = src.SliceFrom(1)
			continue
		} else if c != 'u' {
			_, n := mem.DecodeRune(src)
			dst = utf8.AppendRune(dst, utf8.RuneError)
			src = src.SliceFrom(n)
			continue
		}

		var r rune
		var err error
		r, src, err = decodeU(src.SliceFrom(1))
		if err != nil {
			return nil, err
		}
		dst = utf8.AppendRune(dst, r)
	}
	return dst, nil
}

// decodeU decodes the hex digits of a \u escape at the front of src, and
// returns the rune with the remainder of src. A high surrogate consumes the
// escaped low surrogate that follows it, if there is one.
func decodeU(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 4 {
		return 0, src, errors.New("incomplete Unicode escape")
	}
	v, ok := hex4(src)
	src = src.SliceFrom(4)
	if !ok {
		return utf8.RuneError, src, nil
	}
	if !utf16.IsSurrogate(v) {
		return v, src, nil
	}
	if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
		if lo, ok := hex4(src.SliceFrom(2)); ok {
			if r := utf16.DecodeRune(v, lo); r != utf8.RuneError {
				return r, src.SliceFrom(6), nil
			}
		}
	}
	return utf8.RuneError, src, nil
}

// hex4 decodes the first four bytes of src as hexadecimal digits.
func hex4(src mem.RO) (rune, bool) {
	var v rune
	for i := range 4 {
		c := src.At(i)
		switch {
		case '0' <= c && c <= '9':
			c -= '0'
		case 'a' <= c && c <= 'f':
			c -= 'a' - 10
		case 'A' <= c && c <= 'F':
			c -= 'A' - 10
		default:
			return 0, false
		}
		v = v<<4 | rune(c)
	}
	return v, true
}
