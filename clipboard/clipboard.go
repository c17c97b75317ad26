// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package clipboard copies text to the clipboard of the host system.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// A Writer writes text to a clipboard.
type Writer interface {
	WriteText(text string) error
}

// Copy writes text to w and reports whether it succeeded. A failure to copy
// is not otherwise reported.
func Copy(w Writer, text string) bool {
	if w == nil {
		return false
	}
	return w.WriteText(text) == nil
}

// writeAll is a package-level variable to allow mocking in tests.
var writeAll = clipboard.WriteAll

// ErrUnsupported is reported by System when the host has no clipboard
// utility available.
var ErrUnsupported = errors.New("clipboard is not supported")

// System is a Writer for the clipboard of the host system.
type System struct{}

// WriteText implements the Writer interface.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return writeAll(text)
}

// A Func adapts a function to the Writer interface.
type Func func(string) error

// WriteText implements the Writer interface.
func (f Func) WriteText(text string) error { return f(text) }
