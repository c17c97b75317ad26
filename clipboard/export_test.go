// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package clipboard

// SetWriteAll replaces the function used by System to write the clipboard,
// and returns a function that restores the original.
func SetWriteAll(f func(string) error) (restore func()) {
	old := writeAll
	writeAll = f
	return func() { writeAll = old }
}
