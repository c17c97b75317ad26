// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package clipboard_test

import (
	"errors"
	"testing"

	atotto "github.com/atotto/clipboard"
	"github.com/creachadair/jview/clipboard"
)

func TestCopy(t *testing.T) {
	var got string
	ok := clipboard.Copy(clipboard.Func(func(s string) error {
		got = s
		return nil
	}), `{"a": 1}`)
	if !ok {
		t.Error("Copy: reported failure, want success")
	}
	if got != `{"a": 1}` {
		t.Errorf("Copy: wrote %q", got)
	}

	fail := clipboard.Func(func(string) error { return errors.New("no clipboard") })
	if clipboard.Copy(fail, "x") {
		t.Error("Copy: reported success, want failure")
	}
	if clipboard.Copy(nil, "x") {
		t.Error("Copy nil: reported success, want failure")
	}
}

func TestSystem(t *testing.T) {
	if atotto.Unsupported {
		t.Skip("No clipboard support on this host")
	}
	var got string
	defer clipboard.SetWriteAll(func(s string) error {
		got = s
		return nil
	})()

	if !clipboard.Copy(clipboard.System{}, "hello") {
		t.Error("Copy: reported failure, want success")
	}
	if got != "hello" {
		t.Errorf("Copy: wrote %q, want %q", got, "hello")
	}
}
