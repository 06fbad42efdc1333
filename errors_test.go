// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"strings"
	"testing"
)

func TestErrorCodeString(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want string
	}{
		{ErrEmpty, "empty input"},
		{ErrInvalidDigit, "invalid digit"},
		{ErrOverflow, "overflow"},
		{ErrUnderflow, "underflow"},
		{ErrInvalidConsecutiveDigitSeparator, "invalid consecutive digit separator"},
	}
	for _, c := range cases {
		if got := c.code.String(); got != c.want {
			t.Errorf("%v.String() = %q, want %q", int(c.code), got, c.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	err := newError(ErrInvalidDigit, 5)
	msg := err.Error()
	if !strings.Contains(msg, "invalid digit") {
		t.Errorf("Error() = %q, want it to mention the code", msg)
	}
	if !strings.Contains(msg, "5") {
		t.Errorf("Error() = %q, want it to mention the index", msg)
	}
}

func TestErrorIs(t *testing.T) {
	a := newError(ErrOverflow, 3)
	b := newError(ErrOverflow, 9)
	c := newError(ErrUnderflow, 3)

	if !a.Is(b) {
		t.Error("errors with the same Code should match via Is, regardless of Index")
	}
	if a.Is(c) {
		t.Error("errors with different Codes should not match via Is")
	}
}

func TestErrorFieldsExposed(t *testing.T) {
	err := newError(ErrEmptyFraction, 42)
	if err.Code != ErrEmptyFraction {
		t.Errorf("Code = %v, want ErrEmptyFraction", err.Code)
	}
	if err.Index != 42 {
		t.Errorf("Index = %d, want 42", err.Index)
	}
}
