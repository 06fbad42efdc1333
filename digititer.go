// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// digitValue returns the numeric value of an ASCII digit character in
// any radix up to 36 ('0'-'9', 'a'-'z', 'A'-'Z'), or 0xff if ch is not
// an alphanumeric ASCII byte at all. Callers compare the result
// against the active radix to decide whether ch is a valid digit;
// this mirrors stdlib.go's inline digit-value switch in scanExponent,
// generalized from decimal to base 2..=36.
func digitValue(ch byte) uint8 {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0'
	case ch >= 'a' && ch <= 'z':
		return ch - 'a' + 10
	case ch >= 'A' && ch <= 'Z':
		return ch - 'A' + 10
	default:
		return 0xff
	}
}

// isDigit reports whether ch is a valid digit in the given radix.
func isDigit(ch byte, radix uint8) bool {
	v := digitValue(ch)
	return v != 0xff && v < radix
}

// sepState is the digit-separator consumer's position within a region:
// Start, AfterDigit or AfterSeparator, per SPEC_FULL.md's state-machine
// section. It mirrors the "prev" char-class byte dec_conv.go's scan
// keeps to validate consecutive separators, promoted to a named type.
type sepState uint8

const (
	sepStart sepState = iota
	sepAfterDigit
	sepAfterSeparator
)

// sepPolicy is the subset of NumberFormat's separator-placement flags
// relevant to one region (integer, fraction, or exponent digits).
type sepPolicy struct {
	leading     bool // separator allowed before the first digit
	internal    bool // separator allowed between two digits
	trailing    bool // separator allowed after the last digit
	consecutive bool // two separators may appear back to back
}

// accept classifies one byte within a digit region, given the
// position-tracking state s and the region's policy. It returns the
// resulting state and whether ch is a digit or an accepted separator
// (both false means ch terminates the region, or is a separator the
// policy forbids here; a strict parse then reports InvalidDigit at
// that byte). After a digit, a separator is accepted if either
// internal or trailing placement is allowed; scanDigits and
// parseIntCore decide which of the two it was.
func (p sepPolicy) accept(s sepState, ch, sep byte, radix uint8) (next sepState, digit, separator bool) {
	if isDigit(ch, radix) {
		return sepAfterDigit, true, false
	}
	if ch != sep {
		return s, false, false
	}
	switch s {
	case sepStart:
		if !p.leading {
			return s, false, false
		}
	case sepAfterDigit:
		if !p.internal && !p.trailing {
			return s, false, false
		}
	case sepAfterSeparator:
		if !p.consecutive {
			return s, false, false
		}
	}
	return sepAfterSeparator, false, true
}
