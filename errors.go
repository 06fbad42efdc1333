// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

//go:generate stringer -type=ErrorCode -linecomment

import "fmt"

// ErrorCode identifies the kind of grammar or range violation a parse
// failed with. Codes are stable across versions: callers are expected
// to switch on them. It plays the role stdlib.go's RoundingMode and
// Accuracy enums play for the ancestor decimal library: a small,
// closed, stringer-generated integer enum.
type ErrorCode int

const (
	ErrEmpty                          ErrorCode = iota // empty input
	ErrEmptyMantissa                                    // empty mantissa
	ErrEmptyExponent                                     // empty exponent
	ErrEmptyInteger                                      // empty integer digits
	ErrEmptyFraction                                     // empty fraction digits
	ErrInvalidDigit                                      // invalid digit
	ErrInvalidPositiveMantissaSign                       // invalid positive mantissa sign
	ErrMissingMantissaSign                               // missing mantissa sign
	ErrInvalidExponent                                   // invalid exponent
	ErrInvalidPositiveExponentSign                       // invalid positive exponent sign
	ErrMissingExponentSign                               // missing exponent sign
	ErrExponentWithoutFraction                           // exponent without fraction
	ErrInvalidLeadingZeros                               // invalid leading zeros
	ErrMissingExponentNotation                           // missing exponent notation
	ErrInvalidConsecutiveDigitSeparator                  // invalid consecutive digit separator
	ErrOverflow                                          // overflow
	ErrUnderflow                                         // underflow
)

// Error is the error type every parser in this package returns. Index
// is the byte offset into the original input at which the problem was
// detected; per SPEC_FULL.md's failure semantics, overflow/underflow
// on integer parsing point just past the last digit consumed, while
// grammar errors point at the offending byte.
type Error struct {
	Code  ErrorCode
	Index int
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexical: %s at index %d", e.Code, e.Index)
}

// Is reports whether target is an *Error with the same Code, so
// errors.Is(err, &Error{Code: ErrOverflow}) matches an overflow error
// at any Index; in practice callers are expected to type-assert and inspect Code
// directly, as the byte index is almost always needed too.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func newError(code ErrorCode, index int) *Error {
	return &Error{Code: code, Index: index}
}
