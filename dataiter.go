// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// This file implements the float grammar's "data interface": carving
// the integer, fraction and exponent digit regions out of a byte
// slice and validating them against the active NumberFormat. Per the
// simplification SPEC_FULL.md's design notes call out explicitly, it
// uses a single code path with a separator-policy flag rather than
// the source's separate with/without-separator iterators: digit
// separators are disabled by giving every region an all-false
// sepPolicy, which makes scanDigits degenerate to a plain digit scan
// at the cost of one extra branch per byte.

// scanDigits consumes a run of digits (and, where the policy allows,
// separator bytes) from b starting at start, returning the offset one
// past the run and the number of actual digit bytes seen. It mirrors
// dec_conv.go's scan loop, generalized from "prev char class" to the
// three-state sepState machine in digititer.go.
//
// sepPolicy.accept takes a separator that follows a digit whenever
// either internal or trailing placement is allowed; this function
// settles which one it was. A digit after such a separator ends the
// run before the separator unless internal separators are allowed,
// and separators at the end of the run are left out of it (end
// points just past the last digit) unless trailing separators are
// allowed.
func scanDigits(b []byte, start int, policy sepPolicy, sep byte, radix uint8) (end int, ndigits int) {
	state := sepStart
	i := start
	lastDigit := start
	for i < len(b) {
		next, isDig, isSep := policy.accept(state, b[i], sep, radix)
		if !isDig && !isSep {
			break
		}
		if isDig {
			if state == sepAfterSeparator && ndigits > 0 && !policy.internal {
				break
			}
			ndigits++
			lastDigit = i + 1
		}
		state = next
		i++
	}
	if state == sepAfterSeparator && ndigits > 0 && !policy.trailing {
		return lastDigit, ndigits
	}
	return i, ndigits
}

// floatFields is the result of splitting a numeric (non-special)
// float literal into its grammar regions, per SPEC_FULL.md §4.1.
type floatFields struct {
	integer, fraction, exponent   []byte
	integerDigits, fractionDigits int
	exponentDigits                int
	hasDecimalPoint, hasExponent  bool
	expNegative, expSignSeen      bool
}

// extractFloatFields scans b (which must not include a leading sign:
// the caller strips that first) and returns the grammar regions found,
// along with the number of bytes consumed. It never itself reports an
// error; validateFloatFields applies the required/forbidden rules
// afterwards, once the full shape is known.
func extractFloatFields(b []byte, format NumberFormat, radix uint8) (f floatFields, consumed int) {
	sep := format.DigitSeparator()
	pos := 0

	end, n := scanDigits(b, pos, format.integerSepPolicy(), sep, radix)
	f.integer, f.integerDigits = b[pos:end], n
	pos = end

	if pos < len(b) && b[pos] == format.DecimalPoint() {
		f.hasDecimalPoint = true
		pos++
		end, n = scanDigits(b, pos, format.fractionSepPolicy(), sep, radix)
		f.fraction, f.fractionDigits = b[pos:end], n
		pos = end
	}

	if pos < len(b) {
		marker := format.exponentChar(radix) | 0x20
		if b[pos]|0x20 == marker {
			epos := pos + 1
			negative := false
			signSeen := false
			if epos < len(b) && (b[epos] == '+' || b[epos] == '-') {
				negative = b[epos] == '-'
				signSeen = true
				epos++
			}
			end, n = scanDigits(b, epos, format.exponentSepPolicy(), sep, radix)
			if n > 0 || format.has(RequiredExponentDigits) {
				f.hasExponent = true
				f.expNegative = negative
				f.expSignSeen = signSeen
				f.exponent, f.exponentDigits = b[epos:end], n
				pos = end
			}
		}
	}

	return f, pos
}

// validateFloatFields applies the required/forbidden-component and
// leading-zero rules from the active format to an already-extracted
// floatFields, given base as the byte offset of f.integer's first
// byte within the original input (for error indices).
func validateFloatFields(f floatFields, format NumberFormat, base int) *Error {
	if f.integerDigits == 0 && f.fractionDigits == 0 {
		return newError(ErrEmptyMantissa, base)
	}
	if format.has(RequiredIntegerDigits) && f.integerDigits == 0 {
		return newError(ErrEmptyInteger, base)
	}
	if f.hasDecimalPoint && format.has(RequiredFractionDigits) && f.fractionDigits == 0 {
		return newError(ErrEmptyFraction, base+len(f.integer)+1)
	}
	if format.has(NoExponentNotation) && f.hasExponent {
		return newError(ErrInvalidDigit, base+len(f.integer)+boolLen(f.hasDecimalPoint)+len(f.fraction))
	}
	if format.has(RequiredExponentNotation) && !f.hasExponent {
		return newError(ErrMissingExponentNotation, base+len(f.integer)+boolLen(f.hasDecimalPoint)+len(f.fraction))
	}
	if f.hasExponent && format.has(RequiredExponentDigits) && f.exponentDigits == 0 {
		return newError(ErrEmptyExponent, base+len(f.integer)+boolLen(f.hasDecimalPoint)+len(f.fraction)+1)
	}
	if f.hasExponent && format.has(NoExponentWithoutFraction) && !f.hasDecimalPoint {
		return newError(ErrExponentWithoutFraction, base+len(f.integer))
	}
	if f.hasExponent {
		expBase := base + len(f.integer) + boolLen(f.hasDecimalPoint) + len(f.fraction) + 1
		if f.expSignSeen && !f.expNegative && format.has(NoPositiveExponentSign) {
			return newError(ErrInvalidPositiveExponentSign, expBase)
		}
		if !f.expSignSeen && format.has(RequiredExponentSign) {
			return newError(ErrMissingExponentSign, expBase)
		}
	}
	if format.has(NoIntegerLeadingZeros) && len(f.integer) > 1 && f.integer[0] == '0' {
		return newError(ErrInvalidLeadingZeros, base)
	}
	if format.has(NoFloatLeadingZeros) && f.hasDecimalPoint && len(f.integer) > 0 && f.integer[0] == '0' && f.integerDigits > 1 {
		return newError(ErrInvalidLeadingZeros, base)
	}
	return nil
}

func boolLen(b bool) int {
	if b {
		return 1
	}
	return 0
}
