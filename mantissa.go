// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// maxMantissaDigits bounds how many significant digit bytes
// mantissaDigits retains. Digits beyond this count can never change a
// float64's rounding (768 decimal digits safely covers the widest gap
// between two adjacent float64 values at the smallest subnormal
// exponent, per SPEC_FULL.md's digit-trimming discussion); any digit
// dropped past this bound is summarized by truncated, not silently
// lost, so atof_slow.go can still break an exact-midpoint tie
// correctly.
const maxMantissaDigits = 768

// mantissaDigits is a fixed-capacity buffer of ASCII digit bytes: the
// integer and fraction regions of a parsed float literal concatenated
// and zero-trimmed at both ends. It is sized and passed by value so
// extracting a mantissa never allocates.
type mantissaDigits struct {
	buf [maxMantissaDigits]byte
	n   int
}

func (m *mantissaDigits) digits() []byte { return m.buf[:m.n] }

// buildMantissaDigits concatenates f's integer and fraction digit
// regions (skipping separator bytes) into m, stripping leading zeros
// and reporting how many places the decimal point moved as a result
// in pointPos, and stripping trailing zeros (which never affect the
// value). truncated counts significant digits dropped past
// maxMantissaDigits; isZero reports that every digit was zero.
//
// pointPos is defined so that, letting n be the number of retained
// digits, the parsed magnitude equals
// 0.d1d2...dn * radix**pointPos (d1 the first retained digit); combined
// with the literal's own exponent this gives the scientific exponent
// computation in atof.go.
func buildMantissaDigits(f floatFields, sep byte) (m mantissaDigits, pointPos int32, truncated int, isZero bool) {
	pointPos = int32(f.integerDigits)
	stripping := true

	push := func(ch byte) {
		d := digitValue(ch)
		if stripping && d == 0 {
			pointPos--
			return
		}
		stripping = false
		if m.n < len(m.buf) {
			m.buf[m.n] = ch
			m.n++
		} else if d != 0 {
			truncated++
		}
	}

	for _, ch := range f.integer {
		if ch == sep {
			continue
		}
		push(ch)
	}
	for _, ch := range f.fraction {
		if ch == sep {
			continue
		}
		push(ch)
	}

	if stripping {
		return mantissaDigits{}, 0, 0, true
	}
	for m.n > 0 && m.buf[m.n-1] == '0' {
		m.n--
	}
	return m, pointPos, truncated, false
}
