// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// fastPathDecimal64 and fastPathDecimal32 implement Clinger's fast path: if
// the mantissa's digits fit exactly in the target type's mantissa bits
// and the decimal exponent needed to scale them is itself an exactly
// representable power of ten, a single correctly-rounded float
// multiply or divide reproduces the correctly-rounded decimal-to-
// binary conversion outright. Grounded in the same two preconditions
// (digit count, exponent range) the fastfloat reference and Go's
// strconv.ParseFloat both check before trusting native arithmetic.
//
// digits holds only the retained (zero-trimmed) significant digits;
// scientificExp is the power of ten of the first retained digit, i.e.
// the value equals 0.digits * 10**(scientificExp+1).

func fastPathDecimal64(digits []byte, scientificExp int32) (float64, bool) {
	limit := decimalMantissaLimit(float64Layout.MantissaBits)
	if len(digits) == 0 || len(digits) > limit {
		return 0, false
	}
	var m uint64
	for _, ch := range digits {
		m = m*10 + uint64(digitValue(ch))
	}
	adjExp := scientificExp - int32(len(digits)-1)
	if adjExp < -exactPow10ExpF64 || adjExp > exactPow10ExpF64 {
		return 0, false
	}
	f := float64(m)
	switch {
	case adjExp > 0:
		f *= pow10F64[adjExp]
	case adjExp < 0:
		f /= pow10F64[-adjExp]
	}
	return f, true
}

func fastPathDecimal32(digits []byte, scientificExp int32) (float32, bool) {
	limit := decimalMantissaLimit(float32Layout.MantissaBits)
	if len(digits) == 0 || len(digits) > limit {
		return 0, false
	}
	var m uint64
	for _, ch := range digits {
		m = m*10 + uint64(digitValue(ch))
	}
	adjExp := scientificExp - int32(len(digits)-1)
	if adjExp < -exactPow10ExpF32 || adjExp > exactPow10ExpF32 {
		return 0, false
	}
	f := float32(m)
	switch {
	case adjExp > 0:
		f *= pow10F32[adjExp]
	case adjExp < 0:
		f /= pow10F32[-adjExp]
	}
	return f, true
}

// fastPathPow2 composes the bit pattern of digits*radix**adjExp
// directly for a power-of-two radix, where radix = 2**shift: every
// digit of a power-of-two-radix literal is itself an exact group of
// bits, so forming the mantissa introduces no approximation at all
// (unlike the decimal case, where scaling by a power of ten is
// generally irrational in binary). The only rounding that ever
// happens is roundToLayout's own correctly-rounded truncation to the
// target precision, which makes an ok result authoritative: unlike
// decimal, it needs no moderate or slow tier check. ok only
// reports whether digits fit the uint64 accumulator; when it
// doesn't, the caller falls through to the generic (BigInt-based)
// tiers, which support any radix, just without this shortcut. Used
// for radices 2, 4, 8, 16 and 32, per SPEC_FULL.md §4.4.
func fastPathPow2(lay FloatLayout, digits []byte, scientificExp int32, shift uint) (bitsPattern uint64, ok bool) {
	limit := int((lay.MantissaBits + 1 + uint(shift) - 1) / uint(shift))
	if len(digits) == 0 || len(digits) > limit {
		return 0, false
	}
	var m uint64
	for _, ch := range digits {
		m = m<<shift | uint64(digitValue(ch))
	}
	e := ExtendedFloatFromUint64(m)
	e.Exp += (scientificExp - int32(len(digits)-1)) * int32(shift)
	bitsPattern, _ = e.roundToLayout(lay)
	return bitsPattern, true
}
