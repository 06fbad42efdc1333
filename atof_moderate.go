// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// moderatePath computes a candidate bit pattern for digits * radix**
// (scientificExp-(len(digits)-1)) using ExtendedFloat arithmetic (the
// Eisel-Lemire-style "multiply mantissa by a cached power" approach),
// and reports whether the result is provably the correctly-rounded
// answer: it is safe exactly when perturbing the candidate by the
// accumulated rounding error in either direction still rounds to the
// same target bit pattern, the standard way these algorithms decide
// when to fall through to an exact bignum comparison instead of
// trusting the approximation. anyTruncated additionally forces a
// fallthrough, since a truncated tail means the true value was never
// exactly represented by digits in the first place.
func moderatePath(lay FloatLayout, digits []byte, scientificExp int32, radix uint8, anyTruncated bool) (bitsPattern uint64, ok bool) {
	used := len(digits)
	if limit := maxUint64Digits[radix]; used > limit {
		used = limit
		anyTruncated = true
	}

	var m uint64
	for _, ch := range digits[:used] {
		m = m*uint64(radix) + uint64(digitValue(ch))
	}
	radixExp := scientificExp - int32(used-1)

	mant := ExtendedFloatFromUint64(m)
	pow := cachedPower(radix, radixExp)
	candidate := mant.Mul(pow)

	// One ulp (of the 64-bit product) each for the cached power's own
	// rounding and for Mul's rounding. If any input digit was dropped
	// before reaching this point, the dropped tail is worth up to one
	// unit of m, i.e. 2**(-mant.Exp) ulps of the normalized mantissa.
	errULP := uint64(2)
	if anyTruncated {
		errULP += 1 << uint(-mant.Exp)
	}

	lo, hi := candidate, candidate
	lo.Mant -= errULP
	hi.Mant += errULP

	bLo, _ := lo.roundToLayout(lay)
	bMid, _ := candidate.roundToLayout(lay)
	bHi, _ := hi.roundToLayout(lay)
	if bLo == bMid && bMid == bHi {
		return bMid, true
	}
	return bMid, false
}
