// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// compareDecimalToBigFloat compares the exact decimal value
// digits*radix**digitExp (digits interpreted as a radix integer) to
// the exact binary value mid.Mant*2**mid.Exp, returning -1, 0 or 1.
// Both values are brought to a common integer scale by moving whichever
// exponent is negative to the *other* side as a positive multiplier
// (e.g. comparing D*radix**-3 to M*2**5 becomes comparing D to
// M*2**5*radix**3): this way the comparison never needs a division,
// only BigInt multiplication.
func compareDecimalToBigFloat(digits []byte, radix uint8, digitExp int32, mid BigFloat) int {
	var lhs BigInt
	lhs.SetDigits(digits, radix)
	rhs := mid.Mant

	switch {
	case digitExp > 0:
		lhs.MulPowRadix(radix, uint(digitExp))
	case digitExp < 0:
		rhs.MulPowRadix(radix, uint(-digitExp))
	}
	switch {
	case mid.Exp > 0:
		rhs.MulPow2(uint(mid.Exp))
	case mid.Exp < 0:
		lhs.MulPow2(uint(-mid.Exp))
	}
	return lhs.Cmp(&rhs)
}

// slowPath resolves the correctly-rounded bit pattern exactly, using
// arbitrary-precision comparison as the final authority: compare the
// exact parsed value against the halfway points to candidateBits'
// upper and lower neighbours, and move to whichever neighbour the
// exact value actually falls closer to (the moderate path's candidate
// is already within about a mantissa ulp of correct, so checking both
// immediate neighbours, rather than assuming the direction, covers
// every case without extra bookkeeping).
//
// truncatedDigits, if nonzero, reports that digit bytes past
// maxMantissaDigits were dropped from digits: per DESIGN.md's
// resolution of the exact-tie-with-dropped-digits Open Question, a
// nonzero truncated count always breaks an exact midpoint comparison
// towards the value being strictly larger, since the dropped digits
// were known to be a nonzero tail.
func slowPath(lay FloatLayout, digits []byte, radix uint8, digitExp int32, truncatedDigits int, candidateBits uint64, rounding RoundingMode) uint64 {
	mant, exp := lay.decompose(candidateBits)
	prevMant, prevExp, nextMant, nextExp := lay.neighbours(candidateBits)

	hiMid := midpointBigFloat(mant, exp, nextMant, nextExp)
	cmpHi := compareDecimalToBigFloat(digits, radix, digitExp, hiMid)
	if cmpHi == 0 && truncatedDigits > 0 {
		cmpHi = 1
	}
	switch {
	case cmpHi > 0:
		return packMantExp(lay, nextMant, nextExp)
	case cmpHi == 0:
		if rounding.resolve(mant&1 != 0) {
			return packMantExp(lay, nextMant, nextExp)
		}
		return candidateBits
	}

	loMid := midpointBigFloat(mant, exp, prevMant, prevExp)
	cmpLo := compareDecimalToBigFloat(digits, radix, digitExp, loMid)
	if cmpLo == 0 && truncatedDigits > 0 {
		cmpLo = 1 // pulls away from prev, back towards the candidate
	}
	switch {
	case cmpLo < 0:
		return packMantExp(lay, prevMant, prevExp)
	case cmpLo == 0:
		if rounding.resolve(prevMant&1 != 0) {
			return candidateBits
		}
		return packMantExp(lay, prevMant, prevExp)
	}
	return candidateBits
}
