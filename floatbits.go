// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// decompose reconstructs the exact (mantissa, binary exponent) pair a
// raw bit pattern represents: value == mant * 2**exp, with mant
// carrying the hidden bit for normal numbers and no hidden bit for
// subnormals (for which it is already exact as stored). This is the
// inverse of roundToLayout's packing step, used by atof_slow.go to
// walk to a bit pattern's immediate neighbours without rounding error.
func (lay FloatLayout) decompose(bitsPattern uint64) (mant uint64, exp int32) {
	biased := bitsPattern >> lay.MantissaBits & (1<<lay.ExponentBits - 1)
	frac := bitsPattern & (1<<lay.MantissaBits - 1)
	if biased == 0 {
		return frac, 1 - lay.Bias - int32(lay.MantissaBits)
	}
	return frac | 1<<lay.MantissaBits, int32(biased) - lay.Bias - int32(lay.MantissaBits)
}

// packMantExp builds a raw bit pattern from an exact (mant, exp) pair
// in decompose's form, i.e. the inverse operation. A mant with no bit
// at position MantissaBits packs as a subnormal (biased exponent
// zero). mant must fit in MantissaBits+1 bits (neighbours folds a
// mantissa carry into the exponent before calling it); a normalized
// mant whose exponent gives a biased exponent of expMax packs as
// +Infinity, which is the correct result when rounding the largest
// finite value up.
func packMantExp(lay FloatLayout, mant uint64, exp int32) uint64 {
	if mant>>lay.MantissaBits == 0 {
		return mant
	}
	biased := uint64(exp) + uint64(lay.Bias) + uint64(lay.MantissaBits)
	return biased<<lay.MantissaBits | (mant &^ (uint64(1) << lay.MantissaBits))
}

// neighbours returns the (mant, exp) pairs of the representable values
// immediately below and above the one bitsPattern encodes, in
// decompose's exact form.
func (lay FloatLayout) neighbours(bitsPattern uint64) (prevMant uint64, prevExp int32, nextMant uint64, nextExp int32) {
	mant, exp := lay.decompose(bitsPattern)

	nextMant, nextExp = mant+1, exp
	if nextMant == 1<<(lay.MantissaBits+1) {
		nextMant >>= 1
		nextExp++
	}

	if mant == 1<<lay.MantissaBits && lay.biasedExponent(exp) > 1 {
		// mant is the smallest mantissa of a normal binade above the
		// very first one: the lower neighbour has one more mantissa
		// bit at the next exponent down, halving its ulp. The first
		// normal binade is excluded because its exp already equals
		// every subnormal's exp (decompose gives both biased==0 and
		// biased==1 the same exp), so the true lower neighbour there
		// is the largest subnormal at the *same* exponent, covered by
		// the mant-1 case below.
		prevMant, prevExp = 1<<(lay.MantissaBits+1)-1, exp-1
	} else {
		prevMant, prevExp = mant-1, exp
	}
	return prevMant, prevExp, nextMant, nextExp
}

// biasedExponent recovers the stored (biased) exponent field a
// decomposed normal mant/exp pair came from.
func (lay FloatLayout) biasedExponent(exp int32) int32 {
	return exp + lay.Bias + int32(lay.MantissaBits)
}

// midpointBigFloat returns the exact value (mant1*2**exp1 +
// mant2*2**exp2) / 2 as a BigFloat. It is used to build the halfway
// point between a candidate and one of its neighbours; the two
// exponents never differ by more than 1 in that use (see neighbours),
// so aligning with a plain shift (rather than BigInt.MulPow2) is
// sufficient and allocation-free.
func midpointBigFloat(mant1 uint64, exp1 int32, mant2 uint64, exp2 int32) BigFloat {
	e0 := exp1
	if exp2 < e0 {
		e0 = exp2
	}
	v1 := mant1 << uint(exp1-e0)
	v2 := mant2 << uint(exp2-e0)
	var bf BigFloat
	bf.SetUint64(v1 + v2)
	bf.Exp = e0 - 1
	return bf
}
