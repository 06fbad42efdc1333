// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "math/bits"

// ExtendedFloat is a 64-bit significand paired with a binary exponent,
// value = Mant * 2**Exp. It is the moderate path's working precision:
// wider than a float64's 53-bit mantissa, cheap enough to multiply
// with a single 128-bit widening multiply.
//
// After Normalize, the top bit of Mant is set (bit 63), except for the
// canonical zero value (Mant == 0).
type ExtendedFloat struct {
	Mant uint64
	Exp  int32
}

// Normalize left-shifts Mant until its top bit is set, adjusting Exp
// to compensate, and returns the result. The zero value normalizes to
// itself.
func (e ExtendedFloat) Normalize() ExtendedFloat {
	if e.Mant == 0 {
		return e
	}
	shift := bits.LeadingZeros64(e.Mant)
	e.Mant <<= uint(shift)
	e.Exp -= int32(shift)
	return e
}

// Mul returns e*o, rounded to the nearest 64-bit significand. The
// caller is responsible for tracking the accumulated rounding error
// this introduces; see atof_moderate.go's errULP bookkeeping.
func (e ExtendedFloat) Mul(o ExtendedFloat) ExtendedFloat {
	hi, lo := bits.Mul64(e.Mant, o.Mant)
	if lo&(1<<63) != 0 {
		hi++
	}
	return ExtendedFloat{Mant: hi, Exp: e.Exp + o.Exp + 64}
}

// ExtendedFloatFromUint64 builds a normalized ExtendedFloat exactly
// representing x (which must be nonzero: the caller handles the zero
// case directly, since zero has no normalized ExtendedFloat form).
func ExtendedFloatFromUint64(x uint64) ExtendedFloat {
	return ExtendedFloat{Mant: x, Exp: 0}.Normalize()
}

// roundToLayout rounds e to the nearest value representable by lay
// (round to nearest, ties to even) and packs it into lay's raw bit
// pattern. It returns whether the rounding was exact (no significant
// bit below the target precision was 1), which callers use to decide
// whether the fast/moderate path may accept the result outright.
//
// Overflow saturates to +Infinity's bit pattern (reported as exact:
// an overflowing magnitude has no "nearer" representable value).
// Underflow below the smallest subnormal saturates to +0 the same way.
func (e ExtendedFloat) roundToLayout(lay FloatLayout) (bitsPattern uint64, exact bool) {
	if e.Mant == 0 {
		return 0, true
	}
	e = e.Normalize()
	leadExp := int64(e.Exp) + 63
	biased := leadExp + int64(lay.Bias)
	shift := uint(64 - (lay.MantissaBits + 1))

	if biased <= 0 {
		extra := uint64(1 - biased)
		if extra > 64 {
			return 0, true // underflows to +0, exactly
		}
		shift += uint(extra)
		biased = 0
	}

	var mant uint64
	var roundBit, sticky bool
	switch {
	case shift > 64:
		mant, roundBit, sticky = 0, false, e.Mant != 0
	case shift == 64:
		mant, roundBit, sticky = 0, e.Mant>>63 != 0, e.Mant<<1 != 0
	case shift == 0:
		mant = e.Mant
	default:
		mant = e.Mant >> shift
		roundBit = (e.Mant>>(shift-1))&1 != 0
		if shift > 1 {
			sticky = e.Mant<<(64-shift+1) != 0
		}
	}
	exact = !roundBit && !sticky
	if roundBit && (sticky || mant&1 != 0) {
		mant++
		switch {
		case biased == 0 && mant == 1<<lay.MantissaBits:
			biased = 1 // rounded up out of the subnormal range
		case mant == 1<<(lay.MantissaBits+1):
			mant >>= 1
			biased++
		}
	}

	if biased >= int64(lay.expMax()) {
		return lay.expMax() << lay.MantissaBits, true // +Inf, exact
	}

	bitsPattern = uint64(biased)<<lay.MantissaBits | (mant &^ (uint64(1) << lay.MantissaBits))
	return bitsPattern, exact
}

// ToFloat64 rounds e to the nearest float64 magnitude (unsigned; sign
// is applied by the caller) and reports whether the rounding was
// exact.
func (e ExtendedFloat) ToFloat64() (f float64, exact bool) {
	bitsPattern, exact := e.roundToLayout(float64Layout)
	return float64Layout.decodeBits(bitsPattern), exact
}

// ToFloat32 is ToFloat64's float32 counterpart.
func (e ExtendedFloat) ToFloat32() (f float32, exact bool) {
	bitsPattern, exact := e.roundToLayout(float32Layout)
	return float32(float32Layout.decodeBits(bitsPattern)), exact
}
