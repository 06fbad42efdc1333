// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math"
	"math/bits"
)

// shortestDigits runs the Steele & White / Burger-Dybvig free-format
// digit generation algorithm: given value = mant*2**exp (mant carrying
// the hidden bit for normal numbers), it writes the shortest sequence
// of decimal digit values (0-9, not ASCII) into buf that round-trips
// back to the same bit pattern under round-to-nearest-even, and
// returns how many digits it wrote along with k, the decimal exponent
// with value == 0.d1d2...dn * 10**k (so d1 is the 10**(k-1) digit). buf must hold at
// least 18 bytes (one more than float64's worst case, for a possible
// carry digit).
//
// Grounded the same way atof_slow.go is: exact BigInt arithmetic
// standing in for the rational intervals the algorithm compares,
// avoiding the floating-point estimation error a float-based
// implementation would need to bound separately.
func shortestDigits(buf []byte, lay FloatLayout, mant uint64, exp int32) (n int, k int32) {
	mantIsEven := mant&1 == 0
	lowerBoundaryCloser := mant == 1<<lay.MantissaBits && lay.biasedExponent(exp) > 1

	var r, s, mPlus, mMinus BigInt
	switch {
	case exp >= 0 && !lowerBoundaryCloser:
		r.SetUint64(mant).MulPow2(uint(exp) + 1)
		s.SetWord(2)
		mPlus.SetWord(1).MulPow2(uint(exp))
		mMinus = mPlus
	case exp >= 0 && lowerBoundaryCloser:
		r.SetUint64(mant).MulPow2(uint(exp) + 2)
		s.SetWord(4)
		mMinus.SetWord(1).MulPow2(uint(exp))
		mPlus.SetWord(1).MulPow2(uint(exp) + 1)
	case exp < 0 && !lowerBoundaryCloser:
		r.SetUint64(mant).MulPow2(1)
		s.SetWord(1).MulPow2(uint(1 - exp))
		mPlus.SetWord(1)
		mMinus.SetWord(1)
	default: // exp < 0 && lowerBoundaryCloser
		r.SetUint64(mant).MulPow2(2)
		s.SetWord(1).MulPow2(uint(2 - exp))
		mMinus.SetWord(1)
		mPlus.SetWord(2)
	}

	// Estimate the decimal exponent of the value from its binary
	// magnitude, then scale (r, mPlus, mMinus) and s to a common
	// footing so that 1/10 <= (r+mPlus)/s <= 1.
	approxLog2 := exp + int32(64-bits.LeadingZeros64(mant))
	k = int32(math.Ceil(float64(approxLog2) * 0.30102999566398120))
	if k >= 0 {
		s.MulPow10(uint(k))
	} else {
		scale := uint(-k)
		r.MulPow10(scale)
		mPlus.MulPow10(scale)
		mMinus.MulPow10(scale)
	}
	for {
		var t BigInt
		t = r
		t.Add(&mPlus)
		if t.Cmp(&s) > 0 {
			s.MulPow10(1)
			k++
			continue
		}
		break
	}
	for {
		var t BigInt
		t = r
		t.Add(&mPlus)
		t.MulPow10(1)
		if t.Cmp(&s) <= 0 {
			r.MulPow10(1)
			mPlus.MulPow10(1)
			mMinus.MulPow10(1)
			k--
			continue
		}
		break
	}

	for {
		r.MulPow10(1)
		mPlus.MulPow10(1)
		mMinus.MulPow10(1)
		d := divModDigit(&r, &s)

		low := r.Cmp(&mMinus) < 0 || (mantIsEven && r.Cmp(&mMinus) == 0)
		var rPlus BigInt
		rPlus = r
		rPlus.Add(&mPlus)
		high := rPlus.Cmp(&s) > 0 || (mantIsEven && rPlus.Cmp(&s) == 0)

		switch {
		case !low && !high:
			buf[n] = d
			n++
			continue
		case low && !high:
			buf[n] = d
			n++
		case high && !low:
			n = emitWithCarry(buf, n, d+1, &k)
		default:
			var twoR BigInt
			twoR = r
			twoR.MulPow2(1)
			if twoR.Cmp(&s) <= 0 {
				buf[n] = d
				n++
			} else {
				n = emitWithCarry(buf, n, d+1, &k)
			}
		}
		return n, k
	}
}

// emitWithCarry appends digit (which may be 10, from rounding the
// final digit up) to buf[:n], propagating a carry back through
// already-emitted digits, and adjusts k if the carry prepends a new
// leading digit (e.g. 9.99... rounding up to 10.0...).
func emitWithCarry(buf []byte, n int, digit byte, k *int32) int {
	if digit < 10 {
		buf[n] = digit
		return n + 1
	}
	i := n - 1
	for i >= 0 && buf[i] == 9 {
		buf[i] = 0
		i--
	}
	if i >= 0 {
		buf[i]++
		return n
	}
	copy(buf[1:n+1], buf[:n])
	buf[0] = 1
	*k++
	return n + 1
}

// divModDigit returns floor(r/s) (guaranteed to be a single decimal
// digit by shortestDigits' scaling invariant) and replaces r with
// r mod s, via trial multiplication rather than general long division
// (BigInt has no divide operation; a digit is cheap to find by trying
// at most ten multiples).
func divModDigit(r, s *BigInt) byte {
	var trial BigInt
	for d := byte(9); d > 0; d-- {
		trial = *s
		trial.MulSmall(Word(d))
		if trial.Cmp(r) <= 0 {
			r.Sub(&trial)
			return d
		}
	}
	return 0
}

// writeDecimalDigits formats a raw digit-value sequence (as produced
// by shortestDigits) plus its decimal exponent k into buf using plain
// decimal notation when the magnitude is reasonable (-4 < k <= 17,
// matching the threshold most languages' default float formatting
// uses to avoid either very long integer parts or very long strings of
// leading zeros) and scientific notation otherwise. Returns the number
// of bytes written.
func writeDecimalDigits(buf []byte, digits []byte, k int32, neg bool, o WriteOptions) int {
	pos := 0
	if neg {
		buf[pos] = '-'
		pos++
	}

	useScientific := k <= -4 || k > 17
	if !useScientific {
		switch {
		case k <= 0:
			buf[pos] = '0'
			pos++
			buf[pos] = '.'
			pos++
			for i := int32(0); i < -k; i++ {
				buf[pos] = '0'
				pos++
			}
			for _, d := range digits {
				buf[pos] = '0' + d
				pos++
			}
		case int(k) >= len(digits):
			for _, d := range digits {
				buf[pos] = '0' + d
				pos++
			}
			for i := len(digits); i < int(k); i++ {
				buf[pos] = '0'
				pos++
			}
			if !o.trimFloats {
				buf[pos] = '.'
				pos++
				buf[pos] = '0'
				pos++
			}
		default:
			for i, d := range digits {
				if i == int(k) {
					buf[pos] = '.'
					pos++
				}
				buf[pos] = '0' + d
				pos++
			}
		}
		return pos
	}

	buf[pos] = '0' + digits[0]
	pos++
	if len(digits) > 1 {
		buf[pos] = '.'
		pos++
		for _, d := range digits[1:] {
			buf[pos] = '0' + d
			pos++
		}
	}
	buf[pos] = o.exponent
	pos++
	e := k - 1
	if e < 0 {
		buf[pos] = '-'
		pos++
		e = -e
	} else {
		buf[pos] = '+'
		pos++
	}
	pos += writeUintMagnitude(buf[pos:], Uint128{Lo: uint64(e)}, 10)
	return pos
}

// floatWriteSize bounds the bytes writeFloat64/writeFloat32 can ever
// produce: sign, up to 17 (f64) or 9 (f32) significant digits, a
// decimal point, and either at most 17 integer-part padding zeros or 3
// leading fraction zeros (writeDecimalDigits uses decimal notation only
// for -4 < k <= 17) or an exponent suffix of at most 5 bytes. All of
// these fit in 32 bytes; 340 is a looser, conservative bound.
const floatWriteSize = 340

func writeFloat(buf []byte, bitsPattern uint64, neg bool, lay FloatLayout, o WriteOptions) int {
	if bitsPattern == 0 {
		if neg {
			buf[0] = '-'
			buf[1] = '0'
			if !o.trimFloats {
				buf[2] = '.'
				buf[3] = '0'
				return 4
			}
			return 2
		}
		buf[0] = '0'
		if !o.trimFloats {
			buf[1] = '.'
			buf[2] = '0'
			return 3
		}
		return 1
	}
	mant, exp := lay.decompose(bitsPattern)
	var digitBuf [18]byte
	n, k := shortestDigits(digitBuf[:], lay, mant, exp)
	return writeDecimalDigits(buf, digitBuf[:n], k, neg, o)
}

func WriteFloat64(buf []byte, v float64) int {
	return writeFloat64(buf, v, defaultWriteOptions)
}

func WriteFloat64WithOptions(buf []byte, v float64, o WriteOptions) int {
	return writeFloat64(buf, v, o)
}

func writeFloat64(buf []byte, v float64, o WriteOptions) int {
	checkBuf(buf, floatWriteSize+len(o.nan)+len(o.inf))
	bitsPattern := math.Float64bits(v)
	neg := bitsPattern>>63 != 0
	switch {
	case math.IsNaN(v):
		n := 0
		if neg {
			buf[0] = '-'
			n = 1
		}
		return n + copy(buf[n:], o.nan)
	case math.IsInf(v, 0):
		n := 0
		if neg {
			buf[0] = '-'
			n = 1
		}
		return n + copy(buf[n:], o.inf)
	}
	mag := bitsPattern &^ (1 << 63)
	return writeFloat(buf, mag, neg, float64Layout, o)
}

func WriteFloat32(buf []byte, v float32) int {
	return writeFloat32(buf, v, defaultWriteOptions)
}

func WriteFloat32WithOptions(buf []byte, v float32, o WriteOptions) int {
	return writeFloat32(buf, v, o)
}

func writeFloat32(buf []byte, v float32, o WriteOptions) int {
	checkBuf(buf, floatWriteSize+len(o.nan)+len(o.inf))
	bitsPattern := uint64(math.Float32bits(v))
	neg := bitsPattern>>31 != 0
	switch {
	case math.IsNaN(float64(v)):
		n := 0
		if neg {
			buf[0] = '-'
			n = 1
		}
		return n + copy(buf[n:], o.nan)
	case math.IsInf(float64(v), 0):
		n := 0
		if neg {
			buf[0] = '-'
			n = 1
		}
		return n + copy(buf[n:], o.inf)
	}
	mag := bitsPattern &^ (1 << 31)
	return writeFloat(buf, mag, neg, float32Layout, o)
}
